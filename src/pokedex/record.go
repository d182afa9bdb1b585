package pokedex

import (
	"strings"

	"github.com/BielosX/wombat/pokedex/src/pokeapi"
)

// Record is the denormalized view of one pokemon. It is built in one piece
// by the Aggregator and is not modified afterwards.
type Record struct {
	Id            int                `json:"id"`
	Name          string             `json:"name"`
	Height        int                `json:"height"` // decimetres
	Weight        int                `json:"weight"` // hectograms
	Types         []string           `json:"types"`
	Abilities     []string           `json:"abilities"`
	HiddenAbility []string           `json:"hidden_ability"`
	Description   []DescriptionEntry `json:"description"`
	GenderRatio   GenderRatio        `json:"gender_ratio"`
	BaseStats     BaseStats          `json:"base_stats"`
}

type DescriptionEntry struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

func (r *Record) PrimaryType() string {
	return r.Types[0]
}

func (r *Record) SecondaryType() (string, bool) {
	if len(r.Types) < 2 {
		return "", false
	}
	return r.Types[1], true
}

func (r *Record) HasType(pokemonType string) bool {
	wanted := strings.ToLower(pokemonType)
	for _, t := range r.Types {
		if t == wanted {
			return true
		}
	}
	return false
}

// BaseStats maps a stat name (see StatNames) to its base value.
type BaseStats map[string]int

func (b BaseStats) Total() int {
	total := 0
	for _, value := range b {
		total += value
	}
	return total
}

const (
	StatHP             = "hp"
	StatAttack         = "attack"
	StatDefense        = "defense"
	StatSpecialAttack  = "special-attack"
	StatSpecialDefense = "special-defense"
	StatSpeed          = "speed"
)

// StatNames lists the six keys present in every BaseStats.
var StatNames = pokeapi.StatNames

// GenderRatio is the species gender rate in eighths of female: -1 means
// genderless, 0 always male, 8 always female.
type GenderRatio int

type GenderKind int

const (
	Genderless GenderKind = iota
	AlwaysMale
	AlwaysFemale
	Mixed
)

func (k GenderKind) String() string {
	switch k {
	case Genderless:
		return "genderless"
	case AlwaysMale:
		return "always male"
	case AlwaysFemale:
		return "always female"
	case Mixed:
		return "mixed"
	}
	return "unknown"
}

func (g GenderRatio) Kind() GenderKind {
	switch {
	case g < 0:
		return Genderless
	case g == 0:
		return AlwaysMale
	case g >= 8:
		return AlwaysFemale
	default:
		return Mixed
	}
}

// FemalePercent returns the chance of a female in percent. It reports false
// for genderless species.
func (g GenderRatio) FemalePercent() (float64, bool) {
	if g.Kind() == Genderless {
		return 0, false
	}
	return float64(g) * 12.5, true
}

var flavorTextReplacer = strings.NewReplacer("\n", " ", "\f", " ")

// NormalizeFlavorText replaces every newline and form feed with a space and
// trims the result.
func NormalizeFlavorText(text string) string {
	return strings.TrimSpace(flavorTextReplacer.Replace(text))
}
