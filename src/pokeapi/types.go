package pokeapi

import (
	"errors"
	"fmt"
	"slices"
)

// StatNames are the base stats every pokemon resource carries.
var StatNames = []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}

// NamedResource is the {name, url} pointer the API uses to reference
// related resources.
type NamedResource struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

type PokemonTypeSlot struct {
	Slot int32         `json:"slot"`
	Type NamedResource `json:"type"`
}

type PokemonAbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int32         `json:"slot"`
}

type PokemonStat struct {
	Stat     NamedResource `json:"stat"`
	BaseStat int32         `json:"base_stat"`
	Effort   int32         `json:"effort"`
}

type PokemonResponse struct {
	Id        int32                `json:"id"`
	Name      string               `json:"name"`
	Weight    int32                `json:"weight"`
	Height    int32                `json:"height"`
	Types     []PokemonTypeSlot    `json:"types"`
	Abilities []PokemonAbilitySlot `json:"abilities"`
	Species   NamedResource        `json:"species"`
	Stats     []PokemonStat        `json:"stats"`
}

func (p *PokemonResponse) Validate() error {
	if p.Id <= 0 {
		return fmt.Errorf("invalid pokemon id %d", p.Id)
	}
	if p.Name == "" {
		return errors.New("pokemon name is empty")
	}
	if len(p.Types) < 1 || len(p.Types) > 2 {
		return fmt.Errorf("pokemon %s has %d types, expected 1 or 2", p.Name, len(p.Types))
	}
	for _, t := range p.Types {
		if t.Type.Url == "" {
			return fmt.Errorf("pokemon %s has a type without url", p.Name)
		}
	}
	for _, a := range p.Abilities {
		if a.Ability.Url == "" {
			return fmt.Errorf("pokemon %s has an ability without url", p.Name)
		}
	}
	if p.Species.Url == "" {
		return fmt.Errorf("pokemon %s has no species url", p.Name)
	}
	if len(p.Stats) != len(StatNames) {
		return fmt.Errorf("pokemon %s has %d stats, expected %d", p.Name, len(p.Stats), len(StatNames))
	}
	seen := make(map[string]bool, len(p.Stats))
	for _, s := range p.Stats {
		if !slices.Contains(StatNames, s.Stat.Name) {
			return fmt.Errorf("pokemon %s has unknown stat %q", p.Name, s.Stat.Name)
		}
		if seen[s.Stat.Name] {
			return fmt.Errorf("pokemon %s repeats stat %q", p.Name, s.Stat.Name)
		}
		seen[s.Stat.Name] = true
	}
	return nil
}

type LocalizedName struct {
	Name     string        `json:"name"`
	Language NamedResource `json:"language"`
}

type TypeResponse struct {
	Id    int32           `json:"id"`
	Name  string          `json:"name"`
	Names []LocalizedName `json:"names"`
}

type AbilityResponse struct {
	Id    int32           `json:"id"`
	Name  string          `json:"name"`
	Names []LocalizedName `json:"names"`
}

type FlavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

type SpeciesResponse struct {
	Id                int32             `json:"id"`
	Name              string            `json:"name"`
	GenderRate        int32             `json:"gender_rate"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
}

func (s *SpeciesResponse) Validate() error {
	if s.GenderRate < -1 || s.GenderRate > 8 {
		return fmt.Errorf("species %s has gender rate %d outside [-1, 8]", s.Name, s.GenderRate)
	}
	return nil
}
