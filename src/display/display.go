// Package display holds the presentation rules applied to aggregated
// records: description language preference, unit conversion and user facing
// error messages.
package display

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"github.com/BielosX/wombat/pokedex/src/pokedex"
)

const (
	MessageNotFound    = "Pokémon not found"
	MessageNoNetwork   = "Could not reach the Pokémon API, check your internet connection"
	MessageBadQuery    = "Enter a Pokémon name or a positive number"
	MessageUnavailable = "The Pokémon API is not answering right now, try again later"
	MessageCanceled    = "Loading was canceled"
)

// Description returns the entry in language, else the first entry, else "".
func Description(record *pokedex.Record, language string) string {
	for _, entry := range record.Description {
		if entry.Language == language {
			return entry.Text
		}
	}
	if len(record.Description) > 0 {
		return record.Description[0].Text
	}
	return ""
}

func HeightMeters(record *pokedex.Record) float64 {
	return float64(record.Height) / 10
}

func WeightKilograms(record *pokedex.Record) float64 {
	return float64(record.Weight) / 10
}

func GenderLabel(ratio pokedex.GenderRatio) string {
	female, ok := ratio.FemalePercent()
	if !ok {
		return "genderless"
	}
	switch ratio.Kind() {
	case pokedex.AlwaysMale:
		return "100% male"
	case pokedex.AlwaysFemale:
		return "100% female"
	}
	return fmt.Sprintf("%.1f%% male, %.1f%% female", 100-female, female)
}

// ErrorMessage maps an aggregation failure to the text shown to the user.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case pokeapi.IsNotFound(err):
		return MessageNotFound
	case pokeapi.IsNetworkUnavailable(err):
		return MessageNoNetwork
	case pokedex.IsInvalidQuery(err):
		return MessageBadQuery
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return MessageCanceled
	}
	return MessageUnavailable
}

// Title renders "#001 Bulbasaur".
func Title(record *pokedex.Record) string {
	return fmt.Sprintf("#%03d %s", record.Id, cases.Title(language.Und).String(record.Name))
}

// Card is the multi-line text view printed by the CLI.
func Card(record *pokedex.Record, language string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", Title(record))
	fmt.Fprintf(&b, "Types: %s\n", strings.Join(record.Types, " / "))
	fmt.Fprintf(&b, "Height: %.1f m  Weight: %.1f kg\n", HeightMeters(record), WeightKilograms(record))
	fmt.Fprintf(&b, "Gender: %s\n", GenderLabel(record.GenderRatio))
	fmt.Fprintf(&b, "Abilities: %s\n", strings.Join(record.Abilities, ", "))
	if len(record.HiddenAbility) > 0 {
		fmt.Fprintf(&b, "Hidden ability: %s\n", strings.Join(record.HiddenAbility, ", "))
	}
	fmt.Fprintf(&b, "Base stats:")
	for _, stat := range pokedex.StatNames {
		fmt.Fprintf(&b, " %s=%d", stat, record.BaseStats[stat])
	}
	fmt.Fprintf(&b, " total=%d\n", record.BaseStats.Total())
	if text := Description(record, language); text != "" {
		fmt.Fprintf(&b, "\n%s\n", text)
	}
	return b.String()
}
