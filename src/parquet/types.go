package parquet

import (
	"strings"

	"github.com/BielosX/wombat/pokedex/src/pokedex"
)

// Pokemon is one exported row. Tag names double as CSV headers.
type Pokemon struct {
	Id              int32  `parquet:"name=id, type=INT32"`
	Name            string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Weight          int32  `parquet:"name=weight, type=INT32"`
	Height          int32  `parquet:"name=height, type=INT32"`
	PrimaryType     string `parquet:"name=type_1, type=BYTE_ARRAY, convertedtype=UTF8"`
	SecondaryType   string `parquet:"name=type_2, type=BYTE_ARRAY, convertedtype=UTF8"`
	Abilities       string `parquet:"name=abilities, type=BYTE_ARRAY, convertedtype=UTF8"`
	HiddenAbilities string `parquet:"name=hidden_abilities, type=BYTE_ARRAY, convertedtype=UTF8"`
	GenderRate      int32  `parquet:"name=gender_rate, type=INT32"`
	Hp              int32  `parquet:"name=hp, type=INT32"`
	Attack          int32  `parquet:"name=attack, type=INT32"`
	Defense         int32  `parquet:"name=defense, type=INT32"`
	SpecialAttack   int32  `parquet:"name=special_attack, type=INT32"`
	SpecialDefense  int32  `parquet:"name=special_defense, type=INT32"`
	Speed           int32  `parquet:"name=speed, type=INT32"`
	TotalStats      int32  `parquet:"name=total_stats, type=INT32"`
}

const listSeparator = "|"

func ToPokemon(record *pokedex.Record) Pokemon {
	secondary, _ := record.SecondaryType()
	stats := record.BaseStats
	return Pokemon{
		Id:              int32(record.Id),
		Name:            record.Name,
		Weight:          int32(record.Weight),
		Height:          int32(record.Height),
		PrimaryType:     record.PrimaryType(),
		SecondaryType:   secondary,
		Abilities:       strings.Join(record.Abilities, listSeparator),
		HiddenAbilities: strings.Join(record.HiddenAbility, listSeparator),
		GenderRate:      int32(record.GenderRatio),
		Hp:              int32(stats[pokedex.StatHP]),
		Attack:          int32(stats[pokedex.StatAttack]),
		Defense:         int32(stats[pokedex.StatDefense]),
		SpecialAttack:   int32(stats[pokedex.StatSpecialAttack]),
		SpecialDefense:  int32(stats[pokedex.StatSpecialDefense]),
		Speed:           int32(stats[pokedex.StatSpeed]),
		TotalStats:      int32(stats.Total()),
	}
}
