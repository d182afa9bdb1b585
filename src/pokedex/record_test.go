package pokedex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"github.com/BielosX/wombat/pokedex/src/pokedex"
)

func TestNormalizeFlavorText(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "newline form feed and trailing spaces", input: "Line1\nLine2\fLine3  ", expected: "Line1 Line2 Line3"},
		{name: "leading whitespace", input: "\n  text", expected: "text"},
		{name: "already clean", input: "clean text", expected: "clean text"},
		{name: "empty", input: "", expected: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, pokedex.NormalizeFlavorText(tc.input))
		})
	}
}

func TestGenderRatioKind(t *testing.T) {
	testCases := []struct {
		ratio    pokedex.GenderRatio
		expected pokedex.GenderKind
	}{
		{ratio: -1, expected: pokedex.Genderless},
		{ratio: 0, expected: pokedex.AlwaysMale},
		{ratio: 1, expected: pokedex.Mixed},
		{ratio: 4, expected: pokedex.Mixed},
		{ratio: 7, expected: pokedex.Mixed},
		{ratio: 8, expected: pokedex.AlwaysFemale},
	}
	for _, tc := range testCases {
		t.Run(tc.expected.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.ratio.Kind())
		})
	}
}

func TestGenderRatioFemalePercent(t *testing.T) {
	_, ok := pokedex.GenderRatio(-1).FemalePercent()
	assert.False(t, ok)

	percent, ok := pokedex.GenderRatio(1).FemalePercent()
	assert.True(t, ok)
	assert.InDelta(t, 12.5, percent, 0.001)

	percent, _ = pokedex.GenderRatio(8).FemalePercent()
	assert.InDelta(t, 100.0, percent, 0.001)
}

func TestParseQuery(t *testing.T) {
	q, err := pokedex.ParseQuery(" 25 ")
	require.NoError(t, err)
	id, ok := q.ID()
	assert.True(t, ok)
	assert.Equal(t, 25, id)

	q, err = pokedex.ParseQuery("Pikachu")
	require.NoError(t, err)
	name, ok := q.Name()
	assert.True(t, ok)
	assert.Equal(t, "pikachu", name)
	_, ok = q.ID()
	assert.False(t, ok)

	for _, input := range []string{"", "   ", "0", "000"} {
		_, err := pokedex.ParseQuery(input)
		assert.True(t, pokedex.IsInvalidQuery(err), input)
	}
}

func TestQueryMatches(t *testing.T) {
	record := &pokedex.Record{Id: 25, Name: "pikachu"}
	assert.True(t, pokedex.QueryByID(25).Matches(record))
	assert.True(t, pokedex.QueryByName("PIKACHU").Matches(record))
	assert.False(t, pokedex.QueryByID(26).Matches(record))
	assert.False(t, pokedex.QueryByName("raichu").Matches(record))
	assert.False(t, pokedex.QueryByID(25).Matches(nil))
}

func TestNameSelector(t *testing.T) {
	names := localized("Planta")

	name, err := pokedex.DefaultNameSelector().Pick(names)
	require.NoError(t, err)
	assert.Equal(t, "Planta", name)

	name, err = pokedex.NameSelector{Language: "de"}.Pick(names)
	require.NoError(t, err)
	assert.Equal(t, "Planta-de", name)

	_, err = pokedex.NameSelector{Language: "en"}.Pick(names)
	assert.ErrorIs(t, err, pokedex.ErrMissingLocalizedName)

	_, err = pokedex.DefaultNameSelector().Pick(names[:5])
	assert.ErrorIs(t, err, pokedex.ErrMissingLocalizedName)

	_, err = pokedex.DefaultNameSelector().Pick([]pokeapi.LocalizedName{})
	assert.ErrorIs(t, err, pokedex.ErrMissingLocalizedName)
}

func TestRecordTypes(t *testing.T) {
	record := &pokedex.Record{Types: []string{"planta", "veneno"}}
	assert.Equal(t, "planta", record.PrimaryType())
	second, ok := record.SecondaryType()
	assert.True(t, ok)
	assert.Equal(t, "veneno", second)
	assert.True(t, record.HasType("Veneno"))
	assert.False(t, record.HasType("fuego"))

	single := &pokedex.Record{Types: []string{"fuego"}}
	_, ok = single.SecondaryType()
	assert.False(t, ok)
}
