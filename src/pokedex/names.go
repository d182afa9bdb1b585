package pokedex

import (
	"fmt"

	"github.com/BielosX/wombat/pokedex/src/pokeapi"
)

// DisplayLanguageIndex is the position in a names table holding the display
// name. The API has kept that table ordered so that index 5 is Spanish.
// Nothing in the API documents that ordering; NameSelector.Language matches
// on the language code instead when set.
const DisplayLanguageIndex = 5

type NameSelector struct {
	Index    int
	Language string
}

func DefaultNameSelector() NameSelector {
	return NameSelector{Index: DisplayLanguageIndex}
}

func (s NameSelector) Pick(names []pokeapi.LocalizedName) (string, error) {
	if s.Language != "" {
		for _, n := range names {
			if n.Language.Name == s.Language {
				return n.Name, nil
			}
		}
		return "", fmt.Errorf("%w: no %q entry among %d names", ErrMissingLocalizedName, s.Language, len(names))
	}
	if s.Index < 0 || s.Index >= len(names) {
		return "", fmt.Errorf("%w: index %d out of %d names", ErrMissingLocalizedName, s.Index, len(names))
	}
	return names[s.Index].Name, nil
}
