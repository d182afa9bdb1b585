package pokedex

import (
	"errors"
	"fmt"
)

// ErrMissingLocalizedName is returned when a type or ability resource has no
// entry at the configured display position or for the configured language.
var ErrMissingLocalizedName = errors.New("localized name not available")

type InvalidQueryError struct {
	Input  string
	Reason string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid pokemon query %q: %s", e.Input, e.Reason)
}

func IsInvalidQuery(err error) bool {
	var target *InvalidQueryError
	return errors.As(err, &target)
}
