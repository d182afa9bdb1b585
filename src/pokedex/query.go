package pokedex

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Query identifies a pokemon either by numeric id or by name. Names are
// compared case-insensitively.
type Query struct {
	id   int
	name string
}

func QueryByID(id int) Query {
	return Query{id: id}
}

func QueryByName(name string) Query {
	return Query{name: foldName(name)}
}

// ParseQuery reads user input: an all-digit string is an id, anything else a
// name.
func ParseQuery(input string) (Query, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Query{}, &InvalidQueryError{Input: input, Reason: "empty query"}
	}
	if isDigits(trimmed) {
		id, err := strconv.Atoi(trimmed)
		if err != nil {
			return Query{}, &InvalidQueryError{Input: input, Reason: err.Error()}
		}
		if id <= 0 {
			return Query{}, &InvalidQueryError{Input: input, Reason: "id must be positive"}
		}
		return QueryByID(id), nil
	}
	return QueryByName(trimmed), nil
}

func (q Query) ID() (int, bool) {
	return q.id, q.name == "" && q.id != 0
}

func (q Query) Name() (string, bool) {
	return q.name, q.name != ""
}

func (q Query) String() string {
	if q.name != "" {
		return q.name
	}
	return strconv.Itoa(q.id)
}

// Matches reports whether the record is the one this query points at.
func (q Query) Matches(record *Record) bool {
	if record == nil {
		return false
	}
	if q.name != "" {
		return foldName(record.Name) == q.name
	}
	return record.Id == q.id
}

// pathSegment is the id-or-name component of the pokemon resource url.
func (q Query) pathSegment() (string, error) {
	if q.name != "" {
		return q.name, nil
	}
	if q.id <= 0 {
		return "", &InvalidQueryError{Input: strconv.Itoa(q.id), Reason: "id must be positive"}
	}
	return strconv.Itoa(q.id), nil
}

func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
