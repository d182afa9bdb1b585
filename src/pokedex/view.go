package pokedex

import (
	"cmp"
	"slices"
)

type Order int

const (
	OrderNone Order = iota
	OrderByID
	OrderByName
	OrderByTotalStats
)

func ParseOrder(name string) (Order, bool) {
	switch name {
	case "", "none":
		return OrderNone, true
	case "id":
		return OrderByID, true
	case "name", "alpha":
		return OrderByName, true
	case "stats", "total":
		return OrderByTotalStats, true
	}
	return OrderNone, false
}

// FilterByType keeps the records having pokemonType as primary or secondary
// type. An empty type keeps everything.
func FilterByType(records []*Record, pokemonType string) []*Record {
	if pokemonType == "" {
		return records
	}
	var result []*Record
	for _, r := range records {
		if r.HasType(pokemonType) {
			result = append(result, r)
		}
	}
	return result
}

// Sort returns a sorted copy of records. OrderNone keeps the input order.
func Sort(records []*Record, order Order, descending bool) []*Record {
	sorted := slices.Clone(records)
	var compare func(a, b *Record) int
	switch order {
	case OrderByID:
		compare = func(a, b *Record) int { return cmp.Compare(a.Id, b.Id) }
	case OrderByName:
		compare = func(a, b *Record) int { return cmp.Compare(a.Name, b.Name) }
	case OrderByTotalStats:
		compare = func(a, b *Record) int { return cmp.Compare(a.BaseStats.Total(), b.BaseStats.Total()) }
	default:
		return sorted
	}
	if descending {
		slices.SortStableFunc(sorted, func(a, b *Record) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(sorted, compare)
	}
	return sorted
}

// Find looks query up among already loaded records.
func Find(records []*Record, query Query) (*Record, bool) {
	for _, r := range records {
		if query.Matches(r) {
			return r, true
		}
	}
	return nil, false
}
