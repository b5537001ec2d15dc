package store

import (
	"slices"
)

// Sort directions. Any other direction value is treated as ascending.
const (
	SortAscending  = "ASC"
	SortDescending = "DESC"
)

// Sorter describes one ordering key of a multi-key sort.
// The first sorter in a sequence is the primary key; later sorters only
// break ties left by the earlier ones.
type Sorter struct {
	Property  FieldNameString
	Direction string
}

// ApplySorters returns a new slice with the given records ordered by the
// sorter sequence. The sort is stable: records that compare equal on every
// key keep their relative input order. The input slice is never mutated.
//
// A nil or missing property value compares as less than any defined value,
// so it sorts first on ascending keys and last on descending keys.
func ApplySorters(records []Record, sorters []Sorter) []Record {
	sorted := slices.Clone(records)

	if len(sorters) == 0 {
		return sorted
	}

	slices.SortStableFunc(sorted, func(a, b Record) int {
		for _, sorter := range sorters {
			ordering := compareValues(a[sorter.Property], b[sorter.Property])
			if ordering == 0 {
				continue
			}

			if sorter.Direction == SortDescending {
				return -ordering
			}

			return ordering
		}

		return 0
	})

	return sorted
}
