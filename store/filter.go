package store

import (
	"reflect"
	"strings"
)

// Filter operators. An empty operator means OpEq.
const (
	OpEq   = "eq"
	OpNe   = "ne"
	OpGt   = "gt"
	OpGte  = "gte"
	OpLt   = "lt"
	OpLte  = "lte"
	OpLike = "like"
	OpIn   = "in"
)

// Filter describes one inclusion predicate over a record field.
// A Store combines its active filters with AND semantics: a record is part
// of the projection only if it satisfies every active filter.
type Filter struct {
	Property FieldNameString
	Value    any
	Operator string
}

// Matches reports whether the record satisfies the filter.
//
// Operator semantics:
//   - eq / ne: normalized equality (see record diffing)
//   - gt / gte / lt / lte: numeric comparison when both sides are numeric,
//     lexicographic otherwise; a nil field value never satisfies these
//   - like: case-insensitive substring containment in the field's string form
//   - in: the field value is a member of the filter's slice value
//
// An unknown operator always matches. The permissive fallback keeps a widget
// usable when it is handed a filter spec the store does not understand.
func (f Filter) Matches(record Record) bool {
	field := record[f.Property]

	operator := f.Operator
	if operator == "" {
		operator = OpEq
	}

	switch operator {
	case OpEq:
		return valuesEqual(field, f.Value)

	case OpNe:
		return !valuesEqual(field, f.Value)

	case OpGt:
		return field != nil && f.Value != nil && compareValues(field, f.Value) > 0

	case OpGte:
		return field != nil && f.Value != nil && compareValues(field, f.Value) >= 0

	case OpLt:
		return field != nil && f.Value != nil && compareValues(field, f.Value) < 0

	case OpLte:
		return field != nil && f.Value != nil && compareValues(field, f.Value) <= 0

	case OpLike:
		needle := strings.ToLower(stringify(f.Value))
		return strings.Contains(strings.ToLower(stringify(field)), needle)

	case OpIn:
		return containsValue(f.Value, field)

	default:
		return true
	}
}

// ApplyFilters returns a new slice with the records that satisfy every
// filter, preserving their relative order. The input slice is never mutated.
func ApplyFilters(records []Record, filters []Filter) []Record {
	filtered := make([]Record, 0, len(records))

	for _, record := range records {
		if matchesAll(record, filters) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

func matchesAll(record Record, filters []Filter) bool {
	for _, filter := range filters {
		if !filter.Matches(record) {
			return false
		}
	}

	return true
}

// containsValue reports whether haystack is a slice containing needle under
// normalized equality. A non-slice haystack contains nothing.
func containsValue(haystack any, needle any) bool {
	if haystack == nil {
		return false
	}

	value := reflect.ValueOf(haystack)
	if value.Kind() != reflect.Slice && value.Kind() != reflect.Array {
		return false
	}

	for i := 0; i < value.Len(); i++ {
		if valuesEqual(value.Index(i).Interface(), needle) {
			return true
		}
	}

	return false
}
