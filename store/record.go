package store

import (
	"reflect"

	"github.com/google/uuid"
)

// IDField is the record field used for identity-based lookups (ByID, tree conversion).
const IDField = "id"

// Record is one element of a Store's collection: an arbitrary mapping of
// field name to value. Records are opaque to the Store - it never validates
// their shape. Only identity-keyed operations (ByID, ToTree) expect an "id"
// field, and only on the records that take part in them.
type Record map[FieldNameString]any

// NewRecordID generates a new unique record id for callers that create
// records on the client side before handing them to a Store.
func NewRecordID() string {
	return uuid.NewString()
}

// ID returns the value of the record's "id" field, or nil if absent.
func (r Record) ID() any {
	if r == nil {
		return nil
	}

	return r[IDField]
}

// Has reports whether the record carries the given field, regardless of its value.
func (r Record) Has(field FieldNameString) bool {
	_, ok := r[field]

	return ok
}

// Clone returns a shallow copy of the record. Nested values are shared.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}

	clone := make(Record, len(r))
	for field, value := range r {
		clone[field] = value
	}

	return clone
}

// Diff returns the subset of changes whose values differ from the record's
// currently stored values, including fields the record does not carry yet.
// Value equality follows the same normalization as the "eq" filter operator.
func (r Record) Diff(changes Record) Record {
	diff := make(Record)

	for field, value := range changes {
		current, ok := r[field]
		if !ok || !valuesEqual(current, value) {
			diff[field] = value
		}
	}

	return diff
}

// sameRecord reports whether a and b are the same underlying map.
// Records are maps, so identity is pointer identity, not value equality.
func sameRecord(a, b Record) bool {
	if a == nil || b == nil {
		return false
	}

	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
