package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AiondaDotCom/WebUI-sub002/store"
)

func Test_Record_ID(t *testing.T) {
	assert.Equal(t, "u1", store.Record{"id": "u1"}.ID())
	assert.Equal(t, 42, store.Record{"id": 42}.ID())
	assert.Nil(t, store.Record{"name": "Alice"}.ID())
	assert.Nil(t, store.Record{"id": nil}.ID())
}

func Test_Record_Has(t *testing.T) {
	record := store.Record{"id": "u1", "age": nil}

	assert.True(t, record.Has("id"))
	assert.True(t, record.Has("age"), "a field set to nil is still present")
	assert.False(t, record.Has("name"))
}

func Test_Record_Clone_IsShallowAndIndependent(t *testing.T) {
	original := store.Record{"id": "u1", "name": "Alice"}

	clone := original.Clone()
	clone["name"] = "Bob"
	clone["extra"] = true

	assert.Equal(t, "Alice", original["name"])
	assert.False(t, original.Has("extra"))
	assert.Equal(t, "u1", clone["id"])
}

func Test_Record_Diff(t *testing.T) {
	tests := []struct {
		name     string
		stored   store.Record
		changes  store.Record
		expected store.Record
	}{
		{
			name:     "changed_field_is_reported",
			stored:   store.Record{"id": "u1", "name": "Alice"},
			changes:  store.Record{"name": "Bob"},
			expected: store.Record{"name": "Bob"},
		},
		{
			name:     "unchanged_field_is_not_reported",
			stored:   store.Record{"id": "u1", "name": "Alice"},
			changes:  store.Record{"id": "u1", "name": "Alice"},
			expected: store.Record{},
		},
		{
			name:     "new_field_is_reported",
			stored:   store.Record{"id": "u1"},
			changes:  store.Record{"active": true},
			expected: store.Record{"active": true},
		},
		{
			name:     "numeric_values_compare_across_types",
			stored:   store.Record{"id": "u1", "age": 30},
			changes:  store.Record{"age": float64(30)},
			expected: store.Record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.stored.Diff(tt.changes))
		})
	}
}

func Test_NewRecordID_GeneratesUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id := store.NewRecordID()

		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "generated id must be unique")
		seen[id] = true
	}
}
