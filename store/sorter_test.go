package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AiondaDotCom/WebUI-sub002/store"
)

func namesOf(records []store.Record) []string {
	names := make([]string, len(records))
	for i, record := range records {
		names[i], _ = record["name"].(string)
	}

	return names
}

//nolint:funlen
func Test_ApplySorters(t *testing.T) {
	tests := []struct {
		name     string
		records  []store.Record
		sorters  []store.Sorter
		expected []string
	}{
		{
			name: "single_key_ascending",
			records: []store.Record{
				{"name": "Charlie", "age": 35},
				{"name": "Alice", "age": 30},
				{"name": "Bob", "age": 25},
			},
			sorters:  []store.Sorter{{Property: "name", Direction: store.SortAscending}},
			expected: []string{"Alice", "Bob", "Charlie"},
		},
		{
			name: "single_key_descending",
			records: []store.Record{
				{"name": "Alice", "age": 30},
				{"name": "Charlie", "age": 35},
				{"name": "Bob", "age": 25},
			},
			sorters:  []store.Sorter{{Property: "age", Direction: store.SortDescending}},
			expected: []string{"Charlie", "Alice", "Bob"},
		},
		{
			name: "second_key_breaks_ties_of_the_first",
			records: []store.Record{
				{"name": "Bob", "dept": "sales", "age": 40},
				{"name": "Alice", "dept": "dev", "age": 30},
				{"name": "Charlie", "dept": "sales", "age": 20},
			},
			sorters: []store.Sorter{
				{Property: "dept", Direction: store.SortAscending},
				{Property: "age", Direction: store.SortAscending},
			},
			expected: []string{"Alice", "Charlie", "Bob"},
		},
		{
			name: "equal_keys_keep_insertion_order",
			records: []store.Record{
				{"name": "Alice", "dept": "dev"},
				{"name": "Bob", "dept": "dev"},
				{"name": "Charlie", "dept": "dev"},
			},
			sorters:  []store.Sorter{{Property: "dept", Direction: store.SortAscending}},
			expected: []string{"Alice", "Bob", "Charlie"},
		},
		{
			name: "missing_value_sorts_first_ascending",
			records: []store.Record{
				{"name": "Alice", "age": 30},
				{"name": "Bob"},
				{"name": "Charlie", "age": 20},
			},
			sorters:  []store.Sorter{{Property: "age", Direction: store.SortAscending}},
			expected: []string{"Bob", "Charlie", "Alice"},
		},
		{
			name: "missing_value_sorts_last_descending",
			records: []store.Record{
				{"name": "Bob"},
				{"name": "Alice", "age": 30},
				{"name": "Charlie", "age": 20},
			},
			sorters:  []store.Sorter{{Property: "age", Direction: store.SortDescending}},
			expected: []string{"Alice", "Charlie", "Bob"},
		},
		{
			name: "numeric_values_compare_across_types",
			records: []store.Record{
				{"name": "Alice", "age": float64(30.5)},
				{"name": "Bob", "age": 7},
				{"name": "Charlie", "age": int64(100)},
			},
			sorters:  []store.Sorter{{Property: "age", Direction: store.SortAscending}},
			expected: []string{"Bob", "Alice", "Charlie"},
		},
		{
			name: "booleans_sort_false_before_true",
			records: []store.Record{
				{"name": "Alice", "active": true},
				{"name": "Bob", "active": false},
			},
			sorters:  []store.Sorter{{Property: "active", Direction: store.SortAscending}},
			expected: []string{"Bob", "Alice"},
		},
		{
			name: "no_sorters_returns_insertion_order",
			records: []store.Record{
				{"name": "Charlie"},
				{"name": "Alice"},
			},
			sorters:  nil,
			expected: []string{"Charlie", "Alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sorted := store.ApplySorters(tt.records, tt.sorters)

			assert.Equal(t, tt.expected, namesOf(sorted))
		})
	}
}

func Test_ApplySorters_DoesNotMutateTheInput(t *testing.T) {
	records := []store.Record{
		{"name": "Charlie"},
		{"name": "Alice"},
		{"name": "Bob"},
	}

	sorted := store.ApplySorters(records, []store.Sorter{{Property: "name", Direction: store.SortAscending}})

	assert.Equal(t, []string{"Charlie", "Alice", "Bob"}, namesOf(records))
	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, namesOf(sorted))
}
