package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AiondaDotCom/WebUI-sub002/store"
)

func newOrgStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.NewStore(store.WithData([]store.Record{
		{"id": 1, "name": "CEO", "parent": nil},
		{"id": 2, "name": "CTO", "parent": 1},
		{"id": 3, "name": "CFO", "parent": 1},
		{"id": 4, "name": "Dev", "parent": 2},
	}))
	require.NoError(t, err)

	return s
}

func Test_Store_ToTree(t *testing.T) {
	s := newOrgStore(t)

	tree := s.ToTree("parent", "children", nil)

	require.Len(t, tree, 1)
	ceo := tree[0]
	assert.Equal(t, "CEO", ceo["name"])

	children, ok := ceo["children"].([]store.Record)
	require.True(t, ok)
	require.Len(t, children, 2)
	assert.Equal(t, "CTO", children[0]["name"])
	assert.Equal(t, "CFO", children[1]["name"])

	grandchildren, ok := children[0]["children"].([]store.Record)
	require.True(t, ok)
	require.Len(t, grandchildren, 1)
	assert.Equal(t, "Dev", grandchildren[0]["name"])
	assert.Empty(t, grandchildren[0]["children"])
}

func Test_Store_ToTree_DoesNotMutateTheBaseData(t *testing.T) {
	s := newOrgStore(t)

	_ = s.ToTree("parent", "children", nil)

	for _, record := range s.Data() {
		assert.False(t, record.Has("children"))
	}
}

func Test_Store_ToTree_SkipsRecordsWithoutID(t *testing.T) {
	s, err := store.NewStore(store.WithData([]store.Record{
		{"id": 1, "name": "Root", "parent": nil},
		{"name": "Orphan", "parent": nil},
	}))
	require.NoError(t, err)

	tree := s.ToTree("parent", "children", nil)

	require.Len(t, tree, 1)
	assert.Equal(t, "Root", tree[0]["name"])
}

func Test_Store_ToTree_CutsCycles(t *testing.T) {
	s, err := store.NewStore(store.WithData([]store.Record{
		{"id": 1, "name": "A", "parent": 2},
		{"id": 2, "name": "B", "parent": 1},
		{"id": 3, "name": "Root", "parent": nil},
	}))
	require.NoError(t, err)

	tree := s.ToTree("parent", "children", nil)

	require.Len(t, tree, 1)
	assert.Equal(t, "Root", tree[0]["name"])
}

func Test_Store_ToTree_CutsSelfReference(t *testing.T) {
	s, err := store.NewStore(store.WithData([]store.Record{
		{"id": 1, "name": "Root", "parent": nil},
		{"id": 2, "name": "Loop", "parent": 2},
	}))
	require.NoError(t, err)

	tree := s.ToTree("parent", "children", nil)

	require.Len(t, tree, 1)
	assert.Equal(t, "Root", tree[0]["name"])
}

func Test_Store_ToTree_CutsReachableCycles(t *testing.T) {
	// Two records sharing an id make the node its own descendant.
	s, err := store.NewStore(store.WithData([]store.Record{
		{"id": 1, "name": "Root", "parent": nil},
		{"id": 1, "name": "Twin", "parent": 1},
	}))
	require.NoError(t, err)

	tree := s.ToTree("parent", "children", nil)

	require.Len(t, tree, 1)
	children, ok := tree[0]["children"].([]store.Record)
	require.True(t, ok)
	require.Len(t, children, 1)
	assert.Empty(t, children[0]["children"], "the repeated node must contribute no children")
}

func Test_FromTree(t *testing.T) {
	tree := []store.Record{
		{
			"id":   1,
			"name": "CEO",
			"children": []store.Record{
				{"id": 2, "name": "CTO", "children": []store.Record{
					{"id": 4, "name": "Dev"},
				}},
				{"id": 3, "name": "CFO"},
			},
		},
	}

	flat := store.FromTree(tree, "parent", "children")

	require.Len(t, flat, 4)
	assert.Equal(t, "CEO", flat[0]["name"])
	assert.Nil(t, flat[0]["parent"])
	assert.False(t, flat[0].Has("children"))
	assert.Equal(t, "CTO", flat[1]["name"])
	assert.Equal(t, 1, flat[1]["parent"])
	assert.Equal(t, "Dev", flat[2]["name"])
	assert.Equal(t, 2, flat[2]["parent"])
	assert.Equal(t, "CFO", flat[3]["name"])
	assert.Equal(t, 1, flat[3]["parent"])
}

func Test_FromTree_NilInputReturnsEmptySlice(t *testing.T) {
	flat := store.FromTree(nil, "parent", "children")

	assert.NotNil(t, flat)
	assert.Empty(t, flat)
}

func Test_FromTree_DoesNotMutateTheInput(t *testing.T) {
	node := store.Record{"id": 1, "name": "Root", "children": []store.Record{}}

	_ = store.FromTree([]store.Record{node}, "parent", "children")

	assert.True(t, node.Has("children"))
	assert.False(t, node.Has("parent"))
}

func Test_ToTree_FromTree_RoundTrip(t *testing.T) {
	s := newOrgStore(t)

	flat := store.FromTree(s.ToTree("parent", "children", nil), "parent", "children")

	require.Len(t, flat, 4)
	for i, name := range []string{"CEO", "CTO", "Dev", "CFO"} {
		assert.Equal(t, name, flat[i]["name"])
	}
}
