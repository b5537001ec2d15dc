// Package store provides the in-memory observable record collection that
// backs the data-driven widgets of the toolkit (tree views, dropdown and
// search lists, grids).
//
// A Store owns an ordered collection of shape-free records, the active
// filter and sorter specifications, and the loading state for an optional
// asynchronous Proxy. It exposes CRUD operations with change tracking,
// derives a filtered and sorted projection on demand, converts between
// flat and hierarchical representations, and emits lifecycle events that
// widgets subscribe to for re-rendering.
//
// The projection returned by Records is recomputed from the current base
// data and the current filter/sorter state on every call; it is never
// cached across mutations. The base collection keeps insertion order and
// is never reordered by filtering or sorting.
//
// Common usage pattern:
//
//	s, err := store.NewStore(
//		store.WithData(records),
//		store.WithSorters(store.Sorter{Property: "name", Direction: store.SortAscending}),
//	)
//	if err != nil {
//		// handle error
//	}
//
//	s.On(store.EventRecordUpdate, func(payload any) {
//		// re-render the affected row
//	})
//
//	s.Filter(store.Filter{Property: "active", Value: true})
//	visible := s.Records()
package store
