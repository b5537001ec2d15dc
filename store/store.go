package store

import (
	"context"
	"errors"
	"log/slog"
)

const (
	logMsgLoadWithoutProxy = "load called without a configured proxy, resolving empty"
	logMsgProxyReadFailed  = "proxy read failed"
	logMsgLoadCompleted    = "load completed"
	logMsgAutoLoadFailed   = "autoload failed"
	logAttrError           = "error"
	logAttrRecordCount     = "record_count"
)

// Store owns a base record collection, the active filter and sorter
// specifications, and the loading state of an optional Proxy. It is created
// once per owning widget and lives as long as that widget; it holds no
// resources that must be closed.
//
// All operations except Load are synchronous and run to completion. Event
// emission is synchronous too: handlers run before the emitting call
// returns, and they must be re-entrancy aware if they mutate the Store.
type Store struct {
	events   *emitter
	data     []Record
	sorters  []Sorter
	filters  []Filter
	proxy    Proxy
	loading  bool
	autoLoad bool
	logger   Logger
}

// NewStore creates a Store with optional configuration.
//
// With WithAutoLoad and a configured Proxy, the initial Load runs before
// NewStore returns; if it fails, the error is returned together with the
// constructed Store, which stays usable (retry by calling Load again).
// AutoLoad without a Proxy degrades like a proxyless Load: the Store is
// constructed empty and a warning is logged.
func NewStore(options ...Option) (*Store, error) {
	s := &Store{
		events: newEmitter(),
		data:   []Record{},
		logger: slog.Default(),
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	if s.autoLoad {
		if _, err := s.Load(context.Background(), nil); err != nil {
			s.logError(logMsgAutoLoadFailed, logAttrError, err.Error())

			return s, err
		}
	}

	return s, nil
}

// On registers a handler for the given event name. Handlers run
// synchronously and in registration order when the event is emitted.
func (s *Store) On(event string, handler Handler) {
	s.events.On(event, handler)
}

// Off removes a previously registered handler for the event.
func (s *Store) Off(event string, handler Handler) {
	s.events.Off(event, handler)
}

// Emit delivers an event to the registered handlers. The Store emits its
// own lifecycle events through the same dispatcher.
func (s *Store) Emit(event string, payload any) {
	s.events.Emit(event, payload)
}

// Loading reports whether a Load is in flight: true strictly between the
// start and the settle (success or failure) of a Load call.
func (s *Store) Loading() bool {
	return s.loading
}

// Data returns the base record collection in insertion order, unaffected by
// filters and sorters. The slice is the Store's own; treat it as read-only.
func (s *Store) Data() []Record {
	return s.data
}

// Sorters returns the active sorter sequence.
func (s *Store) Sorters() []Sorter {
	return s.sorters
}

// Filters returns the active filter sequence.
func (s *Store) Filters() []Filter {
	return s.filters
}

// Load reads records from the configured Proxy and replaces the base data
// with the result.
//
// Without a Proxy it logs a warning and resolves with an empty slice - no
// exception event, no error. With a Proxy it emits beforeload, awaits the
// read, and on success replaces the data and emits load. On failure it
// emits exception and returns the error; the Store does not retry, and
// overlapping Loads are not deduplicated (last write wins).
func (s *Store) Load(ctx context.Context, params map[string]any) ([]Record, error) {
	if s.proxy == nil {
		s.logWarn(logMsgLoadWithoutProxy)

		return []Record{}, nil
	}

	s.loading = true
	s.Emit(EventBeforeLoad, nil)

	records, readErr := s.proxy.Read(ctx, params)
	s.loading = false

	if readErr != nil {
		err := errors.Join(ErrLoadingRecordsFailed, readErr)
		s.logError(logMsgProxyReadFailed, logAttrError, readErr.Error())
		s.Emit(EventException, ExceptionPayload{Err: err})

		return nil, err
	}

	if records == nil {
		records = []Record{}
	}

	s.data = records
	s.Emit(EventLoad, LoadPayload{Data: records})
	s.logInfo(logMsgLoadCompleted, logAttrRecordCount, len(records))

	return records, nil
}

// LoadData synchronously replaces the base data and emits load. A nil slice
// replaces the data with an empty collection. No Proxy is involved.
func (s *Store) LoadData(data []Record) {
	if data == nil {
		data = []Record{}
	}

	s.data = data
	s.Emit(EventLoad, LoadPayload{Data: data})
}

// SetData is an alias for LoadData.
func (s *Store) SetData(data []Record) {
	s.LoadData(data)
}

// Add appends the record to the end of the base data and emits add with the
// record and its new index. Chainable.
func (s *Store) Add(record Record) *Store {
	index := len(s.data)
	s.data = append(s.data, record)
	s.Emit(EventAdd, AddPayload{Record: record, Index: index})

	return s
}

// Remove removes the record by identity (same underlying map). A record not
// present is a no-op and emits nothing. Chainable.
func (s *Store) Remove(record Record) *Store {
	index := s.IndexOf(record)
	if index < 0 {
		return s
	}

	s.data = append(s.data[:index:index], s.data[index+1:]...)
	s.Emit(EventRemove, RemovePayload{Record: record, Index: index})

	return s
}

// RemoveAt removes the record at the given base-data index and returns it.
// An out-of-range index returns nil and emits nothing.
func (s *Store) RemoveAt(index RecordIndexInt) Record {
	if index < 0 || index >= len(s.data) {
		return nil
	}

	removed := s.data[index]
	s.data = append(s.data[:index:index], s.data[index+1:]...)
	s.Emit(EventRemove, RemovePayload{Record: removed, Index: index})

	return removed
}

// UpdateAt shallow-merges changes into the record at the given base-data
// index and returns the updated record, or nil for an out-of-range index.
// It emits the generic update event and a recordupdate event whose Changes
// carries exactly the merged fields.
func (s *Store) UpdateAt(index RecordIndexInt, changes Record) Record {
	if index < 0 || index >= len(s.data) {
		return nil
	}

	record := s.data[index]
	for field, value := range changes {
		record[field] = value
	}

	s.Emit(EventUpdate, UpdatePayload{Record: record, Index: index})
	s.Emit(EventRecordUpdate, RecordUpdatePayload{Record: record, Index: index, Changes: changes.Clone()})

	return record
}

// Update locates the stored counterpart of the given record - by id when it
// carries one, by map identity otherwise - computes the field-level diff
// against the stored values, applies it, and emits recordupdate with only
// the changed fields (including fields new to the stored record). Returns
// the stored record, or nil when no counterpart is found.
func (s *Store) Update(record Record) Record {
	index := s.locate(record)
	if index < 0 {
		return nil
	}

	stored := s.data[index]
	changes := stored.Diff(record)

	for field, value := range changes {
		stored[field] = value
	}

	s.Emit(EventUpdate, UpdatePayload{Record: stored, Index: index})
	s.Emit(EventRecordUpdate, RecordUpdatePayload{Record: stored, Index: index, Changes: changes})

	return stored
}

// locate finds the base-data index of the record's stored counterpart.
func (s *Store) locate(record Record) int {
	if id := record.ID(); id != nil {
		for i, candidate := range s.data {
			if valuesEqual(candidate.ID(), id) {
				return i
			}
		}

		return -1
	}

	return s.IndexOf(record)
}

// Clear empties the base data and emits clear. The active filters and
// sorters are left untouched. Chainable.
func (s *Store) Clear() *Store {
	s.data = []Record{}
	s.Emit(EventClear, nil)

	return s
}

// Sort replaces the active sorter sequence and emits sort. Sorting is
// evaluated lazily by Records, not here. Chainable.
func (s *Store) Sort(sorters ...Sorter) *Store {
	s.sorters = sorters
	s.Emit(EventSort, SortPayload{Sorters: s.sorters})

	return s
}

// ClearSorters empties the sorter sequence and emits sort with an empty
// sequence. The active filters are unaffected. Chainable.
func (s *Store) ClearSorters() *Store {
	s.sorters = []Sorter{}
	s.Emit(EventSort, SortPayload{Sorters: s.sorters})

	return s
}

// Filter merges one filter into the active sequence: a filter for the same
// property is updated in place (value and operator replaced), otherwise the
// filter is appended. This allows incremental per-field filter editing
// without clobbering other active filters. Emits filter. Chainable.
func (s *Store) Filter(filter Filter) *Store {
	replaced := false

	for i, active := range s.filters {
		if active.Property == filter.Property {
			s.filters[i] = filter
			replaced = true

			break
		}
	}

	if !replaced {
		s.filters = append(s.filters, filter)
	}

	s.Emit(EventFilter, FilterPayload{Filters: s.filters})

	return s
}

// ReplaceFilters replaces the active filter sequence wholesale and emits
// filter. Chainable.
func (s *Store) ReplaceFilters(filters ...Filter) *Store {
	s.filters = filters
	s.Emit(EventFilter, FilterPayload{Filters: s.filters})

	return s
}

// ClearFilters empties the filter sequence and emits filter with an empty
// sequence. The active sorters are unaffected. Chainable.
func (s *Store) ClearFilters() *Store {
	s.filters = []Filter{}
	s.Emit(EventFilter, FilterPayload{Filters: s.filters})

	return s
}

// Records computes the projection: the base data narrowed by the active
// filters, then ordered by the active sorters. It returns a new slice on
// every call, recomputed from the current state - the projection is never
// cached, and the base data is never mutated or reordered.
func (s *Store) Records() []Record {
	return ApplySorters(ApplyFilters(s.data, s.filters), s.sorters)
}

// FilteredData is an alias for Records.
func (s *Store) FilteredData() []Record {
	return s.Records()
}

// Count returns the number of records in the unfiltered base data.
func (s *Store) Count() int {
	return len(s.data)
}

// At returns the record at the given base-data index, or nil when out of
// range. Index-based reads address the true underlying position, matching
// RemoveAt and UpdateAt, not a position in the filtered projection.
func (s *Store) At(index RecordIndexInt) Record {
	if index < 0 || index >= len(s.data) {
		return nil
	}

	return s.data[index]
}

// ByID returns the first base-data record whose id field equals the given
// value under normalized equality, or nil when absent.
func (s *Store) ByID(id any) Record {
	if id == nil {
		return nil
	}

	for _, record := range s.data {
		if valuesEqual(record.ID(), id) {
			return record
		}
	}

	return nil
}

// IndexOf returns the base-data index of the record by identity (same
// underlying map), or -1 when absent.
func (s *Store) IndexOf(record Record) int {
	for i, candidate := range s.data {
		if sameRecord(candidate, record) {
			return i
		}
	}

	return -1
}

func (s *Store) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Store) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

func (s *Store) logError(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Error(msg, args...)
	}
}
