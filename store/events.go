package store

// Event names emitted by a Store. Events with no documented payload
// (beforeload, clear) are emitted with a nil payload.
const (
	EventBeforeLoad   = "beforeload"
	EventLoad         = "load"
	EventException    = "exception"
	EventAdd          = "add"
	EventRemove       = "remove"
	EventUpdate       = "update"
	EventRecordUpdate = "recordupdate"
	EventSort         = "sort"
	EventFilter       = "filter"
	EventClear        = "clear"
)

// LoadPayload accompanies EventLoad: the records that now form the base data.
type LoadPayload struct {
	Data []Record
}

// ExceptionPayload accompanies EventException when a proxy read fails.
type ExceptionPayload struct {
	Err error
}

// AddPayload accompanies EventAdd.
type AddPayload struct {
	Record Record
	Index  RecordIndexInt
}

// RemovePayload accompanies EventRemove. Index is the record's position
// before removal.
type RemovePayload struct {
	Record Record
	Index  RecordIndexInt
}

// UpdatePayload accompanies the generic EventUpdate marker.
type UpdatePayload struct {
	Record Record
	Index  RecordIndexInt
}

// RecordUpdatePayload accompanies EventRecordUpdate. Changes carries exactly
// the fields that were merged into the record by the emitting operation.
type RecordUpdatePayload struct {
	Record  Record
	Index   RecordIndexInt
	Changes Record
}

// SortPayload accompanies EventSort: the sorter sequence now active.
type SortPayload struct {
	Sorters []Sorter
}

// FilterPayload accompanies EventFilter: the filter sequence now active.
type FilterPayload struct {
	Filters []Filter
}
