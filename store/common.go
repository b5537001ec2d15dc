package store

import (
	"errors"
)

var (
	// ErrNilProxy is returned when a nil Proxy is supplied to WithProxy.
	ErrNilProxy = errors.New("nil proxy supplied")

	// ErrLoadingRecordsFailed is returned when the configured Proxy rejects a read.
	ErrLoadingRecordsFailed = errors.New("loading records from proxy failed")

	// ErrInvalidRecordsJSON is returned when record JSON data is malformed or not an array.
	ErrInvalidRecordsJSON = errors.New("records json is not valid")
)

// FieldNameString is a type alias for string, representing the name of a record field.
type FieldNameString = string

// RecordIndexInt is a type alias for int, representing a position in the base collection.
type RecordIndexInt = int
