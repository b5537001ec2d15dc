package sqlproxy

import "errors"

var (
	// ErrNilDatabaseConnection occurs when a Proxy constructor receives a nil connection handle.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrEmptyTableName occurs when an empty table name is supplied to WithTableName.
	ErrEmptyTableName = errors.New("table name must not be empty")

	// ErrBuildingQueryFailed occurs when the select statement can not be converted to SQL.
	ErrBuildingQueryFailed = errors.New("building sql query failed")

	// ErrQueryingRecordsFailed occurs when executing the select statement fails.
	ErrQueryingRecordsFailed = errors.New("querying records failed")

	// ErrReadingColumnsFailed occurs when the result column names can not be read.
	ErrReadingColumnsFailed = errors.New("reading result columns failed")

	// ErrScanningRowFailed occurs when scanning a result row fails.
	ErrScanningRowFailed = errors.New("scanning database row failed")
)
