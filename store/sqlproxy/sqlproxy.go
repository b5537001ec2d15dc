package sqlproxy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AiondaDotCom/WebUI-sub002/store"
	"github.com/AiondaDotCom/WebUI-sub002/store/sqlproxy/internal/adapters"
)

const (
	defaultTableName             = "records"
	logMsgBuildSelectQueryFailed = "failed to build select query"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgReadColumnsFailed      = "failed to read result columns"
	logMsgScanRowFailed          = "failed to scan database row"
	logMsgReadCompleted          = "read completed"
	logMsgSQLExecuted            = "executed sql"
	logAttrError                 = "error"
	logAttrQuery                 = "query"
	logAttrRecordCount           = "record_count"
	logAttrDurationMS            = "duration_ms"
	dialectPostgres              = "postgres"
	likeWildcard                 = "%"
)

type sqlQueryString = string

// Logger interface for SQL query logging, operational metrics, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Proxy reads records from a single PostgreSQL table.
// It leverages a database adapter and supports customizable logging, table,
// column, filter, and sorter configuration. The zero value is not usable;
// construct with one of the NewProxyFrom* constructors.
type Proxy struct {
	db        adapters.DBAdapter
	tableName string
	columns   []string
	filters   []store.Filter
	sorters   []store.Sorter
	logger    Logger
}

// Option defines a functional option for configuring a Proxy.
type Option func(*Proxy) error

// WithTableName sets the table name for the Proxy.
func WithTableName(tableName string) Option {
	return func(p *Proxy) error {
		if tableName == "" {
			return ErrEmptyTableName
		}

		p.tableName = tableName

		return nil
	}
}

// WithColumns restricts the select to the given columns.
// Without it the Proxy selects all columns of the table.
func WithColumns(columns ...string) Option {
	return func(p *Proxy) error {
		p.columns = columns
		return nil
	}
}

// WithFilters sets filter specifications that are pushed down into the
// generated SQL on every Read. Filters with an operator the SQL layer does
// not understand are skipped, mirroring the in-memory behavior of unknown
// operators matching everything.
func WithFilters(filters ...store.Filter) Option {
	return func(p *Proxy) error {
		p.filters = filters
		return nil
	}
}

// WithSorters sets sorter specifications that become the ORDER BY clause of
// every Read, in sequence order.
func WithSorters(sorters ...store.Sorter) Option {
	return func(p *Proxy) error {
		p.sorters = sorters
		return nil
	}
}

// WithLogger sets the logger for the Proxy.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Info level: Record counts and durations (production-safe)
// Warn level: Non-critical issues like cleanup failures
// Error level: Critical failures that cause operation failures.
func WithLogger(logger Logger) Option {
	return func(p *Proxy) error {
		p.logger = logger
		return nil
	}
}

// NewProxyFromPGXPool creates a new Proxy using a pgx Pool with optional configuration.
func NewProxyFromPGXPool(db *pgxpool.Pool, options ...Option) (Proxy, error) {
	if db == nil {
		return Proxy{}, ErrNilDatabaseConnection
	}

	return newProxy(adapters.NewPGXAdapter(db), options...)
}

// NewProxyFromPGXPoolWithReplica creates a new Proxy using a primary pgx Pool
// and a replica pool that serves the reads, with optional configuration.
func NewProxyFromPGXPoolWithReplica(db *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (Proxy, error) {
	if db == nil || replica == nil {
		return Proxy{}, ErrNilDatabaseConnection
	}

	return newProxy(adapters.NewPGXAdapterWithReplica(db, replica), options...)
}

// NewProxyFromSQLDB creates a new Proxy using a sql.DB with optional configuration.
func NewProxyFromSQLDB(db *sql.DB, options ...Option) (Proxy, error) {
	if db == nil {
		return Proxy{}, ErrNilDatabaseConnection
	}

	return newProxy(adapters.NewSQLAdapter(db), options...)
}

// NewProxyFromSQLX creates a new Proxy using a sqlx.DB with optional configuration.
func NewProxyFromSQLX(db *sqlx.DB, options ...Option) (Proxy, error) {
	if db == nil {
		return Proxy{}, ErrNilDatabaseConnection
	}

	return newProxy(adapters.NewSQLXAdapter(db), options...)
}

func newProxy(db adapters.DBAdapter, options ...Option) (Proxy, error) {
	p := Proxy{
		db:        db,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(&p); err != nil {
			return Proxy{}, err
		}
	}

	return p, nil
}

// Read retrieves records from the table, one record per row with column
// names as field names. The configured filters and sorters shape the query;
// params add equality constraints on top of the configured filters.
// Read implements store.Proxy.
func (p Proxy) Read(ctx context.Context, params map[string]any) ([]store.Record, error) {
	sqlQuery, buildQueryErr := p.buildSelectQuery(params)
	if buildQueryErr != nil {
		if p.logger != nil {
			p.logger.Error(logMsgBuildSelectQueryFailed, logAttrError, buildQueryErr.Error())
		}
		return nil, buildQueryErr
	}

	rows, duration, queryErr := p.executeQuery(ctx, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer p.closeRows(rows)

	records, scanErr := p.scanRecords(rows)
	if scanErr != nil {
		return nil, scanErr
	}

	if p.logger != nil {
		p.logger.Info(
			logMsgReadCompleted,
			logAttrRecordCount, len(records),
			logAttrDurationMS, p.durationToMilliseconds(duration))
	}

	return records, nil
}

// executeQuery executes the SQL query and returns rows with timing information.
func (p Proxy) executeQuery(ctx context.Context, sqlQuery sqlQueryString) (
	adapters.DBRows,
	time.Duration,
	error,
) {

	start := time.Now()
	rows, queryErr := p.db.Query(ctx, sqlQuery)
	duration := time.Since(start)

	if p.logger != nil {
		p.logger.Debug(logMsgSQLExecuted, logAttrDurationMS, p.durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}

	if queryErr != nil {
		if p.logger != nil {
			p.logger.Error(logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		}

		return nil, duration, errors.Join(ErrQueryingRecordsFailed, queryErr)
	}

	return rows, duration, nil
}

// closeRows safely closes database rows and logs any errors.
func (p Proxy) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if p.logger != nil {
			p.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

// scanRecords converts database rows into records.
func (p Proxy) scanRecords(rows adapters.DBRows) ([]store.Record, error) {
	columns, columnsErr := rows.Columns()
	if columnsErr != nil {
		if p.logger != nil {
			p.logger.Error(logMsgReadColumnsFailed, logAttrError, columnsErr.Error())
		}

		return nil, errors.Join(ErrReadingColumnsFailed, columnsErr)
	}

	records := make([]store.Record, 0)
	values := make([]any, len(columns))
	pointers := make([]any, len(columns))

	for i := range values {
		pointers[i] = &values[i]
	}

	for rows.Next() {
		if scanErr := rows.Scan(pointers...); scanErr != nil {
			if p.logger != nil {
				p.logger.Error(logMsgScanRowFailed, logAttrError, scanErr.Error())
			}

			return nil, errors.Join(ErrScanningRowFailed, scanErr)
		}

		record := make(store.Record, len(columns))
		for i, column := range columns {
			record[column] = normalizeValue(values[i])
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, errors.Join(ErrQueryingRecordsFailed, rowsErr)
	}

	return records, nil
}

// normalizeValue maps driver-specific scan results to plain record values.
// database/sql drivers hand text columns back as byte slices.
func normalizeValue(value any) any {
	if raw, ok := value.([]byte); ok {
		return string(raw)
	}

	return value
}

func (p Proxy) buildSelectQuery(params map[string]any) (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).From(p.tableName)

	if len(p.columns) > 0 {
		selection := make([]any, len(p.columns))
		for i, column := range p.columns {
			selection[i] = column
		}

		selectStmt = selectStmt.Select(selection...)
	}

	if expressions := p.whereExpressions(params); len(expressions) > 0 {
		selectStmt = selectStmt.Where(goqu.And(expressions...))
	}

	if len(p.sorters) > 0 {
		selectStmt = selectStmt.Order(p.orderedExpressions()...)
	}

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// whereExpressions combines the configured filters with the per-read params.
// Params are applied in sorted key order so the generated SQL is stable.
func (p Proxy) whereExpressions(params map[string]any) []goqu.Expression {
	expressions := make([]goqu.Expression, 0, len(p.filters)+len(params))

	for _, filter := range p.filters {
		if expression, ok := filterExpression(filter); ok {
			expressions = append(expressions, expression)
		}
	}

	paramKeys := make([]string, 0, len(params))
	for key := range params {
		paramKeys = append(paramKeys, key)
	}
	sort.Strings(paramKeys)

	for _, key := range paramKeys {
		expressions = append(expressions, goqu.C(key).Eq(params[key]))
	}

	return expressions
}

// filterExpression translates one filter specification into a SQL predicate.
// Unknown operators report false and are left out of the WHERE clause.
func filterExpression(filter store.Filter) (goqu.Expression, bool) {
	column := goqu.C(filter.Property)

	switch filter.Operator {
	case "", store.OpEq:
		return column.Eq(filter.Value), true

	case store.OpNe:
		return column.Neq(filter.Value), true

	case store.OpGt:
		return column.Gt(filter.Value), true

	case store.OpGte:
		return column.Gte(filter.Value), true

	case store.OpLt:
		return column.Lt(filter.Value), true

	case store.OpLte:
		return column.Lte(filter.Value), true

	case store.OpLike:
		pattern := likeWildcard + fmt.Sprintf("%v", filter.Value) + likeWildcard
		return column.ILike(pattern), true

	case store.OpIn:
		return column.In(filter.Value), true

	default:
		return nil, false
	}
}

func (p Proxy) orderedExpressions() []exp.OrderedExpression {
	ordered := make([]exp.OrderedExpression, len(p.sorters))

	for i, sorter := range p.sorters {
		if sorter.Direction == store.SortDescending {
			ordered[i] = goqu.I(sorter.Property).Desc()
		} else {
			ordered[i] = goqu.I(sorter.Property).Asc()
		}
	}

	return ordered
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (p Proxy) durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
