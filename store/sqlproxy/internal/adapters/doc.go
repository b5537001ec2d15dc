// Package adapters provides database driver adapters for the SQL proxy.
//
// It abstracts over pgx pools, database/sql, and sqlx connections behind a
// minimal read-only interface, so the proxy can build and scan one query
// regardless of which driver the application already uses.
package adapters
