// Package config provides database configuration helpers for PostgreSQL connections
// for the examples: a user directory loaded into a record store.
//
// This package contains factory functions for creating database connections
// using different PostgreSQL drivers (pgx.Pool, sql.DB, sqlx.DB) with a
// pre-configured example database DSN.
package config
