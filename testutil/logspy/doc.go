// Package logspy provides a slog.Handler test double that captures log
// records, so tests can assert that operations logged what they should.
package logspy
