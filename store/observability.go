package store

// Logger interface for operational logging, warnings, and error reporting.
// It matches the log/slog method set, so a *slog.Logger satisfies it
// directly, while staying dependency-free for users with other backends.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
