package store

import (
	"context"
)

// Proxy is the asynchronous data source collaborator a Store loads from.
// Read returns the records for the given request parameters, or an error.
// The Store does not retry a failed read and does not deduplicate
// overlapping reads; callers own both policies.
type Proxy interface {
	Read(ctx context.Context, params map[string]any) ([]Record, error)
}

// ProxyFunc adapts a plain function to the Proxy interface.
type ProxyFunc func(ctx context.Context, params map[string]any) ([]Record, error)

// Read calls the wrapped function.
func (f ProxyFunc) Read(ctx context.Context, params map[string]any) ([]Record, error) {
	return f(ctx, params)
}
