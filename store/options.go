package store

// Option defines a functional option for configuring a Store.
type Option func(*Store) error

// WithData sets the initial base data of the Store. The slice is adopted as
// is; a nil slice leaves the Store empty.
func WithData(data []Record) Option {
	return func(s *Store) error {
		if data == nil {
			data = []Record{}
		}

		s.data = data

		return nil
	}
}

// WithProxy sets the asynchronous data source for Load.
func WithProxy(proxy Proxy) Option {
	return func(s *Store) error {
		if proxy == nil {
			return ErrNilProxy
		}

		s.proxy = proxy

		return nil
	}
}

// WithSorters sets the initial sorter sequence. The first sorter is the
// primary sort key.
func WithSorters(sorters ...Sorter) Option {
	return func(s *Store) error {
		s.sorters = sorters

		return nil
	}
}

// WithFilters sets the initial filter sequence. Filters combine with AND
// semantics.
func WithFilters(filters ...Filter) Option {
	return func(s *Store) error {
		s.filters = filters

		return nil
	}
}

// WithAutoLoad makes NewStore trigger an initial Load from the configured
// Proxy. Without a Proxy the initial load degrades like any proxyless Load:
// the Store constructs empty and a warning is logged. A failed initial load
// is returned from NewStore alongside the constructed Store, which remains
// usable.
func WithAutoLoad(autoLoad bool) Option {
	return func(s *Store) error {
		s.autoLoad = autoLoad

		return nil
	}
}

// WithLogger sets the logger for the Store, replacing the slog default the
// Store starts with; a nil logger silences the Store entirely.
// The logger will receive messages at different levels based on the logger's
// configured level:
//
// Info level: load completions with record counts (production-safe)
// Warn level: non-fatal misuse such as Load without a configured Proxy
// Error level: proxy read failures.
func WithLogger(logger Logger) Option {
	return func(s *Store) error {
		s.logger = logger

		return nil
	}
}
