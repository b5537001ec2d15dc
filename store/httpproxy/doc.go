// Package httpproxy provides a store.Proxy backed by an HTTP endpoint.
//
// A Proxy issues a GET request against one URL and decodes the JSON array
// response into records. Load parameters become query string parameters:
//
//	proxy, err := httpproxy.New("https://api.example.com/users",
//		httpproxy.WithHeader("Authorization", "Bearer "+token),
//	)
//	s, err := store.NewStore(store.WithProxy(proxy))
//	records, err := s.Load(ctx, map[string]any{"page": 2})
package httpproxy
