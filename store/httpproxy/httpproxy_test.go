package httpproxy_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AiondaDotCom/WebUI-sub002/store"
	"github.com/AiondaDotCom/WebUI-sub002/store/httpproxy"
)

func Test_New_EmptyURLFails(t *testing.T) {
	_, err := httpproxy.New("")

	assert.ErrorIs(t, err, httpproxy.ErrEmptyURL)
}

func Test_New_NilClientFails(t *testing.T) {
	_, err := httpproxy.New("https://api.example.com/users", httpproxy.WithClient(nil))

	assert.ErrorIs(t, err, httpproxy.ErrNilHTTPClient)
}

func Test_Proxy_Read_DecodesTheResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 1, "name": "Alice"}, {"id": 2, "name": "Bob"}]`))
	}))
	defer server.Close()

	proxy, err := httpproxy.New(server.URL,
		httpproxy.WithClient(server.Client()),
		httpproxy.WithHeader("Authorization", "Bearer token"),
	)
	require.NoError(t, err)

	records, readErr := proxy.Read(context.Background(), map[string]any{"page": 2})

	require.NoError(t, readErr)
	require.Len(t, records, 2)
	assert.Equal(t, "Alice", records[0]["name"])
}

func Test_Proxy_Read_MergesParamsIntoExistingQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "true", r.URL.Query().Get("active"))

		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	proxy, err := httpproxy.New(server.URL + "?format=json")
	require.NoError(t, err)

	records, readErr := proxy.Read(context.Background(), map[string]any{"active": true})

	require.NoError(t, readErr)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func Test_Proxy_Read_NonSuccessStatusFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	proxy, err := httpproxy.New(server.URL)
	require.NoError(t, err)

	records, readErr := proxy.Read(context.Background(), nil)

	assert.Nil(t, records)
	assert.ErrorIs(t, readErr, httpproxy.ErrUnexpectedStatus)
}

func Test_Proxy_Read_InvalidBodyFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer server.Close()

	proxy, err := httpproxy.New(server.URL)
	require.NoError(t, err)

	records, readErr := proxy.Read(context.Background(), nil)

	assert.Nil(t, records)
	assert.ErrorIs(t, readErr, httpproxy.ErrDecodingResponseFailed)
}

func Test_Proxy_Read_UnreachableEndpointFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	proxy, err := httpproxy.New(server.URL)
	require.NoError(t, err)

	records, readErr := proxy.Read(context.Background(), nil)

	assert.Nil(t, records)
	assert.ErrorIs(t, readErr, httpproxy.ErrRequestFailed)
}

func Test_Proxy_WorksAsStoreProxy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1}]`))
	}))
	defer server.Close()

	proxy, err := httpproxy.New(server.URL)
	require.NoError(t, err)

	s, storeErr := store.NewStore(store.WithProxy(proxy), store.WithAutoLoad(true))
	require.NoError(t, storeErr)
	assert.Equal(t, 1, s.Count())
}
