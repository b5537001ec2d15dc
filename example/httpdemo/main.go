// Loads a record store from a JSON HTTP endpoint through the HTTP proxy.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/AiondaDotCom/WebUI-sub002/store"
	"github.com/AiondaDotCom/WebUI-sub002/store/httpproxy"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	proxy, err := httpproxy.New("https://jsonplaceholder.typicode.com/users",
		httpproxy.WithClient(&http.Client{Timeout: 10 * time.Second}),
		httpproxy.WithHeader("User-Agent", "webui-store-demo"),
		httpproxy.WithLogger(logger),
	)
	if err != nil {
		log.Fatal("Failed to create the proxy, error: ", err)
	}

	s, err := store.NewStore(store.WithProxy(proxy), store.WithLogger(logger))
	if err != nil {
		log.Fatal("Failed to create the store, error: ", err)
	}

	if _, err = s.Load(ctx, nil); err != nil {
		log.Fatal("Failed to load the store, error: ", err)
	}

	s.Sort(store.Sorter{Property: "name", Direction: store.SortAscending})

	fmt.Printf("loaded %d users\n", s.Count())
	for _, record := range s.Records() {
		fmt.Printf("  %v\n", record["name"])
	}
}
