// Loads a record store from a PostgreSQL table through the SQL proxy,
// with filter and sorter pushdown into the generated query.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AiondaDotCom/WebUI-sub002/example/config"
	"github.com/AiondaDotCom/WebUI-sub002/store"
	"github.com/AiondaDotCom/WebUI-sub002/store/sqlproxy"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	pool, err := pgxpool.NewWithConfig(ctx, config.PostgresPGXPoolConfig())
	if err != nil {
		log.Fatal("Failed to create the connection pool, error: ", err)
	}
	defer pool.Close()

	proxy, err := sqlproxy.NewProxyFromPGXPool(pool,
		sqlproxy.WithTableName("users"),
		sqlproxy.WithColumns("id", "name", "dept", "age"),
		sqlproxy.WithFilters(store.Filter{Property: "age", Value: 18, Operator: store.OpGte}),
		sqlproxy.WithSorters(store.Sorter{Property: "name", Direction: store.SortAscending}),
		sqlproxy.WithLogger(logger),
	)
	if err != nil {
		log.Fatal("Failed to create the proxy, error: ", err)
	}

	s, err := store.NewStore(
		store.WithProxy(proxy),
		store.WithAutoLoad(true),
		store.WithLogger(logger),
	)
	if err != nil {
		log.Fatal("Failed to load the store, error: ", err)
	}

	fmt.Printf("loaded %d adult users\n", s.Count())

	// Narrow further on the client side without touching the database.
	s.Filter(store.Filter{Property: "dept", Value: "dev", Operator: store.OpEq})
	for _, record := range s.Records() {
		fmt.Printf("  %v\n", record["name"])
	}

	// Reload with an extra equality constraint pushed into the query.
	if _, err = s.Load(ctx, map[string]any{"dept": "sales"}); err != nil {
		log.Fatal("Failed to reload the store, error: ", err)
	}
	fmt.Printf("reloaded %d sales users\n", s.Count())
}
