// Package sqlproxy provides a store.Proxy backed by a PostgreSQL table.
//
// A Proxy reads rows from one table and hands them to a store.Store as
// records, one record per row with column names as field names. The active
// filter and sorter specifications configured on the Proxy are pushed down
// into the generated SQL, so narrowing happens in the database rather than
// in memory. Load parameters become additional equality constraints.
//
// Constructors accept pgx pools, database/sql handles, and sqlx handles:
//
//	pool, _ := pgxpool.New(ctx, dsn)
//	proxy, err := sqlproxy.NewProxyFromPGXPool(pool,
//		sqlproxy.WithTableName("users"),
//		sqlproxy.WithSorters(store.Sorter{Property: "name", Direction: store.SortAscending}),
//	)
//	s, err := store.NewStore(store.WithProxy(proxy))
//	records, err := s.Load(ctx, map[string]any{"active": true})
package sqlproxy
