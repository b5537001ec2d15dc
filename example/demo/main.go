// A small walkthrough of the record store: mutations, events, filtering,
// sorting, and tree conversion, all in memory.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/AiondaDotCom/WebUI-sub002/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := store.NewStore(
		store.WithData([]store.Record{
			{"id": 1, "name": "Alice", "dept": "dev", "age": 30, "parent": nil},
			{"id": 2, "name": "Bob", "dept": "dev", "age": 25, "parent": 1},
			{"id": 3, "name": "Charlie", "dept": "sales", "age": 35, "parent": 1},
		}),
		store.WithLogger(logger),
	)
	if err != nil {
		log.Fatal("Failed to create the store, error: ", err)
	}

	s.On(store.EventAdd, func(payload any) {
		added := payload.(store.AddPayload)
		fmt.Printf("added %v at index %d\n", added.Record["name"], added.Index)
	})
	s.On(store.EventRecordUpdate, func(payload any) {
		update := payload.(store.RecordUpdatePayload)
		fmt.Printf("updated %v, changes: %v\n", update.Record["name"], update.Changes)
	})

	s.Add(store.Record{"id": store.NewRecordID(), "name": "Dora", "dept": "sales", "age": 28, "parent": 3})
	s.Update(store.Record{"id": 2, "age": 26})

	s.Filter(store.Filter{Property: "dept", Value: "sales", Operator: store.OpEq})
	s.Sort(store.Sorter{Property: "age", Direction: store.SortDescending})

	fmt.Println("sales, oldest first:")
	for _, record := range s.Records() {
		fmt.Printf("  %v (%v)\n", record["name"], record["age"])
	}

	s.ClearFilters()
	s.ClearSorters()

	tree := s.ToTree("parent", "children", nil)
	fmt.Printf("org tree has %d root(s)\n", len(tree))

	encoded, err := store.RecordsToJSON(s.Data())
	if err != nil {
		log.Fatal("Failed to encode the records, error: ", err)
	}
	fmt.Printf("exported %d bytes of JSON\n", len(encoded))
}
