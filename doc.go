// Package notekeeper is the Composition Root for the notekeeper application.
//
// It connects the core datastore logic (Domain Layer) with the storage
// adapters (Persistence Layer) using the Hexagonal Architecture pattern.
//
// A datastore is a single JSON file, <base-dir>/<name>.json, holding an
// array of notes:
//
//	[{"id":"1","name":"Groceries"},{"id":"2","name":"Gym"}]
//
// Every operation loads the whole array; Save appends and rewrites the whole
// file atomically. There is no locking across processes: two processes saving
// into the same datastore at once can lose one of the updates.
//
// Usage:
//
//	svc, err := notekeeper.New("./data",
//		notekeeper.WithStore("notes"),
//		notekeeper.WithLogger(logger),
//	)
//
//	note, err := svc.SaveNote(ctx, "1", "Groceries")
package notekeeper
