// Package peat is the Composition Root for the Peat application.
//
// It connects the core note store (Domain Layer) with the storage adapters
// (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Peat is a single-pane notebook that trusts the session. The in-memory
// store is the source of truth while the program runs; persistence is a
// best-effort write-through that never interrupts the user. Corrupt or
// missing state degrades to an empty notebook instead of an error.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence details.
//   - **Crash Safe Writes**: The file backend replaces state atomically.
//   - **Pluggable Backends**: File, SQLite, and in-memory adapters via `core.Adapter`.
//   - **Reactive**: Watchable backends push external changes into the UI.
//   - **Portable Notes**: Frontmatter export/import for moving notes between tools.
//
// Usage:
//
//	// Open the notebook with functional options
//	store, err := peat.Open(ctx, "",
//		peat.WithBackend(peat.BackendFile),
//		peat.WithLogger(logger),
//	)
//
//	// Create and edit a note
//	id := store.Create(ctx)
//	store.Update(ctx, id, peat.Patch{Title: peat.String("Groceries")})
package peat
