// Package sqlite provides a SQLite-backed implementation of driven.StoreRepository.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.allowlist/data/allowlist.db
//
// # Ordering
//
// Stores enumerate by sort_order, then by insertion (rowid). Updating a store
// keeps its original position.
package sqlite
