// Package sqlite provides the SQLite-backed lookup history store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. The schema is managed through versioned migrations embedded
// from the migrations/ directory (NNN_name.up.sql).
//
// By default the database is stored at ~/.pestsearch/data/history.db.
// The store opens the database in WAL mode, so the CLI and a running TUI can
// share it.
package sqlite
