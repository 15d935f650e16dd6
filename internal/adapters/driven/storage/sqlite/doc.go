// Package sqlite implements the ItemStore port on an embedded SQLite
// database (modernc.org/sqlite, no cgo).
//
// Initialization is explicit: NewStore only resolves paths, Open
// establishes the connection and runs migrations. Open is idempotent;
// any operation before Open fails with domain.ErrNotInitialized.
package sqlite
