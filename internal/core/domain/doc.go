// Package domain defines the core business entities for ItemVault.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Item: The catalogued entity (title, description, image reference)
//   - Snapshot: A full-database representation for export/import
//   - Envelope: The {"export": ...} wrapper written to backup files
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
