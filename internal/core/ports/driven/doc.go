// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ItemStore: item persistence (SQLite on native targets)
//   - ConfigStore: application configuration
//   - Platform: target capability detection
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Sharer: hands exported files to the OS share affordance. Without
//     it, export still writes the file and returns its path.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
