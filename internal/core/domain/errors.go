package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested item does not exist.
	// A missed point lookup is a valid outcome callers branch on.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotInitialized indicates the store was used before Open.
	// Initialization is an explicit step, never triggered mid-call.
	ErrNotInitialized = errors.New("store not initialized")

	// Transfer errors.

	// ErrUnsupportedPlatform indicates export/import was invoked on a
	// target without filesystem and share capabilities. Checked before
	// any I/O is attempted.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrMalformedImport indicates an import payload is missing the
	// expected export envelope.
	ErrMalformedImport = errors.New("malformed import payload")

	// ErrAssignmentUnknown indicates the engine reported no assigned
	// row id on insert. Surfaced instead of an ambiguous zero id.
	ErrAssignmentUnknown = errors.New("assigned id unknown")
)
