package driving

import "context"

// TransferService exports and imports the full item database.
// Both operations are gated on platform capability and fail with
// domain.ErrUnsupportedPlatform before attempting any I/O on targets
// without filesystem and share support.
type TransferService interface {
	// Export serializes the database to a timestamped JSON file in the
	// export directory, hands it to the share affordance, and returns
	// the written file's path.
	Export(ctx context.Context) (string, error)

	// Import reads an export file and replaces all stored data with
	// its contents. The connection is cycled afterwards to force a
	// clean state reload. Fails with domain.ErrMalformedImport when
	// the document lacks the export envelope.
	Import(ctx context.Context, path string) error

	// ImportBlob imports an in-memory payload by normalizing it to a
	// temporary file and delegating to Import.
	ImportBlob(ctx context.Context, data []byte) error
}
