package driven

import (
	"context"

	"github.com/keeperworks/itemvault/internal/core/domain"
)

// ItemStore persists items.
// Backed by SQLite on native targets; an in-memory implementation
// exists for tests.
//
// Every method requires the store to have been opened explicitly.
// Calls against an un-opened store fail with domain.ErrNotInitialized
// rather than triggering initialization mid-call.
type ItemStore interface {
	// Create inserts an item and returns the engine-assigned id.
	// No validation is performed; callers validate at the UI boundary.
	// Fails with domain.ErrAssignmentUnknown if the engine reports no id.
	Create(ctx context.Context, title, description, imageURL string) (int64, error)

	// List returns all items in descending creation order.
	// An empty table yields an empty slice, never an error.
	List(ctx context.Context) ([]domain.Item, error)

	// Get retrieves an item by id.
	// Fails with domain.ErrNotFound when no row matches.
	Get(ctx context.Context, id int64) (*domain.Item, error)

	// Update replaces title, description, and imageURL wholesale and
	// refreshes updated_at. Zero rows affected is success; no
	// existence check is performed.
	Update(ctx context.Context, id int64, title, description, imageURL string) error

	// Delete removes an item. Same no-existence-check semantics as Update.
	Delete(ctx context.Context, id int64) error

	// Snapshot reads the full table for export.
	Snapshot(ctx context.Context) (*domain.Snapshot, error)

	// Restore replaces all stored data with the snapshot contents.
	// No merge is performed.
	Restore(ctx context.Context, snap *domain.Snapshot) error
}

// Reopener forces a clean state reload after a wholesale import.
// Implemented by stores whose connection can be cycled.
type Reopener interface {
	// Reopen closes and reopens the underlying connection.
	Reopen(ctx context.Context) error
}
