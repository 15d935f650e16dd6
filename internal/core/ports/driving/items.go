package driving

import (
	"context"

	"github.com/keeperworks/itemvault/internal/core/domain"
)

// ItemService manages the item catalogue.
// Operations mirror the persistence layer 1:1; failures are propagated
// to the caller unmodified after logging, with no retry policy.
type ItemService interface {
	// Create inserts an item and returns its assigned id.
	Create(ctx context.Context, title, description, imageURL string) (int64, error)

	// List returns all items, most recently created first.
	List(ctx context.Context) ([]domain.Item, error)

	// Get retrieves an item by id.
	// Returns domain.ErrNotFound when no item matches.
	Get(ctx context.Context, id int64) (*domain.Item, error)

	// Update replaces all mutable fields of an item.
	// Succeeds silently when the id does not exist.
	Update(ctx context.Context, id int64, title, description, imageURL string) error

	// Remove deletes an item.
	// Succeeds silently when the id does not exist.
	Remove(ctx context.Context, id int64) error
}
