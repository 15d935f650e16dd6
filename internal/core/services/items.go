package services

import (
	"context"

	"github.com/keeperworks/itemvault/internal/core/domain"
	"github.com/keeperworks/itemvault/internal/core/ports/driven"
	"github.com/keeperworks/itemvault/internal/core/ports/driving"
	"github.com/keeperworks/itemvault/internal/logger"
)

// Ensure ItemService implements the interface.
var _ driving.ItemService = (*ItemService)(nil)

// ItemService manages the item catalogue.
// It mirrors the store 1:1 and performs no validation; the UI boundary
// validates before a write is attempted.
type ItemService struct {
	items driven.ItemStore
}

// NewItemService creates a new item service.
func NewItemService(items driven.ItemStore) *ItemService {
	return &ItemService{items: items}
}

// Create inserts an item and returns its assigned id.
func (s *ItemService) Create(ctx context.Context, title, description, imageURL string) (int64, error) {
	if s.items == nil {
		return 0, domain.ErrNotInitialized
	}

	id, err := s.items.Create(ctx, title, description, imageURL)
	if err != nil {
		return 0, err
	}
	logger.Debug("created item %d (%q)", id, title)
	return id, nil
}

// List returns all items, most recently created first.
func (s *ItemService) List(ctx context.Context) ([]domain.Item, error) {
	if s.items == nil {
		return nil, domain.ErrNotInitialized
	}

	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("listed %d items", len(items))
	return items, nil
}

// Get retrieves an item by id. domain.ErrNotFound passes through.
func (s *ItemService) Get(ctx context.Context, id int64) (*domain.Item, error) {
	if s.items == nil {
		return nil, domain.ErrNotInitialized
	}
	return s.items.Get(ctx, id)
}

// Update replaces all mutable fields of an item.
func (s *ItemService) Update(ctx context.Context, id int64, title, description, imageURL string) error {
	if s.items == nil {
		return domain.ErrNotInitialized
	}

	if err := s.items.Update(ctx, id, title, description, imageURL); err != nil {
		return err
	}
	logger.Debug("updated item %d", id)
	return nil
}

// Remove deletes an item.
func (s *ItemService) Remove(ctx context.Context, id int64) error {
	if s.items == nil {
		return domain.ErrNotInitialized
	}

	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	logger.Debug("removed item %d", id)
	return nil
}
