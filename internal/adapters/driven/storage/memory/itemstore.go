// Package memory provides in-memory implementations of the driven
// storage ports for testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/keeperworks/itemvault/internal/core/domain"
	"github.com/keeperworks/itemvault/internal/core/ports/driven"
)

// Ensure ItemStore implements the interface.
var _ driven.ItemStore = (*ItemStore)(nil)

// ItemStore is an in-memory implementation of driven.ItemStore for testing.
// It mirrors the SQLite store's contract: explicit Open, monotonic ids,
// no-existence-check updates and deletes.
type ItemStore struct {
	mu     sync.RWMutex
	open   bool
	nextID int64
	items  map[int64]domain.Item
}

// NewItemStore creates a new in-memory item store, already opened.
func NewItemStore() *ItemStore {
	return &ItemStore{
		open:   true,
		nextID: 1,
		items:  make(map[int64]domain.Item),
	}
}

// NewClosedItemStore creates a store that fails until Open is called.
func NewClosedItemStore() *ItemStore {
	s := NewItemStore()
	s.open = false
	return s
}

// Open marks the store usable. Idempotent.
func (s *ItemStore) Open(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
	return nil
}

// Reopen satisfies driven.Reopener.
func (s *ItemStore) Reopen(ctx context.Context) error {
	return s.Open(ctx)
}

// Create inserts an item with the next monotonic id.
func (s *ItemStore) Create(_ context.Context, title, description, imageURL string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return 0, domain.ErrNotInitialized
	}

	now := time.Now().UTC()
	id := s.nextID
	s.nextID++
	s.items[id] = domain.Item{
		ID:          id,
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return id, nil
}

// List returns all items in descending creation order.
func (s *ItemStore) List(_ context.Context) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, domain.ErrNotInitialized
	}

	items := make([]domain.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	return items, nil
}

// Get retrieves an item by id.
func (s *ItemStore) Get(_ context.Context, id int64) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, domain.ErrNotInitialized
	}

	item, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

// Update replaces the mutable fields; absent ids succeed silently.
func (s *ItemStore) Update(_ context.Context, id int64, title, description, imageURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return domain.ErrNotInitialized
	}

	item, ok := s.items[id]
	if !ok {
		return nil
	}
	item.Title = title
	item.Description = description
	item.ImageURL = imageURL
	item.UpdatedAt = time.Now().UTC()
	s.items[id] = item
	return nil
}

// Delete removes an item; absent ids succeed silently.
func (s *ItemStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return domain.ErrNotInitialized
	}

	delete(s.items, id)
	return nil
}

// Snapshot reads the full item set.
func (s *ItemStore) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewSnapshot(items, time.Now().UTC()), nil
}

// Restore replaces all stored data with the snapshot contents.
func (s *ItemStore) Restore(_ context.Context, snap *domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return domain.ErrNotInitialized
	}

	s.items = make(map[int64]domain.Item, len(snap.Items))
	for _, row := range snap.Items {
		s.items[row.ID] = row.Item()
		if row.ID >= s.nextID {
			s.nextID = row.ID + 1
		}
	}
	return nil
}

// Len reports the number of stored items (test helper).
func (s *ItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
