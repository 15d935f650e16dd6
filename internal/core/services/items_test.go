package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keeperworks/itemvault/internal/adapters/driven/storage/memory"
	"github.com/keeperworks/itemvault/internal/core/domain"
)

func TestNewItemService(t *testing.T) {
	svc := NewItemService(memory.NewItemStore())
	require.NotNil(t, svc)
}

func TestItemService_NilStore(t *testing.T) {
	svc := NewItemService(nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Milk", "", "")
	assert.ErrorIs(t, err, domain.ErrNotInitialized)

	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, domain.ErrNotInitialized)

	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotInitialized)

	assert.ErrorIs(t, svc.Update(ctx, 1, "x", "", ""), domain.ErrNotInitialized)
	assert.ErrorIs(t, svc.Remove(ctx, 1), domain.ErrNotInitialized)
}

func TestItemService_CreateAndList(t *testing.T) {
	store := memory.NewItemStore()
	svc := NewItemService(store)
	ctx := context.Background()

	id1, err := svc.Create(ctx, "Milk", "2 liters", "")
	require.NoError(t, err)
	id2, err := svc.Create(ctx, "Bread", "", "")
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Most recent first.
	assert.Equal(t, "Bread", items[0].Title)
	assert.Equal(t, "Milk", items[1].Title)
}

func TestItemService_Get(t *testing.T) {
	store := memory.NewItemStore()
	svc := NewItemService(store)
	ctx := context.Background()

	id, err := svc.Create(ctx, "Milk", "2 liters", "data:image/png;base64,AAAA")
	require.NoError(t, err)

	item, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Milk", item.Title)
	assert.Equal(t, "data:image/png;base64,AAAA", item.ImageURL)

	_, err = svc.Get(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemService_UpdateReplacesAllFields(t *testing.T) {
	store := memory.NewItemStore()
	svc := NewItemService(store)
	ctx := context.Background()

	id, err := svc.Create(ctx, "Milk", "2 liters", "https://example.com/milk.png")
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, id, "Oat milk", "", ""))

	item, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Oat milk", item.Title)
	assert.Empty(t, item.Description)
	assert.Empty(t, item.ImageURL)
}

func TestItemService_RemoveAbsentID(t *testing.T) {
	store := memory.NewItemStore()
	svc := NewItemService(store)
	ctx := context.Background()

	assert.NoError(t, svc.Remove(ctx, 999))
	assert.NoError(t, svc.Update(ctx, 999, "Ghost", "", ""))
}
