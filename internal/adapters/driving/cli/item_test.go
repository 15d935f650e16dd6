package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keeperworks/itemvault/internal/core/domain"
)

func TestItemAdd(t *testing.T) {
	store := setupCLI(t)

	out, err := executeCommand(t, "item", "add", "--title", "Milk", "--description", "2 liters")
	require.NoError(t, err)
	assert.Contains(t, out, "Added item 1: Milk")

	items, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2 liters", items[0].Description)
}

func TestItemAdd_EmptyTitle(t *testing.T) {
	store := setupCLI(t)

	_, err := executeCommand(t, "item", "add", "--description", "no title")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, store.Len())
}

func TestItemAdd_NoServices(t *testing.T) {
	SetServices(nil)

	_, err := executeCommand(t, "item", "add", "--title", "Milk")
	assert.EqualError(t, err, "item service not configured")
}

func TestItemList(t *testing.T) {
	setupCLI(t)

	_, err := executeCommand(t, "item", "add", "--title", "Milk")
	require.NoError(t, err)
	_, err = executeCommand(t, "item", "add", "--title", "Bread")
	require.NoError(t, err)

	out, err := executeCommand(t, "item", "list")
	require.NoError(t, err)

	// Newest first.
	assert.Less(t, strings.Index(out, "Bread"), strings.Index(out, "Milk"))
	assert.Contains(t, out, "Total: 2 items")
}

func TestItemList_Empty(t *testing.T) {
	setupCLI(t)

	out, err := executeCommand(t, "item", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No items in the catalogue.")
}

func TestItemGet(t *testing.T) {
	setupCLI(t)

	_, err := executeCommand(t, "item", "add", "--title", "Milk", "--image", "https://example.com/milk.png")
	require.NoError(t, err)

	out, err := executeCommand(t, "item", "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Title:       Milk")
	assert.Contains(t, out, "https://example.com/milk.png (remote)")
}

func TestItemGet_NotFound(t *testing.T) {
	setupCLI(t)

	_, err := executeCommand(t, "item", "get", "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no item with id 42")
}

func TestItemGet_InvalidID(t *testing.T) {
	setupCLI(t)

	_, err := executeCommand(t, "item", "get", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid item id "abc"`)
}

func TestItemUpdate_ReplacesAllFields(t *testing.T) {
	store := setupCLI(t)

	_, err := executeCommand(t, "item", "add", "--title", "Milk", "--description", "2 liters")
	require.NoError(t, err)

	// Omitted flags clear their fields.
	itemTitle, itemDescription, itemImageURL = "", "", ""
	out, err := executeCommand(t, "item", "update", "1", "--title", "Oat milk")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated item 1.")

	item, err := store.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Oat milk", item.Title)
	assert.Empty(t, item.Description)
}

func TestItemUpdate_EmptyTitle(t *testing.T) {
	setupCLI(t)

	_, err := executeCommand(t, "item", "add", "--title", "Milk")
	require.NoError(t, err)

	itemTitle = ""
	_, err = executeCommand(t, "item", "update", "1", "--description", "only description")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemUpdate_AbsentID(t *testing.T) {
	setupCLI(t)

	out, err := executeCommand(t, "item", "update", "99", "--title", "Ghost")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated item 99.")
}

func TestItemRemove(t *testing.T) {
	store := setupCLI(t)

	_, err := executeCommand(t, "item", "add", "--title", "Milk")
	require.NoError(t, err)

	out, err := executeCommand(t, "item", "remove", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed item 1.")
	assert.Equal(t, 0, store.Len())
}

func TestItemRemove_AbsentID(t *testing.T) {
	setupCLI(t)

	out, err := executeCommand(t, "item", "remove", "99")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed item 99.")
}
