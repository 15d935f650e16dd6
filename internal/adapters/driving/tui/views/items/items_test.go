package items

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keeperworks/itemvault/internal/adapters/driven/storage/memory"
	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/messages"
	"github.com/keeperworks/itemvault/internal/core/services"
)

func newTestView(t *testing.T) (*View, *memory.ItemStore) {
	t.Helper()
	store := memory.NewItemStore()
	view := NewView(nil, services.NewItemService(store))
	view.SetDimensions(80, 24)
	return view, store
}

func TestNewView(t *testing.T) {
	view, _ := newTestView(t)

	require.NotNil(t, view)
	assert.Empty(t, view.Items())
	assert.False(t, view.Loading())
	assert.NoError(t, view.Err())
}

func TestView_Init_LoadsItems(t *testing.T) {
	view, store := newTestView(t)
	_, err := store.Create(context.Background(), "Milk", "", "")
	require.NoError(t, err)

	cmd := view.Init()
	require.NotNil(t, cmd)
	assert.True(t, view.Loading())

	msg := cmd()
	loaded, ok := msg.(messages.ItemsLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)

	view.Update(loaded)
	assert.False(t, view.Loading())
	require.Len(t, view.Items(), 1)
	assert.Equal(t, "Milk", view.Items()[0].Title)
}

func TestView_LoadOrder_NewestFirst(t *testing.T) {
	view, store := newTestView(t)
	ctx := context.Background()
	for _, title := range []string{"A", "B", "C"} {
		_, err := store.Create(ctx, title, "", "")
		require.NoError(t, err)
	}

	view.Update(view.Init()())

	titles := []string{}
	for _, item := range view.Items() {
		titles = append(titles, item.Title)
	}
	assert.Equal(t, []string{"C", "B", "A"}, titles)
}

func TestView_LoadError_KeepsListAndToasts(t *testing.T) {
	view, store := newTestView(t)
	_, err := store.Create(context.Background(), "Milk", "", "")
	require.NoError(t, err)
	view.Update(view.Init()())
	require.Len(t, view.Items(), 1)

	// A failed reload leaves the list on screen and raises the toast.
	loadErr := errors.New("database locked")
	view.Update(messages.ItemsLoaded{Err: loadErr})

	assert.False(t, view.Loading())
	assert.Equal(t, loadErr, view.Err())
	assert.Len(t, view.Items(), 1)
}

func TestView_DismissError(t *testing.T) {
	view, _ := newTestView(t)
	view.Update(messages.ItemsLoaded{Err: errors.New("boom")})
	require.Error(t, view.Err())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.NoError(t, view.Err())
}

func TestView_Navigation(t *testing.T) {
	view, store := newTestView(t)
	ctx := context.Background()
	for _, title := range []string{"A", "B", "C"} {
		_, err := store.Create(ctx, title, "", "")
		require.NoError(t, err)
	}
	view.Update(view.Init()())

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	view.Update(down)
	view.Update(down)
	assert.Equal(t, 2, view.SelectedIndex())

	// Boundary.
	view.Update(down)
	assert.Equal(t, 2, view.SelectedIndex())

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, view.SelectedIndex())
	assert.Equal(t, "B", view.SelectedItem().Title)
}

func TestView_AddKey(t *testing.T) {
	view, _ := newTestView(t)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewItemForm, changed.View)
}

func TestView_EscReturnsToMenu(t *testing.T) {
	view, _ := newTestView(t)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_ActionMenu_ShowDetail(t *testing.T) {
	view, store := newTestView(t)
	_, err := store.Create(context.Background(), "Milk", "", "")
	require.NoError(t, err)
	view.Update(view.Init()())

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, view.IsShowingMenu())

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, view.IsShowingMenu())

	selected, ok := cmd().(messages.ItemSelected)
	require.True(t, ok)
	assert.Equal(t, "Milk", selected.Item.Title)
}

func TestView_ActionMenu_Edit(t *testing.T) {
	view, store := newTestView(t)
	_, err := store.Create(context.Background(), "Milk", "", "")
	require.NoError(t, err)
	view.Update(view.Init()())

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	edit, ok := cmd().(messages.EditItem)
	require.True(t, ok)
	assert.Equal(t, "Milk", edit.Item.Title)
}

func TestView_ActionMenu_RemoveReloads(t *testing.T) {
	view, store := newTestView(t)
	_, err := store.Create(context.Background(), "Milk", "", "")
	require.NoError(t, err)
	view.Update(view.Init()())
	require.Len(t, view.Items(), 1)

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	removed, ok := cmd().(messages.ItemRemoved)
	require.True(t, ok)
	require.NoError(t, removed.Err)
	assert.Equal(t, 0, store.Len())

	// The successful mutation triggers a full reload.
	_, reload := view.Update(removed)
	require.NotNil(t, reload)
	assert.True(t, view.Loading())

	view.Update(reload())
	assert.False(t, view.Loading())
	assert.Empty(t, view.Items())
}

func TestView_RemoveError_KeepsList(t *testing.T) {
	view, store := newTestView(t)
	_, err := store.Create(context.Background(), "Milk", "", "")
	require.NoError(t, err)
	view.Update(view.Init()())

	removeErr := errors.New("disk full")
	_, cmd := view.Update(messages.ItemRemoved{ID: 1, Err: removeErr})

	assert.Nil(t, cmd)
	assert.Equal(t, removeErr, view.Err())
	assert.Len(t, view.Items(), 1)
}

func TestView_View_States(t *testing.T) {
	view, store := newTestView(t)

	// Empty state.
	view.Update(view.Init()())
	assert.Contains(t, view.View(), "No items yet")

	// Loading state.
	view.Reload()
	assert.Contains(t, view.View(), "Loading items...")

	// Populated state.
	_, err := store.Create(context.Background(), "Milk", "2 liters", "")
	require.NoError(t, err)
	view.Update(view.Reload()())
	assert.Contains(t, view.View(), "Items (1)")
	assert.Contains(t, view.View(), "Milk")
}

func TestView_SelectionClampedAfterReload(t *testing.T) {
	view, store := newTestView(t)
	ctx := context.Background()
	id, err := store.Create(ctx, "A", "", "")
	require.NoError(t, err)
	_, err = store.Create(ctx, "B", "", "")
	require.NoError(t, err)
	view.Update(view.Init()())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	require.Equal(t, 1, view.SelectedIndex())

	require.NoError(t, store.Delete(ctx, id))
	view.Update(view.Reload()())

	assert.Equal(t, 0, view.SelectedIndex())
	require.NotNil(t, view.SelectedItem())
	assert.Equal(t, "B", view.SelectedItem().Title)
}
