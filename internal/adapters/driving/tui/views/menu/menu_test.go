package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/messages"
	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/styles"
)

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles())

	require.NotNil(t, view)
	assert.Len(t, view.items, 4)
	assert.Equal(t, 0, view.selected)
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
}

func TestView_Update_Navigation(t *testing.T) {
	view := NewView(nil)

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	view.Update(down)
	assert.Equal(t, 1, view.selected)
	view.Update(down)
	view.Update(down)
	assert.Equal(t, 3, view.selected)

	// Boundary: can't go past last item.
	view.Update(down)
	assert.Equal(t, 3, view.selected)

	up := tea.KeyMsg{Type: tea.KeyUp}
	view.Update(up)
	assert.Equal(t, 2, view.selected)
}

func TestView_Update_SelectItems(t *testing.T) {
	view := NewView(nil)
	view.selected = 0

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewItems, changed.View)
}

func TestView_Update_SelectTransfer(t *testing.T) {
	view := NewView(nil)
	view.selected = 1

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewTransfer, changed.View)
}

func TestView_Update_QuitItem(t *testing.T) {
	view := NewView(nil)
	view.selected = len(view.items) - 1

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_View(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	out := view.View()
	assert.Contains(t, out, "ItemVault")
	assert.Contains(t, out, "Items")
	assert.Contains(t, out, "Export / Import")
}
