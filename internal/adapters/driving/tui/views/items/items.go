// Package items provides the item catalogue list view for the TUI.
//
// The view holds the catalogue in memory and tracks a loading flag and a
// dismissible error. Every mutation is followed by a full reload from the
// service; on failure the in-memory list is left untouched and the error
// is shown as a status bar toast.
package items

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/components/status"
	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/keymap"
	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/messages"
	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/styles"
	"github.com/keeperworks/itemvault/internal/core/domain"
	"github.com/keeperworks/itemvault/internal/core/ports/driving"
)

// ActionOption represents an item action.
type ActionOption int

const (
	ActionShowDetail ActionOption = iota
	ActionEdit
	ActionRemove
	ActionCancel
)

// View is the item catalogue list view.
type View struct {
	styles      *styles.Styles
	itemService driving.ItemService
	statusBar   *status.Bar

	items        []domain.Item
	loading      bool
	err          error
	selected     int
	scrollOffset int
	width        int
	height       int
	ready        bool
	showingMenu  bool
	menuSelected ActionOption
}

// NewView creates a new items view.
func NewView(s *styles.Styles, itemService driving.ItemService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:      s,
		itemService: itemService,
		statusBar:   status.NewBar(s, keymap.DefaultKeyMap()),
		items:       []domain.Item{},
		width:       80,
		height:      24,
	}
}

// Init initialises the view and triggers the first load.
func (v *View) Init() tea.Cmd {
	return v.Reload()
}

// Reload returns a command that fetches the full catalogue.
func (v *View) Reload() tea.Cmd {
	v.loading = true
	v.statusBar.SetState(status.StateLoading)
	return func() tea.Msg {
		if v.itemService == nil {
			return messages.ItemsLoaded{Err: fmt.Errorf("item service not available")}
		}

		items, err := v.itemService.List(context.Background())
		return messages.ItemsLoaded{Items: items, Err: err}
	}
}

// Update handles messages for the items view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.statusBar.SetWidth(msg.Width)
		return v, nil

	case tea.KeyMsg:
		if v.showingMenu {
			return v.handleMenuKeyMsg(msg)
		}
		return v.handleKeyMsg(msg)

	case messages.ItemsLoaded:
		v.loading = false
		if msg.Err != nil {
			// Load failed: keep whatever was on screen, toast the error.
			v.err = msg.Err
			v.statusBar.SetError(msg.Err.Error())
			return v, nil
		}
		v.items = msg.Items
		v.err = nil
		v.statusBar.Clear()
		v.statusBar.SetItemCount(len(v.items))
		if v.selected >= len(v.items) {
			v.selected = len(v.items) - 1
		}
		if v.selected < 0 {
			v.selected = 0
		}
		return v, nil

	case messages.ItemRemoved:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusBar.SetError(msg.Err.Error())
			return v, nil
		}
		// Mutation succeeded: reload the full catalogue.
		return v, v.Reload()

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusBar.SetError(msg.Err.Error())
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses in list mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case "down", "j":
		if v.selected < len(v.items)-1 {
			v.selected++
			v.adjustScroll()
		}
	case "enter":
		if len(v.items) > 0 {
			v.showingMenu = true
			v.menuSelected = ActionShowDetail
		}
	case "a":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewItemForm}
		}
	case "r":
		return v, v.Reload()
	case "x":
		v.err = nil
		v.statusBar.Clear()
		v.statusBar.SetItemCount(len(v.items))
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// handleMenuKeyMsg handles key presses in action menu mode.
func (v *View) handleMenuKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.menuSelected > ActionShowDetail {
			v.menuSelected--
		}
	case "down", "j":
		if v.menuSelected < ActionCancel {
			v.menuSelected++
		}
	case "enter":
		return v.handleMenuSelect()
	case "esc":
		v.showingMenu = false
	}

	return v, nil
}

// handleMenuSelect handles selection of an action.
func (v *View) handleMenuSelect() (*View, tea.Cmd) {
	if v.selected >= len(v.items) {
		v.showingMenu = false
		return v, nil
	}

	item := v.items[v.selected]

	switch v.menuSelected {
	case ActionShowDetail:
		v.showingMenu = false
		return v, func() tea.Msg {
			return messages.ItemSelected{Item: item}
		}
	case ActionEdit:
		v.showingMenu = false
		return v, func() tea.Msg {
			return messages.EditItem{Item: item}
		}
	case ActionRemove:
		v.showingMenu = false
		return v, v.removeItem(item.ID)
	case ActionCancel:
		v.showingMenu = false
	}

	return v, nil
}

// removeItem returns a command that removes the item.
func (v *View) removeItem(id int64) tea.Cmd {
	return func() tea.Msg {
		if v.itemService == nil {
			return messages.ItemRemoved{ID: id, Err: fmt.Errorf("item service not available")}
		}

		err := v.itemService.Remove(context.Background(), id)
		return messages.ItemRemoved{ID: id, Err: err}
	}
}

// adjustScroll keeps the selected item visible.
func (v *View) adjustScroll() {
	visibleItems := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visibleItems {
		v.scrollOffset = v.selected - visibleItems + 1
	}
}

// visibleItemCount returns the number of items that can be displayed.
func (v *View) visibleItemCount() int {
	// Reserve lines for title, status bar, help, and padding.
	reserved := 8
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the items view.
func (v *View) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Items (%d)", len(v.items))
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading items..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderFooter())
		return b.String()
	}

	if v.showingMenu {
		b.WriteString(v.renderActionMenu())
		return b.String()
	}

	if len(v.items) == 0 {
		b.WriteString(v.styles.Muted.Render("No items yet. Press [a] to add one."))
		b.WriteString("\n\n")
		b.WriteString(v.renderFooter())
		return b.String()
	}

	visibleItems := v.visibleItemCount()
	for i := v.scrollOffset; i < len(v.items) && i < v.scrollOffset+visibleItems; i++ {
		b.WriteString(v.renderItem(i, &v.items[i]))
		b.WriteString("\n")
	}

	if len(v.items) > visibleItems {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			v.scrollOffset+1,
			min(v.scrollOffset+visibleItems, len(v.items)),
			len(v.items))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderFooter())

	return b.String()
}

// renderItem renders a single item line.
func (v *View) renderItem(index int, item *domain.Item) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	title := item.Title
	maxTitleLen := v.width/2 - 4
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	desc := item.Description
	maxDescLen := v.width/2 - 4
	if maxDescLen < 10 {
		maxDescLen = 10
	}
	if len(desc) > maxDescLen {
		desc = desc[:maxDescLen-3] + "..."
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, desc))
	}

	return v.styles.Normal.Render(indicator) +
		v.styles.Normal.Render(fmt.Sprintf("%-*s  ", maxTitleLen, title)) +
		v.styles.Muted.Render(desc)
}

// renderActionMenu renders the action menu overlay.
func (v *View) renderActionMenu() string {
	var b strings.Builder

	if v.selected < len(v.items) {
		item := v.items[v.selected]
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Actions for: %s", item.Title)))
		b.WriteString("\n\n")
	}

	options := []struct {
		action ActionOption
		label  string
	}{
		{ActionShowDetail, "Show Detail"},
		{ActionEdit, "Edit"},
		{ActionRemove, "Remove"},
		{ActionCancel, "Cancel"},
	}

	for _, opt := range options {
		indicator := "  "
		if v.menuSelected == opt.action {
			indicator = "> "
			b.WriteString(v.styles.Selected.Render(fmt.Sprintf("%s%s", indicator, opt.label)))
		} else {
			b.WriteString(v.styles.Normal.Render(fmt.Sprintf("%s%s", indicator, opt.label)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [enter] select  [esc] cancel"))

	return b.String()
}

// renderFooter renders the status bar and help line.
func (v *View) renderFooter() string {
	help := v.styles.Help.Render("[↑/↓] navigate  [enter] actions  [a] add  [r] reload  [esc] back")
	return v.statusBar.View() + "\n" + help
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusBar.SetWidth(width)
}

// Items returns the current in-memory catalogue.
func (v *View) Items() []domain.Item {
	return v.items
}

// Loading reports whether a load is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// SelectedIndex returns the currently selected item index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedItem returns the currently selected item.
func (v *View) SelectedItem() *domain.Item {
	if v.selected < len(v.items) {
		return &v.items[v.selected]
	}
	return nil
}

// IsShowingMenu returns true if the action menu is visible.
func (v *View) IsShowingMenu() bool {
	return v.showingMenu
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
