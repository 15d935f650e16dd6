// Package itemdetail provides the single-item detail view for the TUI.
package itemdetail

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/messages"
	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/styles"
	"github.com/keeperworks/itemvault/internal/core/domain"
)

// View shows one item in full.
type View struct {
	styles *styles.Styles
	item   *domain.Item
	width  int
	height int
}

// NewView creates a new item detail view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetItem sets the item to display.
func (v *View) SetItem(item domain.Item) {
	v.item = &item
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewItems}
			}
		case "e":
			if v.item != nil {
				item := *v.item
				return v, func() tea.Msg {
					return messages.EditItem{Item: item}
				}
			}
		}
	}

	return v, nil
}

// View renders the item detail.
func (v *View) View() string {
	var b strings.Builder

	if v.item == nil {
		b.WriteString(v.styles.Muted.Render("No item selected."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	}

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Item %d", v.item.ID)))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render("Title"))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render("  " + v.item.Title))
	b.WriteString("\n\n")

	if v.item.Description != "" {
		b.WriteString(v.styles.Subtitle.Render("Description"))
		b.WriteString("\n")
		b.WriteString(v.styles.Normal.Render("  " + v.item.Description))
		b.WriteString("\n\n")
	}

	if v.item.HasImage() {
		b.WriteString(v.styles.Subtitle.Render("Image"))
		b.WriteString("\n")
		b.WriteString(v.styles.Normal.Render(fmt.Sprintf("  %s (%s)", v.summarizeImage(), v.item.ImageKind())))
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Created %s    Updated %s",
		v.item.CreatedAt.Format("2006-01-02 15:04"),
		v.item.UpdatedAt.Format("2006-01-02 15:04"))))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Help.Render("[e] edit  [esc] back"))

	return b.String()
}

// summarizeImage truncates long image references, data URIs especially.
func (v *View) summarizeImage() string {
	ref := v.item.ImageURL
	maxLen := v.width - 20
	if maxLen < 20 {
		maxLen = 20
	}
	if len(ref) > maxLen {
		return ref[:maxLen-3] + "..."
	}
	return ref
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Item returns the displayed item.
func (v *View) Item() *domain.Item {
	return v.item
}
