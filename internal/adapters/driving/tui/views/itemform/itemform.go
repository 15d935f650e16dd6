// Package itemform provides the add/edit item form view for the TUI.
package itemform

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/messages"
	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/styles"
	"github.com/keeperworks/itemvault/internal/core/domain"
	"github.com/keeperworks/itemvault/internal/core/ports/driving"
)

// Field indexes into the form inputs.
type Field int

const (
	FieldTitle Field = iota
	FieldDescription
	FieldImageURL
)

const fieldCount = 3

// View is the add/edit item form.
type View struct {
	styles      *styles.Styles
	itemService driving.ItemService

	inputs  []textinput.Model
	focused Field

	// editing holds the item being edited; nil means the form adds.
	editing *domain.Item

	validationErr string
	err           error
	submitting    bool
	width         int
	height        int
}

// NewView creates a new item form view.
func NewView(s *styles.Styles, itemService driving.ItemService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	title := textinput.New()
	title.Placeholder = "Title (required)"
	title.CharLimit = 256
	title.Width = 50
	title.Focus()

	description := textinput.New()
	description.Placeholder = "Description"
	description.CharLimit = 1024
	description.Width = 50

	imageURL := textinput.New()
	imageURL.Placeholder = "Image URL, path, or data URI"
	imageURL.CharLimit = 2048
	imageURL.Width = 50

	return &View{
		styles:      s,
		itemService: itemService,
		inputs:      []textinput.Model{title, description, imageURL},
		focused:     FieldTitle,
		width:       80,
		height:      24,
	}
}

// Init initialises the form view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the form for adding a new item.
func (v *View) Reset() {
	v.editing = nil
	v.validationErr = ""
	v.err = nil
	v.submitting = false
	for i := range v.inputs {
		v.inputs[i].SetValue("")
		v.inputs[i].Blur()
	}
	v.focused = FieldTitle
	v.inputs[FieldTitle].Focus()
}

// SetItem prefills the form for editing an existing item.
func (v *View) SetItem(item domain.Item) {
	v.Reset()
	v.editing = &item
	v.inputs[FieldTitle].SetValue(item.Title)
	v.inputs[FieldDescription].SetValue(item.Description)
	v.inputs[FieldImageURL].SetValue(item.ImageURL)
}

// Update handles messages for the form view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewItems}
			}

		case "tab", "down":
			v.focusField((v.focused + 1) % fieldCount)
			return v, nil

		case "shift+tab", "up":
			v.focusField((v.focused + fieldCount - 1) % fieldCount)
			return v, nil

		case "enter":
			if v.focused < FieldImageURL {
				v.focusField(v.focused + 1)
				return v, nil
			}
			return v, v.submit()

		case "ctrl+s":
			return v, v.submit()
		}

		// Route typing to the focused input.
		var cmd tea.Cmd
		v.inputs[v.focused], cmd = v.inputs[v.focused].Update(msg)
		return v, cmd

	case messages.ItemSaved:
		v.submitting = false
		if msg.Err != nil {
			v.err = msg.Err
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.inputs[v.focused], cmd = v.inputs[v.focused].Update(msg)
	return v, cmd
}

// focusField moves focus to the given field.
func (v *View) focusField(f Field) {
	v.inputs[v.focused].Blur()
	v.focused = f
	v.inputs[v.focused].Focus()
}

// submit validates and saves the form.
func (v *View) submit() tea.Cmd {
	title := strings.TrimSpace(v.inputs[FieldTitle].Value())
	description := v.inputs[FieldDescription].Value()
	imageURL := v.inputs[FieldImageURL].Value()

	draft := domain.Item{Title: title, Description: description, ImageURL: imageURL}
	if err := draft.Validate(); err != nil {
		v.validationErr = "Title is required."
		return nil
	}
	v.validationErr = ""
	v.submitting = true

	editing := v.editing
	return func() tea.Msg {
		if v.itemService == nil {
			return messages.ItemSaved{Err: fmt.Errorf("item service not available")}
		}

		ctx := context.Background()
		if editing != nil {
			err := v.itemService.Update(ctx, editing.ID, title, description, imageURL)
			return messages.ItemSaved{ID: editing.ID, Err: err}
		}

		id, err := v.itemService.Create(ctx, title, description, imageURL)
		return messages.ItemSaved{ID: id, Err: err}
	}
}

// View renders the form.
func (v *View) View() string {
	var b strings.Builder

	if v.editing != nil {
		b.WriteString(v.styles.Title.Render(fmt.Sprintf("Edit Item %d", v.editing.ID)))
	} else {
		b.WriteString(v.styles.Title.Render("Add Item"))
	}
	b.WriteString("\n\n")

	labels := []string{"Title", "Description", "Image"}
	for i, input := range v.inputs {
		label := labels[i]
		if Field(i) == v.focused {
			b.WriteString(v.styles.Subtitle.Render(label))
		} else {
			b.WriteString(v.styles.Muted.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(v.styles.InputField.Render(input.View()))
		b.WriteString("\n")
	}

	if v.validationErr != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(v.validationErr))
	}
	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	}
	if v.submitting {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Saving..."))
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[tab] next field  [enter] save  [esc] cancel"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Editing returns the item being edited, or nil when adding.
func (v *View) Editing() *domain.Item {
	return v.editing
}

// ValidationErr returns the current validation message.
func (v *View) ValidationErr() string {
	return v.validationErr
}

// Err returns the last save error.
func (v *View) Err() error {
	return v.err
}

// Value returns the current value of a field.
func (v *View) Value(f Field) string {
	return v.inputs[f].Value()
}
