// Package transfer provides the export/import view for the TUI.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/messages"
	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/styles"
	"github.com/keeperworks/itemvault/internal/core/domain"
	"github.com/keeperworks/itemvault/internal/core/ports/driving"
)

// Option is a transfer menu entry.
type Option int

const (
	OptionExport Option = iota
	OptionImport
	OptionBack
)

// View is the export/import view.
type View struct {
	styles          *styles.Styles
	transferService driving.TransferService

	selected  Option
	pathInput textinput.Model
	typing    bool
	busy      bool
	result    string
	err       error
	width     int
	height    int
}

// NewView creates a new transfer view.
func NewView(s *styles.Styles, transferService driving.TransferService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	input := textinput.New()
	input.Placeholder = "Path to export file..."
	input.CharLimit = 1024
	input.Width = 60

	return &View{
		styles:          s,
		transferService: transferService,
		pathInput:       input,
		width:           80,
		height:          24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Reset clears transient state.
func (v *View) Reset() {
	v.selected = OptionExport
	v.typing = false
	v.busy = false
	v.result = ""
	v.err = nil
	v.pathInput.SetValue("")
	v.pathInput.Blur()
}

// Update handles messages for the transfer view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		if v.typing {
			return v.handleInputKeyMsg(msg)
		}
		return v.handleKeyMsg(msg)

	case messages.ExportCompleted:
		v.busy = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.result = fmt.Sprintf("Exported to %s", msg.Path)
		return v, nil

	case messages.ImportCompleted:
		v.busy = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.result = fmt.Sprintf("Imported from %s", msg.Path)
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses in menu mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > OptionExport {
			v.selected--
		}
	case "down", "j":
		if v.selected < OptionBack {
			v.selected++
		}
	case "enter":
		switch v.selected {
		case OptionExport:
			return v, v.runExport()
		case OptionImport:
			v.typing = true
			v.result = ""
			v.err = nil
			return v, v.pathInput.Focus()
		case OptionBack:
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// handleInputKeyMsg handles key presses while entering an import path.
func (v *View) handleInputKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.typing = false
		v.pathInput.Blur()
		return v, nil

	case "enter":
		path := strings.TrimSpace(v.pathInput.Value())
		if path == "" {
			return v, nil
		}
		v.typing = false
		v.pathInput.Blur()
		return v, v.runImport(path)
	}

	var cmd tea.Cmd
	v.pathInput, cmd = v.pathInput.Update(msg)
	return v, cmd
}

// runExport returns a command that exports the catalogue.
func (v *View) runExport() tea.Cmd {
	v.busy = true
	v.result = ""
	v.err = nil
	return func() tea.Msg {
		if v.transferService == nil {
			return messages.ExportCompleted{Err: fmt.Errorf("transfer service not available")}
		}

		path, err := v.transferService.Export(context.Background())
		return messages.ExportCompleted{Path: path, Err: err}
	}
}

// runImport returns a command that imports the given file.
func (v *View) runImport(path string) tea.Cmd {
	v.busy = true
	v.result = ""
	v.err = nil
	return func() tea.Msg {
		if v.transferService == nil {
			return messages.ImportCompleted{Err: fmt.Errorf("transfer service not available")}
		}

		err := v.transferService.Import(context.Background(), path)
		return messages.ImportCompleted{Path: path, Err: err}
	}
}

// View renders the transfer view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Export / Import"))
	b.WriteString("\n\n")

	if v.typing {
		b.WriteString(v.styles.Subtitle.Render("Import from file"))
		b.WriteString("\n")
		b.WriteString(v.styles.InputField.Render(v.pathInput.View()))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[enter] import  [esc] cancel"))
		return b.String()
	}

	options := []struct {
		option Option
		label  string
	}{
		{OptionExport, "Export catalogue to JSON"},
		{OptionImport, "Import catalogue from JSON"},
		{OptionBack, "Back"},
	}

	for _, opt := range options {
		indicator := "  "
		if v.selected == opt.option {
			indicator = "> "
			b.WriteString(v.styles.Selected.Render(fmt.Sprintf("%s%s", indicator, opt.label)))
		} else {
			b.WriteString(v.styles.Normal.Render(fmt.Sprintf("%s%s", indicator, opt.label)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")

	switch {
	case v.busy:
		b.WriteString(v.styles.Muted.Render("Working..."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.describeErr()))
		b.WriteString("\n")
	case v.result != "":
		b.WriteString(v.styles.Success.Render(v.result))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [enter] select  [esc] back"))

	return b.String()
}

// describeErr maps sentinel errors to friendlier wording.
func (v *View) describeErr() string {
	switch {
	case errors.Is(v.err, domain.ErrUnsupportedPlatform):
		return "export/import is not available on this platform"
	case errors.Is(v.err, domain.ErrMalformedImport):
		return "that file is not a valid export"
	default:
		return v.err.Error()
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Result returns the last success message.
func (v *View) Result() string {
	return v.result
}

// Busy reports whether a transfer is in flight.
func (v *View) Busy() bool {
	return v.busy
}
