package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/messages"
	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/styles"
	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/views/itemdetail"
	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/views/itemform"
	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/views/items"
	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/views/menu"
	"github.com/keeperworks/itemvault/internal/adapters/driving/tui/views/transfer"
	"github.com/keeperworks/itemvault/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// itemsView is the item catalogue list.
	itemsView *items.View

	// itemFormView is the add/edit form.
	itemFormView *itemform.View

	// itemDetailView shows a single item.
	itemDetailView *itemdetail.View

	// transferView runs export and import.
	transferView *transfer.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		menuView:       menu.NewView(s),
		itemsView:      items.NewView(s, ports.Items),
		itemFormView:   itemform.NewView(s, ports.Items),
		itemDetailView: itemdetail.NewView(s),
		transferView:   transfer.NewView(s, ports.Transfer),
		currentView:    messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("itemvault - Item Catalogue"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.itemsView.SetDimensions(msg.Width, msg.Height)
		a.itemFormView.SetDimensions(msg.Width, msg.Height)
		a.itemDetailView.SetDimensions(msg.Width, msg.Height)
		a.transferView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c.
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewItems:
			a.itemsView, cmd = a.itemsView.Update(msg)
			a.err = a.itemsView.Err()
			return a, cmd

		case messages.ViewItemForm:
			a.itemFormView, cmd = a.itemFormView.Update(msg)
			return a, cmd

		case messages.ViewItemDetail:
			a.itemDetailView, cmd = a.itemDetailView.Update(msg)
			return a, cmd

		case messages.ViewTransfer:
			a.transferView, cmd = a.transferView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewItems:
			// Entering the list always reloads from the store.
			return a, a.itemsView.Reload()
		case messages.ViewItemForm:
			a.itemFormView.Reset()
			return a, a.itemFormView.Init()
		case messages.ViewTransfer:
			a.transferView.Reset()
			return a, a.transferView.Init()
		case messages.ViewMenu, messages.ViewItemDetail, messages.ViewHelp:
			// No initialisation needed.
		}
		return a, nil

	case messages.ItemsLoaded:
		a.itemsView, cmd = a.itemsView.Update(msg)
		a.err = a.itemsView.Err()
		return a, cmd

	case messages.ItemRemoved:
		a.itemsView, cmd = a.itemsView.Update(msg)
		a.err = a.itemsView.Err()
		return a, cmd

	case messages.ItemSaved:
		if msg.Err != nil {
			// Stay on the form and show the failure there.
			a.err = msg.Err
			a.itemFormView, cmd = a.itemFormView.Update(msg)
			return a, cmd
		}
		// Save succeeded: back to the list with a single full reload.
		a.currentView = messages.ViewItems
		return a, a.itemsView.Reload()

	case messages.ItemSelected:
		a.itemDetailView.SetItem(msg.Item)
		a.currentView = messages.ViewItemDetail
		return a, nil

	case messages.EditItem:
		a.itemFormView.SetItem(msg.Item)
		a.currentView = messages.ViewItemForm
		return a, a.itemFormView.Init()

	case messages.ExportCompleted, messages.ImportCompleted:
		a.transferView, cmd = a.transferView.Update(msg)
		a.err = a.transferView.Err()
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewItems:
			a.itemsView, cmd = a.itemsView.Update(msg)
		case messages.ViewItemForm:
			a.itemFormView, cmd = a.itemFormView.Update(msg)
		case messages.ViewMenu, messages.ViewItemDetail, messages.ViewTransfer, messages.ViewHelp:
			// Other views don't handle error messages.
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view.
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewItems:
		a.itemsView, cmd = a.itemsView.Update(msg)
	case messages.ViewItemForm:
		a.itemFormView, cmd = a.itemFormView.Update(msg)
	case messages.ViewItemDetail:
		a.itemDetailView, cmd = a.itemDetailView.Update(msg)
	case messages.ViewTransfer:
		a.transferView, cmd = a.transferView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages.
	}

	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewItems:
		return a.itemsView.View()
	case messages.ViewItemForm:
		return a.itemFormView.View()
	case messages.ViewItemDetail:
		return a.itemDetailView.View()
	case messages.ViewTransfer:
		return a.transferView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Items:
  j/k, ↑/↓    Navigate items
  enter       Actions for selected item
  a           Add item
  r           Reload list
  x           Dismiss error

Form:
  tab         Next field
  enter       Save
  esc         Cancel

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Items returns the in-memory catalogue of the items view.
func (a *App) Items() []domain.Item {
	return a.itemsView.Items()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.itemsView.SetDimensions(width, height)
}
