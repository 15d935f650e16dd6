// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/keeperworks/itemvault/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewItems is the item catalogue list.
	ViewItems
	// ViewItemForm is the add/edit item form.
	ViewItemForm
	// ViewItemDetail shows a single item.
	ViewItemDetail
	// ViewTransfer is the export/import view.
	ViewTransfer
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewItems:
		return "items"
	case ViewItemForm:
		return "item_form"
	case ViewItemDetail:
		return "item_detail"
	case ViewTransfer:
		return "transfer"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ItemsLoaded carries the reloaded catalogue from the service.
type ItemsLoaded struct {
	Items []domain.Item
	Err   error
}

// ItemSaved signals an add or edit finished.
type ItemSaved struct {
	ID  int64
	Err error
}

// ItemRemoved signals an item removal finished.
type ItemRemoved struct {
	ID  int64
	Err error
}

// ItemSelected signals an item was selected for detail view.
type ItemSelected struct {
	Item domain.Item
}

// EditItem signals an item was chosen for editing.
type EditItem struct {
	Item domain.Item
}

// ExportCompleted carries the outcome of an export.
type ExportCompleted struct {
	Path string
	Err  error
}

// ImportCompleted carries the outcome of an import.
type ImportCompleted struct {
	Path string
	Err  error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
