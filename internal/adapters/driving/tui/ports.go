// Package tui provides an interactive terminal user interface for itemvault.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/keeperworks/itemvault/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Items manages the item catalogue.
	Items driving.ItemService

	// Transfer runs export and import.
	Transfer driving.TransferService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(items driving.ItemService, transfer driving.TransferService) *Ports {
	return &Ports{
		Items:    items,
		Transfer: transfer,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Items == nil {
		return ErrMissingItemService
	}
	if p.Transfer == nil {
		return ErrMissingTransferService
	}
	return nil
}
