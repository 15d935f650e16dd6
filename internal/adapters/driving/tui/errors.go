package tui

import "errors"

// ErrMissingItemService is returned when the item service is not provided.
var ErrMissingItemService = errors.New("tui: item service is required")

// ErrMissingTransferService is returned when the transfer service is not provided.
var ErrMissingTransferService = errors.New("tui: transfer service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
