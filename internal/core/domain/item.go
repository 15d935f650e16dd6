package domain

import (
	"fmt"
	"strings"
	"time"
)

// Item is the single persisted entity: a catalogued thing with an
// optional description and image reference.
type Item struct {
	// ID is assigned by the storage engine on insert and never reused.
	ID int64

	// Title is the human-readable name. Required non-empty; enforced at
	// the UI boundary, not by the store.
	Title string

	// Description is optional free text.
	Description string

	// ImageURL is an optional image reference: a remote URL, a local
	// path, or a base64 data URI from a capture flow.
	ImageURL string

	// CreatedAt is when the item was first stored.
	CreatedAt time.Time

	// UpdatedAt is refreshed on every update.
	UpdatedAt time.Time
}

// Validate checks UI-boundary invariants before a write is attempted.
// The store itself performs no validation.
func (i Item) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	return nil
}

// HasImage reports whether the item carries an image reference.
func (i Item) HasImage() bool {
	return i.ImageURL != ""
}

// ImageKind classifies the image reference for display.
func (i Item) ImageKind() string {
	switch {
	case i.ImageURL == "":
		return "none"
	case strings.HasPrefix(i.ImageURL, "data:"):
		return "embedded"
	case strings.HasPrefix(i.ImageURL, "http://"), strings.HasPrefix(i.ImageURL, "https://"):
		return "remote"
	default:
		return "local"
	}
}
