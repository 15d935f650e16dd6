package domain

import "time"

// SnapshotVersion is the current export envelope payload version.
const SnapshotVersion = 1

// Snapshot is a full-database representation used for export/import.
// Import replaces existing data wholesale with the snapshot contents.
type Snapshot struct {
	// Version identifies the payload layout.
	Version int `json:"version"`

	// ExportedAt is when the snapshot was taken.
	ExportedAt time.Time `json:"exported_at"`

	// Items holds every row, in listing order.
	Items []SnapshotItem `json:"items"`
}

// SnapshotItem is the wire representation of an Item.
type SnapshotItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Envelope is the top-level export document: {"export": <snapshot>}.
// Import rejects any document missing the export object.
type Envelope struct {
	Export *Snapshot `json:"export"`
}

// NewSnapshot builds a snapshot from items, stamped with now.
func NewSnapshot(items []Item, now time.Time) *Snapshot {
	snap := &Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: now,
		Items:      make([]SnapshotItem, 0, len(items)),
	}
	for _, item := range items {
		snap.Items = append(snap.Items, SnapshotItem{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			ImageURL:    item.ImageURL,
			CreatedAt:   item.CreatedAt,
			UpdatedAt:   item.UpdatedAt,
		})
	}
	return snap
}

// Item converts a snapshot row back to the domain entity.
func (s SnapshotItem) Item() Item {
	return Item{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
