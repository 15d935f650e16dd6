package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshot(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	items := []Item{
		{ID: 2, Title: "Bread", CreatedAt: now, UpdatedAt: now},
		{ID: 1, Title: "Milk", Description: "2 liters", CreatedAt: now, UpdatedAt: now},
	}

	snap := NewSnapshot(items, now)
	require.NotNil(t, snap)
	assert.Equal(t, SnapshotVersion, snap.Version)
	assert.Equal(t, now, snap.ExportedAt)
	require.Len(t, snap.Items, 2)
	assert.Equal(t, int64(2), snap.Items[0].ID)
	assert.Equal(t, "Milk", snap.Items[1].Title)
	assert.Equal(t, "2 liters", snap.Items[1].Description)
}

func TestNewSnapshot_Empty(t *testing.T) {
	snap := NewSnapshot(nil, time.Now())
	require.NotNil(t, snap)
	assert.NotNil(t, snap.Items)
	assert.Empty(t, snap.Items)
}

func TestEnvelope_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	env := Envelope{Export: NewSnapshot([]Item{{ID: 1, Title: "Milk", CreatedAt: now, UpdatedAt: now}}, now)}

	data, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"export"`)

	var decoded Envelope
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Export)
	require.Len(t, decoded.Export.Items, 1)
	assert.Equal(t, "Milk", decoded.Export.Items[0].Item().Title)
}

func TestEnvelope_MissingExport(t *testing.T) {
	var decoded Envelope
	require.NoError(t, json.Unmarshal([]byte(`{"backup": {}}`), &decoded))
	assert.Nil(t, decoded.Export)
}
