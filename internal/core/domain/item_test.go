package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr bool
	}{
		{name: "valid", item: Item{Title: "Milk"}, wantErr: false},
		{name: "valid with fields", item: Item{Title: "Bread", Description: "rye", ImageURL: "https://example.com/b.png"}, wantErr: false},
		{name: "empty title", item: Item{Title: ""}, wantErr: true},
		{name: "whitespace title", item: Item{Title: "   "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestItem_ImageKind(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "none", url: "", want: "none"},
		{name: "embedded", url: "data:image/png;base64,iVBORw0KGgo=", want: "embedded"},
		{name: "remote https", url: "https://example.com/pic.jpg", want: "remote"},
		{name: "remote http", url: "http://example.com/pic.jpg", want: "remote"},
		{name: "local path", url: "/home/user/pic.jpg", want: "local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Item{Title: "x", ImageURL: tt.url}
			assert.Equal(t, tt.want, item.ImageKind())
			assert.Equal(t, tt.url != "", item.HasImage())
		})
	}
}
