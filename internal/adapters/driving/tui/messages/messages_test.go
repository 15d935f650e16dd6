package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewMenu, "menu"},
		{ViewItems, "items"},
		{ViewItemForm, "item_form"},
		{ViewItemDetail, "item_detail"},
		{ViewTransfer, "transfer"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestItemsLoaded_CarriesError(t *testing.T) {
	err := errors.New("boom")
	msg := ItemsLoaded{Err: err}
	assert.Equal(t, err, msg.Err)
	assert.Nil(t, msg.Items)
}
