package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"stylecraft-backend/internal/catalog"
)

func TestLookupColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantOk   bool
	}{
		{name: "by name", input: "Blue", wantName: "Blue", wantOk: true},
		{name: "name is case insensitive", input: "navy", wantName: "Navy", wantOk: true},
		{name: "by hex", input: "#7F1D1D", wantName: "Maroon", wantOk: true},
		{name: "hex without hash, lower case", input: "d4c5b9", wantName: "Beige", wantOk: true},
		{name: "unknown", input: "Teal", wantOk: false},
		{name: "empty", input: "  ", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := catalog.LookupColor(tt.input)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestColors_ReturnsCopy(t *testing.T) {
	list := catalog.Colors()
	assert.Len(t, list, 15)

	list[0].Name = "Changed"
	assert.Equal(t, "Red", catalog.Colors()[0].Name)
}

func TestOptions(t *testing.T) {
	assert.True(t, catalog.IsFabric("silk"))
	assert.False(t, catalog.IsFabric("velvet"))
	assert.True(t, catalog.IsDeliverySlot("3pm-6pm"))
	assert.False(t, catalog.IsDeliverySlot("midnight"))

	method, ok := catalog.PaymentMethod("upi")
	assert.True(t, ok)
	assert.Equal(t, "UPI", method.Label)

	_, ok = catalog.PaymentMethod("cash")
	assert.False(t, ok)

	opts := catalog.AllOptions()
	assert.Len(t, opts.PaymentMethods, 4)
	assert.Contains(t, opts.Categories, "jacket")
	assert.Contains(t, opts.Styles, "streetwear")
}
