package cart

import (
	"testing"

	"github.com/SandyBridge101/AudiophileEcommerce/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		items    []model.CartLineItem
		expected model.CartTotals
	}{
		{
			name:     "Empty cart yields all zeros",
			items:    []model.CartLineItem{},
			expected: model.CartTotals{Subtotal: 0, Shipping: 0, VAT: 0, GrandTotal: 0},
		},
		{
			name:     "Nil items behave like empty",
			items:    nil,
			expected: model.CartTotals{},
		},
		{
			name: "Single item",
			items: []model.CartLineItem{
				{ID: 1, Name: "YX1 Wireless Earphones", Price: 599, Quantity: 1},
			},
			expected: model.CartTotals{Subtotal: 599, Shipping: 50, VAT: 120, GrandTotal: 769},
		},
		{
			name: "Multiple items multiply price by quantity",
			items: []model.CartLineItem{
				{ID: 2, Price: 899, Quantity: 2},
				{ID: 5, Price: 4500, Quantity: 1},
			},
			expected: model.CartTotals{Subtotal: 6298, Shipping: 50, VAT: 1260, GrandTotal: 7608},
		},
		{
			name: "VAT rounds half up",
			items: []model.CartLineItem{
				// subtotal 999 -> 999 * 0.2 = 199.8 -> 200
				{ID: 9, Price: 999, Quantity: 1},
			},
			expected: model.CartTotals{Subtotal: 999, Shipping: 50, VAT: 200, GrandTotal: 1249},
		},
		{
			name: "Exact midpoint rounds up",
			items: []model.CartLineItem{
				// subtotal 1002 -> 200.4 -> 200; use 1003 -> 200.6 -> 201
				{ID: 9, Price: 1003, Quantity: 1},
			},
			expected: model.CartTotals{Subtotal: 1003, Shipping: 50, VAT: 201, GrandTotal: 1254},
		},
		{
			name: "Zero-price items still incur shipping",
			items: []model.CartLineItem{
				{ID: 1, Price: 0, Quantity: 3},
			},
			expected: model.CartTotals{Subtotal: 0, Shipping: 50, VAT: 0, GrandTotal: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeTotals(tt.items))
		})
	}
}

func TestComputeTotals_SubtotalIsSumOfPriceTimesQuantity(t *testing.T) {
	items := []model.CartLineItem{
		{ID: 1, Price: 599, Quantity: 2},
		{ID: 3, Price: 1750, Quantity: 3},
		{ID: 6, Price: 3500, Quantity: 1},
	}

	totals := ComputeTotals(items)

	expected := 599*2 + 1750*3 + 3500
	assert.Equal(t, expected, totals.Subtotal)
	assert.Equal(t, 50, totals.Shipping)
	assert.Equal(t, totals.Subtotal+totals.Shipping+totals.VAT, totals.GrandTotal)
}

func TestItemCount(t *testing.T) {
	items := []model.CartLineItem{
		{ID: 1, Quantity: 2},
		{ID: 2, Quantity: 3},
	}

	assert.Equal(t, 5, ItemCount(items))
	assert.Equal(t, 2, len(items))
	assert.Equal(t, 0, ItemCount(nil))
}
