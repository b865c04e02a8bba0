// Package cart implements the shopping cart: a per-session state manager
// over persisted slot storage, and the pure totals calculation used for
// display and checkout.
package cart

import (
	"math"

	"github.com/SandyBridge101/AudiophileEcommerce/internal/model"
)

// Flat shipping fee charged on any non-empty cart.
const shippingFee = 50

// VAT rate applied to the subtotal.
const vatRate = 0.20

// ComputeTotals derives the pricing breakdown for a set of line items.
// VAT is math.Round(subtotal * 0.20): rounding half away from zero, which
// for the non-negative subtotals here is the same as rounding half up.
// An empty item list yields all-zero totals.
func ComputeTotals(items []model.CartLineItem) model.CartTotals {
	subtotal := 0
	for _, item := range items {
		subtotal += item.Price * item.Quantity
	}

	shipping := 0
	if len(items) > 0 {
		shipping = shippingFee
	}

	vat := int(math.Round(float64(subtotal) * vatRate))

	return model.CartTotals{
		Subtotal:   subtotal,
		Shipping:   shipping,
		VAT:        vat,
		GrandTotal: subtotal + shipping + vat,
	}
}

// ItemCount is the total quantity across line items, as opposed to the
// number of distinct line items.
func ItemCount(items []model.CartLineItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
