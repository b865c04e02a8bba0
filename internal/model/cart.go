package model

// CartLineItem is one product-and-quantity entry in a cart. A cart holds
// at most one line item per product id.
type CartLineItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// CartTotals is the derived pricing breakdown of a cart. It is always
// recomputed from the current line items and never stored on its own.
type CartTotals struct {
	Subtotal   int `json:"subtotal"`
	Shipping   int `json:"shipping"`
	VAT        int `json:"vat"`
	GrandTotal int `json:"grandTotal"`
}

// CartView is the response payload for cart reads.
type CartView struct {
	Items     []CartLineItem `json:"items"`
	ItemCount int            `json:"itemCount"`
	Totals    CartTotals     `json:"totals"`
}
