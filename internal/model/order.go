package model

import "time"

// Payment methods accepted at checkout. The selection is recorded on the
// order but never charged against a payment processor.
const (
	PaymentMethodEMoney = "emoney"
	PaymentMethodCash   = "cash"
)

// Order represents a completed checkout. Orders are immutable after
// creation; Items is a snapshot taken at submission time and is not
// affected by later cart mutation.
type Order struct {
	ID            int64       `json:"id" db:"id"`
	Name          string      `json:"name" db:"name"`
	Email         string      `json:"email" db:"email"`
	Phone         string      `json:"phone" db:"phone"`
	Address       string      `json:"address" db:"address"`
	Zip           string      `json:"zip" db:"zip"`
	City          string      `json:"city" db:"city"`
	Country       string      `json:"country" db:"country"`
	PaymentMethod string      `json:"paymentMethod" db:"payment_method"`
	Items         []OrderItem `json:"items" db:"items"`
	Subtotal      int         `json:"subtotal" db:"subtotal"`
	Shipping      int         `json:"shipping" db:"shipping"`
	VAT           int         `json:"vat" db:"vat"`
	GrandTotal    int         `json:"grandTotal" db:"grand_total"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
}

// OrderItem is one snapshotted line item of an order.
type OrderItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// OrderRequest is the request payload for creating an order. It combines
// the checkout form, the cart items at submission time, and the totals
// computed for them.
type OrderRequest struct {
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	Zip           string      `json:"zip"`
	City          string      `json:"city"`
	Country       string      `json:"country"`
	PaymentMethod string      `json:"paymentMethod"`
	EMoneyNumber  string      `json:"emoneyNumber,omitempty"`
	EMoneyPin     string      `json:"emoneyPin,omitempty"`
	Items         []OrderItem `json:"items"`
	Subtotal      int         `json:"subtotal"`
	Shipping      int         `json:"shipping"`
	VAT           int         `json:"vat"`
	GrandTotal    int         `json:"grandTotal"`
}
