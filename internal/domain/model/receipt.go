package model

import "time"

// LineItem is a single purchased product entry within a receipt.
// Total is derived from Price and Quantity by the receipt engine and
// is never accepted from callers directly.
type LineItem struct {
	ID        int64
	ReceiptID int64
	Name      string
	Price     float64
	Quantity  float64
	Total     float64
}

// Receipt describes a completed sale: its line items in purchase order,
// the tendered payment and the change due.
type Receipt struct {
	ID            int64
	UserID        int64
	PaymentType   string
	PaymentAmount float64
	Total         float64
	Change        float64
	CreatedAt     time.Time
	Items         []LineItem
}
