package dto

import "time"

// ProductItem describes a purchased product in a create request.
type ProductItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// CreateReceiptRequest describes the receipt creation payload.
type CreateReceiptRequest struct {
	Products      []ProductItem `json:"products"`
	PaymentType   string        `json:"payment_type"`
	PaymentAmount float64       `json:"payment_amount"`
}

// PaymentInfo groups tendered payment details in responses.
type PaymentInfo struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// ProductResponse echoes a line item together with its computed total.
type ProductResponse struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
	Total    float64 `json:"total"`
}

// ReceiptResponse is the full representation returned on creation.
type ReceiptResponse struct {
	ID        int64             `json:"id"`
	Products  []ProductResponse `json:"products"`
	Payment   PaymentInfo       `json:"payment"`
	Total     float64           `json:"total"`
	Change    float64           `json:"change"`
	CreatedAt time.Time         `json:"created_at"`
}

// ReceiptSummary is a single entry of the receipts listing.
type ReceiptSummary struct {
	ID        int64       `json:"id"`
	Total     float64     `json:"total"`
	Payment   PaymentInfo `json:"payment"`
	Change    float64     `json:"change"`
	CreatedAt time.Time   `json:"created_at"`
}

// ReceiptsResponse wraps the receipts listing.
type ReceiptsResponse struct {
	Receipts []ReceiptSummary `json:"receipts"`
}

// ReceiptTextResponse carries the rendered fixed-width slip.
type ReceiptTextResponse struct {
	ReceiptText string `json:"receipt_text"`
}
