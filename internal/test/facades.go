package test

import (
	"context"
	"time"

	"github.com/polkiloo/receipts/internal/domain/model"
)

// ReceiptFacadeStub provides controllable behaviour for receipt endpoints.
type ReceiptFacadeStub struct {
	CreateFn   func(context.Context, string, []model.LineItem, string, float64) (*model.Receipt, error)
	ReceiptsFn func(context.Context, string, int, int) ([]model.Receipt, error)
	RenderFn   func(context.Context, int64, int) (string, error)
}

// CreateReceipt delegates to the override or returns a populated receipt.
func (s ReceiptFacadeStub) CreateReceipt(ctx context.Context, username string, items []model.LineItem, paymentType string, paymentAmount float64) (*model.Receipt, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, username, items, paymentType, paymentAmount)
	}
	var total float64
	for i := range items {
		items[i].Total = items[i].Price * items[i].Quantity
		total += items[i].Total
	}
	return &model.Receipt{
		ID:            1,
		UserID:        1,
		PaymentType:   paymentType,
		PaymentAmount: paymentAmount,
		Total:         total,
		Change:        paymentAmount - total,
		CreatedAt:     time.Unix(0, 0).UTC(),
		Items:         items,
	}, nil
}

// Receipts returns predefined receipts for the given user.
func (s ReceiptFacadeStub) Receipts(ctx context.Context, username string, offset, limit int) ([]model.Receipt, error) {
	if s.ReceiptsFn != nil {
		return s.ReceiptsFn(ctx, username, offset, limit)
	}
	return []model.Receipt{{ID: 1, Total: 10, PaymentAmount: 10, CreatedAt: time.Unix(0, 0).UTC()}}, nil
}

// RenderReceipt returns a canned slip or delegates to the override.
func (s ReceiptFacadeStub) RenderReceipt(ctx context.Context, id int64, width int) (string, error) {
	if s.RenderFn != nil {
		return s.RenderFn(ctx, id, width)
	}
	return "slip", nil
}

// CheckoutFacadeStub aggregates facade dependencies for HTTP layer tests.
type CheckoutFacadeStub struct {
	AuthFacadeStub
	ReceiptFacadeStub
}
