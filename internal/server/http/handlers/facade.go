package handlers

import (
	"context"

	"github.com/polkiloo/receipts/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (string, error)
}

// ReceiptFacade encapsulates receipt operations exposed via HTTP.
type ReceiptFacade interface {
	CreateReceipt(ctx context.Context, username string, items []model.LineItem, paymentType string, paymentAmount float64) (*model.Receipt, error)
	Receipts(ctx context.Context, username string, offset, limit int) ([]model.Receipt, error)
	RenderReceipt(ctx context.Context, id int64, width int) (string, error)
}

// CheckoutFacade aggregates the full set of operations used across handlers.
type CheckoutFacade interface {
	AuthFacade
	ReceiptFacade
}
