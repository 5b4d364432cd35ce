package repository

import (
	"context"

	"github.com/polkiloo/receipts/internal/domain/model"
)

// ReceiptRepository describes persistence operations with receipts.
// Create persists the receipt together with all of its line items inside
// a single transaction; either everything is stored or nothing is.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *model.Receipt) (*model.Receipt, error)
	GetByID(ctx context.Context, id int64) (*model.Receipt, error)
	ListByUser(ctx context.Context, userID int64, offset, limit int) ([]model.Receipt, error)
}
