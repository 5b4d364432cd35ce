package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/receipts/internal/domain/errors"
	"github.com/polkiloo/receipts/internal/domain/model"
	"github.com/polkiloo/receipts/internal/domain/repository"
)

const defaultListLimit = 10

// ReceiptUseCase computes receipt totals and change and manages persistence.
type ReceiptUseCase struct {
	receipts repository.ReceiptRepository
}

// NewReceiptUseCase constructs ReceiptUseCase.
func NewReceiptUseCase(receipts repository.ReceiptRepository) *ReceiptUseCase {
	return &ReceiptUseCase{receipts: receipts}
}

// Create validates items and payment, computes line totals, the receipt total
// and the change, and persists everything atomically. Line totals are derived
// here; any Total value supplied on the inputs is ignored. Amounts are kept at
// full float64 precision; rounding to two decimals happens only on output.
func (u *ReceiptUseCase) Create(ctx context.Context, userID int64, items []model.LineItem, paymentType string, paymentAmount float64) (*model.Receipt, error) {
	if len(items) == 0 {
		return nil, domainErrors.ErrEmptyReceipt
	}
	if paymentAmount < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	var total float64
	prepared := make([]model.LineItem, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" || item.Price < 0 || item.Quantity <= 0 {
			return nil, domainErrors.ErrInvalidLineItem
		}
		item.Total = item.Price * item.Quantity
		total += item.Total
		prepared = append(prepared, item)
	}

	if paymentAmount < total {
		return nil, domainErrors.ErrInsufficientPayment
	}

	receipt := &model.Receipt{
		UserID:        userID,
		PaymentType:   paymentType,
		PaymentAmount: paymentAmount,
		Total:         total,
		Change:        paymentAmount - total,
		Items:         prepared,
	}

	return u.receipts.Create(ctx, receipt)
}

// ListByUser returns the user's receipts page. Negative offsets collapse to
// zero and non-positive limits to the default page size.
func (u *ReceiptUseCase) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]model.Receipt, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return u.receipts.ListByUser(ctx, userID, offset, limit)
}

// GetByID fetches a single receipt with its line items.
func (u *ReceiptUseCase) GetByID(ctx context.Context, id int64) (*model.Receipt, error) {
	return u.receipts.GetByID(ctx, id)
}
