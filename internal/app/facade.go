package app

import (
	"context"
	"errors"

	domainErrors "github.com/polkiloo/receipts/internal/domain/errors"
	"github.com/polkiloo/receipts/internal/domain/model"
	"github.com/polkiloo/receipts/internal/pkg/slip"
	"github.com/polkiloo/receipts/internal/usecase"
)

// CheckoutFacade aggregates the operations exposed across HTTP handlers.
type CheckoutFacade struct {
	auth     *usecase.AuthUseCase
	receipts *usecase.ReceiptUseCase
	renderer *slip.Renderer
}

func NewCheckoutFacade(auth *usecase.AuthUseCase, receipts *usecase.ReceiptUseCase, renderer *slip.Renderer) *CheckoutFacade {
	return &CheckoutFacade{auth: auth, receipts: receipts, renderer: renderer}
}

func (f *CheckoutFacade) Register(ctx context.Context, username, password string) error {
	_, err := f.auth.Register(ctx, username, password)
	return err
}

func (f *CheckoutFacade) Authenticate(ctx context.Context, username, password string) (string, error) {
	return f.auth.Authenticate(ctx, username, password)
}

func (f *CheckoutFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

// CreateReceipt resolves the acting user from the token subject and runs the
// receipt engine. A subject that no longer resolves to a user is treated the
// same as bad credentials.
func (f *CheckoutFacade) CreateReceipt(ctx context.Context, username string, items []model.LineItem, paymentType string, paymentAmount float64) (*model.Receipt, error) {
	user, err := f.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return f.receipts.Create(ctx, user.ID, items, paymentType, paymentAmount)
}

func (f *CheckoutFacade) Receipts(ctx context.Context, username string, offset, limit int) ([]model.Receipt, error) {
	user, err := f.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return f.receipts.ListByUser(ctx, user.ID, offset, limit)
}

// RenderReceipt loads a stored receipt and formats it as a printable slip.
// No identity is required; the slip is a customer-facing document.
func (f *CheckoutFacade) RenderReceipt(ctx context.Context, id int64, width int) (string, error) {
	receipt, err := f.receipts.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return f.renderer.Render(receipt, width)
}

func (f *CheckoutFacade) resolveUser(ctx context.Context, username string) (*model.User, error) {
	user, err := f.auth.UserByName(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}
