package test

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/receipts/internal/domain/errors"
	"github.com/polkiloo/receipts/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Username: username, PasswordHash: passwordHash}
	s.Next++
	s.Users[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ReceiptRepositoryStub stores receipts in-memory for tests.
type ReceiptRepositoryStub struct {
	Receipts []*model.Receipt
	Next     int64
	Err      error
	Now      func() time.Time
}

// NewReceiptRepositoryStub constructs an empty receipt repository stub.
func NewReceiptRepositoryStub() *ReceiptRepositoryStub {
	return &ReceiptRepositoryStub{Next: 1}
}

// Create persists the receipt with all its items, assigning identifiers
// and the creation timestamp.
func (s *ReceiptRepositoryStub) Create(ctx context.Context, receipt *model.Receipt) (*model.Receipt, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *receipt
	stored.ID = s.Next
	s.Next++
	if s.Now != nil {
		stored.CreatedAt = s.Now()
	} else {
		stored.CreatedAt = time.Now()
	}
	stored.Items = make([]model.LineItem, len(receipt.Items))
	copy(stored.Items, receipt.Items)
	for i := range stored.Items {
		stored.Items[i].ID = int64(i + 1)
		stored.Items[i].ReceiptID = stored.ID
	}
	s.Receipts = append(s.Receipts, &stored)
	return &stored, nil
}

// GetByID returns a stored receipt or not found.
func (s *ReceiptRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Receipt, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, r := range s.Receipts {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser pages through the user's receipts in insertion order.
func (s *ReceiptRepositoryStub) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]model.Receipt, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var owned []model.Receipt
	for _, r := range s.Receipts {
		if r.UserID == userID {
			owned = append(owned, *r)
		}
	}
	if offset >= len(owned) {
		return nil, nil
	}
	owned = owned[offset:]
	if limit < len(owned) {
		owned = owned[:limit]
	}
	return owned, nil
}
