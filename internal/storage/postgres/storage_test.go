package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/receipts/internal/domain/errors"
	"github.com/polkiloo/receipts/internal/domain/model"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func expectSchema(mock pgxmockv3.PgxPoolIface) {
	tableStatements := []string{
		"CREATE TABLE IF NOT EXISTS users",
		"CREATE TABLE IF NOT EXISTS receipts",
		"CREATE TABLE IF NOT EXISTS receipt_items",
	}
	for _, stmt := range tableStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	}
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_receipts_user ON receipts").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_receipt_items_receipt ON receipt_items").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
}

func TestInitSchema(t *testing.T) {
	storage, mock := newMockStorage(t)
	expectSchema(mock)

	if err := storage.initSchema(context.Background()); err != nil {
		t.Fatalf("init schema failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hash").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	user, err := storage.Users().Create(context.Background(), "alice", "hash")
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if user.ID != 1 || user.Username != "alice" || user.PasswordHash != "hash" {
		t.Fatalf("unexpected user %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepositoryCreateDuplicate(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	if _, err := storage.Users().Create(context.Background(), "alice", "hash"); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestUserRepositoryGetByUsername(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, username, password_hash, created_at FROM users WHERE username").
		WithArgs("alice").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(int64(2), "alice", "hash", now))

	user, err := storage.Users().GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if user.ID != 2 || user.Username != "alice" {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestUserRepositoryGetByUsernameNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT id, username, password_hash, created_at FROM users WHERE username").
		WithArgs("ghost").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "username", "password_hash", "created_at"}))

	if _, err := storage.Users().GetByUsername(context.Background(), "ghost"); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReceiptRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	receipt := &model.Receipt{
		UserID:        7,
		PaymentType:   "cash",
		PaymentAmount: 60,
		Total:         55.5,
		Change:        4.5,
		Items: []model.LineItem{
			{Name: "Cola", Price: 15, Quantity: 2, Total: 30},
			{Name: "Chips", Price: 25.5, Quantity: 1, Total: 25.5},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO receipts").
		WithArgs(int64(7), "cash", 60.0, 55.5, 4.5).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))
	mock.ExpectQuery("INSERT INTO receipt_items").
		WithArgs(int64(3), "Cola", 15.0, 2.0, 30.0).
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectQuery("INSERT INTO receipt_items").
		WithArgs(int64(3), "Chips", 25.5, 1.0, 25.5).
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectCommit()

	stored, err := storage.Receipts().Create(context.Background(), receipt)
	if err != nil {
		t.Fatalf("create receipt failed: %v", err)
	}
	if stored.ID != 3 {
		t.Fatalf("expected receipt id 3, got %d", stored.ID)
	}
	if !stored.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created at %v", stored.CreatedAt)
	}
	if stored.Items[0].ID != 10 || stored.Items[1].ID != 11 {
		t.Fatalf("unexpected item ids %+v", stored.Items)
	}
	if stored.Items[0].ReceiptID != 3 || stored.Items[1].ReceiptID != 3 {
		t.Fatalf("items not bound to receipt: %+v", stored.Items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReceiptRepositoryCreateRollsBackOnItemFailure(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	receipt := &model.Receipt{
		UserID:        7,
		PaymentType:   "cash",
		PaymentAmount: 60,
		Total:         30,
		Change:        30,
		Items:         []model.LineItem{{Name: "Cola", Price: 15, Quantity: 2, Total: 30}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO receipts").
		WithArgs(int64(7), "cash", 60.0, 30.0, 30.0).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))
	mock.ExpectQuery("INSERT INTO receipt_items").
		WithArgs(int64(3), "Cola", 15.0, 2.0, 30.0).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	if _, err := storage.Receipts().Create(context.Background(), receipt); err == nil {
		t.Fatal("expected create to fail")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReceiptRepositoryGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, user_id, payment_type, payment_amount, total, change, created_at").
		WithArgs(int64(3)).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "user_id", "payment_type", "payment_amount", "total", "change", "created_at"}).
			AddRow(int64(3), int64(7), "cash", 60.0, 55.5, 4.5, now))
	mock.ExpectQuery("SELECT id, receipt_id, name, price, quantity, total").
		WithArgs(int64(3)).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "receipt_id", "name", "price", "quantity", "total"}).
			AddRow(int64(10), int64(3), "Cola", 15.0, 2.0, 30.0).
			AddRow(int64(11), int64(3), "Chips", 25.5, 1.0, 25.5))

	receipt, err := storage.Receipts().GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("get receipt failed: %v", err)
	}
	if receipt.ID != 3 || receipt.Total != 55.5 || receipt.Change != 4.5 {
		t.Fatalf("unexpected receipt %+v", receipt)
	}
	if len(receipt.Items) != 2 || receipt.Items[0].Name != "Cola" || receipt.Items[1].Name != "Chips" {
		t.Fatalf("unexpected items %+v", receipt.Items)
	}
}

func TestReceiptRepositoryGetByIDNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT id, user_id, payment_type, payment_amount, total, change, created_at").
		WithArgs(int64(99)).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "user_id", "payment_type", "payment_amount", "total", "change", "created_at"}))

	if _, err := storage.Receipts().GetByID(context.Background(), 99); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReceiptRepositoryListByUser(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, user_id, payment_type, payment_amount, total, change, created_at").
		WithArgs(int64(7), 0, 10).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "user_id", "payment_type", "payment_amount", "total", "change", "created_at"}).
			AddRow(int64(1), int64(7), "cash", 60.0, 55.5, 4.5, now).
			AddRow(int64(2), int64(7), "card", 20.0, 20.0, 0.0, now))

	receipts, err := storage.Receipts().ListByUser(context.Background(), 7, 0, 10)
	if err != nil {
		t.Fatalf("list receipts failed: %v", err)
	}
	if len(receipts) != 2 || receipts[0].ID != 1 || receipts[1].ID != 2 {
		t.Fatalf("unexpected receipts %+v", receipts)
	}
}

func TestHealthCheck(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectPing()

	if err := storage.HealthCheck(context.Background()); err != nil {
		t.Fatalf("health check failed: %v", err)
	}
}
