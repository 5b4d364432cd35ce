package model

import "time"

// User represents a registered account able to create receipts.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
