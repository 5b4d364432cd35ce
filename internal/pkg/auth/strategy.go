package auth

import (
	"errors"
	"time"
)

var (
	ErrInvalidToken   = errors.New("invalid auth token")
	ErrMissingSubject = errors.New("auth token has no subject")
)

// Strategy issues and verifies signed bearer tokens carrying a subject identity.
type Strategy interface {
	IssueToken(subject string, ttl time.Duration) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

// Options carries token issuing parameters shared across strategies.
type Options struct {
	TTL time.Duration
}
