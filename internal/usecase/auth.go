package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/receipts/internal/domain/errors"
	"github.com/polkiloo/receipts/internal/domain/model"
	"github.com/polkiloo/receipts/internal/domain/repository"
	pkgAuth "github.com/polkiloo/receipts/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users    repository.UserRepository
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
	tokenTTL time.Duration
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, opts pkgAuth.Options) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, tokenTTL: opts.TTL}
}

// Register creates a new user from username/password. Registration does not
// log the user in; a token is only issued by Authenticate.
func (u *AuthUseCase) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, username, hash)
	if err != nil {
		return nil, err
	}
	return usr, nil
}

// Authenticate validates credentials and returns a signed bearer token.
// Unknown usernames and wrong passwords produce the same error.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return "", domainErrors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return "", domainErrors.ErrInvalidCredentials
	}

	return u.tokens.IssueToken(usr.Username, u.tokenTTL)
}

// ParseToken extracts the subject username from provided token.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// UserByName resolves a token subject to the stored user.
func (u *AuthUseCase) UserByName(ctx context.Context, username string) (*model.User, error) {
	return u.users.GetByUsername(ctx, username)
}
