package service

import (
	"context"
	"errors"
	"fmt"

	"arsipku/internal/crypto"
	"arsipku/internal/model"
	"arsipku/internal/store"
)

var (
	// ErrEmailTaken is returned by Register when the email is already used.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned by Login for an unknown email or a
	// wrong password; the two cases are intentionally indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrValidation marks input rejected before any store write.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned for operations on a missing document.
	ErrNotFound = errors.New("not found")
)

// AuthService handles registration and login against the users table.
type AuthService struct {
	users store.UserStore
}

func NewAuthService(users store.UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account keyed by the email exactly as given
// (case-sensitive, no normalization).
func (s *AuthService) Register(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}
	existing, err := s.users.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}
	u := &model.User{
		ID:           email,
		Email:        email,
		PasswordHash: crypto.HashPassword(password),
	}
	if err := s.users.Add(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Login checks the credentials and returns the account.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.users.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !crypto.VerifyPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
