package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"arsipku/internal/crypto"
	"arsipku/internal/model"
	"arsipku/internal/store"
)

// mock for store.UserStore
type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Get(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) Add(ctx context.Context, u *model.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserStore) Put(ctx context.Context, u *model.User) error {
	return m.Called(ctx, u).Error(0)
}

var _ store.UserStore = (*mockUserStore)(nil)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserStore)
	svc := NewAuthService(m)

	t.Run("ok when email free", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("Get", mock.Anything, "john@example.com").Return((*model.User)(nil), nil).Once()
		m.On("Add", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.ID == "john@example.com" && u.Email == "john@example.com" && len(u.PasswordHash) == 64
		})).Return(nil).Once()

		u, err := svc.Register(ctx, "john@example.com", "p@ss")
		assert.NoError(t, err)
		assert.Equal(t, "john@example.com", u.ID)
		assert.Equal(t, "john@example.com", u.Email)
		m.AssertExpectations(t)
	})

	t.Run("conflict when email taken", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("Get", mock.Anything, "john@example.com").Return(&model.User{ID: "john@example.com"}, nil).Once()

		u, err := svc.Register(ctx, "john@example.com", "p@ss")
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrEmailTaken)
		m.AssertExpectations(t)
	})

	t.Run("duplicate key from store maps to conflict", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("Get", mock.Anything, "john@example.com").Return((*model.User)(nil), nil).Once()
		m.On("Add", mock.Anything, mock.Anything).Return(store.ErrDuplicateKey).Once()

		u, err := svc.Register(ctx, "john@example.com", "p@ss")
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrEmailTaken)
		m.AssertExpectations(t)
	})

	t.Run("empty email or password rejected before any store call", func(t *testing.T) {
		m.ExpectedCalls = nil

		_, err := svc.Register(ctx, "", "p@ss")
		assert.ErrorIs(t, err, ErrValidation)

		_, err = svc.Register(ctx, "john@example.com", "")
		assert.ErrorIs(t, err, ErrValidation)

		m.AssertNotCalled(t, "Get")
		m.AssertNotCalled(t, "Add")
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserStore)
	svc := NewAuthService(m)

	stored := &model.User{
		ID:           "alice@example.com",
		Email:        "alice@example.com",
		PasswordHash: crypto.HashPassword("secret"),
	}

	t.Run("ok with valid credentials", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("Get", mock.Anything, "alice@example.com").Return(stored, nil).Once()

		u, err := svc.Login(ctx, "alice@example.com", "secret")
		assert.NoError(t, err)
		assert.Equal(t, "alice@example.com", u.ID)
		m.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("Get", mock.Anything, "alice@example.com").Return(stored, nil).Once()

		u, err := svc.Login(ctx, "alice@example.com", "wrong")
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		m.AssertExpectations(t)
	})

	t.Run("unknown email yields the same error", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("Get", mock.Anything, "ghost@example.com").Return((*model.User)(nil), nil).Once()

		u, err := svc.Login(ctx, "ghost@example.com", "secret")
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		m.AssertExpectations(t)
	})
}
