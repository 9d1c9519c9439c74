package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"arsipku/internal/model"
)

// UserStore is the typed handle over the users table.
type UserStore interface {
	// Get returns the user with the given id, or (nil, nil) when absent.
	// A missing key is not an error.
	Get(ctx context.Context, id string) (*model.User, error)

	// Add inserts a user with its explicit key. Returns ErrDuplicateKey
	// when the id is already occupied.
	Add(ctx context.Context, u *model.User) error

	// Put inserts or replaces the user by primary key.
	Put(ctx context.Context, u *model.User) error
}

type userTable struct {
	db *gorm.DB
}

var _ UserStore = (*userTable)(nil)

func (t *userTable) Get(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := t.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (t *userTable) Add(ctx context.Context, u *model.User) error {
	// Existence check and insert run in one transaction so two concurrent
	// registrations for the same id cannot both succeed.
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("id = ?", u.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("add user: %w", err)
		}
		if count > 0 {
			return ErrDuplicateKey
		}
		if err := tx.Create(u).Error; err != nil {
			return fmt.Errorf("add user: %w", err)
		}
		return nil
	})
}

func (t *userTable) Put(ctx context.Context, u *model.User) error {
	err := t.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(u).Error
	if err != nil {
		return fmt.Errorf("put user: %w", err)
	}
	return nil
}
