package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"arsipku/internal/model"
)

// DocumentStore is the typed handle over the documents table.
type DocumentStore interface {
	// Add inserts the document and assigns its auto-increment id on d.
	Add(ctx context.Context, d *model.Document) error

	// Get returns the document with the given id, or (nil, nil) when absent.
	Get(ctx context.Context, id int64) (*model.Document, error)

	// Put inserts or replaces the document by primary key. Other records
	// are untouched.
	Put(ctx context.Context, d *model.Document) error

	// Delete removes the document. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id int64) error

	// ListByUser returns all documents of one user via the user_id index.
	ListByUser(ctx context.Context, userID string) ([]model.Document, error)

	// ListByUserAndFolder returns the user's documents in one folder via
	// the composite (user_id, folder) index.
	ListByUserAndFolder(ctx context.Context, userID string, folder model.Folder) ([]model.Document, error)
}

type documentTable struct {
	db *gorm.DB
}

var _ DocumentStore = (*documentTable)(nil)

func (t *documentTable) Add(ctx context.Context, d *model.Document) error {
	if err := t.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("add document: %w", err)
	}
	return nil
}

func (t *documentTable) Get(ctx context.Context, id int64) (*model.Document, error) {
	var d model.Document
	err := t.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

func (t *documentTable) Put(ctx context.Context, d *model.Document) error {
	err := t.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(d).Error
	if err != nil {
		return fmt.Errorf("put document: %w", err)
	}
	return nil
}

func (t *documentTable) Delete(ctx context.Context, id int64) error {
	if err := t.db.WithContext(ctx).Delete(&model.Document{}, id).Error; err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

func (t *documentTable) ListByUser(ctx context.Context, userID string) ([]model.Document, error) {
	var docs []model.Document
	err := t.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("list documents by user: %w", err)
	}
	return docs, nil
}

func (t *documentTable) ListByUserAndFolder(ctx context.Context, userID string, folder model.Folder) ([]model.Document, error) {
	var docs []model.Document
	err := t.db.WithContext(ctx).
		Where("user_id = ? AND folder = ?", userID, folder).
		Order("id").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("list documents by folder: %w", err)
	}
	return docs, nil
}
