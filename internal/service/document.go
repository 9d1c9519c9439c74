package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"arsipku/internal/model"
	"arsipku/internal/store"
)

// DocumentService is the CRUD layer over the documents table.
type DocumentService struct {
	docs store.DocumentStore
}

func NewDocumentService(docs store.DocumentStore) *DocumentService {
	return &DocumentService{docs: docs}
}

// Upload reads the whole payload from file and persists a new document.
// Validation happens before the read, and the record is built only after the
// read fully succeeds, so a failed upload leaves nothing behind.
func (s *DocumentService) Upload(ctx context.Context, userID string, folder model.Folder, displayName string, file io.Reader, originalName, mimeType string) (*model.Document, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if displayName == "" {
		return nil, fmt.Errorf("%w: document name is required", ErrValidation)
	}
	if !folder.Valid() {
		return nil, fmt.Errorf("%w: invalid folder %q", ErrValidation, folder)
	}
	if file == nil {
		return nil, fmt.Errorf("%w: no file supplied", ErrValidation)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	doc := &model.Document{
		UserID:           userID,
		Folder:           folder,
		FileName:         displayName,
		OriginalFileName: originalName,
		UploadDate:       time.Now().UTC(),
		FileData:         data,
		MimeType:         mimeType,
		FileSize:         int64(len(data)),
	}
	if err := s.docs.Add(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Get returns the document by id; ErrNotFound when it does not exist.
func (s *DocumentService) Get(ctx context.Context, id int64) (*model.Document, error) {
	doc, err := s.docs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	return doc, nil
}

// Rename changes the display name and nothing else. The record is loaded,
// merged and written back whole, so every other field stays as stored.
func (s *DocumentService) Rename(ctx context.Context, id int64, newName string) (*model.Document, error) {
	if newName == "" {
		return nil, fmt.Errorf("%w: new name is required", ErrValidation)
	}
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	doc.FileName = newName
	if err := s.docs.Put(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Remove deletes the document by id. Removing an absent id is a no-op.
func (s *DocumentService) Remove(ctx context.Context, id int64) error {
	return s.docs.Delete(ctx, id)
}

// ListAll returns every document of the user.
func (s *DocumentService) ListAll(ctx context.Context, userID string) ([]model.Document, error) {
	return s.docs.ListByUser(ctx, userID)
}

// ListByFolder returns the user's documents in one folder.
func (s *DocumentService) ListByFolder(ctx context.Context, userID string, folder model.Folder) ([]model.Document, error) {
	if !folder.Valid() {
		return nil, fmt.Errorf("%w: invalid folder %q", ErrValidation, folder)
	}
	return s.docs.ListByUserAndFolder(ctx, userID, folder)
}

// SaveToFile materializes the stored payload into dir, named by the original
// file name (falling back to the display name). Purely a local side effect;
// the store is not touched.
func (s *DocumentService) SaveToFile(doc *model.Document, dir string) (string, error) {
	name := doc.OriginalFileName
	if name == "" {
		name = doc.FileName
	}
	path := filepath.Join(dir, filepath.Base(name))
	if err := os.WriteFile(path, doc.FileData, 0o600); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return path, nil
}

// SortKey selects the ordering field for SortDocuments.
type SortKey string

const (
	SortByUploadDate SortKey = "date"
	SortByFileName   SortKey = "name"
)

// FilterDocuments returns the documents whose display name contains query,
// case-insensitively. Only FileName is matched. An empty query keeps all.
func FilterDocuments(docs []model.Document, query string) []model.Document {
	if query == "" {
		return docs
	}
	q := strings.ToLower(query)
	out := make([]model.Document, 0, len(docs))
	for _, d := range docs {
		if strings.Contains(strings.ToLower(d.FileName), q) {
			out = append(out, d)
		}
	}
	return out
}

// SortDocuments returns a copy of docs ordered by the given key. Names
// compare case-insensitively; the sort is stable, so equal keys keep their
// incoming order.
func SortDocuments(docs []model.Document, key SortKey, desc bool) []model.Document {
	out := make([]model.Document, len(docs))
	copy(out, docs)

	var less func(a, b *model.Document) bool
	switch key {
	case SortByFileName:
		less = func(a, b *model.Document) bool {
			return strings.ToLower(a.FileName) < strings.ToLower(b.FileName)
		}
	default:
		less = func(a, b *model.Document) bool {
			return a.UploadDate.Before(b.UploadDate)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(&out[j], &out[i])
		}
		return less(&out[i], &out[j])
	})
	return out
}
