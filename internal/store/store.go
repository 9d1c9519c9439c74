// Package store is the embedded two-table database (users, documents) behind
// the archive. Access goes through typed table handles rather than table
// names, so a typo in a table or index name cannot compile.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"arsipku/internal/model"
)

var (
	// ErrStoreUnavailable means the database could not be opened or migrated.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrDuplicateKey means an insert hit an occupied explicit primary key.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Store wraps a gorm.DB over a local SQLite file.
type Store struct {
	db *gorm.DB
}

// Open opens (and creates if needed) the archive database at path and ensures
// both tables and their secondary indexes exist. Any failure is reported as
// ErrStoreUnavailable.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty database path", ErrStoreUnavailable)
	}
	if dir := filepath.Dir(path); dir != "." && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: path}
	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Document{}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Users returns the typed handle over the users table.
func (s *Store) Users() UserStore { return &userTable{db: s.db} }

// Documents returns the typed handle over the documents table.
func (s *Store) Documents() DocumentStore { return &documentTable{db: s.db} }
