package model

import (
	"fmt"
	"time"
)

// Folder is one of the three fixed categories a document can live in.
type Folder string

const (
	FolderPendidikan Folder = "Pendidikan"
	FolderPribadi    Folder = "Pribadi"
	FolderLainnya    Folder = "Lainnya"
)

// Folders lists all valid folders in display order.
func Folders() []Folder {
	return []Folder{FolderPendidikan, FolderPribadi, FolderLainnya}
}

// Valid reports whether f is one of the three enumerated folders.
func (f Folder) Valid() bool {
	switch f {
	case FolderPendidikan, FolderPribadi, FolderLainnya:
		return true
	}
	return false
}

func (f Folder) String() string { return string(f) }

// ParseFolder converts a raw string into a Folder.
func ParseFolder(s string) (Folder, error) {
	f := Folder(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown folder %q (expected %s, %s or %s)",
			s, FolderPendidikan, FolderPribadi, FolderLainnya)
	}
	return f, nil
}

// Document is a stored binary file with its upload metadata.
// Only FileName may change after creation (rename); everything else is
// immutable once the record is written.
type Document struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string `gorm:"not null;index:idx_documents_user;index:idx_documents_user_folder,priority:1" json:"user_id"`
	Folder Folder `gorm:"type:text;not null;index:idx_documents_user_folder,priority:2" json:"folder"`

	FileName         string `gorm:"not null" json:"file_name"`
	OriginalFileName string `json:"original_file_name"`

	// Index kept for future range queries over upload time.
	UploadDate time.Time `gorm:"not null;index:idx_documents_upload_date" json:"upload_date"`

	FileData []byte `json:"-"`
	MimeType string `json:"mime_type"`

	// FileSize is captured at upload. Records written before the field
	// existed carry 0 here; use Size() for reads.
	FileSize int64 `json:"file_size"`
}

func (Document) TableName() string { return "documents" }

// Size returns the byte length of the payload, falling back to the stored
// data length for legacy records without FileSize.
func (d *Document) Size() int64 {
	if d.FileSize > 0 {
		return d.FileSize
	}
	return int64(len(d.FileData))
}
