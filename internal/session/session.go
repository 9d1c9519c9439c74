// Package session persists the logged-in user between runs: a single durable
// slot holding the {id, email} pair, cleared on logout.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Session is the persisted login slot.
type Session struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
}

// Store describes the durable session slot.
type Store interface {
	Save(s Session) error
	// Load returns (nil, nil) when no session is stored.
	Load() (*Session, error)
	Clear() error
}

// FSStore keeps the session as a small JSON file under the user config dir.
// Base directory can be overridden via ARSIPKU_CONFIG_PATH (used by tests).
type FSStore struct{}

var _ Store = FSStore{}

func configDir() (string, error) {
	if p := os.Getenv("ARSIPKU_CONFIG_PATH"); p != "" {
		if err := os.MkdirAll(p, 0o700); err != nil {
			return "", err
		}
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "ArsipKu")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func sessionPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.json"), nil
}

// Save writes the session slot.
func (FSStore) Save(s Session) error {
	if s.UserID == "" {
		return errors.New("empty user id")
	}
	p, err := sessionPath()
	if err != nil {
		return err
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Load reads the session slot; a missing or empty slot is (nil, nil).
func (FSStore) Load() (*Session, error) {
	p, err := sessionPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	if s.UserID == "" {
		return nil, nil
	}
	return &s, nil
}

// Clear removes the session slot; clearing an absent slot is a no-op.
func (FSStore) Clear() error {
	p, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
