package bootstrap

import (
	"errors"
	"fmt"

	"arsipku/internal/config"
	"arsipku/internal/session"
	"arsipku/internal/store"
)

// OpenStore opens the archive database from the config and returns
// (store, cleanup, error). cleanup must be called when done to close the
// database connection.
func OpenStore(cfg *config.Config) (*store.Store, func() error, error) {
	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open archive db: %w", err)
	}
	return st, st.Close, nil
}

// CurrentSession returns the active login session or an error telling the
// user to login/register first.
func CurrentSession() (*session.Session, error) {
	s, err := session.FSStore{}.Load()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if s == nil {
		return nil, errors.New("no active user: run login or register first")
	}
	return s, nil
}
