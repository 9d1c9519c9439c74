package commands

import (
	"context"
	"fmt"

	"arsipku/internal/config"
	"arsipku/internal/session"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show the active user" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, err := (session.FSStore{}).Load()
	if err != nil {
		return err
	}
	if s == nil {
		fmt.Fprintln(Out, "Not logged in")
		return nil
	}
	fmt.Fprintf(Out, "Logged in as %s\n", s.Email)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
