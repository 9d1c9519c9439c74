package commands

import (
	"context"
	"errors"
	"fmt"

	"arsipku/internal/cli/bootstrap"
	"arsipku/internal/config"
	"arsipku/internal/service"
	"arsipku/internal/session"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Log in and store the session" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	email, password := args[0], args[1]

	st, done, err := bootstrap.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer done()

	svc := service.NewAuthService(st.Users())
	u, err := svc.Login(ctx, email, password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return errors.New("invalid email or password")
	}
	if err != nil {
		return err
	}

	if err := (session.FSStore{}).Save(session.Session{UserID: u.ID, Email: u.Email}); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	fmt.Fprintf(Out, "Logged in as %s\n", u.Email)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
