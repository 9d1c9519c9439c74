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

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and log in" }
func (registerCmd) Usage() string       { return "register <email> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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
	u, err := svc.Register(ctx, email, password)
	if errors.Is(err, service.ErrEmailTaken) {
		return errors.New("email already registered")
	}
	if err != nil {
		return err
	}

	if err := (session.FSStore{}).Save(session.Session{UserID: u.ID, Email: u.Email}); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	fmt.Fprintf(Out, "Registered and logged in as %s\n", u.Email)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
