package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"arsipku/internal/cli/bootstrap"
	"arsipku/internal/config"
	"arsipku/internal/service"
)

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Delete a document" }
func (deleteCmd) Usage() string       { return "delete <id>" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	sess, err := bootstrap.CurrentSession()
	if err != nil {
		return err
	}
	st, done, err := bootstrap.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer done()

	svc := service.NewDocumentService(st.Documents())
	doc, err := svc.Get(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		// Deleting is idempotent; an already-absent id is fine.
		fmt.Fprintf(Out, "Deleted %d\n", id)
		return nil
	}
	if err != nil {
		return err
	}
	if doc.UserID != sess.UserID {
		return fmt.Errorf("document %d not found", id)
	}

	if err := svc.Remove(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted %d\n", id)
	return nil
}

func init() { RegisterCmd(deleteCmd{}) }
