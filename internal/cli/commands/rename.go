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

type renameCmd struct{}

func (renameCmd) Name() string        { return "rename" }
func (renameCmd) Description() string { return "Change a document's display name" }
func (renameCmd) Usage() string       { return "rename <id> <new-name>" }

func (renameCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
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
	if errors.Is(err, service.ErrNotFound) || (err == nil && doc.UserID != sess.UserID) {
		return fmt.Errorf("document %d not found", id)
	}
	if err != nil {
		return err
	}

	updated, err := svc.Rename(ctx, id, args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Renamed %d to %s\n", updated.ID, updated.FileName)
	return nil
}

func init() { RegisterCmd(renameCmd{}) }
