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

type downloadCmd struct{}

func (downloadCmd) Name() string        { return "download" }
func (downloadCmd) Description() string { return "Write a document's payload to disk" }
func (downloadCmd) Usage() string       { return "download <id> [output-dir]" }

func (downloadCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	dir := cfg.DownloadDir
	if len(args) == 2 {
		dir = args[1]
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

	path, err := svc.SaveToFile(doc, dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Saved %s (%s, %s)\n", path, doc.MimeType, service.FormatBytes(doc.Size()))
	return nil
}

func init() { RegisterCmd(downloadCmd{}) }
