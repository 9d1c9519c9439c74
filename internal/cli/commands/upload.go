package commands

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"arsipku/internal/cli/bootstrap"
	"arsipku/internal/config"
	"arsipku/internal/model"
	"arsipku/internal/service"
)

type uploadCmd struct{}

func (uploadCmd) Name() string        { return "upload" }
func (uploadCmd) Description() string { return "Store a file in a folder" }
func (uploadCmd) Usage() string       { return "upload <folder> <path> [name]" }

func (uploadCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	sess, err := bootstrap.CurrentSession()
	if err != nil {
		return err
	}
	folder, err := model.ParseFolder(args[0])
	if err != nil {
		return err
	}
	path := args[1]
	name := filepath.Base(path)
	if len(args) == 3 {
		name = args[2]
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	st, done, err := bootstrap.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer done()

	svc := service.NewDocumentService(st.Documents())
	doc, err := svc.Upload(ctx, sess.UserID, folder, name, f, filepath.Base(path), mimeType)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Uploaded:")
	fmt.Fprintf(Out, "  id:     %d\n", doc.ID)
	fmt.Fprintf(Out, "  folder: %s\n", doc.Folder)
	fmt.Fprintf(Out, "  name:   %s\n", doc.FileName)
	fmt.Fprintf(Out, "  size:   %s\n", service.FormatBytes(doc.Size()))
	return nil
}

func init() { RegisterCmd(uploadCmd{}) }
