package commands

import (
	"context"
	"fmt"
	"time"

	"arsipku/internal/cli/bootstrap"
	"arsipku/internal/config"
	"arsipku/internal/model"
	"arsipku/internal/service"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "List documents, newest first" }
func (listCmd) Usage() string       { return "list [folder]" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
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
	var docs []model.Document
	if len(args) == 1 {
		folder, perr := model.ParseFolder(args[0])
		if perr != nil {
			return perr
		}
		docs, err = svc.ListByFolder(ctx, sess.UserID, folder)
	} else {
		docs, err = svc.ListAll(ctx, sess.UserID)
	}
	if err != nil {
		return err
	}

	docs = service.SortDocuments(docs, service.SortByUploadDate, true)
	printDocuments(docs)
	return nil
}

func printDocuments(docs []model.Document) {
	if len(docs) == 0 {
		fmt.Fprintln(Out, "No documents")
		return
	}
	for i := range docs {
		d := &docs[i]
		fmt.Fprintf(Out, "%6d  %-10s  %-30s  %10s  %s\n",
			d.ID, d.Folder, d.FileName,
			service.FormatBytes(d.Size()),
			d.UploadDate.Local().Format(time.DateTime),
		)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(docs))
}

func init() { RegisterCmd(listCmd{}) }
