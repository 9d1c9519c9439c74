package commands

import (
	"context"

	"arsipku/internal/cli/bootstrap"
	"arsipku/internal/config"
	"arsipku/internal/service"
)

type findCmd struct{}

func (findCmd) Name() string        { return "find" }
func (findCmd) Description() string { return "Search documents by name" }
func (findCmd) Usage() string       { return "find <query>" }

func (findCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
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
	docs, err := svc.ListAll(ctx, sess.UserID)
	if err != nil {
		return err
	}

	// Filter first, then order by name; matching is case-insensitive.
	docs = service.FilterDocuments(docs, args[0])
	docs = service.SortDocuments(docs, service.SortByFileName, false)
	printDocuments(docs)
	return nil
}

func init() { RegisterCmd(findCmd{}) }
