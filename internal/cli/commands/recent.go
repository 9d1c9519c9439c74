package commands

import (
	"context"

	"arsipku/internal/cli/bootstrap"
	"arsipku/internal/config"
	"arsipku/internal/service"
)

type recentCmd struct{}

func (recentCmd) Name() string        { return "recent" }
func (recentCmd) Description() string { return "Show the most recent uploads" }
func (recentCmd) Usage() string       { return "recent" }

func (recentCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
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

	svc := service.NewStatsService(st.Documents())
	docs, err := svc.Recent(ctx, sess.UserID)
	if err != nil {
		return err
	}
	printDocuments(docs)
	return nil
}

func init() { RegisterCmd(recentCmd{}) }
