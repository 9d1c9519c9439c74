package commands

import (
	"context"
	"fmt"

	"arsipku/internal/cli/bootstrap"
	"arsipku/internal/config"
	"arsipku/internal/model"
	"arsipku/internal/service"
)

type statsCmd struct{}

func (statsCmd) Name() string        { return "stats" }
func (statsCmd) Description() string { return "Show folder counts and storage used" }
func (statsCmd) Usage() string       { return "stats" }

func (statsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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
	agg, err := svc.Recompute(ctx, sess.UserID)
	if err != nil {
		return err
	}

	for _, f := range model.Folders() {
		fmt.Fprintf(Out, "%-12s %d\n", f, agg.FolderCounts[f])
	}
	fmt.Fprintf(Out, "%-12s %d\n", "Total", agg.TotalCount)
	fmt.Fprintf(Out, "%-12s %s\n", "Storage", service.FormatBytes(agg.TotalBytes))
	return nil
}

func init() { RegisterCmd(statsCmd{}) }
