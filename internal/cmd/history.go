package cmd

import (
	"context"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/quantmind-br/sling/internal/config"
	"github.com/quantmind-br/sling/internal/history"
	"github.com/quantmind-br/sling/internal/paths"
	"github.com/quantmind-br/sling/internal/ui"
)

// NewHistoryCmd creates the history command
func NewHistoryCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		limit   int
		showTop bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently launched items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			resolver := paths.NewResolver(cfg)

			store, err := history.Open(ctx, resolver.HistoryFile())
			if err != nil {
				ui.PrintError("failed to open history: %v", err)
				return err
			}
			defer store.Close()

			if showTop {
				return printTop(cmd, ctx, store, limit)
			}
			return printRecent(cmd, ctx, store, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum rows to show")
	cmd.Flags().BoolVar(&showTop, "top", false, "aggregate by launch count instead of recency")

	return cmd
}

func printRecent(cmd *cobra.Command, ctx context.Context, store *history.Store, limit int) error {
	launches, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(launches) == 0 {
		ui.PrintInfo("Nothing launched yet")
		return nil
	}

	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithHeader([]string{"Name", "Launched", "Target"}),
		tablewriter.WithAlignment(tw.MakeAlign(3, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
	)
	for _, l := range launches {
		table.Append(l.Name, l.LaunchedAt.Format("2006-01-02 15:04"), truncatePath(l.Path))
	}
	table.Render()
	return nil
}

func printTop(cmd *cobra.Command, ctx context.Context, store *history.Store, limit int) error {
	entries, err := store.Top(ctx, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ui.PrintInfo("Nothing launched yet")
		return nil
	}

	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithHeader([]string{"Name", "Count", "Target"}),
		tablewriter.WithAlignment(tw.MakeAlign(3, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
	)
	for _, e := range entries {
		table.Append(e.Name, strconv.Itoa(e.Count), truncatePath(e.Path))
	}
	table.Render()
	return nil
}
