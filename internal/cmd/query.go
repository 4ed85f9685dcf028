package cmd

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/quantmind-br/sling/internal/catalog"
	"github.com/quantmind-br/sling/internal/config"
	"github.com/quantmind-br/sling/internal/paths"
	"github.com/quantmind-br/sling/internal/rank"
	"github.com/quantmind-br/sling/internal/ui"
)

// NewQueryCmd creates the query command, a one-shot rank of the
// catalog without the interactive session.
func NewQueryCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var showScores bool

	cmd := &cobra.Command{
		Use:   "query [text]",
		Short: "Rank the catalog against a query and print the shortlist",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			fs := afero.NewOsFs()
			resolver := paths.NewResolver(cfg)
			scanner := catalog.NewScanner(fs, log)

			items := scanner.Scan(resolver.ScanRoots())
			items = append(items, cfg.Items()...)
			cat := catalog.New(items)

			matches := rank.Score(query, cat.Items())
			if len(matches) == 0 {
				ui.PrintWarning("No items match %q", query)
				return nil
			}

			headers := []string{"Name", "Target"}
			width := 2
			if showScores {
				headers = []string{"Name", "Score", "Target"}
				width = 3
			}

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader(headers),
				tablewriter.WithAlignment(tw.MakeAlign(width, tw.AlignLeft)),
				tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
			)

			for _, m := range matches {
				if showScores {
					table.Append(m.Item.Name, strconv.Itoa(m.Score), truncatePath(m.Item.Path))
				} else {
					table.Append(m.Item.Name, truncatePath(m.Item.Path))
				}
			}

			table.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&showScores, "scores", false, "show the match scores")

	return cmd
}
