package cmd

import (
	"encoding/json"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/quantmind-br/sling/internal/catalog"
	"github.com/quantmind-br/sling/internal/config"
	"github.com/quantmind-br/sling/internal/icons"
	"github.com/quantmind-br/sling/internal/paths"
	"github.com/quantmind-br/sling/internal/ui"
)

// NewListCmd creates the list command
func NewListCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		jsonOutput  bool
		filterName  string
		showDetails bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Scan and list the launchable catalog",
		Long:  `Scan the application directories, merge user-declared entries and print the resulting catalog in its ranked-at-rest order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()
			resolver := paths.NewResolver(cfg)
			cat := scanWithProgress(cfg, log, fs, resolver)

			items := cat.Items()
			if filterName != "" {
				items = filterItems(items, filterName)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}

			if len(items) == 0 {
				if filterName != "" {
					ui.PrintWarning("No items match %q", filterName)
				} else {
					ui.PrintInfo("No launchable items found")
				}
				return nil
			}

			ui.PrintHeader("Launchable items")
			ui.PrintInfo("Total: %d", len(items))

			if showDetails {
				printDetailedTable(cmd, items, icons.NewResolver(fs, resolver.IconDirs()))
			} else {
				printCompactTable(cmd, items)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	cmd.Flags().StringVar(&filterName, "name", "", "filter by item name (partial match)")
	cmd.Flags().BoolVarP(&showDetails, "details", "d", false, "show icon resolution details")

	return cmd
}

// scanWithProgress walks each scan root with a progress bar and builds
// the catalog, config entries merged in before sorting.
func scanWithProgress(cfg *config.Config, log *zerolog.Logger, fs afero.Fs, resolver *paths.Resolver) *catalog.Catalog {
	scanner := catalog.NewScanner(fs, log)
	roots := resolver.ScanRoots()

	bar := ui.NewScanProgress(len(roots))
	var items []catalog.Item
	for _, root := range roots {
		items = append(items, scanner.Scan([]string{root})...)
		bar.Add(1)
	}
	bar.Finish()

	items = append(items, cfg.Items()...)
	return catalog.New(items)
}

// filterItems keeps items whose name contains the filter,
// case-insensitively.
func filterItems(items []catalog.Item, filter string) []catalog.Item {
	kept := make([]catalog.Item, 0, len(items))
	needle := strings.ToLower(filter)
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), needle) {
			kept = append(kept, it)
		}
	}
	return kept
}

// printCompactTable prints a compact table view
func printCompactTable(cmd *cobra.Command, items []catalog.Item) {
	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithHeader([]string{"Name", "Kind", "Target"}),
		tablewriter.WithAlignment(tw.MakeAlign(3, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
	)

	for _, it := range items {
		table.Append(
			it.Name,
			ui.ColorizeKind(it.Terminal, strings.HasSuffix(it.Path, catalog.EntrySuffix)),
			truncatePath(it.Path),
		)
	}

	table.Render()
}

// printDetailedTable adds the resolved icon file and its size.
func printDetailedTable(cmd *cobra.Command, items []catalog.Item, iconResolver *icons.Resolver) {
	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithHeader([]string{"Name", "Kind", "Target", "Icon", "Icon Size"}),
		tablewriter.WithAlignment(tw.MakeAlign(5, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleLight)),
	)

	for _, it := range items {
		iconPath, iconSize := "-", "-"
		if p, ok := iconResolver.Resolve(it.Icon); ok {
			iconPath = truncatePath(p)
			if size, err := iconResolver.DetectSize(p); err == nil {
				iconSize = size
			}
		}

		table.Append(
			it.Name,
			ui.ColorizeKind(it.Terminal, strings.HasSuffix(it.Path, catalog.EntrySuffix)),
			truncatePath(it.Path),
			iconPath,
			iconSize,
		)
	}

	table.Render()
}

// truncatePath shortens long paths, keeping the tail
func truncatePath(path string) string {
	if len(path) > 48 {
		return "..." + path[len(path)-45:]
	}
	return path
}
