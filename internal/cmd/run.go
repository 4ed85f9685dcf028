package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/quantmind-br/sling/internal/catalog"
	"github.com/quantmind-br/sling/internal/config"
	"github.com/quantmind-br/sling/internal/history"
	"github.com/quantmind-br/sling/internal/launch"
	"github.com/quantmind-br/sling/internal/paths"
	"github.com/quantmind-br/sling/internal/tui"
	"github.com/quantmind-br/sling/internal/ui"
)

// NewRunCmd creates the run command, an explicit spelling of the bare
// root invocation.
func NewRunCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive launcher",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLauncher(cfg, log)
		},
	}
}

// runLauncher scans, opens the TUI and launches whatever the user
// activated.
func runLauncher(cfg *config.Config, log *zerolog.Logger) error {
	fs := afero.NewOsFs()
	resolver := paths.NewResolver(cfg)
	scanner := catalog.NewScanner(fs, log)
	roots := resolver.ScanRoots()

	buildCatalog := func() *catalog.Catalog {
		items := scanner.Scan(roots)
		items = append(items, cfg.Items()...)
		return catalog.New(items)
	}

	store := catalog.NewStore()
	store.Swap(buildCatalog())
	log.Debug().Int("items", store.Current().Len()).Msg("catalog ready")

	model := tui.New(store, buildCatalog)
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run launcher ui: %w", err)
	}

	m, ok := final.(tui.Model)
	if !ok {
		return nil
	}
	it, ok := m.Choice()
	if !ok {
		return nil
	}

	return launchItem(cfg, log, fs, resolver, it)
}

// launchItem spawns the resolved item and records it in the history,
// best effort.
func launchItem(cfg *config.Config, log *zerolog.Logger, fs afero.Fs, resolver *paths.Resolver, it catalog.Item) error {
	runner := launch.NewOSCommandRunner()
	terminal := resolveTerminal(cfg, runner, it.Terminal)

	launcher := launch.New(fs, runner, terminal, log)
	if err := launcher.Launch(it); err != nil {
		ui.PrintError("failed to launch %s: %v", it.Name, err)
		return fmt.Errorf("launch %s: %w", it.Name, err)
	}

	recordLaunch(resolver, log, it)
	ui.PrintSuccess("launched %s", it.Name)
	return nil
}

// resolveTerminal picks the terminal emulator used for command-line
// items. Configuration wins; otherwise the known emulators are probed,
// and the user is asked only when the item actually needs a terminal
// and more than one candidate exists.
func resolveTerminal(cfg *config.Config, runner launch.CommandRunner, needsTerminal bool) string {
	if pref := cfg.Launch.Terminal; pref != "" {
		if runner.CommandExists(pref) {
			return pref
		}
		ui.PrintWarning("configured terminal %q not found, autodetecting", pref)
	}

	candidates := launch.DetectTerminals(runner)
	switch len(candidates) {
	case 0:
		return ""
	case 1:
		return candidates[0]
	}

	if needsTerminal {
		if choice, err := ui.SelectTerminalPrompt(candidates); err == nil {
			return choice
		}
	}
	return candidates[0]
}

// recordLaunch appends the launch to the history database. History is
// bookkeeping; a failure here must never fail the launch.
func recordLaunch(resolver *paths.Resolver, log *zerolog.Logger, it catalog.Item) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	store, err := history.Open(ctx, resolver.HistoryFile())
	if err != nil {
		log.Warn().Err(err).Msg("history unavailable, launch not recorded")
		return
	}
	defer store.Close()

	if err := store.Record(ctx, it.Name, it.Path); err != nil {
		log.Warn().Err(err).Msg("failed to record launch")
	}
}
