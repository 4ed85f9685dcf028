package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/quantmind-br/sling/internal/config"
)

// NewRootCmd creates the root command
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "sling",
		Short:        "Keyboard-driven application launcher",
		Long:         `sling scans the application directories, builds an in-memory catalog and re-ranks it on every keystroke for keyboard-driven selection and launch.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLauncher(cfg, log)
		},
	}

	// Add subcommands
	cmd.AddCommand(NewRunCmd(cfg, log))
	cmd.AddCommand(NewListCmd(cfg, log))
	cmd.AddCommand(NewQueryCmd(cfg, log))
	cmd.AddCommand(NewHistoryCmd(cfg, log))
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}
