package cli

import (
	"fmt"

	"github.com/AntonioJCosta/neo/internal/core/ports"
	"github.com/spf13/cobra"
)

// BuildInfo is stamped into the binary at build time.
type BuildInfo struct {
	Version string
	Commit  string
}

var rootCmd *cobra.Command

func NewRootCommand(
	build BuildInfo,
	aliasMapping ports.AliasMapping,
	sessions SessionFactory,
) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "neo",
		Short: "neo is an interactive command shell.",
		Long: `neo reads commands from the terminal, runs built-in file operations
by alias and everything else as a system command.
Run without a subcommand to start an interactive session.`,
		Version:      build.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractiveCmd(cmd, sessions)
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			needsSession := !cmd.HasParent() || cmd.Name() == "interactive" || cmd.Name() == "run"
			if sessions == nil && needsSession {
				return fmt.Errorf("session factory not initialized for command %s", cmd.Name())
			}
			if aliasMapping == nil && cmd.Name() == "aliases" {
				return fmt.Errorf("alias mapping not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String(configFlag, "", "Path to the configuration file (default $HOME/.neo/config.yaml).")

	rootCmd.AddCommand(NewInteractiveCommand(sessions))
	rootCmd.AddCommand(NewRunCommand(sessions))
	rootCmd.AddCommand(NewVersionCommand(build))
	rootCmd.AddCommand(NewAliasesCommand(aliasMapping))

	return rootCmd
}
