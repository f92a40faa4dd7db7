package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	shortCommitLength = 7
	unknownCommit     = "???????"
)

// NewVersionCommand creates the 'version' subcommand.
func NewVersionCommand(build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the commit the binary was built from.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.ErrOrStderr(), "version->#%s\n", shortCommit(build.Commit))
		},
	}
}

func shortCommit(commit string) string {
	if commit == "" {
		return unknownCommit
	}
	if len(commit) > shortCommitLength {
		return commit[:shortCommitLength]
	}
	return commit
}
