package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrNotATerminal is returned when an interactive session is requested but
// standard input is not a terminal.
var ErrNotATerminal = errors.New("standard input is not a terminal; use 'neo run <path>' to execute a file")

// NewInteractiveCommand creates the 'interactive' subcommand.
func NewInteractiveCommand(sessions SessionFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session (default).",
		Long: `Reads commands from the terminal until Ctrl-D.
Ctrl-L clears the screen, backspace edits the current line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractiveCmd(cmd, sessions)
		},
	}
}

func runInteractiveCmd(cmd *cobra.Command, sessions SessionFactory) error {
	session, err := openSession(cmd, sessions)
	if err != nil {
		return err
	}
	defer session.close()

	if session.Shell == nil {
		return ErrNotATerminal
	}
	if err := session.Shell.Run(cmd.Context()); err != nil {
		return fmt.Errorf("terminal failure: %w", err)
	}
	return nil
}
