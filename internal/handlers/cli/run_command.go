package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AntonioJCosta/neo/internal/core/domain/request"
	"github.com/spf13/cobra"
)

const commentPrefix = "#"

// NewRunCommand creates the 'run' subcommand.
func NewRunCommand(sessions SessionFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "run <path>",
		Short: "Run the commands listed in a file.",
		Long: `Executes each line of the file as if it had been typed at the prompt.
Blank lines and lines starting with '#' are skipped. Execution stops at the
first command that fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunCmd(cmd, args, sessions)
		},
	}
}

func runRunCmd(cmd *cobra.Command, args []string, sessions SessionFactory) error {
	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("could not open command file: %w", err)
	}
	defer file.Close()

	session, err := openSession(cmd, sessions)
	if err != nil {
		return err
	}
	defer session.close()

	return runBatch(cmd.Context(), file, session)
}

// runBatch submits every command line of r in order and stops at the first failure.
func runBatch(ctx context.Context, r io.Reader, session *Session) error {
	if session.Executor == nil || session.Reporter == nil {
		return fmt.Errorf("executor not initialized for run command")
	}

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, commentPrefix) {
			continue
		}
		req, ok := request.Parse(line)
		if !ok {
			continue
		}

		resp := session.Executor.Handle(ctx, req)
		session.Reporter.Outcome(resp)
		if !resp.IsOk() {
			return fmt.Errorf("line %d: '%s' failed", lineNumber, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading command file: %w", err)
	}
	return nil
}
