package oscommand

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/AntonioJCosta/neo/internal/core/ports"
)

// OSProcessRunner implements the ProcessRunner interface by spawning programs
// found on PATH with their standard streams attached to the given terminal streams.
type OSProcessRunner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewOSProcessRunner creates an OSProcessRunner wired to the process's own terminal.
func NewOSProcessRunner() ports.ProcessRunner {
	return NewOSProcessRunnerWithStreams(os.Stdin, os.Stdout, os.Stderr)
}

// NewOSProcessRunnerWithStreams creates an OSProcessRunner wired to custom streams.
func NewOSProcessRunnerWithStreams(stdin io.Reader, stdout, stderr io.Writer) ports.ProcessRunner {
	return &OSProcessRunner{stdin: stdin, stdout: stdout, stderr: stderr}
}

// Run starts name with args and waits for it to exit.
func (r *OSProcessRunner) Run(ctx context.Context, name string, args []string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting '%s': %w", name, err)
	}
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("running '%s': %w", name, err)
	}
	return nil
}
