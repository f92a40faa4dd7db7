package ports

import "context"

// ProcessRunner defines an interface for running external programs attached
// to the shell's own terminal streams.
type ProcessRunner interface {
	// Run starts name with args, waits for it and returns an error when the
	// program cannot be started or exits with a nonzero status.
	Run(ctx context.Context, name string, args []string) error
}
