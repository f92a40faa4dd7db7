package rawterm

import (
	"fmt"

	"github.com/AntonioJCosta/neo/internal/core/ports"
	"golang.org/x/term"
)

// Terminal implements the RawMode interface for a terminal file descriptor.
type Terminal struct {
	fd int
}

// NewTerminal creates a Terminal for fd, usually os.Stdin.Fd().
func NewTerminal(fd int) ports.RawMode {
	return &Terminal{fd: fd}
}

// Enable puts the terminal into raw mode.
func (t *Terminal) Enable() (func() error, error) {
	oldState, err := term.MakeRaw(t.fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enable raw mode: %w", err)
	}
	return func() error {
		if err := term.Restore(t.fd, oldState); err != nil {
			return fmt.Errorf("failed to restore terminal: %w", err)
		}
		return nil
	}, nil
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
