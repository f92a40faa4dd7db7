package cli

import (
	"fmt"

	"github.com/AntonioJCosta/neo/internal/core/ports"
	"github.com/AntonioJCosta/neo/internal/handlers/terminal"
	"github.com/spf13/cobra"
)

const configFlag = "config"

// Session bundles the running collaborators that executing subcommands share.
type Session struct {
	Executor ports.RequestExecutor
	Reporter ports.ExecutionReporter
	Shell    *terminal.Shell
	// Close releases the session. It may be nil.
	Close func()
}

// SessionFactory builds a Session from the configuration file at configPath.
// An empty configPath selects the default location.
type SessionFactory func(configPath string) (*Session, error)

func openSession(cmd *cobra.Command, sessions SessionFactory) (*Session, error) {
	configPath, _ := cmd.Flags().GetString(configFlag)
	session, err := sessions(configPath)
	if err != nil {
		return nil, fmt.Errorf("could not start session: %w", err)
	}
	return session, nil
}

func (s *Session) close() {
	if s.Close != nil {
		s.Close()
	}
}
