package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/neo/internal/adapters/configfile"
	"github.com/AntonioJCosta/neo/internal/adapters/fileops"
	"github.com/AntonioJCosta/neo/internal/adapters/oscommand"
	"github.com/AntonioJCosta/neo/internal/adapters/ossignal"
	"github.com/AntonioJCosta/neo/internal/adapters/rawterm"
	"github.com/AntonioJCosta/neo/internal/core/domain/settings"
	"github.com/AntonioJCosta/neo/internal/core/ports"
	"github.com/AntonioJCosta/neo/internal/core/services/execution"
	"github.com/AntonioJCosta/neo/internal/core/services/resolution"
	"github.com/AntonioJCosta/neo/internal/handlers/cli"
	"github.com/AntonioJCosta/neo/internal/handlers/terminal"
	"github.com/AntonioJCosta/neo/internal/handlers/ui"
	"github.com/AntonioJCosta/neo/internal/logging"
	"go.uber.org/zap"
)

// newSessionFactory wires the executing side of the shell to the process's terminal.
func newSessionFactory(aliasMapping ports.AliasMapping) cli.SessionFactory {
	return func(configPath string) (*cli.Session, error) {
		conf, err := loadSettings(configPath)
		if err != nil {
			return nil, err
		}

		logger, err := logging.New(conf.Log)
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.WarningColor(fmt.Sprintf("Warning: could not initialize logging: %v. Continuing without a log file.", err)))
			logger = zap.NewNop()
		}

		reporter := ui.NewDiagnosticReporter(os.Stderr, conf.Executor.DelimitersEnabled())
		executor := execution.NewService(
			resolution.NewService(aliasMapping),
			oscommand.NewOSProcessRunner(),
			fileops.NewLocalFileOperator(os.Stdout),
			reporter,
			execution.Options{
				QueueSize:  conf.Executor.QueueSize,
				Logger:     logger,
				Interrupts: ossignal.NewInterruptGuard(),
			},
		)
		executor.Start()

		// Without a terminal on stdin only batch mode is available.
		var shell *terminal.Shell
		if stdin := int(os.Stdin.Fd()); rawterm.IsTerminal(stdin) {
			editor := terminal.NewEditor(os.Stdin, os.Stdout, rawterm.NewTerminal(stdin))
			shell = terminal.NewShell(editor, executor, reporter, os.Stdout, terminal.Options{Logger: logger})
		}

		return &cli.Session{
			Executor: executor,
			Reporter: reporter,
			Shell:    shell,
			Close: func() {
				executor.Close()
				_ = logger.Sync()
			},
		}, nil
	}
}

// loadSettings reads the configuration file. A malformed file is reported and
// replaced by the defaults; only a missing home directory is fatal.
func loadSettings(configPath string) (settings.Settings, error) {
	if configPath == "" {
		defaultPath, err := configfile.DefaultPath()
		if err != nil {
			return settings.Settings{}, err
		}
		configPath = defaultPath
	}

	provider, err := configfile.NewYAMLProvider(configPath)
	if err != nil {
		return settings.Settings{}, err
	}

	conf, err := provider.GetSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.WarningColor(fmt.Sprintf("Warning: %v. Continuing with default settings.", err)))
		return settings.Default(), nil
	}
	return conf, nil
}
