/*
Package terminal implements the interactive side of the shell: decoding raw
key presses, editing a line and feeding submitted lines to the executor.
*/
package terminal

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/AntonioJCosta/neo/internal/core/domain/request"
	"github.com/AntonioJCosta/neo/internal/core/ports"
	"github.com/AntonioJCosta/neo/internal/handlers/ui"
	"go.uber.org/zap"
)

// Shell is the interactive input loop.
type Shell struct {
	editor     *Editor
	executor   ports.RequestExecutor
	reporter   ports.ExecutionReporter
	out        io.Writer
	promptInfo func() ui.PromptInfo
	logger     *zap.Logger
}

// Options holds the optional collaborators of a Shell.
type Options struct {
	// PromptInfo supplies the prompt header; defaults to ui.CurrentPromptInfo.
	PromptInfo func() ui.PromptInfo
	Logger     *zap.Logger
}

// NewShell creates the input loop. The prompt is written to out.
// It panics if editor, executor or reporter is nil.
func NewShell(
	editor *Editor,
	executor ports.RequestExecutor,
	reporter ports.ExecutionReporter,
	out io.Writer,
	opts Options,
) *Shell {
	if editor == nil {
		panic("editor cannot be nil")
	}
	if executor == nil {
		panic("executor cannot be nil")
	}
	if reporter == nil {
		panic("reporter cannot be nil")
	}
	if opts.PromptInfo == nil {
		opts.PromptInfo = ui.CurrentPromptInfo
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Shell{
		editor:     editor,
		executor:   executor,
		reporter:   reporter,
		out:        out,
		promptInfo: opts.PromptInfo,
		logger:     opts.Logger,
	}
}

// Run prompts for and executes lines until input ends. It returns nil when
// the user ends input and an error only when the terminal fails.
func (s *Shell) Run(ctx context.Context) error {
	s.logger.Info("interactive session started")
	defer s.logger.Info("interactive session ended")

	for {
		if _, err := io.WriteString(s.out, ui.FormatPrompt(s.promptInfo())); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		line, outcome, err := s.editor.ReadLine()
		if err != nil {
			return err
		}

		switch outcome {
		case Interrupted:
			return nil
		case Cancelled:
			continue
		case Submitted:
			s.submit(ctx, line)
		}
	}
}

// submit hands a submitted line to the executor. Blank lines are dropped.
func (s *Shell) submit(ctx context.Context, line string) {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	req, ok := request.Parse(line)
	if !ok {
		return
	}
	resp := s.executor.Handle(ctx, req)
	s.reporter.Outcome(resp)
}
