package terminal

import (
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/neo/internal/core/ports"
	"github.com/AntonioJCosta/neo/internal/handlers/ui"
)

// Outcome is the state an editing cycle ends in.
type Outcome int

const (
	// Submitted means the user pressed enter; the line is returned.
	Submitted Outcome = iota
	// Cancelled means the screen was cleared and the line abandoned.
	Cancelled
	// Interrupted means input ended and the shell should exit.
	Interrupted
)

func (o Outcome) String() string {
	switch o {
	case Submitted:
		return "submitted"
	case Cancelled:
		return "cancelled"
	case Interrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

const (
	clearLine   = "\x1b[2K"
	clearScreen = "\x1b[2J\x1b[H"
	newLine     = "\r\n"
)

// Editor accumulates key presses into a line of input.
type Editor struct {
	keys *KeyReader
	out  io.Writer
	raw  ports.RawMode
}

// NewEditor creates an Editor reading keys from in and echoing to out.
func NewEditor(in io.Reader, out io.Writer, raw ports.RawMode) *Editor {
	return &Editor{keys: NewKeyReader(in), out: out, raw: raw}
}

// ReadLine runs one editing cycle. The terminal is in raw mode for the
// duration of the call and is restored on every return path.
// End of input on the reader ends the cycle as Interrupted; any other
// terminal failure is returned as an error.
func (e *Editor) ReadLine() (line string, outcome Outcome, err error) {
	restore, err := e.raw.Enable()
	if err != nil {
		return "", Interrupted, err
	}
	defer func() {
		if restoreErr := restore(); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()

	var buffer []rune
	for {
		key, readErr := e.keys.ReadKey()
		if errors.Is(readErr, io.EOF) {
			return "", Interrupted, e.write(newLine)
		}
		if readErr != nil {
			return "", Interrupted, fmt.Errorf("failed to read from terminal: %w", readErr)
		}

		switch key.Code {
		case KeyRune:
			buffer = append(buffer, key.Rune)
			if err := e.render(buffer); err != nil {
				return "", Interrupted, err
			}
		case KeyBackspace:
			if len(buffer) == 0 {
				continue
			}
			buffer = buffer[:len(buffer)-1]
			if err := e.render(buffer); err != nil {
				return "", Interrupted, err
			}
		case KeyEnter:
			return string(buffer), Submitted, e.write(newLine)
		case KeyClearScreen:
			return "", Cancelled, e.write(clearScreen)
		case KeyEndOfInput:
			return "", Interrupted, e.write(newLine)
		case KeyCancel:
			// Reserved for interrupting a running operation.
		}
	}
}

func (e *Editor) render(buffer []rune) error {
	return e.write("\r" + clearLine + ui.FormatInputLine(string(buffer)))
}

func (e *Editor) write(s string) error {
	if _, err := io.WriteString(e.out, s); err != nil {
		return fmt.Errorf("failed to write to terminal: %w", err)
	}
	return nil
}
