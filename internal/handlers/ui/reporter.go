package ui

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/neo/internal/core/domain/request"
	"github.com/AntonioJCosta/neo/internal/core/domain/response"
	"github.com/AntonioJCosta/neo/internal/core/ports"
)

const outputFence = "```"

// DiagnosticReporter implements ports.ExecutionReporter by writing terse,
// colored status lines to the diagnostic stream.
type DiagnosticReporter struct {
	out            io.Writer
	showDelimiters bool
}

// NewDiagnosticReporter creates a reporter writing to out, usually os.Stderr.
func NewDiagnosticReporter(out io.Writer, showDelimiters bool) ports.ExecutionReporter {
	return &DiagnosticReporter{out: out, showDelimiters: showDelimiters}
}

func (r *DiagnosticReporter) SystemCommandFallback(_ request.Request) {
	fmt.Fprintf(r.out, "%s %s\n", DetailColor("?"), DetailColor("using system command"))
}

func (r *DiagnosticReporter) ExternalOutputStart() {
	if r.showDelimiters {
		fmt.Fprintln(r.out, DetailColor(outputFence))
	}
}

func (r *DiagnosticReporter) ExternalOutputEnd() {
	if r.showDelimiters {
		fmt.Fprintln(r.out, DetailColor(outputFence))
	}
}

func (r *DiagnosticReporter) Outcome(resp response.Response) {
	if resp.IsOk() {
		fmt.Fprintf(r.out, "%s %s\n", DetailColor("*"), DetailColor("OK"))
		return
	}
	fmt.Fprintf(r.out, "%s %s\n", DetailColor("*"), ErrorColor("ERROR"))
}
