package ossignal

import (
	"os"
	"os/signal"

	"github.com/AntonioJCosta/neo/internal/core/ports"
)

// InterruptGuard implements the InterruptGuard interface with os/signal.
// While held, SIGINT is delivered to a channel that nobody reads, so the
// default action of terminating the process does not apply.
type InterruptGuard struct{}

// NewInterruptGuard creates an InterruptGuard for the current process.
func NewInterruptGuard() ports.InterruptGuard {
	return InterruptGuard{}
}

// Hold starts absorbing interrupts until the returned function is called.
func (InterruptGuard) Hold() func() {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	return func() {
		signal.Stop(interrupts)
	}
}
