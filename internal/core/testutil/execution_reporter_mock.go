package testutil

import (
	"sync"

	"github.com/AntonioJCosta/neo/internal/core/domain/request"
	"github.com/AntonioJCosta/neo/internal/core/domain/response"
)

// MockExecutionReporter is a mock implementation of ports.ExecutionReporter
// that records the sequence of diagnostics it receives.
type MockExecutionReporter struct {
	mu     sync.Mutex
	events []string
}

func (m *MockExecutionReporter) record(event string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

func (m *MockExecutionReporter) SystemCommandFallback(req request.Request) {
	m.record("fallback:" + req.Key)
}

func (m *MockExecutionReporter) ExternalOutputStart() { m.record("start") }

func (m *MockExecutionReporter) ExternalOutputEnd() { m.record("end") }

func (m *MockExecutionReporter) Outcome(resp response.Response) {
	m.record("outcome:" + resp.Status.String())
}

// Events returns a copy of the recorded diagnostics in order.
func (m *MockExecutionReporter) Events() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.events))
	copy(out, m.events)
	return out
}
