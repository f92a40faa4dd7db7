package testutil

import "sync"

// MockInterruptGuard is a mock implementation of ports.InterruptGuard that
// counts holds and releases.
type MockInterruptGuard struct {
	mu       sync.Mutex
	held     int
	released int
}

func (m *MockInterruptGuard) Hold() func() {
	m.mu.Lock()
	m.held++
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		m.released++
		m.mu.Unlock()
	}
}

// Holding reports whether a hold is currently in effect.
func (m *MockInterruptGuard) Holding() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.held > m.released
}

// Holds returns how many times Hold was called.
func (m *MockInterruptGuard) Holds() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.held
}
