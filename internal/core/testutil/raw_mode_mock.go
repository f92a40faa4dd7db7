package testutil

// MockRawMode is a mock implementation of ports.RawMode that counts how often
// raw mode was entered and left.
type MockRawMode struct {
	EnableErr  error
	RestoreErr error
	Enabled    int
	Restored   int
}

func (m *MockRawMode) Enable() (func() error, error) {
	if m.EnableErr != nil {
		return nil, m.EnableErr
	}
	m.Enabled++
	return func() error {
		m.Restored++
		return m.RestoreErr
	}, nil
}

// Active reports whether raw mode is currently enabled.
func (m *MockRawMode) Active() bool {
	return m.Enabled > m.Restored
}
