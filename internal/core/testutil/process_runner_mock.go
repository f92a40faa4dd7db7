package testutil

import (
	"context"
	"errors"
)

// MockProcessRunner is a mock implementation of ports.ProcessRunner.
type MockProcessRunner struct {
	RunFunc func(ctx context.Context, name string, args []string) error
}

// Run calls the mock RunFunc.
func (m *MockProcessRunner) Run(ctx context.Context, name string, args []string) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, name, args)
	}
	return errors.New("MockProcessRunner.RunFunc not implemented")
}
