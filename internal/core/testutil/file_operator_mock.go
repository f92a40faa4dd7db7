package testutil

import "errors"

// MockFileOperator is a mock implementation of ports.FileOperator.
type MockFileOperator struct {
	ReadFunc func(paths ...string) error
	CopyFunc func(src, dst string) error
}

func (m *MockFileOperator) Read(paths ...string) error {
	if m.ReadFunc != nil {
		return m.ReadFunc(paths...)
	}
	return errors.New("MockFileOperator: ReadFunc not implemented")
}

func (m *MockFileOperator) Copy(src, dst string) error {
	if m.CopyFunc != nil {
		return m.CopyFunc(src, dst)
	}
	return errors.New("MockFileOperator: CopyFunc not implemented")
}
