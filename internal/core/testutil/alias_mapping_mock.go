package testutil

import "github.com/AntonioJCosta/neo/internal/core/domain/operation"

// MockAliasMapping is a mock implementation of ports.AliasMapping.
// A nil AliasesForFunc yields no aliases for any operation.
type MockAliasMapping struct {
	AliasesForFunc func(op operation.Operation) []string
}

func (m *MockAliasMapping) AliasesFor(op operation.Operation) []string {
	if m.AliasesForFunc != nil {
		return m.AliasesForFunc(op)
	}
	return []string{}
}
