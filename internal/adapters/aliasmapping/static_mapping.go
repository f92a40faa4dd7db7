package aliasmapping

import (
	"github.com/AntonioJCosta/neo/internal/core/domain/operation"
	"github.com/AntonioJCosta/neo/internal/core/ports"
)

// staticAliases is the built-in alias table. It is never mutated.
var staticAliases = map[operation.Operation][]string{
	operation.FileRead: {"file-read"},
	operation.FileCopy: {"file-copy"},
}

// StaticMapping implements the AliasMapping interface from a fixed table.
type StaticMapping struct {
	table map[operation.Operation][]string
}

// NewStaticMapping creates a StaticMapping backed by the built-in alias table.
func NewStaticMapping() ports.AliasMapping {
	return &StaticMapping{table: staticAliases}
}

// AliasesFor returns a copy of the aliases configured for op.
// Operations missing from the table, including the fallback, yield an empty slice.
func (m *StaticMapping) AliasesFor(op operation.Operation) []string {
	aliases := m.table[op]
	out := make([]string, len(aliases))
	copy(out, aliases)
	return out
}
