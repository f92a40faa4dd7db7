package resolution

import (
	"slices"

	"github.com/AntonioJCosta/neo/internal/core/domain/operation"
	"github.com/AntonioJCosta/neo/internal/core/domain/request"
	"github.com/AntonioJCosta/neo/internal/core/ports"
)

type service struct {
	mapping ports.AliasMapping
}

// NewService creates a new resolver backed by an alias mapping.
// It panics if the mapping is nil.
func NewService(m ports.AliasMapping) ports.Resolver {
	if m == nil {
		panic("aliasMapping cannot be nil")
	}
	return &service{mapping: m}
}

// Resolve walks the operations in enumeration order and returns the first one
// whose aliases contain the request key. When nothing matches it returns the
// fallback operation and false.
func (s *service) Resolve(req request.Request) (operation.Operation, bool) {
	for _, op := range operation.All() {
		if slices.Contains(s.mapping.AliasesFor(op), req.Key) {
			return op, true
		}
	}
	return operation.Fallback(), false
}
