package ports

import (
	"github.com/AntonioJCosta/neo/internal/core/domain/operation"
	"github.com/AntonioJCosta/neo/internal/core/domain/request"
)

// Resolver maps a request to the operation that should handle it.
type Resolver interface {
	// Resolve returns the matched operation and true, or the fallback
	// operation and false when no alias matches. It never fails.
	Resolve(req request.Request) (operation.Operation, bool)
}
