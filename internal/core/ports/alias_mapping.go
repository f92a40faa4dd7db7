package ports

import "github.com/AntonioJCosta/neo/internal/core/domain/operation"

/*
AliasMapping defines the contract for looking up the textual aliases of an
operation. Implementations must be total over the operation set, side-effect
free and safe for concurrent reads.
*/
type AliasMapping interface {
	// AliasesFor returns the aliases recognized for op, in order.
	// An operation without aliases yields an empty slice.
	AliasesFor(op operation.Operation) []string
}
