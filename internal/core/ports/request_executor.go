package ports

import (
	"context"

	"github.com/AntonioJCosta/neo/internal/core/domain/request"
	"github.com/AntonioJCosta/neo/internal/core/domain/response"
)

/*
RequestExecutor defines the contract for resolving and executing requests.
Implementations guarantee that at most one execution is in flight at a time
and always return a Response; failures are reported as StatusError.
*/
type RequestExecutor interface {
	Handle(ctx context.Context, req request.Request) response.Response
}
