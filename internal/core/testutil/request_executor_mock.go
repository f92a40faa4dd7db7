package testutil

import (
	"context"

	"github.com/AntonioJCosta/neo/internal/core/domain/request"
	"github.com/AntonioJCosta/neo/internal/core/domain/response"
)

// MockRequestExecutor is a mock implementation of ports.RequestExecutor that
// records every request it receives.
type MockRequestExecutor struct {
	HandleFunc func(ctx context.Context, req request.Request) response.Response
	Requests   []request.Request
}

func (m *MockRequestExecutor) Handle(ctx context.Context, req request.Request) response.Response {
	m.Requests = append(m.Requests, req)
	if m.HandleFunc != nil {
		return m.HandleFunc(ctx, req)
	}
	return response.Ok()
}
