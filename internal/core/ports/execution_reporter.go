package ports

import (
	"github.com/AntonioJCosta/neo/internal/core/domain/request"
	"github.com/AntonioJCosta/neo/internal/core/domain/response"
)

/*
ExecutionReporter receives user-facing diagnostics emitted while a request
executes. None of these calls affect the outcome of the execution.
*/
type ExecutionReporter interface {
	// SystemCommandFallback is called when no alias matched req.
	SystemCommandFallback(req request.Request)
	// ExternalOutputStart and ExternalOutputEnd bracket the output of an external command.
	ExternalOutputStart()
	ExternalOutputEnd()
	// Outcome reports the final response of a request to the user. It is
	// called by whoever submitted the request, not by the executor.
	Outcome(resp response.Response)
}
