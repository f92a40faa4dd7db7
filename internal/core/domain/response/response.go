/*
Package response defines the outcome of executing one request.
*/
package response

// Status is the terminal state of an execution.
type Status int

const (
	StatusOk Status = iota
	StatusError
)

func (s Status) String() string {
	if s == StatusOk {
		return "ok"
	}
	return "error"
}

/*
Response carries only the status of an execution. Failure causes are not
propagated; they are logged by the executor.
*/
type Response struct {
	Status Status
}

// Ok returns a successful Response.
func Ok() Response {
	return Response{Status: StatusOk}
}

// Error returns a failed Response.
func Error() Response {
	return Response{Status: StatusError}
}

// IsOk reports whether the execution succeeded.
func (r Response) IsOk() bool {
	return r.Status == StatusOk
}
