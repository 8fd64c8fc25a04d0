package httpx

import (
	"errors"
	"fmt"
)

// ProblemError is a non-2xx response carrying the backend's problem payload.
// Detail is meant for the user verbatim.
type ProblemError struct {
	StatusCode int
	Detail     string
}

func (e *ProblemError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Detail)
}

// AsProblem unwraps err to a ProblemError if one is present.
func AsProblem(err error) (*ProblemError, bool) {
	var p *ProblemError
	if errors.As(err, &p) {
		return p, true
	}
	return nil, false
}

// IsStatus reports whether err carries a ProblemError with the given status.
func IsStatus(err error, code int) bool {
	p, ok := AsProblem(err)
	return ok && p.StatusCode == code
}

// Detail extracts the user-facing message from any error: the problem
// Detail when present, the bare error text otherwise.
func Detail(err error) string {
	if p, ok := AsProblem(err); ok && p.Detail != "" {
		return p.Detail
	}
	return err.Error()
}
