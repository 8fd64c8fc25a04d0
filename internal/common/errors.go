// Package common defines sentinel errors shared across client layers.
// Callers should use errors.Is to match these values.
package common

import (
	"context"
	"errors"
)

var (
	// ErrCanceled marks a request aborted by its owner's cancel handle.
	// It is expected during teardown and must never be shown to the user.
	ErrCanceled = errors.New("request canceled")

	// ErrUnauthorized marks a 401 that survived the refresh attempt.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable marks a transport-level failure (server unreachable).
	ErrUnavailable = errors.New("server unavailable")

	ErrNotFound = errors.New("not found")
)

// IsCanceled reports whether err comes from a canceled request, either via
// the service's cancel handle or an expired/canceled context.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled) || errors.Is(err, context.Canceled)
}
