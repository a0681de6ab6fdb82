// Package usecase implements the pass-through to the prediction backend.
package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when the prediction backend URL is unset.
	// No network call is attempted in that case.
	ErrNotConfigured = errors.New("prediction backend is not configured")

	// ErrTimeout is returned when the backend did not answer within the
	// configured deadline.
	ErrTimeout = errors.New("prediction backend timed out")

	// ErrUnreachable is returned on a connection-level failure.
	ErrUnreachable = errors.New("prediction backend unreachable")
)

// StatusError carries a non-2xx backend response for pass-through.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("prediction backend returned http %d", e.StatusCode)
}
