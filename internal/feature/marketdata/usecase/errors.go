// Package usecase implements the cache-through fetch logic for market data.
package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrRateLimited is returned when the upstream API answered 429.
	ErrRateLimited = errors.New("upstream rate limit exceeded")

	// ErrUpstreamUnreachable is returned on a network-level failure reaching
	// the upstream API.
	ErrUpstreamUnreachable = errors.New("failed to fetch data from upstream")
)

// StatusError carries a non-2xx, non-429 upstream response so the handler can
// pass status and body through unchanged.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned http %d", e.StatusCode)
}
