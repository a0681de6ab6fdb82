// Package entity defines the domain models for the marketdata feature.
package entity

// UpstreamResponse is the raw result of a single upstream API call. The proxy
// treats the body as opaque bytes; only the status code drives the error
// taxonomy and the cache-or-not decision.
type UpstreamResponse struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the response carries a cacheable 2xx payload.
func (r UpstreamResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
