// Package adapters provides the HTTP client for the prediction backend.
package adapters

import (
	"os"
	"time"
)

// DefaultTimeout covers slow model inference. The backend fits a regression
// and a volatility model per request, so minutes-scale is normal.
const DefaultTimeout = 3 * time.Minute

// Config holds configuration for the prediction backend client.
type Config struct {
	BaseURL string        // Base URL of the prediction service; empty disables the route
	Timeout time.Duration // Per-request deadline
}

// LoadConfig loads prediction backend configuration from environment variables.
func LoadConfig() Config {
	timeout := DefaultTimeout
	if v := os.Getenv("PREDICTION_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		}
	}
	return Config{
		BaseURL: os.Getenv("PREDICTION_BASE_URL"),
		Timeout: timeout,
	}
}
