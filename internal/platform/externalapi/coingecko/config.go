// Package coingecko provides a client for the CoinGecko market-data API.
package coingecko

import (
	"os"
	"strconv"
	"time"
)

// DefaultBaseURL is the public CoinGecko v3 API.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// DefaultRateLimitPerMin is the pacing applied to upstream calls. The free
// CoinGecko tier allows roughly 30 calls/min.
const DefaultRateLimitPerMin = 30

// Config holds configuration for the CoinGecko API client.
type Config struct {
	BaseURL         string        // Base URL for the API
	Timeout         time.Duration // HTTP request timeout
	RateLimitPerMin int           // Upstream calls allowed per minute
}

// LoadConfig loads CoinGecko configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("COINGECKO_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	limit := DefaultRateLimitPerMin
	if v := os.Getenv("UPSTREAM_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return Config{
		BaseURL:         base,
		Timeout:         10 * time.Second,
		RateLimitPerMin: limit,
	}
}
