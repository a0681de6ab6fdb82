// Package dto defines the subset of CoinGecko response shapes the analytics
// feature decodes. The proxy routes themselves relay bodies untouched.
package dto

// Market is one entry of the /coins/markets response.
type Market struct {
	ID             string     `json:"id"`
	Symbol         string     `json:"symbol"`
	Name           string     `json:"name"`
	CurrentPrice   float64    `json:"current_price"`
	MarketCap      float64    `json:"market_cap"`
	SparklineIn7D  *Sparkline `json:"sparkline_in_7d,omitempty"`
}

// Sparkline holds the 7-day hourly price series CoinGecko attaches when
// sparkline=true is requested.
type Sparkline struct {
	Price []float64 `json:"price"`
}
