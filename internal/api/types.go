// Package api はHTTPレスポンスの共有型を定義します。
package api

// ErrorResponse はすべてのエラーレスポンスで使う共通エンベロープです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// VolatilityEntry は1資産分のボラティリティ指標です。
// 元のダッシュボードと同様に、値はパーセント表示（小数点以下2桁）で返します。
type VolatilityEntry struct {
	Asset           string  `json:"asset"`
	Volatility      float64 `json:"volatility"`      // 日次ボラティリティ (%)
	AnnualizedVol   float64 `json:"annualizedVol"`   // 年率換算ボラティリティ (%)
	MaxDrawdown     float64 `json:"maxDrawdown"`     // 最大ドローダウン (%)
	ValueAtRisk     float64 `json:"valueAtRisk"`     // 95% VaR (%)
	VolatilityRatio float64 `json:"volatilityRatio"` // 対BTCボラティリティ比
	RiskCategory    string  `json:"riskCategory"`    // Low / Medium / High
}

// CorrelationResponse は相関行列とボラティリティ分析をまとめたレスポンスです。
type CorrelationResponse struct {
	Assets     []string          `json:"assets"`
	Matrix     [][]float64       `json:"matrix"`
	Volatility []VolatilityEntry `json:"volatility"`
}

// LiquidityPoint は1日分の資金フローです。
type LiquidityPoint struct {
	Date    string  `json:"date"`
	Inflow  float64 `json:"inflow"`
	Outflow float64 `json:"outflow"`
	NetFlow float64 `json:"netFlow"`
}

// MoodPoint はある時刻のセンチメント指標です。
type MoodPoint struct {
	Time    string  `json:"time"`
	Fear    float64 `json:"fear"`
	Greed   float64 `json:"greed"`
	Neutral float64 `json:"neutral"`
}

// MoodResponse はセンチメント時系列と最新値をまとめたレスポンスです。
type MoodResponse struct {
	Timeframe string    `json:"timeframe"`
	Series    []MoodPoint `json:"series"`
	Latest    MoodPoint `json:"latest"`
}
