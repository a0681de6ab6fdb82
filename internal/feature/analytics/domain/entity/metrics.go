// Package entity defines the domain models for the analytics feature.
package entity

// RiskCategory classifies an asset's volatility relative to the reference
// asset (BTC).
type RiskCategory string

const (
	RiskLow    RiskCategory = "Low"
	RiskMedium RiskCategory = "Medium"
	RiskHigh   RiskCategory = "High"
)

// VolatilityMetric holds the derived risk numbers for one asset. All values
// are fractions (0.25 = 25%); percent formatting happens at the transport
// layer.
type VolatilityMetric struct {
	Asset           string       // Uppercased symbol (e.g. "BTC")
	DailyVol        float64      // Sample standard deviation of daily returns
	AnnualizedVol   float64      // DailyVol × √365
	MaxDrawdown     float64      // Largest peak-to-trough decline
	ValueAtRisk     float64      // Historical 95% VaR, nearest-rank
	VolatilityRatio float64      // AnnualizedVol ÷ reference AnnualizedVol
	RiskCategory    RiskCategory // Derived from VolatilityRatio
}

// CorrelationMatrix is the N×N Pearson correlation of return series.
// Matrix[i][j] pairs Assets[i] with Assets[j]; the diagonal is exactly 1.
type CorrelationMatrix struct {
	Assets []string
	Matrix [][]float64
}

// CorrelationAnalysis bundles the full per-request analytics output.
// It is recomputed on every request and never cached.
type CorrelationAnalysis struct {
	Correlation CorrelationMatrix
	Volatility  []VolatilityMetric
}
