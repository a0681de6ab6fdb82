// Package usecase implements the statistics engine for the analytics feature.
package usecase

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"crypto_backend/internal/feature/analytics/domain/entity"
)

const (
	// MinSeriesLen is the shortest price series volatility metrics are
	// computed for. Shorter series are excluded from the output, not errors.
	MinSeriesLen = 6

	// ReferenceAsset anchors the volatility ratio. BTC is the most liquid
	// asset in every fetched set.
	ReferenceAsset = "BTC"

	// varQuantile selects the 5th percentile of sorted returns for the
	// historical 95% VaR.
	varQuantile = 0.05
)

// annualizationFactor converts daily volatility to annual. Crypto trades
// every day of the year, so √365 rather than the √252 of equity markets.
var annualizationFactor = math.Sqrt(365)

// Returns converts a chronological price series to simple returns:
// r[i] = p[i+1]/p[i] - 1. Fewer than 2 prices yields an empty slice.
func Returns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}
	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns = append(returns, prices[i]/prices[i-1]-1)
	}
	return returns
}

// Correlation computes the Pearson correlation of two price series over
// their overlapping return window. Either series shorter than 2 prices
// yields the neutral default 0.
func Correlation(a, b []float64) float64 {
	if len(a) < 2 || len(b) < 2 {
		return 0
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	ra := Returns(a[:n])
	rb := Returns(b[:n])
	c := stat.Correlation(ra, rb, nil)
	if math.IsNaN(c) {
		// Zero-variance series have no defined correlation; report neutral.
		return 0
	}
	return c
}

// BuildCorrelationMatrix computes the eager N×N correlation matrix over all
// assets in priceMap. Assets are ordered alphabetically so the output is
// deterministic; the diagonal is forced to 1 without computation.
func BuildCorrelationMatrix(priceMap map[string][]float64) entity.CorrelationMatrix {
	assets := make([]string, 0, len(priceMap))
	for asset := range priceMap {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	matrix := make([][]float64, len(assets))
	for i, a := range assets {
		row := make([]float64, len(assets))
		for j, b := range assets {
			if i == j {
				row[j] = 1
				continue
			}
			row[j] = Correlation(priceMap[a], priceMap[b])
		}
		matrix[i] = row
	}
	return entity.CorrelationMatrix{Assets: assets, Matrix: matrix}
}

// VolatilityMetrics computes per-asset risk numbers for every series with at
// least MinSeriesLen prices, sorted by volatility ratio descending. When the
// reference asset itself is too short, every ratio is 0 and every category
// collapses to Low; that is degraded-but-valid output, not an error.
func VolatilityMetrics(priceMap map[string][]float64) []entity.VolatilityMetric {
	refVol := 0.0
	if ref, ok := priceMap[ReferenceAsset]; ok && len(ref) >= MinSeriesLen {
		refVol = stat.StdDev(Returns(ref), nil) * annualizationFactor
	}

	results := make([]entity.VolatilityMetric, 0, len(priceMap))
	for asset, prices := range priceMap {
		if len(prices) < MinSeriesLen {
			continue
		}
		returns := Returns(prices)

		dailyVol := stat.StdDev(returns, nil)
		annualVol := dailyVol * annualizationFactor

		ratio := 0.0
		if refVol > 0 {
			ratio = annualVol / refVol
		}

		results = append(results, entity.VolatilityMetric{
			Asset:           asset,
			DailyVol:        dailyVol,
			AnnualizedVol:   annualVol,
			MaxDrawdown:     maxDrawdown(prices),
			ValueAtRisk:     valueAtRisk(returns),
			VolatilityRatio: ratio,
			RiskCategory:    riskCategory(ratio),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].VolatilityRatio != results[j].VolatilityRatio {
			return results[i].VolatilityRatio > results[j].VolatilityRatio
		}
		return results[i].Asset < results[j].Asset
	})
	return results
}

// maxDrawdown tracks the running peak over the whole series and returns the
// largest (peak-price)/peak observed.
func maxDrawdown(prices []float64) float64 {
	peak := prices[0]
	maxDD := 0.0
	for _, p := range prices[1:] {
		if p > peak {
			peak = p
		}
		if dd := (peak - p) / peak; dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// valueAtRisk is the absolute nearest-rank 5th percentile of sorted returns.
// Nearest-rank (not interpolated) is kept for output compatibility with the
// original dashboard at small sample sizes.
func valueAtRisk(returns []float64) float64 {
	sorted := append([]float64(nil), returns...)
	sort.Float64s(sorted)
	return math.Abs(sorted[int(float64(len(sorted))*varQuantile)])
}

// riskCategory maps a volatility ratio onto the fixed thresholds.
func riskCategory(ratio float64) entity.RiskCategory {
	switch {
	case ratio > 1.5:
		return entity.RiskHigh
	case ratio > 1:
		return entity.RiskMedium
	default:
		return entity.RiskLow
	}
}
