// Package entity defines the domain models for the liquidity feature.
package entity

// FlowPoint is one day of simulated liquidity migration. Inflow and Outflow
// are non-negative; NetFlow can carry a market-impact spike beyond their
// plain difference.
type FlowPoint struct {
	Date    string  // ISO date, YYYY-MM-DD
	Inflow  float64 // USD entering the pool
	Outflow float64 // USD leaving the pool
	NetFlow float64 // Inflow - Outflow, occasionally amplified
}
