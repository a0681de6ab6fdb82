// Package entity defines the domain models for the mood feature.
package entity

// MoodPoint is one sample of the fear/greed/neutral sentiment indicators,
// each expressed as a percentage.
type MoodPoint struct {
	Time    string // Sample time label, e.g. "08:00"
	Fear    float64
	Greed   float64
	Neutral float64
}
