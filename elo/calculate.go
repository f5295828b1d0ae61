package elo

import "math"

// PerformanceScale is the rating difference at which the stronger player
// is expected to score ten times as often.
const PerformanceScale = 400.0

// Expected returns the probability that a player rated ra beats a player rated rb.
func Expected(ra, rb float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (rb-ra)/PerformanceScale))
}

// roundHalfUp rounds halves toward positive infinity: 2.5 -> 3, -2.5 -> -2.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
