package util

import "math"

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// BarWidth returns the proportional width percentage of count against the
// largest count among its siblings: 100*count/max. Zero max yields zero.
func BarWidth(count, max int) float64 {
	if max <= 0 {
		return 0
	}
	return 100 * float64(count) / float64(max)
}
