package score

import "math"

// nearZeroBaseline guards percentage deltas against divide-by-near-zero.
const nearZeroBaseline = 1e-6

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round4 rounds to 4 decimal places.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func round2p(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := Round2(*v)
	return &r
}

func round4p(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := Round4(*v)
	return &r
}

// ChangeRate calculates the percentage change between two values. When the
// earlier value is zero the rate saturates to ±100 instead of blowing up.
func ChangeRate(new, old float64) float64 {
	if old == 0 {
		if new > 0 {
			return 100
		} else if new < 0 {
			return -100
		}
		return 0
	}

	return 100 * (new - old) / math.Abs(old)
}

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}
