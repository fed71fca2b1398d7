package score

import "math"

type StressBucket string

const (
	StressMinimal  StressBucket = "Minimal"
	StressLow      StressBucket = "Low"
	StressModerate StressBucket = "Moderate"
	StressHigh     StressBucket = "High"
	StressExtreme  StressBucket = "Extreme"
)

type HRVTrend string

const (
	HRVUp      HRVTrend = "up"
	HRVDown    HRVTrend = "down"
	HRVNeutral HRVTrend = "neutral"
)

// hrvTrendThreshold is the fractional HRV change that counts as a real move.
const hrvTrendThreshold = 0.08

// HPAState cross-classifies stress load with the HRV trend.
type HPAState struct {
	Bucket StressBucket
	Trend  HRVTrend
	Label  string
}

// StressBucketFor maps a 0-100 stress-load score into its ordered bucket.
// Non-finite scores default to Minimal.
func StressBucketFor(load float64) StressBucket {
	if math.IsNaN(load) || math.IsInf(load, 0) {
		return StressMinimal
	}
	switch {
	case load <= 19:
		return StressMinimal
	case load <= 39:
		return StressLow
	case load <= 59:
		return StressModerate
	case load <= 79:
		return StressHigh
	default:
		return StressExtreme
	}
}

// HRVTrendFor classifies a fractional HRV change against the ±8% threshold.
// A nil change is unknown and reads as neutral.
func HRVTrendFor(change *float64) HRVTrend {
	if change == nil || math.IsNaN(*change) {
		return HRVNeutral
	}
	switch {
	case *change >= hrvTrendThreshold:
		return HRVUp
	case *change <= -hrvTrendThreshold:
		return HRVDown
	default:
		return HRVNeutral
	}
}

// ClassifyHPAState combines the stress-load bucket and HRV trend into one of
// five composite labels. High load with HRV holding up reads as buffered
// activation, not strain.
func ClassifyHPAState(load float64, hrvChange *float64) HPAState {
	bucket := StressBucketFor(load)
	trend := HRVTrendFor(hrvChange)

	highLoad := bucket == StressHigh || bucket == StressExtreme

	var label string
	switch {
	case highLoad && trend == HRVUp:
		label = "Activated (buffered)"
	case highLoad && trend == HRVDown:
		label = "Strained (depleting)"
	case highLoad:
		label = "Loaded (compensating)"
	case trend == HRVDown:
		label = "Drained (watch recovery)"
	default:
		label = "Balanced"
	}

	return HPAState{Bucket: bucket, Trend: trend, Label: label}
}
