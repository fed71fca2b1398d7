package score

import (
	"math"
	"time"

	"github.com/drakonoslav/bulk-coach-sub003/consts"
)

// DeltaMode selects how a metric's 7d-vs-28d delta is expressed.
type DeltaMode int

const (
	// DeltaRatio is (mean7d − mean28d) / mean28d, nil when the 28-day
	// baseline is within 1e-6 of zero.
	DeltaRatio DeltaMode = iota
	// DeltaAbsolute is the plain difference mean7d − mean28d, used for
	// resting heart rate where a bpm shift is meaningful on its own.
	DeltaAbsolute
)

// BaselinePair is the rolling (mean7d, mean28d) pair with its delta. A nil
// mean signals an empty window and must be treated as unknown, never as zero.
type BaselinePair struct {
	Mean7d  *float64
	Mean28d *float64
	Delta   *float64
}

// FractionalDelta returns the delta as a fraction of the 28-day mean
// regardless of mode, so threshold rules can compare metrics uniformly.
// It is nil when the delta is nil or the baseline is near zero.
func (b BaselinePair) FractionalDelta() *float64 {
	if b.Delta == nil || b.Mean28d == nil {
		return nil
	}
	if math.Abs(*b.Mean28d) < nearZeroBaseline {
		return nil
	}
	f := (*b.Mean7d - *b.Mean28d) / *b.Mean28d
	return &f
}

// RollingBaseline computes the trailing 7-day and 28-day means ending at
// target (inclusive) over a per-date sample map, and the delta between them.
// Nil map values and absent dates both count as missing samples.
func RollingBaseline(samples map[string]*float64, target time.Time, mode DeltaMode) BaselinePair {
	mean7 := windowMean(samples, target, consts.ShortBaselineDays)
	mean28 := windowMean(samples, target, consts.LongBaselineDays)

	pair := BaselinePair{Mean7d: mean7, Mean28d: mean28}
	if mean7 == nil || mean28 == nil {
		return pair
	}

	switch mode {
	case DeltaAbsolute:
		d := *mean7 - *mean28
		pair.Delta = &d
	default:
		if math.Abs(*mean28) < nearZeroBaseline {
			return pair
		}
		d := (*mean7 - *mean28) / *mean28
		pair.Delta = &d
	}

	return pair
}

// windowMean averages the non-nil samples in the trailing window of the given
// length ending at target. It returns nil for a window with zero valid
// samples; a mean is never computed from fewer than one sample.
func windowMean(samples map[string]*float64, target time.Time, days int) *float64 {
	sum := float64(0)
	count := 0
	for i := 0; i < days; i++ {
		date := target.AddDate(0, 0, -i).Format("2006-01-02")
		if v, ok := samples[date]; ok && v != nil {
			sum += *v
			count++
		}
	}

	if count == 0 {
		return nil
	}
	mean := sum / float64(count)
	return &mean
}
