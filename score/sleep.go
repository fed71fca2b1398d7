package score

import (
	"math"

	"github.com/drakonoslav/bulk-coach-sub003/schema"
)

const (
	minutesPerDay = 24 * 60

	// alignment decays linearly to zero as the summed absolute bed+wake
	// deviation grows toward this ceiling.
	alignmentCeilingMin = 180

	bedToleranceMin       = 30
	wakeToleranceMin      = 30
	shortfallToleranceMin = 30
)

type SleepDeviationClass string

const (
	SleepOnPlan             SleepDeviationClass = "on_plan"
	SleepBehavioralDrift    SleepDeviationClass = "behavioral_drift"
	SleepPhysShortfall      SleepDeviationClass = "physiological_shortfall"
	SleepOversleepSpillover SleepDeviationClass = "oversleep_spillover"
)

// SleepAlignmentResult is the alignment score and deviation classification
// for one night against the configured plan.
type SleepAlignmentResult struct {
	BedDeviationMin  *int
	WakeDeviationMin *int
	Alignment        *float64
	ShortfallMin     *float64
	Classification   SleepDeviationClass
}

// CircularDeviation returns the signed minute difference from planned to
// observed, wrapped around midnight so 23:30 vs 00:30 is 60 minutes, not
// 23 hours. The result lies in (-720, 720].
func CircularDeviation(plannedMinute, observedMinute int) int {
	d := (observedMinute - plannedMinute) % minutesPerDay
	if d <= -minutesPerDay/2 {
		d += minutesPerDay
	} else if d > minutesPerDay/2 {
		d -= minutesPerDay
	}
	return d
}

// SleepAlignment scores one observed night against the planned bed and wake
// times. Missing observations degrade the result to nil fields; the
// classification falls back to on_plan only when every signal is present and
// within tolerance.
func SleepAlignment(plan schema.SleepPlan, night schema.SleepLog) SleepAlignmentResult {
	var result SleepAlignmentResult

	if night.BedMinute != nil {
		d := CircularDeviation(plan.BedMinute, *night.BedMinute)
		result.BedDeviationMin = &d
	}
	if night.WakeMinute != nil {
		d := CircularDeviation(plan.WakeMinute, *night.WakeMinute)
		result.WakeDeviationMin = &d
	}
	if night.SleepMinutes != nil {
		shortfall := plan.PlannedSleepMins - *night.SleepMinutes
		result.ShortfallMin = &shortfall
	}

	if result.BedDeviationMin != nil && result.WakeDeviationMin != nil {
		summed := math.Abs(float64(*result.BedDeviationMin)) + math.Abs(float64(*result.WakeDeviationMin))
		alignment := 100 * (1 - math.Min(summed, alignmentCeilingMin)/alignmentCeilingMin)
		result.Alignment = &alignment
	}

	result.Classification = classifyDeviation(result)
	return result
}

// classifyDeviation applies the tolerance rules in priority order: oversleep
// spillover wins, then physiological shortfall, then behavioral drift, then
// the on-plan fallback.
func classifyDeviation(r SleepAlignmentResult) SleepDeviationClass {
	bedOff := r.BedDeviationMin != nil && math.Abs(float64(*r.BedDeviationMin)) > bedToleranceMin
	wakeLate := r.WakeDeviationMin != nil && *r.WakeDeviationMin > wakeToleranceMin
	wakeOff := r.WakeDeviationMin != nil && math.Abs(float64(*r.WakeDeviationMin)) > wakeToleranceMin
	short := r.ShortfallMin != nil && *r.ShortfallMin > shortfallToleranceMin
	overslept := r.ShortfallMin != nil && *r.ShortfallMin < -shortfallToleranceMin

	switch {
	case overslept && wakeLate:
		return SleepOversleepSpillover
	case short:
		return SleepPhysShortfall
	case bedOff || wakeOff:
		return SleepBehavioralDrift
	default:
		return SleepOnPlan
	}
}
