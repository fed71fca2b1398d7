package score

import (
	"fmt"
	"math"
	"time"

	"github.com/drakonoslav/bulk-coach-sub003/schema"
)

// Full-swing divisors: the fractional delta that pins a sub-score at 0 or 100.
const (
	fullSwingHRV       = 0.10
	fullSwingRestingHR = 0.05
	fullSwingSleep     = 0.10
	fullSwingProxy     = 0.10
)

// Composite weights. They intentionally sum to 0.90; do not renormalize.
const (
	weightHRV       = 0.30
	weightRestingHR = 0.20
	weightSleep     = 0.20
	weightProxy     = 0.20
)

// Confidence multipliers applied to the raw composite.
var confidenceMultiplier = map[schema.ConfidenceGrade]float64{
	schema.ConfidenceHigh: 1.00,
	schema.ConfidenceMed:  0.90,
	schema.ConfidenceLow:  0.75,
	schema.ConfidenceNone: 0.60,
}

// Cortisol-flag thresholds on fractional deltas.
const (
	cortisolHRVDrop   = -0.08
	cortisolRHRRise   = 0.03
	cortisolSleepDrop = -0.10
	cortisolProxyDrop = -0.10
	cortisolScoreCap  = 74
	cortisolMinCount  = 3
)

const driverMagnitude = 0.02

// ReadinessInput is everything the aggregator needs for one date: the four
// rolling baseline pairs plus the 7-day proxy-source density counts.
type ReadinessInput struct {
	Date                    time.Time
	HRV                     BaselinePair
	RestingHR               BaselinePair
	SleepMinutes            BaselinePair
	AndrogenProxy           BaselinePair
	MeasuredProxySessions7d int
	MeasuredProxyDays7d     int
}

// GradeConfidence grades data density over the trailing 7 days: the number of
// measured (non-imputed) proxy-source sessions and the number of days with a
// non-nil proxy baseline sample.
func GradeConfidence(measuredSessions, measuredDays int) schema.ConfidenceGrade {
	switch {
	case measuredSessions >= 5 && measuredDays >= 4:
		return schema.ConfidenceHigh
	case measuredSessions >= 3 && measuredDays >= 2:
		return schema.ConfidenceMed
	case measuredSessions >= 1 || measuredDays >= 1:
		return schema.ConfidenceLow
	default:
		return schema.ConfidenceNone
	}
}

// TierForScore maps a composite score onto its readiness tier.
func TierForScore(score int) schema.ReadinessTier {
	switch {
	case score >= 75:
		return schema.TierGreen
	case score >= 60:
		return schema.TierYellow
	default:
		return schema.TierBlue
	}
}

// subScore converts a fractional delta into a 0-100 sub-score, symmetric
// around the neutral 50. A nil delta is unknown and scores exactly neutral.
func subScore(fractionalDelta *float64, fullSwing float64, inverted bool) float64 {
	if fractionalDelta == nil {
		return 50
	}
	s := 50 + 50*Clamp(*fractionalDelta/fullSwing, -1, 1)
	if inverted {
		s = 100 - s
	}
	return s
}

// ComputeReadiness turns one date's baseline deltas and proxy data density
// into the composite readiness result. It is pure: a date with no rows at all
// yields a neutral-scored, None-confidence result rather than an error.
func ComputeReadiness(in ReadinessInput) schema.ReadinessResult {
	hrvFrac := in.HRV.FractionalDelta()
	rhrFrac := in.RestingHR.FractionalDelta()
	sleepFrac := in.SleepMinutes.FractionalDelta()
	proxyFrac := in.AndrogenProxy.FractionalDelta()

	raw := weightHRV*subScore(hrvFrac, fullSwingHRV, false) +
		weightRestingHR*subScore(rhrFrac, fullSwingRestingHR, true) +
		weightSleep*subScore(sleepFrac, fullSwingSleep, false) +
		weightProxy*subScore(proxyFrac, fullSwingProxy, false)

	grade := GradeConfidence(in.MeasuredProxySessions7d, in.MeasuredProxyDays7d)
	final := Clamp(raw*confidenceMultiplier[grade], 0, 100)

	adverse := 0
	if hrvFrac != nil && *hrvFrac <= cortisolHRVDrop {
		adverse++
	}
	if rhrFrac != nil && *rhrFrac >= cortisolRHRRise {
		adverse++
	}
	if sleepFrac != nil && *sleepFrac <= cortisolSleepDrop {
		adverse++
	}
	if proxyFrac != nil && *proxyFrac <= cortisolProxyDrop {
		adverse++
	}

	cortisolFlag := adverse >= cortisolMinCount && grade != schema.ConfidenceNone
	if cortisolFlag {
		final = math.Min(final, cortisolScoreCap)
	}

	drivers := buildDrivers(hrvFrac, rhrFrac, sleepFrac, proxyFrac, cortisolFlag)

	typeLean := Clamp((final-60)/20, -1, 1)
	exerciseBias := Clamp((final-65)/20, -1, 1)
	if cortisolFlag && exerciseBias > 0 {
		exerciseBias = 0
	}

	scoreInt := int(math.Round(final))

	return schema.ReadinessResult{
		Date:         in.Date.Format("2006-01-02"),
		Score:        scoreInt,
		Tier:         TierForScore(scoreInt),
		Confidence:   grade,
		CortisolFlag: cortisolFlag,
		Deltas: schema.ReadinessDeltas{
			HRV:           round4p(in.HRV.Delta),
			RestingHR:     round4p(in.RestingHR.Delta),
			SleepMinutes:  round4p(in.SleepMinutes.Delta),
			AndrogenProxy: round4p(in.AndrogenProxy.Delta),
		},
		Baselines: schema.ReadinessBaselines{
			HRV7d:           round2p(in.HRV.Mean7d),
			HRV28d:          round2p(in.HRV.Mean28d),
			RestingHR7d:     round2p(in.RestingHR.Mean7d),
			RestingHR28d:    round2p(in.RestingHR.Mean28d),
			SleepMinutes7d:  round2p(in.SleepMinutes.Mean7d),
			SleepMinutes28d: round2p(in.SleepMinutes.Mean28d),
			Proxy7d:         round2p(in.AndrogenProxy.Mean7d),
			Proxy28d:        round2p(in.AndrogenProxy.Mean28d),
		},
		Drivers:      drivers,
		TypeLean:     Round2(typeLean),
		ExerciseBias: Round2(exerciseBias),
	}
}

func buildDrivers(hrv, rhr, sleep, proxy *float64, cortisolFlag bool) []string {
	drivers := []string{}
	if cortisolFlag {
		drivers = append(drivers, "Multiple stress signals are elevated; treat today as a recovery day.")
	}

	drivers = appendDriver(drivers, "HRV", hrv)
	drivers = appendDriver(drivers, "Resting heart rate", rhr)
	drivers = appendDriver(drivers, "Sleep", sleep)
	drivers = appendDriver(drivers, "Recovery proxy", proxy)

	if len(drivers) == 0 || (cortisolFlag && len(drivers) == 1) {
		drivers = append(drivers, "All tracked metrics are near baseline.")
	}
	return drivers
}

func appendDriver(drivers []string, name string, fractionalDelta *float64) []string {
	if fractionalDelta == nil || math.Abs(*fractionalDelta) < driverMagnitude {
		return drivers
	}

	direction := "up"
	if *fractionalDelta < 0 {
		direction = "down"
	}
	return append(drivers, fmt.Sprintf("%s is %s %.1f%% versus your 28-day baseline.",
		name, direction, math.Abs(*fractionalDelta)*100))
}
