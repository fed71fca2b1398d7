package score

import (
	"math"

	"github.com/drakonoslav/bulk-coach-sub003/schema"
)

const (
	// z1 grace: 10% of total minutes, clamped to [2,6].
	z1GraceRate = 0.10
	z1GraceMin  = 2
	z1GraceMax  = 6

	// off-band severity weights; time above the band costs 2.5x as much
	// as excess low-intensity time.
	z1OffBandWeight   = 0.5
	highOffBandWeight = 1.25
)

const ReasonNoTotalMinutes = "no_total_minutes"

// ContinuityResult is the cardio continuity score with every intermediate
// quantity exposed for debugging.
type ContinuityResult struct {
	Continuity      *float64
	Reason          string
	TotalMinutes    float64
	Z1Grace         float64
	Z1Penalty       float64
	OffBandWeighted float64
}

// CardioContinuity scores how much of a day's cardio time stayed inside the
// prescribed zone band. A session with no minutes at all has no continuity,
// not a zero one.
func CardioContinuity(zones schema.ZoneMinutes) ContinuityResult {
	total := zones.Total()
	if total <= 0 {
		return ContinuityResult{Reason: ReasonNoTotalMinutes}
	}

	grace := Clamp(math.Round(z1GraceRate*total), z1GraceMin, z1GraceMax)
	penalty := math.Max(0, zones.Z1-grace)
	offBand := z1OffBandWeight*penalty + highOffBandWeight*(zones.Z4+zones.Z5)
	continuity := Clamp(100*(1-offBand/total), 0, 100)

	return ContinuityResult{
		Continuity:      &continuity,
		TotalMinutes:    total,
		Z1Grace:         grace,
		Z1Penalty:       penalty,
		OffBandWeighted: offBand,
	}
}
