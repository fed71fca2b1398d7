package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drakonoslav/bulk-coach-sub003/schema"
)

func TestCircularDeviation(t *testing.T) {
	// 23:30 planned, 00:30 observed: one hour late, not 23 hours early
	assert.Equal(t, 60, CircularDeviation(23*60+30, 30))
	// 00:30 planned, 23:30 observed: one hour early
	assert.Equal(t, -60, CircularDeviation(30, 23*60+30))
	assert.Equal(t, 0, CircularDeviation(420, 420))
	// exactly opposite maps to the positive half of (-720, 720]
	assert.Equal(t, 720, CircularDeviation(0, 720))
	assert.Equal(t, 720, CircularDeviation(720, 0))
}

func sleepNight(bed, wake int, slept float64) schema.SleepLog {
	return schema.SleepLog{
		BedMinute:    intPtr(bed),
		WakeMinute:   intPtr(wake),
		SleepMinutes: floatPtr(slept),
	}
}

func TestSleepAlignmentScore(t *testing.T) {
	plan := schema.SleepPlan{BedMinute: 23 * 60, WakeMinute: 7 * 60, PlannedSleepMins: 480}

	// perfectly on plan
	r := SleepAlignment(plan, sleepNight(23*60, 7*60, 480))
	if assert.NotNil(t, r.Alignment) {
		assert.Equal(t, float64(100), *r.Alignment)
	}
	assert.Equal(t, SleepOnPlan, r.Classification)

	// |bed| + |wake| = 90 is halfway to the 180-minute ceiling
	r = SleepAlignment(plan, sleepNight(23*60+60, 7*60-30, 480))
	if assert.NotNil(t, r.Alignment) {
		assert.InDelta(t, 50, *r.Alignment, 1e-9)
	}

	// deviations past the ceiling floor at zero
	r = SleepAlignment(plan, sleepNight(23*60+150, 7*60+150, 480))
	if assert.NotNil(t, r.Alignment) {
		assert.Equal(t, float64(0), *r.Alignment)
	}
}

func TestSleepAlignmentMissingObservations(t *testing.T) {
	plan := schema.SleepPlan{BedMinute: 23 * 60, WakeMinute: 7 * 60, PlannedSleepMins: 480}

	r := SleepAlignment(plan, schema.SleepLog{WakeMinute: intPtr(7 * 60)})
	assert.Nil(t, r.BedDeviationMin)
	assert.Nil(t, r.Alignment)
	assert.Nil(t, r.ShortfallMin)
	assert.Equal(t, SleepOnPlan, r.Classification)
}

func TestSleepClassificationPriority(t *testing.T) {
	plan := schema.SleepPlan{BedMinute: 23 * 60, WakeMinute: 7 * 60, PlannedSleepMins: 480}

	// overslept more than 30 and woke more than 30 late: spillover wins even
	// though bed deviation alone would read as drift
	r := SleepAlignment(plan, sleepNight(23*60+45, 7*60+60, 540))
	assert.Equal(t, SleepOversleepSpillover, r.Classification)

	// short night beats drift
	r = SleepAlignment(plan, sleepNight(23*60+45, 7*60, 420))
	assert.Equal(t, SleepPhysShortfall, r.Classification)

	// drift on bed time only, duration on plan
	r = SleepAlignment(plan, sleepNight(23*60+45, 7*60+45, 480))
	assert.Equal(t, SleepBehavioralDrift, r.Classification)

	// woke late but slept short: late wake without oversleep is not spillover
	r = SleepAlignment(plan, sleepNight(23*60+120, 7*60+45, 405))
	assert.Equal(t, SleepPhysShortfall, r.Classification)

	// exactly at every tolerance counts as on plan
	r = SleepAlignment(plan, sleepNight(23*60+30, 7*60-30, 450))
	assert.Equal(t, SleepOnPlan, r.Classification)
}
