package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drakonoslav/bulk-coach-sub003/schema"
)

func TestCardioContinuityInBandWithGrace(t *testing.T) {
	r := CardioContinuity(schema.ZoneMinutes{Z1: 10, Z2: 20, Z3: 10})

	assert.Equal(t, float64(40), r.TotalMinutes)
	assert.Equal(t, float64(4), r.Z1Grace)
	assert.Equal(t, float64(6), r.Z1Penalty)
	assert.Equal(t, float64(3), r.OffBandWeighted)
	if assert.NotNil(t, r.Continuity) {
		assert.InDelta(t, 92.5, *r.Continuity, 1e-9)
	}
	assert.Empty(t, r.Reason)
}

func TestCardioContinuityHighZonesCostMore(t *testing.T) {
	r := CardioContinuity(schema.ZoneMinutes{Z2: 20, Z3: 10, Z4: 5, Z5: 5})

	assert.Equal(t, float64(40), r.TotalMinutes)
	assert.Equal(t, float64(0), r.Z1Penalty)
	assert.InDelta(t, 12.5, r.OffBandWeighted, 1e-9)
	if assert.NotNil(t, r.Continuity) {
		assert.InDelta(t, 68.75, *r.Continuity, 1e-9)
	}
}

func TestCardioContinuityGraceClamp(t *testing.T) {
	// grace = round(0.10*total) clamped to [2,6]
	cases := []struct {
		total float64
		grace float64
	}{
		{10, 2},
		{20, 2},
		{35, 4},
		{60, 6},
		{100, 6},
	}
	for _, c := range cases {
		r := CardioContinuity(schema.ZoneMinutes{Z2: c.total})
		assert.Equalf(t, c.grace, r.Z1Grace, "total=%v", c.total)
	}
}

func TestCardioContinuityNoMinutes(t *testing.T) {
	for _, zones := range []schema.ZoneMinutes{{}, {Z1: 0, Z2: 0}} {
		r := CardioContinuity(zones)
		assert.Nil(t, r.Continuity)
		assert.Equal(t, ReasonNoTotalMinutes, r.Reason)
	}
}

func TestCardioContinuityFloorsAtZero(t *testing.T) {
	// all minutes above the band: offBand exceeds total, score clamps to 0
	r := CardioContinuity(schema.ZoneMinutes{Z4: 30, Z5: 30})
	if assert.NotNil(t, r.Continuity) {
		assert.Equal(t, float64(0), *r.Continuity)
	}
}

func TestCardioContinuityCeiling(t *testing.T) {
	r := CardioContinuity(schema.ZoneMinutes{Z1: 2, Z2: 40, Z3: 18})
	if assert.NotNil(t, r.Continuity) {
		assert.Equal(t, float64(100), *r.Continuity)
	}
}
