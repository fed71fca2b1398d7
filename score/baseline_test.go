package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustDate(t *testing.T, iso string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func constantWindow(target time.Time, days int, value float64) map[string]*float64 {
	samples := map[string]*float64{}
	for i := 0; i < days; i++ {
		v := value
		samples[target.AddDate(0, 0, -i).Format("2006-01-02")] = &v
	}
	return samples
}

func TestRollingBaselineEmptyWindow(t *testing.T) {
	target := mustDate(t, "2026-02-25")

	pair := RollingBaseline(map[string]*float64{}, target, DeltaRatio)
	assert.Nil(t, pair.Mean7d)
	assert.Nil(t, pair.Mean28d)
	assert.Nil(t, pair.Delta)
	assert.Nil(t, pair.FractionalDelta())
}

func TestRollingBaselineFlatSeries(t *testing.T) {
	target := mustDate(t, "2026-02-25")
	samples := constantWindow(target, 28, 50)

	pair := RollingBaseline(samples, target, DeltaRatio)
	assert.Equal(t, 50.0, *pair.Mean7d)
	assert.Equal(t, 50.0, *pair.Mean28d)
	assert.Equal(t, 0.0, *pair.Delta)
}

func TestRollingBaselineRatioDelta(t *testing.T) {
	target := mustDate(t, "2026-02-25")

	// last 7 days at 55, the 21 before at 50
	samples := map[string]*float64{}
	for i := 0; i < 28; i++ {
		v := 50.0
		if i < 7 {
			v = 55.0
		}
		value := v
		samples[target.AddDate(0, 0, -i).Format("2006-01-02")] = &value
	}

	pair := RollingBaseline(samples, target, DeltaRatio)
	assert.Equal(t, 55.0, *pair.Mean7d)
	assert.Equal(t, 51.25, *pair.Mean28d)
	assert.InDelta(t, 3.75/51.25, *pair.Delta, 1e-12)
}

func TestRollingBaselineAbsoluteDelta(t *testing.T) {
	target := mustDate(t, "2026-02-25")

	samples := map[string]*float64{}
	for i := 0; i < 28; i++ {
		v := 60.0
		if i < 7 {
			v = 63.0
		}
		value := v
		samples[target.AddDate(0, 0, -i).Format("2006-01-02")] = &value
	}

	pair := RollingBaseline(samples, target, DeltaAbsolute)
	assert.InDelta(t, 0.75, *pair.Delta, 1e-12)
	assert.Equal(t, 63.0, *pair.Mean7d)
	assert.Equal(t, 62.25, *pair.Mean28d)

	// fractional form still derives from the means
	assert.InDelta(t, 0.75/62.25, *pair.FractionalDelta(), 1e-12)
}

func TestRollingBaselineNearZeroBaseline(t *testing.T) {
	target := mustDate(t, "2026-02-25")
	samples := constantWindow(target, 28, 0)

	pair := RollingBaseline(samples, target, DeltaRatio)
	assert.Equal(t, 0.0, *pair.Mean7d)
	assert.Equal(t, 0.0, *pair.Mean28d)
	assert.Nil(t, pair.Delta)
	assert.Nil(t, pair.FractionalDelta())
}

func TestRollingBaselineSkipsNilSamples(t *testing.T) {
	target := mustDate(t, "2026-02-25")

	v := 80.0
	samples := map[string]*float64{}
	samples[target.Format("2006-01-02")] = &v
	samples[target.AddDate(0, 0, -1).Format("2006-01-02")] = nil

	pair := RollingBaseline(samples, target, DeltaRatio)
	assert.Equal(t, 80.0, *pair.Mean7d)
	assert.Equal(t, 80.0, *pair.Mean28d)
	assert.Equal(t, 0.0, *pair.Delta)
}

func TestRollingBaselineOneSidedWindow(t *testing.T) {
	target := mustDate(t, "2026-02-25")

	// only days 10..20 back carry values: 7d window empty, 28d window not
	samples := map[string]*float64{}
	for i := 10; i <= 20; i++ {
		v := 42.0
		samples[target.AddDate(0, 0, -i).Format("2006-01-02")] = &v
	}

	pair := RollingBaseline(samples, target, DeltaRatio)
	assert.Nil(t, pair.Mean7d)
	assert.Equal(t, 42.0, *pair.Mean28d)
	// the delta must stay unknown, not default to zero change
	assert.Nil(t, pair.Delta)
}
