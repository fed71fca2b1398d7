package score

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/drakonoslav/bulk-coach-sub003/schema"
)

var adaptationTarget = time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)

func repEntry(date, movement string, reps int) schema.RepEntry {
	return schema.RepEntry{Date: date, Movement: movement, Reps: reps}
}

func squatBaseline(reps float64) []schema.MovementBaseline {
	return []schema.MovementBaseline{{Movement: "squat", BaselineReps: &reps}}
}

func TestClassifyAdaptationNoSessions(t *testing.T) {
	r := ClassifyAdaptation(nil, squatBaseline(10), adaptationTarget)
	assert.Equal(t, StageInsufficientData, r.Stage)
	assert.Nil(t, r.TrainingAgeDays)

	// zero-rep entries do not count as sessions
	r = ClassifyAdaptation([]schema.RepEntry{repEntry("2026-02-20", "squat", 0)}, squatBaseline(10), adaptationTarget)
	assert.Equal(t, StageInsufficientData, r.Stage)
}

func TestClassifyAdaptationThinRecentHistory(t *testing.T) {
	entries := []schema.RepEntry{
		repEntry("2025-11-01", "squat", 10),
		repEntry("2025-11-05", "squat", 10),
		repEntry("2026-02-20", "squat", 12),
	}
	r := ClassifyAdaptation(entries, squatBaseline(10), adaptationTarget)
	assert.Equal(t, StageInsufficientData, r.Stage)
	assert.Equal(t, 1, r.Sessions14d)
	assert.Nil(t, r.Velocity)
}

func TestClassifyAdaptationVelocityUnavailable(t *testing.T) {
	entries := []schema.RepEntry{
		repEntry("2026-02-16", "squat", 12),
		repEntry("2026-02-20", "squat", 13),
	}
	r := ClassifyAdaptation(entries, nil, adaptationTarget)
	assert.Equal(t, StageInsufficientData, r.Stage)
	assert.True(t, strings.Contains(r.Reason, ReasonVelocityUnavailable))

	// a baseline of zero reps is as unusable as no baseline at all
	zero := float64(0)
	r = ClassifyAdaptation(entries, []schema.MovementBaseline{{Movement: "squat", BaselineReps: &zero}}, adaptationTarget)
	assert.Equal(t, StageInsufficientData, r.Stage)
	assert.True(t, strings.Contains(r.Reason, ReasonVelocityUnavailable))
}

func TestClassifyAdaptationNoveltyWindow(t *testing.T) {
	entries := []schema.RepEntry{
		repEntry("2026-01-20", "squat", 10),
		repEntry("2026-02-12", "squat", 12),
		repEntry("2026-02-16", "squat", 13),
		repEntry("2026-02-20", "squat", 14),
		repEntry("2026-02-24", "squat", 15),
	}
	r := ClassifyAdaptation(entries, squatBaseline(10), adaptationTarget)

	assert.Equal(t, StageNoveltyWindow, r.Stage)
	if assert.NotNil(t, r.TrainingAgeDays) {
		assert.Equal(t, 36, *r.TrainingAgeDays)
	}
	assert.Equal(t, 4, r.Sessions14d)
	assert.True(t, r.Consistent)
	if assert.NotNil(t, r.Velocity) {
		assert.InDelta(t, 50.6/3764, *r.Velocity, 1e-9)
	}
	if assert.NotNil(t, r.NoveltyScore) {
		assert.InDelta(t, 0.6, *r.NoveltyScore, 1e-9)
	}
}

func TestClassifyAdaptationPlateauRisk(t *testing.T) {
	entries := []schema.RepEntry{
		repEntry("2025-10-01", "squat", 10),
		repEntry("2026-02-12", "squat", 10),
		repEntry("2026-02-16", "squat", 10),
		repEntry("2026-02-20", "squat", 10),
		repEntry("2026-02-24", "squat", 10),
	}
	r := ClassifyAdaptation(entries, squatBaseline(10), adaptationTarget)

	assert.Equal(t, StagePlateauRisk, r.Stage)
	if assert.NotNil(t, r.TrainingAgeDays) {
		assert.Equal(t, 147, *r.TrainingAgeDays)
	}
	assert.True(t, r.Consistent)
	if assert.NotNil(t, r.Velocity) {
		assert.InDelta(t, 0, *r.Velocity, 1e-9)
	}
}

func TestClassifyAdaptationStandardHypertrophy(t *testing.T) {
	// three recent sessions: enough to classify, not enough to be consistent,
	// so a hot velocity still lands in the standard stage
	entries := []schema.RepEntry{
		repEntry("2026-02-16", "squat", 10),
		repEntry("2026-02-20", "squat", 12),
		repEntry("2026-02-24", "squat", 14),
	}
	r := ClassifyAdaptation(entries, squatBaseline(10), adaptationTarget)

	assert.Equal(t, StageStandardHypertrophy, r.Stage)
	assert.Equal(t, 3, r.Sessions14d)
	assert.False(t, r.Consistent)
}

func TestClassifyAdaptationVelocityAveragesMovements(t *testing.T) {
	squat := float64(10)
	bench := float64(8)
	baselines := []schema.MovementBaseline{
		{Movement: "squat", BaselineReps: &squat},
		{Movement: "bench", BaselineReps: &bench},
	}
	// squat progresses, bench is flat; the mean slope is half the squat slope
	entries := []schema.RepEntry{
		repEntry("2026-02-15", "squat", 10),
		repEntry("2026-02-25", "squat", 12),
		repEntry("2026-02-15", "bench", 8),
		repEntry("2026-02-25", "bench", 8),
	}
	r := ClassifyAdaptation(entries, baselines, adaptationTarget)

	if assert.NotNil(t, r.Velocity) {
		assert.InDelta(t, 0.01, *r.Velocity, 1e-9)
	}
}
