package score

import (
	"math"
	"sort"
	"time"

	"github.com/drakonoslav/bulk-coach-sub003/consts"
	"github.com/drakonoslav/bulk-coach-sub003/schema"
)

type AdaptationStage string

const (
	StageNoveltyWindow       AdaptationStage = "NOVELTY_WINDOW"
	StageStandardHypertrophy AdaptationStage = "STANDARD_HYPERTROPHY"
	StagePlateauRisk         AdaptationStage = "PLATEAU_RISK"
	StageInsufficientData    AdaptationStage = "INSUFFICIENT_DATA"
)

// ReasonVelocityUnavailable marks insufficiency caused by missing movement
// baselines rather than a thin session history.
const ReasonVelocityUnavailable = "velocity unavailable"

const (
	noveltyWindowDays  = 90
	minSessions14d     = 2
	consistentSessions = 4

	// reps-per-baseline slope per day
	highVelocity     = 0.01
	nearZeroVelocity = 0.005
)

// AdaptationResult is the training-phase classification with its inputs
// surfaced for debugging.
type AdaptationResult struct {
	Stage           AdaptationStage
	Reason          string
	TrainingAgeDays *int
	Sessions14d     int
	Consistent      bool
	Velocity        *float64
	NoveltyScore    *float64
}

// ClassifyAdaptation determines the training phase from a rep history and
// movement baselines. It needs at least two strength sessions in the trailing
// 14 days and a resolvable progression velocity; anything less is an explicit
// INSUFFICIENT_DATA result, regardless of how long the history is.
func ClassifyAdaptation(entries []schema.RepEntry, baselines []schema.MovementBaseline, target time.Time) AdaptationResult {
	sessions := sessionDates(entries)
	if len(sessions) == 0 {
		return AdaptationResult{
			Stage:  StageInsufficientData,
			Reason: "no strength sessions recorded",
		}
	}

	first, err := schema.ParseDate(sessions[0])
	if err != nil {
		return AdaptationResult{
			Stage:  StageInsufficientData,
			Reason: "unparseable session dates",
		}
	}
	age := int(target.Sub(first).Hours() / 24)
	if age < 0 {
		age = 0
	}

	recent := 0
	cutoff := target.AddDate(0, 0, -(consts.AdaptationSessionWindowDays - 1)).Format("2006-01-02")
	targetISO := target.Format("2006-01-02")
	for _, d := range sessions {
		if d >= cutoff && d <= targetISO {
			recent++
		}
	}

	result := AdaptationResult{
		TrainingAgeDays: &age,
		Sessions14d:     recent,
		Consistent:      recent >= consistentSessions,
	}

	if recent < minSessions14d {
		result.Stage = StageInsufficientData
		result.Reason = "fewer than 2 strength sessions in the trailing 14 days"
		return result
	}

	velocity := fitVelocity(entries, baselines, target)
	if velocity == nil {
		result.Stage = StageInsufficientData
		result.Reason = ReasonVelocityUnavailable + ": no resolvable movement baselines"
		return result
	}
	result.Velocity = velocity

	novelty := Clamp(1-float64(age)/noveltyWindowDays, 0, 1)
	result.NoveltyScore = &novelty

	switch {
	case age <= noveltyWindowDays && result.Consistent && *velocity >= highVelocity && novelty > 0:
		result.Stage = StageNoveltyWindow
	case age > noveltyWindowDays && result.Consistent && math.Abs(*velocity) < nearZeroVelocity:
		result.Stage = StagePlateauRisk
	default:
		result.Stage = StageStandardHypertrophy
	}
	return result
}

// sessionDates returns the sorted distinct dates that hold at least one rep.
func sessionDates(entries []schema.RepEntry) []string {
	seen := map[string]struct{}{}
	dates := []string{}
	for _, e := range entries {
		if e.Reps <= 0 {
			continue
		}
		if _, ok := seen[e.Date]; !ok {
			seen[e.Date] = struct{}{}
			dates = append(dates, e.Date)
		}
	}
	sort.Strings(dates)
	return dates
}

// fitVelocity fits a least-squares slope of baseline-relative reps per day
// for each movement with a usable baseline, then averages the slopes. It
// returns nil when no movement resolves: no baselines, zero baselines, or
// fewer than two dated points per movement.
func fitVelocity(entries []schema.RepEntry, baselines []schema.MovementBaseline, target time.Time) *float64 {
	baseline := map[string]float64{}
	for _, b := range baselines {
		if b.BaselineReps != nil && *b.BaselineReps > 0 {
			baseline[b.Movement] = *b.BaselineReps
		}
	}
	if len(baseline) == 0 {
		return nil
	}

	type point struct{ x, y float64 }
	byMovement := map[string][]point{}
	for _, e := range entries {
		base, ok := baseline[e.Movement]
		if !ok || e.Reps <= 0 {
			continue
		}
		day, err := schema.ParseDate(e.Date)
		if err != nil {
			continue
		}
		x := day.Sub(target).Hours() / 24
		byMovement[e.Movement] = append(byMovement[e.Movement], point{x: x, y: float64(e.Reps) / base})
	}

	slopes := []float64{}
	for _, points := range byMovement {
		if len(points) < 2 {
			continue
		}
		var sumX, sumY, sumXX, sumXY float64
		n := float64(len(points))
		for _, p := range points {
			sumX += p.x
			sumY += p.y
			sumXX += p.x * p.x
			sumXY += p.x * p.y
		}
		denom := n*sumXX - sumX*sumX
		if denom == 0 {
			continue
		}
		slopes = append(slopes, (n*sumXY-sumX*sumY)/denom)
	}
	if len(slopes) == 0 {
		return nil
	}

	sum := float64(0)
	for _, s := range slopes {
		sum += s
	}
	mean := sum / float64(len(slopes))
	return &mean
}
