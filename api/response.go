package api

import (
	"math"
	"time"

	"github.com/drakonoslav/bulk-coach-sub003/outcome"
	"github.com/drakonoslav/bulk-coach-sub003/schedule"
	"github.com/drakonoslav/bulk-coach-sub003/schema"
	"github.com/drakonoslav/bulk-coach-sub003/score"
)

// recoveryReasonEventLogged marks a date where the domain's activity actually
// happened, so a recovery score is meaningful once one is computed.
const recoveryReasonEventLogged = "event_logged"

// buildReadinessResponse assembles the external payload. The cardio and lift
// blocks carry only their domain outcome; anything internal stays inside a
// domainOutcome.debug path.
func buildReadinessResponse(dateISO string, readiness schema.ReadinessResult, rows *dayRows, date time.Time) schema.ReadinessResponse {
	sleepDecision := schedule.DeriveScheduledToday(schema.DomainSleep, dateISO, rows.plans[schema.DomainSleep])
	cardioDecision := schedule.DeriveScheduledToday(schema.DomainCardio, dateISO, rows.plans[schema.DomainCardio])
	liftDecision := schedule.DeriveScheduledToday(schema.DomainLift, dateISO, rows.plans[schema.DomainLift])

	sleepInternal, sleepBlock := computeSleepInternal(rows)
	cardioInternal := computeCardioInternal(rows)
	liftInternal := computeLiftInternal(rows, date)

	primaryDriver := ""
	if len(readiness.Drivers) > 0 {
		primaryDriver = readiness.Drivers[0]
	}

	var sleepTrending *float64
	if readiness.Baselines.SleepMinutes7d != nil && readiness.Baselines.SleepMinutes28d != nil {
		t := score.Round2(score.ChangeRate(*readiness.Baselines.SleepMinutes7d, *readiness.Baselines.SleepMinutes28d))
		sleepTrending = &t
	}

	sleepBlock.DomainOutcome = outcome.NormalizeSleep(dateISO, sleepDecision, sleepInternal)

	return schema.ReadinessResponse{
		Date:                     dateISO,
		ScheduledToday:           liftDecision.ScheduledToday,
		ScheduledTodayReason:     liftDecision.Reason,
		ScheduledTodayConfidence: liftDecision.Confidence,
		Readiness:                readiness,
		SleepBlock:               sleepBlock,
		SleepTrending:            sleepTrending,
		Adherence:                nil, // meal adherence is owned by another service
		PrimaryDriver:            primaryDriver,
		CardioBlock: schema.DomainResponseBlock{
			DomainOutcome: outcome.NormalizeCardio(dateISO, cardioDecision, cardioInternal),
		},
		LiftBlock: schema.DomainResponseBlock{
			DomainOutcome: outcome.NormalizeLift(dateISO, liftDecision, liftInternal),
		},
		Placeholders: map[string]interface{}{
			"mealPlan":       nil,
			"workoutSession": nil,
		},
	}
}

// computeSleepInternal runs the sleep classifiers over the night's log and
// the configured plan. With no plan or no log it degrades to nil fields.
func computeSleepInternal(rows *dayRows) (*schema.SleepInternal, schema.SleepResponseBlock) {
	internal := &schema.SleepInternal{Confidence: schema.InternalConfidenceLow}
	block := schema.SleepResponseBlock{DeviationClass: string(score.SleepOnPlan)}

	if rows.sleepLog == nil {
		return internal, block
	}
	block.SleepMinutes = rows.sleepLog.SleepMinutes

	if rows.sleepLog.SleepMinutes != nil {
		internal.RecoveryReason = recoveryReasonEventLogged
		internal.Confidence = schema.InternalConfidenceMedium
	}

	if rows.sleepPlan == nil {
		return internal, block
	}

	alignment := score.SleepAlignment(*rows.sleepPlan, *rows.sleepLog)
	internal.Alignment = alignment.Alignment
	internal.BedDeviationMin = alignment.BedDeviationMin
	internal.WakeDeviationMin = alignment.WakeDeviationMin
	internal.DeviationClass = string(alignment.Classification)
	if alignment.Alignment != nil {
		internal.Confidence = schema.InternalConfidenceHigh
	}

	block.BedDeviationMin = alignment.BedDeviationMin
	block.WakeDeviationMin = alignment.WakeDeviationMin
	block.DeviationClass = string(alignment.Classification)

	if rows.sleepLog.SleepMinutes != nil && rows.sleepPlan.PlannedSleepMins > 0 {
		adequacy := score.Clamp(100**rows.sleepLog.SleepMinutes/rows.sleepPlan.PlannedSleepMins, 0, 100)
		internal.Adequacy = &adequacy
	}

	if rows.sleepLog.SleepMinutes != nil && rows.sleepLog.BedMinute != nil && rows.sleepLog.WakeMinute != nil {
		inBed := float64(positiveSpan(*rows.sleepLog.BedMinute, *rows.sleepLog.WakeMinute))
		if inBed > 0 {
			efficiency := score.Clamp(100**rows.sleepLog.SleepMinutes/inBed, 0, 100)
			internal.Efficiency = &efficiency
		}
	}

	return internal, block
}

// positiveSpan is the forward minute distance from bed to wake, wrapping
// around midnight.
func positiveSpan(bedMinute, wakeMinute int) int {
	span := wakeMinute - bedMinute
	if span <= 0 {
		span += 24 * 60
	}
	return span
}

// computeCardioInternal scores the day's zone minutes.
func computeCardioInternal(rows *dayRows) *schema.CardioInternal {
	internal := &schema.CardioInternal{Confidence: schema.InternalConfidenceLow}
	if rows.zones == nil {
		return internal
	}

	internal.Zones = rows.zones
	internal.RecoveryReason = recoveryReasonEventLogged
	internal.Confidence = schema.InternalConfidenceHigh

	result := score.CardioContinuity(*rows.zones)
	internal.Continuity = result.Continuity
	internal.ContinuityReason = result.Reason
	if result.Continuity != nil {
		internal.Z1Grace = &result.Z1Grace
		internal.Z1Penalty = &result.Z1Penalty
		internal.OffBandWeighted = &result.OffBandWeighted

		total := result.TotalMinutes
		inBand := 100 * (rows.zones.Z2 + rows.zones.Z3) / total
		internal.Efficiency = &inBand
	}

	return internal
}

// computeLiftInternal classifies the training phase and scores weekly
// session adequacy against the plan's frequency rule.
func computeLiftInternal(rows *dayRows, date time.Time) *schema.LiftInternal {
	internal := &schema.LiftInternal{Confidence: schema.InternalConfidenceLow}

	result := score.ClassifyAdaptation(rows.repEntries, rows.baselines, date)
	internal.Stage = string(result.Stage)
	internal.StageReason = result.Reason
	internal.TrainingAgeDays = result.TrainingAgeDays
	internal.Velocity = result.Velocity
	internal.NoveltyScore = result.NoveltyScore

	if result.Sessions14d > 0 {
		internal.ConsistencySamples = &result.Sessions14d
		consistency := score.Clamp(100*float64(result.Sessions14d)/14, 0, 100)
		internal.Consistency = &consistency
		internal.RecoveryReason = recoveryReasonEventLogged
		internal.Confidence = schema.InternalConfidenceMedium
	}

	if plan := rows.plans[schema.DomainLift]; plan != nil && plan.FrequencyPerWeek != nil && *plan.FrequencyPerWeek > 0 {
		expected := float64(*plan.FrequencyPerWeek) * 2 // 14-day window
		adequacy := score.Clamp(100*float64(result.Sessions14d)/math.Max(expected, 1), 0, 100)
		internal.Adequacy = &adequacy
	}

	return internal
}
