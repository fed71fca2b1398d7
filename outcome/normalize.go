package outcome

import (
	"github.com/drakonoslav/bulk-coach-sub003/schema"
)

// Outcome denominator labels, fixed per domain.
const (
	sleepAdequacyDenom   = "planned_sleep_minutes"
	sleepEfficiencyDenom = "time_in_bed_minutes"
	sleepContinuityDenom = "awakening_count"

	cardioAdequacyDenom   = "planned_cardio_minutes"
	cardioEfficiencyDenom = "in_band_minutes"
	cardioContinuityDenom = "total_zone_minutes"

	liftAdequacyDenom   = "planned_set_budget"
	liftEfficiencyDenom = "working_set_minutes"
	liftContinuityDenom = "session_streak_days"
)

// stability is the domain-independent slice of an internal bag that feeds the
// schedule block. Extracting it keeps the three mappers structurally
// identical by construction.
type stability struct {
	alignment          *float64
	consistency        *float64
	consistencySamples *int
	recovery           *float64
	recoveryApplicable *bool
	recoveryReason     string
	confidence         schema.InternalConfidence
}

// buildScheduleBlock applies the named policies to one domain's stability
// internals. When recovery is not applicable the recovery score is dropped
// and the reason is pinned to no_event, whatever upstream supplied.
func buildScheduleBlock(s stability) schema.ScheduleBlock {
	reason := ResolveRecoveryReason(s.recoveryReason)
	applicable := ResolveRecoveryApplicable(reason, s.recoveryApplicable)

	recovery := s.recovery
	if !applicable {
		recovery = nil
		reason = schema.RecoveryReasonNoEvent
	}

	return schema.ScheduleBlock{
		Alignment:          s.alignment,
		Consistency:        s.consistency,
		Recovery:           recovery,
		RecoveryApplicable: applicable,
		Confidence:         CollapseConfidence(s.confidence),
		Reason:             reason,
		ConsistencySamples: s.consistencySamples,
	}
}

func buildOutcomeBlock(adequacy, efficiency, continuity *float64, adequacyDenom, efficiencyDenom, continuityDenom string) schema.OutcomeBlock {
	return schema.OutcomeBlock{
		Adequacy:              adequacy,
		AdequacyDenominator:   pairDenominator(adequacy, adequacyDenom),
		Efficiency:            efficiency,
		EfficiencyDenominator: pairDenominator(efficiency, efficiencyDenom),
		Continuity:            continuity,
		ContinuityDenominator: pairDenominator(continuity, continuityDenom),
	}
}

// NormalizeSleep maps the sleep domain's internals into the canonical shape.
// It is total: a nil bag yields a well-formed, mostly-null outcome.
func NormalizeSleep(dateISO string, decision schema.ScheduleDecision, in *schema.SleepInternal) schema.DomainOutcome {
	if in == nil {
		in = &schema.SleepInternal{}
	}

	out := schema.DomainOutcome{
		Domain:         schema.DomainSleep,
		Date:           dateISO,
		ScheduledToday: decision.ScheduledToday,
		Confidence:     decision.Confidence,
		Reason:         decision.Reason,
		Schedule: buildScheduleBlock(stability{
			alignment:          in.Alignment,
			consistency:        in.Consistency,
			consistencySamples: in.ConsistencySamples,
			recovery:           in.Recovery,
			recoveryApplicable: in.RecoveryApplicable,
			recoveryReason:     in.RecoveryReason,
			confidence:         in.Confidence,
		}),
		Outcome: buildOutcomeBlock(in.Adequacy, in.Efficiency, in.Continuity,
			sleepAdequacyDenom, sleepEfficiencyDenom, sleepContinuityDenom),
	}

	debug := map[string]interface{}{}
	if in.BedDeviationMin != nil {
		debug["bedDeviationMin"] = *in.BedDeviationMin
	}
	if in.WakeDeviationMin != nil {
		debug["wakeDeviationMin"] = *in.WakeDeviationMin
	}
	if in.DeviationClass != "" {
		debug["deviationClass"] = in.DeviationClass
	}
	if in.DriftPenalty != nil {
		debug["driftPenalty"] = *in.DriftPenalty
	}
	if len(debug) > 0 {
		out.Debug = debug
	}
	return out
}

// NormalizeCardio maps the cardio domain's internals into the canonical shape.
func NormalizeCardio(dateISO string, decision schema.ScheduleDecision, in *schema.CardioInternal) schema.DomainOutcome {
	if in == nil {
		in = &schema.CardioInternal{}
	}

	out := schema.DomainOutcome{
		Domain:         schema.DomainCardio,
		Date:           dateISO,
		ScheduledToday: decision.ScheduledToday,
		Confidence:     decision.Confidence,
		Reason:         decision.Reason,
		Schedule: buildScheduleBlock(stability{
			alignment:          in.Alignment,
			consistency:        in.Consistency,
			consistencySamples: in.ConsistencySamples,
			recovery:           in.Recovery,
			recoveryApplicable: in.RecoveryApplicable,
			recoveryReason:     in.RecoveryReason,
			confidence:         in.Confidence,
		}),
		Outcome: buildOutcomeBlock(in.Adequacy, in.Efficiency, in.Continuity,
			cardioAdequacyDenom, cardioEfficiencyDenom, cardioContinuityDenom),
	}

	debug := map[string]interface{}{}
	if in.ContinuityReason != "" {
		debug["continuityReason"] = in.ContinuityReason
	}
	if in.Zones != nil {
		debug["zoneMinutes"] = *in.Zones
	}
	if in.Z1Grace != nil {
		debug["z1Grace"] = *in.Z1Grace
	}
	if in.Z1Penalty != nil {
		debug["z1Penalty"] = *in.Z1Penalty
	}
	if in.OffBandWeighted != nil {
		debug["offBandWeighted"] = *in.OffBandWeighted
	}
	if len(debug) > 0 {
		out.Debug = debug
	}
	return out
}

// NormalizeLift maps the lift domain's internals into the canonical shape.
func NormalizeLift(dateISO string, decision schema.ScheduleDecision, in *schema.LiftInternal) schema.DomainOutcome {
	if in == nil {
		in = &schema.LiftInternal{}
	}

	out := schema.DomainOutcome{
		Domain:         schema.DomainLift,
		Date:           dateISO,
		ScheduledToday: decision.ScheduledToday,
		Confidence:     decision.Confidence,
		Reason:         decision.Reason,
		Schedule: buildScheduleBlock(stability{
			alignment:          in.Alignment,
			consistency:        in.Consistency,
			consistencySamples: in.ConsistencySamples,
			recovery:           in.Recovery,
			recoveryApplicable: in.RecoveryApplicable,
			recoveryReason:     in.RecoveryReason,
			confidence:         in.Confidence,
		}),
		Outcome: buildOutcomeBlock(in.Adequacy, in.Efficiency, in.Continuity,
			liftAdequacyDenom, liftEfficiencyDenom, liftContinuityDenom),
	}

	debug := map[string]interface{}{}
	if in.Stage != "" {
		debug["stage"] = in.Stage
	}
	if in.StageReason != "" {
		debug["stageReason"] = in.StageReason
	}
	if in.TrainingAgeDays != nil {
		debug["trainingAgeDays"] = *in.TrainingAgeDays
	}
	if in.Velocity != nil {
		debug["velocity"] = *in.Velocity
	}
	if in.NoveltyScore != nil {
		debug["noveltyScore"] = *in.NoveltyScore
	}
	if len(debug) > 0 {
		out.Debug = debug
	}
	return out
}
