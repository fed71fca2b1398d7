// Package outcome maps each domain's raw internal computation into the one
// canonical DomainOutcome schema. The defaulting rules live here as named
// policy functions so the "never fabricate recovery" invariant is enforced in
// exactly one place.
package outcome

import (
	"github.com/drakonoslav/bulk-coach-sub003/schema"
)

// ResolveRecoveryReason defaults an absent recovery reason to no_event: with
// no stated reason there was no expected session to recover from.
func ResolveRecoveryReason(reason string) string {
	if reason == "" {
		return schema.RecoveryReasonNoEvent
	}
	return reason
}

// ResolveRecoveryApplicable decides whether a recovery score is meaningful.
// An explicit upstream statement wins; otherwise recovery applies exactly
// when some event occurred. This is the guard against a fabricated
// recovery=100 on an empty day.
func ResolveRecoveryApplicable(reason string, explicit *bool) bool {
	if explicit != nil {
		return *explicit
	}
	return reason != schema.RecoveryReasonNoEvent
}

// CollapseConfidence folds the internal tri-level confidence down to the
// published two-level scale. Unknown values read as low, never high.
func CollapseConfidence(c schema.InternalConfidence) schema.ScheduleConfidence {
	if c == schema.InternalConfidenceHigh {
		return schema.ScheduleConfidenceHigh
	}
	return schema.ScheduleConfidenceLow
}

// pairDenominator returns the denominator label only when its score exists.
// A nil score must carry a nil denominator, never a stale one.
func pairDenominator(score *float64, label string) *string {
	if score == nil {
		return nil
	}
	return &label
}
