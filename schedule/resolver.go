// Package schedule decides whether a domain's activity was expected on a
// date, from a declarative weekly plan. It never asserts a schedule fact it
// cannot support: anything the plan does not answer explicitly resolves to an
// unknown decision with low confidence.
package schedule

import (
	"github.com/drakonoslav/bulk-coach-sub003/schema"
)

// DeriveScheduledToday resolves a domain's plan for one date. Resolution
// order, first match wins:
//  1. explicit per-date override (high confidence)
//  2. day-of-week list membership (high confidence, match or miss)
//  3. frequency-per-week rule — deliberately not resolved to a boolean
//  4. everything else: schedule unknown
func DeriveScheduledToday(domain schema.Domain, dateISO string, plan *schema.WeeklyPlan) schema.ScheduleDecision {
	date, err := schema.ParseDate(dateISO)
	if err != nil {
		return schema.ScheduleDecision{
			ScheduledToday: nil,
			Confidence:     schema.ScheduleConfidenceLow,
			Reason:         schema.ReasonDateInvalid,
		}
	}

	if plan == nil {
		return unknown()
	}

	if scheduled, ok := plan.Overrides[dateISO]; ok {
		reason := schema.ReasonExplicitOverrideTrue
		if !scheduled {
			reason = schema.ReasonExplicitOverrideFalse
		}
		return schema.ScheduleDecision{
			ScheduledToday: &scheduled,
			Confidence:     schema.ScheduleConfidenceHigh,
			Reason:         reason,
		}
	}

	if len(plan.DaysOfWeek) > 0 {
		weekday := int(date.Weekday())
		scheduled := false
		for _, d := range plan.DaysOfWeek {
			if d == weekday {
				scheduled = true
				break
			}
		}
		reason := schema.ReasonDaysOfWeekMiss
		if scheduled {
			reason = schema.ReasonDaysOfWeekMatch
		}
		return schema.ScheduleDecision{
			ScheduledToday: &scheduled,
			Confidence:     schema.ScheduleConfidenceHigh,
			Reason:         reason,
		}
	}

	// A frequency rule says how often, not which day; inventing a boolean
	// from it would fabricate a schedule fact.
	if plan.FrequencyPerWeek != nil && *plan.FrequencyPerWeek > 0 {
		return schema.ScheduleDecision{
			ScheduledToday: nil,
			Confidence:     schema.ScheduleConfidenceLow,
			Reason:         schema.ReasonFrequencyRuleMatch,
		}
	}

	return unknown()
}

func unknown() schema.ScheduleDecision {
	return schema.ScheduleDecision{
		ScheduledToday: nil,
		Confidence:     schema.ScheduleConfidenceLow,
		Reason:         schema.ReasonScheduleUnknown,
	}
}
