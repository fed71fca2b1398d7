package schema

type Domain string

const (
	DomainSleep  Domain = "sleep"
	DomainCardio Domain = "cardio"
	DomainLift   Domain = "lift"
)

type ScheduleReason string

const (
	ReasonExplicitOverrideTrue  ScheduleReason = "explicit_override_true"
	ReasonExplicitOverrideFalse ScheduleReason = "explicit_override_false"
	ReasonDaysOfWeekMatch       ScheduleReason = "days_of_week_match"
	ReasonDaysOfWeekMiss        ScheduleReason = "days_of_week_miss"
	ReasonFrequencyRuleMatch    ScheduleReason = "frequency_rule_match"
	ReasonScheduleUnknown       ScheduleReason = "schedule_unknown"
	ReasonDateInvalid           ScheduleReason = "date_invalid"
)

type ScheduleConfidence string

const (
	ScheduleConfidenceHigh ScheduleConfidence = "high"
	ScheduleConfidenceLow  ScheduleConfidence = "low"
)

// WeeklyPlan is the declarative plan for one domain. DaysOfWeek uses 0=Sunday.
// Overrides are per-date explicit decisions and win over everything else.
type WeeklyPlan struct {
	DaysOfWeek       []int           `json:"daysOfWeek" bson:"days_of_week,omitempty"`
	FrequencyPerWeek *int            `json:"frequencyPerWeek" bson:"frequency_per_week,omitempty"`
	Overrides        map[string]bool `json:"overridesByDateISO" bson:"overrides_by_date,omitempty"`
}

// ScheduleDecision states whether a domain's activity was expected on a date.
// ScheduledToday is nil when the plan cannot support a boolean answer; the
// reason is always one of the fixed ScheduleReason values, never free text.
type ScheduleDecision struct {
	ScheduledToday *bool              `json:"scheduledToday"`
	Confidence     ScheduleConfidence `json:"confidence"`
	Reason         ScheduleReason     `json:"reason"`
}

// SleepPlan is the configured target night: bed and wake minutes after
// midnight local time, plus the planned sleep duration.
type SleepPlan struct {
	BedMinute        int     `json:"bedMinute" bson:"bed_minute"`
	WakeMinute       int     `json:"wakeMinute" bson:"wake_minute"`
	PlannedSleepMins float64 `json:"plannedSleepMins" bson:"planned_sleep_mins"`
}

// AccountSettings is the persisted settings document read through the narrow
// store.Settings interface and passed explicitly into the resolver and the
// sleep classifier.
type AccountSettings struct {
	AccountNumber     string                 `bson:"account_number"`
	Plans             map[Domain]*WeeklyPlan `bson:"plans,omitempty"`
	SleepPlan         *SleepPlan             `bson:"sleep_plan,omitempty"`
	MovementBaselines []MovementBaseline     `bson:"movement_baselines,omitempty"`
	LastUpdate        int64                  `bson:"last_update"`
}
