package schema

const (
	// RecoveryReasonNoEvent means there was no expected session to recover
	// from; a recovery score must never be fabricated for it.
	RecoveryReasonNoEvent = "no_event"
)

// ScheduleBlock describes how well activity aligned with the plan and whether
// a recovery score is meaningful for the date. Its key set is part of the
// cross-domain structural contract.
type ScheduleBlock struct {
	Alignment          *float64           `json:"alignment"`
	Consistency        *float64           `json:"consistency"`
	Recovery           *float64           `json:"recovery"`
	RecoveryApplicable bool               `json:"recoveryApplicable"`
	Confidence         ScheduleConfidence `json:"confidence"`
	Reason             string             `json:"reason"`
	ConsistencySamples *int               `json:"consistencySamples,omitempty"`
}

// OutcomeBlock describes how well the activity itself was executed. Each
// denominator labels what its score was measured against and is nil exactly
// when the score is nil.
type OutcomeBlock struct {
	Adequacy              *float64 `json:"adequacy"`
	AdequacyDenominator   *string  `json:"adequacyDenominator"`
	Efficiency            *float64 `json:"efficiency"`
	EfficiencyDenominator *string  `json:"efficiencyDenominator"`
	Continuity            *float64 `json:"continuity"`
	ContinuityDenominator *string  `json:"continuityDenominator"`
}

// DomainOutcome is the canonical per-domain report. The Schedule and Outcome
// sub-objects carry identical key sets across sleep, cardio and lift; any
// internal detail lives only inside Debug.
type DomainOutcome struct {
	Domain         Domain                 `json:"domain"`
	Date           string                 `json:"dateISO"`
	ScheduledToday *bool                  `json:"scheduledToday"`
	Confidence     ScheduleConfidence     `json:"confidence"`
	Reason         ScheduleReason         `json:"reason"`
	Schedule       ScheduleBlock          `json:"schedule"`
	Outcome        OutcomeBlock           `json:"outcome"`
	Debug          map[string]interface{} `json:"debug,omitempty"`
}

// InternalConfidence is the tri-level confidence produced by the upstream
// domain computations, collapsed to the two-level scale on the way out.
type InternalConfidence string

const (
	InternalConfidenceHigh   InternalConfidence = "high"
	InternalConfidenceMedium InternalConfidence = "medium"
	InternalConfidenceLow    InternalConfidence = "low"
)

// SleepInternal is the sleep domain's raw computation bag. Every field is
// optional; the normalizer is total over it.
type SleepInternal struct {
	Alignment          *float64
	Consistency        *float64
	ConsistencySamples *int
	Recovery           *float64
	RecoveryApplicable *bool
	RecoveryReason     string
	Confidence         InternalConfidence
	Adequacy           *float64
	Efficiency         *float64
	Continuity         *float64
	BedDeviationMin    *int
	WakeDeviationMin   *int
	DeviationClass     string
	DriftPenalty       *float64
}

// CardioInternal is the cardio domain's raw computation bag.
type CardioInternal struct {
	Alignment          *float64
	Consistency        *float64
	ConsistencySamples *int
	Recovery           *float64
	RecoveryApplicable *bool
	RecoveryReason     string
	Confidence         InternalConfidence
	Adequacy           *float64
	Efficiency         *float64
	Continuity         *float64
	ContinuityReason   string
	Zones              *ZoneMinutes
	Z1Grace            *float64
	Z1Penalty          *float64
	OffBandWeighted    *float64
}

// LiftInternal is the lift domain's raw computation bag.
type LiftInternal struct {
	Alignment          *float64
	Consistency        *float64
	ConsistencySamples *int
	Recovery           *float64
	RecoveryApplicable *bool
	RecoveryReason     string
	Confidence         InternalConfidence
	Adequacy           *float64
	Efficiency         *float64
	Continuity         *float64
	Stage              string
	StageReason        string
	TrainingAgeDays    *int
	Velocity           *float64
	NoveltyScore       *float64
}
