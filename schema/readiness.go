package schema

type ReadinessTier string

const (
	TierGreen  ReadinessTier = "GREEN"
	TierYellow ReadinessTier = "YELLOW"
	TierBlue   ReadinessTier = "BLUE"
)

type ConfidenceGrade string

const (
	ConfidenceHigh ConfidenceGrade = "High"
	ConfidenceMed  ConfidenceGrade = "Med"
	ConfidenceLow  ConfidenceGrade = "Low"
	ConfidenceNone ConfidenceGrade = "None"
)

// ReadinessDeltas carries the four baseline deltas feeding the composite
// score. HRV, sleep and proxy deltas are fractional ((mean7−mean28)/mean28);
// the resting-HR delta is the absolute bpm difference.
type ReadinessDeltas struct {
	HRV           *float64 `json:"hrv" bson:"hrv,omitempty"`
	RestingHR     *float64 `json:"restingHR" bson:"resting_hr,omitempty"`
	SleepMinutes  *float64 `json:"sleepMinutes" bson:"sleep_minutes,omitempty"`
	AndrogenProxy *float64 `json:"androgenProxy" bson:"androgen_proxy,omitempty"`
}

// ReadinessBaselines carries the eight rolling means behind the deltas.
type ReadinessBaselines struct {
	HRV7d           *float64 `json:"hrv7d" bson:"hrv_7d,omitempty"`
	HRV28d          *float64 `json:"hrv28d" bson:"hrv_28d,omitempty"`
	RestingHR7d     *float64 `json:"restingHR7d" bson:"resting_hr_7d,omitempty"`
	RestingHR28d    *float64 `json:"restingHR28d" bson:"resting_hr_28d,omitempty"`
	SleepMinutes7d  *float64 `json:"sleepMinutes7d" bson:"sleep_minutes_7d,omitempty"`
	SleepMinutes28d *float64 `json:"sleepMinutes28d" bson:"sleep_minutes_28d,omitempty"`
	Proxy7d         *float64 `json:"proxy7d" bson:"proxy_7d,omitempty"`
	Proxy28d        *float64 `json:"proxy28d" bson:"proxy_28d,omitempty"`
}

// ReadinessResult is one date's readiness computation. It is persisted keyed
// by (account, date) and is recomputable idempotently for any date range.
type ReadinessResult struct {
	AccountNumber string             `json:"-" bson:"account_number"`
	Date          string             `json:"dateISO" bson:"date"`
	Score         int                `json:"score" bson:"score"`
	Tier          ReadinessTier      `json:"tier" bson:"tier"`
	Confidence    ConfidenceGrade    `json:"confidence" bson:"confidence"`
	CortisolFlag  bool               `json:"cortisolFlag" bson:"cortisol_flag"`
	Deltas        ReadinessDeltas    `json:"deltas" bson:"deltas"`
	Baselines     ReadinessBaselines `json:"baselines" bson:"baselines"`
	Drivers       []string           `json:"drivers" bson:"drivers"`
	TypeLean      float64            `json:"typeLean" bson:"type_lean"`
	ExerciseBias  float64            `json:"exerciseBias" bson:"exercise_bias"`
	LastUpdate    int64              `json:"lastUpdate" bson:"last_update"`
}
