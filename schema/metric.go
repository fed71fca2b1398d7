package schema

const (
	DailySampleCollection    = "dailySamples"
	ProxySessionCollection   = "proxySessions"
	ReadinessCollection      = "readinessHistory"
	SettingsCollection       = "settings"
	RepEntryCollection       = "repEntries"
	CardioSessionCollection  = "cardioSessions"
	SleepLogCollection       = "sleepLogs"
	SnapshotImportCollection = "snapshotImports"
)

// DailySample is one calendar day of optional physiological values. It is
// immutable once recorded for a date; the aggregator only reads it.
type DailySample struct {
	AccountNumber string   `json:"-" bson:"account_number"`
	Date          string   `json:"date" bson:"date"`
	HRV           *float64 `json:"hrv" bson:"hrv,omitempty"`
	RestingHR     *float64 `json:"restingHR" bson:"resting_hr,omitempty"`
	SleepMinutes  *float64 `json:"sleepMinutes" bson:"sleep_minutes,omitempty"`
	AndrogenProxy *float64 `json:"androgenProxy" bson:"androgen_proxy,omitempty"`
}

// ProxySession is one nightly androgen-proxy source record. Imputed sessions
// are backfilled estimates and do not count toward confidence grading.
type ProxySession struct {
	AccountNumber string  `json:"-" bson:"account_number"`
	Date          string  `json:"date" bson:"date"`
	Score         float64 `json:"score" bson:"score"`
	Imputed       bool    `json:"imputed" bson:"imputed"`
}

// RepEntry is one strength-exercise rep record for a day.
type RepEntry struct {
	AccountNumber string `json:"-" bson:"account_number"`
	Date          string `json:"date" bson:"date"`
	Movement      string `json:"movement" bson:"movement"`
	Reps          int    `json:"reps" bson:"reps"`
}

// MovementBaseline is the reference rep count a movement's progression
// velocity is measured against.
type MovementBaseline struct {
	Movement     string   `json:"movement" bson:"movement"`
	BaselineReps *float64 `json:"baselineReps" bson:"baseline_reps,omitempty"`
}

// ZoneMinutes is a day's cardio time split across the five heart-rate zones.
type ZoneMinutes struct {
	Z1 float64 `json:"z1" bson:"z1"`
	Z2 float64 `json:"z2" bson:"z2"`
	Z3 float64 `json:"z3" bson:"z3"`
	Z4 float64 `json:"z4" bson:"z4"`
	Z5 float64 `json:"z5" bson:"z5"`
}

// Total returns the summed minutes across all five zones.
func (z ZoneMinutes) Total() float64 {
	return z.Z1 + z.Z2 + z.Z3 + z.Z4 + z.Z5
}

// SleepLog is one observed night keyed by the wake date. Bed and wake times
// are minutes after midnight in the account's local time.
type SleepLog struct {
	AccountNumber string   `json:"-" bson:"account_number"`
	Date          string   `json:"date" bson:"date"`
	BedMinute     *int     `json:"bedMinute" bson:"bed_minute,omitempty"`
	WakeMinute    *int     `json:"wakeMinute" bson:"wake_minute,omitempty"`
	SleepMinutes  *float64 `json:"sleepMinutes" bson:"sleep_minutes,omitempty"`
}
