package schema

// SleepResponseBlock carries the sleep-only display fields next to the
// canonical domain outcome. Only the sleep block carries extra fields; cardio
// and lift expose nothing but their domain outcome.
type SleepResponseBlock struct {
	SleepMinutes     *float64      `json:"sleepMinutes"`
	BedDeviationMin  *int          `json:"bedDeviationMin"`
	WakeDeviationMin *int          `json:"wakeDeviationMin"`
	DeviationClass   string        `json:"deviationClass"`
	DomainOutcome    DomainOutcome `json:"domainOutcome"`
}

// DomainResponseBlock is the cardio/lift block: the domain outcome and
// nothing else. Internal stability objects never appear at this level.
type DomainResponseBlock struct {
	DomainOutcome DomainOutcome `json:"domainOutcome"`
}

// ReadinessResponse is the external payload contract. The key set is fixed;
// legacy keys the mobile client still reads are parked under Placeholders.
type ReadinessResponse struct {
	Date                     string                 `json:"dateISO"`
	ScheduledToday           *bool                  `json:"scheduledToday"`
	ScheduledTodayReason     ScheduleReason         `json:"scheduledTodayReason"`
	ScheduledTodayConfidence ScheduleConfidence     `json:"scheduledTodayConfidence"`
	Readiness                ReadinessResult        `json:"readiness"`
	SleepBlock               SleepResponseBlock     `json:"sleepBlock"`
	SleepTrending            *float64               `json:"sleepTrending"`
	Adherence                *float64               `json:"adherence"`
	PrimaryDriver            string                 `json:"primaryDriver"`
	CardioBlock              DomainResponseBlock    `json:"cardioBlock"`
	LiftBlock                DomainResponseBlock    `json:"liftBlock"`
	Placeholders             map[string]interface{} `json:"placeholders"`
}
