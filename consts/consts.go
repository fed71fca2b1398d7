package consts

const (
	// SampleWindowSize is the number of trailing days of daily samples the
	// store hands to the baseline aggregator. 35 days leaves headroom for
	// slicing a full 28-day window plus the 7-day window off the same fetch.
	SampleWindowSize = 35

	ShortBaselineDays = 7
	LongBaselineDays  = 28

	// ProxyConfidenceWindowDays is the window used to count measured vs
	// imputed androgen-proxy sessions for confidence grading.
	ProxyConfidenceWindowDays = 7

	// AdaptationSessionWindowDays is the trailing window for the session
	// consistency check of the adaptation-stage classifier.
	AdaptationSessionWindowDays = 14
)
