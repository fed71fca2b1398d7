package schema

import (
	"fmt"
	"time"
)

// FieldViolation names one invalid field of a submitted sample.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult lists every violated field of an input. Validation never
// aborts on the first bad field.
type ValidationResult struct {
	Violations []FieldViolation `json:"violations"`
}

func (r ValidationResult) Valid() bool {
	return len(r.Violations) == 0
}

func (r *ValidationResult) add(field, format string, args ...interface{}) {
	r.Violations = append(r.Violations, FieldViolation{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

// ParseDate strictly parses an ISO calendar date.
func ParseDate(dateISO string) (time.Time, error) {
	return time.Parse("2006-01-02", dateISO)
}

// Physiological plausibility bounds for ingested samples. Values outside
// these ranges are sensor glitches, not data.
const (
	minHRV, maxHRV             = 1, 300
	minRestingHR, maxRestingHR = 20, 150
	maxSleepMinutes            = 960
	minProxy, maxProxy         = 0, 100
)

// ValidateDailySample range-checks one sample and reports every violated
// field. Nil fields are absent data, not violations.
func ValidateDailySample(s DailySample) ValidationResult {
	var result ValidationResult

	if _, err := ParseDate(s.Date); err != nil {
		result.add("date", "not a valid calendar date: %q", s.Date)
	}
	if s.HRV != nil && (*s.HRV < minHRV || *s.HRV > maxHRV) {
		result.add("hrv", "out of range [%d,%d]: %g", minHRV, maxHRV, *s.HRV)
	}
	if s.RestingHR != nil && (*s.RestingHR < minRestingHR || *s.RestingHR > maxRestingHR) {
		result.add("restingHR", "out of range [%d,%d]: %g", minRestingHR, maxRestingHR, *s.RestingHR)
	}
	if s.SleepMinutes != nil && (*s.SleepMinutes < 0 || *s.SleepMinutes > maxSleepMinutes) {
		result.add("sleepMinutes", "out of range [0,%d]: %g", maxSleepMinutes, *s.SleepMinutes)
	}
	if s.AndrogenProxy != nil && (*s.AndrogenProxy < minProxy || *s.AndrogenProxy > maxProxy) {
		result.add("androgenProxy", "out of range [%d,%d]: %g", minProxy, maxProxy, *s.AndrogenProxy)
	}

	return result
}
