package reconcile

import (
	"time"

	"github.com/carson-networks/prefin/internal/apperr"
)

const (
	// MonthLayout is the "YYYY-MM" key budgets are stored under.
	MonthLayout = "2006-01"
	// DateLayout is the calendar date format expenses are submitted with.
	DateLayout = "2006-01-02"
)

// ParseMonth validates a "YYYY-MM" month key and returns the first instant of
// that month in UTC.
func ParseMonth(month string) (time.Time, error) {
	if month == "" {
		return time.Time{}, apperr.Validation("month is required")
	}
	start, err := time.Parse(MonthLayout, month)
	if err != nil || len(month) != len(MonthLayout) {
		return time.Time{}, apperr.Validation("month must be formatted as YYYY-MM")
	}
	return start, nil
}

// MonthBounds returns the half-open interval [start, end) covered by month.
func MonthBounds(month string) (time.Time, time.Time, error) {
	start, err := ParseMonth(month)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 1, 0), nil
}

// MonthOf returns the "YYYY-MM" key for a date, i.e. its first seven characters.
func MonthOf(date time.Time) string {
	return date.Format(MonthLayout)
}

// ParseDate accepts a calendar date ("YYYY-MM-DD") or an RFC3339 timestamp and
// truncates it to a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, apperr.Validation("date is required")
	}
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, apperr.Validation("date must be formatted as YYYY-MM-DD")
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}
