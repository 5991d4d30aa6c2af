package utils

import (
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// ParseTripDate accepts RFC3339 timestamps (with or without a trailing Z) as
// well as bare YYYY-MM-DD dates, which is what the web client sends.
func ParseTripDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(dateOnlyLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidInput
	}
	return t, nil
}

// TripDurationDays is inclusive of both endpoints: a same-day trip lasts 1 day.
func TripDurationDays(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, ErrInvalidDateRange
	}

	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	return int(endDay.Sub(startDay).Hours()/24) + 1, nil
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func UptimeSeconds(since time.Time) float64 {
	return time.Since(since).Seconds()
}
