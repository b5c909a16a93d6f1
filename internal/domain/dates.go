package domain

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar-date format used for itinerary dates and
// trip date ranges.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO "YYYY-MM-DD" string into a UTC time.Time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrValidation, s)
	}
	return t, nil
}

// EnumerateDates returns every calendar date from start to end inclusive, in
// ascending order, as ISO strings. The walk uses real date arithmetic, so
// month and year boundaries are crossed correctly. Returns an error wrapping
// ErrValidation when either date does not parse or end is before start.
func EnumerateDates(start, end string) ([]string, error) {
	from, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	to, err := ParseDate(end)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end date %s is before start date %s", ErrValidation, end, start)
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates, nil
}
