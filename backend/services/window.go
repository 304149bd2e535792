package services

import (
	"errors"
	"time"
)

var (
	ErrFutureDate    = errors.New("cannot report steps for the future")
	ErrOutsidePeriod = errors.New("can only report steps within the reporting period")
)

// Policy is the fixed calendar-month interval during which step submissions
// are accepted, and the clamping rules for week navigation inside it.
type Policy struct {
	Start time.Time
	End   time.Time
}

// ReportingPeriod builds the policy for the given month, first day through
// last day inclusive.
func ReportingPeriod(year int, month time.Month) Policy {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Policy{Start: start, End: start.AddDate(0, 1, -1)}
}

// ValidateReportDate checks the rules in order: future dates first, then the
// reporting period bounds. Step counts themselves are not range-checked.
func (p Policy) ValidateReportDate(date, today time.Time) error {
	if date.After(today) {
		return ErrFutureDate
	}
	if date.Before(p.Start) || date.After(p.End) {
		return ErrOutsidePeriod
	}
	return nil
}

// ResolveWeekStart picks the dashboard's week window. With no requested start
// it defaults to the Monday of today's week; either way the start is clamped
// into the period, and the end never passes the period end.
func (p Policy) ResolveWeekStart(requested *time.Time, today time.Time) (time.Time, time.Time) {
	var start time.Time
	if requested != nil {
		start = *requested
	} else {
		start = mondayOf(today)
	}

	if start.Before(p.Start) {
		start = p.Start
	} else if start.After(p.End) {
		start = p.End
	}

	end := start.AddDate(0, 0, 6)
	if end.After(p.End) {
		end = p.End
	}
	return start, end
}

func mondayOf(day time.Time) time.Time {
	weekday := int(day.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}
