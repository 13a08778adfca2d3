// Package summary holds the pure building blocks of the dashboard summary:
// period resolution, period-over-period change, the category rollup and
// gap-filling of the daily series. Nothing here touches the store.
package summary

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar date format accepted in query strings and
// emitted in the daily series.
const DateLayout = "2006-01-02"

// DefaultWindowDays is how far back the default period reaches from today.
const DefaultWindowDays = 30

// MaxPeriodDays caps the length of a requested period, ends included.
const MaxPeriodDays = 3660

const secondsPerDay = 24 * 60 * 60

var (
	// ErrInvalidDate is returned when a from/to value is not yyyy-MM-dd.
	ErrInvalidDate = errors.New("date must use the yyyy-MM-dd format")
	// ErrInvalidRange is returned when from falls after to.
	ErrInvalidRange = errors.New("from must not be after to")
	// ErrRangeTooLong is returned when a period spans more than MaxPeriodDays.
	ErrRangeTooLong = fmt.Errorf("period must not exceed %d days", MaxPeriodDays)
)

// Period is an inclusive range of calendar days. Start and End are always
// UTC midnight.
type Period struct {
	Start time.Time
	End   time.Time
}

// ResolvePeriod turns optional yyyy-MM-dd strings into a Period. A missing
// end defaults to today and a missing start to DefaultWindowDays before today.
func ResolvePeriod(from, to string, today time.Time) (Period, error) {
	today = Day(today)
	p := Period{
		Start: today.AddDate(0, 0, -DefaultWindowDays),
		End:   today,
	}

	if from != "" {
		start, err := ParseDate(from)
		if err != nil {
			return Period{}, err
		}
		p.Start = start
	}
	if to != "" {
		end, err := ParseDate(to)
		if err != nil {
			return Period{}, err
		}
		p.End = end
	}

	if p.Start.After(p.End) {
		return Period{}, ErrInvalidRange
	}
	if p.Days() > MaxPeriodDays {
		return Period{}, ErrRangeTooLong
	}
	return p, nil
}

// ParseDate parses a yyyy-MM-dd string as a UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Day truncates t to midnight UTC of the calendar day t falls on in its own
// location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Days is the number of calendar days in the period, ends included.
func (p Period) Days() int {
	return daysBetween(p.Start, p.End) + 1
}

// daysBetween counts whole days from the calendar day of a to that of b. It
// works on Unix seconds so spans beyond time.Duration's range stay exact.
func daysBetween(a, b time.Time) int {
	return int((Day(b).Unix() - Day(a).Unix()) / secondsPerDay)
}

// Previous returns the window of identical length that ends the day before
// p starts.
func (p Period) Previous() Period {
	n := p.Days()
	return Period{
		Start: p.Start.AddDate(0, 0, -n),
		End:   p.End.AddDate(0, 0, -n),
	}
}
