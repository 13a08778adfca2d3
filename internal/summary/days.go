package summary

import (
	"encoding/json"
	"time"
)

// DayTotal is the income and expense volume of a single calendar day.
type DayTotal struct {
	Date     time.Time
	Income   int64
	Expenses int64
}

// MarshalJSON renders the date as yyyy-MM-dd.
func (d DayTotal) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date     string `json:"date"`
		Income   int64  `json:"income"`
		Expenses int64  `json:"expenses"`
	}{
		Date:     d.Date.Format(DateLayout),
		Income:   d.Income,
		Expenses: d.Expenses,
	})
}

// FillMissingDays expands a sparse series into one entry per calendar day of
// [start, end], ascending. Records are matched by their UTC calendar date,
// not by timestamp or by the location the driver returned them in. Several
// records on the same day are added together and records outside the range
// are dropped. Days without a record are zero.
func FillMissingDays(records []DayTotal, start, end time.Time) []DayTotal {
	first, last := Day(start), Day(end)
	if first.After(last) {
		return []DayTotal{}
	}

	byDay := make(map[time.Time]DayTotal, len(records))
	for _, r := range records {
		key := Day(r.Date.UTC())
		acc := byDay[key]
		acc.Income += r.Income
		acc.Expenses += r.Expenses
		byDay[key] = acc
	}

	n := daysBetween(first, last) + 1
	out := make([]DayTotal, 0, n)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		day := byDay[d]
		day.Date = d
		out = append(out, day)
	}
	return out
}
