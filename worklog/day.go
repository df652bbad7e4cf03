package worklog

import (
	"time"
)

// =============================================================================
// DAY - Calendar-date abstraction (this system has no time-of-day semantics)
// =============================================================================

// Day is a calendar date with no time-of-day or timezone component.
// The zero Day is "no date" and is skipped by the aggregation functions.
type Day struct {
	t time.Time
}

const dayFormat = "2006-01-02"

// Constructors
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDay parses an ISO "YYYY-MM-DD" string. The zero Day and an error
// are returned for anything unparsable.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayFormat, s)
	if err != nil {
		return Day{}, err
	}
	return Day{t: t.UTC()}, nil
}

func Today() Day {
	now := time.Now()
	return NewDay(now.Year(), now.Month(), now.Day())
}

// Comparison
func (d Day) Before(other Day) bool { return d.t.Before(other.t) }
func (d Day) After(other Day) bool  { return d.t.After(other.t) }
func (d Day) Equal(other Day) bool  { return d.t.Equal(other.t) }
func (d Day) IsZero() bool          { return d.t.IsZero() }

// Arithmetic
func (d Day) AddDays(n int) Day { return Day{t: d.t.AddDate(0, 0, n)} }

// Properties
func (d Day) Year() int         { return d.t.Year() }
func (d Day) Month() time.Month { return d.t.Month() }
func (d Day) Time() time.Time   { return d.t }

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dayFormat)
}

// MonthKey returns the "YYYY-MM" bucket key for this day.
func (d Day) MonthKey() string { return d.t.Format("2006-01") }

// DaysBetween returns the number of whole calendar days from one day to
// another. Negative when to precedes from.
func DaysBetween(from, to Day) int {
	return int(to.t.Sub(from.t).Hours() / 24)
}

// =============================================================================
// PERIOD - Time window for aggregation
// =============================================================================

// Period is an inclusive calendar window. A zero bound leaves that side
// open, so the zero Period matches every day (all time).
type Period struct {
	Start Day
	End   Day
}

// AllTime returns the unbounded period.
func AllTime() Period { return Period{} }

// MonthOf returns the period covering the calendar month containing d.
func MonthOf(d Day) Period {
	start := NewDay(d.Year(), d.Month(), 1)
	return Period{Start: start, End: start.AddDays(daysInMonth(d.Year(), d.Month()) - 1)}
}

// MonthPeriod returns the period for a "YYYY-MM" key. The zero Period and
// false are returned when the key is malformed.
func MonthPeriod(key string) (Period, bool) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return Period{}, false
	}
	return MonthOf(NewDay(t.Year(), t.Month(), 1)), true
}

// Contains reports whether the day falls inside the period. Zero days are
// never contained: an entry with no date matches no window.
func (p Period) Contains(d Day) bool {
	if d.IsZero() {
		return false
	}
	if !p.Start.IsZero() && d.Before(p.Start) {
		return false
	}
	if !p.End.IsZero() && d.After(p.End) {
		return false
	}
	return true
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1).Day()
}
