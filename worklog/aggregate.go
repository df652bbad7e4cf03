/*
aggregate.go - Period statistics and monthly buckets

PURPOSE:
  Folds a collection of entries into summary statistics, either over an
  arbitrary Period (a month, or all time) or bucketed month by month.

APPORTIONMENT:
  A tutorial entry stores one lump Amount for its whole date range. For
  period statistics that lump is spread evenly across the covered days
  (amount / days per day), so a stay straddling a month boundary credits
  each month with its share. This is an approximation of the original
  per-day surcharge composition, not a re-derivation of it.

  The per-day fractions are accumulated unrounded and only rounded at the
  presentation boundary. Summed over an unbounded period they reconstruct
  the stored amounts without drift beyond decimal division precision.

ROBUSTNESS:
  Entries with a zero (unparsable) date, an unknown type, or a missing
  payload contribute nothing. Aggregation never fails and never recomputes
  an entry's Amount.

SEE ALSO:
  - calculate.go: Produces the stored amounts consumed here
  - day.go: Period and calendar-day arithmetic
*/
package worklog

import (
	"sort"

	"github.com/shopspring/decimal"
)

// =============================================================================
// STATS - Summary over a period
// =============================================================================

// Stats summarizes the entries whose days fall inside a period.
type Stats struct {
	// Earnings is the unrounded sum of matched amounts (tutorial amounts
	// apportioned per day). Round at display time.
	Earnings Amount

	// DaysWorked counts distinct calendar days with any work.
	DaysWorked int

	// TutorialDays counts tutorial days inside the period.
	TutorialDays int

	// ParticularHours sums the stored duration of particular entries
	// whose date is inside the period.
	ParticularHours Amount
}

// Aggregate folds entries into Stats for the given period. The zero
// Period aggregates everything (all time).
func Aggregate(entries []Entry, p Period) Stats {
	stats := Stats{
		Earnings:        Amount{Unit: UnitEuros},
		ParticularHours: Amount{Unit: UnitHours},
	}
	daysWorked := make(map[string]struct{})

	for _, e := range entries {
		switch e.Type {
		case EntryParticular:
			if e.Particular == nil || !p.Contains(e.Particular.Date) {
				continue
			}
			stats.Earnings = stats.Earnings.Add(e.Computed.Amount)
			stats.ParticularHours = stats.ParticularHours.Add(e.Computed.Duration)
			daysWorked[e.Particular.Date.String()] = struct{}{}

		case EntryTutorial:
			if e.Tutorial == nil || e.Tutorial.StartDate.IsZero() || e.Tutorial.EndDate.IsZero() {
				continue
			}
			days := DaysBetween(e.Tutorial.StartDate, e.Tutorial.EndDate) + 1
			daily := Amount{Unit: UnitEuros}
			if days > 0 {
				daily = e.Computed.Amount.Div(decimal.NewFromInt(int64(days)))
			}
			// An inverted range iterates zero times and contributes nothing.
			for d := e.Tutorial.StartDate; !d.After(e.Tutorial.EndDate); d = d.AddDays(1) {
				if !p.Contains(d) {
					continue
				}
				stats.Earnings = stats.Earnings.Add(daily)
				stats.TutorialDays++
				daysWorked[d.String()] = struct{}{}
			}
		}
	}

	stats.DaysWorked = len(daysWorked)
	return stats
}

// =============================================================================
// MONTHLY BUCKETS - Month-by-month breakdown
// =============================================================================

// MonthSummary is the aggregate for one calendar month plus the entries
// touching it, for consumers that need entry-level detail per month.
type MonthSummary struct {
	// Month is the "YYYY-MM" bucket key.
	Month string

	Stats Stats

	// Entries lists each entry touching the month exactly once, in input
	// order. A tutorial spanning a boundary appears in every month it
	// overlaps; its apportioned days still count separately per month.
	Entries []Entry
}

// BucketByMonth partitions entries by calendar month and aggregates each
// bucket, newest month first.
func BucketByMonth(entries []Entry) []MonthSummary {
	members := make(map[string][]Entry)
	seen := make(map[string]map[string]struct{}) // month -> entry IDs already listed

	add := func(month string, e Entry) {
		ids, ok := seen[month]
		if !ok {
			ids = make(map[string]struct{})
			seen[month] = ids
		}
		if _, dup := ids[e.ID]; dup {
			return
		}
		ids[e.ID] = struct{}{}
		members[month] = append(members[month], e)
	}

	for _, e := range entries {
		switch e.Type {
		case EntryParticular:
			if e.Particular == nil || e.Particular.Date.IsZero() {
				continue
			}
			add(e.Particular.Date.MonthKey(), e)
		case EntryTutorial:
			if e.Tutorial == nil || e.Tutorial.StartDate.IsZero() || e.Tutorial.EndDate.IsZero() {
				continue
			}
			for d := e.Tutorial.StartDate; !d.After(e.Tutorial.EndDate); d = d.AddDays(1) {
				add(d.MonthKey(), e)
			}
		}
	}

	keys := make([]string, 0, len(members))
	for k := range members {
		keys = append(keys, k)
	}
	// Descending lexicographic equals descending chronological for YYYY-MM.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	summaries := make([]MonthSummary, 0, len(keys))
	for _, k := range keys {
		period, ok := MonthPeriod(k)
		if !ok {
			continue
		}
		summaries = append(summaries, MonthSummary{
			Month:   k,
			Stats:   Aggregate(members[k], period),
			Entries: members[k],
		})
	}
	return summaries
}
