/*
calculate.go - Earnings calculation for a single work log entry

PURPOSE:
  Turns one Entry plus a user's Rates into the money it earns. This is the
  computational heart of the system; everything else is CRUD glue around it.

COMPOSITION RULES:
  Particular (hourly, single day):
    base  = duration * hourly rate
    total = base + coordination surcharge (flat) + night surcharge (flat)

  Tutorial (per diem, inclusive date range, minimum 1 day):
    days   = (end - start) + 1, clamped to >= 1
    nights = days - 1, plus one more when the worker arrives the day before
    total  = days*daily + nights*night (if flagged) + days*coordination (if flagged)

  Note the asymmetry: coordination is charged for every day including the
  first, nights only for the gaps between days.

GROSS RATES:
  When Rates.IsGross is set the total is scaled by the IRPF withholding
  factor (0.9352), so the stored amount is always the net payable value.

TOTALITY:
  Calculate never fails. Missing type or payload yields the zero Computed.
  An end time before the start time yields a NEGATIVE duration and amount:
  clock subtraction is deliberately naive, with no midnight rollover. That
  matches the recorded behavior of existing entries and is preserved so
  stored amounts stay reproducible.

SEE ALSO:
  - aggregate.go: Consumes the persisted Computed.Amount, never recomputes it
  - factory/rates.go: Default seeding for new users (absent rate == 0 here)
*/
package worklog

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// IRPFFactor is the fraction of a gross amount retained after the standard
// withholding. Applied exactly once, when Rates.IsGross is set.
var IRPFFactor = decimal.RequireFromString("0.9352")

// Calculate computes the earnings of an entry under the given rates.
// It is a pure function: same inputs, same Computed, no side effects.
func Calculate(e Entry, r Rates) Computed {
	var (
		total       decimal.Decimal
		rateApplied decimal.Decimal
		duration    Amount
	)

	switch e.Type {
	case EntryParticular:
		if e.Particular == nil {
			return Computed{Duration: Amount{Unit: UnitHours}, IsGross: r.IsGross}
		}
		total, rateApplied, duration = calculateParticular(e, r)
	case EntryTutorial:
		if e.Tutorial == nil {
			return Computed{Duration: Amount{Unit: UnitDays}, IsGross: r.IsGross}
		}
		total, rateApplied, duration = calculateTutorial(e, r)
	default:
		// Unknown or missing type: the documented zero result.
		return Computed{}
	}

	if r.IsGross {
		total = total.Mul(IRPFFactor)
	}

	return Computed{
		Amount:      Amount{Value: total.Round(2), Unit: UnitEuros},
		RateApplied: rateApplied,
		Duration:    duration,
		IsGross:     r.IsGross,
	}
}

func calculateParticular(e Entry, r Rates) (total, rateApplied decimal.Decimal, duration Amount) {
	p := e.Particular

	hours := p.Hours
	if hours.IsZero() && p.StartTime != "" && p.EndTime != "" {
		hours = clockSpanHours(p.StartTime, p.EndTime)
	}

	total = hours.Mul(r.HourlyRate)
	if e.HasCoordination {
		// Flat per event, independent of duration.
		total = total.Add(r.CoordinationRate)
	}
	if e.HasNight {
		total = total.Add(r.NightRate)
	}

	return total, r.HourlyRate, Amount{Value: hours, Unit: UnitHours}
}

func calculateTutorial(e Entry, r Rates) (total, rateApplied decimal.Decimal, duration Amount) {
	t := e.Tutorial
	if t.StartDate.IsZero() || t.EndDate.IsZero() {
		return decimal.Zero, decimal.Zero, Amount{Unit: UnitDays}
	}

	// Inclusive day count, clamped so an inverted range still charges one day.
	days := DaysBetween(t.StartDate, t.EndDate) + 1
	if days <= 0 {
		days = 1
	}

	// An N-day stay has N-1 nights; arriving the evening before adds one.
	nights := days - 1
	if e.ArrivesPrior {
		nights++
	}

	d := decimal.NewFromInt(int64(days))
	total = d.Mul(r.DailyRate)
	if e.HasNight {
		total = total.Add(decimal.NewFromInt(int64(nights)).Mul(r.NightRate))
	}
	if e.HasCoordination {
		// Per day, first day included (unlike nights).
		total = total.Add(d.Mul(r.CoordinationRate))
	}

	return total, r.DailyRate, Amount{Value: d, Unit: UnitDays}
}

// clockSpanHours subtracts two "HH:MM" clock readings as plain numbers:
// (endH - startH) + (endM - startM)/60. An end before the start yields a
// negative span; there is no midnight rollover. Unparsable input yields 0.
func clockSpanHours(start, end string) decimal.Decimal {
	sh, sm, ok := parseClock(start)
	if !ok {
		return decimal.Zero
	}
	eh, em, ok := parseClock(end)
	if !ok {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(eh - sh)).
		Add(decimal.NewFromInt(int64(em - sm)).Div(decimal.NewFromInt(60)))
}

func parseClock(s string) (hour, minute int, ok bool) {
	h, m, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(m)
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}
