/*
calculate_test.go - Executable specification of the earnings calculator

Each test states a composition rule and validates it. The fixture tariff
matches the documented examples: hourly 10, daily 100, coordination 10,
night 30.
*/
package worklog_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugovelez16/Vesotel-Gestor-Jornada-sub000/worklog"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func standardRates() worklog.Rates {
	return worklog.Rates{
		HourlyRate:       decimal.NewFromInt(10),
		DailyRate:        decimal.NewFromInt(100),
		CoordinationRate: decimal.NewFromInt(10),
		NightRate:        decimal.NewFromInt(30),
	}
}

func day(y int, m time.Month, d int) worklog.Day {
	return worklog.NewDay(y, m, d)
}

func particular(date worklog.Day, hours float64) worklog.Entry {
	return worklog.Entry{
		ID:   "p-" + date.String(),
		Type: worklog.EntryParticular,
		Particular: &worklog.Particular{
			Date:  date,
			Hours: decimal.NewFromFloat(hours),
		},
	}
}

func tutorial(start, end worklog.Day) worklog.Entry {
	return worklog.Entry{
		ID:       "t-" + start.String(),
		Type:     worklog.EntryTutorial,
		Tutorial: &worklog.Tutorial{StartDate: start, EndDate: end},
	}
}

func assertAmount(t *testing.T, got worklog.Computed, want string) {
	t.Helper()
	if !got.Amount.Value.Equal(decimal.RequireFromString(want)) {
		t.Errorf("amount = %s, want %s", got.Amount.Value, want)
	}
}

// =============================================================================
// PARTICULAR ENTRIES
// =============================================================================

func TestCalculate_Particular_NoSurcharges(t *testing.T) {
	// GIVEN: A 2-hour session at 10/hour
	// WHEN: Calculating earnings
	// THEN: Amount is 2*10 = 20.00
	e := particular(day(2023, time.March, 10), 2)

	result := worklog.Calculate(e, standardRates())

	assertAmount(t, result, "20")
	if !result.RateApplied.Equal(decimal.NewFromInt(10)) {
		t.Errorf("rateApplied = %s, want 10", result.RateApplied)
	}
	if result.Duration.Unit != worklog.UnitHours || !result.Duration.Value.Equal(decimal.NewFromInt(2)) {
		t.Errorf("duration = %s %s, want 2 hours", result.Duration.Value, result.Duration.Unit)
	}
}

func TestCalculate_Particular_CoordinationAndNight(t *testing.T) {
	// GIVEN: A 2-hour session with both surcharge flags
	// WHEN: Calculating earnings
	// THEN: Amount is 2*10 + 10 + 30 = 60.00; surcharges are flat per
	//       event, not per hour
	e := particular(day(2023, time.March, 10), 2)
	e.HasCoordination = true
	e.HasNight = true

	result := worklog.Calculate(e, standardRates())

	assertAmount(t, result, "60")
}

func TestCalculate_Particular_DurationFromClockTimes(t *testing.T) {
	// GIVEN: No explicit duration, start 09:30 end 12:00
	// WHEN: Calculating earnings
	// THEN: Duration is 2.5 hours, amount 25.00
	e := worklog.Entry{
		Type: worklog.EntryParticular,
		Particular: &worklog.Particular{
			Date:      day(2023, time.March, 10),
			StartTime: "09:30",
			EndTime:   "12:00",
		},
	}

	result := worklog.Calculate(e, standardRates())

	assertAmount(t, result, "25")
	if !result.Duration.Value.Equal(decimal.NewFromFloat(2.5)) {
		t.Errorf("duration = %s, want 2.5", result.Duration.Value)
	}
}

func TestCalculate_Particular_ExplicitDurationWinsOverTimes(t *testing.T) {
	// GIVEN: An explicit 3-hour duration AND clock times spanning 2 hours
	// WHEN: Calculating earnings
	// THEN: The explicit duration is used verbatim
	e := worklog.Entry{
		Type: worklog.EntryParticular,
		Particular: &worklog.Particular{
			Date:      day(2023, time.March, 10),
			StartTime: "10:00",
			EndTime:   "12:00",
			Hours:     decimal.NewFromInt(3),
		},
	}

	result := worklog.Calculate(e, standardRates())

	assertAmount(t, result, "30")
}

func TestCalculate_Particular_EndBeforeStart_NegativeDurationPreserved(t *testing.T) {
	// GIVEN: End time before start time (22:00 -> 02:00)
	// WHEN: Calculating earnings
	// THEN: Clock subtraction is naive, so the duration and amount go
	//       negative. There is no midnight rollover; stored entries were
	//       produced by exactly this behavior.
	e := worklog.Entry{
		Type: worklog.EntryParticular,
		Particular: &worklog.Particular{
			Date:      day(2023, time.March, 10),
			StartTime: "22:00",
			EndTime:   "02:00",
		},
	}

	result := worklog.Calculate(e, standardRates())

	if !result.Duration.Value.Equal(decimal.NewFromInt(-20)) {
		t.Errorf("duration = %s, want -20", result.Duration.Value)
	}
	assertAmount(t, result, "-200")
}

func TestCalculate_Particular_UnparsableClockTimes(t *testing.T) {
	// GIVEN: Garbage in the time fields and no explicit duration
	// WHEN: Calculating earnings
	// THEN: Duration resolves to 0; no error, no panic
	e := worklog.Entry{
		Type: worklog.EntryParticular,
		Particular: &worklog.Particular{
			Date:      day(2023, time.March, 10),
			StartTime: "morning",
			EndTime:   "noon",
		},
	}

	result := worklog.Calculate(e, standardRates())

	assertAmount(t, result, "0")
}

// =============================================================================
// TUTORIAL ENTRIES
// =============================================================================

func TestCalculate_Tutorial_ThreeDays(t *testing.T) {
	// GIVEN: A 3-day stay (Jan 1-3 inclusive) at 100/day
	// WHEN: Calculating earnings
	// THEN: days=3, amount=300.00, duration reported in days
	e := tutorial(day(2023, time.January, 1), day(2023, time.January, 3))

	result := worklog.Calculate(e, standardRates())

	assertAmount(t, result, "300")
	if !result.RateApplied.Equal(decimal.NewFromInt(100)) {
		t.Errorf("rateApplied = %s, want 100", result.RateApplied)
	}
	if result.Duration.Unit != worklog.UnitDays || !result.Duration.Value.Equal(decimal.NewFromInt(3)) {
		t.Errorf("duration = %s %s, want 3 days", result.Duration.Value, result.Duration.Unit)
	}
}

func TestCalculate_Tutorial_NightAndArrivesPrior(t *testing.T) {
	// GIVEN: A 3-day stay, night flag set, worker travels the day before
	// WHEN: Calculating earnings
	// THEN: 2 in-between nights + 1 prior night = 3 nights of surcharge:
	//       3*100 + 3*30 = 390.00
	e := tutorial(day(2023, time.January, 1), day(2023, time.January, 3))
	e.HasNight = true
	e.ArrivesPrior = true

	result := worklog.Calculate(e, standardRates())

	assertAmount(t, result, "390")
}

func TestCalculate_Tutorial_CoordinationChargedPerDayIncludingFirst(t *testing.T) {
	// GIVEN: A 3-day stay with coordination
	// WHEN: Calculating earnings
	// THEN: Coordination applies to all 3 days (unlike nights):
	//       3*100 + 3*10 = 330.00
	e := tutorial(day(2023, time.January, 1), day(2023, time.January, 3))
	e.HasCoordination = true

	result := worklog.Calculate(e, standardRates())

	assertAmount(t, result, "330")
}

func TestCalculate_Tutorial_InvertedRangeClampedToOneDay(t *testing.T) {
	// GIVEN: endDate before startDate
	// WHEN: Calculating earnings
	// THEN: Day count is clamped to 1: one daily rate, never negative,
	//       never zero
	e := tutorial(day(2023, time.January, 5), day(2023, time.January, 1))

	result := worklog.Calculate(e, standardRates())

	assertAmount(t, result, "100")
	if !result.Duration.Value.Equal(decimal.NewFromInt(1)) {
		t.Errorf("duration = %s, want 1", result.Duration.Value)
	}
}

func TestCalculate_Tutorial_SingleDayHasNoNights(t *testing.T) {
	// GIVEN: A 1-day stay with the night flag but no prior arrival
	// WHEN: Calculating earnings
	// THEN: 0 nights, so no night surcharge
	e := tutorial(day(2023, time.January, 1), day(2023, time.January, 1))
	e.HasNight = true

	result := worklog.Calculate(e, standardRates())

	assertAmount(t, result, "100")
}

func TestCalculate_Tutorial_MissingDates(t *testing.T) {
	// GIVEN: A tutorial entry with no dates
	// WHEN: Calculating earnings
	// THEN: Zero amounts; the gross flag still mirrors the configuration
	e := worklog.Entry{Type: worklog.EntryTutorial, Tutorial: &worklog.Tutorial{}}
	rates := standardRates()
	rates.IsGross = true

	result := worklog.Calculate(e, rates)

	assertAmount(t, result, "0")
	if !result.IsGross {
		t.Error("isGross should mirror the configuration mode")
	}
}

// =============================================================================
// GROSS CONVERSION AND TOTALITY
// =============================================================================

func TestCalculate_GrossConversion(t *testing.T) {
	// GIVEN: A 10-hour session at 10/hour under gross rates
	// WHEN: Calculating earnings
	// THEN: 100 * 0.9352 = 93.52; the stored amount is the net value and
	//       isGross records the mode that produced it
	e := particular(day(2023, time.March, 10), 10)
	rates := standardRates()
	rates.IsGross = true

	result := worklog.Calculate(e, rates)

	assertAmount(t, result, "93.52")
	if !result.IsGross {
		t.Error("expected isGross = true")
	}
}

func TestCalculate_GrossConversion_RoundsToCents(t *testing.T) {
	// GIVEN: A total whose gross conversion has more than two decimals
	// WHEN: Calculating earnings
	// THEN: 3*10 = 30, 30*0.9352 = 28.056 -> rounds to 28.06
	e := particular(day(2023, time.March, 10), 3)
	rates := standardRates()
	rates.IsGross = true

	result := worklog.Calculate(e, rates)

	assertAmount(t, result, "28.06")
}

func TestCalculate_MissingType_ZeroResult(t *testing.T) {
	// GIVEN: An entry with no type tag
	// WHEN: Calculating earnings
	// THEN: The documented zero result {0, false, 0, 0}; no error path
	result := worklog.Calculate(worklog.Entry{}, standardRates())

	assertAmount(t, result, "0")
	if result.IsGross {
		t.Error("missing type must yield isGross = false")
	}
	if !result.RateApplied.IsZero() || !result.Duration.Value.IsZero() {
		t.Error("missing type must yield zero rate and duration")
	}
}

func TestCalculate_UnknownType_ZeroResult(t *testing.T) {
	// GIVEN: An unrecognized type tag
	// WHEN: Calculating earnings
	// THEN: Ignored: zero result
	e := worklog.Entry{Type: worklog.EntryType("meeting")}

	result := worklog.Calculate(e, standardRates())

	assertAmount(t, result, "0")
}

func TestCalculate_UnconfiguredRates_ChargeZero(t *testing.T) {
	// GIVEN: A user with no configured rates (all zero values)
	// WHEN: Calculating a flagged entry
	// THEN: Every component is 0. Absent rates mean 0 here, always; the
	//       customary defaults belong to the seeding step
	e := particular(day(2023, time.March, 10), 2)
	e.HasCoordination = true
	e.HasNight = true

	result := worklog.Calculate(e, worklog.Rates{})

	assertAmount(t, result, "0")
}

func TestCalculate_Idempotent(t *testing.T) {
	// GIVEN: Any entry and tariff
	// WHEN: Calculating twice with identical inputs
	// THEN: Identical outputs (pure function)
	entries := []worklog.Entry{
		particular(day(2023, time.March, 10), 2),
		tutorial(day(2023, time.January, 1), day(2023, time.January, 3)),
		{},
	}
	rates := standardRates()
	rates.IsGross = true

	for _, e := range entries {
		a := worklog.Calculate(e, rates)
		b := worklog.Calculate(e, rates)
		if !a.Amount.Value.Equal(b.Amount.Value) || a.IsGross != b.IsGross ||
			!a.RateApplied.Equal(b.RateApplied) || !a.Duration.Value.Equal(b.Duration.Value) {
			t.Errorf("calculation not idempotent for %+v: %+v vs %+v", e, a, b)
		}
	}
}
