/*
Package worklog provides the core work-shift earnings engine.

PURPOSE:
  This package contains the domain types and pure calculation logic for
  tracking work shifts and the money they earn. Two kinds of engagement
  exist: "particular" sessions (single day, billed by the hour) and
  "tutorial" stays (multi-day, billed per diem). The engine computes the
  earnings of a single entry and aggregates collections of entries into
  per-month and all-time summaries.

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A quantity with a unit (euros, hours, days)
  - Rates: A user's tariff schedule (hourly, daily, surcharges, gross flag)
  - Entry: A single recorded shift, tagged particular or tutorial
  - Computed: The calculator-owned fields written back into an Entry

DESIGN PRINCIPLES:
  1. Purity: Calculate and Aggregate are total functions with no I/O
  2. Precision: Uses decimal.Decimal to avoid floating-point errors
  3. Closed variants: The particular/tutorial payloads are separate structs,
     so an Entry cannot hold a half-populated mixture of both shapes
  4. Stored amounts are authoritative: aggregation sums what the calculator
     persisted, it never re-derives an entry's earnings

USAGE:
  rates := worklog.Rates{HourlyRate: decimal.NewFromInt(10)}
  entry := worklog.Entry{
      Type:       worklog.EntryParticular,
      Particular: &worklog.Particular{Date: day, Hours: decimal.NewFromInt(2)},
  }
  entry.Computed = worklog.Calculate(entry, rates)

SEE ALSO:
  - calculate.go: Earnings calculation per entry
  - aggregate.go: Period statistics and monthly buckets
  - day.go: Calendar-day arithmetic
*/
package worklog

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Quantity with unit
// =============================================================================

type Amount struct {
	Value decimal.Decimal
	Unit  Unit
}

type Unit string

const (
	UnitEuros Unit = "euros"
	UnitHours Unit = "hours"
	UnitDays  Unit = "days"
)

func NewAmount(value float64, unit Unit) Amount {
	return Amount{Value: decimal.NewFromFloat(value), Unit: unit}
}

func NewAmountFromInt(value int, unit Unit) Amount {
	return Amount{Value: decimal.NewFromInt(int64(value)), Unit: unit}
}

func (a Amount) Add(b Amount) Amount          { return Amount{Value: a.Value.Add(b.Value), Unit: a.Unit} }
func (a Amount) Sub(b Amount) Amount          { return Amount{Value: a.Value.Sub(b.Value), Unit: a.Unit} }
func (a Amount) Mul(s decimal.Decimal) Amount { return Amount{Value: a.Value.Mul(s), Unit: a.Unit} }
func (a Amount) Div(s decimal.Decimal) Amount { return Amount{Value: a.Value.Div(s), Unit: a.Unit} }
func (a Amount) IsZero() bool                 { return a.Value.IsZero() }
func (a Amount) IsNegative() bool             { return a.Value.IsNegative() }

// Round2 rounds to two decimal places, half away from zero. This is the
// cent-rounding applied to every persisted amount.
func (a Amount) Round2() Amount { return Amount{Value: a.Value.Round(2), Unit: a.Unit} }

// Float64 returns the nearest float64, for JSON/display boundaries only.
func (a Amount) Float64() float64 { return a.Value.InexactFloat64() }

// =============================================================================
// RATES - A user's tariff schedule
// =============================================================================

// Rates holds the per-user tariff configuration. A zero-value field means
// the rate is not configured and the calculator charges 0 for it. Seeding a
// new user with the customary defaults (coordination 10, night 30) is an
// explicit step owned by the factory package, never implied here.
type Rates struct {
	// HourlyRate is charged per hour of a particular session.
	HourlyRate decimal.Decimal

	// DailyRate is charged per calendar day of a tutorial stay.
	DailyRate decimal.Decimal

	// CoordinationRate is a flat surcharge: once per particular event,
	// once per tutorial day.
	CoordinationRate decimal.Decimal

	// NightRate is a flat surcharge: once per particular event, once per
	// tutorial night.
	NightRate decimal.Decimal

	// IsGross marks the rates as gross figures. When set, computed totals
	// are scaled by the IRPF withholding factor so the stored amount is
	// the net payable value.
	IsGross bool
}

// =============================================================================
// WORK LOG ENTRY - One recorded shift
// =============================================================================

type EntryType string

const (
	EntryParticular EntryType = "particular"
	EntryTutorial   EntryType = "tutorial"
)

// Particular is the payload of a single-day, hourly-billed session.
type Particular struct {
	Date Day

	// StartTime/EndTime are optional "HH:MM" clock strings. They are only
	// consulted when Hours is zero.
	StartTime string
	EndTime   string

	// Hours is an explicit duration override. Zero means derive the
	// duration from the clock times.
	Hours decimal.Decimal
}

// Tutorial is the payload of a multi-day, per-diem-billed stay.
// The [StartDate, EndDate] range is inclusive on both ends.
type Tutorial struct {
	StartDate Day
	EndDate   Day
}

// Computed holds the fields owned by the calculator. They are overwritten
// on every create/edit and persisted alongside the entry; readers must
// treat the stored Amount as authoritative.
type Computed struct {
	// Amount is the final payable value, rounded to cents. When the rates
	// are gross it is already net of withholding.
	Amount Amount

	// RateApplied is the base rate the calculation used (hourly or daily).
	RateApplied decimal.Decimal

	// Duration is hours for particular entries, days for tutorial entries.
	Duration Amount

	// IsGross records which calculation mode produced Amount, mirroring
	// Rates.IsGross at calculation time.
	IsGross bool
}

// Entry is a single recorded shift. Exactly one of Particular/Tutorial is
// populated, matching Type; the calculator returns the zero Computed for
// anything else.
type Entry struct {
	ID     string
	UserID string
	Type   EntryType

	Particular *Particular
	Tutorial   *Tutorial

	Description     string
	HasCoordination bool
	HasNight        bool

	// ArrivesPrior means the worker travels the day before a tutorial
	// starts, which adds one night of surcharge eligibility. It has no
	// effect on particular entries.
	ArrivesPrior bool

	Computed Computed

	CreatedAt time.Time
}

// =============================================================================
// ACCESS REQUEST - Sign-up approval record
// =============================================================================

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// AccessRequest is a pending sign-up awaiting admin approval. Plain CRUD
// data; it does not participate in any calculation.
type AccessRequest struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Status    RequestStatus
	CreatedAt time.Time
}
