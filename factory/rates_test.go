package factory_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hugovelez16/Vesotel-Gestor-Jornada-sub000/factory"
	"github.com/hugovelez16/Vesotel-Gestor-Jornada-sub000/worklog"
)

func TestDefaultRates(t *testing.T) {
	// GIVEN/WHEN: The seeding defaults
	r := factory.DefaultRates()

	// THEN: Surcharges carry the customary values, base rates stay unset
	if !r.CoordinationRate.Equal(decimal.NewFromInt(10)) {
		t.Errorf("coordinationRate = %s, want 10", r.CoordinationRate)
	}
	if !r.NightRate.Equal(decimal.NewFromInt(30)) {
		t.Errorf("nightRate = %s, want 30", r.NightRate)
	}
	if !r.HourlyRate.IsZero() || !r.DailyRate.IsZero() {
		t.Error("base rates must start at zero")
	}
	if r.IsGross {
		t.Error("new users start in net mode")
	}
}

func TestParseRates(t *testing.T) {
	doc := []byte(`{
		"hourlyRate": 12.5,
		"dailyRate": 110,
		"coordinationRate": 10,
		"nightRate": 30,
		"isGross": true
	}`)

	r, err := factory.ParseRates(doc)
	if err != nil {
		t.Fatalf("ParseRates: %v", err)
	}
	if !r.HourlyRate.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("hourlyRate = %s, want 12.5", r.HourlyRate)
	}
	if !r.DailyRate.Equal(decimal.NewFromInt(110)) {
		t.Errorf("dailyRate = %s, want 110", r.DailyRate)
	}
	if !r.IsGross {
		t.Error("isGross should be true")
	}
}

func TestParseRates_MissingFieldsAreZero(t *testing.T) {
	// GIVEN: A document naming only the hourly rate
	// THEN: Every other rate parses as 0, not as a default
	r, err := factory.ParseRates([]byte(`{"hourlyRate": 15}`))
	if err != nil {
		t.Fatalf("ParseRates: %v", err)
	}
	if !r.CoordinationRate.IsZero() || !r.NightRate.IsZero() || !r.DailyRate.IsZero() {
		t.Errorf("absent fields must parse to zero, got %+v", r)
	}
}

func TestParseRates_Malformed(t *testing.T) {
	if _, err := factory.ParseRates([]byte(`not json`)); err == nil {
		t.Error("expected an error for malformed input")
	}
}

func TestFromRates_RoundTrip(t *testing.T) {
	in := worklog.Rates{
		HourlyRate: decimal.RequireFromString("12.5"),
		DailyRate:  decimal.NewFromInt(110),
		IsGross:    true,
	}
	out := factory.FromRates(in).ToRates()
	if !out.HourlyRate.Equal(in.HourlyRate) || !out.DailyRate.Equal(in.DailyRate) || out.IsGross != in.IsGross {
		t.Errorf("round trip changed the rates: %+v", out)
	}
}
