/*
Package factory provides rate-configuration construction and seeding.

PURPOSE:
  Converts JSON rate definitions into worklog.Rates and owns the default
  tariff used to seed a brand-new user. Keeping the defaults here is a
  deliberate split: the calculator treats an absent rate as 0, always; the
  customary starting values (coordination 10, night 30) are applied only
  by this explicit seeding step, never inferred at calculation time.

JSON SCHEMA:
  {
    "hourlyRate": 12.5,
    "dailyRate": 110,
    "coordinationRate": 10,
    "nightRate": 30,
    "isGross": true
  }

USAGE:
  rates := factory.DefaultRates()            // seed a new user
  rates, err := factory.ParseRates(jsonText) // load from a seed file

SEE ALSO:
  - worklog/types.go: The Rates type
  - cmd/jornadactl: Uses ParseRates for the seed command
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hugovelez16/Vesotel-Gestor-Jornada-sub000/worklog"
)

// Customary starting surcharges for a freshly created user.
var (
	defaultCoordinationRate = decimal.NewFromInt(10)
	defaultNightRate        = decimal.NewFromInt(30)
)

// DefaultRates returns the tariff a new user starts with: base rates unset,
// the customary coordination and night surcharges, net calculation mode.
func DefaultRates() worklog.Rates {
	return worklog.Rates{
		CoordinationRate: defaultCoordinationRate,
		NightRate:        defaultNightRate,
		IsGross:          false,
	}
}

// RatesJSON is the wire/file shape of a rate configuration. Field names
// match the persisted settings records of the web client.
type RatesJSON struct {
	HourlyRate       float64 `json:"hourlyRate"`
	DailyRate        float64 `json:"dailyRate"`
	CoordinationRate float64 `json:"coordinationRate"`
	NightRate        float64 `json:"nightRate"`
	IsGross          bool    `json:"isGross"`
}

// ParseRates converts a JSON document into worklog.Rates. No defaults are
// injected: a field missing from the document is a 0 rate.
func ParseRates(data []byte) (worklog.Rates, error) {
	var rj RatesJSON
	if err := json.Unmarshal(data, &rj); err != nil {
		return worklog.Rates{}, fmt.Errorf("parse rates: %w", err)
	}
	return rj.ToRates(), nil
}

// ToRates converts the JSON shape to the domain type.
func (rj RatesJSON) ToRates() worklog.Rates {
	return worklog.Rates{
		HourlyRate:       decimal.NewFromFloat(rj.HourlyRate),
		DailyRate:        decimal.NewFromFloat(rj.DailyRate),
		CoordinationRate: decimal.NewFromFloat(rj.CoordinationRate),
		NightRate:        decimal.NewFromFloat(rj.NightRate),
		IsGross:          rj.IsGross,
	}
}

// FromRates converts the domain type to the JSON shape.
func FromRates(r worklog.Rates) RatesJSON {
	return RatesJSON{
		HourlyRate:       r.HourlyRate.InexactFloat64(),
		DailyRate:        r.DailyRate.InexactFloat64(),
		CoordinationRate: r.CoordinationRate.InexactFloat64(),
		NightRate:        r.NightRate.InexactFloat64(),
		IsGross:          r.IsGross,
	}
}
