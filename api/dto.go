/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract. Field names
  follow the camelCase convention of the web client's stored records.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

NUMBERS ON THE WIRE:
  Amounts travel as float64 rounded to two decimals. Internally everything
  is decimal; the float conversion happens only here.

VALIDATION:
  Parsing/validation of incoming DTOs lives in toEntry; handlers report
  its errors as 400s.

SEE ALSO:
  - handlers.go: Uses these types
  - worklog/types.go: The domain model these mirror
*/
package api

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugovelez16/Vesotel-Gestor-Jornada-sub000/worklog"
)

// =============================================================================
// WORK LOGS
// =============================================================================

// WorkLogDTO represents a work log entry in API responses.
type WorkLogDTO struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Type   string `json:"type"`

	Date      string `json:"date,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`

	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`

	Description     string `json:"description"`
	HasCoordination bool   `json:"hasCoordination"`
	HasNight        bool   `json:"hasNight"`
	ArrivesPrior    bool   `json:"arrivesPrior"`

	// Computed fields, read-only for clients.
	Amount             float64 `json:"amount"`
	RateApplied        float64 `json:"rateApplied"`
	Duration           float64 `json:"duration"`
	IsGrossCalculation bool    `json:"isGrossCalculation"`

	CreatedAt string `json:"createdAt,omitempty"`
}

// SaveWorkLogRequest is the request to create or edit a work log. The
// computed fields are intentionally absent: clients never supply amounts.
type SaveWorkLogRequest struct {
	UserID string `json:"userId"`
	Type   string `json:"type"`

	Date      string `json:"date,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	// Duration overrides the time-derived duration when non-zero.
	Duration float64 `json:"duration,omitempty"`

	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`

	Description     string `json:"description"`
	HasCoordination bool   `json:"hasCoordination"`
	HasNight        bool   `json:"hasNight"`
	ArrivesPrior    bool   `json:"arrivesPrior"`
}

// toEntry validates the request and builds a domain entry. The returned
// entry has no computed fields yet; the handler runs the calculator.
func (r SaveWorkLogRequest) toEntry(id string) (worklog.Entry, error) {
	if r.UserID == "" {
		return worklog.Entry{}, fmt.Errorf("userId is required")
	}

	e := worklog.Entry{
		ID:              id,
		UserID:          r.UserID,
		Type:            worklog.EntryType(r.Type),
		Description:     r.Description,
		HasCoordination: r.HasCoordination,
		HasNight:        r.HasNight,
		ArrivesPrior:    r.ArrivesPrior,
	}

	switch e.Type {
	case worklog.EntryParticular:
		date, err := worklog.ParseDay(r.Date)
		if err != nil {
			return worklog.Entry{}, fmt.Errorf("invalid date %q", r.Date)
		}
		e.Particular = &worklog.Particular{
			Date:      date,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Hours:     decimal.NewFromFloat(r.Duration),
		}
	case worklog.EntryTutorial:
		start, err := worklog.ParseDay(r.StartDate)
		if err != nil {
			return worklog.Entry{}, fmt.Errorf("invalid startDate %q", r.StartDate)
		}
		end, err := worklog.ParseDay(r.EndDate)
		if err != nil {
			return worklog.Entry{}, fmt.Errorf("invalid endDate %q", r.EndDate)
		}
		e.Tutorial = &worklog.Tutorial{StartDate: start, EndDate: end}
	default:
		return worklog.Entry{}, worklog.ErrUnknownEntryType
	}

	return e, nil
}

func toWorkLogDTO(e worklog.Entry) WorkLogDTO {
	dto := WorkLogDTO{
		ID:                 e.ID,
		UserID:             e.UserID,
		Type:               string(e.Type),
		Description:        e.Description,
		HasCoordination:    e.HasCoordination,
		HasNight:           e.HasNight,
		ArrivesPrior:       e.ArrivesPrior,
		Amount:             e.Computed.Amount.Round2().Float64(),
		RateApplied:        e.Computed.RateApplied.InexactFloat64(),
		Duration:           e.Computed.Duration.Float64(),
		IsGrossCalculation: e.Computed.IsGross,
	}
	if !e.CreatedAt.IsZero() {
		dto.CreatedAt = e.CreatedAt.UTC().Format(time.RFC3339)
	}
	if e.Particular != nil {
		dto.Date = e.Particular.Date.String()
		dto.StartTime = e.Particular.StartTime
		dto.EndTime = e.Particular.EndTime
	}
	if e.Tutorial != nil {
		dto.StartDate = e.Tutorial.StartDate.String()
		dto.EndDate = e.Tutorial.EndDate.String()
	}
	return dto
}

// =============================================================================
// SETTINGS
// =============================================================================

// SettingsDTO is a user's rate configuration on the wire.
type SettingsDTO struct {
	UserID           string  `json:"userId"`
	HourlyRate       float64 `json:"hourlyRate"`
	DailyRate        float64 `json:"dailyRate"`
	CoordinationRate float64 `json:"coordinationRate"`
	NightRate        float64 `json:"nightRate"`
	IsGross          bool    `json:"isGross"`
}

func toSettingsDTO(userID string, r worklog.Rates) SettingsDTO {
	return SettingsDTO{
		UserID:           userID,
		HourlyRate:       r.HourlyRate.InexactFloat64(),
		DailyRate:        r.DailyRate.InexactFloat64(),
		CoordinationRate: r.CoordinationRate.InexactFloat64(),
		NightRate:        r.NightRate.InexactFloat64(),
		IsGross:          r.IsGross,
	}
}

func (s SettingsDTO) toRates() worklog.Rates {
	return worklog.Rates{
		HourlyRate:       decimal.NewFromFloat(s.HourlyRate),
		DailyRate:        decimal.NewFromFloat(s.DailyRate),
		CoordinationRate: decimal.NewFromFloat(s.CoordinationRate),
		NightRate:        decimal.NewFromFloat(s.NightRate),
		IsGross:          s.IsGross,
	}
}

// =============================================================================
// SUMMARY
// =============================================================================

// StatsDTO is a period summary with presentation rounding applied.
type StatsDTO struct {
	Earnings        float64 `json:"earnings"`
	ParticularHours float64 `json:"particularHours"`
	TutorialDays    int     `json:"tutorialDays"`
	DaysWorked      int     `json:"daysWorked"`
}

func toStatsDTO(s worklog.Stats) StatsDTO {
	return StatsDTO{
		Earnings:        s.Earnings.Round2().Float64(),
		ParticularHours: s.ParticularHours.Float64(),
		TutorialDays:    s.TutorialDays,
		DaysWorked:      s.DaysWorked,
	}
}

// MonthSummaryDTO is one month's bucket: stats plus the entries touching it.
type MonthSummaryDTO struct {
	Month   string       `json:"month"`
	Stats   StatsDTO     `json:"stats"`
	Entries []WorkLogDTO `json:"entries"`
}

// SummaryDTO is the full summary response: all-time totals plus the
// monthly breakdown, newest month first.
type SummaryDTO struct {
	Total  StatsDTO          `json:"total"`
	Months []MonthSummaryDTO `json:"months"`
}

// =============================================================================
// ACCESS REQUESTS
// =============================================================================

// AccessRequestDTO represents an access request in API responses.
type AccessRequestDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// CreateAccessRequest is the request body for a new sign-up request.
type CreateAccessRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func toAccessRequestDTO(r worklog.AccessRequest) AccessRequestDTO {
	dto := AccessRequestDTO{
		ID:        r.ID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Status:    string(r.Status),
	}
	if !r.CreatedAt.IsZero() {
		dto.CreatedAt = r.CreatedAt.UTC().Format(time.RFC3339)
	}
	return dto
}
