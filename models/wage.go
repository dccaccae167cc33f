package models

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

type Approval string

const (
	ApprovalYes Approval = "yes"
	ApprovalNo  Approval = "no"
)

const DefaultRate = 15.0

// MaxHours caps hour inputs so the total wage stays finite.
const MaxHours = 100000.0

// MaxNameLength bounds employee and project names, in runes.
const MaxNameLength = 64

// AllowedRates is the fixed set the rate selector offers.
var AllowedRates = []float64{15.88, 16.51, 26.34, 30, 32.65, 40.48, 47.20, 53.71}

var (
	ErrRateNotAllowed  = errors.New("hourly rate is not one of the allowed rates")
	ErrInvalidApproval = errors.New("approval must be \"yes\" or \"no\"")
)

type WageInput struct {
	EmployeeName string   `json:"employee_name"`
	ProjectName  string   `json:"project_name"`
	HoursLogged  float64  `json:"hours_logged"`
	HoursWorked  float64  `json:"hours_worked"`
	HourlyRate   float64  `json:"hourly_rate"`
	Approval     Approval `json:"approval"`
}

type WageDerivation struct {
	OvertimeHours float64 `json:"overtime_hours"`
	TotalWage     float64 `json:"total_wage"`
}

func DefaultWageInput() WageInput {
	return WageInput{
		HourlyRate: DefaultRate,
		Approval:   ApprovalNo,
	}
}

func (in WageInput) IsApproved() bool {
	return in.Approval == ApprovalYes
}

// Derive computes the overtime hours and total wage for in. The wage keeps
// full precision; use FormatMoney for display.
func Derive(in WageInput) WageDerivation {
	return WageDerivation{
		OvertimeHours: math.Max(in.HoursLogged-in.HoursWorked, 0),
		TotalWage:     in.HoursLogged * in.HourlyRate,
	}
}

func IsAllowedRate(rate float64) bool {
	for _, r := range AllowedRates {
		if r == rate {
			return true
		}
	}
	return false
}

func ParseApproval(s string) (Approval, error) {
	switch Approval(strings.ToLower(strings.TrimSpace(s))) {
	case ApprovalYes:
		return ApprovalYes, nil
	case ApprovalNo:
		return ApprovalNo, nil
	}
	return ApprovalNo, ErrInvalidApproval
}

// ParseHours reads an hours value the permissive way the form does:
// anything that is not a finite non-negative number becomes 0, and values
// above MaxHours are clamped to it.
func ParseHours(s string) float64 {
	v, err := parseFloat(s)
	if err != nil {
		return 0
	}
	return sanitizeHours(v)
}

func ParseRate(s string) (float64, error) {
	v, err := parseFloat(s)
	if err != nil {
		return 0, ErrRateNotAllowed
	}
	return v, nil
}

func FormatMoney(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatNumber prints v in its shortest decimal form (47.2, 30, 7.5).
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func sanitizeHours(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return math.Min(v, MaxHours)
}

// TrimName strips surrounding space and cuts name to MaxNameLength runes.
func TrimName(name string) string {
	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) > MaxNameLength {
		return string(r[:MaxNameLength])
	}
	return name
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}
