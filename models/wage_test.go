package models

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name         string
		logged       float64
		worked       float64
		rate         float64
		wantOvertime float64
		wantTotal    string
	}{
		{"overtime at lowest rate", 40, 35, 15.88, 5, "$635.20"},
		{"nothing logged", 0, 0, 53.71, 0, "$0.00"},
		{"default rate no overtime", 20, 20, 15, 0, "$300.00"},
		{"rate 30 no overtime", 20, 20, 30, 0, "$600.00"},
		{"fractional hours", 7.5, 6.25, 47.20, 1.25, "$354.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Derive(WageInput{HoursLogged: tt.logged, HoursWorked: tt.worked, HourlyRate: tt.rate})
			if !approxEqual(d.OvertimeHours, tt.wantOvertime) {
				t.Errorf("OvertimeHours = %v, want %v", d.OvertimeHours, tt.wantOvertime)
			}
			if got := FormatMoney(d.TotalWage); got != tt.wantTotal {
				t.Errorf("TotalWage = %s, want %s", got, tt.wantTotal)
			}
		})
	}
}

func TestDeriveProperties(t *testing.T) {
	for logged := 0.0; logged <= 60; logged += 2.5 {
		for worked := 0.0; worked <= logged; worked += 1.25 {
			for _, rate := range append([]float64{0, DefaultRate}, AllowedRates...) {
				d := Derive(WageInput{HoursLogged: logged, HoursWorked: worked, HourlyRate: rate})
				if d.TotalWage != logged*rate {
					t.Fatalf("TotalWage(%v, %v) = %v", logged, rate, d.TotalWage)
				}
				if d.OvertimeHours != logged-worked {
					t.Fatalf("OvertimeHours(%v, %v) = %v", logged, worked, d.OvertimeHours)
				}
			}
		}
	}
}

func TestDeriveOvertimeNeverNegative(t *testing.T) {
	d := Derive(WageInput{HoursLogged: 10, HoursWorked: 25, HourlyRate: 30})
	if d.OvertimeHours != 0 {
		t.Fatalf("OvertimeHours = %v, want 0", d.OvertimeHours)
	}
}

func TestParseHours(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"8", 8},
		{" 7.5 ", 7.5},
		{"7,5", 7.5},
		{"", 0},
		{"abc", 0},
		{"-3", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"1e2", 100},
		{"1e308", MaxHours},
	}
	for _, tt := range tests {
		if got := ParseHours(tt.in); got != tt.want {
			t.Errorf("ParseHours(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHugeHoursKeepWageFinite(t *testing.T) {
	var top float64
	for _, r := range AllowedRates {
		top = math.Max(top, r)
	}
	hours := ParseHours("1e308")
	d := Derive(WageInput{HoursLogged: hours, HourlyRate: top})
	if math.IsInf(d.TotalWage, 0) || math.IsNaN(d.TotalWage) {
		t.Fatalf("TotalWage = %v for %v hours", d.TotalWage, hours)
	}
}

func TestTrimName(t *testing.T) {
	long := strings.Repeat("é", MaxNameLength+10)
	tests := []struct {
		in   string
		want string
	}{
		{"  Ada  ", "Ada"},
		{"", ""},
		{long, strings.Repeat("é", MaxNameLength)},
	}
	for _, tt := range tests {
		if got := TrimName(tt.in); got != tt.want {
			t.Errorf("TrimName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseApproval(t *testing.T) {
	for _, in := range []string{"yes", "YES", " yes "} {
		a, err := ParseApproval(in)
		if err != nil || a != ApprovalYes {
			t.Errorf("ParseApproval(%q) = %v, %v", in, a, err)
		}
	}
	if a, err := ParseApproval("no"); err != nil || a != ApprovalNo {
		t.Errorf("ParseApproval(no) = %v, %v", a, err)
	}
	if _, err := ParseApproval("maybe"); !errors.Is(err, ErrInvalidApproval) {
		t.Errorf("expected ErrInvalidApproval, got %v", err)
	}
}

func TestIsAllowedRate(t *testing.T) {
	for _, r := range AllowedRates {
		if !IsAllowedRate(r) {
			t.Errorf("%v should be allowed", r)
		}
	}
	for _, r := range []float64{0, DefaultRate, 15.87, 100} {
		if IsAllowedRate(r) {
			t.Errorf("%v should not be allowed", r)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{30: "30", 47.20: "47.2", 7.5: "7.5", 0: "0"}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
