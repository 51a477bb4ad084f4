package validator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-06", "2024-02-29", "1999-12-31"}
	invalid := []string{"2025-13-01", "2025-1-6", "06-01-2025", "2025/01/06", "", "hoy"}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"07:00", "13:45", "00:00", "23:59"}
	invalid := []string{"24:00", "7:00pm", "07:60", "0700", ""}
	for _, s := range valid {
		if _, ok := IsValidClockTime(s); !ok {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidClockTime(s); ok {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidCedula(t *testing.T) {
	valid := []string{"123456", "1017234567"}
	invalid := []string{"12345", "12345678901", "10172A4567", ""}
	for _, c := range valid {
		if !IsValidCedula(c) {
			t.Errorf("IsValidCedula(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidCedula(c) {
			t.Errorf("IsValidCedula(%q) = true, want false", c)
		}
	}
}

func TestIsValidHours(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"0", true},
		{"0.5", true},
		{"8", true},
		{"10.5", true},
		{"-1", false},
		{"7.25", false},
		{"3.1", false},
	}
	for _, c := range cases {
		d, err := decimal.NewFromString(c.input)
		if err != nil {
			t.Fatalf("bad test input %q: %v", c.input, err)
		}
		if got := IsValidHours(d); got != c.want {
			t.Errorf("IsValidHours(%s) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidISOWeekday(t *testing.T) {
	for day := 1; day <= 7; day++ {
		if !IsValidISOWeekday(day) {
			t.Errorf("IsValidISOWeekday(%d) = false, want true", day)
		}
	}
	for _, day := range []int{0, 8, -1} {
		if IsValidISOWeekday(day) {
			t.Errorf("IsValidISOWeekday(%d) = true, want false", day)
		}
	}
}
