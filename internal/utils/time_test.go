package utils

import (
	"testing"
	"time"
)

func TestToday(t *testing.T) {
	now := time.Date(2026, 8, 26, 23, 59, 0, 0, time.Local)
	if got := Today(now); got != "2026-08-26" {
		t.Errorf("Today() = %q, want 2026-08-26", got)
	}
}

func TestDateOnly(t *testing.T) {
	now := time.Date(2026, 8, 26, 15, 30, 45, 123, time.Local)
	got := DateOnly(now)

	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("DateOnly did not truncate to midnight: %v", got)
	}
	if got.Year() != 2026 || got.Month() != time.August || got.Day() != 26 {
		t.Errorf("DateOnly changed the date: %v", got)
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 8, 26, 0, 1, 0, 0, time.Local)
	night := time.Date(2026, 8, 26, 23, 59, 0, 0, time.Local)
	nextDay := time.Date(2026, 8, 27, 0, 1, 0, 0, time.Local)

	if !SameDay(morning, night) {
		t.Error("expected same day for morning and night of one date")
	}
	if SameDay(night, nextDay) {
		t.Error("expected different days across midnight")
	}
}

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"07:00", 420, false},
		{"18:30", 1110, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"7am", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeToMinutes(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeToMinutes(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeToMinutes(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-08-26")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if got.Location() != time.Local {
		t.Error("expected local timezone")
	}
	if got.Hour() != 0 {
		t.Error("expected midnight")
	}

	if _, err := ParseDate("08/26/2026"); err == nil {
		t.Error("expected error for wrong date format")
	}
}

func TestValidateTimeFormat(t *testing.T) {
	if !ValidateTimeFormat("09:15") {
		t.Error("expected 09:15 to validate")
	}
	if ValidateTimeFormat("9:15pm") {
		t.Error("expected 9:15pm to fail validation")
	}
}
