package utils

import (
	"math"
	"testing"
	"time"
)

func TestAgeInDays(t *testing.T) {
	cases := []struct {
		name     string
		birth    time.Time
		measured time.Time
		want     int
	}{
		{"same day", date(2024, 1, 1), date(2024, 1, 1).Add(23 * time.Hour), 0},
		{"one week", date(2024, 1, 1), date(2024, 1, 8), 7},
		{"leap year", date(2024, 2, 1), date(2024, 3, 1), 29},
		{"non leap year", date(2023, 2, 1), date(2023, 3, 1), 28},
		{"one year over leap day", date(2024, 1, 1), date(2025, 1, 1), 366},
		{"time of day ignored", date(2024, 1, 1).Add(22 * time.Hour), date(2024, 1, 2).Add(time.Hour), 1},
		{"before birth", date(2024, 1, 10), date(2024, 1, 1), -9},
	}
	for _, c := range cases {
		if got := AgeInDays(c.birth, c.measured); got != c.want {
			t.Fatalf("%s: expected %d, got %d", c.name, c.want, got)
		}
	}
}

func TestAgeInDaysUsesUTCDates(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	// 2024-01-02 03:00 in UTC+9 is still 2024-01-01 in UTC
	measured := time.Date(2024, 1, 2, 3, 0, 0, 0, loc)
	if got := AgeInDays(date(2024, 1, 1), measured); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		in   float64
		prec int
		want float64
	}{
		{49.99999, 2, 50},
		{12.345678, 2, 12.35},
		{-12.345678, 2, -12.35},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{1.23456, 3, 1.235},
	}
	for _, c := range cases {
		if got := FormatFloat(c.in, c.prec); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("FormatFloat(%v, %d): expected %v, got %v", c.in, c.prec, c.want, got)
		}
	}

	if got := FormatFloat(math.NaN(), 2); !math.IsNaN(got) {
		t.Fatalf("expected NaN, got %v", got)
	}
	if got := FormatFloat(math.Inf(1), 2); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf, got %v", got)
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
