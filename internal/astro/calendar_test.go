package astro

import (
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// ---------------------------------------------------------------------------
// JulianDay / JulianCentury
// ---------------------------------------------------------------------------

func TestJulianDay_KnownValues(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		hours            float64
		want             float64
	}{
		{"J2000 epoch", 2000, 1, 1, 12, 2451545.0},
		{"1987 Jan 27", 1987, 1, 27, 0, 2446822.5},
		{"1988 Jun 19 noon", 1988, 6, 19, 12, 2447332.0},
		{"1900 Jan 1", 1900, 1, 1, 0, 2415020.5},
		{"1600 Jan 1", 1600, 1, 1, 0, 2305447.5},
		{"1600 Dec 31", 1600, 12, 31, 0, 2305812.5},
		{"1992 Oct 13", 1992, 10, 13, 0, 2448908.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDay(tt.year, tt.month, tt.day, tt.hours)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("JulianDay(%d, %d, %d, %v) = %f, want %f",
					tt.year, tt.month, tt.day, tt.hours, got, tt.want)
			}
		})
	}
}

func TestJulianDay_MatchesMeeusLibrary(t *testing.T) {
	start := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 365*40; i += 37 {
		d := start.AddDate(0, 0, i)
		hours := float64(i%24) + 0.25

		got := JulianDay(d.Year(), int(d.Month()), d.Day(), hours)
		want := julian.CalendarGregorianToJD(d.Year(), int(d.Month()), float64(d.Day())+hours/24)
		if math.Abs(got-want) > 1e-6 {
			t.Fatalf("JulianDay(%s, %v) = %f, meeus = %f", d.Format("2006-01-02"), hours, got, want)
		}
	}
}

func TestJulianDayFromTime(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	tm := time.Date(2000, 1, 1, 15, 0, 0, 0, loc) // 12:00 UTC

	if got := JulianDayFromTime(tm); math.Abs(got-J2000) > 1e-9 {
		t.Errorf("JulianDayFromTime() = %f, want %f", got, J2000)
	}
}

func TestJulianCentury(t *testing.T) {
	if got := JulianCentury(J2000); got != 0 {
		t.Errorf("JulianCentury(J2000) = %v, want 0", got)
	}
	if got := JulianCentury(J2000 + 36525); got != 1 {
		t.Errorf("JulianCentury(J2000+36525) = %v, want 1", got)
	}
}

// ---------------------------------------------------------------------------
// Leap years
// ---------------------------------------------------------------------------

func TestIsLeapYear(t *testing.T) {
	for year := 1582; year <= 2500; year++ {
		if got, want := IsLeapYear(year), julian.LeapYearGregorian(year); got != want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestDaysInYear(t *testing.T) {
	tests := map[int]int{2015: 365, 2016: 366, 1900: 365, 2000: 366}
	for year, want := range tests {
		if got := DaysInYear(year); got != want {
			t.Errorf("DaysInYear(%d) = %d, want %d", year, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// RoundedMinute
// ---------------------------------------------------------------------------

func TestRoundedMinute(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"45 seconds rounds up",
			time.Date(2026, 2, 28, 5, 17, 45, 0, time.UTC),
			time.Date(2026, 2, 28, 5, 18, 0, 0, time.UTC),
		},
		{
			"29 seconds stays",
			time.Date(2026, 2, 28, 5, 17, 29, 0, time.UTC),
			time.Date(2026, 2, 28, 5, 17, 0, 0, time.UTC),
		},
		{
			"exactly 30 seconds rounds up",
			time.Date(2026, 2, 28, 5, 17, 30, 0, time.UTC),
			time.Date(2026, 2, 28, 5, 18, 0, 0, time.UTC),
		},
		{
			"29.9 seconds stays",
			time.Date(2026, 2, 28, 5, 17, 29, 900_000_000, time.UTC),
			time.Date(2026, 2, 28, 5, 17, 0, 0, time.UTC),
		},
		{
			"carries into the hour",
			time.Date(2026, 2, 28, 5, 59, 31, 0, time.UTC),
			time.Date(2026, 2, 28, 6, 0, 0, 0, time.UTC),
		},
		{
			"carries into the next day",
			time.Date(2026, 12, 31, 23, 59, 50, 0, time.UTC),
			time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"non-UTC input is normalized",
			time.Date(2026, 2, 28, 8, 17, 45, 0, time.FixedZone("AST", 3*3600)),
			time.Date(2026, 2, 28, 5, 18, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundedMinute(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("RoundedMinute(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("RoundedMinute location = %v, want UTC", got.Location())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// HoursToTime
// ---------------------------------------------------------------------------

func TestHoursToTime(t *testing.T) {
	tests := []struct {
		name   string
		hours  float64
		want   time.Time
		wantOK bool
	}{
		{"morning", 5.5, time.Date(2026, 3, 1, 5, 30, 0, 0, time.UTC), true},
		{"seconds are truncated", 12 + 1.0/60 + 59.9/3600, time.Date(2026, 3, 1, 12, 1, 59, 0, time.UTC), true},
		{"negative lands on previous day", -0.5, time.Date(2026, 2, 28, 23, 30, 0, 0, time.UTC), true},
		{"past 24 lands on next day", 25.25, time.Date(2026, 3, 2, 1, 15, 0, 0, time.UTC), true},
		{"NaN is absent", math.NaN(), time.Time{}, false},
		{"Inf is absent", math.Inf(1), time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HoursToTime(2026, time.March, 1, tt.hours)
			if ok != tt.wantOK {
				t.Fatalf("HoursToTime(%v) ok = %v, want %v", tt.hours, ok, tt.wantOK)
			}
			if !got.Equal(tt.want) {
				t.Errorf("HoursToTime(%v) = %v, want %v", tt.hours, got, tt.want)
			}
		})
	}
}
