// Package astro implements the low-precision solar position algorithms from
// Jean Meeus' "Astronomical Algorithms" that the prayer time engine is built on.
//
// All angles are in degrees unless a name says otherwise. Times of day are
// fractional hours in UT. Values that cannot be computed for a given date and
// place (the sun never reaches the requested altitude) are reported as NaN and
// are expected to propagate to the caller rather than cause a failure.
package astro

import (
	"math"
	"time"
)

// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00 TT).
const J2000 = 2451545.0

// JulianDay returns the Julian Day for a proleptic Gregorian date and a
// fractional number of hours past midnight UT.
func JulianDay(year, month, day int, hours float64) float64 {
	// Astronomical Algorithms p. 60.
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)

	i0 := math.Floor(365.25 * float64(y+4716))
	i1 := math.Floor(30.6001 * float64(m+1))
	return i0 + i1 + float64(day) + hours/24 + b - 1524.5
}

// JulianDayFromTime returns the Julian Day of t, interpreted in UTC.
func JulianDayFromTime(t time.Time) float64 {
	t = t.UTC()
	hours := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
	return JulianDay(t.Year(), int(t.Month()), t.Day(), hours)
}

// JulianCentury returns the number of Julian centuries since J2000.0.
func JulianCentury(jd float64) float64 {
	// Astronomical Algorithms p. 163.
	return (jd - J2000) / 36525
}

// IsLeapYear reports whether year has 366 days in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// RoundedMinute rounds t to the nearest minute in UTC. Thirty seconds or more
// rounds up, carrying into the hour and day as needed. Sub-second precision is
// discarded before rounding.
func RoundedMinute(t time.Time) time.Time {
	t = t.UTC()
	minute := t.Minute()
	if t.Second() >= 30 {
		minute++
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minute, 0, 0, time.UTC)
}

// HoursToTime converts fractional hours past midnight UT on the given date into
// an instant truncated to whole seconds. Hours outside [0, 24) land on the
// previous or following day. ok is false when hours is NaN or infinite.
func HoursToTime(year int, month time.Month, day int, hours float64) (t time.Time, ok bool) {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return time.Time{}, false
	}

	h := math.Floor(hours)
	m := math.Floor((hours - h) * 60)
	s := math.Floor((hours - h - m/60) * 3600)
	return time.Date(year, month, day, int(h), int(m), int(s), 0, time.UTC), true
}
