package adhan

import (
	"fmt"
	"time"
)

// DateLayout is the textual form of a DateComponents.
const DateLayout = "2006-01-02"

// DateComponents is a proleptic Gregorian calendar date with no time of day.
type DateComponents struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDateComponents returns the date, normalizing out of range months and days
// the way time.Date does.
func NewDateComponents(year int, month time.Month, day int) DateComponents {
	return DateFromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateFromTime returns the calendar date of t in t's own location.
func DateFromTime(t time.Time) DateComponents {
	y, m, d := t.Date()
	return DateComponents{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (DateComponents, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return DateComponents{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return DateFromTime(t), nil
}

// Time returns midnight UTC at the start of the date.
func (d DateComponents) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (earlier for negative n).
func (d DateComponents) AddDays(n int) DateComponents {
	return DateFromTime(d.Time().AddDate(0, 0, n))
}

// DayOfYear returns the ordinal day, starting at 1 for January 1.
func (d DateComponents) DayOfYear() int {
	return d.Time().YearDay()
}

func (d DateComponents) String() string {
	return d.Time().Format(DateLayout)
}
