package adhan

import (
	"math"
	"time"

	"github.com/smokyabdulrahman/adhan/internal/astro"
)

// Seasonal twilight coefficients. Each entry k becomes 75 + k/55*|latitude|
// minutes at the four anchor points of the year.
var (
	morningCoefficients = [4]float64{28.65, 19.44, 32.74, 48.10}
	eveningCoefficients = [4]float64{25.60, 2.050, -9.210, 6.140}
)

// seasonAdjustedMorningTwilight returns the Fajr safe bound: sunrise minus a
// seasonal number of minutes.
func seasonAdjustedMorningTwilight(latitude float64, date DateComponents, sunrise time.Time) time.Time {
	minutes := seasonalMinutes(morningCoefficients, latitude, daysSinceSolstice(date.DayOfYear(), date.Year, latitude))
	return sunrise.Add(-minutesToSeconds(minutes))
}

// seasonAdjustedEveningTwilight returns the Isha safe bound: sunset plus a
// seasonal number of minutes.
func seasonAdjustedEveningTwilight(latitude float64, date DateComponents, sunset time.Time) time.Time {
	minutes := seasonalMinutes(eveningCoefficients, latitude, daysSinceSolstice(date.DayOfYear(), date.Year, latitude))
	return sunset.Add(minutesToSeconds(minutes))
}

// seasonalMinutes interpolates linearly between the anchors a, b, c, d, c, b, a
// over segments of 91, 46, 46, 46, 46 and 91 days.
func seasonalMinutes(k [4]float64, latitude float64, dyy int) float64 {
	lat := math.Abs(latitude)
	a := 75 + k[0]/55*lat
	b := 75 + k[1]/55*lat
	c := 75 + k[2]/55*lat
	d := 75 + k[3]/55*lat

	day := float64(dyy)
	switch {
	case dyy < 91:
		return a + (b-a)/91*day
	case dyy < 137:
		return b + (c-b)/46*(day-91)
	case dyy < 183:
		return c + (d-c)/46*(day-137)
	case dyy < 229:
		return d + (c-d)/46*(day-183)
	case dyy < 275:
		return c + (b-c)/46*(day-229)
	default:
		return b + (a-b)/91*(day-275)
	}
}

// daysSinceSolstice counts from the winter solstice of the observer's
// hemisphere, wrapped into [0, days in year).
func daysSinceSolstice(dayOfYear, year int, latitude float64) int {
	daysInYear := astro.DaysInYear(year)

	if latitude >= 0 {
		dyy := dayOfYear + 10
		if dyy >= daysInYear {
			dyy -= daysInYear
		}
		return dyy
	}

	southernOffset := 172
	if astro.IsLeapYear(year) {
		southernOffset = 173
	}
	dyy := dayOfYear - southernOffset
	if dyy < 0 {
		dyy += daysInYear
	}
	return dyy
}

// minutesToSeconds converts fractional minutes to whole seconds, rounding
// halves up.
func minutesToSeconds(minutes float64) time.Duration {
	return time.Duration(math.Floor(minutes*60+0.5)) * time.Second
}
