package adhan

import (
	"time"

	"github.com/smokyabdulrahman/adhan/internal/astro"
)

// SunnahTimes are the recommended night markers between Maghrib and the
// following Fajr.
type SunnahTimes struct {
	MiddleOfTheNight    time.Time `json:"middle_of_the_night"`
	LastThirdOfTheNight time.Time `json:"last_third_of_the_night"`
}

// NewSunnahTimes computes the night markers following the schedule's
// Maghrib, using the next day's Fajr for the same place and parameters. ok is
// false when either day's schedule is undefined.
func NewSunnahTimes(today *PrayerTimes) (SunnahTimes, bool) {
	maghrib, ok := today.Maghrib()
	if !ok {
		return SunnahTimes{}, false
	}

	tomorrow, err := NewPrayerTimes(today.Coordinates, today.Date.AddDays(1), today.Params)
	if err != nil {
		return SunnahTimes{}, false
	}
	fajr, ok := tomorrow.Fajr()
	if !ok {
		return SunnahTimes{}, false
	}
	return SunnahBetween(maghrib, fajr), true
}

// SunnahBetween returns the middle and the start of the last third of the
// night from maghrib to nextFajr, rounded to the minute.
func SunnahBetween(maghrib, nextFajr time.Time) SunnahTimes {
	night := int64(nextFajr.Sub(maghrib) / time.Second)
	return SunnahTimes{
		MiddleOfTheNight:    astro.RoundedMinute(maghrib.Add(time.Duration(night/2) * time.Second)),
		LastThirdOfTheNight: astro.RoundedMinute(maghrib.Add(time.Duration(2*night/3) * time.Second)),
	}
}
