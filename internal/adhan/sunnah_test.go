package adhan

import (
	"testing"
	"time"
)

func TestSunnahBetween(t *testing.T) {
	tests := []struct {
		name          string
		maghrib       time.Time
		fajr          time.Time
		wantMiddle    time.Time
		wantLastThird time.Time
	}{
		{
			"nine hour night",
			time.Date(2024, 3, 11, 20, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 12, 5, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 12, 0, 30, 0, 0, time.UTC),
			time.Date(2024, 3, 12, 2, 0, 0, 0, time.UTC),
		},
		{
			"odd seconds round to the minute",
			time.Date(2024, 3, 11, 20, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 12, 4, 59, 59, 0, time.UTC),
			time.Date(2024, 3, 12, 0, 30, 0, 0, time.UTC),
			time.Date(2024, 3, 12, 2, 0, 0, 0, time.UTC),
		},
		{
			"short summer night",
			time.Date(2024, 6, 21, 21, 45, 0, 0, time.UTC),
			time.Date(2024, 6, 22, 2, 15, 0, 0, time.UTC),
			time.Date(2024, 6, 22, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 22, 0, 45, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunnahBetween(tt.maghrib, tt.fajr)
			if !got.MiddleOfTheNight.Equal(tt.wantMiddle) {
				t.Errorf("MiddleOfTheNight = %v, want %v", got.MiddleOfTheNight, tt.wantMiddle)
			}
			if !got.LastThirdOfTheNight.Equal(tt.wantLastThird) {
				t.Errorf("LastThirdOfTheNight = %v, want %v", got.LastThirdOfTheNight, tt.wantLastThird)
			}
		})
	}
}

func TestNewSunnahTimes_Ordering(t *testing.T) {
	places := []Coordinates{raleigh, makkah, {Latitude: -33.9249, Longitude: 18.4241}, {Latitude: 51.5074, Longitude: -0.1278}}
	start := NewDateComponents(2024, time.January, 1)

	for _, coords := range places {
		for day := 0; day < 366; day += 30 {
			date := start.AddDays(day)
			today := mustPrayerTimes(t, coords, date, MuslimWorldLeague.Parameters())
			tomorrow := mustPrayerTimes(t, coords, date.AddDays(1), MuslimWorldLeague.Parameters())

			sunnah, ok := NewSunnahTimes(today)
			if !ok {
				t.Fatalf("%v %v: NewSunnahTimes() undefined", coords, date)
			}

			maghrib := mustTime(t, today, Maghrib)
			nextFajr := mustTime(t, tomorrow, Fajr)
			if !(maghrib.Before(sunnah.MiddleOfTheNight) &&
				sunnah.MiddleOfTheNight.Before(sunnah.LastThirdOfTheNight) &&
				sunnah.LastThirdOfTheNight.Before(nextFajr)) {
				t.Errorf("%v %v: want maghrib %v < middle %v < last third %v < fajr %v", coords, date,
					maghrib, sunnah.MiddleOfTheNight, sunnah.LastThirdOfTheNight, nextFajr)
			}

			if want := SunnahBetween(maghrib, nextFajr); sunnah != want {
				t.Errorf("%v %v: NewSunnahTimes() = %+v, want %+v", coords, date, sunnah, want)
			}
		}
	}
}
