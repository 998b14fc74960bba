package adhan

import (
	"math"
	"time"

	"github.com/smokyabdulrahman/adhan/internal/astro"
)

// PrayerTimes is the schedule for one date and place. It is immutable once
// built. Either all six times are defined or none are.
type PrayerTimes struct {
	Coordinates Coordinates
	Date        DateComponents
	Params      CalculationParameters

	times   [6]time.Time
	defined bool
}

// NewPrayerTimes computes the schedule for date at coords. The returned error
// is non-nil only for invalid coordinates or parameters; a date on which the
// sun does not rise, set, or reach a needed altitude yields a schedule whose
// Defined method reports false.
func NewPrayerTimes(coords Coordinates, date DateComponents, params CalculationParameters) (*PrayerTimes, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	pt := &PrayerTimes{Coordinates: coords, Date: date, Params: params}

	s, ok := computeSchedule(coords, date, params)
	if !ok {
		return pt, nil
	}

	adjustments := params.Adjustments.Add(params.MethodAdjustments)
	for i, p := range Prayers() {
		offset := time.Duration(adjustments.For(p)) * time.Minute
		pt.times[i] = astro.RoundedMinute(s.times[i].Add(offset))
	}
	pt.defined = true
	return pt, nil
}

// Defined reports whether all six times exist for this date and place.
func (pt *PrayerTimes) Defined() bool { return pt.defined }

// TimeForPrayer returns the UTC instant of p. ok is false for None or when the
// schedule is undefined.
func (pt *PrayerTimes) TimeForPrayer(p Prayer) (t time.Time, ok bool) {
	if !pt.defined || p < Fajr || p > Isha {
		return time.Time{}, false
	}
	return pt.times[p-Fajr], true
}

func (pt *PrayerTimes) Fajr() (time.Time, bool)    { return pt.TimeForPrayer(Fajr) }
func (pt *PrayerTimes) Sunrise() (time.Time, bool) { return pt.TimeForPrayer(Sunrise) }
func (pt *PrayerTimes) Dhuhr() (time.Time, bool)   { return pt.TimeForPrayer(Dhuhr) }
func (pt *PrayerTimes) Asr() (time.Time, bool)     { return pt.TimeForPrayer(Asr) }
func (pt *PrayerTimes) Maghrib() (time.Time, bool) { return pt.TimeForPrayer(Maghrib) }
func (pt *PrayerTimes) Isha() (time.Time, bool)    { return pt.TimeForPrayer(Isha) }

// CurrentPrayer returns the latest prayer whose time is at or before now, or
// None when now is before Fajr. ok is false when the schedule is undefined.
func (pt *PrayerTimes) CurrentPrayer(now time.Time) (p Prayer, ok bool) {
	if !pt.defined {
		return None, false
	}
	current := None
	for i, q := range Prayers() {
		if now.Before(pt.times[i]) {
			break
		}
		current = q
	}
	return current, true
}

// NextPrayer returns the first prayer whose time is after now, or None when
// Isha has passed. ok is false when the schedule is undefined.
func (pt *PrayerTimes) NextPrayer(now time.Time) (p Prayer, ok bool) {
	if !pt.defined {
		return None, false
	}
	for i, q := range Prayers() {
		if now.Before(pt.times[i]) {
			return q, true
		}
	}
	return None, true
}

// schedule holds the six unadjusted, unrounded times in Prayers order along
// with the night length and the high latitude bounds applied to Fajr and Isha.
type schedule struct {
	times    [6]time.Time
	night    time.Duration
	safeFajr time.Time
	safeIsha time.Time
}

func (s *schedule) set(p Prayer, t time.Time) { s.times[p-Fajr] = t }
func (s *schedule) get(p Prayer) time.Time    { return s.times[p-Fajr] }

// computeSchedule derives the raw prayer times. ok is false when any load
// bearing solar event is missing.
func computeSchedule(coords Coordinates, date DateComponents, params CalculationParameters) (s schedule, ok bool) {
	tomorrowDate := date.AddDays(1)
	today := astro.NewSolarTime(date.Year, int(date.Month), date.Day, coords.Latitude, coords.Longitude)
	tomorrow := astro.NewSolarTime(tomorrowDate.Year, int(tomorrowDate.Month), tomorrowDate.Day,
		coords.Latitude, coords.Longitude)

	at := func(hours float64) (time.Time, bool) {
		return astro.HoursToTime(date.Year, date.Month, date.Day, hours)
	}

	dhuhr, dhuhrOK := at(today.Transit)
	sunrise, sunriseOK := at(today.Sunrise)
	maghrib, maghribOK := at(today.Sunset)
	tomorrowSunrise, tomorrowOK := astro.HoursToTime(tomorrowDate.Year, tomorrowDate.Month, tomorrowDate.Day,
		tomorrow.Sunrise)
	if !dhuhrOK || !sunriseOK || !maghribOK || !tomorrowOK {
		return schedule{}, false
	}

	asr, asrOK := at(today.Afternoon(params.Madhab.ShadowLength()))
	if !asrOK {
		return schedule{}, false
	}

	s.set(Sunrise, sunrise)
	s.set(Dhuhr, dhuhr)
	s.set(Asr, asr)
	s.set(Maghrib, maghrib)

	night := tomorrowSunrise.Sub(maghrib)
	s.night = night
	moonsightingOverride := params.Method == MoonsightingCommittee && math.Abs(coords.Latitude) >= 55
	fajrPortion, ishaPortion, portioned := params.HighLatitudeRule.nightPortions(params.FajrAngle, params.IshaAngle)

	fajr, fajrOK := at(today.HourAngle(-params.FajrAngle, false))
	if moonsightingOverride {
		fajr, fajrOK = sunrise.Add(-night/7), true
	}
	if portioned {
		s.safeFajr = sunrise.Add(-nightFraction(night, fajrPortion))
	} else {
		s.safeFajr = seasonAdjustedMorningTwilight(coords.Latitude, date, sunrise)
	}
	if !fajrOK || fajr.Before(s.safeFajr) {
		fajr = s.safeFajr
	}
	s.set(Fajr, fajr)

	if params.IshaInterval > 0 {
		s.set(Isha, maghrib.Add(time.Duration(params.IshaInterval)*time.Minute))
		return s, true
	}

	isha, ishaOK := at(today.HourAngle(-params.IshaAngle, true))
	if moonsightingOverride {
		isha, ishaOK = maghrib.Add(night/7), true
	}
	if portioned {
		s.safeIsha = maghrib.Add(nightFraction(night, ishaPortion))
	} else {
		s.safeIsha = seasonAdjustedEveningTwilight(coords.Latitude, date, maghrib)
	}
	if !ishaOK || isha.After(s.safeIsha) {
		isha = s.safeIsha
	}
	s.set(Isha, isha)

	return s, true
}

// nightFraction returns portion of night truncated to whole seconds.
func nightFraction(night time.Duration, portion float64) time.Duration {
	return time.Duration(night.Seconds()*portion) * time.Second
}
