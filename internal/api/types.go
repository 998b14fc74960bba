package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/smokyabdulrahman/adhan/internal/adhan"
	"github.com/smokyabdulrahman/adhan/internal/qibla"
)

// Response is the envelope every endpoint returns, modelled on the Al Adhan
// API: {"code": 200, "status": "OK", "data": ...}. Errors carry the message
// as data.
type Response[T any] struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   T      `json:"data"`
}

func newResponse[T any](code int, data T) Response[T] {
	return Response[T]{Code: code, Status: http.StatusText(code), Data: data}
}

// Data holds one day's timings, date info and calculation metadata.
type Data struct {
	Defined bool     `json:"defined"`
	Timings Timings  `json:"timings"`
	Date    DateInfo `json:"date"`
	Meta    Meta     `json:"meta"`
}

// Timings contains every event as an HH:MM string in the requested time
// zone. All fields are empty when the schedule is undefined; the night
// markers are also empty when the next day has no Fajr.
type Timings struct {
	Fajr      string `json:"Fajr,omitempty"`
	Sunrise   string `json:"Sunrise,omitempty"`
	Dhuhr     string `json:"Dhuhr,omitempty"`
	Asr       string `json:"Asr,omitempty"`
	Maghrib   string `json:"Maghrib,omitempty"`
	Isha      string `json:"Isha,omitempty"`
	Midnight  string `json:"Midnight,omitempty"`
	Lastthird string `json:"Lastthird,omitempty"`
}

// DateInfo contains date representations.
type DateInfo struct {
	Readable  string        `json:"readable"`  // e.g. "12 Jul 2015"
	Timestamp string        `json:"timestamp"` // unix seconds of local midnight
	Gregorian GregorianDate `json:"gregorian"`
}

// GregorianDate represents the calendar date of a schedule.
type GregorianDate struct {
	Date    string         `json:"date"` // e.g. "12-07-2015"
	Day     string         `json:"day"`
	Weekday GregorianDay   `json:"weekday"`
	Month   GregorianMonth `json:"month"`
	Year    string         `json:"year"`
}

// GregorianDay contains the weekday name.
type GregorianDay struct {
	En string `json:"en"` // e.g. "Sunday"
}

// GregorianMonth contains the month details.
type GregorianMonth struct {
	Number int    `json:"number"`
	En     string `json:"en"` // e.g. "July"
}

// Meta describes the inputs a schedule was computed from.
type Meta struct {
	Latitude         float64    `json:"latitude"`
	Longitude        float64    `json:"longitude"`
	Timezone         string     `json:"timezone"`
	Method           MethodInfo `json:"method"`
	Madhab           string     `json:"madhab"`
	HighLatitudeRule string     `json:"highLatitudeRule"`
	Adjustments      string     `json:"adjustments,omitempty"`
}

// MethodInfo identifies the calculation method used.
type MethodInfo struct {
	ID     int          `json:"id"`
	Key    string       `json:"key"`
	Name   string       `json:"name"`
	Params MethodParams `json:"params"`
}

// MethodParams are the twilight settings of a method.
type MethodParams struct {
	Fajr         float64 `json:"Fajr"`
	Isha         float64 `json:"Isha,omitempty"`
	IshaInterval int     `json:"IshaInterval,omitempty"` // minutes after Maghrib
}

// SunnahData holds the night markers following a date's Maghrib.
type SunnahData struct {
	Defined             bool     `json:"defined"`
	MiddleOfTheNight    string   `json:"middleOfTheNight,omitempty"`
	LastThirdOfTheNight string   `json:"lastThirdOfTheNight,omitempty"`
	Date                DateInfo `json:"date"`
	Meta                Meta     `json:"meta"`
}

// QiblaData is the bearing to the Kaaba from a location.
type QiblaData struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Direction float64 `json:"direction"` // degrees clockwise from true north
	Compass   string  `json:"compass"`
}

const timingLayout = "15:04"

func newData(pt *adhan.PrayerTimes, loc *time.Location) Data {
	d := Data{
		Defined: pt.Defined(),
		Date:    newDateInfo(pt.Date, loc),
		Meta:    newMeta(pt.Coordinates, pt.Params, loc),
	}
	if !d.Defined {
		return d
	}

	format := func(p adhan.Prayer) string {
		t, _ := pt.TimeForPrayer(p)
		return t.In(loc).Format(timingLayout)
	}
	d.Timings = Timings{
		Fajr:    format(adhan.Fajr),
		Sunrise: format(adhan.Sunrise),
		Dhuhr:   format(adhan.Dhuhr),
		Asr:     format(adhan.Asr),
		Maghrib: format(adhan.Maghrib),
		Isha:    format(adhan.Isha),
	}
	if sunnah, ok := adhan.NewSunnahTimes(pt); ok {
		d.Timings.Midnight = sunnah.MiddleOfTheNight.In(loc).Format(timingLayout)
		d.Timings.Lastthird = sunnah.LastThirdOfTheNight.In(loc).Format(timingLayout)
	}
	return d
}

func newSunnahData(pt *adhan.PrayerTimes, loc *time.Location) SunnahData {
	d := SunnahData{
		Date: newDateInfo(pt.Date, loc),
		Meta: newMeta(pt.Coordinates, pt.Params, loc),
	}
	sunnah, ok := adhan.NewSunnahTimes(pt)
	if !ok {
		return d
	}
	d.Defined = true
	d.MiddleOfTheNight = sunnah.MiddleOfTheNight.In(loc).Format(timingLayout)
	d.LastThirdOfTheNight = sunnah.LastThirdOfTheNight.In(loc).Format(timingLayout)
	return d
}

func newDateInfo(date adhan.DateComponents, loc *time.Location) DateInfo {
	midnight := time.Date(date.Year, date.Month, date.Day, 0, 0, 0, 0, loc)
	return DateInfo{
		Readable:  midnight.Format("02 Jan 2006"),
		Timestamp: strconv.FormatInt(midnight.Unix(), 10),
		Gregorian: GregorianDate{
			Date:    midnight.Format("02-01-2006"),
			Day:     midnight.Format("02"),
			Weekday: GregorianDay{En: midnight.Weekday().String()},
			Month:   GregorianMonth{Number: int(date.Month), En: date.Month.String()},
			Year:    strconv.Itoa(date.Year),
		},
	}
}

func newMeta(coords adhan.Coordinates, params adhan.CalculationParameters, loc *time.Location) Meta {
	return Meta{
		Latitude:         coords.Latitude,
		Longitude:        coords.Longitude,
		Timezone:         loc.String(),
		Method:           newMethodInfo(params),
		Madhab:           params.Madhab.String(),
		HighLatitudeRule: params.HighLatitudeRule.String(),
		Adjustments:      params.Adjustments.String(),
	}
}

func newMethodInfo(params adhan.CalculationParameters) MethodInfo {
	m := params.Method
	info := MethodInfo{
		ID:   m.ID(),
		Key:  m.String(),
		Name: m.Name(),
		Params: MethodParams{
			Fajr:         params.FajrAngle,
			IshaInterval: params.IshaInterval,
		},
	}
	if params.IshaInterval <= 0 {
		info.Params.Isha = params.IshaAngle
	}
	return info
}

func newQiblaData(coords adhan.Coordinates) QiblaData {
	dir := qibla.Direction(coords)
	return QiblaData{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		Direction: dir,
		Compass:   qibla.CompassPoint(dir),
	}
}
