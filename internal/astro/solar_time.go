package astro

import "math"

// sunriseAltitude is the altitude of the sun's center at sunrise and sunset,
// accounting for atmospheric refraction and the radius of the solar disk.
const sunriseAltitude = -50.0 / 60.0

// SolarTime holds the solar events for one calendar date at one place. Event
// times are fractional hours UT relative to midnight of that date; NaN means
// the event does not happen on that date.
type SolarTime struct {
	Transit float64
	Sunrise float64
	Sunset  float64

	latitude          float64
	longitude         float64
	approxTransit     float64
	prev, solar, next SolarCoordinates
}

// NewSolarTime computes transit, sunrise and sunset for the given date at the
// given latitude and longitude (degrees, east positive).
func NewSolarTime(year, month, day int, latitude, longitude float64) *SolarTime {
	jd := JulianDay(year, month, day, 0)

	st := &SolarTime{
		latitude:  latitude,
		longitude: longitude,
		prev:      NewSolarCoordinates(jd - 1),
		solar:     NewSolarCoordinates(jd),
		next:      NewSolarCoordinates(jd + 1),
	}

	st.approxTransit = ApproximateTransit(longitude, st.solar.ApparentSiderealTime, st.solar.RightAscension)
	st.Transit = CorrectedTransit(st.approxTransit, longitude, st.solar.ApparentSiderealTime,
		st.solar.RightAscension, st.prev.RightAscension, st.next.RightAscension)
	st.Sunrise = st.HourAngle(sunriseAltitude, false)
	st.Sunset = st.HourAngle(sunriseAltitude, true)
	return st
}

// HourAngle returns the time, in hours UT, at which the sun reaches the given
// altitude before or after transit. Negative angles are below the horizon.
func (st *SolarTime) HourAngle(angle float64, afterTransit bool) float64 {
	return CorrectedHourAngle(st.approxTransit, angle, st.latitude, st.longitude, afterTransit,
		st.solar.ApparentSiderealTime,
		st.solar.RightAscension, st.prev.RightAscension, st.next.RightAscension,
		st.solar.Declination, st.prev.Declination, st.next.Declination)
}

// Afternoon returns the time, in hours UT, at which the shadow of an object is
// shadowLength times its height plus its shadow at noon. This defines Asr.
func (st *SolarTime) Afternoon(shadowLength float64) float64 {
	tangent := math.Abs(st.latitude - st.solar.Declination)
	inverse := shadowLength + math.Tan(DegreesToRadians(tangent))
	angle := RadiansToDegrees(math.Atan(1.0 / inverse))
	return st.HourAngle(angle, true)
}

// Solar returns the sun's coordinates at 0h UT of the date.
func (st *SolarTime) Solar() SolarCoordinates {
	return st.solar
}
