package astro

import "math"

// SolarCoordinates holds the sun's equatorial position for one Julian Day.
type SolarCoordinates struct {
	// Declination in degrees.
	Declination float64
	// RightAscension in degrees, in [0, 360).
	RightAscension float64
	// ApparentSiderealTime at Greenwich, in degrees.
	ApparentSiderealTime float64
}

// NewSolarCoordinates computes the sun's position at the given Julian Day.
func NewSolarCoordinates(jd float64) SolarCoordinates {
	T := JulianCentury(jd)
	L0 := MeanSolarLongitude(T)
	Lp := MeanLunarLongitude(T)
	omega := AscendingLunarNodeLongitude(T)
	lambda := DegreesToRadians(ApparentSolarLongitude(T, L0))

	theta0 := MeanSiderealTime(T)
	dPsi := NutationInLongitude(T, L0, Lp, omega)
	dEpsilon := NutationInObliquity(T, L0, Lp, omega)

	epsilon0 := MeanObliquityOfTheEcliptic(T)
	epsilonApp := DegreesToRadians(ApparentObliquityOfTheEcliptic(T, epsilon0))

	return SolarCoordinates{
		// Astronomical Algorithms p. 165.
		Declination: RadiansToDegrees(math.Asin(math.Sin(epsilonApp) * math.Sin(lambda))),
		RightAscension: UnwindAngle(RadiansToDegrees(
			math.Atan2(math.Cos(epsilonApp)*math.Sin(lambda), math.Cos(lambda)))),
		// Astronomical Algorithms p. 88.
		ApparentSiderealTime: theta0 + (dPsi*3600*cosDeg(epsilon0+dEpsilon))/3600,
	}
}
