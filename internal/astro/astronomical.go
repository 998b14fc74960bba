package astro

import "math"

// siderealRate is the advance of sidereal time in degrees per solar day.
const siderealRate = 360.985647

// MeanSolarLongitude returns the geometric mean longitude of the sun.
func MeanSolarLongitude(T float64) float64 {
	// Astronomical Algorithms p. 163.
	L0 := 280.4664567 + 36000.76983*T + 0.0003032*T*T
	return UnwindAngle(L0)
}

// MeanLunarLongitude returns the geometric mean longitude of the moon.
func MeanLunarLongitude(T float64) float64 {
	// Astronomical Algorithms p. 144.
	Lp := 218.3165 + 481267.8813*T
	return UnwindAngle(Lp)
}

// AscendingLunarNodeLongitude returns the longitude of the moon's ascending node.
func AscendingLunarNodeLongitude(T float64) float64 {
	// Astronomical Algorithms p. 144.
	omega := 125.04452 - 1934.136261*T + 0.0020708*T*T + T*T*T/450000
	return UnwindAngle(omega)
}

// MeanSolarAnomaly returns the mean anomaly of the sun.
func MeanSolarAnomaly(T float64) float64 {
	// Astronomical Algorithms p. 163.
	M := 357.52911 + 35999.05029*T - 0.0001537*T*T
	return UnwindAngle(M)
}

// SolarEquationOfTheCenter returns the sun's equation of the center for the
// julian century T and mean anomaly M.
func SolarEquationOfTheCenter(T, M float64) float64 {
	// Astronomical Algorithms p. 164.
	mrad := DegreesToRadians(M)
	term1 := (1.914602 - 0.004817*T - 0.000014*T*T) * math.Sin(mrad)
	term2 := (0.019993 - 0.000101*T) * math.Sin(2*mrad)
	term3 := 0.000289 * math.Sin(3*mrad)
	return term1 + term2 + term3
}

// ApparentSolarLongitude returns the apparent longitude of the sun, corrected
// for nutation and aberration.
func ApparentSolarLongitude(T, L0 float64) float64 {
	// Astronomical Algorithms p. 164.
	longitude := L0 + SolarEquationOfTheCenter(T, MeanSolarAnomaly(T))
	omega := 125.04 - 1934.136*T
	lambda := longitude - 0.00569 - 0.00478*sinDeg(omega)
	return UnwindAngle(lambda)
}

// MeanObliquityOfTheEcliptic returns the mean obliquity of the ecliptic.
func MeanObliquityOfTheEcliptic(T float64) float64 {
	// Astronomical Algorithms p. 147.
	return 23.439291 - 0.013004167*T - 0.0000001639*T*T + 0.0000005036*T*T*T
}

// ApparentObliquityOfTheEcliptic corrects the mean obliquity epsilon0 for the
// apparent position of the sun.
func ApparentObliquityOfTheEcliptic(T, epsilon0 float64) float64 {
	// Astronomical Algorithms p. 165.
	omega := 125.04 - 1934.136*T
	return epsilon0 + 0.00256*cosDeg(omega)
}

// MeanSiderealTime returns the mean sidereal time at Greenwich.
func MeanSiderealTime(T float64) float64 {
	// Astronomical Algorithms p. 165.
	jd := T*36525 + J2000
	theta := 280.46061837 + 360.98564736629*(jd-J2000) + 0.000387933*T*T - T*T*T/38710000
	return UnwindAngle(theta)
}

// NutationInLongitude returns the nutation in longitude (delta psi).
func NutationInLongitude(T, L0, Lp, omega float64) float64 {
	// Astronomical Algorithms p. 144.
	term1 := (-17.2 / 3600) * sinDeg(omega)
	term2 := (1.32 / 3600) * sinDeg(2*L0)
	term3 := (0.23 / 3600) * sinDeg(2*Lp)
	term4 := (0.21 / 3600) * sinDeg(2*omega)
	return term1 - term2 - term3 + term4
}

// NutationInObliquity returns the nutation in obliquity (delta epsilon).
func NutationInObliquity(T, L0, Lp, omega float64) float64 {
	// Astronomical Algorithms p. 144.
	term1 := (9.2 / 3600) * cosDeg(omega)
	term2 := (0.57 / 3600) * cosDeg(2*L0)
	term3 := (0.10 / 3600) * cosDeg(2*Lp)
	term4 := (0.09 / 3600) * cosDeg(2*omega)
	return term1 + term2 + term3 - term4
}

// AltitudeOfCelestialBody returns the altitude of a body with declination delta
// at local hour angle H, seen from latitude phi.
func AltitudeOfCelestialBody(phi, delta, H float64) float64 {
	// Astronomical Algorithms p. 93.
	term1 := sinDeg(phi) * sinDeg(delta)
	term2 := cosDeg(phi) * cosDeg(delta) * cosDeg(H)
	return RadiansToDegrees(math.Asin(term1 + term2))
}

// ApproximateTransit returns the fraction of the day, in [0, 1), at which a body
// with right ascension alpha2 crosses the meridian of longitude L (east
// positive). theta0 is the apparent sidereal time at 0h UT.
func ApproximateTransit(L, theta0, alpha2 float64) float64 {
	// Astronomical Algorithms p. 102.
	Lw := -L
	return NormalizeWithBound((alpha2+Lw-theta0)/360, 1)
}

// CorrectedTransit refines the approximate transit m0 with a single first
// order correction and returns the time of transit in hours UT.
func CorrectedTransit(m0, L, theta0, alpha2, alpha1, alpha3 float64) float64 {
	// Astronomical Algorithms p. 102.
	Lw := -L
	theta := UnwindAngle(theta0 + siderealRate*m0)
	alpha := UnwindAngle(InterpolateAngles(alpha2, alpha1, alpha3, m0))
	H := ClosestAngle(theta - Lw - alpha)
	dm := H / -360
	return (m0 + dm) * 24
}

// CorrectedHourAngle returns the time, in hours UT, at which the sun reaches
// altitude h0 before (afterTransit false) or after the transit m0. The result
// is NaN when the sun never reaches h0 at this latitude on this day.
//
// Exactly one linear correction is applied to the interpolated position; the
// result is not iterated to convergence.
func CorrectedHourAngle(m0, h0, latitude, longitude float64, afterTransit bool,
	theta0, alpha2, alpha1, alpha3, delta2, delta1, delta3 float64) float64 {
	// Astronomical Algorithms p. 102.
	Lw := -longitude
	term1 := sinDeg(h0) - sinDeg(latitude)*sinDeg(delta2)
	term2 := cosDeg(latitude) * cosDeg(delta2)
	H0 := RadiansToDegrees(math.Acos(term1 / term2))

	m := m0 - H0/360
	if afterTransit {
		m = m0 + H0/360
	}

	theta := UnwindAngle(theta0 + siderealRate*m)
	alpha := UnwindAngle(InterpolateAngles(alpha2, alpha1, alpha3, m))
	delta := Interpolate(delta2, delta1, delta3, m)
	H := theta - Lw - alpha
	h := AltitudeOfCelestialBody(latitude, delta, H)

	term3 := h - h0
	term4 := 360 * cosDeg(delta) * cosDeg(latitude) * sinDeg(H)
	dm := term3 / term4
	return (m + dm) * 24
}

// Interpolate evaluates the quadratic through three equally spaced samples y1,
// y2, y3 at offset n from the middle sample y2.
func Interpolate(y2, y1, y3, n float64) float64 {
	// Astronomical Algorithms p. 24.
	a := y2 - y1
	b := y3 - y2
	c := b - a
	return y2 + (n/2)*(a+b+n*c)
}

// InterpolateAngles is Interpolate for angles; the differences are unwound so a
// sequence crossing 360 degrees interpolates smoothly.
func InterpolateAngles(y2, y1, y3, n float64) float64 {
	// Astronomical Algorithms p. 24.
	a := UnwindAngle(y2 - y1)
	b := UnwindAngle(y3 - y2)
	c := b - a
	return y2 + (n/2)*(a+b+n*c)
}
