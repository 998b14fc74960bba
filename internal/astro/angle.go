package astro

import "math"

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180.0)
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(radians float64) float64 {
	return radians * (180.0 / math.Pi)
}

// NormalizeWithBound wraps value into [0, max).
func NormalizeWithBound(value, max float64) float64 {
	return value - max*math.Floor(value/max)
}

// UnwindAngle wraps an angle in degrees into [0, 360).
func UnwindAngle(angle float64) float64 {
	return NormalizeWithBound(angle, 360)
}

// ClosestAngle returns the equivalent of angle in [-180, 180].
func ClosestAngle(angle float64) float64 {
	if angle >= -180 && angle <= 180 {
		return angle
	}
	return angle - 360*math.Round(angle/360)
}

func sinDeg(degrees float64) float64 { return math.Sin(DegreesToRadians(degrees)) }
func cosDeg(degrees float64) float64 { return math.Cos(DegreesToRadians(degrees)) }
