// Package qibla computes the direction of prayer toward the Kaaba.
package qibla

import (
	"math"

	"github.com/smokyabdulrahman/adhan/internal/adhan"
	"github.com/smokyabdulrahman/adhan/internal/astro"
)

// Makkah is the location of the Kaaba.
var Makkah = adhan.Coordinates{Latitude: 21.4225241, Longitude: 39.8261818}

// Direction returns the initial great-circle bearing from coords to the
// Kaaba, in degrees clockwise from true north in [0, 360).
func Direction(coords adhan.Coordinates) float64 {
	// Equation from "Spherical Trigonometry For the use of colleges and schools" page 50.
	lat := astro.DegreesToRadians(coords.Latitude)
	dLon := astro.DegreesToRadians(Makkah.Longitude) - astro.DegreesToRadians(coords.Longitude)

	term1 := math.Sin(dLon)
	term2 := math.Cos(lat) * math.Tan(astro.DegreesToRadians(Makkah.Latitude))
	term3 := math.Sin(lat) * math.Cos(dLon)

	return astro.UnwindAngle(astro.RadiansToDegrees(math.Atan2(term1, term2-term3)))
}

var compassPoints = [...]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CompassPoint names the nearest of the sixteen compass points to bearing.
func CompassPoint(bearing float64) string {
	i := int(math.Floor(astro.UnwindAngle(bearing)/22.5+0.5)) % len(compassPoints)
	return compassPoints[i]
}
