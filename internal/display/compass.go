package display

import "math"

var arrows = [...]string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

// Arrow returns the arrow closest to a compass bearing in degrees, with north
// pointing up.
func Arrow(bearing float64) string {
	b := math.Mod(bearing, 360)
	if b < 0 {
		b += 360
	}
	return arrows[int(math.Floor(b/45+0.5))%len(arrows)]
}
