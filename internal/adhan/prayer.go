package adhan

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPrayer is returned when a prayer name is not recognized.
var ErrUnknownPrayer = errors.New("unknown prayer")

// Prayer identifies one of the six daily times. None is before Fajr.
type Prayer int

const (
	None Prayer = iota
	Fajr
	Sunrise
	Dhuhr
	Asr
	Maghrib
	Isha
)

var prayerNames = [...]string{
	None:    "None",
	Fajr:    "Fajr",
	Sunrise: "Sunrise",
	Dhuhr:   "Dhuhr",
	Asr:     "Asr",
	Maghrib: "Maghrib",
	Isha:    "Isha",
}

// Prayers returns the six prayers in chronological order.
func Prayers() []Prayer {
	return []Prayer{Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha}
}

func (p Prayer) String() string {
	if p < None || p > Isha {
		return fmt.Sprintf("Prayer(%d)", int(p))
	}
	return prayerNames[p]
}

// ParsePrayer returns the prayer with the given name, ignoring case. None is
// not accepted.
func ParsePrayer(s string) (Prayer, error) {
	name := strings.TrimSpace(s)
	for _, p := range Prayers() {
		if strings.EqualFold(prayerNames[p], name) {
			return p, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownPrayer, s)
}
