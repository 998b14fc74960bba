// Package prayer turns a computed schedule into the named, selectable events
// the CLI and status-bar output work with.
package prayer

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/smokyabdulrahman/adhan/internal/adhan"
)

// ErrNoSchedule is returned when the sun does not provide a full set of
// events for the requested date and place.
var ErrNoSchedule = errors.New("no prayer schedule for this date and location")

// Prayer is a single named event and its time.
type Prayer struct {
	Name string
	Time time.Time
}

// Event names that are not one of the six daily prayers.
const (
	Midnight  = "Midnight"
	Lastthird = "Lastthird"
)

// AllPrayerNames lists every event that can be selected, in the order they
// occur during the night that follows the date.
var AllPrayerNames = []string{
	"Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha", Midnight, Lastthird,
}

// DefaultPrayerNames are the events tracked when none are configured.
var DefaultPrayerNames = []string{
	"Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha",
}

// ShortNames maps full event names to status-bar abbreviations.
var ShortNames = map[string]string{
	"Fajr":    "F",
	"Sunrise": "S",
	"Dhuhr":   "D",
	"Asr":     "A",
	"Maghrib": "M",
	"Isha":    "I",
	Midnight:  "Mi",
	Lastthird: "L3",
}

// CanonicalName returns the canonical spelling of an event name, matched
// without regard to case.
func CanonicalName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, n := range AllPrayerNames {
		if strings.EqualFold(n, name) {
			return n, true
		}
	}
	return "", false
}

// ParseNames parses a comma-separated list of event names. An empty list
// yields the defaults.
func ParseNames(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return slices.Clone(DefaultPrayerNames), nil
	}

	var names []string
	for _, raw := range strings.Split(s, ",") {
		name, ok := CanonicalName(raw)
		if !ok {
			return nil, fmt.Errorf("unknown prayer name %q; valid names: %s",
				strings.TrimSpace(raw), strings.Join(AllPrayerNames, ", "))
		}
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names, nil
}

// FromSchedule returns the selected events of pt in chronological order,
// expressed in loc. The night markers need the following day's Fajr and are
// only computed when selected.
func FromSchedule(pt *adhan.PrayerTimes, loc *time.Location, selected []string) ([]Prayer, error) {
	if !pt.Defined() {
		return nil, fmt.Errorf("%s on %s: %w", pt.Coordinates, pt.Date, ErrNoSchedule)
	}

	var (
		sunnah     adhan.SunnahTimes
		haveSunnah bool
	)

	prayers := make([]Prayer, 0, len(selected))
	for _, raw := range selected {
		name, ok := CanonicalName(raw)
		if !ok {
			return nil, fmt.Errorf("unknown prayer name: %s", raw)
		}

		var t time.Time
		switch name {
		case Midnight, Lastthird:
			if !haveSunnah {
				if sunnah, haveSunnah = adhan.NewSunnahTimes(pt); !haveSunnah {
					return nil, fmt.Errorf("night markers for %s: %w", pt.Date, ErrNoSchedule)
				}
			}
			t = sunnah.MiddleOfTheNight
			if name == Lastthird {
				t = sunnah.LastThirdOfTheNight
			}
		default:
			p, err := adhan.ParsePrayer(name)
			if err != nil {
				return nil, err
			}
			t, _ = pt.TimeForPrayer(p)
		}

		prayers = append(prayers, Prayer{Name: name, Time: t.In(loc)})
	}

	SortByTime(prayers)
	return prayers, nil
}

// SortByTime orders prayers chronologically, keeping the given order for
// events at the same instant.
func SortByTime(prayers []Prayer) {
	slices.SortStableFunc(prayers, func(a, b Prayer) int {
		return cmp.Compare(a.Time.UnixNano(), b.Time.UnixNano())
	})
}

// NextPrayer finds the next upcoming prayer from the given slice, relative to now.
// If all prayers in the slice have passed, it returns nil.
func NextPrayer(prayers []Prayer, now time.Time) *Prayer {
	for i := range prayers {
		if prayers[i].Time.After(now) {
			return &prayers[i]
		}
	}
	return nil
}

// CurrentPrayer returns the latest prayer whose time is not after now, or nil
// when now is before the first one.
func CurrentPrayer(prayers []Prayer, now time.Time) *Prayer {
	var current *Prayer
	for i := range prayers {
		if prayers[i].Time.After(now) {
			break
		}
		current = &prayers[i]
	}
	return current
}

// TimeRemaining returns the duration until the given prayer time.
func TimeRemaining(prayer Prayer, now time.Time) time.Duration {
	return prayer.Time.Sub(now)
}

// FormatRemaining formats a duration as "Xh Ym" or "Ym" if less than an hour.
// Partial minutes count as a whole minute, so one second before Fajr reads
// "1m" rather than "0m".
func FormatRemaining(d time.Duration) string {
	h, m := splitRemaining(d)
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

func splitRemaining(d time.Duration) (hours, minutes int) {
	if d <= 0 {
		return 0, 0
	}
	total := int((d + time.Minute - 1) / time.Minute)
	return total / 60, total % 60
}
