package adhan

import (
	"fmt"
	"strconv"
	"strings"
)

// PrayerAdjustments are minute offsets added to each computed prayer time.
// The zero value adjusts nothing.
type PrayerAdjustments struct {
	Fajr    int `json:"fajr"`
	Sunrise int `json:"sunrise"`
	Dhuhr   int `json:"dhuhr"`
	Asr     int `json:"asr"`
	Maghrib int `json:"maghrib"`
	Isha    int `json:"isha"`
}

// Add returns the sum of two sets of adjustments.
func (a PrayerAdjustments) Add(b PrayerAdjustments) PrayerAdjustments {
	return PrayerAdjustments{
		Fajr:    a.Fajr + b.Fajr,
		Sunrise: a.Sunrise + b.Sunrise,
		Dhuhr:   a.Dhuhr + b.Dhuhr,
		Asr:     a.Asr + b.Asr,
		Maghrib: a.Maghrib + b.Maghrib,
		Isha:    a.Isha + b.Isha,
	}
}

// For returns the offset for p, or 0 for None.
func (a PrayerAdjustments) For(p Prayer) int {
	if f := a.field(p); f != nil {
		return *f
	}
	return 0
}

func (a *PrayerAdjustments) field(p Prayer) *int {
	switch p {
	case Fajr:
		return &a.Fajr
	case Sunrise:
		return &a.Sunrise
	case Dhuhr:
		return &a.Dhuhr
	case Asr:
		return &a.Asr
	case Maghrib:
		return &a.Maghrib
	case Isha:
		return &a.Isha
	default:
		return nil
	}
}

// IsZero reports whether no prayer is adjusted.
func (a PrayerAdjustments) IsZero() bool {
	return a == PrayerAdjustments{}
}

// String renders the non-zero offsets as "fajr=2,isha=-1".
func (a PrayerAdjustments) String() string {
	if a.IsZero() {
		return ""
	}
	var parts []string
	for _, p := range Prayers() {
		if v := a.For(p); v != 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", strings.ToLower(p.String()), v))
		}
	}
	return strings.Join(parts, ",")
}

// ParseAdjustments parses a comma-separated list of prayer=minutes pairs such
// as "fajr=2,isha=-1". Prayer names are case-insensitive; an empty string is
// the zero value.
func ParseAdjustments(s string) (PrayerAdjustments, error) {
	var a PrayerAdjustments
	s = strings.TrimSpace(s)
	if s == "" {
		return a, nil
	}

	for _, pair := range strings.Split(s, ",") {
		name, value, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			return PrayerAdjustments{}, fmt.Errorf("invalid adjustment %q (want prayer=minutes)", pair)
		}

		p, err := ParsePrayer(name)
		if err != nil {
			return PrayerAdjustments{}, fmt.Errorf("invalid adjustment %q: %w", pair, err)
		}

		minutes, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return PrayerAdjustments{}, fmt.Errorf("invalid adjustment %q: minutes must be an integer", pair)
		}
		*a.field(p) = minutes
	}
	return a, nil
}
