package adhan

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMadhab is returned when a madhab name is not recognized.
var ErrUnknownMadhab = errors.New("unknown madhab")

// Madhab selects the shadow length used for Asr.
type Madhab int

const (
	// Shafi is the standard opinion (Shafi, Maliki, Hanbali): shadow length 1.
	Shafi Madhab = iota
	// Hanafi uses a shadow length of 2, giving a later Asr.
	Hanafi
)

// ShadowLength returns the multiple of an object's height used for Asr.
func (m Madhab) ShadowLength() float64 {
	if m == Hanafi {
		return 2
	}
	return 1
}

func (m Madhab) valid() bool {
	return m == Shafi || m == Hanafi
}

func (m Madhab) String() string {
	switch m {
	case Shafi:
		return "shafi"
	case Hanafi:
		return "hanafi"
	default:
		return fmt.Sprintf("Madhab(%d)", int(m))
	}
}

// ParseMadhab accepts "shafi" (or "standard", "0") and "hanafi" (or "1"),
// case-insensitively. The numeric forms match the old school setting.
func ParseMadhab(s string) (Madhab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shafi", "standard", "0":
		return Shafi, nil
	case "hanafi", "1":
		return Hanafi, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid: shafi, hanafi)", ErrUnknownMadhab, s)
	}
}
