package adhan

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameters is returned for calculation parameters that cannot
// produce a schedule.
var ErrInvalidParameters = errors.New("invalid calculation parameters")

// CalculationParameters configures a prayer time calculation. Start from
// Method.Parameters and override fields as needed.
type CalculationParameters struct {
	Method Method
	// FajrAngle and IshaAngle are solar depressions in degrees.
	FajrAngle float64
	IshaAngle float64
	// IshaInterval, when positive, places Isha that many minutes after Maghrib
	// and IshaAngle is ignored.
	IshaInterval     int
	Madhab           Madhab
	HighLatitudeRule HighLatitudeRule
	// Adjustments are the user's offsets; MethodAdjustments belong to the
	// method. Both are added to the computed times.
	Adjustments       PrayerAdjustments
	MethodAdjustments PrayerAdjustments
}

// NewCalculationParameters returns parameters for custom angles under the
// Other method.
func NewCalculationParameters(fajrAngle, ishaAngle float64) CalculationParameters {
	p := Other.Parameters()
	p.FajrAngle = fajrAngle
	p.IshaAngle = ishaAngle
	return p
}

// Validate reports the first setting outside its allowed values.
func (p CalculationParameters) Validate() error {
	if !p.Method.valid() {
		return fmt.Errorf("%w: %v", ErrUnknownMethod, p.Method)
	}
	if !p.Madhab.valid() {
		return fmt.Errorf("%w: %v", ErrUnknownMadhab, p.Madhab)
	}
	if !p.HighLatitudeRule.valid() {
		return fmt.Errorf("%w: %v", ErrUnknownHighLatitudeRule, p.HighLatitudeRule)
	}
	if !validAngle(p.FajrAngle) {
		return fmt.Errorf("%w: fajr angle %v is outside [0, 90)", ErrInvalidParameters, p.FajrAngle)
	}
	if !validAngle(p.IshaAngle) {
		return fmt.Errorf("%w: isha angle %v is outside [0, 90)", ErrInvalidParameters, p.IshaAngle)
	}
	if p.IshaInterval < 0 {
		return fmt.Errorf("%w: isha interval %d is negative", ErrInvalidParameters, p.IshaInterval)
	}
	return nil
}

func validAngle(a float64) bool {
	return !math.IsNaN(a) && a >= 0 && a < 90
}
