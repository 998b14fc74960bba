// Package adhan computes the six daily Islamic prayer times for a location and
// calendar date from the position of the sun.
//
// A schedule is a pure function of its coordinates, date and calculation
// parameters. Times that cannot occur (polar day or night, or twilight angles
// the sun never reaches) make the whole schedule undefined; they are reported
// through boolean results, never as errors.
package adhan

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoordinates is returned for a latitude or longitude out of range.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Coordinates is a position on earth in degrees. Longitude is east positive.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinates returns validated coordinates.
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	c := Coordinates{Latitude: latitude, Longitude: longitude}
	if err := c.Validate(); err != nil {
		return Coordinates{}, err
	}
	return c, nil
}

// Validate checks that latitude is in [-90, 90] and longitude in [-180, 180].
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v is outside [-90, 90]", ErrInvalidCoordinates, c.Latitude)
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v is outside [-180, 180]", ErrInvalidCoordinates, c.Longitude)
	}
	return nil
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}
