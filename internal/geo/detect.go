// Package geo detects the user's approximate location from their public IP
// address, for when no coordinates are configured.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/smokyabdulrahman/adhan/internal/adhan"
)

// DefaultURL is the ip-api.com endpoint. It is free and needs no API key.
const DefaultURL = "http://ip-api.com/json/?fields=status,message,lat,lon,city,country,timezone"

// Location holds geographic coordinates detected from the user's IP.
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
}

// Coordinates returns the detected position, validated.
func (l Location) Coordinates() (adhan.Coordinates, error) {
	return adhan.NewCoordinates(l.Latitude, l.Longitude)
}

// TimeLocation loads the detected IANA time zone, falling back to the system
// zone when it is missing or unknown.
func (l Location) TimeLocation() *time.Location {
	if l.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", l.Timezone).Msg("ignoring detected timezone")
		return time.Local
	}
	return loc
}

// ipAPIResponse maps the response from ip-api.com.
type ipAPIResponse struct {
	Status   string  `json:"status"`
	Message  string  `json:"message"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	City     string  `json:"city"`
	Country  string  `json:"country"`
	Timezone string  `json:"timezone"`
}

// Detector queries an ip-api.com compatible endpoint.
type Detector struct {
	URL    string
	Client *http.Client
}

// NewDetector returns a Detector for DefaultURL with a 5 second timeout.
func NewDetector() *Detector {
	return &Detector{
		URL:    DefaultURL,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

// DetectLocation looks up the caller's location with a default Detector.
func DetectLocation(ctx context.Context) (*Location, error) {
	return NewDetector().Detect(ctx)
}

// Detect looks up the location of the caller's public IP address.
func (d *Detector) Detect(ctx context.Context) (*Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("geolocation request failed: %w", err)
	}

	start := time.Now()
	resp, err := d.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("url", d.URL).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("geolocation lookup")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var result ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode geolocation response: %w", err)
	}

	if result.Status != "success" {
		return nil, fmt.Errorf("geolocation failed: %s", result.Message)
	}

	loc := &Location{
		Latitude:  result.Lat,
		Longitude: result.Lon,
		City:      result.City,
		Country:   result.Country,
		Timezone:  result.Timezone,
	}
	if _, err := loc.Coordinates(); err != nil {
		return nil, fmt.Errorf("geolocation returned %w", err)
	}
	return loc, nil
}
