package qibla

import (
	"math"
	"testing"

	"github.com/smokyabdulrahman/adhan/internal/adhan"
)

func TestDirection_KnownCities(t *testing.T) {
	tests := []struct {
		name   string
		coords adhan.Coordinates
		want   float64
	}{
		{"Washington DC", adhan.Coordinates{Latitude: 38.9072, Longitude: -77.0369}, 56.560},
		{"New York", adhan.Coordinates{Latitude: 40.7128, Longitude: -74.0059}, 58.481},
		{"San Francisco", adhan.Coordinates{Latitude: 37.7749, Longitude: -122.4194}, 18.843},
		{"Anchorage", adhan.Coordinates{Latitude: 61.2181, Longitude: -149.9003}, 350.883},
		{"Sydney", adhan.Coordinates{Latitude: -33.8688, Longitude: 151.2093}, 277.499},
		{"Auckland", adhan.Coordinates{Latitude: -36.8485, Longitude: 174.7633}, 261.197},
		{"London", adhan.Coordinates{Latitude: 51.5074, Longitude: -0.1278}, 118.987},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Direction(tt.coords); math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Direction() = %.4f, want %.3f", got, tt.want)
			}
		})
	}
}

func TestDirection_Origin(t *testing.T) {
	lat := 21.4225241 * math.Pi / 180
	lon := 39.8261818 * math.Pi / 180
	want := math.Atan2(math.Sin(lon), math.Tan(lat)) * 180 / math.Pi

	got := Direction(adhan.Coordinates{})
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("Direction(0, 0) = %.7f, want %.7f", got, want)
	}
}

func TestDirection_Range(t *testing.T) {
	for lat := -89.0; lat <= 89; lat += 7.5 {
		for lon := -180.0; lon <= 180; lon += 11.25 {
			got := Direction(adhan.Coordinates{Latitude: lat, Longitude: lon})
			if math.IsNaN(got) || got < 0 || got >= 360 {
				t.Fatalf("Direction(%v, %v) = %v, out of [0, 360)", lat, lon, got)
			}
		}
	}
}

func TestCompassPoint(t *testing.T) {
	tests := []struct {
		bearing float64
		want    string
	}{
		{0, "N"},
		{11.2, "N"},
		{11.25, "NNE"},
		{45, "NE"},
		{118.987, "ESE"},
		{180, "S"},
		{277.5, "W"},
		{350.9, "N"},
		{359.9, "N"},
		{-45, "NW"},
	}

	for _, tt := range tests {
		if got := CompassPoint(tt.bearing); got != tt.want {
			t.Errorf("CompassPoint(%v) = %q, want %q", tt.bearing, got, tt.want)
		}
	}
}
