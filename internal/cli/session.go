package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/adhan/internal/adhan"
	"github.com/smokyabdulrahman/adhan/internal/cache"
	"github.com/smokyabdulrahman/adhan/internal/config"
	"github.com/smokyabdulrahman/adhan/internal/geo"
	"github.com/smokyabdulrahman/adhan/internal/prayer"
)

// Swapped out by tests.
var (
	nowFunc        = time.Now
	detectLocation = geo.DetectLocation
)

// locationSource describes where the coordinates came from.
type locationSource int

const (
	sourceConfig locationSource = iota
	sourceCache
	sourceDetected
)

func (s locationSource) String() string {
	switch s {
	case sourceConfig:
		return "config"
	case sourceCache:
		return "cache"
	case sourceDetected:
		return "detected"
	default:
		return "unknown"
	}
}

// resolvedLocation holds the result of location resolution.
type resolvedLocation struct {
	Source   locationSource
	Coords   adhan.Coordinates
	City     string
	Country  string
	Timezone string // optional hint from geo-detection
}

// Label returns "City, Country" when both are known, otherwise the
// coordinates.
func (l resolvedLocation) Label() string {
	if l.City != "" && l.Country != "" {
		return l.City + ", " + l.Country
	}
	return fmt.Sprintf("%.4f, %.4f", l.Coords.Latitude, l.Coords.Longitude)
}

// resolveLocation determines the effective location.
// Priority: CLI flags/env/config > cached geolocation > IP auto-detect.
func resolveLocation(ctx context.Context, cfg *config.Config) (resolvedLocation, error) {
	if cfg.HasCoordinates() {
		coords, err := cfg.Coordinates()
		if err != nil {
			return resolvedLocation{}, err
		}
		return resolvedLocation{
			Source:  sourceConfig,
			Coords:  coords,
			City:    cfg.City,
			Country: cfg.Country,
		}, nil
	}

	c, err := cache.New(cfg.CacheDir)
	if err != nil {
		// Cache init failure is non-fatal; we just skip caching.
		log.Warn().Err(err).Msg("cache disabled")
		c = nil
	}

	if c != nil {
		if cached := c.LoadGeo(); cached != nil {
			return fromGeo(sourceCache, cached), nil
		}
	}

	detected, err := detectLocation(ctx)
	if err != nil {
		return resolvedLocation{}, fmt.Errorf("no location specified and auto-detection failed: %w", err)
	}
	if c != nil {
		if err := c.SaveGeo(detected); err != nil {
			log.Warn().Err(err).Msg("could not cache detected location")
		}
	}
	return fromGeo(sourceDetected, detected), nil
}

func fromGeo(source locationSource, l *geo.Location) resolvedLocation {
	return resolvedLocation{
		Source:   source,
		Coords:   adhan.Coordinates{Latitude: l.Latitude, Longitude: l.Longitude},
		City:     l.City,
		Country:  l.Country,
		Timezone: l.Timezone,
	}
}

// contextOf returns the command's context, which is unset when a command is
// run without Execute.
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// session is everything a command needs to compute and print schedules.
type session struct {
	cfg    *config.Config
	place  resolvedLocation
	params adhan.CalculationParameters
	loc    *time.Location
	names  []string
	layout string
	now    time.Time            // in loc
	date   adhan.DateComponents // --date, or today in loc
}

// newSession merges flags and config, resolves the location and time zone,
// and picks the date to compute.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return nil, err
	}

	params, err := cfg.Parameters()
	if err != nil {
		return nil, err
	}

	place, err := resolveLocation(contextOf(cmd), cfg)
	if err != nil {
		return nil, err
	}

	// An explicit time zone wins over the detected one.
	var loc *time.Location
	switch {
	case cfg.Timezone != "":
		if loc, err = cfg.Location(); err != nil {
			return nil, err
		}
	case place.Timezone != "":
		loc = geo.Location{Timezone: place.Timezone}.TimeLocation()
	default:
		loc = time.Local
	}

	s := &session{
		cfg:    cfg,
		place:  place,
		params: params,
		loc:    loc,
		names:  cfg.PrayerNames(),
		layout: prayer.TimeLayout(cfg.TimeFormatOrDefault()),
		now:    nowFunc().In(loc),
	}

	s.date = adhan.DateFromTime(s.now)
	if FlagDate != "" {
		if s.date, err = adhan.ParseDate(FlagDate); err != nil {
			return nil, fmt.Errorf("--date: %w", err)
		}
	}

	log.Debug().
		Stringer("source", place.Source).
		Float64("latitude", place.Coords.Latitude).
		Float64("longitude", place.Coords.Longitude).
		Str("timezone", loc.String()).
		Stringer("method", params.Method).
		Stringer("madhab", params.Madhab).
		Stringer("date", s.date).
		Msg("session resolved")

	return s, nil
}

// isToday reports whether the computed date is the current date in the
// session's time zone.
func (s *session) isToday() bool {
	return s.date == adhan.DateFromTime(s.now)
}

// reference is the instant "next" and "current" are relative to: now, or
// the start of the day when --date picks another day.
func (s *session) reference() time.Time {
	if s.isToday() {
		return s.now
	}
	return time.Date(s.date.Year, s.date.Month, s.date.Day, 0, 0, 0, 0, s.loc)
}

// schedule computes the engine's schedule for a date.
func (s *session) schedule(date adhan.DateComponents) (*adhan.PrayerTimes, error) {
	return adhan.NewPrayerTimes(s.place.Coords, date, s.params)
}

// prayers returns the selected events for a date, sorted by time. The error
// wraps prayer.ErrNoSchedule when the sun does not allow a schedule.
func (s *session) prayers(date adhan.DateComponents, names []string) ([]prayer.Prayer, error) {
	pt, err := s.schedule(date)
	if err != nil {
		return nil, err
	}
	return prayer.FromSchedule(pt, s.loc, names)
}

// around returns the selected events of the days before and after date as
// well as date itself, so that "next" and "current" can cross midnight.
// Days without a schedule are skipped.
func (s *session) around(date adhan.DateComponents) ([]prayer.Prayer, error) {
	var all []prayer.Prayer
	for offset := -1; offset <= 1; offset++ {
		day, err := s.prayers(date.AddDays(offset), s.names)
		if errors.Is(err, prayer.ErrNoSchedule) {
			log.Debug().Stringer("date", date.AddDays(offset)).Msg("no schedule")
			continue
		}
		if err != nil {
			return nil, err
		}
		all = append(all, day...)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w (latitude %.4f)", prayer.ErrNoSchedule, s.place.Coords.Latitude)
	}
	prayer.SortByTime(all)
	return all, nil
}
