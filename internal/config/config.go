// Package config provides persistent configuration for the prayer-times CLI.
//
// Configuration is stored as JSON at ~/.config/prayer-times/config.json
// (XDG-compliant). The merge priority is: CLI flags > environment > config
// file > defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/smokyabdulrahman/adhan/internal/adhan"
	"github.com/smokyabdulrahman/adhan/internal/prayer"
)

const (
	configDirName  = "prayer-times"
	configFileName = "config.json"
)

// ValidKeys lists all config keys that can be set via `config set`.
var ValidKeys = []string{
	"city", "country",
	"latitude", "longitude",
	"timezone",
	"method", "madhab", "high_latitude_rule",
	"fajr_angle", "isha_angle", "isha_interval",
	"adjustments",
	"time_format",
	"prayers",
	"cache_dir",
}

// Config holds all user-configurable settings.
// Zero values mean "not set" (use defaults or auto-detect).
type Config struct {
	City             string  `json:"city,omitempty"` // display label only
	Country          string  `json:"country,omitempty"`
	Latitude         float64 `json:"latitude,omitempty"`
	Longitude        float64 `json:"longitude,omitempty"`
	Timezone         string  `json:"timezone,omitempty"` // IANA name; empty = local
	Method           string  `json:"method,omitempty"`
	Madhab           string  `json:"madhab,omitempty"`
	HighLatitudeRule string  `json:"high_latitude_rule,omitempty"` // empty = the method's rule
	FajrAngle        float64 `json:"fajr_angle,omitempty"`         // 0 = the method's angle
	IshaAngle        float64 `json:"isha_angle,omitempty"`
	IshaInterval     int     `json:"isha_interval,omitempty"` // minutes after Maghrib
	Adjustments      string  `json:"adjustments,omitempty"`        // e.g. "fajr=2,isha=-1"
	TimeFormat       string  `json:"time_format,omitempty"`        // "12h" or "24h"
	Prayers          string  `json:"prayers,omitempty"`            // comma-separated list
	CacheDir         string  `json:"cache_dir,omitempty"`
}

// Defaults returns a Config with all default values applied.
func Defaults() Config {
	return Config{
		Method:     adhan.MuslimWorldLeague.String(),
		Madhab:     adhan.Shafi.String(),
		TimeFormat: "24h",
	}
}

// Dir returns the config directory path.
// It respects $XDG_CONFIG_HOME if set, otherwise uses ~/.config/.
func Dir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, configDirName), nil
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file from disk.
// If the file does not exist, it returns an empty Config (not an error).
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from a specific file path. Every value is run
// through the same validation as Set, so a hand-edited file with an unknown
// method fails here rather than during calculation.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw Config
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	var cfg Config
	for _, key := range ValidKeys {
		v, _ := raw.Get(key)
		if v == "" {
			continue
		}
		if err := cfg.Set(key, v); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	}
	return &cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to a specific file path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create config directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Reset deletes the config file.
func Reset() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return ResetAt(path)
}

// ResetAt deletes the config file at a specific path.
func ResetAt(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete config file: %w", err)
	}
	return nil
}

// Set sets a config key to the given value.
// Enumerated values are validated and stored in their canonical spelling, so
// "Hanafi", "1" and "hanafi" all save as "hanafi".
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case "city":
		c.City = value
	case "country":
		c.Country = value
	case "latitude":
		v, err := parseCoordinate(value, 90)
		if err != nil {
			return fmt.Errorf("invalid latitude %q: %w", value, err)
		}
		c.Latitude = v
	case "longitude":
		v, err := parseCoordinate(value, 180)
		if err != nil {
			return fmt.Errorf("invalid longitude %q: %w", value, err)
		}
		c.Longitude = v
	case "timezone":
		if value != "" {
			if _, err := time.LoadLocation(value); err != nil {
				return fmt.Errorf("invalid timezone %q: %w", value, err)
			}
		}
		c.Timezone = value
	case "method":
		m, err := adhan.ParseMethod(value)
		if err != nil {
			return fmt.Errorf("invalid method: %w", err)
		}
		c.Method = m.String()
	case "madhab", "school":
		m, err := adhan.ParseMadhab(value)
		if err != nil {
			return fmt.Errorf("invalid madhab: %w", err)
		}
		c.Madhab = m.String()
	case "high_latitude_rule":
		r, err := adhan.ParseHighLatitudeRule(value)
		if err != nil {
			return fmt.Errorf("invalid high_latitude_rule: %w", err)
		}
		c.HighLatitudeRule = r.String()
	case "fajr_angle", "isha_angle":
		v, err := parseAngle(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
		if key == "fajr_angle" {
			c.FajrAngle = v
		} else {
			c.IshaAngle = v
		}
	case "isha_interval":
		v := 0
		if value != "" {
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid isha_interval %q: must be a non-negative number of minutes", value)
			}
			v = n
		}
		c.IshaInterval = v
	case "adjustments":
		a, err := adhan.ParseAdjustments(value)
		if err != nil {
			return fmt.Errorf("invalid adjustments: %w", err)
		}
		c.Adjustments = a.String()
	case "time_format":
		if value != "12h" && value != "24h" {
			return fmt.Errorf("invalid time_format %q: must be \"12h\" or \"24h\"", value)
		}
		c.TimeFormat = value
	case "prayers":
		if value == "" {
			c.Prayers = ""
			return nil
		}
		names, err := prayer.ParseNames(value)
		if err != nil {
			return fmt.Errorf("invalid prayers: %w", err)
		}
		c.Prayers = strings.Join(names, ",")
	case "cache_dir":
		c.CacheDir = value
	default:
		return fmt.Errorf("unknown config key %q; valid keys: %s", key, strings.Join(ValidKeys, ", "))
	}

	return nil
}

// Get returns the string value of a config key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "city":
		return c.City, nil
	case "country":
		return c.Country, nil
	case "latitude":
		return formatCoordinate(c.Latitude), nil
	case "longitude":
		return formatCoordinate(c.Longitude), nil
	case "timezone":
		return c.Timezone, nil
	case "method":
		return c.Method, nil
	case "madhab", "school":
		return c.Madhab, nil
	case "high_latitude_rule":
		return c.HighLatitudeRule, nil
	case "fajr_angle":
		return formatCoordinate(c.FajrAngle), nil
	case "isha_angle":
		return formatCoordinate(c.IshaAngle), nil
	case "isha_interval":
		if c.IshaInterval == 0 {
			return "", nil
		}
		return strconv.Itoa(c.IshaInterval), nil
	case "adjustments":
		return c.Adjustments, nil
	case "time_format":
		return c.TimeFormat, nil
	case "prayers":
		return c.Prayers, nil
	case "cache_dir":
		return c.CacheDir, nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

// Merge copies every field that is set in other onto c.
func (c *Config) Merge(other Config) {
	for _, key := range ValidKeys {
		if v, _ := other.Get(key); v != "" {
			// Values in a Config are already canonical.
			_ = c.Set(key, v)
		}
	}
}

// HasCoordinates reports whether a location has been configured.
func (c *Config) HasCoordinates() bool {
	return c.Latitude != 0 || c.Longitude != 0
}

// Coordinates returns the configured location, validated.
func (c *Config) Coordinates() (adhan.Coordinates, error) {
	return adhan.NewCoordinates(c.Latitude, c.Longitude)
}

// Parameters resolves the calculation settings: the method's preset, then
// custom angles, madhab, high-latitude rule and adjustments on top. Unset
// values fall back to Defaults. The "other" method has no angles of its own
// and needs fajr_angle plus isha_angle or isha_interval.
func (c *Config) Parameters() (adhan.CalculationParameters, error) {
	defaults := Defaults()

	method, err := adhan.ParseMethod(orDefault(c.Method, defaults.Method))
	if err != nil {
		return adhan.CalculationParameters{}, err
	}

	var params adhan.CalculationParameters
	if method == adhan.Other {
		if c.FajrAngle == 0 || (c.IshaAngle == 0 && c.IshaInterval == 0) {
			return adhan.CalculationParameters{}, fmt.Errorf(
				"%w: method %s needs fajr_angle and isha_angle or isha_interval", adhan.ErrInvalidParameters, method)
		}
		params = adhan.NewCalculationParameters(c.FajrAngle, c.IshaAngle)
	} else {
		params = method.Parameters()
		if c.FajrAngle > 0 {
			params.FajrAngle = c.FajrAngle
		}
		if c.IshaAngle > 0 {
			params.IshaAngle = c.IshaAngle
			params.IshaInterval = 0
		}
	}
	if c.IshaInterval > 0 {
		params.IshaInterval = c.IshaInterval
	}

	params.Madhab, err = adhan.ParseMadhab(orDefault(c.Madhab, defaults.Madhab))
	if err != nil {
		return adhan.CalculationParameters{}, err
	}

	if c.HighLatitudeRule != "" {
		params.HighLatitudeRule, err = adhan.ParseHighLatitudeRule(c.HighLatitudeRule)
		if err != nil {
			return adhan.CalculationParameters{}, err
		}
	}

	params.Adjustments, err = adhan.ParseAdjustments(c.Adjustments)
	if err != nil {
		return adhan.CalculationParameters{}, err
	}
	return params, nil
}

// Location returns the configured time zone, or the system's local zone when
// none is set.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// PrayerNames returns the configured event selection, or the defaults.
func (c *Config) PrayerNames() []string {
	names, err := prayer.ParseNames(c.Prayers)
	if err != nil {
		return prayer.DefaultPrayerNames
	}
	return names
}

// TimeFormatOrDefault returns the time format, falling back to "24h".
func (c *Config) TimeFormatOrDefault() string {
	return orDefault(c.TimeFormat, Defaults().TimeFormat)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func parseCoordinate(value string, limit float64) (float64, error) {
	if value == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.New("must be a number")
	}
	if !(v >= -limit && v <= limit) {
		return 0, fmt.Errorf("must be between %g and %g", -limit, limit)
	}
	return v, nil
}

func parseAngle(value string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.New("must be a number")
	}
	if !(v > 0 && v < 90) {
		return 0, errors.New("must be between 0 and 90 degrees")
	}
	return v, nil
}

func formatCoordinate(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
