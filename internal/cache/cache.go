// Package cache stores the result of IP geolocation on disk so repeated runs
// do not query the network.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/smokyabdulrahman/adhan/internal/geo"
)

const (
	cacheDirName = "prayer-times"
	geoCacheFile = "geolocation.json"

	// GeoTTL is how long a detected location is reused.
	GeoTTL = 24 * time.Hour
)

// Cache provides file-based caching for geolocation data.
type Cache struct {
	dir string
	now func() time.Time
}

// GeoCacheEntry stores a cached geolocation result with a timestamp.
type GeoCacheEntry struct {
	Location geo.Location `json:"location"`
	CachedAt time.Time    `json:"cached_at"`
}

// New creates a Cache rooted at the given directory.
// If dir is empty, it defaults to $XDG_CACHE_HOME/prayer-times or
// ~/.cache/prayer-times.
func New(dir string) (*Cache, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine cache directory: %w", err)
		}
		dir = filepath.Join(base, cacheDirName)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create cache directory %s: %w", dir, err)
	}

	return &Cache{dir: dir, now: time.Now}, nil
}

// Dir returns the directory the cache writes to.
func (c *Cache) Dir() string { return c.dir }

// LoadGeo attempts to read a cached geolocation result.
// Returns nil if the cache is missing, unreadable or older than GeoTTL.
func (c *Cache) LoadGeo() *geo.Location {
	path := filepath.Join(c.dir, geoCacheFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Debug().Err(err).Str("path", path).Msg("geolocation cache unreadable")
		}
		return nil
	}

	var entry GeoCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("geolocation cache corrupt")
		return nil
	}

	if age := c.now().Sub(entry.CachedAt); age > GeoTTL {
		log.Debug().Dur("age", age).Msg("geolocation cache expired")
		return nil
	}

	if _, err := entry.Location.Coordinates(); err != nil {
		log.Debug().Err(err).Msg("geolocation cache holds invalid coordinates")
		return nil
	}

	return &entry.Location
}

// SaveGeo writes a geolocation result to the cache.
func (c *Cache) SaveGeo(loc *geo.Location) error {
	path := filepath.Join(c.dir, geoCacheFile)

	entry := GeoCacheEntry{
		Location: *loc,
		CachedAt: c.now(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal geo cache: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write geo cache: %w", err)
	}

	return nil
}
