package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to upper-cased config keys to form environment
// variable names, e.g. PRAYER_TIMES_LATITUDE.
const EnvPrefix = "PRAYER_TIMES_"

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(key)
}

// LoadDotEnv loads variables from the given .env files (".env" in the working
// directory when none are given) without overriding ones already set. A
// missing file is not an error.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// ApplyEnv overrides c with every PRAYER_TIMES_<KEY> variable that is set and
// non-empty. Values are validated exactly like `config set`.
func (c *Config) ApplyEnv() error {
	for _, key := range ValidKeys {
		name := EnvName(key)
		value := strings.TrimSpace(os.Getenv(name))
		if value == "" {
			continue
		}
		if err := c.Set(key, value); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return nil
}
