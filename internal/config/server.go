package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ServerConfig holds the settings for `prayer-times serve`.
type ServerConfig struct {
	Addr            string
	CORSOrigins     []string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// DefaultServerConfig returns the settings used when no variables are set.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:            ":8080",
		CORSOrigins:     []string{"*"},
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
	}
}

// LoadServer reads PRAYER_TIMES_ADDR, PRAYER_TIMES_CORS_ORIGINS,
// PRAYER_TIMES_LOG_LEVEL and PRAYER_TIMES_SHUTDOWN_TIMEOUT. Call LoadDotEnv
// first for .env support.
func LoadServer() (ServerConfig, error) {
	cfg := DefaultServerConfig()

	if v := strings.TrimSpace(os.Getenv(EnvName("addr"))); v != "" {
		cfg.Addr = v
	}

	if v := strings.TrimSpace(os.Getenv(EnvName("cors_origins"))); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, strings.TrimRight(o, "/"))
			}
		}
		if len(origins) > 0 {
			cfg.CORSOrigins = origins
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvName("log_level"))); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if v := strings.TrimSpace(os.Getenv(EnvName("shutdown_timeout"))); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("invalid %s: %w", EnvName("shutdown_timeout"), err)
		}
		if d <= 0 {
			return ServerConfig{}, fmt.Errorf("invalid %s: must be positive", EnvName("shutdown_timeout"))
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

// AllowAllOrigins reports whether the CORS list is the wildcard.
func (s ServerConfig) AllowAllOrigins() bool {
	for _, o := range s.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}
