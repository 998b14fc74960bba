package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/smokyabdulrahman/adhan/internal/config"
	"github.com/smokyabdulrahman/adhan/internal/logging"
	"github.com/smokyabdulrahman/adhan/internal/prayer"
)

// Global flags shared across all subcommands.
var (
	FlagCity             string
	FlagCountry          string
	FlagLatitude         float64
	FlagLongitude        float64
	FlagTimezone         string
	FlagMethod           string
	FlagMadhab           string
	FlagSchool           string
	FlagHighLatitudeRule string
	FlagAdjustments      string
	FlagPrayers          string
	FlagJSON             bool
	FlagCacheDir         string
	FlagTimeFormat       string
	FlagDate             string
	FlagVerbose          bool
)

// loadedConfig holds the config file merged with the environment, loaded
// during PersistentPreRunE. Available to all subcommand handlers.
var loadedConfig *config.Config

// NewRootCmd creates the root command for the prayer-times CLI.
// The version parameter is set by the calling binary via ldflags.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := newBaseCmd(version)
	rootCmd.Use = "prayer-times"
	rootCmd.Short = "Islamic prayer times CLI"
	rootCmd.Long = "A full-featured CLI for Islamic prayer times and the qibla, computed locally from solar astronomy."
	// Default action: show today's prayer schedule.
	rootCmd.RunE = runToday

	rootCmd.AddCommand(newNextCmd(prayer.FormatFull))
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newWeekCmd())
	rootCmd.AddCommand(newMonthCmd())
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newQiblaCmd())
	rootCmd.AddCommand(newSunnahCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newMethodsCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// newBaseCmd builds a command carrying the persistent flags and config
// loading every entry point shares.
func newBaseCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(cmd.ErrOrStderr(), FlagVerbose)

			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.ApplyEnv(); err != nil {
				return err
			}
			loadedConfig = cfg
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&FlagCity, "city", "", "City label shown with the schedule")
	pf.StringVar(&FlagCountry, "country", "", "Country label shown with the schedule")
	pf.Float64Var(&FlagLatitude, "latitude", 0, "Override latitude")
	pf.Float64Var(&FlagLongitude, "longitude", 0, "Override longitude")
	pf.StringVar(&FlagTimezone, "timezone", "", "IANA time zone for displayed times (default: system zone)")
	pf.StringVar(&FlagMethod, "method", "", "Calculation method key or id (see 'methods')")
	pf.StringVar(&FlagMadhab, "madhab", "", "Asr madhab: shafi or hanafi")
	pf.StringVar(&FlagSchool, "school", "", "Alias for --madhab (0=Shafi, 1=Hanafi)")
	pf.StringVar(&FlagHighLatitudeRule, "high-latitude-rule", "", "middle-of-the-night, seventh-of-the-night, twilight-angle or seasonal-adjustment")
	pf.StringVar(&FlagAdjustments, "adjustments", "", "Per-prayer minute offsets, e.g. fajr=2,isha=-1")
	pf.StringVar(&FlagPrayers, "prayers", "", "Comma-separated list of events to show (overrides config)")
	pf.BoolVar(&FlagJSON, "json", false, "Output as JSON (where supported)")
	pf.StringVar(&FlagCacheDir, "cache-dir", "", "Cache directory (default: ~/.cache/prayer-times/)")
	pf.StringVar(&FlagTimeFormat, "time-format", "", "Time format: 12h or 24h (overrides config)")
	pf.StringVar(&FlagDate, "date", "", "Compute for this date (YYYY-MM-DD) instead of today")
	pf.BoolVarP(&FlagVerbose, "verbose", "v", false, "Log debug output to stderr")

	return cmd
}

// PrintVersion prints the version string in the expected format.
func PrintVersion(version string) string {
	return fmt.Sprintf("prayer-times %s\n", version)
}

// effectiveConfig returns the merged configuration values,
// applying the priority: CLI flags > environment > config file > defaults.
// It uses cobra's Changed() to detect whether a flag was explicitly set.
func effectiveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Defaults()
	if loadedConfig != nil {
		cfg.Merge(*loadedConfig)
	}

	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()

	// --madhab is applied after --school so it wins when both are given.
	overrides := []struct {
		flag, key, value string
	}{
		{"city", "city", FlagCity},
		{"country", "country", FlagCountry},
		{"latitude", "latitude", strconv.FormatFloat(FlagLatitude, 'f', -1, 64)},
		{"longitude", "longitude", strconv.FormatFloat(FlagLongitude, 'f', -1, 64)},
		{"timezone", "timezone", FlagTimezone},
		{"method", "method", FlagMethod},
		{"school", "madhab", FlagSchool},
		{"madhab", "madhab", FlagMadhab},
		{"high-latitude-rule", "high_latitude_rule", FlagHighLatitudeRule},
		{"adjustments", "adjustments", FlagAdjustments},
		{"prayers", "prayers", FlagPrayers},
		{"cache-dir", "cache_dir", FlagCacheDir},
		{"time-format", "time_format", FlagTimeFormat},
	}
	for _, o := range overrides {
		if !flagWasSet(flags, root, o.flag) {
			continue
		}
		if err := cfg.Set(o.key, o.value); err != nil {
			return nil, fmt.Errorf("--%s: %w", o.flag, err)
		}
	}

	return &cfg, nil
}

// flagWasSet checks if a flag was explicitly set on either the local or persistent flag set.
func flagWasSet(local, persistent *pflag.FlagSet, name string) bool {
	if f := local.Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := persistent.Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}
