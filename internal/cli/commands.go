package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/adhan/internal/adhan"
	"github.com/smokyabdulrahman/adhan/internal/config"
	"github.com/smokyabdulrahman/adhan/internal/display"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or modify configuration",
		Long:  "Display current configuration, or use subcommands to modify it.\nWhen run without subcommands, shows the current configuration.",
		RunE:  runConfigShow,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Long: fmt.Sprintf("Set a configuration value. Valid keys: %s\n\nExamples:\n  prayer-times config set latitude 21.4225\n  prayer-times config set longitude 39.8262\n  prayer-times config set timezone Asia/Riyadh\n  prayer-times config set method umm-al-qura\n  prayer-times config set madhab hanafi\n  prayer-times config set fajr_angle 16.5\n  prayer-times config set adjustments fajr=2,isha=-1\n  prayer-times config set time_format 12h\n  prayer-times config set prayers Fajr,Dhuhr,Asr,Maghrib,Isha,Lastthird\n\nEvery key can also be set through the environment, e.g. %s.",
			strings.Join(config.ValidKeys, ", "), config.EnvName("method")),
		Args: cobra.ExactArgs(2),
		RunE: runConfigSet,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset config to defaults",
		Long:  "Delete the config file and restore all settings to defaults.",
		Args:  cobra.NoArgs,
		RunE:  runConfigReset,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print config file path",
		Args:  cobra.NoArgs,
		RunE:  runConfigPath,
	})

	return cmd
}

// runConfigShow displays the stored configuration. Unset keys show the
// default they fall back to.
func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	defaults := config.Defaults()

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "  Configuration (%s)\n\n", path)

	for _, key := range config.ValidKeys {
		val, _ := cfg.Get(key)
		shown := val
		if shown == "" {
			if def, _ := defaults.Get(key); def != "" {
				val = def
				shown = def + " " + display.Dim("(default)")
			} else {
				shown = display.Dim("(not set)")
			}
		}
		// Add descriptive labels for method and madhab.
		switch key {
		case "method":
			shown = formatMethodValue(val) + strings.TrimPrefix(shown, val)
		case "madhab":
			shown = formatMadhabValue(val) + strings.TrimPrefix(shown, val)
		}
		fmt.Fprintf(w, "  %-19s %s\n", key, shown)
	}
	return nil
}

// runConfigSet sets a config key to the given value.
func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}

	if err := cfg.Save(); err != nil {
		return err
	}

	// Print the stored, canonical spelling.
	stored, err := cfg.Get(key)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s\n", display.Green("Set"), key, stored)
	return nil
}

// runConfigReset deletes the config file.
func runConfigReset(cmd *cobra.Command, args []string) error {
	if err := config.Reset(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Configuration reset to defaults.")
	return nil
}

// runConfigPath prints the config file path.
func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// formatMethodValue adds the method name to the stored key.
func formatMethodValue(val string) string {
	m, err := adhan.ParseMethod(val)
	if err != nil {
		return val
	}
	return fmt.Sprintf("%s (%s)", val, m.Name())
}

// formatMadhabValue adds the Asr shadow rule to the stored madhab.
func formatMadhabValue(val string) string {
	switch val {
	case adhan.Shafi.String():
		return val + " (Asr at shadow length 1)"
	case adhan.Hanafi.String():
		return val + " (Asr at shadow length 2)"
	default:
		return val
	}
}

// formatIsha describes how a method places Isha.
func formatIsha(p adhan.CalculationParameters) string {
	if p.IshaInterval > 0 {
		return strconv.Itoa(p.IshaInterval) + " min"
	}
	return strconv.FormatFloat(p.IshaAngle, 'f', -1, 64) + "°"
}

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List all calculation methods",
		Long:  "Print the table of supported calculation methods with their twilight angles.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if FlagJSON {
				type methodJSON struct {
					Key          string  `json:"key"`
					ID           int     `json:"id"`
					Name         string  `json:"name"`
					Fajr         float64 `json:"fajr"`
					Isha         float64 `json:"isha,omitempty"`
					IshaInterval int     `json:"isha_interval,omitempty"`
				}
				var out []methodJSON
				for _, m := range adhan.Methods() {
					p := m.Parameters()
					mj := methodJSON{Key: m.String(), ID: m.ID(), Name: m.Name(), Fajr: p.FajrAngle, IshaInterval: p.IshaInterval}
					if p.IshaInterval <= 0 {
						mj.Isha = p.IshaAngle
					}
					out = append(out, mj)
				}
				return writeJSON(w, out)
			}

			tbl := display.NewTable([]string{"Key", "ID", "Name", "Fajr", "Isha"})
			for _, m := range adhan.Methods() {
				p := m.Parameters()
				tbl.AddRow([]string{
					m.String(),
					strconv.Itoa(m.ID()),
					m.Name(),
					strconv.FormatFloat(p.FajrAngle, 'f', -1, 64) + "°",
					formatIsha(p),
				})
			}

			fmt.Fprintln(w, "Supported calculation methods:")
			fmt.Fprintln(w)
			fmt.Fprint(w, tbl.Render())
			fmt.Fprintln(w)
			fmt.Fprintf(w, "Use --method <key or id> to select a calculation method (default: %s).\n", config.Defaults().Method)
			return nil
		},
	}
}
