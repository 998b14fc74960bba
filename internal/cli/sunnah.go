package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/adhan/internal/adhan"
	"github.com/smokyabdulrahman/adhan/internal/display"
	"github.com/smokyabdulrahman/adhan/internal/prayer"
)

func newSunnahCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sunnah",
		Short: "Show the middle and last third of tonight",
		Long:  "Print the middle of the night and the start of its last third, measured from today's Maghrib to tomorrow's Fajr.",
		Args:  cobra.NoArgs,
		RunE:  runSunnah,
	}
}

type sunnahOutput struct {
	Date string `json:"date"`
	sunnahJSON
}

func runSunnah(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	pt, err := s.schedule(s.date)
	if err != nil {
		return err
	}
	st, ok := adhan.NewSunnahTimes(pt)
	if !ok {
		return fmt.Errorf("night of %s: %w", s.date, prayer.ErrNoSchedule)
	}

	w := cmd.OutOrStdout()
	out := sunnahOutput{Date: s.date.String(), sunnahJSON: *newSunnahJSON(st, s.loc, s.layout)}
	if FlagJSON {
		return writeJSON(w, out)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", display.Bold("Night of "+formatGregorianDate(s.date)))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", s.place.Label())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Middle of the night  %s\n", out.MiddleOfTheNight)
	fmt.Fprintf(w, "  Last third starts    %s\n", out.LastThirdOfTheNight)
	fmt.Fprintln(w)
	return nil
}
