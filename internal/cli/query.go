package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/adhan/internal/display"
	"github.com/smokyabdulrahman/adhan/internal/prayer"
)

var flagQueryDays string

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <prayer>",
		Short: "Query a specific prayer time",
		Long: "Query a specific prayer time for today, or across multiple days with --days.\n\nValid prayer names: " +
			strings.Join(prayer.AllPrayerNames, ", "),
		Args: cobra.ExactArgs(1),
		RunE: runQuery,
	}

	cmd.Flags().StringVar(&flagQueryDays, "days", "", "Number of days to show (or 'week'/'month')")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	prayerName, ok := prayer.CanonicalName(args[0])
	if !ok {
		return fmt.Errorf("unknown prayer %q; valid names: %s", args[0], strings.Join(prayer.AllPrayerNames, ", "))
	}

	days, err := parseDays(flagQueryDays)
	if err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	daysList, err := collectDays(s, s.date, days, []string{prayerName})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	// Single day.
	if days == 1 {
		dd := daysList[0]
		timeStr := dd.time(prayerName, s.layout)
		if FlagJSON {
			return writeJSON(w, queryJSONSingle{
				Prayer:  strings.ToLower(prayerName),
				Time:    timeStr,
				Date:    dd.Date.String(),
				Defined: dd.Prayers != nil,
			})
		}
		fmt.Fprintf(w, "%s %s\n", prayerName, dd.cell(prayerName, s.layout))
		return nil
	}

	if FlagJSON {
		out := queryJSONMulti{
			Location: newLocationJSON(s),
			Prayer:   strings.ToLower(prayerName),
		}
		for _, dd := range daysList {
			out.Days = append(out.Days, queryJSONDay{
				Date:    dd.Date.String(),
				Defined: dd.Prayers != nil,
				Time:    dd.time(prayerName, s.layout),
			})
		}
		return writeJSON(w, out)
	}

	// Rich terminal output.
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", display.Boldf("%s Times \u2014 %d Days", prayerName, days))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", s.place.Label())
	fmt.Fprintln(w)
	fmt.Fprint(w, renderDays(s, daysList, []string{prayerName}))
	fmt.Fprintln(w)
	return nil
}

type queryJSONSingle struct {
	Prayer  string `json:"prayer"`
	Time    string `json:"time,omitempty"`
	Date    string `json:"date"`
	Defined bool   `json:"defined"`
}

type queryJSONMulti struct {
	Location todayJSONLocation `json:"location"`
	Prayer   string            `json:"prayer"`
	Days     []queryJSONDay    `json:"days"`
}

type queryJSONDay struct {
	Date    string `json:"date"`
	Defined bool   `json:"defined"`
	Time    string `json:"time,omitempty"`
}
