package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/adhan/internal/adhan"
	"github.com/smokyabdulrahman/adhan/internal/display"
	"github.com/smokyabdulrahman/adhan/internal/prayer"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [days]",
		Short: "Show prayer times for multiple days",
		Long:  "Display a grid of prayer times for N days (default: 7), starting today or at --date.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days := 7
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("invalid number of days: %q (must be a positive integer)", args[0])
				}
				days = n
			}
			return runList(cmd, days)
		},
	}
}

func newWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show prayer times for the next 7 days",
		Long:  "Alias for 'list 7'. Display a grid of prayer times for 7 days.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, 7)
		},
	}
}

func newMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month",
		Short: "Show prayer times for the next 30 days",
		Long:  "Alias for 'list 30'. Display a grid of prayer times for 30 days.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, 30)
		},
	}
}

// dayData holds a single day's events for list/query output.
type dayData struct {
	Date    adhan.DateComponents
	Prayers []prayer.Prayer // nil when the day has no schedule
}

// time returns the formatted time of the named event, or "" if it has none.
func (d dayData) time(name, layout string) string {
	for _, p := range d.Prayers {
		if p.Name == name {
			return p.Time.Format(layout)
		}
	}
	return ""
}

// cell is time with a placeholder for events that do not occur.
func (d dayData) cell(name, layout string) string {
	if t := d.time(name, layout); t != "" {
		return t
	}
	return display.Placeholder
}

// collectDays computes `days` consecutive days starting at start. Days the
// sun does not allow a schedule for are kept with no events.
func collectDays(s *session, start adhan.DateComponents, days int, names []string) ([]dayData, error) {
	out := make([]dayData, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDays(i)
		prayers, err := s.prayers(date, names)
		if err != nil && !errors.Is(err, prayer.ErrNoSchedule) {
			return nil, err
		}
		out = append(out, dayData{Date: date, Prayers: prayers})
	}
	return out, nil
}

// runList is the handler for the list, week and month subcommands.
func runList(cmd *cobra.Command, days int) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	daysList, err := collectDays(s, s.date, days, s.names)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if FlagJSON {
		return printListJSON(w, s, daysList)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", display.Boldf("Prayer Times \u2014 %d Days", days))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", s.place.Label())
	fmt.Fprintln(w)

	fmt.Fprint(w, renderDays(s, daysList, s.names))
	fmt.Fprintln(w)
	return nil
}

// renderDays builds the table for daysList with one column per name. Today's
// row is highlighted, and within it the next event.
func renderDays(s *session, daysList []dayData, names []string) string {
	headers := append([]string{"Date"}, names...)
	tbl := display.NewTable(headers)

	today := adhan.DateFromTime(s.now)
	next, _ := nextPrayer(s, s.now)

	for i, dd := range daysList {
		row := []string{dd.Date.Time().Format("Mon 02 Jan")}
		for col, name := range names {
			row = append(row, dd.cell(name, s.layout))
			if dd.Date == today && next != nil && containsPrayer(dd.Prayers, *next) && next.Name == name {
				tbl.SetHighlightCell(col + 1)
			}
		}
		tbl.AddRow(row)

		if dd.Date == today {
			tbl.SetHighlightRow(i)
		}
	}

	return tbl.Render()
}

// listJSONOutput is the JSON structure for the list command.
type listJSONOutput struct {
	Location todayJSONLocation `json:"location"`
	Method   string            `json:"method"`
	Madhab   string            `json:"madhab"`
	Days     []listJSONDay     `json:"days"`
}

type listJSONDay struct {
	Date    string            `json:"date"`
	Defined bool              `json:"defined"`
	Timings map[string]string `json:"timings"`
}

func printListJSON(w io.Writer, s *session, daysList []dayData) error {
	out := listJSONOutput{
		Location: newLocationJSON(s),
		Method:   s.params.Method.String(),
		Madhab:   s.params.Madhab.String(),
	}

	for _, dd := range daysList {
		out.Days = append(out.Days, listJSONDay{
			Date:    dd.Date.String(),
			Defined: dd.Prayers != nil,
			Timings: timingsMap(dd.Prayers, s.layout),
		})
	}

	return writeJSON(w, out)
}

// parseDays accepts a positive integer, "week" or "month".
func parseDays(raw string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "1":
		return 1, nil
	case "week":
		return 7, nil
	case "month":
		return 30, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid --days value %q: must be a positive integer, 'week', or 'month'", raw)
	}
	return n, nil
}
