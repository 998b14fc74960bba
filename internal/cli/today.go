package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/adhan/internal/adhan"
	"github.com/smokyabdulrahman/adhan/internal/display"
	"github.com/smokyabdulrahman/adhan/internal/prayer"
	"github.com/smokyabdulrahman/adhan/internal/qibla"
)

// todayView is everything the root command prints.
type todayView struct {
	s       *session
	prayers []prayer.Prayer // nil when the schedule is undefined
	sunnah  *adhan.SunnahTimes
	current *prayer.Prayer
	next    *prayer.Prayer
	bearing float64
}

func runToday(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	v, err := buildToday(s)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if FlagJSON {
		return printTodayJSON(out, v)
	}
	printTodayRich(out, v)
	return nil
}

// buildToday computes the day's events. Current and next are only tracked
// when the date is today; next may be an event of tomorrow.
func buildToday(s *session) (*todayView, error) {
	v := &todayView{s: s, bearing: qibla.Direction(s.place.Coords)}

	pt, err := s.schedule(s.date)
	if err != nil {
		return nil, err
	}
	if !pt.Defined() {
		return v, nil
	}

	v.prayers, err = prayer.FromSchedule(pt, s.loc, s.names)
	if err != nil && !errors.Is(err, prayer.ErrNoSchedule) {
		return nil, err
	}
	if err != nil {
		// Selected night markers need tomorrow's Fajr; show the rest.
		v.prayers, err = prayer.FromSchedule(pt, s.loc, withoutNightMarkers(s.names))
		if err != nil {
			return nil, err
		}
	}
	if sunnah, ok := adhan.NewSunnahTimes(pt); ok {
		v.sunnah = &sunnah
	}

	if s.isToday() {
		v.current = prayer.CurrentPrayer(v.prayers, s.now)
		if next, err := nextPrayer(s, s.now); err == nil {
			v.next = next
		}
	}
	return v, nil
}

func withoutNightMarkers(names []string) []string {
	var out []string
	for _, n := range names {
		if n != prayer.Midnight && n != prayer.Lastthird {
			out = append(out, n)
		}
	}
	return out
}

// formatGregorianDate returns a formatted Gregorian date string.
func formatGregorianDate(date adhan.DateComponents) string {
	return date.Time().Format("Monday, 02 January 2006")
}

// printTodayRich renders the colored terminal output for today's prayer schedule.
func printTodayRich(w io.Writer, v *todayView) {
	s := v.s
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", display.Bold("Prayer Times"))
	fmt.Fprintln(w)

	// Location and date info.
	fmt.Fprintf(w, "  %s\n", s.place.Label())
	fmt.Fprintf(w, "  %s\n", s.loc)
	fmt.Fprintf(w, "  %s\n", formatGregorianDate(s.date))
	fmt.Fprintf(w, "  %s\n", display.Dim(fmt.Sprintf("%s, %s", s.params.Method.Name(), s.params.Madhab)))
	fmt.Fprintln(w)

	if v.prayers == nil {
		fmt.Fprintf(w, "  %s\n", display.Yellow("The sun does not rise or set here on this date; no schedule."))
		fmt.Fprintln(w)
		printQiblaLine(w, v.bearing)
		fmt.Fprintln(w)
		return
	}

	// Find the max prayer name length for alignment.
	maxNameLen := 0
	for _, p := range v.prayers {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	for _, p := range v.prayers {
		line := fmt.Sprintf("  %s  %s", padRight(p.Name, maxNameLen), p.Time.Format(s.layout))

		switch {
		case v.current != nil && samePrayer(p, *v.current):
			// Current prayer: dimmed.
			fmt.Fprintln(w, display.Dim(line))
		case v.next != nil && samePrayer(p, *v.next):
			// Next prayer: accent color + countdown.
			remaining := prayer.FormatRemaining(prayer.TimeRemaining(p, s.now))
			fmt.Fprintln(w, display.Accent(line)+display.Accent(fmt.Sprintf("  <- next in %s", remaining)))
		default:
			fmt.Fprintln(w, line)
		}
	}

	if v.next != nil && !containsPrayer(v.prayers, *v.next) {
		remaining := prayer.FormatRemaining(prayer.TimeRemaining(*v.next, s.now))
		fmt.Fprintln(w)
		fmt.Fprintln(w, display.Accent(fmt.Sprintf("  Next: %s tomorrow at %s (in %s)",
			v.next.Name, v.next.Time.Format(s.layout), remaining)))
	}

	fmt.Fprintln(w)
	if v.sunnah != nil {
		const width = len("Middle of the night")
		fmt.Fprintf(w, "  %s  %s\n", display.Gray(padRight("Middle of the night", width)), v.sunnah.MiddleOfTheNight.In(s.loc).Format(s.layout))
		fmt.Fprintf(w, "  %s  %s\n", display.Gray(padRight("Last third", width)), v.sunnah.LastThirdOfTheNight.In(s.loc).Format(s.layout))
	}
	printQiblaLine(w, v.bearing)
	fmt.Fprintln(w)
}

func printQiblaLine(w io.Writer, bearing float64) {
	fmt.Fprintf(w, "  %s  %.1f° %s %s\n", display.Gray("Qibla"), bearing, qibla.CompassPoint(bearing), display.Cyan(display.Arrow(bearing)))
}

func containsPrayer(prayers []prayer.Prayer, p prayer.Prayer) bool {
	for _, q := range prayers {
		if samePrayer(q, p) {
			return true
		}
	}
	return false
}

func samePrayer(a, b prayer.Prayer) bool {
	return a.Name == b.Name && a.Time.Equal(b.Time)
}

// padRight pads a string to the given width with spaces.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// todayJSON is the JSON output structure for the root command.
type todayJSON struct {
	Location todayJSONLocation `json:"location"`
	Date     todayJSONDate     `json:"date"`
	Method   string            `json:"method"`
	Madhab   string            `json:"madhab"`
	Defined  bool              `json:"defined"`
	Timings  map[string]string `json:"timings"`
	Sunnah   *sunnahJSON       `json:"sunnah,omitempty"`
	Current  string            `json:"current"`
	Next     *todayJSONNext    `json:"next"`
	Qibla    qiblaJSON         `json:"qibla"`
}

type todayJSONLocation struct {
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	Timezone  string  `json:"timezone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type todayJSONDate struct {
	Gregorian string `json:"gregorian"`
	ISO       string `json:"iso"`
}

type todayJSONNext struct {
	Prayer    string `json:"prayer"`
	Time      string `json:"time"`
	Remaining string `json:"remaining"`
	Tomorrow  bool   `json:"tomorrow,omitempty"`
}

func newLocationJSON(s *session) todayJSONLocation {
	return todayJSONLocation{
		City:      s.place.City,
		Country:   s.place.Country,
		Timezone:  s.loc.String(),
		Latitude:  s.place.Coords.Latitude,
		Longitude: s.place.Coords.Longitude,
	}
}

func timingsMap(prayers []prayer.Prayer, layout string) map[string]string {
	timings := make(map[string]string, len(prayers))
	for _, p := range prayers {
		timings[strings.ToLower(p.Name)] = p.Time.Format(layout)
	}
	return timings
}

// printTodayJSON renders structured JSON output.
func printTodayJSON(w io.Writer, v *todayView) error {
	s := v.s
	out := todayJSON{
		Location: newLocationJSON(s),
		Date: todayJSONDate{
			Gregorian: s.date.Time().Format("02 Jan 2006"),
			ISO:       s.date.String(),
		},
		Method:  s.params.Method.String(),
		Madhab:  s.params.Madhab.String(),
		Defined: v.prayers != nil,
		Timings: timingsMap(v.prayers, s.layout),
		Qibla:   newQiblaJSON(s.place.Coords),
	}

	if v.sunnah != nil {
		out.Sunnah = newSunnahJSON(*v.sunnah, s.loc, s.layout)
	}

	if v.current != nil {
		out.Current = strings.ToLower(v.current.Name)
	}

	if v.next != nil {
		data := prayer.NewFormatData(*v.next, s.now, s.layout)
		out.Next = &todayJSONNext{
			Prayer:    strings.ToLower(v.next.Name),
			Time:      data.Time,
			Remaining: data.Remaining,
			Tomorrow:  data.Tomorrow,
		}
	}

	return writeJSON(w, out)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// sunnahJSON holds the night markers in the display layout.
type sunnahJSON struct {
	MiddleOfTheNight    string `json:"middle_of_the_night"`
	LastThirdOfTheNight string `json:"last_third_of_the_night"`
}

func newSunnahJSON(st adhan.SunnahTimes, loc *time.Location, layout string) *sunnahJSON {
	return &sunnahJSON{
		MiddleOfTheNight:    st.MiddleOfTheNight.In(loc).Format(layout),
		LastThirdOfTheNight: st.LastThirdOfTheNight.In(loc).Format(layout),
	}
}
