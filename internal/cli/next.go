package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/adhan/internal/adhan"
	"github.com/smokyabdulrahman/adhan/internal/prayer"
)

var flagFormat string

const formatHelp = "Display format: time-remaining, next-prayer-time, name-and-time, name-and-remaining, short-name-and-time, short-name-and-remaining, full, or a custom Go template (e.g. '{{.Name}} in {{.Remaining}}'). Template fields: .Name, .ShortName, .Time, .Remaining, .Hours, .Minutes, .Tomorrow"

func newNextCmd(defaultFormat string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next prayer with countdown",
		Long:  "Display the next upcoming prayer time with a countdown.\nAfter the last selected event of the day, the next is tomorrow's first.",
		RunE:  runNext,
	}

	cmd.Flags().StringVar(&flagFormat, "format", defaultFormat, formatHelp)

	return cmd
}

// NewStatusCmd creates the tmux-prayer-times command: `next` as a standalone
// binary, printing name and time by default.
func NewStatusCmd(version string) *cobra.Command {
	cmd := newBaseCmd(version)
	cmd.Use = "tmux-prayer-times"
	cmd.Short = "Next prayer for a tmux status bar"
	cmd.Long = "Print the next upcoming prayer in a single line, for use in a tmux status bar:\n\n  set -g status-right '#(tmux-prayer-times --latitude 21.42 --longitude 39.83)'"
	cmd.RunE = runNext
	cmd.Flags().StringVar(&flagFormat, "format", prayer.FormatNameAndTime, formatHelp)
	cmd.AddCommand(newMethodsCmd())
	return cmd
}

func runNext(cmd *cobra.Command, args []string) error {
	if err := prayer.ValidateFormat(flagFormat); err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	ref := s.reference()
	next, err := nextPrayer(s, ref)
	if err != nil {
		return err
	}

	output, err := prayer.FormatOutput(*next, ref, flagFormat, s.layout)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}

// nextPrayer finds the first selected event after ref. The days around ref
// are merged so that late-night markers and tomorrow's Fajr are found; when
// a polar night leaves them empty the search moves one day on.
func nextPrayer(s *session, ref time.Time) (*prayer.Prayer, error) {
	date := adhan.DateFromTime(ref)
	for i := 0; i <= 1; i++ {
		all, err := s.around(date.AddDays(i))
		if errors.Is(err, prayer.ErrNoSchedule) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if next := prayer.NextPrayer(all, ref); next != nil {
			return next, nil
		}
	}
	return nil, fmt.Errorf("could not determine next prayer: %w", prayer.ErrNoSchedule)
}
