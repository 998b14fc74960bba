package prayer

import (
	"fmt"
	"strings"
	"text/template"
	"time"
)

// Format constants for display modes.
const (
	FormatTimeRemaining      = "time-remaining"
	FormatNextPrayerTime     = "next-prayer-time"
	FormatNameAndTime        = "name-and-time"
	FormatNameAndRemaining   = "name-and-remaining"
	FormatShortNameAndTime   = "short-name-and-time"
	FormatShortNameAndRemain = "short-name-and-remaining"
	FormatFull               = "full"
)

// Time layouts for the two supported clock styles.
const (
	Layout24h = "15:04"
	Layout12h = "3:04 PM"
)

// FormatData is the data passed to custom Go templates.
type FormatData struct {
	Name      string // Full event name, e.g. "Asr"
	ShortName string // Abbreviated name, e.g. "A"
	Time      string // Formatted time, e.g. "15:02" or "3:02 PM"
	Remaining string // Time remaining, e.g. "2h 15m"
	Hours     int    // Whole hours remaining
	Minutes   int    // Remaining minutes after hours
	Tomorrow  bool   // The event falls on a later calendar day than now
}

var builtinFormats = map[string]func(FormatData) string{
	FormatTimeRemaining:      func(d FormatData) string { return d.Remaining },
	FormatNextPrayerTime:     func(d FormatData) string { return d.Time },
	FormatNameAndTime:        func(d FormatData) string { return d.Name + " " + d.Time },
	FormatNameAndRemaining:   func(d FormatData) string { return d.Name + " " + d.Remaining },
	FormatShortNameAndTime:   func(d FormatData) string { return d.ShortName + " " + d.Time },
	FormatShortNameAndRemain: func(d FormatData) string { return d.ShortName + " " + d.Remaining },
	FormatFull:               func(d FormatData) string { return fmt.Sprintf("%s %s (%s)", d.Name, d.Time, d.Remaining) },
}

// Formats lists the built-in display modes.
func Formats() []string {
	return []string{
		FormatTimeRemaining, FormatNextPrayerTime,
		FormatNameAndTime, FormatNameAndRemaining,
		FormatShortNameAndTime, FormatShortNameAndRemain,
		FormatFull,
	}
}

// TimeLayout maps a "12h"/"24h" setting to a time layout. Anything other than
// "12h" is 24-hour.
func TimeLayout(timeFormat string) string {
	if timeFormat == "12h" {
		return Layout12h
	}
	return Layout24h
}

// NewFormatData collects everything a display mode can show about p.
func NewFormatData(p Prayer, now time.Time, layout string) FormatData {
	d := TimeRemaining(p, now)
	h, m := splitRemaining(d)

	py, pm, pd := p.Time.Date()
	ny, nm, nd := now.In(p.Time.Location()).Date()

	return FormatData{
		Name:      p.Name,
		ShortName: ShortNames[p.Name],
		Time:      p.Time.Format(layout),
		Remaining: FormatRemaining(d),
		Hours:     h,
		Minutes:   m,
		Tomorrow:  py != ny || pm != nm || pd != nd,
	}
}

// FormatOutput formats a prayer for display according to the chosen format mode.
//
// If mode contains "{{", it is treated as a custom Go template string over
// FormatData, e.g. "{{.Name}} in {{.Remaining}}" -> "Asr in 2h 15m". Unknown
// built-in modes fall back to name-and-time.
func FormatOutput(p Prayer, now time.Time, mode string, layout string) (string, error) {
	data := NewFormatData(p, now, layout)

	if strings.Contains(mode, "{{") {
		return formatCustom(mode, data)
	}

	if f, ok := builtinFormats[mode]; ok {
		return f(data), nil
	}
	return builtinFormats[FormatNameAndTime](data), nil
}

// ValidateFormat reports whether mode is a built-in mode or a template that
// parses.
func ValidateFormat(mode string) error {
	if strings.Contains(mode, "{{") {
		_, err := template.New("custom").Parse(mode)
		if err != nil {
			return fmt.Errorf("invalid format template: %w", err)
		}
		return nil
	}
	if _, ok := builtinFormats[mode]; !ok {
		return fmt.Errorf("unknown format %q; valid formats: %s", mode, strings.Join(Formats(), ", "))
	}
	return nil
}

func formatCustom(tmpl string, data FormatData) (string, error) {
	t, err := template.New("custom").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("invalid format template: %w", err)
	}

	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("format template: %w", err)
	}
	return sb.String(), nil
}
