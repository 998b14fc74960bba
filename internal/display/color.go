// Package display renders prayer schedules for the terminal: ANSI styling,
// aligned day tables and compass arrows for the qibla.
//
// Styling honours NO_COLOR (https://no-color.org/) and FORCE_COLOR, and is
// off when stdout is not a terminal.
package display

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	fgGray = "\033[90m"
)

var enabled = shouldEnable(os.Stdout)

func shouldEnable(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if _, ok := os.LookupEnv("FORCE_COLOR"); ok {
		return true
	}
	return IsTerminal(f)
}

// IsTerminal reports whether f is a terminal, including Cygwin and MSYS
// pseudo terminals on Windows.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SetEnabled overrides the detected color state, e.g. for --json output.
func SetEnabled(b bool) {
	enabled = b
}

// Enabled reports whether color output is active.
func Enabled() bool {
	return enabled
}

func wrap(code, text string) string {
	if !enabled {
		return text
	}
	return code + text + reset
}

func Bold(text string) string   { return wrap(bold, text) }
func Dim(text string) string    { return wrap(dim, text) }
func Red(text string) string    { return wrap(red, text) }
func Green(text string) string  { return wrap(green, text) }
func Yellow(text string) string { return wrap(yellow, text) }
func Cyan(text string) string   { return wrap(cyan, text) }
func Gray(text string) string   { return wrap(fgGray, text) }

// Accent highlights the next prayer (bold cyan).
func Accent(text string) string {
	if !enabled {
		return text
	}
	return bold + cyan + text + reset
}

// Boldf formats and bolds a string.
func Boldf(format string, a ...any) string {
	return Bold(fmt.Sprintf(format, a...))
}
