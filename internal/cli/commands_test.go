package cli

import (
	"context"
	"io"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/smokyabdulrahman/adhan/internal/adhan"
	"github.com/smokyabdulrahman/adhan/internal/config"
	"github.com/smokyabdulrahman/adhan/internal/display"
)

// ---------------------------------------------------------------------------
// next
// ---------------------------------------------------------------------------

func TestNext_Formats(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"full", nil, "Asr 18:22 (4h 22m)"},
		{"name and time", []string{"--format", "name-and-time"}, "Asr 18:22"},
		{"time remaining", []string{"--format", "time-remaining"}, "4h 22m"},
		{"short name", []string{"--format", "short-name-and-remaining"}, "A 4h 22m"},
		{"template", []string{"--format", "{{.Name}} in {{.Hours}}h{{.Minutes}}"}, "Asr in 4h22"},
		{"selected", []string{"--prayers", "fajr,maghrib", "--format", "name-and-time"}, "Maghrib 20:32"},
		{"12h", []string{"--time-format", "12h", "--format", "next-prayer-time"}, "6:22 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			got := h.mustRun(args(args(raleighArgs, "next"), tt.args...)...)
			if got != tt.want {
				t.Errorf("next = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNext_RollsOverMidnight(t *testing.T) {
	h := newHarness(t)
	h.setNow(time.Date(2015, time.July, 13, 3, 0, 0, 0, time.UTC)) // 23:00 EDT

	got := h.mustRun(args(raleighArgs, "next", "--format", "{{.Name}}-{{.Tomorrow}}")...)
	if got != "Fajr-true" {
		t.Errorf("after Isha: next = %q, want Fajr-true", got)
	}

	got = h.mustRun(args(raleighArgs, "next", "--prayers", "isha,midnight,lastthird", "--format", "{{.Name}}")...)
	if got != "Midnight" {
		t.Errorf("with night markers: next = %q, want Midnight", got)
	}
}

func TestNext_ForDate(t *testing.T) {
	h := newHarness(t)
	h.setNow(time.Date(2016, time.January, 1, 12, 0, 0, 0, time.UTC))
	got := h.mustRun(args(raleighArgs, "next", "--date", "2015-07-12", "--format", "name-and-time")...)
	if got != "Fajr 04:42" {
		t.Errorf("next = %q, want the first event of the day", got)
	}
}

func TestNext_InvalidFormat(t *testing.T) {
	h := newHarness(t)
	for _, format := range []string{"sideways", "{{.Name"} {
		if _, err := h.run(args(raleighArgs, "next", "--format", format)...); err == nil {
			t.Errorf("--format %q: expected error", format)
		}
	}
}

func TestNext_PolarDay(t *testing.T) {
	h := newHarness(t)
	if _, err := h.run(args(tromsoArgs, "next")...); err == nil {
		t.Error("expected an error when no schedule exists around the date")
	}
}

// ---------------------------------------------------------------------------
// list / week / month
// ---------------------------------------------------------------------------

func TestList_JSON(t *testing.T) {
	tests := []struct {
		args []string
		days int
	}{
		{[]string{"list", "3"}, 3},
		{[]string{"list"}, 7},
		{[]string{"week"}, 7},
		{[]string{"month"}, 30},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, "_"), func(t *testing.T) {
			h := newHarness(t)
			got := mustDecode[listJSONOutput](t, h.mustRun(args(args(raleighArgs, tt.args...), "--json")...))

			if len(got.Days) != tt.days {
				t.Fatalf("got %d days, want %d", len(got.Days), tt.days)
			}
			first := got.Days[0]
			if first.Date != "2015-07-12" || first.Timings["fajr"] != "04:42" || first.Timings["isha"] != "21:57" {
				t.Errorf("first day = %+v", first)
			}
			if got.Days[1].Date != "2015-07-13" {
				t.Errorf("second day = %q", got.Days[1].Date)
			}
			for _, d := range got.Days {
				if !d.Defined || len(d.Timings) != 6 {
					t.Errorf("%s: defined=%v timings=%v", d.Date, d.Defined, d.Timings)
				}
			}
		})
	}
}

func TestList_Table(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun(args(raleighArgs, "list", "2", "--city", "Raleigh", "--country", "USA")...)

	for _, want := range []string{"2 Days", "Raleigh, USA", "Date", "Fajr", "Isha", "Sun 12 Jul", "Mon 13 Jul", "04:42", "21:57"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestList_PolarDays(t *testing.T) {
	h := newHarness(t)
	got := mustDecode[listJSONOutput](t, h.mustRun(args(tromsoArgs, "list", "2", "--json")...))
	for _, d := range got.Days {
		if d.Defined || len(d.Timings) != 0 {
			t.Errorf("%s: defined=%v timings=%v, want undefined", d.Date, d.Defined, d.Timings)
		}
	}

	out := h.mustRun(args(tromsoArgs, "list", "2")...)
	if !strings.Contains(out, display.Placeholder) {
		t.Errorf("table missing %q placeholders:\n%s", display.Placeholder, out)
	}
}

func TestList_InvalidDays(t *testing.T) {
	h := newHarness(t)
	for _, n := range []string{"0", "-3", "many"} {
		if _, err := h.run(args(raleighArgs, "list", n)...); err == nil {
			t.Errorf("list %s: expected error", n)
		}
	}
}

// ---------------------------------------------------------------------------
// query
// ---------------------------------------------------------------------------

func TestQuery_SingleDay(t *testing.T) {
	h := newHarness(t)
	if got := h.mustRun(args(raleighArgs, "query", "fajr")...); got != "Fajr 04:42\n" {
		t.Errorf("query fajr = %q", got)
	}

	got := mustDecode[queryJSONSingle](t, h.mustRun(args(raleighArgs, "query", "ISHA", "--json")...))
	if got.Prayer != "isha" || got.Time != "21:57" || got.Date != "2015-07-12" || !got.Defined {
		t.Errorf("query ISHA = %+v", got)
	}
}

func TestQuery_MultiDay(t *testing.T) {
	h := newHarness(t)
	got := mustDecode[queryJSONMulti](t, h.mustRun(args(raleighArgs, "query", "maghrib", "--days", "week", "--json")...))
	if got.Prayer != "maghrib" || len(got.Days) != 7 {
		t.Fatalf("query = %+v", got)
	}
	if got.Days[0].Time != "20:32" {
		t.Errorf("first maghrib = %q, want 20:32", got.Days[0].Time)
	}
	// Sunset moves earlier through July.
	if got.Days[6].Time > got.Days[0].Time {
		t.Errorf("maghrib %s on day 7 is later than %s on day 1", got.Days[6].Time, got.Days[0].Time)
	}

	out := h.mustRun(args(raleighArgs, "query", "maghrib", "--days", "3")...)
	if !strings.Contains(out, "Maghrib Times") || !strings.Contains(out, "Tue 14 Jul") {
		t.Errorf("table output:\n%s", out)
	}
}

func TestQuery_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown prayer", []string{"query", "tahajjud"}},
		{"bad days", []string{"query", "fajr", "--days", "fortnight"}},
		{"zero days", []string{"query", "fajr", "--days", "0"}},
		{"no prayer", []string{"query"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			if _, err := h.run(args(raleighArgs, tt.args...)...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseDays(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 1, false},
		{"1", 1, false},
		{"week", 7, false},
		{"Month", 30, false},
		{"12", 12, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"soon", 0, true},
	}

	for _, tt := range tests {
		got, err := parseDays(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDays(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDays(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// qibla / sunnah / methods
// ---------------------------------------------------------------------------

func TestQibla(t *testing.T) {
	h := newHarness(t)
	london := []string{"--latitude", "51.5074", "--longitude", "-0.1278", "qibla"}

	got := mustDecode[struct {
		Latitude  float64 `json:"latitude"`
		Direction float64 `json:"direction"`
		Compass   string  `json:"compass"`
	}](t, h.mustRun(args(london, "--json")...))
	if math.Abs(got.Direction-118.987) > 0.01 || got.Compass != "ESE" || got.Latitude != 51.5074 {
		t.Errorf("qibla = %+v, want 118.987 ESE", got)
	}

	out := h.mustRun(london...)
	if !strings.Contains(out, "118.99° from true north (ESE)") {
		t.Errorf("output:\n%s", out)
	}
}

func TestSunnah(t *testing.T) {
	h := newHarness(t)
	got := mustDecode[sunnahOutput](t, h.mustRun(args(raleighArgs, "sunnah", "--json")...))

	params := adhan.NorthAmerica.Parameters()
	params.Madhab = adhan.Hanafi
	pt, err := adhan.NewPrayerTimes(coords(35.7750, -78.6336), adhan.NewDateComponents(2015, time.July, 12), params)
	if err != nil {
		t.Fatal(err)
	}
	want, ok := adhan.NewSunnahTimes(pt)
	if !ok {
		t.Fatal("NewSunnahTimes() not ok")
	}
	ny, _ := time.LoadLocation("America/New_York")

	if got.Date != "2015-07-12" {
		t.Errorf("date = %q", got.Date)
	}
	if got.MiddleOfTheNight != want.MiddleOfTheNight.In(ny).Format("15:04") {
		t.Errorf("middle = %q, want %v", got.MiddleOfTheNight, want.MiddleOfTheNight.In(ny))
	}
	if got.LastThirdOfTheNight != want.LastThirdOfTheNight.In(ny).Format("15:04") {
		t.Errorf("last third = %q, want %v", got.LastThirdOfTheNight, want.LastThirdOfTheNight.In(ny))
	}

	if _, err := h.run(args(tromsoArgs, "sunnah")...); err == nil {
		t.Error("expected an error during polar day")
	}
}

func TestMethodsSubcommand(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("methods")

	for _, m := range adhan.Methods() {
		if !strings.Contains(out, m.String()) || !strings.Contains(out, m.Name()) {
			t.Errorf("methods output missing %s (%s)", m, m.Name())
		}
	}
	if !strings.Contains(out, "90 min") {
		t.Error("methods output missing Umm al-Qura's Isha interval")
	}

	type method struct {
		Key          string  `json:"key"`
		ID           int     `json:"id"`
		Fajr         float64 `json:"fajr"`
		IshaInterval int     `json:"isha_interval"`
	}
	list := mustDecode[[]method](t, h.mustRun("methods", "--json"))
	if len(list) != len(adhan.Methods()) {
		t.Errorf("got %d methods, want %d", len(list), len(adhan.Methods()))
	}
	for _, m := range list {
		if m.Key == "umm-al-qura" && (m.ID != 4 || m.Fajr != 18.5 || m.IshaInterval != 90) {
			t.Errorf("umm-al-qura = %+v", m)
		}
	}
}

// ---------------------------------------------------------------------------
// config
// ---------------------------------------------------------------------------

func TestConfigCommands(t *testing.T) {
	h := newHarness(t)
	wantPath := filepath.Join(h.configDir, "prayer-times", "config.json")

	if got := strings.TrimSpace(h.mustRun("config", "path")); got != wantPath {
		t.Errorf("config path = %q, want %q", got, wantPath)
	}

	tests := []struct {
		key, value, want string
	}{
		{"method", "4", "Set method = umm-al-qura\n"},
		{"madhab", "1", "Set madhab = hanafi\n"},
		{"school", "Shafi", "Set school = shafi\n"},
		{"adjustments", "isha=-1, fajr=2", "Set adjustments = fajr=2,isha=-1\n"},
		{"prayers", "isha,fajr", "Set prayers = Isha,Fajr\n"},
		{"city", "Makkah", "Set city = Makkah\n"},
	}
	for _, tt := range tests {
		if got := h.mustRun("config", "set", tt.key, tt.value); got != tt.want {
			t.Errorf("config set %s %q = %q, want %q", tt.key, tt.value, got, tt.want)
		}
	}

	out := h.mustRun("config")
	for _, want := range []string{
		wantPath,
		"umm-al-qura (Umm Al-Qura University, Makkah)",
		"shafi (Asr at shadow length 1)",
		"fajr=2,isha=-1",
		"time_format         24h (default)",
		"latitude            (not set)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}

	if _, err := h.run("config", "set", "method", "bogus"); err == nil {
		t.Error("config set method bogus: expected error")
	}
	if _, err := h.run("config", "set", "colour", "blue"); err == nil {
		t.Error("config set unknown key: expected error")
	}

	h.mustRun("config", "reset")
	out = h.mustRun("config")
	if !strings.Contains(out, "mwl (Muslim World League) (default)") {
		t.Errorf("after reset:\n%s", out)
	}
}

func TestConfigDrivesSchedule(t *testing.T) {
	h := newHarness(t)
	for _, kv := range [][2]string{
		{"latitude", "35.7750"},
		{"longitude", "-78.6336"},
		{"timezone", "America/New_York"},
		{"method", "north-america"},
		{"madhab", "hanafi"},
		{"adjustments", "fajr=10"},
	} {
		h.mustRun("config", "set", kv[0], kv[1])
	}

	if got := h.mustRun("query", "fajr"); got != "Fajr 04:52\n" {
		t.Errorf("query fajr = %q, want the adjusted time", got)
	}
}

// ---------------------------------------------------------------------------
// serve
// ---------------------------------------------------------------------------

func TestServe_StopsWithContext(t *testing.T) {
	newHarness(t)
	t.Setenv(config.EnvName("shutdown_timeout"), "1s")

	ctx, cancel := context.WithCancel(context.Background())
	cmd := NewRootCmd("test")
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"serve", "--addr", "127.0.0.1:0"})

	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}

func TestServe_InvalidSettings(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"log level", "log_level", "loud"},
		{"shutdown timeout", "shutdown_timeout", "soon"},
		{"method", "method", "bogus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			t.Setenv(config.EnvName(tt.key), tt.value)
			if _, err := h.run("serve", "--addr", "127.0.0.1:0"); err == nil {
				t.Error("expected error")
			}
		})
	}
}
