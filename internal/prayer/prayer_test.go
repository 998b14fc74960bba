package prayer

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/smokyabdulrahman/adhan/internal/adhan"
)

var edt = time.FixedZone("EDT", -4*3600)

// helper to build a time.Time on a given date in UTC.
func makeTime(t *testing.T, hour, min int) time.Time {
	t.Helper()
	return time.Date(2026, 2, 28, hour, min, 0, 0, time.UTC)
}

// raleighSchedule is the North America / Hanafi schedule for Raleigh on
// 2015-07-12, the reference day used throughout the engine tests.
func raleighSchedule(t *testing.T) *adhan.PrayerTimes {
	t.Helper()
	params := adhan.NorthAmerica.Parameters()
	params.Madhab = adhan.Hanafi

	pt, err := adhan.NewPrayerTimes(
		adhan.Coordinates{Latitude: 35.7750, Longitude: -78.6336},
		adhan.NewDateComponents(2015, time.July, 12),
		params,
	)
	if err != nil {
		t.Fatalf("NewPrayerTimes() error: %v", err)
	}
	return pt
}

// ---------------------------------------------------------------------------
// ParseNames / CanonicalName
// ---------------------------------------------------------------------------

func TestParseNames(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"empty uses defaults", "", DefaultPrayerNames, false},
		{"blank uses defaults", "   ", DefaultPrayerNames, false},
		{"single", "Fajr", []string{"Fajr"}, false},
		{"spaces trimmed", " Fajr , Isha ", []string{"Fajr", "Isha"}, false},
		{"case insensitive", "fajr,MAGHRIB,lastthird", []string{"Fajr", "Maghrib", "Lastthird"}, false},
		{"duplicates dropped", "Fajr,fajr,Isha", []string{"Fajr", "Isha"}, false},
		{"night markers", "Isha,Midnight", []string{"Isha", "Midnight"}, false},
		{"unknown", "Fajr,Tahajjud", nil, true},
		{"api-only names rejected", "Imsak", nil, true},
		{"trailing comma", "Fajr,", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNames(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseNames(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNames(%q) unexpected error: %v", tt.input, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseNames(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNames_DefaultsAreCopied(t *testing.T) {
	got, _ := ParseNames("")
	got[0] = "changed"
	if DefaultPrayerNames[0] != "Fajr" {
		t.Error("ParseNames returned the shared defaults slice")
	}
}

func TestShortNames_CoverAllNames(t *testing.T) {
	for _, n := range AllPrayerNames {
		if ShortNames[n] == "" {
			t.Errorf("no short name for %s", n)
		}
	}
}

// ---------------------------------------------------------------------------
// FromSchedule
// ---------------------------------------------------------------------------

func TestFromSchedule_Defaults(t *testing.T) {
	pt := raleighSchedule(t)

	prayers, err := FromSchedule(pt, edt, DefaultPrayerNames)
	if err != nil {
		t.Fatalf("FromSchedule() error: %v", err)
	}

	want := []struct{ name, at string }{
		{"Fajr", "04:42"},
		{"Sunrise", "06:08"},
		{"Dhuhr", "13:21"},
		{"Asr", "18:22"},
		{"Maghrib", "20:32"},
		{"Isha", "21:57"},
	}
	if len(prayers) != len(want) {
		t.Fatalf("got %d prayers, want %d", len(prayers), len(want))
	}
	for i, w := range want {
		p := prayers[i]
		if p.Name != w.name || p.Time.Format("15:04") != w.at {
			t.Errorf("prayers[%d] = %s %s, want %s %s", i, p.Name, p.Time.Format("15:04"), w.name, w.at)
		}
		if p.Time.Location() != edt {
			t.Errorf("prayers[%d] location = %v, want %v", i, p.Time.Location(), edt)
		}
	}
}

func TestFromSchedule_SortsChronologically(t *testing.T) {
	pt := raleighSchedule(t)

	prayers, err := FromSchedule(pt, time.UTC, []string{"Lastthird", "Isha", "Fajr", "Midnight"})
	if err != nil {
		t.Fatalf("FromSchedule() error: %v", err)
	}

	var names []string
	for _, p := range prayers {
		names = append(names, p.Name)
	}
	want := []string{"Fajr", "Isha", "Midnight", "Lastthird"}
	if !slices.Equal(names, want) {
		t.Errorf("order = %v, want %v", names, want)
	}
}

func TestFromSchedule_NightMarkers(t *testing.T) {
	pt := raleighSchedule(t)

	prayers, err := FromSchedule(pt, time.UTC, []string{"Midnight", "Lastthird"})
	if err != nil {
		t.Fatalf("FromSchedule() error: %v", err)
	}

	sunnah, ok := adhan.NewSunnahTimes(pt)
	if !ok {
		t.Fatal("NewSunnahTimes() undefined")
	}
	if !prayers[0].Time.Equal(sunnah.MiddleOfTheNight) {
		t.Errorf("Midnight = %v, want %v", prayers[0].Time, sunnah.MiddleOfTheNight)
	}
	if !prayers[1].Time.Equal(sunnah.LastThirdOfTheNight) {
		t.Errorf("Lastthird = %v, want %v", prayers[1].Time, sunnah.LastThirdOfTheNight)
	}

	isha, _ := pt.Isha()
	if !prayers[0].Time.After(isha) {
		t.Errorf("Midnight %v should follow Isha %v", prayers[0].Time, isha)
	}
}

func TestFromSchedule_UnknownName(t *testing.T) {
	pt := raleighSchedule(t)

	if _, err := FromSchedule(pt, time.UTC, []string{"Fajr", "Sunset"}); err == nil {
		t.Error("expected error for unknown name")
	}
}

func TestFromSchedule_Undefined(t *testing.T) {
	pt, err := adhan.NewPrayerTimes(
		adhan.Coordinates{Latitude: 69.6492, Longitude: 18.9553},
		adhan.NewDateComponents(2024, time.June, 21),
		adhan.MuslimWorldLeague.Parameters(),
	)
	if err != nil {
		t.Fatalf("NewPrayerTimes() error: %v", err)
	}

	_, err = FromSchedule(pt, time.UTC, DefaultPrayerNames)
	if !errors.Is(err, ErrNoSchedule) {
		t.Errorf("FromSchedule() error = %v, want ErrNoSchedule", err)
	}
}

// ---------------------------------------------------------------------------
// NextPrayer / CurrentPrayer
// ---------------------------------------------------------------------------

func samplePrayers(t *testing.T) []Prayer {
	return []Prayer{
		{Name: "Fajr", Time: makeTime(t, 5, 17)},
		{Name: "Sunrise", Time: makeTime(t, 6, 40)},
		{Name: "Dhuhr", Time: makeTime(t, 12, 20)},
		{Name: "Asr", Time: makeTime(t, 15, 2)},
		{Name: "Maghrib", Time: makeTime(t, 17, 58)},
		{Name: "Isha", Time: makeTime(t, 19, 20)},
	}
}

func TestNextPrayer(t *testing.T) {
	prayers := samplePrayers(t)

	tests := []struct {
		name string
		now  time.Time
		want string // empty = nil
	}{
		{"before fajr", makeTime(t, 3, 0), "Fajr"},
		{"exactly at fajr", makeTime(t, 5, 17), "Sunrise"},
		{"between dhuhr and asr", makeTime(t, 13, 0), "Asr"},
		{"one minute before isha", makeTime(t, 19, 19), "Isha"},
		{"after isha", makeTime(t, 22, 0), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextPrayer(prayers, tt.now)
			if tt.want == "" {
				if got != nil {
					t.Errorf("NextPrayer() = %s, want nil", got.Name)
				}
				return
			}
			if got == nil || got.Name != tt.want {
				t.Errorf("NextPrayer() = %v, want %s", got, tt.want)
			}
		})
	}
}

func TestCurrentPrayer(t *testing.T) {
	prayers := samplePrayers(t)

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"before fajr", makeTime(t, 3, 0), ""},
		{"exactly at fajr", makeTime(t, 5, 17), "Fajr"},
		{"between dhuhr and asr", makeTime(t, 13, 0), "Dhuhr"},
		{"after isha", makeTime(t, 23, 59), "Isha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentPrayer(prayers, tt.now)
			if tt.want == "" {
				if got != nil {
					t.Errorf("CurrentPrayer() = %s, want nil", got.Name)
				}
				return
			}
			if got == nil || got.Name != tt.want {
				t.Errorf("CurrentPrayer() = %v, want %s", got, tt.want)
			}
		})
	}
}

func TestNextPrayer_Empty(t *testing.T) {
	if got := NextPrayer(nil, makeTime(t, 12, 0)); got != nil {
		t.Errorf("NextPrayer(nil) = %v, want nil", got)
	}
	if got := CurrentPrayer(nil, makeTime(t, 12, 0)); got != nil {
		t.Errorf("CurrentPrayer(nil) = %v, want nil", got)
	}
}

// ---------------------------------------------------------------------------
// TimeRemaining / FormatRemaining
// ---------------------------------------------------------------------------

func TestTimeRemaining(t *testing.T) {
	p := Prayer{Name: "Asr", Time: makeTime(t, 15, 2)}
	if got := TimeRemaining(p, makeTime(t, 12, 47)); got != 2*time.Hour+15*time.Minute {
		t.Errorf("TimeRemaining() = %v, want 2h15m", got)
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{2*time.Hour + 15*time.Minute, "2h 15m"},
		{45 * time.Minute, "45m"},
		{time.Hour, "1h 0m"},
		{59*time.Minute + 30*time.Second, "1h 0m"},
		{time.Second, "1m"},
		{0, "0m"},
		{-5 * time.Minute, "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			if got := FormatRemaining(tt.d); got != tt.want {
				t.Errorf("FormatRemaining(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
