package availability

import (
	"errors"
	"testing"
	"time"
)

// 05/01/2026 is a Monday, 06/01/2026 a Tuesday.
var mondaySettings = Settings{
	Weekly: WeeklySchedule{
		time.Monday: {
			{Start: "09:00", End: "12:00"},
			{Start: "14:00", End: "18:00"},
		},
	},
}

func mustDate(t *testing.T, raw string) Date {
	t.Helper()
	d, err := ParseDate(raw)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", raw, err)
	}
	return d
}

func TestIsDateAvailable(t *testing.T) {
	settings := Settings{
		Weekly: WeeklySchedule{
			time.Monday: {{Start: "09:00", End: "18:00"}},
		},
		Overrides: Overrides{
			"06/01/2026": {{Start: "10:00", End: "16:00"}}, // Tuesday, closed weekday
			"12/01/2026": {},                               // Monday, explicit blackout
		},
	}

	tests := []struct {
		name string
		date string
		want bool
	}{
		{"weekday with schedule", "05/01/2026", true},
		{"weekday without schedule", "07/01/2026", false},
		{"override enables closed weekday", "06/01/2026", true},
		{"empty override blacks out open weekday", "12/01/2026", false},
		{"open weekday a week later", "19/01/2026", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := settings.IsDateAvailable(mustDate(t, tt.date))
			if got != tt.want {
				t.Errorf("IsDateAvailable(%s) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestIsTimeValid(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		clock string
		want  bool
	}{
		{"start boundary", "05/01/2026", "09:00", true},
		{"end boundary", "05/01/2026", "12:00", true},
		{"inside second window", "05/01/2026", "15:30", true},
		{"gap between windows", "05/01/2026", "13:00", false},
		{"before opening", "05/01/2026", "08:59", false},
		{"after closing", "05/01/2026", "18:01", false},
		{"weekday not scheduled", "06/01/2026", "10:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mondaySettings.IsTimeValid(mustDate(t, tt.date), tt.clock)
			if err != nil {
				t.Fatalf("IsTimeValid: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsTimeValid(%s, %s) = %v, want %v", tt.date, tt.clock, got, tt.want)
			}
		})
	}
}

func TestIsTimeValidOverrideReplacesWeekday(t *testing.T) {
	settings := Settings{
		Weekly: WeeklySchedule{
			time.Monday: {{Start: "09:00", End: "18:00"}},
		},
		Overrides: Overrides{
			"05/01/2026": {{Start: "13:00", End: "15:00"}},
		},
	}

	monday := mustDate(t, "05/01/2026")

	// The weekday window no longer applies on the overridden date.
	if ok, _ := settings.IsTimeValid(monday, "10:00"); ok {
		t.Error("weekday window should not apply when an override is present")
	}
	if ok, _ := settings.IsTimeValid(monday, "14:00"); !ok {
		t.Error("override window should apply")
	}
}

func TestIsTimeValidMalformedClock(t *testing.T) {
	_, err := mondaySettings.IsTimeValid(mustDate(t, "05/01/2026"), "quarter past nine")
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{"05/01/2026", false},
		{"29/02/2024", false}, // leap day
		{"29/02/2025", true},
		{"31/04/2026", true},
		{"00/01/2026", true},
		{"05-01-2026", true},
		{"2026/01/05", true}, // year-first order rejected, day out of range
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := ParseDate(tt.raw)
			if tt.wantErr && !errors.Is(err, ErrMalformedInput) {
				t.Errorf("ParseDate(%q): expected ErrMalformedInput, got %v", tt.raw, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ParseDate(%q): unexpected error %v", tt.raw, err)
			}
		})
	}
}

func TestDateKeyAndWeekday(t *testing.T) {
	d := mustDate(t, "05/01/2026")
	if d.Key() != "05/01/2026" {
		t.Errorf("Key() = %q", d.Key())
	}
	if d.Weekday() != time.Monday {
		t.Errorf("Weekday() = %v, want Monday", d.Weekday())
	}
}

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"0900", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := MinuteOfDay(tt.clock)
		if tt.wantErr {
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("MinuteOfDay(%q): expected ErrMalformedInput, got %v", tt.clock, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("MinuteOfDay(%q): %v", tt.clock, err)
			continue
		}
		if got != tt.want {
			t.Errorf("MinuteOfDay(%q) = %d, want %d", tt.clock, got, tt.want)
		}
	}
}

func TestLegacyNormalize(t *testing.T) {
	legacy := LegacySettings{
		OpeningHour:            "08:00",
		ClosingHour:            "18:00",
		AvailableDays:          []string{"Monday", "Friday", "Someday"},
		SpecificAvailableDates: []string{"25/12/2026", "not-a-date"},
		DeliveryFee:            1500,
	}

	settings := legacy.Normalize()

	if len(settings.Weekly) != 2 {
		t.Fatalf("expected 2 weekdays, got %d", len(settings.Weekly))
	}
	if got := settings.Weekly[time.Monday]; len(got) != 1 || got[0] != (Interval{Start: "08:00", End: "18:00"}) {
		t.Errorf("unexpected Monday windows: %+v", got)
	}
	if _, ok := settings.Weekly[time.Sunday]; ok {
		t.Error("Sunday should not be scheduled")
	}

	if len(settings.Overrides) != 1 {
		t.Fatalf("expected 1 override, got %d", len(settings.Overrides))
	}
	// 25/12/2026 is a Friday either way, but the override must stand on its own.
	if !settings.IsDateAvailable(mustDate(t, "25/12/2026")) {
		t.Error("specific available date should be available")
	}

	if settings.DeliveryFee != 1500 {
		t.Errorf("DeliveryFee = %d, want 1500", settings.DeliveryFee)
	}
}
