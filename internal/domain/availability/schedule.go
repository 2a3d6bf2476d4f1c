// internal/domain/availability/schedule.go
package availability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedInput indicates a date or time string that could not be parsed.
// Unavailable-but-well-formed selections are reported as boolean results,
// never as errors.
var ErrMalformedInput = errors.New("malformed input")

// Interval is a single delivery window within a day, minute granularity,
// inclusive on both ends.
type Interval struct {
	Start string `json:"start"` // "09:00"
	End   string `json:"end"`   // "12:00"
}

// WeeklySchedule maps a weekday to its delivery windows. A weekday with no
// entry (or an empty list) means the store does not deliver that day.
// Intervals are not required to be sorted or non-overlapping.
type WeeklySchedule map[time.Weekday][]Interval

// Overrides maps a calendar date key (see Date.Key) to the delivery windows
// for that specific date. An override replaces the weekday schedule entirely.
// A present key with an empty interval list is an explicit blackout.
type Overrides map[string][]Interval

// Settings is the store's delivery availability configuration as consumed by
// the engine. Callers obtain it from the settings service; the engine itself
// performs no I/O.
type Settings struct {
	Weekly      WeeklySchedule `json:"weekly_schedule"`
	Overrides   Overrides      `json:"date_overrides"`
	DeliveryFee int64          `json:"delivery_fee"` // minor currency units
}

// Date is a calendar date in day/month/year form.
type Date struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// ParseDate parses a "DD/MM/YYYY" date string.
func ParseDate(raw string) (Date, error) {
	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: date %q", ErrMalformedInput, raw)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Date{}, fmt.Errorf("%w: date %q", ErrMalformedInput, raw)
		}
		nums[i] = n
	}

	d := Date{Day: nums[0], Month: nums[1], Year: nums[2]}
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > daysInMonth(d.Month, d.Year) || d.Year < 1 {
		return Date{}, fmt.Errorf("%w: date %q", ErrMalformedInput, raw)
	}

	return d, nil
}

// Key returns the canonical "DD/MM/YYYY" form used as the Overrides map key.
func (d Date) Key() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// Weekday returns the weekday this date falls on.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func daysInMonth(month, year int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MinuteOfDay parses a 24-hour "HH:MM" clock string into minutes since
// midnight.
func MinuteOfDay(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: time %q", ErrMalformedInput, clock)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: time %q", ErrMalformedInput, clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: time %q", ErrMalformedInput, clock)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: time %q", ErrMalformedInput, clock)
	}

	return hour*60 + minute, nil
}

// intervalsFor resolves the interval list applicable to a date. An override
// entry wins over the weekday schedule even when its list is empty.
func (s Settings) intervalsFor(d Date) []Interval {
	if intervals, ok := s.Overrides[d.Key()]; ok {
		return intervals
	}
	return s.Weekly[d.Weekday()]
}

// IsDateAvailable reports whether the store delivers on the given date. An
// override with a non-empty interval list makes the date available regardless
// of weekday; an override with an empty list is a blackout.
func (s Settings) IsDateAvailable(d Date) bool {
	return len(s.intervalsFor(d)) > 0
}

// IsTimeValid reports whether the clock time falls inside any delivery window
// resolved for the date. Boundary minutes are valid. Returns false when the
// date itself is unavailable. Errors only on a malformed clock string.
func (s Settings) IsTimeValid(d Date, clock string) (bool, error) {
	selected, err := MinuteOfDay(clock)
	if err != nil {
		return false, err
	}

	for _, interval := range s.intervalsFor(d) {
		start, err := MinuteOfDay(interval.Start)
		if err != nil {
			continue // misconfigured window never matches
		}
		end, err := MinuteOfDay(interval.End)
		if err != nil {
			continue
		}
		if selected >= start && selected <= end {
			return true, nil
		}
	}

	return false, nil
}
