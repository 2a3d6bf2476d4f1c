// internal/domain/availability/legacy.go
package availability

import "time"

// LegacySettings is the first settings schema generation: a single global
// opening/closing hour, a list of weekday names and a list of extra available
// dates. It is accepted at the loading boundary only; the engine works
// exclusively on the interval representation.
type LegacySettings struct {
	OpeningHour            string   `json:"openingHour"`
	ClosingHour            string   `json:"closingHour"`
	AvailableDays          []string `json:"availableDays"`
	SpecificAvailableDates []string `json:"specificAvailableDates"`
	DeliveryFee            int64    `json:"deliveryFee"`
}

var weekdayByName = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// Normalize converts legacy settings into the interval representation: one
// implicit interval per available weekday spanning opening..closing, and the
// same implicit interval for each specific available date. Unknown weekday
// names and malformed date strings are dropped.
func (l LegacySettings) Normalize() Settings {
	window := Interval{Start: l.OpeningHour, End: l.ClosingHour}

	weekly := make(WeeklySchedule, len(l.AvailableDays))
	for _, name := range l.AvailableDays {
		if day, ok := weekdayByName[name]; ok {
			weekly[day] = []Interval{window}
		}
	}

	overrides := make(Overrides, len(l.SpecificAvailableDates))
	for _, raw := range l.SpecificAvailableDates {
		date, err := ParseDate(raw)
		if err != nil {
			continue
		}
		overrides[date.Key()] = []Interval{window}
	}

	return Settings{
		Weekly:      weekly,
		Overrides:   overrides,
		DeliveryFee: l.DeliveryFee,
	}
}
