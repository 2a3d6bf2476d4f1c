package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/florist-backend/internal/domain/availability"
)

func TestBuildSettings(t *testing.T) {
	rules := []ScheduleRule{
		{Weekday: int(time.Monday), Start: "09:00", End: "12:00"},
		{Weekday: int(time.Monday), Start: "14:00", End: "18:00"},
		{Weekday: int(time.Friday), Start: "09:00", End: "18:00"},
	}
	overrides := []DateOverride{
		{Date: "06/01/2026", Start: "10:00", End: "16:00"},
		{Date: "12/01/2026", Closed: true},
	}

	settings := buildSettings(rules, overrides, 1500)

	require.Len(t, settings.Weekly[time.Monday], 2)
	require.Len(t, settings.Weekly[time.Friday], 1)
	assert.NotContains(t, settings.Weekly, time.Tuesday)

	assert.Equal(t, []availability.Interval{{Start: "10:00", End: "16:00"}}, settings.Overrides["06/01/2026"])

	// A blackout is a present key with no windows, not an absent key.
	blackout, ok := settings.Overrides["12/01/2026"]
	require.True(t, ok)
	assert.Empty(t, blackout)

	assert.Equal(t, int64(1500), settings.DeliveryFee)
}

func TestBuildSettingsBlackoutWinsOverWindows(t *testing.T) {
	overrides := []DateOverride{
		{Date: "12/01/2026", Start: "09:00", End: "12:00"},
		{Date: "12/01/2026", Closed: true},
	}

	settings := buildSettings(nil, overrides, 0)

	blackout, ok := settings.Overrides["12/01/2026"]
	require.True(t, ok)
	assert.Empty(t, blackout, "a closed row blacks out the date regardless of other rows")

	// Same outcome with the rows in the opposite order.
	settings = buildSettings(nil, []DateOverride{overrides[1], overrides[0]}, 0)
	blackout, ok = settings.Overrides["12/01/2026"]
	require.True(t, ok)
	assert.Empty(t, blackout)
}

func TestRulesFromRequest(t *testing.T) {
	rules, err := rulesFromRequest(map[string][]availability.Interval{
		"Monday": {{Start: "09:00", End: "12:00"}},
	})
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, int(time.Monday), rules[0].Weekday)

	_, err = rulesFromRequest(map[string][]availability.Interval{
		"Funday": {{Start: "09:00", End: "12:00"}},
	})
	assert.Error(t, err)

	_, err = rulesFromRequest(map[string][]availability.Interval{
		"Monday": {{Start: "12:00", End: "09:00"}},
	})
	assert.Error(t, err, "interval ending before it starts must be rejected")

	_, err = rulesFromRequest(map[string][]availability.Interval{
		"Monday": {{Start: "9am", End: "12:00"}},
	})
	assert.ErrorIs(t, err, availability.ErrMalformedInput)
}

func TestOverridesFromRequest(t *testing.T) {
	rows, err := overridesFromRequest(map[string][]availability.Interval{
		"06/01/2026": {{Start: "10:00", End: "16:00"}},
		"12/01/2026": {}, // blackout
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byDate := map[string]DateOverride{}
	for _, row := range rows {
		byDate[row.Date] = row
	}
	assert.False(t, byDate["06/01/2026"].Closed)
	assert.True(t, byDate["12/01/2026"].Closed)

	_, err = overridesFromRequest(map[string][]availability.Interval{
		"2026-01-06": {{Start: "10:00", End: "16:00"}},
	})
	assert.ErrorIs(t, err, availability.ErrMalformedInput)
}
