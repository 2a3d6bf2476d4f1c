package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/florist-backend/internal/domain/availability"
	"github.com/your-org/florist-backend/internal/domain/cart"
)

type fixedProvider struct {
	settings availability.Settings
}

func (f fixedProvider) Availability() (availability.Settings, error) {
	return f.settings, nil
}

func newTestService() *Service {
	return NewService(fixedProvider{settings: availability.Settings{
		Weekly: availability.WeeklySchedule{
			time.Monday: {
				{Start: "09:00", End: "12:00"},
				{Start: "14:00", End: "18:00"},
			},
		},
		Overrides: availability.Overrides{
			"12/01/2026": {}, // blacked-out Monday
		},
		DeliveryFee: 1500,
	}}, nil)
}

var testCustomer = Customer{
	Name:  "Maria Silva",
	Phone: "62 99999-1234",
}

var deliveryCustomer = Customer{
	Name:     "Maria Silva",
	Phone:    "62 99999-1234",
	Street:   "Rua das Flores",
	Number:   "42",
	District: "Centro",
}

func testItems() []cart.LineItem {
	return []cart.LineItem{
		{LineID: "a", ProductID: 1, Name: "Rose Bouquet", Price: 1000, Quantity: 2},
		{LineID: "b", ProductID: 2, Name: "Message Card", Price: 550, Quantity: 1, IsMessageCard: true},
	}
}

func TestValidateSchedule(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name    string
		date    string
		clock   string
		wantErr error
	}{
		{"valid monday slot", "05/01/2026", "09:00", nil},
		{"tuesday not scheduled", "06/01/2026", "10:00", ErrDateUnavailable},
		{"blacked-out monday", "12/01/2026", "10:00", ErrDateUnavailable},
		{"gap between windows", "05/01/2026", "13:00", ErrTimeUnavailable},
		{"malformed date", "someday", "10:00", availability.ErrMalformedInput},
		{"malformed time", "05/01/2026", "ten", availability.ErrMalformedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ValidateSchedule(tt.date, tt.clock)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.date, got.Date.Key())
			assert.Equal(t, tt.clock, got.Time)
		})
	}
}

func TestBuildSummaryPickup(t *testing.T) {
	svc := newTestService()

	summary, err := svc.BuildSummary(testItems(), MethodPickup, testCustomer, "05/01/2026", "15:00")
	require.NoError(t, err)

	assert.Equal(t, int64(2550), summary.Pricing.SubTotal)
	assert.Equal(t, int64(0), summary.Pricing.DeliveryFee, "pickup orders carry no delivery fee")
	assert.Equal(t, int64(2550), summary.Pricing.Total)
	assert.Len(t, summary.Items, 2)
	assert.NotEmpty(t, summary.OrderNumber)
}

func TestBuildSummaryDeliveryAddsFee(t *testing.T) {
	svc := newTestService()

	summary, err := svc.BuildSummary(testItems(), MethodDelivery, deliveryCustomer, "05/01/2026", "15:00")
	require.NoError(t, err)

	assert.Equal(t, int64(1500), summary.Pricing.DeliveryFee)
	assert.Equal(t, int64(4050), summary.Pricing.Total)
}

func TestBuildSummaryValidation(t *testing.T) {
	svc := newTestService()

	_, err := svc.BuildSummary(nil, MethodPickup, testCustomer, "05/01/2026", "15:00")
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = svc.BuildSummary(testItems(), MethodDelivery, testCustomer, "05/01/2026", "15:00")
	assert.Error(t, err, "delivery without an address must be rejected")

	badPhone := testCustomer
	badPhone.Phone = "123456"
	_, err = svc.BuildSummary(testItems(), MethodPickup, badPhone, "05/01/2026", "15:00")
	assert.Error(t, err)

	_, err = svc.BuildSummary(testItems(), "carrier-pigeon", testCustomer, "05/01/2026", "15:00")
	assert.Error(t, err)

	_, err = svc.BuildSummary(testItems(), MethodPickup, testCustomer, "06/01/2026", "15:00")
	assert.ErrorIs(t, err, ErrDateUnavailable)
}

// countingProvider records how many times the delivery configuration is read.
type countingProvider struct {
	fixedProvider
	calls int
}

func (c *countingProvider) Availability() (availability.Settings, error) {
	c.calls++
	return c.fixedProvider.Availability()
}

func TestBuildSummaryResolvesAvailabilityOnce(t *testing.T) {
	provider := &countingProvider{fixedProvider: fixedProvider{settings: availability.Settings{
		Weekly: availability.WeeklySchedule{
			time.Monday: {{Start: "09:00", End: "18:00"}},
		},
		DeliveryFee: 1500,
	}}}
	svc := NewService(provider, nil)

	_, err := svc.BuildSummary(testItems(), MethodDelivery, deliveryCustomer, "05/01/2026", "15:00")
	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls, "one settings read covers schedule check and fee")
}
