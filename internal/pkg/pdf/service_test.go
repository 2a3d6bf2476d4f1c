package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/florist-backend/internal/config"
	"github.com/your-org/florist-backend/internal/domain/availability"
	"github.com/your-org/florist-backend/internal/domain/cart"
	"github.com/your-org/florist-backend/internal/domain/checkout"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Store.Name = "Flor de Lis"
	cfg.Store.Currency = "BRL"
	return cfg
}

func TestMoneyFormatting(t *testing.T) {
	svc := NewService(testConfig())

	assert.Equal(t, "R$ 25,50", svc.money(2550))
	assert.Equal(t, "R$ 0,05", svc.money(5))
	assert.Equal(t, "-R$ 1,00", svc.money(-100))

	usd := testConfig()
	usd.Store.Currency = "USD"
	assert.Equal(t, "$25.50", NewService(usd).money(2550))
}

func TestReceiptTemplateRenders(t *testing.T) {
	svc := NewService(testConfig())

	date, err := availability.ParseDate("05/01/2026")
	require.NoError(t, err)

	summary := &checkout.Summary{
		OrderNumber: "ORD-20260105090000",
		Method:      checkout.MethodDelivery,
		Customer: checkout.Customer{
			Name:     "Maria Silva",
			Phone:    "62 99999-1234",
			Street:   "Rua das Flores",
			Number:   "42",
			District: "Centro",
		},
		Scheduled: availability.SelectedDateTime{Date: date, Time: "10:00"},
		Items: []cart.LineItem{
			{LineID: "a", ProductID: 1, Name: "Rose Bouquet", Price: 12900, Quantity: 1},
			{LineID: "b", ProductID: 2, Name: "Message Card", Price: 500, Quantity: 1, IsMessageCard: true, Text: "Feliz aniversário!"},
		},
		Pricing:   checkout.Pricing{SubTotal: 13400, DeliveryFee: 1500, Total: 14900},
		CreatedAt: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
	}

	html, err := svc.generateHTML(ReceiptData{
		Summary:     summary,
		ReceiptDate: summary.CreatedAt.Format("02/01/2006 15:04"),
		Method:      methodLabel(summary.Method),
		Store:       StoreInfo{Name: "Flor de Lis", Phone: "62 3333-0000"},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "ORD-20260105090000")
	assert.Contains(t, html, "05/01/2026")
	assert.Contains(t, html, "Feliz aniversário!")
	assert.Contains(t, html, "R$ 149,00")
	assert.Contains(t, html, "Delivery")
}
