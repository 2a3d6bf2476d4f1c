// internal/domain/checkout/service.go
package checkout

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/your-org/florist-backend/internal/config"
	"github.com/your-org/florist-backend/internal/domain/availability"
	"github.com/your-org/florist-backend/internal/domain/cart"
)

// Checkout validation errors.
var (
	ErrDateUnavailable = errors.New("store does not deliver on the selected date")
	ErrTimeUnavailable = errors.New("selected time is outside store hours")
	ErrEmptyCart       = errors.New("cart is empty")
)

// Delivery methods offered at checkout.
const (
	MethodPickup   = "pickup"
	MethodDelivery = "delivery"
)

// phone format: "99 99999-9999"
var phonePattern = regexp.MustCompile(`^\d{2} \d{5}-\d{4}$`)

// AvailabilityProvider supplies the current delivery configuration. The
// settings service implements it; tests use a fixed stub.
type AvailabilityProvider interface {
	Availability() (availability.Settings, error)
}

// Service orchestrates checkout: it validates the customer's delivery slot
// against the availability engine and reads the cart to build the order
// summary. It owns no cart or schedule state of its own.
type Service struct {
	provider AvailabilityProvider
	config   *config.Config
}

// NewService creates a new checkout service
func NewService(provider AvailabilityProvider, cfg *config.Config) *Service {
	return &Service{
		provider: provider,
		config:   cfg,
	}
}

// Customer holds the contact and address fields collected at checkout.
// Address fields are required for delivery orders only.
type Customer struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Street    string `json:"street"`
	Number    string `json:"number"`
	District  string `json:"district"`
	Reference string `json:"reference"`
}

// Summary is the complete order summary handed to the storefront once
// checkout validation passes.
type Summary struct {
	OrderNumber string                        `json:"order_number"`
	Method      string                        `json:"method"`
	Customer    Customer                      `json:"customer"`
	Scheduled   availability.SelectedDateTime `json:"scheduled"`
	Items       []cart.LineItem               `json:"items"`
	Pricing     Pricing                       `json:"pricing"`
	CreatedAt   time.Time                     `json:"created_at"`
}

// Pricing is the checkout price breakdown in minor currency units.
type Pricing struct {
	SubTotal    int64 `json:"sub_total"`
	DeliveryFee int64 `json:"delivery_fee"`
	Total       int64 `json:"total"`
}

// ValidateSchedule checks a "DD/MM/YYYY" date and "HH:MM" time pick against
// the store's delivery configuration. Malformed input surfaces as
// availability.ErrMalformedInput; well-formed but unavailable picks surface
// as ErrDateUnavailable or ErrTimeUnavailable.
func (s *Service) ValidateSchedule(dateRaw, clock string) (availability.SelectedDateTime, error) {
	avail, err := s.provider.Availability()
	if err != nil {
		return availability.SelectedDateTime{}, err
	}
	return validateSchedule(avail, dateRaw, clock)
}

func validateSchedule(avail availability.Settings, dateRaw, clock string) (availability.SelectedDateTime, error) {
	date, err := availability.ParseDate(dateRaw)
	if err != nil {
		return availability.SelectedDateTime{}, err
	}

	if !avail.IsDateAvailable(date) {
		return availability.SelectedDateTime{}, ErrDateUnavailable
	}

	valid, err := avail.IsTimeValid(date, clock)
	if err != nil {
		return availability.SelectedDateTime{}, err
	}
	if !valid {
		return availability.SelectedDateTime{}, ErrTimeUnavailable
	}

	return availability.SelectedDateTime{Date: date, Time: clock}, nil
}

// BuildSummary validates the checkout form and assembles the order summary
// from the current cart contents. The delivery configuration is resolved once
// and used for both the schedule check and the fee.
func (s *Service) BuildSummary(items []cart.LineItem, method string, customer Customer, dateRaw, clock string) (*Summary, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if err := validateCustomer(customer, method); err != nil {
		return nil, err
	}

	avail, err := s.provider.Availability()
	if err != nil {
		return nil, err
	}

	scheduled, err := validateSchedule(avail, dateRaw, clock)
	if err != nil {
		return nil, err
	}

	totals := cart.CalculateTotals(items)
	pricing := Pricing{SubTotal: totals.SubTotal, Total: totals.SubTotal}
	if method == MethodDelivery {
		pricing.DeliveryFee = avail.DeliveryFee
		pricing.Total += avail.DeliveryFee
	}

	now := time.Now().UTC()
	return &Summary{
		OrderNumber: fmt.Sprintf("ORD-%s", now.Format("20060102150405")),
		Method:      method,
		Customer:    customer,
		Scheduled:   scheduled,
		Items:       items,
		Pricing:     pricing,
		CreatedAt:   now,
	}, nil
}

func validateCustomer(customer Customer, method string) error {
	if customer.Name == "" {
		return fmt.Errorf("customer name is required")
	}
	if !phonePattern.MatchString(customer.Phone) {
		return fmt.Errorf("phone must match the format 99 99999-9999")
	}

	switch method {
	case MethodPickup:
		return nil
	case MethodDelivery:
		if customer.Street == "" || customer.Number == "" || customer.District == "" {
			return fmt.Errorf("street, number and district are required for delivery")
		}
		return nil
	default:
		return fmt.Errorf("unknown delivery method %q", method)
	}
}
