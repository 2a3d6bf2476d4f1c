// internal/domain/settings/service.go
package settings

import (
	"errors"
	"fmt"
	"time"

	"github.com/your-org/florist-backend/internal/config"
	"github.com/your-org/florist-backend/internal/domain/availability"
	"gorm.io/gorm"
)

// Service handles store settings business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new settings service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// UpdateRequest replaces the full delivery configuration. Weekly is keyed by
// weekday name; Overrides by "DD/MM/YYYY" date, where an empty interval list
// marks the date as a blackout.
type UpdateRequest struct {
	Weekly      map[string][]availability.Interval `json:"weekly_schedule"`
	Overrides   map[string][]availability.Interval `json:"date_overrides"`
	DeliveryFee *int64                             `json:"delivery_fee"`
}

// Response is the settings payload served to the storefront and admin panel.
type Response struct {
	Weekly      map[string][]availability.Interval `json:"weekly_schedule"`
	Overrides   map[string][]availability.Interval `json:"date_overrides"`
	DeliveryFee int64                              `json:"delivery_fee"`
}

// Availability assembles the engine's settings from the persisted rows.
func (s *Service) Availability() (availability.Settings, error) {
	var rules []ScheduleRule
	if err := s.db.Order("weekday ASC, start ASC").Find(&rules).Error; err != nil {
		return availability.Settings{}, fmt.Errorf("failed to load schedule rules: %w", err)
	}

	var overrides []DateOverride
	if err := s.db.Order("date ASC, start ASC").Find(&overrides).Error; err != nil {
		return availability.Settings{}, fmt.Errorf("failed to load date overrides: %w", err)
	}

	store, err := s.storeRow()
	if err != nil {
		return availability.Settings{}, err
	}

	return buildSettings(rules, overrides, store.DeliveryFee), nil
}

// Get returns the settings payload for the API.
func (s *Service) Get() (*Response, error) {
	settings, err := s.Availability()
	if err != nil {
		return nil, err
	}

	weekly := make(map[string][]availability.Interval, len(settings.Weekly))
	for day, intervals := range settings.Weekly {
		weekly[day.String()] = intervals
	}

	return &Response{
		Weekly:      weekly,
		Overrides:   map[string][]availability.Interval(settings.Overrides),
		DeliveryFee: settings.DeliveryFee,
	}, nil
}

// Update replaces the full delivery configuration atomically.
func (s *Service) Update(req *UpdateRequest) error {
	rules, err := rulesFromRequest(req.Weekly)
	if err != nil {
		return err
	}

	overrideRows, err := overridesFromRequest(req.Overrides)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if req.Weekly != nil {
			if err := tx.Where("1 = 1").Delete(&ScheduleRule{}).Error; err != nil {
				return fmt.Errorf("failed to clear schedule rules: %w", err)
			}
			if len(rules) > 0 {
				if err := tx.Create(&rules).Error; err != nil {
					return fmt.Errorf("failed to store schedule rules: %w", err)
				}
			}
		}

		if req.Overrides != nil {
			if err := tx.Where("1 = 1").Delete(&DateOverride{}).Error; err != nil {
				return fmt.Errorf("failed to clear date overrides: %w", err)
			}
			if len(overrideRows) > 0 {
				if err := tx.Create(&overrideRows).Error; err != nil {
					return fmt.Errorf("failed to store date overrides: %w", err)
				}
			}
		}

		if req.DeliveryFee != nil {
			if *req.DeliveryFee < 0 {
				return fmt.Errorf("delivery fee cannot be negative")
			}
			store, err := s.storeRowTx(tx)
			if err != nil {
				return err
			}
			if err := tx.Model(store).Update("delivery_fee", *req.DeliveryFee).Error; err != nil {
				return fmt.Errorf("failed to update delivery fee: %w", err)
			}
		}

		return nil
	})
}

// ImportLegacy accepts the first-generation settings payload (global
// opening/closing hour plus weekday and date lists) and stores it in the
// interval representation.
func (s *Service) ImportLegacy(legacy availability.LegacySettings) error {
	normalized := legacy.Normalize()

	weekly := make(map[string][]availability.Interval, len(normalized.Weekly))
	for day, intervals := range normalized.Weekly {
		weekly[day.String()] = intervals
	}

	fee := normalized.DeliveryFee
	return s.Update(&UpdateRequest{
		Weekly:      weekly,
		Overrides:   map[string][]availability.Interval(normalized.Overrides),
		DeliveryFee: &fee,
	})
}

func (s *Service) storeRow() (*StoreSettings, error) {
	return s.storeRowTx(s.db)
}

// storeRowTx fetches the singleton settings row, creating it on first use.
func (s *Service) storeRowTx(tx *gorm.DB) (*StoreSettings, error) {
	var store StoreSettings
	err := tx.First(&store).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		store = StoreSettings{DeliveryFee: 0}
		if err := tx.Create(&store).Error; err != nil {
			return nil, fmt.Errorf("failed to create settings row: %w", err)
		}
		return &store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings row: %w", err)
	}
	return &store, nil
}

// buildSettings converts persisted rows into the engine representation.
func buildSettings(rules []ScheduleRule, overrides []DateOverride, fee int64) availability.Settings {
	weekly := make(availability.WeeklySchedule)
	for _, rule := range rules {
		day := time.Weekday(rule.Weekday)
		weekly[day] = append(weekly[day], availability.Interval{Start: rule.Start, End: rule.End})
	}

	byDate := make(availability.Overrides)
	for _, row := range overrides {
		if row.Closed {
			// Blackout: the key must exist with no windows, even if other
			// rows were stored for the same date.
			byDate[row.Date] = []availability.Interval{}
			continue
		}
		if existing, ok := byDate[row.Date]; ok && len(existing) == 0 {
			continue // date already blacked out
		}
		byDate[row.Date] = append(byDate[row.Date], availability.Interval{Start: row.Start, End: row.End})
	}

	return availability.Settings{
		Weekly:      weekly,
		Overrides:   byDate,
		DeliveryFee: fee,
	}
}

// rulesFromRequest validates and flattens the weekday-name keyed schedule.
func rulesFromRequest(weekly map[string][]availability.Interval) ([]ScheduleRule, error) {
	var rules []ScheduleRule
	for name, intervals := range weekly {
		day, ok := weekdayByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		for _, interval := range intervals {
			if err := validateInterval(interval); err != nil {
				return nil, fmt.Errorf("weekday %s: %w", name, err)
			}
			rules = append(rules, ScheduleRule{
				Weekday: int(day),
				Start:   interval.Start,
				End:     interval.End,
			})
		}
	}
	return rules, nil
}

// overridesFromRequest validates and flattens the date-keyed overrides.
func overridesFromRequest(overrides map[string][]availability.Interval) ([]DateOverride, error) {
	var rows []DateOverride
	for raw, intervals := range overrides {
		date, err := availability.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		if len(intervals) == 0 {
			rows = append(rows, DateOverride{Date: date.Key(), Closed: true})
			continue
		}
		for _, interval := range intervals {
			if err := validateInterval(interval); err != nil {
				return nil, fmt.Errorf("date %s: %w", raw, err)
			}
			rows = append(rows, DateOverride{
				Date:  date.Key(),
				Start: interval.Start,
				End:   interval.End,
			})
		}
	}
	return rows, nil
}

func validateInterval(interval availability.Interval) error {
	start, err := availability.MinuteOfDay(interval.Start)
	if err != nil {
		return err
	}
	end, err := availability.MinuteOfDay(interval.End)
	if err != nil {
		return err
	}
	if end < start {
		return fmt.Errorf("interval %s-%s ends before it starts", interval.Start, interval.End)
	}
	return nil
}

func weekdayByName(name string) (time.Weekday, bool) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if day.String() == name {
			return day, true
		}
	}
	return 0, false
}
