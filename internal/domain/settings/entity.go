// internal/domain/settings/entity.go
package settings

import "time"

// StoreSettings is the single row of store-wide configuration.
type StoreSettings struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DeliveryFee int64     `gorm:"not null;default:0" json:"delivery_fee"` // minor currency units
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ScheduleRule is one delivery window on a weekday. A weekday with no rules
// is closed.
type ScheduleRule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Weekday   int       `gorm:"not null;index" json:"weekday"` // 0=Sunday .. 6=Saturday
	Start     string    `gorm:"not null;size:5" json:"start"`  // "09:00"
	End       string    `gorm:"not null;size:5" json:"end"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DateOverride replaces the weekday schedule for one calendar date. A row
// with Closed set is an explicit blackout; otherwise each row contributes one
// delivery window for that date.
type DateOverride struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"not null;index;size:10" json:"date"` // "DD/MM/YYYY"
	Closed    bool      `gorm:"default:false" json:"closed"`
	Start     string    `gorm:"size:5" json:"start"`
	End       string    `gorm:"size:5" json:"end"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides
func (StoreSettings) TableName() string { return "store_settings" }
func (ScheduleRule) TableName() string  { return "schedule_rules" }
func (DateOverride) TableName() string  { return "date_overrides" }
