// internal/interfaces/http/handlers/settings.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/florist-backend/internal/config"
	"github.com/your-org/florist-backend/internal/domain/availability"
	"github.com/your-org/florist-backend/internal/domain/settings"
	"gorm.io/gorm"
)

// SettingsHandler handles store settings endpoints
type SettingsHandler struct {
	settingsService *settings.Service
	config          *config.Config
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(db *gorm.DB, cfg *config.Config) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settings.NewService(db, cfg),
		config:          cfg,
	}
}

// GetSettings handles GET /settings. The storefront uses this to render
// the delivery date/time picker.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	response, err := h.settingsService.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve settings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Settings retrieved successfully",
		"data":    response,
	})
}

// CheckAvailabilityRequest represents a date/time availability query
type CheckAvailabilityRequest struct {
	Date string `form:"date" binding:"required"` // "DD/MM/YYYY"
	Time string `form:"time"`                    // "HH:MM", optional
}

// CheckAvailability handles GET /settings/availability. With only a date it
// answers whether the store delivers that day; with a time it also checks
// the delivery windows.
func (h *SettingsHandler) CheckAvailability(c *gin.Context) {
	var req CheckAvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	date, err := availability.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date must be in DD/MM/YYYY format",
		})
		return
	}

	avail, err := h.settingsService.Availability()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve settings",
		})
		return
	}

	dateAvailable := avail.IsDateAvailable(date)
	result := gin.H{
		"date":           req.Date,
		"date_available": dateAvailable,
	}

	if req.Time != "" {
		timeValid := false
		if dateAvailable {
			timeValid, err = avail.IsTimeValid(date, req.Time)
			if err != nil {
				if errors.Is(err, availability.ErrMalformedInput) {
					c.JSON(http.StatusBadRequest, gin.H{
						"error": "Time must be in HH:MM format",
					})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Failed to check availability",
				})
				return
			}
		}
		result["time"] = req.Time
		result["time_valid"] = timeValid
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Availability checked successfully",
		"data":    result,
	})
}

// AdminUpdateSettings handles PUT /admin/settings
func (h *SettingsHandler) AdminUpdateSettings(c *gin.Context) {
	var req settings.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.settingsService.Update(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	response, err := h.settingsService.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve settings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Settings updated successfully",
		"data":    response,
	})
}

// AdminImportLegacySettings handles POST /admin/settings/import-legacy.
// It accepts the first-generation settings document (global opening and
// closing hour plus weekday and date lists) and converts it to delivery
// windows.
func (h *SettingsHandler) AdminImportLegacySettings(c *gin.Context) {
	var legacy availability.LegacySettings
	if err := c.ShouldBindJSON(&legacy); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.settingsService.ImportLegacy(legacy); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	response, err := h.settingsService.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve settings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Legacy settings imported successfully",
		"data":    response,
	})
}
