// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/florist-backend/internal/config"
	"github.com/your-org/florist-backend/internal/domain/availability"
	"github.com/your-org/florist-backend/internal/domain/cart"
	"github.com/your-org/florist-backend/internal/domain/checkout"
	"github.com/your-org/florist-backend/internal/domain/settings"
	"github.com/your-org/florist-backend/internal/pkg/pdf"
	"gorm.io/gorm"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	pdfService      *pdf.Service
	redisClient     *redis.Client
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *CheckoutHandler {
	settingsService := settings.NewService(db, cfg)

	return &CheckoutHandler{
		checkoutService: checkout.NewService(settingsService, cfg),
		pdfService:      pdf.NewService(cfg),
		redisClient:     redisClient,
		config:          cfg,
	}
}

// CheckoutRequest represents the checkout form payload
type CheckoutRequest struct {
	Method   string            `json:"method" binding:"required"`
	Customer checkout.Customer `json:"customer" binding:"required"`
	Date     string            `json:"date" binding:"required"` // "DD/MM/YYYY"
	Time     string            `json:"time" binding:"required"` // "HH:MM"
}

// ValidateScheduleRequest represents a schedule validation payload
type ValidateScheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ValidateSchedule handles POST /checkout/validate-schedule. The storefront
// calls it from the date/time picker before the customer fills the rest of
// the form.
func (h *CheckoutHandler) ValidateSchedule(c *gin.Context) {
	var req ValidateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	scheduled, err := h.checkoutService.ValidateSchedule(req.Date, req.Time)
	if err != nil {
		h.checkoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Schedule is available",
		"data":    scheduled,
	})
}

// Checkout handles POST /checkout. On success the order summary is returned
// and the cart is cleared.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cartService := h.cartService(c)
	items, err := cartService.Items(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Cart is temporarily unavailable",
		})
		return
	}

	summary, err := h.checkoutService.BuildSummary(items, req.Method, req.Customer, req.Date, req.Time)
	if err != nil {
		h.checkoutError(c, err)
		return
	}

	// The order is placed; the cart must not survive it
	if _, err := cartService.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Order was built but the cart could not be cleared",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout completed successfully",
		"data":    summary,
	})
}

// Receipt handles POST /checkout/receipt. It builds the same summary as
// Checkout from the current cart and streams it as a PDF, leaving the cart
// untouched.
func (h *CheckoutHandler) Receipt(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cartService := h.cartService(c)
	items, err := cartService.Items(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Cart is temporarily unavailable",
		})
		return
	}

	summary, err := h.checkoutService.BuildSummary(items, req.Method, req.Customer, req.Date, req.Time)
	if err != nil {
		h.checkoutError(c, err)
		return
	}

	buf, err := h.pdfService.GenerateReceipt(summary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	filename := fmt.Sprintf("receipt-%s.pdf", summary.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *CheckoutHandler) checkoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, availability.ErrMalformedInput):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date must be DD/MM/YYYY and time HH:MM",
		})
	case errors.Is(err, checkout.ErrDateUnavailable),
		errors.Is(err, checkout.ErrTimeUnavailable),
		errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	}
}

// cartService builds a cart service bound to the caller's session
func (h *CheckoutHandler) cartService(c *gin.Context) *cart.Service {
	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
		c.SetCookie("session_id", sessionID, int(h.config.Store.CartTTL.Seconds()), "/", "", false, true)
	}

	store := cart.NewRedisStore(h.redisClient, sessionID, h.config.Store.CartTTL)
	return cart.NewService(store)
}
