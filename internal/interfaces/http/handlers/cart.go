// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/florist-backend/internal/config"
	"github.com/your-org/florist-backend/internal/domain/cart"
	"github.com/your-org/florist-backend/internal/domain/product"
	"gorm.io/gorm"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	productService *product.Service
	redisClient    *redis.Client
	config         *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *CartHandler {
	return &CartHandler{
		productService: product.NewService(db, cfg),
		redisClient:    redisClient,
		config:         cfg,
	}
}

// AddToCartRequest represents the add-to-cart payload
type AddToCartRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	Text      string `json:"text"`
}

// UpdateQuantityRequest represents the quantity update payload
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// UpdateTextRequest represents the message text update payload
type UpdateTextRequest struct {
	Text string `json:"text"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	svc := h.cartService(c)

	items, err := svc.Items(c.Request.Context())
	if err != nil {
		h.cartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.cartResponse(items),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	// The product is snapshotted at add time; later catalog edits never
	// touch lines already in the cart
	prod, err := h.productService.GetProduct(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}
	if !prod.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Product is not available",
		})
		return
	}

	snapshot := cart.ProductSnapshot{
		ProductID: prod.ID,
		Name:      prod.Name,
		Price:     prod.Price,
		Image:     prod.PrimaryImage(),
	}

	svc := h.cartService(c)

	// Card lines are created with the request's message so cards already in
	// the cart keep the text they were given
	var items []cart.LineItem
	if prod.IsMessageCard() {
		items, err = svc.AddMessageCards(c.Request.Context(), snapshot, req.Quantity, req.Text)
	} else {
		items, err = svc.AddToCart(c.Request.Context(), snapshot, req.Quantity, false)
	}
	if err != nil {
		h.cartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    h.cartResponse(items),
	})
}

// UpdateQuantity handles PUT /cart/items/:id
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	lineID := c.Param("id")

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	svc := h.cartService(c)
	items, err := svc.UpdateQuantity(c.Request.Context(), lineID, req.Quantity)
	if err != nil {
		h.cartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    h.cartResponse(items),
	})
}

// UpdateText handles PUT /cart/items/:id/text
func (h *CartHandler) UpdateText(c *gin.Context) {
	lineID := c.Param("id")

	var req UpdateTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	svc := h.cartService(c)
	items, err := svc.UpdateText(c.Request.Context(), lineID, req.Text)
	if err != nil {
		h.cartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    h.cartResponse(items),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	lineID := c.Param("id")

	svc := h.cartService(c)
	items, err := svc.RemoveLineItem(c.Request.Context(), lineID)
	if err != nil {
		h.cartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    h.cartResponse(items),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	svc := h.cartService(c)
	if _, err := svc.Clear(c.Request.Context()); err != nil {
		h.cartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// cartService builds a cart service bound to the caller's session
func (h *CartHandler) cartService(c *gin.Context) *cart.Service {
	sessionID := h.getOrCreateSessionID(c)
	store := cart.NewRedisStore(h.redisClient, sessionID, h.config.Store.CartTTL)
	return cart.NewService(store)
}

func (h *CartHandler) cartResponse(items []cart.LineItem) gin.H {
	return gin.H{
		"items":  items,
		"totals": cart.CalculateTotals(items),
	}
}

func (h *CartHandler) cartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Quantity must be at least 1",
		})
	case errors.Is(err, cart.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Cart is temporarily unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
	}
}

// getOrCreateSessionID gets session ID from cookie or creates a new one
func (h *CartHandler) getOrCreateSessionID(c *gin.Context) string {
	// Try to get session ID from cookie
	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		// Generate new session ID
		sessionID = uuid.New().String()

		c.SetCookie("session_id", sessionID, int(h.config.Store.CartTTL.Seconds()), "/", "", false, true)
	}

	return sessionID
}
