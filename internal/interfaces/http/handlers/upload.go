// internal/interfaces/http/handlers/upload.go
package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/florist-backend/internal/config"
	"github.com/your-org/florist-backend/internal/domain/product"
	"gorm.io/gorm"
)

// UploadHandler handles product image uploads
type UploadHandler struct {
	productService *product.Service
	config         *config.Config
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(db *gorm.DB, cfg *config.Config) *UploadHandler {
	return &UploadHandler{
		productService: product.NewService(db, cfg),
		config:         cfg,
	}
}

// UploadProductImage handles POST /admin/products/:id/images
func (h *UploadHandler) UploadProductImage(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	// Parse multipart form
	if err := c.Request.ParseMultipartForm(h.config.Upload.MaxSize); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to parse upload form",
		})
		return
	}

	// Get file from form
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No image file provided",
		})
		return
	}
	defer file.Close()

	if header.Size > h.config.Upload.MaxSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File too large. Maximum size is %d bytes", h.config.Upload.MaxSize),
		})
		return
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	if !h.isAllowedExtension(ext) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File type .%s is not allowed", ext),
		})
		return
	}

	altText := c.PostForm("alt_text")
	isPrimary := c.PostForm("is_primary") == "true"

	// Store under a generated name so uploads never collide
	filename := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	dir := filepath.Join(h.config.Upload.LocalPath, "products")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to store image",
		})
		return
	}

	if err := c.SaveUploadedFile(header, filepath.Join(dir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to store image",
		})
		return
	}

	url := fmt.Sprintf("%s/products/%s", h.config.Upload.BaseURL, filename)

	image, err := h.productService.AddImage(productID, url, altText, isPrimary)
	if err != nil {
		// The catalog row failed; don't leave the file behind
		os.Remove(filepath.Join(dir, filename))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Image uploaded successfully",
		"data":    image,
	})
}

func (h *UploadHandler) isAllowedExtension(ext string) bool {
	for _, allowed := range h.config.Upload.AllowedExtensions {
		if strings.EqualFold(allowed, ext) {
			return true
		}
	}
	return false
}
