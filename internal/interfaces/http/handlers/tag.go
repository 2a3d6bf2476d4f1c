// internal/interfaces/http/handlers/tag.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/florist-backend/internal/config"
	"github.com/your-org/florist-backend/internal/domain/product"
	"gorm.io/gorm"
)

// TagHandler handles tag endpoints
type TagHandler struct {
	tagService *product.TagService
	config     *config.Config
}

// NewTagHandler creates a new tag handler
func NewTagHandler(db *gorm.DB, cfg *config.Config) *TagHandler {
	return &TagHandler{
		tagService: product.NewTagService(db, cfg),
		config:     cfg,
	}
}

// GetTags handles GET /tags
func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.GetTags()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve tags",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tags retrieved successfully",
		"data":    tags,
	})
}

// AdminGetTags handles GET /admin/tags (includes product counts)
func (h *TagHandler) AdminGetTags(c *gin.Context) {
	tags, err := h.tagService.GetTagsWithProductCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve tags",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tags retrieved successfully",
		"data":    tags,
	})
}

// AdminCreateTag handles POST /admin/tags
func (h *TagHandler) AdminCreateTag(c *gin.Context) {
	var req product.TagCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	tag, err := h.tagService.CreateTag(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tag created successfully",
		"data":    tag,
	})
}

// AdminDeleteTag handles DELETE /admin/tags/:id
func (h *TagHandler) AdminDeleteTag(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid tag ID",
		})
		return
	}

	if err := h.tagService.DeleteTag(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tag deleted successfully",
	})
}
