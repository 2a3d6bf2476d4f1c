// internal/domain/product/tag_service.go
package product

import (
	"errors"
	"fmt"
	"strings"

	"github.com/your-org/florist-backend/internal/config"
	"gorm.io/gorm"
)

// TagService handles tag business logic
type TagService struct {
	db     *gorm.DB
	config *config.Config
}

// NewTagService creates a new tag service
func NewTagService(db *gorm.DB, cfg *config.Config) *TagService {
	return &TagService{
		db:     db,
		config: cfg,
	}
}

// TagCreateRequest represents tag creation data
type TagCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

// TagWithProductCount represents a tag with its product count
type TagWithProductCount struct {
	Tag
	ProductCount int64 `json:"product_count"`
}

// GetTags retrieves all tags ordered by name
func (s *TagService) GetTags() ([]Tag, error) {
	var tags []Tag
	if err := s.db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve tags: %w", err)
	}
	return tags, nil
}

// GetTagsWithProductCount retrieves tags with product counts
func (s *TagService) GetTagsWithProductCount() ([]TagWithProductCount, error) {
	tags, err := s.GetTags()
	if err != nil {
		return nil, err
	}

	result := make([]TagWithProductCount, 0, len(tags))
	for _, tag := range tags {
		var count int64
		s.db.Table("product_tags").Where("tag_id = ?", tag.ID).Count(&count)
		result = append(result, TagWithProductCount{Tag: tag, ProductCount: count})
	}

	return result, nil
}

// GetTagBySlug retrieves a single tag by slug
func (s *TagService) GetTagBySlug(slug string) (*Tag, error) {
	var tag Tag
	if err := s.db.Where("slug = ?", slug).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tag not found")
		}
		return nil, fmt.Errorf("failed to retrieve tag: %w", err)
	}
	return &tag, nil
}

// CreateTag creates a new tag
func (s *TagService) CreateTag(req *TagCreateRequest) (*Tag, error) {
	slug := s.generateSlug(req.Name)

	var existing Tag
	if result := s.db.Where("slug = ?", slug).First(&existing); result.Error == nil {
		return nil, fmt.Errorf("tag with similar name already exists")
	}

	tag := Tag{Name: req.Name, Slug: slug}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return &tag, nil
}

// DeleteTag removes a tag and its product associations
func (s *TagService) DeleteTag(id uint) error {
	var tag Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("tag not found")
		}
		return fmt.Errorf("failed to find tag: %w", err)
	}

	// The message-card tag drives cart semantics, keep it around.
	if tag.Slug == MessageCardTag {
		return fmt.Errorf("the %q tag cannot be deleted", MessageCardTag)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&tag).Association("Products").Clear(); err != nil {
			return fmt.Errorf("failed to detach products: %w", err)
		}
		if err := tx.Delete(&tag).Error; err != nil {
			return fmt.Errorf("failed to delete tag: %w", err)
		}
		return nil
	})
}

// generateSlug generates URL-friendly slug from name
func (s *TagService) generateSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "_", "-")
	return slug
}
