// internal/domain/product/entity.go
package product

import (
	"time"

	"gorm.io/gorm"
)

// MessageCardTag is the tag slug that classifies a product as a message card.
// Cart line items for such products never merge quantities.
const MessageCardTag = "card"

// Product represents a catalog product
type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	Price       int64          `gorm:"not null" json:"price"` // Price in cents
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	IsFeatured  bool           `gorm:"default:false" json:"is_featured"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Tags   []Tag          `gorm:"many2many:product_tags;" json:"tags,omitempty"`
	Images []ProductImage `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images,omitempty"`
}

// Tag represents a product classification label
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Slug      string    `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Products []Product `gorm:"many2many:product_tags;" json:"products,omitempty"`
}

// ProductImage represents product images
type ProductImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	URL       string    `gorm:"not null;size:500" json:"url"`
	AltText   string    `gorm:"size:255" json:"alt_text"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	IsPrimary bool      `gorm:"default:false" json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsMessageCard reports whether the product carries the message-card tag.
// Only meaningful when the Tags relationship is loaded.
func (p *Product) IsMessageCard() bool {
	for _, tag := range p.Tags {
		if tag.Slug == MessageCardTag {
			return true
		}
	}
	return false
}

// PrimaryImage returns the URL of the primary (or first) image, empty when
// the product has none.
func (p *Product) PrimaryImage() string {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return ""
}

// TableName overrides
func (Product) TableName() string      { return "products" }
func (Tag) TableName() string          { return "tags" }
func (ProductImage) TableName() string { return "product_images" }
