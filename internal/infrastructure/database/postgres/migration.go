// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"
	"time"

	"github.com/your-org/florist-backend/internal/config"
	"github.com/your-org/florist-backend/internal/domain/admin"
	"github.com/your-org/florist-backend/internal/domain/product"
	"github.com/your-org/florist-backend/internal/domain/settings"
	"github.com/your-org/florist-backend/internal/pkg/auth"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db     *gorm.DB
	config *config.Config
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, cfg *config.Config) *Migration {
	return &Migration{
		db:     db,
		config: cfg,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Define all models that need migration in dependency order
	models := []interface{}{
		// Catalog
		&product.Tag{},
		&product.Product{},
		&product.ProductImage{},

		// Store settings and delivery schedule
		&settings.StoreSettings{},
		&settings.ScheduleRule{},
		&settings.DateOverride{},

		// Admin panel accounts
		&admin.User{},
	}

	// Run auto-migration for each model
	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_featured ON products(is_featured, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_products_slug ON products(slug)",

		// Tag indexes
		"CREATE INDEX IF NOT EXISTS idx_tags_slug ON tags(slug)",

		// Product image indexes
		"CREATE INDEX IF NOT EXISTS idx_product_images_product_primary ON product_images(product_id, is_primary)",
		"CREATE INDEX IF NOT EXISTS idx_product_images_sort_order ON product_images(product_id, sort_order)",

		// Schedule indexes
		"CREATE INDEX IF NOT EXISTS idx_schedule_rules_weekday ON schedule_rules(weekday)",
		"CREATE INDEX IF NOT EXISTS idx_date_overrides_date ON date_overrides(date)",

		// Admin indexes
		"CREATE INDEX IF NOT EXISTS idx_admin_users_email_active ON admin_users(email, is_active)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	// Create the built-in tags, including the message-card tag the cart
	// depends on
	if err := m.seedTags(); err != nil {
		return fmt.Errorf("failed to seed tags: %w", err)
	}

	// Create default store settings and weekly schedule
	if err := m.seedSettings(); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	// Create default admin user
	if err := m.seedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	// Seed sample products for development
	if err := m.seedSampleProducts(); err != nil {
		return fmt.Errorf("failed to seed sample products: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedTags creates the built-in product tags
func (m *Migration) seedTags() error {
	log.Println("🏷️ Seeding tags...")

	tags := []product.Tag{
		{Name: "Bouquets", Slug: "bouquets"},
		{Name: "Arrangements", Slug: "arrangements"},
		{Name: "Potted Plants", Slug: "potted-plants"},
		{Name: "Message Cards", Slug: product.MessageCardTag},
	}

	for _, tag := range tags {
		var existing product.Tag
		result := m.db.Where("slug = ?", tag.Slug).First(&existing)
		if result.Error != nil {
			// Tag doesn't exist, create it
			if err := m.db.Create(&tag).Error; err != nil {
				return err
			}
			log.Printf("✅ Created tag: %s", tag.Name)
		} else {
			log.Printf("⏭️ Tag already exists: %s", tag.Name)
		}
	}

	return nil
}

// seedSettings creates the store settings row and a default weekly schedule
func (m *Migration) seedSettings() error {
	log.Println("⚙️ Seeding store settings...")

	var existing settings.StoreSettings
	if err := m.db.First(&existing).Error; err == nil {
		log.Println("⏭️ Store settings already exist")
		return nil
	}

	if err := m.db.Create(&settings.StoreSettings{
		DeliveryFee: m.config.Store.DeliveryFee,
	}).Error; err != nil {
		return err
	}

	// Default schedule: open Monday through Saturday, 09:00-18:00
	for weekday := int(time.Monday); weekday <= int(time.Saturday); weekday++ {
		rule := settings.ScheduleRule{Weekday: weekday, Start: "09:00", End: "18:00"}
		if err := m.db.Create(&rule).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Created default store settings and weekly schedule")
	return nil
}

func (m *Migration) seedAdminUser() error {
	log.Println("👤 Seeding admin user...")

	password := m.config.Store.AdminPassword
	if password == "" {
		log.Println("⏭️ ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing admin.User
	result := m.db.Where("email = ?", m.config.Store.AdminEmail).First(&existing)
	if result.Error != nil {
		// HashPassword enforces the strength policy on ADMIN_PASSWORD
		hashedPassword, err := auth.NewPasswordManager(m.config).HashPassword(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		adminUser := admin.User{
			Email:        m.config.Store.AdminEmail,
			PasswordHash: hashedPassword,
			IsActive:     true,
		}

		if err := m.db.Create(&adminUser).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Printf("✅ Created admin user: %s", adminUser.Email)
	} else {
		log.Printf("⏭️ Admin user already exists with ID: %d", existing.ID)
	}

	return nil
}

// seedSampleProducts creates sample catalog entries for development
func (m *Migration) seedSampleProducts() error {
	log.Println("🛍️ Seeding sample products...")

	var productCount int64
	m.db.Model(&product.Product{}).Count(&productCount)
	if productCount > 0 {
		log.Println("⏭️ Products already exist")
		return nil
	}

	var bouquets, cards product.Tag
	if err := m.db.Where("slug = ?", "bouquets").First(&bouquets).Error; err != nil {
		return err
	}
	if err := m.db.Where("slug = ?", product.MessageCardTag).First(&cards).Error; err != nil {
		return err
	}

	sampleProducts := []product.Product{
		{
			Name:        "Red Rose Bouquet",
			Slug:        "red-rose-bouquet",
			Description: "A dozen red roses wrapped in kraft paper with seasonal greenery.",
			Price:       12900,
			IsActive:    true,
			IsFeatured:  true,
			Tags:        []product.Tag{bouquets},
		},
		{
			Name:        "Sunflower Bouquet",
			Slug:        "sunflower-bouquet",
			Description: "Bright sunflowers with eucalyptus, tied by hand.",
			Price:       8900,
			IsActive:    true,
			Tags:        []product.Tag{bouquets},
		},
		{
			Name:        "Message Card",
			Slug:        "message-card",
			Description: "A handwritten card delivered with your flowers.",
			Price:       500,
			IsActive:    true,
			Tags:        []product.Tag{cards},
		},
	}

	for _, prod := range sampleProducts {
		if err := m.db.Create(&prod).Error; err != nil {
			log.Printf("⚠️ Failed to create sample product %s: %v", prod.Slug, err)
		} else {
			log.Printf("✅ Created sample product: %s", prod.Name)
		}
	}

	return nil
}

// DropAllTables drops all tables (use with extreme caution)
func (m *Migration) DropAllTables() error {
	log.Println("⚠️ WARNING: Dropping all database tables...")

	// Define tables in reverse dependency order
	tables := []string{
		"product_tags",
		"product_images",
		"products",
		"tags",
		"date_overrides",
		"schedule_rules",
		"store_settings",
		"admin_users",
	}

	for _, table := range tables {
		if err := m.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			log.Printf("⚠️ Failed to drop table %s: %v", table, err)
		} else {
			log.Printf("🗑️ Dropped table: %s", table)
		}
	}

	log.Println("✅ All tables dropped successfully")
	return nil
}

// GetTableInfo returns information about database tables
func (m *Migration) GetTableInfo() error {
	var tables []string

	// Get list of tables
	if err := m.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").Scan(&tables).Error; err != nil {
		return err
	}

	log.Println("📊 Database Tables Information:")
	log.Println("================================")

	totalRecords := int64(0)
	for _, table := range tables {
		var count int64
		m.db.Table(table).Count(&count)
		totalRecords += count

		status := "✅"
		if count == 0 {
			status = "📭"
		}

		log.Printf("%s %-25s | %d records", status, table, count)
	}

	log.Println("================================")
	log.Printf("📈 Total records across all tables: %d", totalRecords)
	log.Printf("🗂️ Total tables: %d", len(tables))

	return nil
}
