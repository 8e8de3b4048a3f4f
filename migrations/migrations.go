package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/lucasmoraes-dev/gamestore-api/models"
)

// Run applies the ordered migration list. Each step runs once; applied IDs
// are recorded in the migrations table, so schema changes ship as new
// entries instead of startup column probing.
func Run(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "202401010001_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&models.User{},
					&models.Game{},
					&models.CartItem{},
					&models.WishlistItem{},
					&models.Order{},
					&models.OrderItem{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					"order_items", "orders", "wishlist_items",
					"cart_items", "games", "users",
				)
			},
		},
		{
			ID: "202401150001_pix_payments",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.PixPayment{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("pix_payments")
			},
		},
		{
			ID: "202402050001_page_content_and_contact",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.PageContent{}, &models.ContactMessage{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("page_contents", "contact_messages")
			},
		},
		{
			ID: "202403100001_sessions",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Session{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("sessions")
			},
		},
	})
	return m.Migrate()
}
