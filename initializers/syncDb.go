package initializers

import (
	"log"

	"github.com/seoulglow/seoulglow-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.WishlistItem{},
		&models.SocialPost{},
		&models.WebhookEvent{},
	)
	log.Println("Database synced successfully.")
}
