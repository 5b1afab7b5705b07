package initializers

import (
	"log"

	"github.com/jawaharlalr/dpadmin/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.Variant{},
		&models.Category{},
		&models.Order{},
		&models.OrderItem{},
		&models.Rider{},
		&models.ShopControls{},
		&models.HomeScreen{},
		&models.DeliveryConfig{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database synced successfully.")
}
