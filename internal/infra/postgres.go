package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gravecare/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Address{},
		&db_models.Church{},
		&db_models.SubscriptionPlan{},
		&db_models.Flower{},
		&db_models.Product{},
		&db_models.ServiceOffering{},
		&db_models.Booking{},
		&db_models.DeadPersonProfile{},
		&db_models.Biography{},
		&db_models.Gallery{},
		&db_models.Family{},
		&db_models.Event{},
		&db_models.SocialLink{},
		&db_models.GuestBookItem{},
		&db_models.QrCode{},
		&db_models.Cart{},
		&db_models.CartItem{},
		&db_models.Order{},
		&db_models.OrderItem{},
		&db_models.WebhookEvent{},
		&db_models.ContactMessage{},
	); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
