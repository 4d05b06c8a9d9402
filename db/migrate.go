package db

import (
	"fmt"
	"log"

	"github.com/sudharlo/sapzap/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.ServiceProvider{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.ProviderService{},
		&models.Booking{},
		&models.Review{},
		&models.Notification{},
		&models.SystemSetting{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
