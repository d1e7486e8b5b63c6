package migration

import (
	"Sue-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.PantryItem{}); err != nil {
		log.Fatalf("Error migrating pantry item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GroceryList{}); err != nil {
		log.Fatalf("Error migrating grocery list database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealPlan{}); err != nil {
		log.Fatalf("Error migrating meal plan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Reminder{}); err != nil {
		log.Fatalf("Error migrating reminder database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserPreference{}); err != nil {
		log.Fatalf("Error migrating user preference database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Scan{}); err != nil {
		log.Fatalf("Error migrating scan database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
