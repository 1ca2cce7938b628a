package migration

import (
	"FoodShare-Backend/entities"
	"fmt"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		return fmt.Errorf("error migrating user table: %w", err)
	}
	if err := db.AutoMigrate(&entities.Group{}); err != nil {
		return fmt.Errorf("error migrating group table: %w", err)
	}
	if err := db.AutoMigrate(&entities.GroupMember{}); err != nil {
		return fmt.Errorf("error migrating group member table: %w", err)
	}
	if err := db.AutoMigrate(&entities.GroupInvite{}); err != nil {
		return fmt.Errorf("error migrating group invite table: %w", err)
	}
	if err := db.AutoMigrate(&entities.Item{}); err != nil {
		return fmt.Errorf("error migrating item table: %w", err)
	}

	fmt.Println("Database migration complete")
	return nil
}
