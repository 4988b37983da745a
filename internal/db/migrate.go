package db

import (
	"fmt"

	"github.com/studyapp/studygroup/internal/models"
	"gorm.io/gorm"
)

// Migrate applies the schema and seeds initial data.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}

	if errAutoMigrate := conn.AutoMigrate(
		&models.User{},
		&models.StudyGroup{},
		&models.StudyGroupMember{},
	); errAutoMigrate != nil {
		return fmt.Errorf("db: migrate: %w", errAutoMigrate)
	}

	if errSeed := ensureSeedUsers(conn); errSeed != nil {
		return errSeed
	}
	return nil
}

// ensureSeedUsers inserts the initial user accounts when the table is empty.
func ensureSeedUsers(conn *gorm.DB) error {
	var count int64
	if errCount := conn.Model(&models.User{}).Count(&count).Error; errCount != nil {
		return fmt.Errorf("db: count users: %w", errCount)
	}
	if count > 0 {
		return nil
	}

	seed := []models.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
		{ID: 3, Name: "Bob Wilson", Email: "bob@example.com"},
	}
	if errCreate := conn.Create(&seed).Error; errCreate != nil {
		return fmt.Errorf("db: seed users: %w", errCreate)
	}
	return nil
}
