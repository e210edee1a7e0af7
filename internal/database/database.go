package database

import (
	"log"

	"project-management-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the SQLite database and runs migrations.
// glebarez/sqlite is a pure Go driver, so no CGO is required.
func InitDB(path string) {
	var err error

	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.Milestone{},
		&models.Notification{},
	); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	return DB
}
