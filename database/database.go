package database

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fincore/config"
	"fincore/models"
	"fincore/store"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb opens the sqlite file backing the key-value store and publishes
// it as store.Default. One local file is the whole persistence surface.
func ConnectDb() {
	db, err := gorm.Open(sqlite.Open(config.AppConfig.DBName), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open store database: %v", err)
	}

	runMigrations(db)

	Database = DbInstance{Db: db}
	store.Default = store.NewGormStore(db)
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	if err := db.AutoMigrate(&models.StoreEntry{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
