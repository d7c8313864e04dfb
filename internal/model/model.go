package model

import (
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB, key string) error {
	switch key {

	case "Content":
		return db.AutoMigrate(Content{})

	case "ShareLink":
		return db.AutoMigrate(ShareLink{})
	}
	return nil
}

// AutoMigrateAll migrates every table the service uses.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(Content{}, ShareLink{})
}
