package database

import (
	"Postcraft/internal/model"

	"gorm.io/gorm"
)

// AutoMigrate 建表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Post{})
}
