package db

import (
	"github.com/diewo77/quotemaster/internal/models"
	"gorm.io/gorm"
)

// Seed inserts the default settings row when it is missing.
// Should be called after Migrate; an existing row is never modified.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Settings{}).Where("id = ?", models.SettingsID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		defaults := models.DefaultSettings()
		return tx.Create(&defaults).Error
	})
}
