package store

import (
	"context"

	"github.com/diewo77/quotemaster/internal/models"
	"gorm.io/gorm"
)

// GetSettings returns the singleton settings row.
func (s *Store) GetSettings(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	err := s.run(ctx, "get_settings", func(tx *gorm.DB) error {
		return notFound(tx.First(&settings, models.SettingsID).Error, "settings", models.SettingsID)
	})
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings overwrites every field of the settings row. The row is not
// recreated when missing.
func (s *Store) UpdateSettings(ctx context.Context, settings models.Settings) error {
	settings.ID = models.SettingsID
	return s.run(ctx, "update_settings", func(tx *gorm.DB) error {
		res := tx.Model(&settings).Select("*").Omit("id").Updates(&settings)
		return requireRows(res, "settings", models.SettingsID)
	})
}
