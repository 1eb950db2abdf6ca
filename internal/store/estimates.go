package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/diewo77/quotemaster/internal/models"
	"gorm.io/gorm"
)

// itemsInOrder preloads line items in insertion order.
func itemsInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// ListEstimates returns every estimate with its client and items, newest first.
func (s *Store) ListEstimates(ctx context.Context) ([]models.Estimate, error) {
	estimates := []models.Estimate{}
	err := s.run(ctx, "list_estimates", func(tx *gorm.DB) error {
		return tx.Preload("Client").Preload("Items", itemsInOrder).
			Order("created_at DESC, id DESC").
			Find(&estimates).Error
	})
	if err != nil {
		return nil, err
	}
	return estimates, nil
}

// GetEstimate returns the estimate with its client and items.
func (s *Store) GetEstimate(ctx context.Context, id uint) (*models.Estimate, error) {
	var estimate models.Estimate
	err := s.run(ctx, "get_estimate", func(tx *gorm.DB) error {
		err := tx.Preload("Client").Preload("Items", itemsInOrder).First(&estimate, id).Error
		return notFound(err, "estimate", id)
	})
	if err != nil {
		return nil, err
	}
	return &estimate, nil
}

// AddEstimate inserts an estimate and its items in one transaction and
// returns the estimate id. Totals are stored as given.
func (s *Store) AddEstimate(ctx context.Context, estimate models.Estimate) (uint, error) {
	estimate.ID = 0
	estimate.Client = nil
	estimate.ApplyDefaults()
	for i := range estimate.Items {
		estimate.Items[i].ID = 0
		estimate.Items[i].EstimateID = 0
	}

	err := s.run(ctx, "add_estimate", func(tx *gorm.DB) error {
		if err := requireClient(tx, estimate.ClientID); err != nil {
			return err
		}
		err := tx.Omit("Client").Create(&estimate).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("estimate %q: %w", estimate.Number, ErrDuplicate)
		}
		return err
	})
	if err != nil {
		return 0, err
	}
	return estimate.ID, nil
}

// DeleteEstimate removes the estimate; its items go with it.
func (s *Store) DeleteEstimate(ctx context.Context, id uint) error {
	return s.run(ctx, "delete_estimate", func(tx *gorm.DB) error {
		return requireRows(tx.Delete(&models.Estimate{}, id), "estimate", id)
	})
}
