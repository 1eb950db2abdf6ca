package store

import (
	"context"
	"fmt"

	"github.com/diewo77/quotemaster/internal/models"
	"gorm.io/gorm"
)

// clientColumns are the mutable client fields an update replaces.
var clientColumns = []string{"name", "email", "phone", "address", "company"}

// ListClients returns every client, newest first.
func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	clients := []models.Client{}
	err := s.run(ctx, "list_clients", func(tx *gorm.DB) error {
		return tx.Order("created_at DESC, id DESC").Find(&clients).Error
	})
	if err != nil {
		return nil, err
	}
	return clients, nil
}

// GetClient returns the client with the given id.
func (s *Store) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	err := s.run(ctx, "get_client", func(tx *gorm.DB) error {
		return notFound(tx.First(&client, id).Error, "client", id)
	})
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// AddClient inserts a client and returns its generated id. Any id or
// creation time on the input is ignored.
func (s *Store) AddClient(ctx context.Context, client models.Client) (uint, error) {
	client.ID = 0
	err := s.run(ctx, "add_client", func(tx *gorm.DB) error {
		return tx.Create(&client).Error
	})
	if err != nil {
		return 0, err
	}
	return client.ID, nil
}

// UpdateClient replaces every mutable field of the client; a nil optional
// field clears the stored value.
func (s *Store) UpdateClient(ctx context.Context, id uint, client models.Client) error {
	client.ID = id
	return s.run(ctx, "update_client", func(tx *gorm.DB) error {
		res := tx.Model(&client).Select(clientColumns).Updates(&client)
		return requireRows(res, "client", id)
	})
}

// DeleteClient removes the client together with its estimates, invoices and
// their items. Clients referenced by revenue records cannot be deleted.
func (s *Store) DeleteClient(ctx context.Context, id uint) error {
	return s.run(ctx, "delete_client", func(tx *gorm.DB) error {
		if err := requireClient(tx, id); err != nil {
			return err
		}
		var revenue int64
		if err := tx.Model(&models.Revenue{}).Where("client_id = ?", id).Count(&revenue).Error; err != nil {
			return err
		}
		if revenue > 0 {
			return fmt.Errorf("client %d: %w", id, ErrClientHasRevenue)
		}
		return requireRows(tx.Delete(&models.Client{}, id), "client", id)
	})
}
