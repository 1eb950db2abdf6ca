package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diewo77/quotemaster/internal/models"
	"gorm.io/gorm"
)

// searchLimit caps the number of products a search returns.
const searchLimit = 50

// ListProducts returns the catalogue, most recently updated first.
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := s.run(ctx, "list_products", func(tx *gorm.DB) error {
		return tx.Order("last_updated DESC, id DESC").Find(&products).Error
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns the product with the given id.
func (s *Store) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := s.run(ctx, "get_product", func(tx *gorm.DB) error {
		return notFound(tx.First(&product, id).Error, "product", id)
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchProducts matches term against product names and descriptions,
// ignoring case, and returns at most 50 products, most recently updated first.
func (s *Store) SearchProducts(ctx context.Context, term string) ([]models.Product, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(term)) + "%"
	products := []models.Product{}
	err := s.run(ctx, "search_products", func(tx *gorm.DB) error {
		return tx.Where(`name LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\'`, pattern, pattern).
			Order("last_updated DESC, id DESC").
			Limit(searchLimit).
			Find(&products).Error
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// AddProduct inserts a product and returns its id. SKUs are unique.
func (s *Store) AddProduct(ctx context.Context, product models.Product) (uint, error) {
	product.ID = 0
	product.ApplyDefaults()
	err := s.run(ctx, "add_product", func(tx *gorm.DB) error {
		err := tx.Create(&product).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("product sku %q: %w", product.SKU, ErrDuplicate)
		}
		return err
	})
	if err != nil {
		return 0, err
	}
	return product.ID, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
