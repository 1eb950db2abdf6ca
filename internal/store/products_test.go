package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/diewo77/quotemaster/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addProduct(t *testing.T, s *Store, sku, name string, description *string) uint {
	t.Helper()
	id, err := s.AddProduct(context.Background(), models.Product{
		SKU:         sku,
		Name:        name,
		Description: description,
		Category:    "Plumbing",
		Supplier:    "PipeCo",
		UnitPrice:   dec("4.5"),
	})
	require.NoError(t, err)
	return id
}

func TestAddAndGetProduct(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	id, err := s.AddProduct(ctx, models.Product{
		SKU:       "CP-15",
		Name:      "Copper pipe 15mm",
		Category:  "Plumbing",
		Supplier:  "PipeCo",
		UnitPrice: dec("12.34"),
		VATRate:   decimal.NewNullDecimal(dec("20")),
	})
	require.NoError(t, err)

	got, err := s.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "CP-15", got.SKU)
	assert.Equal(t, models.DefaultUnit, got.Unit)
	assert.Equal(t, models.FeedSourceManual, got.FeedSource)
	assertDecimal(t, "12.34", got.UnitPrice)
	assert.True(t, got.VATRate.Valid)
	assert.Nil(t, got.ImageURL)
	assert.False(t, got.LastUpdated.IsZero())

	_, err = s.GetProduct(ctx, id+1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddProductDuplicateSKU(t *testing.T) {
	s := setupTestStore(t)
	addProduct(t, s, "CP-15", "Copper pipe", nil)

	_, err := s.AddProduct(context.Background(), models.Product{
		SKU: "CP-15", Name: "Other", Category: "Plumbing", Supplier: "PipeCo", UnitPrice: dec("1"),
	})
	require.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), `"CP-15"`)
}

func TestSearchProducts(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	addProduct(t, s, "CP-15", "Copper pipe 15mm", nil)
	addProduct(t, s, "CP-22", "Copper pipe 22mm", nil)
	addProduct(t, s, "VLV-1", "Ball valve", strPtr("Fits COPPER pipe"))
	addProduct(t, s, "TAP-1", "Basin tap", strPtr("Chrome, 100% brass"))

	got, err := s.SearchProducts(ctx, "copper")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"VLV-1", "CP-22", "CP-15"}, []string{got[0].SKU, got[1].SKU, got[2].SKU})

	require.NoError(t, s.db.Exec(`UPDATE products SET last_updated = strftime('%Y-%m-%d %H:%M:%f', 'now', '+1 hour') WHERE sku = ?`, "CP-15").Error)
	got, err = s.SearchProducts(ctx, "copper")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "CP-15", got[0].SKU, "recently updated products come first")

	got, err = s.SearchProducts(ctx, "100%")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "TAP-1", got[0].SKU)

	got, err = s.SearchProducts(ctx, "%")
	require.NoError(t, err)
	assert.Len(t, got, 1, "a bare percent sign is matched literally")

	got, err = s.SearchProducts(ctx, "radiator")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchProductsLimit(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	for i := 0; i < searchLimit+5; i++ {
		addProduct(t, s, fmt.Sprintf("SKU-%03d", i), "Widget", nil)
	}

	got, err := s.SearchProducts(ctx, "widget")
	require.NoError(t, err)
	assert.Len(t, got, searchLimit)

	all, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, searchLimit+5)
}
