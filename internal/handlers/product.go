package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/diewo77/quotemaster/internal/httpx"
	"github.com/diewo77/quotemaster/internal/models"
	"github.com/diewo77/quotemaster/internal/validation"
)

type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	SearchProducts(ctx context.Context, term string) ([]models.Product, error)
	AddProduct(ctx context.Context, product models.Product) (uint, error)
}

type ProductHandler struct {
	store ProductStore
}

func NewProductHandler(s ProductStore) *ProductHandler {
	return &ProductHandler{store: s}
}

// List returns the catalogue, or the matches for ?search= when given.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("search"))

	var products []models.Product
	var err error
	if query != "" {
		products, err = h.store.SearchProducts(r.Context(), query)
	} else {
		products, err = h.store.ListProducts(r.Context())
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	product, err := h.store.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if !decode(w, r, &product) {
		return
	}
	product.SKU = strings.ToUpper(strings.TrimSpace(product.SKU))

	v := make(validation.Violations)
	validation.Required("sku", product.SKU, v)
	validation.Required("name", product.Name, v)
	validation.Required("category", product.Category, v)
	validation.Required("supplier", product.Supplier, v)
	validation.NonNegativeDecimal("unit_price", product.UnitPrice, v)
	if product.VATRate.Valid {
		validation.Percentage("vat_rate", product.VATRate.Decimal, v)
	}
	if !v.Empty() {
		writeViolations(w, v)
		return
	}

	id, err := h.store.AddProduct(r.Context(), product)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, createdResponse{ID: id})
}
