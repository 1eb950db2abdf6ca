package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/diewo77/quotemaster/internal/httpx"
	"github.com/diewo77/quotemaster/internal/models"
	"github.com/diewo77/quotemaster/internal/validation"
)

type EstimateStore interface {
	ListEstimates(ctx context.Context) ([]models.Estimate, error)
	GetEstimate(ctx context.Context, id uint) (*models.Estimate, error)
	AddEstimate(ctx context.Context, estimate models.Estimate) (uint, error)
	DeleteEstimate(ctx context.Context, id uint) error
}

type EstimateHandler struct {
	store EstimateStore
}

func NewEstimateHandler(s EstimateStore) *EstimateHandler {
	return &EstimateHandler{store: s}
}

func (h *EstimateHandler) List(w http.ResponseWriter, r *http.Request) {
	estimates, err := h.store.ListEstimates(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, estimates)
}

func (h *EstimateHandler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	estimate, err := h.store.GetEstimate(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, estimate)
}

func (h *EstimateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var estimate models.Estimate
	if !decode(w, r, &estimate) {
		return
	}

	v := make(validation.Violations)
	validation.Required("number", estimate.Number, v)
	validation.RequiredID("client_id", estimate.ClientID, v)
	if estimate.Date.IsZero() {
		v["date"] = "required"
	}
	validation.NonNegativeDecimal("subtotal", estimate.Subtotal, v)
	validation.NonNegativeDecimal("vat_amount", estimate.VATAmount, v)
	validation.NonNegativeDecimal("total", estimate.Total, v)
	for i, item := range estimate.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		validation.Required(prefix+"description", item.Description, v)
		validation.PositiveDecimal(prefix+"quantity", item.Quantity, v)
		validation.NonNegativeDecimal(prefix+"unit_price", item.UnitPrice, v)
		if item.Discount.Valid {
			validation.Percentage(prefix+"discount", item.Discount.Decimal, v)
		}
	}
	if !v.Empty() {
		writeViolations(w, v)
		return
	}

	id, err := h.store.AddEstimate(r.Context(), estimate)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, createdResponse{ID: id})
}

func (h *EstimateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.store.DeleteEstimate(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.NoContent(w)
}
