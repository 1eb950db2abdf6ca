package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/diewo77/quotemaster/internal/httpx"
	"github.com/diewo77/quotemaster/internal/models"
	"github.com/diewo77/quotemaster/internal/validation"
)

type RevenueStore interface {
	AddRevenue(ctx context.Context, revenue models.Revenue) (uint, error)
	RevenueByMonth(ctx context.Context, year int) ([]models.MonthlyRevenue, error)
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type RevenueHandler struct {
	store RevenueStore
	now   func() time.Time
}

func NewRevenueHandler(s RevenueStore) *RevenueHandler {
	return &RevenueHandler{store: s, now: time.Now}
}

// Monthly returns the monthly breakdown for ?year=, defaulting to the
// current year.
func (h *RevenueHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	year := h.now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1 || y > 9999 {
			httpx.JSONError(w, http.StatusBadRequest, "invalid year "+strconv.Quote(raw), nil)
			return
		}
		year = y
	}

	months, err := h.store.RevenueByMonth(r.Context(), year)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, months)
}

func (h *RevenueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var revenue models.Revenue
	if !decode(w, r, &revenue) {
		return
	}

	v := make(validation.Violations)
	validation.Required("invoice_number", revenue.InvoiceNumber, v)
	validation.RequiredID("client_id", revenue.ClientID, v)
	validation.Required("payment_method", revenue.PaymentMethod, v)
	if revenue.Date.IsZero() {
		v["date"] = "required"
	}
	validation.NonNegativeDecimal("total", revenue.Total, v)
	validation.NonNegativeDecimal("cost", revenue.Cost, v)
	if !v.Empty() {
		writeViolations(w, v)
		return
	}

	id, err := h.store.AddRevenue(r.Context(), revenue)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, createdResponse{ID: id})
}

// Dashboard returns the summary shown on the home screen.
func (h *RevenueHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.DashboardStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}
