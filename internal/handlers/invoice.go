package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/diewo77/quotemaster/internal/httpx"
	"github.com/diewo77/quotemaster/internal/models"
	"github.com/diewo77/quotemaster/internal/validation"
)

type InvoiceStore interface {
	ListInvoices(ctx context.Context) ([]models.Invoice, error)
	GetInvoice(ctx context.Context, id uint) (*models.Invoice, error)
	AddInvoice(ctx context.Context, invoice models.Invoice) (uint, error)
	DeleteInvoice(ctx context.Context, id uint) error
}

type InvoiceHandler struct {
	store InvoiceStore
}

func NewInvoiceHandler(s InvoiceStore) *InvoiceHandler {
	return &InvoiceHandler{store: s}
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.store.ListInvoices(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	invoice, err := h.store.GetInvoice(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var invoice models.Invoice
	if !decode(w, r, &invoice) {
		return
	}

	v := make(validation.Violations)
	validation.Required("number", invoice.Number, v)
	validation.RequiredID("client_id", invoice.ClientID, v)
	if invoice.Date.IsZero() {
		v["date"] = "required"
	}
	if invoice.DueDate.IsZero() {
		v["due_date"] = "required"
	} else if !invoice.Date.IsZero() && invoice.DueDate.Before(invoice.Date) {
		v["due_date"] = "before_invoice_date"
	}
	validation.NonNegativeDecimal("subtotal", invoice.Subtotal, v)
	validation.NonNegativeDecimal("vat_amount", invoice.VATAmount, v)
	validation.NonNegativeDecimal("total", invoice.Total, v)
	for i, item := range invoice.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		validation.Required(prefix+"description", item.Description, v)
		validation.PositiveDecimal(prefix+"quantity", item.Quantity, v)
		validation.NonNegativeDecimal(prefix+"unit_price", item.UnitPrice, v)
	}
	if !v.Empty() {
		writeViolations(w, v)
		return
	}

	id, err := h.store.AddInvoice(r.Context(), invoice)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, createdResponse{ID: id})
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.store.DeleteInvoice(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.NoContent(w)
}
