package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/diewo77/quotemaster/internal/models"
	"gorm.io/gorm"
)

// ListInvoices returns every invoice with its client and items, newest first.
func (s *Store) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	err := s.run(ctx, "list_invoices", func(tx *gorm.DB) error {
		return tx.Preload("Client").Preload("Items", itemsInOrder).
			Order("created_at DESC, id DESC").
			Find(&invoices).Error
	})
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

// GetInvoice returns the invoice with its client and items.
func (s *Store) GetInvoice(ctx context.Context, id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := s.run(ctx, "get_invoice", func(tx *gorm.DB) error {
		err := tx.Preload("Client").Preload("Items", itemsInOrder).First(&invoice, id).Error
		return notFound(err, "invoice", id)
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// AddInvoice inserts an invoice and its items in one transaction and returns
// the invoice id.
func (s *Store) AddInvoice(ctx context.Context, invoice models.Invoice) (uint, error) {
	invoice.ID = 0
	invoice.Client = nil
	invoice.ApplyDefaults()
	for i := range invoice.Items {
		invoice.Items[i].ID = 0
		invoice.Items[i].InvoiceID = 0
	}

	err := s.run(ctx, "add_invoice", func(tx *gorm.DB) error {
		if err := requireClient(tx, invoice.ClientID); err != nil {
			return err
		}
		err := tx.Omit("Client").Create(&invoice).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("invoice %q: %w", invoice.Number, ErrDuplicate)
		}
		return err
	})
	if err != nil {
		return 0, err
	}
	return invoice.ID, nil
}

// DeleteInvoice removes the invoice; its items go with it. Revenue recorded
// against the invoice number is kept.
func (s *Store) DeleteInvoice(ctx context.Context, id uint) error {
	return s.run(ctx, "delete_invoice", func(tx *gorm.DB) error {
		return requireRows(tx.Delete(&models.Invoice{}, id), "invoice", id)
	})
}
