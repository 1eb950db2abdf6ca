package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the status of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// Invoice represents a billing invoice.
type Invoice struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Number string `gorm:"not null;uniqueIndex" json:"number"`

	// Client relationship
	ClientID uint    `gorm:"not null" json:"client_id"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	// Invoice dates
	Date     time.Time  `gorm:"not null" json:"date"`
	DueDate  time.Time  `gorm:"not null" json:"due_date"`
	PaidDate *time.Time `json:"paid_date"`

	Subtotal  decimal.Decimal `gorm:"not null" json:"subtotal"`
	VATAmount decimal.Decimal `gorm:"column:vat_amount;not null" json:"vat_amount"`
	Total     decimal.Decimal `gorm:"not null" json:"total"`

	// Status
	Status        InvoiceStatus `gorm:"not null;default:pending" json:"status"`
	PaymentMethod *string       `json:"payment_method"`
	Notes         *string       `json:"notes"`

	CreatedAt time.Time `gorm:"->" json:"created_at"`

	// Invoice items
	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`
}

// IsPaid returns true if the invoice has been settled.
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// ApplyDefaults fills the column defaults the schema declares for fields left empty.
func (i *Invoice) ApplyDefaults() {
	if i.Status == "" {
		i.Status = InvoiceStatusPending
	}
	for n := range i.Items {
		if i.Items[n].Unit == "" {
			i.Items[n].Unit = DefaultUnit
		}
	}
}

// InvoiceItem represents a line item on an invoice.
type InvoiceItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	InvoiceID uint `gorm:"not null;index" json:"invoice_id"`

	Description string          `gorm:"not null" json:"description"`
	Quantity    decimal.Decimal `gorm:"not null" json:"quantity"`
	Unit        string          `gorm:"not null;default:each" json:"unit"`
	UnitPrice   decimal.Decimal `gorm:"not null" json:"unit_price"`
}
