package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus is the free-text status of an estimate.
// No transition rules are enforced; the constants are the conventional values.
type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusAccepted EstimateStatus = "accepted"
	EstimateStatusRejected EstimateStatus = "rejected"
)

// DefaultUnit is the unit used for line items that do not name one.
const DefaultUnit = "each"

// Estimate represents a quote sent to a client.
// Deleting an estimate removes its items at the storage layer.
type Estimate struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Number string `gorm:"not null;uniqueIndex" json:"number"`

	// Client relationship
	ClientID uint    `gorm:"not null" json:"client_id"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	// Dates
	Date         time.Time  `gorm:"not null" json:"date"`
	ValidityDate *time.Time `json:"validity_date"`

	// Amounts, supplied by the caller
	DepositAmount decimal.NullDecimal `json:"deposit_amount"`
	Subtotal      decimal.Decimal     `gorm:"not null" json:"subtotal"`
	VATAmount     decimal.Decimal     `gorm:"column:vat_amount;not null" json:"vat_amount"`
	Total         decimal.Decimal     `gorm:"not null" json:"total"`

	Status EstimateStatus `gorm:"not null;default:draft" json:"status"`

	// Notes and terms
	Notes           *string `json:"notes"`
	PaymentTerms    *string `json:"payment_terms"`
	TermsConditions *string `json:"terms_conditions"`

	CreatedAt time.Time `gorm:"->" json:"created_at"`

	Items []EstimateItem `gorm:"foreignKey:EstimateID;constraint:OnDelete:CASCADE" json:"items"`
}

// ApplyDefaults fills the column defaults the schema declares for fields left empty.
func (e *Estimate) ApplyDefaults() {
	if e.Status == "" {
		e.Status = EstimateStatusDraft
	}
	for i := range e.Items {
		e.Items[i].ApplyDefaults()
	}
}

// EstimateItem represents a line item on an estimate.
type EstimateItem struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	EstimateID uint `gorm:"not null;index" json:"estimate_id"`

	Description string              `gorm:"not null" json:"description"`
	Quantity    decimal.Decimal     `gorm:"not null" json:"quantity"`
	Unit        string              `gorm:"not null;default:each" json:"unit"`
	UnitPrice   decimal.Decimal     `gorm:"not null" json:"unit_price"`
	CostPrice   decimal.NullDecimal `json:"cost_price"`
	Discount    decimal.NullDecimal `json:"discount"`
	Section     *string             `json:"section"`
}

// ApplyDefaults sets the unit to "each" and the discount to zero when absent.
func (item *EstimateItem) ApplyDefaults() {
	if item.Unit == "" {
		item.Unit = DefaultUnit
	}
	if !item.Discount.Valid {
		item.Discount = decimal.NewNullDecimal(decimal.Zero)
	}
}
