package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeedSourceManual marks products entered by hand rather than imported from a supplier feed.
const FeedSourceManual = "manual"

// Product is a catalogue entry, looked up by SKU, category or supplier.
type Product struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	SKU         string              `gorm:"column:sku;not null;uniqueIndex" json:"sku"`
	Name        string              `gorm:"not null" json:"name"`
	Description *string             `json:"description"`
	Category    string              `gorm:"not null;index" json:"category"`
	Supplier    string              `gorm:"not null;index" json:"supplier"`
	UnitPrice   decimal.Decimal     `gorm:"not null" json:"unit_price"`
	Unit        string              `gorm:"not null;default:each" json:"unit"`
	VATRate     decimal.NullDecimal `gorm:"column:vat_rate" json:"vat_rate"`
	ImageURL    *string             `gorm:"column:image_url" json:"image_url"`
	SupplierURL *string             `gorm:"column:supplier_url" json:"supplier_url"`
	FeedSource  string              `gorm:"not null;default:manual" json:"feed_source"`

	LastUpdated time.Time `gorm:"->" json:"last_updated"`
}

// ApplyDefaults fills the column defaults the schema declares for fields left empty.
func (p *Product) ApplyDefaults() {
	if p.Unit == "" {
		p.Unit = DefaultUnit
	}
	if p.FeedSource == "" {
		p.FeedSource = FeedSourceManual
	}
}
