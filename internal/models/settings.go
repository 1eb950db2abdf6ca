package models

import "github.com/shopspring/decimal"

// SettingsID is the key of the only row the settings table may hold.
const SettingsID = 1

// Defaults a fresh install starts with.
const (
	DefaultCurrency   = "GBP"
	DefaultBrandColor = "#2563eb"
)

// Settings holds the business-wide configuration used on estimates and invoices.
// Exactly one row exists; it is created on first run and updated in place.
type Settings struct {
	ID uint `gorm:"primaryKey" json:"-"`

	// Business profile
	BusinessName    string `gorm:"not null" json:"business_name"`
	BusinessOwner   string `gorm:"not null" json:"business_owner"`
	BusinessEmail   string `gorm:"not null" json:"business_email"`
	BusinessPhone   string `gorm:"not null" json:"business_phone"`
	BusinessAddress string `gorm:"not null" json:"business_address"`
	BusinessWebsite string `gorm:"not null" json:"business_website"`

	// Tax & pricing
	VATEnabled       bool            `gorm:"column:vat_enabled;not null" json:"vat_enabled"`
	VATRate          decimal.Decimal `gorm:"column:vat_rate;not null" json:"vat_rate"`
	MarkupPercentage decimal.Decimal `gorm:"not null" json:"markup_percentage"`
	Currency         string          `gorm:"not null" json:"currency"`

	// Payment details
	BankDetails string `gorm:"not null" json:"bank_details"`
	PaypalEmail string `gorm:"not null" json:"paypal_email"`

	// Branding
	LogoBase64 *string `gorm:"column:logo_base64" json:"logo_base64"`
	LogoPath   *string `json:"logo_path"`
	BrandColor *string `json:"brand_color"`

	// Legal text
	TermsConditions     *string `json:"terms_conditions"`
	PaymentInstructions *string `json:"payment_instructions"`
	CompanyTaxID        *string `gorm:"column:company_tax_id" json:"company_tax_id"`
	CompanyRegistration *string `json:"company_registration"`
}

// TableName keeps the table name independent of the pluraliser.
func (Settings) TableName() string { return "settings" }

// DefaultSettings returns the values a fresh install starts with.
func DefaultSettings() Settings {
	brandColor := DefaultBrandColor
	return Settings{
		ID:               SettingsID,
		VATEnabled:       false,
		VATRate:          decimal.NewFromInt(20),
		MarkupPercentage: decimal.NewFromInt(30),
		Currency:         DefaultCurrency,
		BrandColor:       &brandColor,
	}
}
