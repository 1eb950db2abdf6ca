package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Revenue is a recorded sale. Rows are kept when other records change and
// block the deletion of the client they reference.
type Revenue struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	Date             time.Time       `gorm:"not null" json:"date"`
	InvoiceNumber    string          `gorm:"not null" json:"invoice_number"`
	ClientID         uint            `gorm:"not null" json:"client_id"`
	Total            decimal.Decimal `gorm:"not null" json:"total"`
	Cost             decimal.Decimal `gorm:"not null" json:"cost"`
	Profit           decimal.Decimal `gorm:"not null" json:"profit"`
	MarkupPercentage decimal.Decimal `gorm:"not null" json:"markup_percentage"`
	PaymentMethod    string          `gorm:"not null" json:"payment_method"`
}

// TableName overrides the pluralised default.
func (Revenue) TableName() string { return "revenue" }

// MonthlyRevenue aggregates the revenue recorded in one calendar month.
type MonthlyRevenue struct {
	Month     string          `gorm:"column:month" json:"month"` // YYYY-MM
	Total     decimal.Decimal `gorm:"column:total" json:"total"`
	Cost      decimal.Decimal `gorm:"column:cost" json:"cost"`
	Profit    decimal.Decimal `gorm:"column:profit" json:"profit"`
	AvgMarkup decimal.Decimal `gorm:"column:avg_markup" json:"avg_markup"`
}

// DashboardStats summarises the state of the business for the home screen.
type DashboardStats struct {
	TotalClients     int64           `gorm:"column:total_clients" json:"total_clients"`
	PendingEstimates int64           `gorm:"column:pending_estimates" json:"pending_estimates"`
	PendingInvoices  int64           `gorm:"column:pending_invoices" json:"pending_invoices"`
	OverdueInvoices  int64           `gorm:"column:overdue_invoices" json:"overdue_invoices"`
	TotalRevenue     decimal.Decimal `gorm:"column:total_revenue" json:"total_revenue"`
	TotalProfit      decimal.Decimal `gorm:"column:total_profit" json:"total_profit"`
}
