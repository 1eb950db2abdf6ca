package store

import (
	"context"

	"github.com/diewo77/quotemaster/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const dashboardQuery = `SELECT
	(SELECT COUNT(*) FROM clients) AS total_clients,
	(SELECT COUNT(*) FROM estimates WHERE status = ?) AS pending_estimates,
	(SELECT COUNT(*) FROM invoices WHERE status = ?) AS pending_invoices,
	(SELECT COUNT(*) FROM invoices WHERE status = ?) AS overdue_invoices`

// DashboardStats summarises clients, open estimates and invoices, and
// takings. Estimates count as pending once sent; revenue is the total of
// paid invoices.
func (s *Store) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	err := s.run(ctx, "dashboard_stats", func(tx *gorm.DB) error {
		err := tx.Raw(dashboardQuery,
			string(models.EstimateStatusSent),
			string(models.InvoiceStatusPending),
			string(models.InvoiceStatusOverdue),
		).Scan(&stats).Error
		if err != nil {
			return err
		}

		var paid, profits []amountRow
		if err := tx.Model(&models.Invoice{}).Select("total AS amount").Where("status = ?", string(models.InvoiceStatusPaid)).Scan(&paid).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Revenue{}).Select("profit AS amount").Scan(&profits).Error; err != nil {
			return err
		}
		stats.TotalRevenue = sum(paid)
		stats.TotalProfit = sum(profits)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

type amountRow struct {
	Amount decimal.Decimal
}

func sum(rows []amountRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Amount)
	}
	return total
}
