package store

import (
	"context"
	"fmt"

	"github.com/diewo77/quotemaster/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AddRevenue records a sale and returns its id.
func (s *Store) AddRevenue(ctx context.Context, revenue models.Revenue) (uint, error) {
	revenue.ID = 0
	err := s.run(ctx, "add_revenue", func(tx *gorm.DB) error {
		if err := requireClient(tx, revenue.ClientID); err != nil {
			return err
		}
		return tx.Create(&revenue).Error
	})
	if err != nil {
		return 0, err
	}
	return revenue.ID, nil
}

// RevenueByMonth aggregates the revenue recorded in year per calendar
// month, newest month first. Months without revenue are omitted.
func (s *Store) RevenueByMonth(ctx context.Context, year int) ([]models.MonthlyRevenue, error) {
	var rows []revenueRow
	err := s.run(ctx, "revenue_by_month", func(tx *gorm.DB) error {
		return tx.Model(&models.Revenue{}).
			Select("substr(date, 1, 7) AS month, total, cost, profit, markup_percentage").
			Where("substr(date, 1, 4) = ?", fmt.Sprintf("%04d", year)).
			Order("month DESC, id").
			Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return sumByMonth(rows), nil
}

type revenueRow struct {
	Month            string
	Total            decimal.Decimal
	Cost             decimal.Decimal
	Profit           decimal.Decimal
	MarkupPercentage decimal.Decimal
}

// sumByMonth folds rows already ordered by month into one total per month.
func sumByMonth(rows []revenueRow) []models.MonthlyRevenue {
	months := []models.MonthlyRevenue{}
	var n int64
	flush := func() {
		if n > 0 {
			last := &months[len(months)-1]
			last.AvgMarkup = last.AvgMarkup.Div(decimal.NewFromInt(n))
		}
	}
	for _, r := range rows {
		if len(months) == 0 || months[len(months)-1].Month != r.Month {
			flush()
			months = append(months, models.MonthlyRevenue{Month: r.Month})
			n = 0
		}
		m := &months[len(months)-1]
		m.Total = m.Total.Add(r.Total)
		m.Cost = m.Cost.Add(r.Cost)
		m.Profit = m.Profit.Add(r.Profit)
		m.AvgMarkup = m.AvgMarkup.Add(r.MarkupPercentage)
		n++
	}
	flush()
	return months
}
