package repository

import (
	"context"
	"time"

	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	domainRepo "github.com/avinashrk/billpoint-api/internal/domain/repository"
	"gorm.io/gorm"
)

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *gorm.DB) domainRepo.StatsRepository {
	return &statsRepository{db: db}
}

// windowClause builds the WHERE fragment and args for an optional [from, to)
// window on bills.created_at.
func windowClause(from, to time.Time) (string, []interface{}) {
	clause := "b.deleted_at IS NULL"
	args := []interface{}{}
	if !from.IsZero() {
		clause += " AND b.created_at >= ?"
		args = append(args, from)
	}
	if !to.IsZero() {
		clause += " AND b.created_at < ?"
		args = append(args, to)
	}
	return clause, args
}

func (r *statsRepository) GetItemsReport(ctx context.Context, from, to time.Time) ([]domainRepo.ItemSalesResult, error) {
	var results []domainRepo.ItemSalesResult

	where, args := windowClause(from, to)
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			i.item_name as item_name,
			i.gram as gram,
			i.price as price,
			COALESCE(SUM(i.quantity), 0) as quantity_sold,
			COALESCE(SUM(i.total), 0) as total_revenue
		FROM bill_items i
		JOIN bills b ON b.id = i.bill_id
		WHERE `+where+`
		GROUP BY i.item_name, i.gram, i.price
		ORDER BY total_revenue DESC
	`, args...).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *statsRepository) GetTopItems(ctx context.Context, from, to time.Time, limit int) ([]domainRepo.TopItemResult, error) {
	var results []domainRepo.TopItemResult

	where, args := windowClause(from, to)
	args = append(args, limit)
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			i.item_name as item_name,
			i.gram as gram,
			COALESCE(SUM(i.quantity), 0) as quantity_sold,
			COALESCE(SUM(i.total), 0) as total_revenue
		FROM bill_items i
		JOIN bills b ON b.id = i.bill_id
		WHERE `+where+`
		GROUP BY i.item_name, i.gram
		ORDER BY quantity_sold DESC, total_revenue DESC
		LIMIT ?
	`, args...).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *statsRepository) GetSalesTrend(ctx context.Context, from, to time.Time, bucket enum.TrendBucket) ([]domainRepo.TrendPointResult, error) {
	trunc := "day"
	switch bucket {
	case enum.TrendBucketHour:
		trunc = "hour"
	case enum.TrendBucketMonth:
		trunc = "month"
	}

	var results []domainRepo.TrendPointResult

	where, args := windowClause(from, to)
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			DATE_TRUNC('`+trunc+`', b.created_at) as bucket,
			COUNT(*) as bill_count,
			COALESCE(SUM(b.sub_total), 0) as total_sales
		FROM bills b
		WHERE `+where+`
		GROUP BY bucket
		ORDER BY bucket ASC
	`, args...).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *statsRepository) GetPaymentMethodTotals(ctx context.Context, from, to time.Time) ([]domainRepo.PaymentMethodResult, error) {
	var results []domainRepo.PaymentMethodResult

	where, args := windowClause(from, to)
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			b.payment_method as method,
			COUNT(*) as bill_count,
			COALESCE(SUM(b.sub_total), 0) as total_amount
		FROM bills b
		WHERE `+where+`
		GROUP BY b.payment_method
		ORDER BY total_amount DESC
	`, args...).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}
