package repository

import (
	"context"
	"time"

	"github.com/avinashrk/billpoint-api/internal/domain/enum"
)

// ItemSalesResult represents one catalog line in the items report
type ItemSalesResult struct {
	ItemName     string
	Gram         string
	Price        int64 // unit price in cents
	QuantitySold int
	TotalRevenue int64 // cents
}

// TopItemResult represents an item's rank by quantity sold
type TopItemResult struct {
	ItemName     string
	Gram         string
	QuantitySold int
	TotalRevenue int64 // cents
}

// TrendPointResult represents sales in a single time bucket
type TrendPointResult struct {
	Bucket     time.Time
	BillCount  int
	TotalSales int64 // cents
}

// PaymentMethodResult represents totals for one payment method
type PaymentMethodResult struct {
	Method      enum.PaymentMethod
	BillCount   int
	TotalAmount int64 // cents
}

// StatsRepository defines interface for billing aggregation queries.
// Zero from/to bounds mean an unbounded window on that side.
type StatsRepository interface {
	// GetItemsReport returns per-(item, gram, price) sales in the window,
	// highest revenue first.
	GetItemsReport(ctx context.Context, from, to time.Time) ([]ItemSalesResult, error)

	// GetTopItems returns the best sellers by quantity sold in the window.
	GetTopItems(ctx context.Context, from, to time.Time, limit int) ([]TopItemResult, error)

	// GetSalesTrend returns sales totals grouped into hour/day/month buckets.
	GetSalesTrend(ctx context.Context, from, to time.Time, bucket enum.TrendBucket) ([]TrendPointResult, error)

	// GetPaymentMethodTotals returns totals per payment method in the window.
	GetPaymentMethodTotals(ctx context.Context, from, to time.Time) ([]PaymentMethodResult, error)
}
