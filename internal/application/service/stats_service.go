package service

import (
	"context"
	"time"

	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/avinashrk/billpoint-api/internal/domain/repository"
	"github.com/avinashrk/billpoint-api/pkg/apperror"
)

const defaultTopItemsLimit = 10

// StatsService answers the console's reporting queries
type StatsService struct {
	statsRepo repository.StatsRepository
	now       func() time.Time
}

// NewStatsService creates a new stats service
func NewStatsService(statsRepo repository.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo, now: time.Now}
}

func (s *StatsService) resolveWindow(period enum.Period, from, to time.Time) (time.Time, time.Time, error) {
	start, end, err := period.Range(s.now(), from, to)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.NewBadRequestError(err.Error())
	}
	return start, end, nil
}

// ItemsReport returns per-item sales for the window, highest revenue first.
func (s *StatsService) ItemsReport(ctx context.Context, period enum.Period, from, to time.Time) ([]repository.ItemSalesResult, error) {
	start, end, err := s.resolveWindow(period, from, to)
	if err != nil {
		return nil, err
	}
	return s.statsRepo.GetItemsReport(ctx, start, end)
}

// TopItems returns the best sellers by quantity for the window.
func (s *StatsService) TopItems(ctx context.Context, period enum.Period, from, to time.Time, limit int) ([]repository.TopItemResult, error) {
	if limit <= 0 {
		limit = defaultTopItemsLimit
	}
	start, end, err := s.resolveWindow(period, from, to)
	if err != nil {
		return nil, err
	}
	return s.statsRepo.GetTopItems(ctx, start, end, limit)
}

// SalesTrend returns bucketed sales totals for the window. The bucket size
// follows the period: hourly for a day, monthly for year-wide windows,
// daily otherwise.
func (s *StatsService) SalesTrend(ctx context.Context, period enum.Period, from, to time.Time) ([]repository.TrendPointResult, enum.TrendBucket, error) {
	start, end, err := s.resolveWindow(period, from, to)
	if err != nil {
		return nil, "", err
	}
	bucket := enum.BucketFor(period)
	points, err := s.statsRepo.GetSalesTrend(ctx, start, end, bucket)
	if err != nil {
		return nil, "", err
	}
	return points, bucket, nil
}

// PaymentMethodTotals returns totals per payment method for the window.
func (s *StatsService) PaymentMethodTotals(ctx context.Context, period enum.Period, from, to time.Time) ([]repository.PaymentMethodResult, error) {
	start, end, err := s.resolveWindow(period, from, to)
	if err != nil {
		return nil, err
	}
	return s.statsRepo.GetPaymentMethodTotals(ctx, start, end)
}
