package service

import (
	"context"
	"testing"
	"time"

	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
}

func newStatsFixture(repo *MockStatsRepository) *StatsService {
	svc := NewStatsService(repo)
	svc.now = fixedNow
	return svc
}

func TestItemsReportDayWindow(t *testing.T) {
	repo := &MockStatsRepository{}
	svc := newStatsFixture(repo)

	_, err := svc.ItemsReport(context.Background(), enum.PeriodDay, time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), repo.From)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), repo.To)
}

func TestItemsReportAllIsUnbounded(t *testing.T) {
	repo := &MockStatsRepository{}
	svc := newStatsFixture(repo)

	_, err := svc.ItemsReport(context.Background(), enum.PeriodAll, time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.True(t, repo.From.IsZero())
	assert.True(t, repo.To.IsZero())
}

func TestItemsReportCustomWindowCoversWholeDays(t *testing.T) {
	repo := &MockStatsRepository{}
	svc := newStatsFixture(repo)

	from := time.Date(2026, 3, 1, 13, 45, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) // same day, earlier clock time
	_, err := svc.ItemsReport(context.Background(), enum.PeriodCustom, from, to)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), repo.From)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), repo.To)
}

func TestItemsReportCustomWindowValidation(t *testing.T) {
	svc := newStatsFixture(&MockStatsRepository{})

	_, err := svc.ItemsReport(context.Background(), enum.PeriodCustom, time.Time{}, time.Time{})
	require.Error(t, err)

	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.ItemsReport(context.Background(), enum.PeriodCustom, from, to)
	require.Error(t, err)
}

func TestTopItemsDefaultLimit(t *testing.T) {
	repo := &MockStatsRepository{}
	svc := newStatsFixture(repo)

	_, err := svc.TopItems(context.Background(), enum.PeriodWeek, time.Time{}, time.Time{}, 0)
	require.NoError(t, err)
	assert.Equal(t, defaultTopItemsLimit, repo.LastLimit)

	_, err = svc.TopItems(context.Background(), enum.PeriodWeek, time.Time{}, time.Time{}, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, repo.LastLimit)
}

func TestSalesTrendBucketFollowsPeriod(t *testing.T) {
	repo := &MockStatsRepository{}
	svc := newStatsFixture(repo)

	_, bucket, err := svc.SalesTrend(context.Background(), enum.PeriodDay, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, enum.TrendBucketHour, bucket)
	assert.Equal(t, enum.TrendBucketHour, repo.LastBucket)

	_, bucket, err = svc.SalesTrend(context.Background(), enum.PeriodWeek, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, enum.TrendBucketDay, bucket)

	_, bucket, err = svc.SalesTrend(context.Background(), enum.PeriodYear, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, enum.TrendBucketMonth, bucket)
}

func TestPaymentMethodTotalsWindow(t *testing.T) {
	repo := &MockStatsRepository{}
	svc := newStatsFixture(repo)

	_, err := svc.PaymentMethodTotals(context.Background(), enum.PeriodMonth, time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC), repo.From)
}
