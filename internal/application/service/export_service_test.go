package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportBillsWorkbookLayout(t *testing.T) {
	billRepo := storedBillFixture()
	svc := NewExportService(billRepo, &MockStatsRepository{}, &MockProductRepository{})

	out, err := svc.ExportBills(context.Background(), enum.PeriodAll, time.Time{}, time.Time{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Bills")
	assert.Contains(t, f.GetSheetList(), "Items")

	rows, err := f.GetRows("Bills")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "BILL-A1B2C3D4", rows[1][0])

	// one row per stored line plus the header
	items, err := f.GetRows("Items")
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestExportProductsOneRowPerVariant(t *testing.T) {
	repo := catalogFixture()
	svc := NewExportService(&MockBillRepository{}, &MockStatsRepository{}, repo)

	out, err := svc.ExportProducts(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Products")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.ElementsMatch(t,
		[]string{rows[1][0], rows[2][0]},
		[]string{"Kaju Katli", "Mysore Pak"},
	)
}
