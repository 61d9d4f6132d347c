package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/avinashrk/billpoint-api/internal/domain/repository"
	"github.com/xuri/excelize/v2"
)

// ExportService produces spreadsheet downloads for bookkeeping
type ExportService struct {
	billRepo    repository.BillRepository
	statsRepo   repository.StatsRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewExportService creates a new export service
func NewExportService(billRepo repository.BillRepository, statsRepo repository.StatsRepository, productRepo repository.ProductRepository) *ExportService {
	return &ExportService{billRepo: billRepo, statsRepo: statsRepo, productRepo: productRepo, now: time.Now}
}

// ExportBills writes every bill in the window to an xlsx workbook: a Bills
// sheet with one row per bill and an Items sheet with one row per line.
func (s *ExportService) ExportBills(ctx context.Context, period enum.Period, from, to time.Time) ([]byte, error) {
	start, end, err := period.Range(s.now(), from, to)
	if err != nil {
		return nil, err
	}

	bills, err := s.billRepo.ListForExport(ctx, start, end)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const billsSheet = "Bills"
	f.SetSheetName("Sheet1", billsSheet)
	_ = f.SetSheetRow(billsSheet, "A1", &[]interface{}{
		"Bill No", "Date", "Customer", "Payment", "Items", "Quantity", "Sub Total",
	})
	for i, b := range bills {
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow(billsSheet, cell, &[]interface{}{
			b.BillNo,
			b.CreatedAt.Format("02/01/2006 15:04"),
			b.CustomerName,
			b.PaymentMethod.String(),
			b.TotalItems,
			b.TotalQuantity,
			float64(b.SubTotal) / 100,
		})
	}

	const itemsSheet = "Items"
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, err
	}
	_ = f.SetSheetRow(itemsSheet, "A1", &[]interface{}{
		"Bill No", "Item", "Gram", "Barcode", "Quantity", "Price", "Total",
	})
	row := 2
	for _, b := range bills {
		for _, item := range b.Items {
			cell := fmt.Sprintf("A%d", row)
			_ = f.SetSheetRow(itemsSheet, cell, &[]interface{}{
				b.BillNo,
				item.ItemName,
				item.Gram,
				item.Barcode,
				item.Quantity,
				float64(item.Price) / 100,
				float64(item.Total) / 100,
			})
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportItemsReport writes the aggregated items report to an xlsx workbook.
func (s *ExportService) ExportItemsReport(ctx context.Context, period enum.Period, from, to time.Time) ([]byte, error) {
	start, end, err := period.Range(s.now(), from, to)
	if err != nil {
		return nil, err
	}

	items, err := s.statsRepo.GetItemsReport(ctx, start, end)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Items Report"
	f.SetSheetName("Sheet1", sheet)
	_ = f.SetSheetRow(sheet, "A1", &[]interface{}{
		"Item", "Gram", "Price", "Quantity Sold", "Total Revenue",
	})
	for i, item := range items {
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow(sheet, cell, &[]interface{}{
			item.ItemName,
			item.Gram,
			float64(item.Price) / 100,
			item.QuantitySold,
			float64(item.TotalRevenue) / 100,
		})
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportProducts writes the whole catalog to an xlsx workbook, one row per
// variant.
func (s *ExportService) ExportProducts(ctx context.Context) ([]byte, error) {
	products, err := s.productRepo.ListForExport(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Products"
	f.SetSheetName("Sheet1", sheet)
	_ = f.SetSheetRow(sheet, "A1", &[]interface{}{
		"Item", "Type", "Gram", "Price", "Stock", "Barcode", "Barcode Number",
	})
	row := 2
	for _, p := range products {
		for _, v := range p.Variants {
			cell := fmt.Sprintf("A%d", row)
			_ = f.SetSheetRow(sheet, cell, &[]interface{}{
				p.ItemName,
				p.Type,
				v.Gram,
				float64(v.Price) / 100,
				v.Stock,
				v.Barcode,
				v.BarcodeNumber,
			})
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
