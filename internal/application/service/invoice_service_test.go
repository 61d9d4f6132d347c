package service

import (
	"context"
	"testing"
	"time"

	"github.com/avinashrk/billpoint-api/internal/domain/entity"
	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/avinashrk/billpoint-api/pkg/apperror"
	"github.com/avinashrk/billpoint-api/pkg/printer"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedBillFixture() *MockBillRepository {
	bill := &entity.Bill{
		ID:            uuid.New(),
		BillNo:        "BILL-A1B2C3D4",
		CustomerName:  "Ravi",
		PaymentMethod: enum.PaymentMethodUPI,
		TotalItems:    2,
		TotalQuantity: 3,
		SubTotal:      74000,
		CreatedAt:     time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC),
		Items: []entity.BillItem{
			{ItemName: "Kaju Katli", Gram: "250g", Quantity: 2, Price: 25000, Total: 50000, Barcode: "8901111"},
			{ItemName: "Mysore Pak", Gram: "500g", Quantity: 1, Price: 24000, Total: 24000, Barcode: "8902222"},
		},
	}
	return &MockBillRepository{Bills: map[uuid.UUID]*entity.Bill{bill.ID: bill}}
}

func TestBuildInvoiceMapsStoredBill(t *testing.T) {
	bills := storedBillFixture()
	shop := &MockShopRepository{Profile: &entity.ShopProfile{
		Name:         "Sri Ganesh Sweets",
		AddressLine1: "12 Market Road, Madurai",
		Phone:        "+91 98765 43210",
	}}
	svc := NewInvoiceService(bills, shop, printer.NewNullPrinter(), 32)

	inv, err := svc.BuildInvoice(context.Background(), "BILL-A1B2C3D4")
	require.NoError(t, err)

	assert.Equal(t, "Sri Ganesh Sweets", inv.ShopName)
	assert.Contains(t, inv.AddressLines, "Phone: +91 98765 43210")
	assert.Equal(t, "UPI", inv.PaymentMode)
	require.Len(t, inv.Lines, 2)
	assert.Equal(t, int64(74000), inv.SubTotal)

	// stored figures pass through untouched
	var linesTotal int64
	for _, l := range inv.Lines {
		linesTotal += l.LineTotal
	}
	assert.Equal(t, inv.SubTotal, linesTotal)
}

func TestBuildInvoiceUnknownBill(t *testing.T) {
	svc := NewInvoiceService(&MockBillRepository{}, &MockShopRepository{}, printer.NewNullPrinter(), 32)

	_, err := svc.BuildInvoice(context.Background(), "BILL-NOPE")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestRenderHTMLAndPDFShareFigures(t *testing.T) {
	bills := storedBillFixture()
	svc := NewInvoiceService(bills, &MockShopRepository{}, printer.NewNullPrinter(), 32)

	html, err := svc.RenderHTML(context.Background(), "BILL-A1B2C3D4")
	require.NoError(t, err)
	assert.Contains(t, string(html), "740.00")

	pdf, err := svc.RenderPDF(context.Background(), "BILL-A1B2C3D4")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestPrintThermalWithoutPrinter(t *testing.T) {
	bills := storedBillFixture()
	svc := NewInvoiceService(bills, &MockShopRepository{}, printer.NewNullPrinter(), 32)

	err := svc.PrintThermal(context.Background(), "BILL-A1B2C3D4")
	require.Error(t, err)
	assert.Equal(t, 503, apperror.GetAppError(err).Code)
}

func TestPrintThermalSendsDocument(t *testing.T) {
	bills := storedBillFixture()
	spool := t.TempDir()
	svc := NewInvoiceService(bills, &MockShopRepository{}, printer.NewSpoolPrinter(spool), 32)

	err := svc.PrintThermal(context.Background(), "BILL-A1B2C3D4")
	require.NoError(t, err)
}
