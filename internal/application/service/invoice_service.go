package service

import (
	"context"

	"github.com/avinashrk/billpoint-api/internal/domain/entity"
	"github.com/avinashrk/billpoint-api/internal/domain/repository"
	"github.com/avinashrk/billpoint-api/pkg/apperror"
	"github.com/avinashrk/billpoint-api/pkg/printer"
	"github.com/avinashrk/billpoint-api/pkg/render"
)

// InvoiceService renders stored bills. The view model is built once per
// bill, from the stored rows, and handed to every renderer; nothing is
// recomputed at render time, so the preview, the print window, the PDF and
// the thermal ticket cannot disagree.
type InvoiceService struct {
	billRepo  repository.BillRepository
	shopRepo  repository.ShopRepository
	printer   printer.Printer
	charWidth int
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(billRepo repository.BillRepository, shopRepo repository.ShopRepository, p printer.Printer, charWidth int) *InvoiceService {
	if charWidth <= 0 {
		charWidth = 32
	}
	return &InvoiceService{billRepo: billRepo, shopRepo: shopRepo, printer: p, charWidth: charWidth}
}

// BuildInvoice loads the bill and shop header and assembles the shared view
// model.
func (s *InvoiceService) BuildInvoice(ctx context.Context, billNo string) (*render.Invoice, error) {
	bill, err := s.billRepo.GetByBillNo(ctx, billNo)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	shop, err := s.shopRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	return buildInvoice(bill, shop), nil
}

func buildInvoice(bill *entity.Bill, shop *entity.ShopProfile) *render.Invoice {
	inv := &render.Invoice{
		ShopName:     shop.Name,
		AddressLines: shop.AddressLines(),
		BillNo:       bill.BillNo,
		CustomerName: bill.CustomerName,
		PaymentMode:  bill.PaymentMethod.String(),
		IssuedAt:     bill.CreatedAt,
		SubTotal:     bill.SubTotal,
	}
	for _, item := range bill.Items {
		inv.Lines = append(inv.Lines, render.Line{
			Name:      item.ItemName,
			Gram:      item.Gram,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			LineTotal: item.Total,
			Barcode:   item.Barcode,
		})
	}
	return inv
}

// RenderHTML returns the printable HTML document for a bill.
func (s *InvoiceService) RenderHTML(ctx context.Context, billNo string) ([]byte, error) {
	inv, err := s.BuildInvoice(ctx, billNo)
	if err != nil {
		return nil, err
	}
	return render.HTML(*inv)
}

// RenderPDF returns the paginated A4 PDF for a bill.
func (s *InvoiceService) RenderPDF(ctx context.Context, billNo string) ([]byte, error) {
	inv, err := s.BuildInvoice(ctx, billNo)
	if err != nil {
		return nil, err
	}
	return render.PDF(*inv)
}

// PrintThermal sends the bill to the configured receipt printer.
func (s *InvoiceService) PrintThermal(ctx context.Context, billNo string) error {
	inv, err := s.BuildInvoice(ctx, billNo)
	if err != nil {
		return err
	}

	if !s.printer.IsConnected() {
		return apperror.NewAppError(503, "Printer is not connected")
	}
	return s.printer.Print(render.Thermal(*inv, s.charWidth))
}
