package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/avinashrk/billpoint-api/internal/application/cart"
	"github.com/avinashrk/billpoint-api/internal/domain/entity"
	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/avinashrk/billpoint-api/internal/domain/repository"
	"github.com/avinashrk/billpoint-api/pkg/apperror"
	"github.com/avinashrk/billpoint-api/pkg/pagination"
	"github.com/avinashrk/billpoint-api/pkg/utils"
	"github.com/google/uuid"
)

// BillingService turns a finished cart into a stored bill
type BillingService struct {
	billRepo    repository.BillRepository
	productRepo repository.ProductRepository
}

// NewBillingService creates a new billing service
func NewBillingService(billRepo repository.BillRepository, productRepo repository.ProductRepository) *BillingService {
	return &BillingService{billRepo: billRepo, productRepo: productRepo}
}

// BillItemInput is one submitted line. Barcode and BarcodeNumber travel
// together; resolution tries the scanner value first.
type BillItemInput struct {
	Barcode       string
	BarcodeNumber string
	Quantity      int
}

// CreateBillInput represents the create bill request
type CreateBillInput struct {
	CustomerName  string
	PaymentMethod enum.PaymentMethod
	Items         []BillItemInput
}

// CreateBill resolves every submitted line against the catalog, recomputes
// the subtotal from catalog prices, decrements stock atomically and stores
// the bill. Either everything succeeds and the caller gets the stored bill,
// or nothing is written: a failed insert puts the decremented stock back.
func (s *BillingService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Bill must contain at least one item")
	}
	if !input.PaymentMethod.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown payment method")
	}

	// Batch resolve all codes in one query (prevents N+1)
	codes := make([]string, 0, len(input.Items)*2)
	for _, item := range input.Items {
		if b := strings.TrimSpace(item.Barcode); b != "" {
			codes = append(codes, b)
		}
		if n := strings.TrimSpace(item.BarcodeNumber); n != "" {
			codes = append(codes, n)
		}
	}
	variantsByCode, err := s.productRepo.FindVariantsByCodes(ctx, codes)
	if err != nil {
		return nil, err
	}

	// Re-aggregate through the cart so duplicate submissions of the same
	// item merge the same way the register does, in first-seen order.
	agg := cart.New()
	variantsByKey := make(map[string]entity.ProductVariant)
	stockDecrements := make(map[uuid.UUID]int)

	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}

		variant, ok := s.lookupVariant(variantsByCode, item)
		if !ok {
			code := strings.TrimSpace(item.Barcode)
			if code == "" {
				code = strings.TrimSpace(item.BarcodeNumber)
			}
			return nil, apperror.NewAppError(404, fmt.Sprintf("Item not found for barcode %s", code))
		}

		line := CartItem(&variant)
		agg.AddQuantity(line, item.Quantity)
		variantsByKey[variant.Barcode] = variant
		stockDecrements[variant.ID] += item.Quantity
	}

	// Atomically decrement stock; any shortage rolls the whole batch back
	failedIDs, err := s.productRepo.AtomicDecrementStockBatch(ctx, stockDecrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		var failedNames []string
		for _, id := range failedIDs {
			for _, v := range variantsByKey {
				if v.ID == id {
					failedNames = append(failedNames, v.Product.ItemName)
					break
				}
			}
		}
		return nil, apperror.NewAppError(400, fmt.Sprintf("Insufficient stock for: %v", failedNames))
	}

	bill := &entity.Bill{
		BillNo:        utils.GenerateBillNo(),
		CustomerName:  strings.TrimSpace(input.CustomerName),
		PaymentMethod: input.PaymentMethod,
		TotalItems:    agg.Len(),
		TotalQuantity: agg.TotalQuantity(),
		SubTotal:      agg.SubTotal(),
	}
	for pos, line := range agg.Lines() {
		item := entity.BillItem{
			Position:      pos,
			ItemName:      line.Name,
			Gram:          line.Gram,
			Quantity:      line.Quantity,
			Price:         line.UnitPrice,
			Total:         line.Total(),
			Barcode:       line.Barcode,
			BarcodeNumber: line.BarcodeNumber,
		}
		if v, ok := variantsByKey[line.Barcode]; ok {
			id := v.ID
			item.VariantID = &id
		}
		bill.Items = append(bill.Items, item)
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		// Stock was already decremented - restore it
		_ = s.productRepo.AtomicIncrementStockBatch(ctx, stockDecrements)
		return nil, err
	}

	return s.billRepo.GetByID(ctx, bill.ID)
}

// lookupVariant tries the scanner barcode first, then the typed number.
func (s *BillingService) lookupVariant(byCode map[string]entity.ProductVariant, item BillItemInput) (entity.ProductVariant, bool) {
	if b := strings.TrimSpace(item.Barcode); b != "" {
		if v, ok := byCode[b]; ok {
			return v, true
		}
	}
	if n := strings.TrimSpace(item.BarcodeNumber); n != "" {
		if v, ok := byCode[n]; ok {
			return v, true
		}
	}
	return entity.ProductVariant{}, false
}

// GetBill retrieves a bill by ID
func (s *BillingService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// GetBillByNo retrieves a bill by its bill number
func (s *BillingService) GetBillByNo(ctx context.Context, billNo string) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByBillNo(ctx, billNo)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills returns bills with filtering and pagination
func (s *BillingService) ListBills(ctx context.Context, params *repository.BillFilterParams) (*pagination.PaginatedResult[entity.Bill], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(bills,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}
