package repository

import (
	"context"
	"time"

	"github.com/avinashrk/billpoint-api/internal/domain/entity"
	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/avinashrk/billpoint-api/pkg/pagination"
	"github.com/google/uuid"
)

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	// Create persists the bill and its items in one transaction.
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	GetByBillNo(ctx context.Context, billNo string) (*entity.Bill, error)
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)
	// ListForExport returns all bills in a window without pagination,
	// items preloaded, oldest first.
	ListForExport(ctx context.Context, from, to time.Time) ([]entity.Bill, error)
}

// BillFilterParams contains filtering parameters for bill queries
type BillFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string // matches bill no or customer name
	PaymentMethod *enum.PaymentMethod
	From          time.Time // zero means unbounded
	To            time.Time // zero means unbounded
}
