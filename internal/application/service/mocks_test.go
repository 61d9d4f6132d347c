package service

import (
	"context"
	"time"

	"github.com/avinashrk/billpoint-api/internal/domain/entity"
	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/avinashrk/billpoint-api/internal/domain/repository"
	"github.com/google/uuid"
)

// MockProductRepository implements repository.ProductRepository for testing
type MockProductRepository struct {
	Products map[uuid.UUID]*entity.Product
	Variants []entity.ProductVariant

	CreateErr  error
	FindErr    error
	UpdateErr  error
	FailIDs    []uuid.UUID // returned by AtomicDecrementStockBatch
	DecrErr    error
	Decrements map[uuid.UUID]int // captures last decrement batch
	Increments map[uuid.UUID]int // captures compensating increments

	UpdatedVariant *entity.ProductVariant
	LastLookupKind enum.CodeKind // captures the kind of the last code lookup
}

func (m *MockProductRepository) Create(_ context.Context, product *entity.Product) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if m.Products == nil {
		m.Products = make(map[uuid.UUID]*entity.Product)
	}
	m.Products[product.ID] = product
	return nil
}

func (m *MockProductRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	return m.Products[id], nil
}

func (m *MockProductRepository) Update(_ context.Context, product *entity.Product) error {
	return m.UpdateErr
}

func (m *MockProductRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.Products, id)
	return nil
}

func (m *MockProductRepository) List(_ context.Context, _ *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	out := make([]entity.Product, 0, len(m.Products))
	for _, p := range m.Products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (m *MockProductRepository) ListForExport(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(m.Products))
	for _, p := range m.Products {
		cp := *p
		cp.Variants = nil
		for _, v := range m.Variants {
			if v.ProductID == p.ID {
				cp.Variants = append(cp.Variants, v)
			}
		}
		out = append(out, cp)
	}
	return out, nil
}

func (m *MockProductRepository) CreateVariant(_ context.Context, variant *entity.ProductVariant) error {
	if variant.ID == uuid.Nil {
		variant.ID = uuid.New()
	}
	m.Variants = append(m.Variants, *variant)
	return nil
}

func (m *MockProductRepository) GetVariant(_ context.Context, productID, variantID uuid.UUID) (*entity.ProductVariant, error) {
	for i := range m.Variants {
		if m.Variants[i].ID == variantID && m.Variants[i].ProductID == productID {
			v := m.Variants[i]
			return &v, nil
		}
	}
	return nil, nil
}

func (m *MockProductRepository) UpdateVariant(_ context.Context, variant *entity.ProductVariant) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.UpdatedVariant = variant
	for i := range m.Variants {
		if m.Variants[i].ID == variant.ID {
			m.Variants[i] = *variant
		}
	}
	return nil
}

func (m *MockProductRepository) DeleteVariant(_ context.Context, productID, variantID uuid.UUID) error {
	return nil
}

func (m *MockProductRepository) FindVariantByCode(_ context.Context, code string, kind enum.CodeKind) (*entity.ProductVariant, error) {
	m.LastLookupKind = kind
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for i := range m.Variants {
		v := m.Variants[i]
		if (kind == enum.CodeKindBarcode && v.Barcode == code) ||
			(kind == enum.CodeKindBarcodeNumber && v.BarcodeNumber == code) {
			return &v, nil
		}
	}
	return nil, nil
}

func (m *MockProductRepository) FindVariantsByCodes(_ context.Context, codes []string) (map[string]entity.ProductVariant, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	result := make(map[string]entity.ProductVariant)
	for _, code := range codes {
		for i := range m.Variants {
			if m.Variants[i].Barcode == code || m.Variants[i].BarcodeNumber == code {
				result[code] = m.Variants[i]
			}
		}
	}
	return result, nil
}

func (m *MockProductRepository) AtomicDecrementStockBatch(_ context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	m.Decrements = decrements
	return m.FailIDs, m.DecrErr
}

func (m *MockProductRepository) AtomicIncrementStockBatch(_ context.Context, increments map[uuid.UUID]int) error {
	m.Increments = increments
	return nil
}

// MockBillRepository implements repository.BillRepository for testing
type MockBillRepository struct {
	Bills     map[uuid.UUID]*entity.Bill
	CreateErr error
	Created   *entity.Bill // captures the bill passed to Create
}

func (m *MockBillRepository) Create(_ context.Context, bill *entity.Bill) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = time.Now()
	}
	m.Created = bill
	if m.Bills == nil {
		m.Bills = make(map[uuid.UUID]*entity.Bill)
	}
	m.Bills[bill.ID] = bill
	return nil
}

func (m *MockBillRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Bill, error) {
	return m.Bills[id], nil
}

func (m *MockBillRepository) GetByBillNo(_ context.Context, billNo string) (*entity.Bill, error) {
	for _, b := range m.Bills {
		if b.BillNo == billNo {
			return b, nil
		}
	}
	return nil, nil
}

func (m *MockBillRepository) List(_ context.Context, _ *repository.BillFilterParams) ([]entity.Bill, int64, error) {
	out := make([]entity.Bill, 0, len(m.Bills))
	for _, b := range m.Bills {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (m *MockBillRepository) ListForExport(_ context.Context, _, _ time.Time) ([]entity.Bill, error) {
	out := make([]entity.Bill, 0, len(m.Bills))
	for _, b := range m.Bills {
		out = append(out, *b)
	}
	return out, nil
}

// MockStatsRepository implements repository.StatsRepository for testing
type MockStatsRepository struct {
	Items    []repository.ItemSalesResult
	Top      []repository.TopItemResult
	Trend    []repository.TrendPointResult
	Payments []repository.PaymentMethodResult
	Err      error

	From, To   time.Time        // capture the resolved window
	LastBucket enum.TrendBucket // capture the trend bucket
	LastLimit  int
}

func (m *MockStatsRepository) GetItemsReport(_ context.Context, from, to time.Time) ([]repository.ItemSalesResult, error) {
	m.From, m.To = from, to
	return m.Items, m.Err
}

func (m *MockStatsRepository) GetTopItems(_ context.Context, from, to time.Time, limit int) ([]repository.TopItemResult, error) {
	m.From, m.To = from, to
	m.LastLimit = limit
	return m.Top, m.Err
}

func (m *MockStatsRepository) GetSalesTrend(_ context.Context, from, to time.Time, bucket enum.TrendBucket) ([]repository.TrendPointResult, error) {
	m.From, m.To = from, to
	m.LastBucket = bucket
	return m.Trend, m.Err
}

func (m *MockStatsRepository) GetPaymentMethodTotals(_ context.Context, from, to time.Time) ([]repository.PaymentMethodResult, error) {
	m.From, m.To = from, to
	return m.Payments, m.Err
}

// MockUserRepository implements repository.UserRepository for testing
type MockUserRepository struct {
	Users     map[uuid.UUID]*entity.User
	UpdateErr error
}

func (m *MockUserRepository) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if m.Users == nil {
		m.Users = make(map[uuid.UUID]*entity.User)
	}
	m.Users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return m.Users[id], nil
}

func (m *MockUserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) GetByGoogleID(_ context.Context, googleID string) (*entity.User, error) {
	for _, u := range m.Users {
		if u.GoogleID == googleID {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) Update(_ context.Context, user *entity.User) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.Users[user.ID] = user
	return nil
}

// MockShopRepository implements repository.ShopRepository for testing
type MockShopRepository struct {
	Profile *entity.ShopProfile
}

func (m *MockShopRepository) Get(_ context.Context) (*entity.ShopProfile, error) {
	if m.Profile == nil {
		m.Profile = &entity.ShopProfile{ID: uuid.New(), Name: "My Shop Name"}
	}
	return m.Profile, nil
}

func (m *MockShopRepository) Update(_ context.Context, profile *entity.ShopProfile) error {
	m.Profile = profile
	return nil
}
