package service

import (
	"context"
	"testing"
	"time"

	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/avinashrk/billpoint-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegisterFixture(products *MockProductRepository, bills *MockBillRepository) *RegisterService {
	catalog := NewCatalogService(products)
	billing := NewBillingService(bills, products)
	return NewRegisterService(catalog, billing, RegisterSessionConfig{
		SessionTTL:      time.Hour,
		CleanupInterval: time.Hour,
	})
}

func TestScanAddsOneUnitPerScan(t *testing.T) {
	svc := newRegisterFixture(catalogFixture(), &MockBillRepository{})
	defer svc.Stop()

	id := svc.Open(context.Background())

	view, err := svc.Scan(context.Background(), id, "8901111", "")
	require.NoError(t, err)
	assert.Equal(t, 1, view.TotalQuantity)

	view, err = svc.Scan(context.Background(), id, "8901111", "")
	require.NoError(t, err)
	assert.Equal(t, 1, view.TotalItems, "second scan merges, not appends")
	assert.Equal(t, 2, view.TotalQuantity)
	assert.Equal(t, int64(50000), view.SubTotal)
}

func TestScanByTypedNumber(t *testing.T) {
	svc := newRegisterFixture(catalogFixture(), &MockBillRepository{})
	defer svc.Stop()

	id := svc.Open(context.Background())

	view, err := svc.Scan(context.Background(), id, "", "100002")
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "Mysore Pak", view.Lines[0].Name)
}

func TestScanUnknownCodeLeavesCartUntouched(t *testing.T) {
	svc := newRegisterFixture(catalogFixture(), &MockBillRepository{})
	defer svc.Stop()

	id := svc.Open(context.Background())
	_, err := svc.Scan(context.Background(), id, "8901111", "")
	require.NoError(t, err)

	_, err = svc.Scan(context.Background(), id, "9999999", "")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	view, err := svc.ViewCart(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 1, view.TotalQuantity)
}

func TestScanUnknownSession(t *testing.T) {
	svc := newRegisterFixture(catalogFixture(), &MockBillRepository{})
	defer svc.Stop()

	_, err := svc.Scan(context.Background(), uuid.New(), "8901111", "")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCheckoutStoresBillAndClearsCart(t *testing.T) {
	bills := &MockBillRepository{}
	svc := newRegisterFixture(catalogFixture(), bills)
	defer svc.Stop()

	id := svc.Open(context.Background())
	_, err := svc.Scan(context.Background(), id, "8901111", "")
	require.NoError(t, err)
	_, err = svc.Scan(context.Background(), id, "8901111", "")
	require.NoError(t, err)

	bill, err := svc.Checkout(context.Background(), id, "Ravi", enum.PaymentMethodCash)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), bill.SubTotal)

	view, err := svc.ViewCart(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, view.TotalQuantity == 0 && len(view.Lines) == 0, "cart clears after a stored bill")
}

func TestCheckoutFailureKeepsCart(t *testing.T) {
	products := catalogFixture()
	products.FailIDs = []uuid.UUID{products.Variants[0].ID}
	svc := newRegisterFixture(products, &MockBillRepository{})
	defer svc.Stop()

	id := svc.Open(context.Background())
	_, err := svc.Scan(context.Background(), id, "8901111", "")
	require.NoError(t, err)

	_, err = svc.Checkout(context.Background(), id, "", enum.PaymentMethodCash)
	require.Error(t, err)

	view, err := svc.ViewCart(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 1, view.TotalQuantity, "failed checkout must not clear the cart")
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc := newRegisterFixture(catalogFixture(), &MockBillRepository{})
	defer svc.Stop()

	id := svc.Open(context.Background())
	_, err := svc.Checkout(context.Background(), id, "", enum.PaymentMethodCash)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestSweepDropsIdleSessions(t *testing.T) {
	svc := newRegisterFixture(catalogFixture(), &MockBillRepository{})
	defer svc.Stop()
	svc.sessionTTL = 10 * time.Millisecond

	id := svc.Open(context.Background())
	time.Sleep(20 * time.Millisecond)
	svc.sweep()

	_, err := svc.ViewCart(context.Background(), id)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCloseDiscardsSession(t *testing.T) {
	svc := newRegisterFixture(catalogFixture(), &MockBillRepository{})
	defer svc.Stop()

	id := svc.Open(context.Background())
	svc.Close(context.Background(), id)

	_, err := svc.ViewCart(context.Background(), id)
	require.Error(t, err)
}
