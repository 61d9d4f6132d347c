package service

import (
	"context"
	"sync"
	"time"

	"github.com/avinashrk/billpoint-api/internal/application/cart"
	"github.com/avinashrk/billpoint-api/internal/domain/entity"
	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/avinashrk/billpoint-api/pkg/apperror"
	"github.com/google/uuid"
)

// RegisterService hosts the in-progress carts, one per open register
// session. Sessions live in memory: an abandoned register is swept after
// its TTL, and a server restart simply starts everyone with an empty cart.
type RegisterService struct {
	catalog *CatalogService
	billing *BillingService

	mu       sync.RWMutex
	sessions map[uuid.UUID]*registerSession

	sessionTTL  time.Duration
	cleanupTick time.Duration
	stopCh      chan struct{}
	stopOnce    sync.Once
}

type registerSession struct {
	mu       sync.Mutex
	cart     *cart.Cart
	lastSeen time.Time
}

// RegisterSessionConfig holds configuration for register sessions
type RegisterSessionConfig struct {
	SessionTTL      time.Duration // how long an idle cart survives
	CleanupInterval time.Duration // how often stale sessions are swept
}

// DefaultRegisterSessionConfig returns sensible defaults
func DefaultRegisterSessionConfig() RegisterSessionConfig {
	return RegisterSessionConfig{
		SessionTTL:      2 * time.Hour,
		CleanupInterval: 10 * time.Minute,
	}
}

// NewRegisterService creates a new register service and starts its sweep
// goroutine.
func NewRegisterService(catalog *CatalogService, billing *BillingService, cfg RegisterSessionConfig) *RegisterService {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultRegisterSessionConfig().SessionTTL
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = DefaultRegisterSessionConfig().CleanupInterval
	}

	s := &RegisterService{
		catalog:     catalog,
		billing:     billing,
		sessions:    make(map[uuid.UUID]*registerSession),
		sessionTTL:  cfg.SessionTTL,
		cleanupTick: cfg.CleanupInterval,
		stopCh:      make(chan struct{}),
	}

	go s.cleanupLoop()

	return s
}

// Open starts a new register session with an empty cart.
func (s *RegisterService) Open(ctx context.Context) uuid.UUID {
	id := uuid.New()

	s.mu.Lock()
	s.sessions[id] = &registerSession{cart: cart.New(), lastSeen: time.Now()}
	s.mu.Unlock()

	return id
}

func (s *RegisterService) get(id uuid.UUID) (*registerSession, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, apperror.NewNotFoundError("Register session")
	}

	sess.mu.Lock()
	sess.lastSeen = time.Now()
	sess.mu.Unlock()
	return sess, nil
}

// CartView is a snapshot of a session's cart.
type CartView struct {
	SessionID     uuid.UUID   `json:"sessionId"`
	Lines         []cart.Line `json:"items"`
	TotalItems    int         `json:"totalItems"`
	TotalQuantity int         `json:"totalQuantity"`
	SubTotal      int64       `json:"-"`
}

// Scan resolves one code and merges it into the session's cart. Each scan
// adds exactly one unit; there is no way to take a line back out short of
// finishing or abandoning the sale.
func (s *RegisterService) Scan(ctx context.Context, sessionID uuid.UUID, barcode, barcodeNumber string) (*CartView, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	variant, err := s.catalog.ResolveCode(ctx, barcode, barcodeNumber)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	sess.cart.Add(CartItem(variant))
	view := s.snapshot(sessionID, sess)
	sess.mu.Unlock()

	return view, nil
}

// ViewCart returns the session's current cart.
func (s *RegisterService) ViewCart(ctx context.Context, sessionID uuid.UUID) (*CartView, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	view := s.snapshot(sessionID, sess)
	sess.mu.Unlock()
	return view, nil
}

// snapshot must be called with sess.mu held.
func (s *RegisterService) snapshot(id uuid.UUID, sess *registerSession) *CartView {
	return &CartView{
		SessionID:     id,
		Lines:         sess.cart.Lines(),
		TotalItems:    sess.cart.Len(),
		TotalQuantity: sess.cart.TotalQuantity(),
		SubTotal:      sess.cart.SubTotal(),
	}
}

// Checkout submits the session's cart as a bill. The cart is cleared only
// after the bill is stored; on any failure it is left untouched so the
// cashier can retry.
func (s *RegisterService) Checkout(ctx context.Context, sessionID uuid.UUID, customerName string, method enum.PaymentMethod) (*entity.Bill, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.cart.IsEmpty() {
		return nil, apperror.NewBadRequestError("Cart is empty")
	}

	input := &CreateBillInput{
		CustomerName:  customerName,
		PaymentMethod: method,
	}
	for _, line := range sess.cart.Lines() {
		input.Items = append(input.Items, BillItemInput{
			Barcode:       line.Barcode,
			BarcodeNumber: line.BarcodeNumber,
			Quantity:      line.Quantity,
		})
	}

	bill, err := s.billing.CreateBill(ctx, input)
	if err != nil {
		return nil, err
	}

	sess.cart.Clear()
	return bill, nil
}

// Close discards a session and whatever its cart held.
func (s *RegisterService) Close(ctx context.Context, sessionID uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// Stop terminates the sweep goroutine.
func (s *RegisterService) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

func (s *RegisterService) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupTick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *RegisterService) sweep() {
	cutoff := time.Now().Add(-s.sessionTTL)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		sess.mu.Lock()
		stale := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if stale {
			delete(s.sessions, id)
		}
	}
}
