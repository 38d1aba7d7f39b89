package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dribbleops/orderadmin/internal/domain/model"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	LoginFn       func(context.Context, string, string) (*model.User, string, error)
	ParseFn       func(string) (string, error)
	CurrentUserFn func(context.Context, string) (*model.User, error)
}

// Login delegates to the provided function or returns a default operator.
func (s AuthFacadeStub) Login(ctx context.Context, identifier, password string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, identifier, password)
	}
	return &model.User{ID: "user-1", Email: identifier, Role: "admin", IsActive: true}, "token", nil
}

// ParseToken validates bearer tokens during tests.
func (s AuthFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "user-1", nil
}

// CurrentUser returns the operator behind an identifier.
func (s AuthFacadeStub) CurrentUser(ctx context.Context, id string) (*model.User, error) {
	if s.CurrentUserFn != nil {
		return s.CurrentUserFn(ctx, id)
	}
	return &model.User{ID: id, Email: "admin@example.com", Role: "admin", IsActive: true}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn       func(context.Context, string, int, int, string) ([]model.Order, error)
	OrderFn        func(context.Context, string) (*model.Order, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus) (*model.Order, error)
	CancelFn       func(context.Context, string, string, string) (*model.Order, error)
	StatsFn        func(context.Context) (*model.OrderStats, error)
}

// Orders returns the configured order listing.
func (s OrderFacadeStub) Orders(ctx context.Context, status string, page, limit int, search string) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, status, page, limit, search)
	}
	return []model.Order{{ID: "order-1", OrderNumber: "ORD-1", Status: model.OrderStatusPending}}, nil
}

// Order returns a single configured order.
func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, OrderNumber: "ORD-1", Status: model.OrderStatusPending}, nil
}

// UpdateOrderStatus delegates or echoes the requested status back.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: status}, nil
}

// CancelOrder delegates or returns a cancelled order.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, id, reason, cancelledBy string) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, id, reason, cancelledBy)
	}
	return &model.Order{ID: id, OrderNumber: "ORD-1", Status: model.OrderStatusCancelled, CancellationReason: reason}, nil
}

// OrderStats returns the configured aggregate counters.
func (s OrderFacadeStub) OrderStats(ctx context.Context) (*model.OrderStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.OrderStats{TotalOrders: 1, PendingOrders: 1}, nil
}

// PushTokenFacadeStub provides controllable behaviour for push token endpoints.
type PushTokenFacadeStub struct {
	RegisterFn   func(context.Context, string, string, map[string]string) error
	UnregisterFn func(context.Context, string) error
}

// RegisterPushToken delegates to provided function or accepts the token.
func (s PushTokenFacadeStub) RegisterPushToken(ctx context.Context, userID, token string, deviceInfo map[string]string) error {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, userID, token, deviceInfo)
	}
	return nil
}

// UnregisterPushToken delegates to provided function or accepts removal.
func (s PushTokenFacadeStub) UnregisterPushToken(ctx context.Context, token string) error {
	if s.UnregisterFn != nil {
		return s.UnregisterFn(ctx, token)
	}
	return nil
}

// AdminFacadeStub aggregates the endpoint stubs into a full backend facade.
type AdminFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	PushTokenFacadeStub
	HealthErr error
}

// HealthCheck reports the configured liveness state.
func (s AdminFacadeStub) HealthCheck(context.Context) error {
	return s.HealthErr
}

// NotifyCall stores information about Notify invocations.
type NotifyCall struct {
	OrderID string
	Tokens  []model.PushToken
}

// WorkerFacadeStub mimics worker interactions with the notification facade.
type WorkerFacadeStub struct {
	Orders          [][]model.Order
	OrdersFn        func(context.Context, int) ([]model.Order, error)
	TokensFn        func(context.Context) ([]model.PushToken, error)
	NotifyFn        func(context.Context, *model.Order, []model.PushToken) error
	Notifications   []NotifyCall
	mu              sync.Mutex
	ordersCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// OrdersForNotification returns batches from configured queue.
func (s *WorkerFacadeStub) OrdersForNotification(ctx context.Context, limit int) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.ordersCallCount, 1)
	if int(call) <= len(s.Orders) {
		return s.Orders[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// DeviceTokens returns configured device registrations.
func (s *WorkerFacadeStub) DeviceTokens(ctx context.Context) ([]model.PushToken, error) {
	if s.TokensFn != nil {
		return s.TokensFn(ctx)
	}
	return []model.PushToken{{Token: "device-token"}}, nil
}

// Notify records push deliveries.
func (s *WorkerFacadeStub) Notify(ctx context.Context, order *model.Order, tokens []model.PushToken) error {
	if s.NotifyFn != nil {
		return s.NotifyFn(ctx, order, tokens)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Notifications = append(s.Notifications, NotifyCall{OrderID: order.ID, Tokens: tokens})
	return nil
}
