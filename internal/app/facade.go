package app

import (
	"context"
	"fmt"

	"github.com/dribbleops/orderadmin/internal/adapter/push"
	"github.com/dribbleops/orderadmin/internal/domain/model"
	"github.com/dribbleops/orderadmin/internal/usecase"
)

// HealthChecker reports storage liveness.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// AdminFacade aggregates the use cases behind a single application surface
// consumed by the HTTP handlers and the notification worker.
type AdminFacade struct {
	auth       *usecase.AuthUseCase
	orders     *usecase.OrderUseCase
	pushTokens *usecase.PushTokenUseCase
	provider   push.Provider
	health     HealthChecker
}

// NewAdminFacade constructs AdminFacade.
func NewAdminFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	pushTokens *usecase.PushTokenUseCase,
	provider push.Provider,
	health HealthChecker,
) *AdminFacade {
	return &AdminFacade{
		auth:       auth,
		orders:     orders,
		pushTokens: pushTokens,
		provider:   provider,
		health:     health,
	}
}

func (f *AdminFacade) Login(ctx context.Context, identifier, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, identifier, password)
}

func (f *AdminFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *AdminFacade) CurrentUser(ctx context.Context, id string) (*model.User, error) {
	return f.auth.CurrentUser(ctx, id)
}

func (f *AdminFacade) Orders(ctx context.Context, status string, page, limit int, search string) ([]model.Order, error) {
	return f.orders.List(ctx, status, page, limit, search)
}

func (f *AdminFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *AdminFacade) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status)
}

// CancelOrder records the operator's email as the cancelling actor when the
// account still resolves, falling back to the raw identifier.
func (f *AdminFacade) CancelOrder(ctx context.Context, id, reason, operatorID string) (*model.Order, error) {
	cancelledBy := operatorID
	if user, err := f.auth.CurrentUser(ctx, operatorID); err == nil && user.Email != "" {
		cancelledBy = user.Email
	}
	return f.orders.Cancel(ctx, id, reason, cancelledBy)
}

func (f *AdminFacade) OrderStats(ctx context.Context) (*model.OrderStats, error) {
	return f.orders.Stats(ctx)
}

func (f *AdminFacade) RegisterPushToken(ctx context.Context, userID, token string, deviceInfo map[string]string) error {
	return f.pushTokens.Register(ctx, userID, token, deviceInfo)
}

func (f *AdminFacade) UnregisterPushToken(ctx context.Context, token string) error {
	return f.pushTokens.Unregister(ctx, token)
}

func (f *AdminFacade) OrdersForNotification(ctx context.Context, limit int) ([]model.Order, error) {
	return f.orders.SelectForNotification(ctx, limit)
}

func (f *AdminFacade) DeviceTokens(ctx context.Context) ([]model.PushToken, error) {
	return f.pushTokens.Devices(ctx)
}

// Notify fans one order alert out to every registered device. Individual
// delivery failures do not stop the rest of the fan-out.
func (f *AdminFacade) Notify(ctx context.Context, order *model.Order, tokens []model.PushToken) error {
	notification := push.Notification{
		Title: "New Order " + order.OrderNumber,
		Body:  fmt.Sprintf("%s placed an order for ₹%.2f", order.CustomerName, order.TotalAmount),
		Data: map[string]string{
			"order_id":     order.ID,
			"order_number": order.OrderNumber,
			"status":       string(order.Status),
		},
	}

	var lastErr error
	for _, t := range tokens {
		notification.To = t.Token
		if err := f.provider.Send(ctx, notification); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

func (f *AdminFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
