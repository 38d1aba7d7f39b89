package handlers

import (
	"context"

	"github.com/dribbleops/orderadmin/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, identifier, password string) (*model.User, string, error)
	ParseToken(token string) (string, error)
	CurrentUser(ctx context.Context, id string) (*model.User, error)
}

// OrderFacade encapsulates order administration exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context, status string, page, limit int, search string) ([]model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
	CancelOrder(ctx context.Context, id, reason, cancelledBy string) (*model.Order, error)
	OrderStats(ctx context.Context) (*model.OrderStats, error)
}

// PushTokenFacade manages device push token registration.
type PushTokenFacade interface {
	RegisterPushToken(ctx context.Context, userID, token string, deviceInfo map[string]string) error
	UnregisterPushToken(ctx context.Context, token string) error
}

// HealthFacade reports backend liveness.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// AdminFacade aggregates the full set of operations used across handlers.
type AdminFacade interface {
	AuthFacade
	OrderFacade
	PushTokenFacade
	HealthFacade
}
