package repository

import (
	"context"

	"github.com/dribbleops/orderadmin/internal/domain/model"
)

// ListFilter narrows an order listing. An empty Statuses slice means no
// status restriction; Search matches order number and customer contact
// fields case-insensitively.
type ListFilter struct {
	Statuses []model.OrderStatus
	Search   string
	Offset   int
	Limit    int
}

// CancelRecord captures the audit fields written alongside a cancellation.
type CancelRecord struct {
	Reason      string
	CancelledBy string
}

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, filter ListFilter) ([]model.Order, error)
	Stats(ctx context.Context) (*model.OrderStats, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
	Cancel(ctx context.Context, id string, record CancelRecord) error
	// SelectUnnotified atomically claims orders the notifier has not pushed
	// out yet, marking them notified within the same transaction.
	SelectUnnotified(ctx context.Context, limit int) ([]model.Order, error)
	CountAll(ctx context.Context) (int, error)
}
