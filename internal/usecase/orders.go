package usecase

import (
	"context"

	domainErrors "github.com/dribbleops/orderadmin/internal/domain/errors"
	"github.com/dribbleops/orderadmin/internal/domain/model"
	"github.com/dribbleops/orderadmin/internal/domain/repository"
)

const (
	defaultPageLimit    = 100
	defaultCancelReason = "Cancelled by admin"
	filterAll           = "all"
)

// OrderUseCase encapsulates the order administration operations.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// List returns the filtered order collection, newest first. The pending and
// refunded filters are combined ones covering their sub-states, so clients
// can pass the umbrella code verbatim.
func (u *OrderUseCase) List(ctx context.Context, statusFilter string, page, limit int, search string) ([]model.Order, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}

	return u.orders.List(ctx, repository.ListFilter{
		Statuses: expandStatusFilter(statusFilter),
		Search:   search,
		Offset:   (page - 1) * limit,
		Limit:    limit,
	})
}

// Get fetches one order.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// UpdateStatus sets the order's status and returns the updated record. Any
// status value is accepted here; lifecycle advice lives on the client and
// the cancel rules are enforced by Cancel.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if _, err := u.orders.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := u.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, id)
}

// Cancel terminates an order with an optional reason, recording who did it.
func (u *OrderUseCase) Cancel(ctx context.Context, id, reason, cancelledBy string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch order.Status {
	case model.OrderStatusCancelled:
		return nil, domainErrors.ErrAlreadyCancelled
	case model.OrderStatusDelivered:
		return nil, domainErrors.ErrDelivered
	case model.OrderStatusInTransit:
		return nil, domainErrors.ErrShipmentPickedUp
	}

	if reason == "" {
		reason = defaultCancelReason
	}

	if err := u.orders.Cancel(ctx, id, repository.CancelRecord{
		Reason:      reason,
		CancelledBy: cancelledBy,
	}); err != nil {
		return nil, err
	}

	return u.orders.GetByID(ctx, id)
}

// Stats aggregates the order counters.
func (u *OrderUseCase) Stats(ctx context.Context) (*model.OrderStats, error) {
	return u.orders.Stats(ctx)
}

// SelectForNotification claims a batch of orders that still need a push
// notification sent.
func (u *OrderUseCase) SelectForNotification(ctx context.Context, limit int) ([]model.Order, error) {
	return u.orders.SelectUnnotified(ctx, limit)
}

func expandStatusFilter(filter string) []model.OrderStatus {
	switch filter {
	case "", filterAll:
		return nil
	case string(model.OrderStatusPending):
		return []model.OrderStatus{model.OrderStatusPending, model.OrderStatusPaymentPending}
	case string(model.OrderStatusRefunded):
		return []model.OrderStatus{model.OrderStatusRefunded, model.OrderStatusPartiallyRefunded}
	default:
		return []model.OrderStatus{model.OrderStatus(filter)}
	}
}
