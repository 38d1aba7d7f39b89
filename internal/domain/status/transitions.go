package status

import "github.com/dribbleops/orderadmin/internal/domain/model"

// forward is the canonical lifecycle chain. cancelled sits outside it and is
// reached only through the cancel operation.
var forward = []model.OrderStatus{
	model.OrderStatusPending,
	model.OrderStatusPaymentPending,
	model.OrderStatusPaid,
	model.OrderStatusConfirmed,
	model.OrderStatusProcessing,
	model.OrderStatusShipped,
	model.OrderStatusDelivered,
}

// overrides collapse the choice shown to the operator: from pending the next
// offered step jumps straight to confirmed (payment_pending is never offered
// as a manual transition), and paid likewise advances to confirmed.
var overrides = map[model.OrderStatus]model.OrderStatus{
	model.OrderStatusPending: model.OrderStatusConfirmed,
	model.OrderStatusPaid:    model.OrderStatusConfirmed,
}

// Next returns the single forward status offered for the current one, and
// false when no advance action applies (terminal, cancelled, or unknown).
func Next(current model.OrderStatus) (model.OrderStatus, bool) {
	if next, ok := overrides[current]; ok {
		return next, true
	}
	for i, s := range forward {
		if s != current {
			continue
		}
		if i == len(forward)-1 {
			return "", false
		}
		return forward[i+1], true
	}
	return "", false
}

// CanCancel reports whether a cancel action is offered for the current
// status. Independent of Next: both actions may be available at once.
func CanCancel(current model.OrderStatus) bool {
	switch current {
	case model.OrderStatusCancelled, model.OrderStatusDelivered, model.OrderStatusShipped:
		return false
	}
	return true
}
