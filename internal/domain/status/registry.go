// Package status holds the order lifecycle tables shared by the operator
// console: display metadata per status code and the forward-transition rules.
// Everything here is advisory. The backend alone decides which transitions it
// accepts, and it derives the same rules independently.
package status

import "github.com/dribbleops/orderadmin/internal/domain/model"

// Presentation is the display metadata for a status badge.
type Presentation struct {
	Label string
	Color string
}

// neutral tone used for any status code the registry does not know.
const fallbackColor = "#6B7280"

var registry = map[model.OrderStatus]Presentation{
	model.OrderStatusPending:        {Label: "Pending", Color: "#F59E0B"},
	model.OrderStatusPaymentPending: {Label: "Payment Pending", Color: "#FB923C"},
	model.OrderStatusPaid:           {Label: "Paid", Color: "#10B981"},
	model.OrderStatusConfirmed:      {Label: "Confirmed", Color: "#3B82F6"},
	model.OrderStatusProcessing:     {Label: "Processing", Color: "#8B5CF6"},
	model.OrderStatusShipped:        {Label: "Shipped", Color: "#06B6D4"},
	model.OrderStatusDelivered:      {Label: "Delivered", Color: "#22C55E"},
	model.OrderStatusCancelled:      {Label: "Cancelled", Color: "#EF4444"},
}

// Resolve maps a status code to its presentation. It is total: codes the
// backend introduces later render with the raw code and a neutral color
// instead of failing.
func Resolve(code model.OrderStatus) Presentation {
	if p, ok := registry[code]; ok {
		return p
	}
	return Presentation{Label: string(code), Color: fallbackColor}
}

// Known reports whether the code belongs to the fixed registry.
func Known(code model.OrderStatus) bool {
	_, ok := registry[code]
	return ok
}

// Filters is the curated list offered to the operator on the list screen.
// payment_pending is deliberately absent: the backend folds it into the
// pending filter, and the client passes filter codes through verbatim.
func Filters() []model.OrderStatus {
	return []model.OrderStatus{
		model.OrderStatusPending,
		model.OrderStatusPaid,
		model.OrderStatusConfirmed,
		model.OrderStatusProcessing,
		model.OrderStatusShipped,
		model.OrderStatusDelivered,
		model.OrderStatusCancelled,
	}
}
