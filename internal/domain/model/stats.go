package model

// OrderStats is the aggregate snapshot served by the stats endpoint. It is
// computed independently of any loaded order list and may lag behind it.
type OrderStats struct {
	TotalOrders     int `json:"total_orders"`
	PendingOrders   int `json:"pending_orders"`
	PaidOrders      int `json:"paid_orders"`
	ShippedOrders   int `json:"shipped_orders"`
	DeliveredOrders int `json:"delivered_orders"`
	CancelledOrders int `json:"cancelled_orders"`
	TodayOrders     int `json:"today_orders"`
}
