package model

import "time"

// OrderStatus describes the order lifecycle state as reported by the backend.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusPaymentPending OrderStatus = "payment_pending"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"

	// Set by the shipping and payment integrations rather than an operator.
	OrderStatusInTransit         OrderStatus = "in_transit"
	OrderStatusRefunded          OrderStatus = "refunded"
	OrderStatusPartiallyRefunded OrderStatus = "partially_refunded"
)

// ShippingAddress is the delivery destination attached to an order.
type ShippingAddress struct {
	PersonName   string `json:"person_name"`
	BusinessName string `json:"business_name,omitempty"`
	GSTNumber    string `json:"gst_number,omitempty"`
	Address      string `json:"address"`
	State        string `json:"state"`
	City         string `json:"city"`
	Pincode      string `json:"pincode"`
	Mobile1      string `json:"mobile_1"`
	Mobile2      string `json:"mobile_2,omitempty"`
	Email1       string `json:"email_1,omitempty"`
	Email2       string `json:"email_2,omitempty"`
	Country      string `json:"country,omitempty"`
}

// OrderItem is a single ordered line carrying its own quantity.
type OrderItem struct {
	InventoryID    string  `json:"inventory_id,omitempty"`
	SKU            string  `json:"sku,omitempty"`
	Name           string  `json:"name"`
	Color          string  `json:"color"`
	Size           string  `json:"size"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity"`
	GSTRate        float64 `json:"gst_rate,omitempty"`
	HSNCode        string  `json:"hsn_code,omitempty"`
	ShippingWeight float64 `json:"shipping_weight,omitempty"`
}

// SelectedCourier records the courier chosen for dispatch, when any.
type SelectedCourier struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	FullName      string  `json:"full_name,omitempty"`
	Mode          string  `json:"mode"`
	Rate          float64 `json:"rate"`
	EstimatedDays string  `json:"estimated_days,omitempty"`
}

// Shipment is the tracking sub-record created once an order is booked.
type Shipment struct {
	AWBNumber     string `json:"awb_number,omitempty"`
	CarrierName   string `json:"carrier_name,omitempty"`
	CarrierMode   string `json:"carrier_mode,omitempty"`
	EstimatedDays string `json:"estimated_days,omitempty"`
	Status        string `json:"status,omitempty"`
	Booked        bool   `json:"is_booked,omitempty"`
	BookedAt      string `json:"booked_at,omitempty"`
	CancelledAt   string `json:"cancelled_at,omitempty"`
}

// Order is the central entity. The backend owns it; clients hold a transient
// copy and never write anything except the status field.
type Order struct {
	ID                 string           `json:"id"`
	OrderNumber        string           `json:"order_number"`
	CustomerEmail      string           `json:"customer_email"`
	CustomerName       string           `json:"customer_name"`
	CustomerPhone      string           `json:"customer_phone"`
	ShippingAddress    ShippingAddress  `json:"shipping_address"`
	Items              []OrderItem      `json:"items"`
	Subtotal           float64          `json:"subtotal"`
	Tax                float64          `json:"tax"`
	ShippingCost       float64          `json:"shipping_cost"`
	TotalAmount        float64          `json:"total_amount"`
	Status             OrderStatus      `json:"status"`
	PaymentID          string           `json:"payment_id,omitempty"`
	PaymentGateway     string           `json:"payment_gateway,omitempty"`
	PaymentMethod      string           `json:"payment_method,omitempty"`
	OrderNotes         string           `json:"order_notes,omitempty"`
	SelectedCourier    *SelectedCourier `json:"selected_courier,omitempty"`
	Shipment           *Shipment        `json:"shipment,omitempty"`
	CancellationReason string           `json:"cancellation_reason,omitempty"`
	CancelledAt        string           `json:"cancelled_at,omitempty"`
	CancelledBy        string           `json:"cancelled_by,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// TotalItems derives the item count from line quantities. The backend does not
// send a separate count field and one would not be trusted anyway.
func (o *Order) TotalItems() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}
