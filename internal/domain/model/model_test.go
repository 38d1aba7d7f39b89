package model

import "testing"

func TestOrderTotalItems(t *testing.T) {
	order := Order{Items: []OrderItem{
		{Name: "Sports T-Shirt", Quantity: 20},
		{Name: "Track Pants", Quantity: 15},
	}}
	if got := order.TotalItems(); got != 35 {
		t.Fatalf("expected 35 items, got %d", got)
	}
}

func TestOrderTotalItemsEmpty(t *testing.T) {
	var order Order
	if got := order.TotalItems(); got != 0 {
		t.Fatalf("expected 0 items, got %d", got)
	}
}
