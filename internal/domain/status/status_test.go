package status

import (
	"testing"

	"github.com/dribbleops/orderadmin/internal/domain/model"
)

func TestResolveKnownStatuses(t *testing.T) {
	cases := []struct {
		code  model.OrderStatus
		label string
	}{
		{model.OrderStatusPending, "Pending"},
		{model.OrderStatusPaymentPending, "Payment Pending"},
		{model.OrderStatusPaid, "Paid"},
		{model.OrderStatusConfirmed, "Confirmed"},
		{model.OrderStatusProcessing, "Processing"},
		{model.OrderStatusShipped, "Shipped"},
		{model.OrderStatusDelivered, "Delivered"},
		{model.OrderStatusCancelled, "Cancelled"},
	}

	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			p := Resolve(tc.code)
			if p.Label != tc.label {
				t.Fatalf("expected label %q, got %q", tc.label, p.Label)
			}
			if p.Color == "" || p.Color == fallbackColor {
				t.Fatalf("expected dedicated color for %s, got %q", tc.code, p.Color)
			}
			if !Known(tc.code) {
				t.Fatalf("expected %s to be known", tc.code)
			}
		})
	}
}

func TestResolveUnknownStatusFallsBack(t *testing.T) {
	for _, code := range []model.OrderStatus{"refunded", "out_for_delivery", "", "SHOUTING"} {
		p := Resolve(code)
		if p.Label != string(code) {
			t.Fatalf("expected fallback label to echo raw code %q, got %q", code, p.Label)
		}
		if p.Color != fallbackColor {
			t.Fatalf("expected neutral color for %q, got %q", code, p.Color)
		}
		if Known(code) {
			t.Fatalf("did not expect %q to be known", code)
		}
	}
}

func TestFiltersExcludePaymentPending(t *testing.T) {
	filters := Filters()
	if len(filters) != 7 {
		t.Fatalf("expected 7 curated filters, got %d", len(filters))
	}
	for _, f := range filters {
		if f == model.OrderStatusPaymentPending {
			t.Fatal("payment_pending must not be offered as a filter")
		}
		if !Known(f) {
			t.Fatalf("filter %q is not in the registry", f)
		}
	}
}

func TestNext(t *testing.T) {
	cases := []struct {
		current model.OrderStatus
		want    model.OrderStatus
		offered bool
	}{
		{model.OrderStatusPending, model.OrderStatusConfirmed, true},
		{model.OrderStatusPaymentPending, model.OrderStatusPaid, true},
		{model.OrderStatusPaid, model.OrderStatusConfirmed, true},
		{model.OrderStatusConfirmed, model.OrderStatusProcessing, true},
		{model.OrderStatusProcessing, model.OrderStatusShipped, true},
		{model.OrderStatusShipped, model.OrderStatusDelivered, true},
		{model.OrderStatusDelivered, "", false},
		{model.OrderStatusCancelled, "", false},
		{"refunded", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		t.Run(string(tc.current), func(t *testing.T) {
			got, offered := Next(tc.current)
			if offered != tc.offered {
				t.Fatalf("offered = %v, want %v", offered, tc.offered)
			}
			if got != tc.want {
				t.Fatalf("Next(%q) = %q, want %q", tc.current, got, tc.want)
			}
		})
	}
}

func TestCanCancel(t *testing.T) {
	offered := []model.OrderStatus{
		model.OrderStatusPending,
		model.OrderStatusPaymentPending,
		model.OrderStatusPaid,
		model.OrderStatusConfirmed,
		model.OrderStatusProcessing,
	}
	for _, s := range offered {
		if !CanCancel(s) {
			t.Fatalf("expected cancel to be offered for %s", s)
		}
	}

	refused := []model.OrderStatus{
		model.OrderStatusShipped,
		model.OrderStatusDelivered,
		model.OrderStatusCancelled,
	}
	for _, s := range refused {
		if CanCancel(s) {
			t.Fatalf("expected cancel to be withheld for %s", s)
		}
	}
}

func TestAdvanceAndCancelAreIndependent(t *testing.T) {
	// shipped: advance offered, cancel not.
	if _, ok := Next(model.OrderStatusShipped); !ok {
		t.Fatal("expected advance from shipped")
	}
	if CanCancel(model.OrderStatusShipped) {
		t.Fatal("did not expect cancel for shipped")
	}

	// delivered: neither.
	if _, ok := Next(model.OrderStatusDelivered); ok {
		t.Fatal("did not expect advance from delivered")
	}
	if CanCancel(model.OrderStatusDelivered) {
		t.Fatal("did not expect cancel for delivered")
	}
}
