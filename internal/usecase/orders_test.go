package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/dribbleops/orderadmin/internal/domain/errors"
	"github.com/dribbleops/orderadmin/internal/domain/model"
	"github.com/dribbleops/orderadmin/internal/domain/repository"
	"github.com/dribbleops/orderadmin/internal/test"
)

func sampleOrder(id string, status model.OrderStatus) *model.Order {
	return &model.Order{
		ID:           id,
		OrderNumber:  "ORD-" + id,
		CustomerName: "Priya Sharma",
		Status:       status,
		TotalAmount:  1999,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestListExpandsPendingFilter(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	var captured repository.ListFilter
	orders.ListFn = func(_ context.Context, filter repository.ListFilter) ([]model.Order, error) {
		captured = filter
		return nil, nil
	}
	uc := NewOrderUseCase(orders)

	if _, err := uc.List(context.Background(), "pending", 1, 50, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []model.OrderStatus{model.OrderStatusPending, model.OrderStatusPaymentPending}
	if len(captured.Statuses) != len(want) {
		t.Fatalf("unexpected statuses %v", captured.Statuses)
	}
	for i, s := range want {
		if captured.Statuses[i] != s {
			t.Fatalf("unexpected statuses %v", captured.Statuses)
		}
	}
}

func TestListFilterTranslation(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		want   []model.OrderStatus
	}{
		{name: "empty means all", filter: "", want: nil},
		{name: "all keyword", filter: "all", want: nil},
		{name: "single status", filter: "shipped", want: []model.OrderStatus{model.OrderStatusShipped}},
		{name: "payment pending stays narrow", filter: "payment_pending", want: []model.OrderStatus{model.OrderStatusPaymentPending}},
		{name: "refunded covers partial refunds", filter: "refunded", want: []model.OrderStatus{model.OrderStatusRefunded, model.OrderStatusPartiallyRefunded}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := expandStatusFilter(tc.filter)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestListSanitizesPaging(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	var captured repository.ListFilter
	orders.ListFn = func(_ context.Context, filter repository.ListFilter) ([]model.Order, error) {
		captured = filter
		return nil, nil
	}
	uc := NewOrderUseCase(orders)

	if _, err := uc.List(context.Background(), "", 0, -5, "sharma"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.Offset != 0 || captured.Limit != defaultPageLimit {
		t.Fatalf("unexpected paging %+v", captured)
	}
	if captured.Search != "sharma" {
		t.Fatalf("search not forwarded: %+v", captured)
	}

	if _, err := uc.List(context.Background(), "", 3, 20, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.Offset != 40 || captured.Limit != 20 {
		t.Fatalf("unexpected paging %+v", captured)
	}
}

func TestUpdateStatusReturnsFreshOrder(t *testing.T) {
	orders := test.NewOrderRepositoryStub(sampleOrder("o1", model.OrderStatusPaid))
	uc := NewOrderUseCase(orders)

	updated, err := uc.UpdateStatus(context.Background(), "o1", model.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != model.OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", updated.Status)
	}
	if len(orders.UpdateCalls) != 1 || orders.UpdateCalls[0] != model.OrderStatusConfirmed {
		t.Fatalf("unexpected update calls %v", orders.UpdateCalls)
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	uc := NewOrderUseCase(test.NewOrderRepositoryStub())

	if _, err := uc.UpdateStatus(context.Background(), "missing", model.OrderStatusPaid); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCancelRecordsReasonAndActor(t *testing.T) {
	orders := test.NewOrderRepositoryStub(sampleOrder("o1", model.OrderStatusPaid))
	uc := NewOrderUseCase(orders)

	cancelled, err := uc.Cancel(context.Background(), "o1", "customer request", "admin@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled.Status != model.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Status)
	}
	if len(orders.CancelCalls) != 1 {
		t.Fatalf("unexpected cancel calls %v", orders.CancelCalls)
	}
	record := orders.CancelCalls[0]
	if record.Reason != "customer request" || record.CancelledBy != "admin@example.com" {
		t.Fatalf("unexpected record %+v", record)
	}
}

func TestCancelDefaultsReason(t *testing.T) {
	orders := test.NewOrderRepositoryStub(sampleOrder("o1", model.OrderStatusPending))
	uc := NewOrderUseCase(orders)

	if _, err := uc.Cancel(context.Background(), "o1", "", "admin@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders.CancelCalls[0].Reason != defaultCancelReason {
		t.Fatalf("unexpected reason %q", orders.CancelCalls[0].Reason)
	}
}

func TestCancelRejectsIneligibleOrders(t *testing.T) {
	tests := []struct {
		name    string
		order   *model.Order
		wantErr error
	}{
		{name: "already cancelled", order: sampleOrder("o1", model.OrderStatusCancelled), wantErr: domainErrors.ErrAlreadyCancelled},
		{name: "delivered", order: sampleOrder("o2", model.OrderStatusDelivered), wantErr: domainErrors.ErrDelivered},
		{name: "in transit", order: sampleOrder("o3", model.OrderStatusInTransit), wantErr: domainErrors.ErrShipmentPickedUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			orders := test.NewOrderRepositoryStub(tc.order)
			uc := NewOrderUseCase(orders)

			if _, err := uc.Cancel(context.Background(), tc.order.ID, "", "admin"); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if len(orders.CancelCalls) != 0 {
				t.Fatalf("cancel should not reach the repository")
			}
		})
	}
}

func TestCancelEligibilityFollowsOrderStatusNotShipment(t *testing.T) {
	order := sampleOrder("o1", model.OrderStatusShipped)
	order.Shipment = &model.Shipment{Status: "in_transit", Booked: true}
	orders := test.NewOrderRepositoryStub(order)
	uc := NewOrderUseCase(orders)

	if _, err := uc.Cancel(context.Background(), "o1", "", "admin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders.CancelCalls) != 1 {
		t.Fatal("expected cancel to reach the repository")
	}
}

func TestStatsDelegates(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	orders.StatsFn = func(context.Context) (*model.OrderStats, error) {
		return &model.OrderStats{TotalOrders: 7, TodayOrders: 2}, nil
	}
	uc := NewOrderUseCase(orders)

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalOrders != 7 || stats.TodayOrders != 2 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestSelectForNotificationDelegates(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	orders.SelectUnnotifiedFn = func(_ context.Context, limit int) ([]model.Order, error) {
		if limit != 10 {
			t.Fatalf("unexpected limit %d", limit)
		}
		return []model.Order{*sampleOrder("o1", model.OrderStatusPending)}, nil
	}
	uc := NewOrderUseCase(orders)

	batch, err := uc.SelectForNotification(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch) != 1 {
		t.Fatalf("unexpected batch %v", batch)
	}
}
