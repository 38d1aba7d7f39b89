package orders

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/dribbleops/orderadmin/internal/adapter/adminapi"
	"github.com/dribbleops/orderadmin/internal/domain/model"
)

type apiStub struct {
	orders map[string]*model.Order

	listFn   func(context.Context, adminapi.ListQuery) ([]model.Order, error)
	updateFn func(context.Context, string, model.OrderStatus) (*model.Order, error)
	cancelFn func(context.Context, string, string) (*adminapi.CancelResult, error)
	statsFn  func(context.Context) (*model.OrderStats, error)

	gets    []string
	updates []model.OrderStatus
	cancels []string
}

func (s *apiStub) ListOrders(ctx context.Context, q adminapi.ListQuery) ([]model.Order, error) {
	if s.listFn != nil {
		return s.listFn(ctx, q)
	}
	return nil, nil
}

func (s *apiStub) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	s.gets = append(s.gets, id)
	if order, ok := s.orders[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, &adminapi.APIError{StatusCode: 404, Detail: "Order not found"}
}

func (s *apiStub) UpdateOrderStatus(ctx context.Context, id string, target model.OrderStatus) (*model.Order, error) {
	s.updates = append(s.updates, target)
	if s.updateFn != nil {
		return s.updateFn(ctx, id, target)
	}
	order := s.orders[id]
	order.Status = target
	copied := *order
	return &copied, nil
}

func (s *apiStub) CancelOrder(ctx context.Context, id, reason string) (*adminapi.CancelResult, error) {
	s.cancels = append(s.cancels, reason)
	if s.cancelFn != nil {
		return s.cancelFn(ctx, id, reason)
	}
	order := s.orders[id]
	order.Status = model.OrderStatusCancelled
	order.CancellationReason = reason
	return &adminapi.CancelResult{Success: true, OrderID: id}, nil
}

func (s *apiStub) Stats(ctx context.Context) (*model.OrderStats, error) {
	if s.statsFn != nil {
		return s.statsFn(ctx)
	}
	return &model.OrderStats{}, nil
}

func newTestService(stub *apiStub) *Service {
	return NewService(stub, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestAdvancePendingTargetsConfirmed(t *testing.T) {
	stub := &apiStub{orders: map[string]*model.Order{
		"o1": {ID: "o1", Status: model.OrderStatusPending},
	}}
	svc := newTestService(stub)

	order, err := svc.Advance(context.Background(), "o1")
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if len(stub.updates) != 1 || stub.updates[0] != model.OrderStatusConfirmed {
		t.Fatalf("expected a single update to confirmed, got %v", stub.updates)
	}
	if order.Status != model.OrderStatusConfirmed {
		t.Fatalf("unexpected status %q", order.Status)
	}
	// read before mutate, read again after.
	if len(stub.gets) != 2 {
		t.Fatalf("expected 2 fetches, got %d", len(stub.gets))
	}
}

func TestAdvanceReturnsServerStateNotMergedCopy(t *testing.T) {
	stub := &apiStub{orders: map[string]*model.Order{
		"o1": {ID: "o1", Status: model.OrderStatusConfirmed, OrderNotes: "old"},
	}}
	// The server mutates more than the status; the re-fetch must reflect all
	// of it without any merging with the pre-mutation copy.
	stub.updateFn = func(ctx context.Context, id string, target model.OrderStatus) (*model.Order, error) {
		stub.orders[id] = &model.Order{
			ID:          id,
			Status:      target,
			OrderNotes:  "revised by backend",
			TotalAmount: 990,
		}
		// Response body deliberately disagrees with the canonical record to
		// prove the service discards it in favor of the re-fetch.
		return &model.Order{ID: id, Status: target, OrderNotes: "stale response"}, nil
	}
	svc := newTestService(stub)

	order, err := svc.Advance(context.Background(), "o1")
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if order.Status != model.OrderStatusProcessing {
		t.Fatalf("unexpected status %q", order.Status)
	}
	if order.OrderNotes != "revised by backend" || order.TotalAmount != 990 {
		t.Fatalf("expected re-fetched server state, got %+v", order)
	}
}

func TestAdvanceTerminalStatuses(t *testing.T) {
	for _, s := range []model.OrderStatus{model.OrderStatusDelivered, model.OrderStatusCancelled} {
		stub := &apiStub{orders: map[string]*model.Order{
			"o1": {ID: "o1", Status: s},
		}}
		svc := newTestService(stub)

		if _, err := svc.Advance(context.Background(), "o1"); !errors.Is(err, ErrNoNextStatus) {
			t.Fatalf("expected ErrNoNextStatus for %s, got %v", s, err)
		}
		if len(stub.updates) != 0 {
			t.Fatalf("no mutation must be issued for %s", s)
		}
	}
}

func TestAdvanceRejectedMutationSkipsRefetch(t *testing.T) {
	stub := &apiStub{orders: map[string]*model.Order{
		"o1": {ID: "o1", Status: model.OrderStatusPaid},
	}}
	rejection := &adminapi.APIError{StatusCode: 400, Detail: "transition not allowed"}
	stub.updateFn = func(context.Context, string, model.OrderStatus) (*model.Order, error) {
		return nil, rejection
	}
	svc := newTestService(stub)

	_, err := svc.Advance(context.Background(), "o1")
	var apiErr *adminapi.APIError
	if !errors.As(err, &apiErr) || apiErr.Detail != "transition not allowed" {
		t.Fatalf("expected backend rejection to pass through, got %v", err)
	}
	// only the initial read happened; the prior displayed state stays as-is.
	if len(stub.gets) != 1 {
		t.Fatalf("expected no re-fetch after rejection, got %d fetches", len(stub.gets))
	}
}

func TestCancelRefetchesOrder(t *testing.T) {
	stub := &apiStub{orders: map[string]*model.Order{
		"o1": {ID: "o1", Status: model.OrderStatusProcessing},
	}}
	svc := newTestService(stub)

	order, err := svc.Cancel(context.Background(), "o1", "customer request")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if order.Status != model.OrderStatusCancelled {
		t.Fatalf("unexpected status %q", order.Status)
	}
	if order.CancellationReason != "customer request" {
		t.Fatalf("unexpected reason %q", order.CancellationReason)
	}
	if len(stub.cancels) != 1 || len(stub.gets) != 1 {
		t.Fatalf("expected one cancel and one re-fetch, got %d/%d", len(stub.cancels), len(stub.gets))
	}
}

func TestCancelDoesNotGateOnClientTable(t *testing.T) {
	// shipped is not offered in the UI, but the service itself must defer to
	// the backend's ruling rather than enforce the display table.
	stub := &apiStub{orders: map[string]*model.Order{
		"o1": {ID: "o1", Status: model.OrderStatusShipped},
	}}
	rejection := &adminapi.APIError{StatusCode: 400, Detail: "Cannot cancel - shipment has already been picked up by the courier"}
	stub.cancelFn = func(context.Context, string, string) (*adminapi.CancelResult, error) {
		return nil, rejection
	}
	svc := newTestService(stub)

	_, err := svc.Cancel(context.Background(), "o1", "")
	var apiErr *adminapi.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 400 {
		t.Fatalf("expected backend rejection, got %v", err)
	}
	if len(stub.gets) != 0 {
		t.Fatal("expected no re-fetch after rejected cancel")
	}
}

func TestBrowsePassesFilterVerbatim(t *testing.T) {
	var captured adminapi.ListQuery
	stub := &apiStub{}
	stub.listFn = func(ctx context.Context, q adminapi.ListQuery) ([]model.Order, error) {
		captured = q
		return []model.Order{{ID: "o1"}}, nil
	}
	svc := newTestService(stub)

	orders, err := svc.Browse(context.Background(), model.OrderStatusPending, 1, 50, "")
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	if captured.Status != model.OrderStatusPending || captured.Page != 1 || captured.Limit != 50 {
		t.Fatalf("unexpected query %+v", captured)
	}
	if len(orders) != 1 {
		t.Fatalf("unexpected result %v", orders)
	}
}

func TestOverviewIsIndependentRoundTrip(t *testing.T) {
	stub := &apiStub{}
	listCalls := 0
	stub.listFn = func(context.Context, adminapi.ListQuery) ([]model.Order, error) {
		listCalls++
		return nil, nil
	}
	stub.statsFn = func(context.Context) (*model.OrderStats, error) {
		return &model.OrderStats{TotalOrders: 7}, nil
	}
	svc := newTestService(stub)

	stats, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if stats.TotalOrders != 7 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if listCalls != 0 {
		t.Fatal("stats must not be derived from the list endpoint")
	}
}
