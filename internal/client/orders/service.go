// Package orders implements the client side of the order sync contract:
// read, mutate, then re-read. The displayed state is always the backend's
// answer to a fresh fetch, never a locally patched copy.
package orders

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dribbleops/orderadmin/internal/adapter/adminapi"
	"github.com/dribbleops/orderadmin/internal/domain/model"
	"github.com/dribbleops/orderadmin/internal/domain/status"
)

// ErrNoNextStatus indicates the current status has no forward step to offer.
var ErrNoNextStatus = errors.New("no next status to offer")

// API is the slice of the admin client the service depends on.
type API interface {
	ListOrders(ctx context.Context, q adminapi.ListQuery) ([]model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
	CancelOrder(ctx context.Context, id, reason string) (*adminapi.CancelResult, error)
	Stats(ctx context.Context) (*model.OrderStats, error)
}

// Service orchestrates order screens against the backend.
type Service struct {
	api    API
	logger *slog.Logger
}

// NewService constructs the order service.
func NewService(api API, logger *slog.Logger) *Service {
	return &Service{api: api, logger: logger}
}

// Advance moves the order to its single offered next status and returns the
// re-fetched order. The mutation response itself is discarded: the rendered
// state must come from a fresh read.
func (s *Service) Advance(ctx context.Context, id string) (*model.Order, error) {
	current, err := s.api.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	next, ok := status.Next(current.Status)
	if !ok {
		return nil, ErrNoNextStatus
	}

	if _, err := s.api.UpdateOrderStatus(ctx, id, next); err != nil {
		return nil, err
	}

	s.logger.Info("order advanced",
		slog.String("order_id", id),
		slog.String("from", string(current.Status)),
		slog.String("to", string(next)),
	)
	return s.api.GetOrder(ctx, id)
}

// Cancel requests cancellation and returns the re-fetched order. The cancel
// eligibility table only decides what the console offers; the backend makes
// its own ruling and this call passes its rejection through untouched.
func (s *Service) Cancel(ctx context.Context, id, reason string) (*model.Order, error) {
	if _, err := s.api.CancelOrder(ctx, id, reason); err != nil {
		return nil, err
	}

	s.logger.Info("order cancelled", slog.String("order_id", id))
	return s.api.GetOrder(ctx, id)
}

// Reload fetches a single order. Screens call this on every focus.
func (s *Service) Reload(ctx context.Context, id string) (*model.Order, error) {
	return s.api.GetOrder(ctx, id)
}

// Browse fetches the filtered list. The filter code is passed through
// verbatim; the backend decides what a combined filter such as pending
// expands to.
func (s *Service) Browse(ctx context.Context, filter model.OrderStatus, page, limit int, search string) ([]model.Order, error) {
	return s.api.ListOrders(ctx, adminapi.ListQuery{
		Status: filter,
		Page:   page,
		Limit:  limit,
		Search: search,
	})
}

// Overview fetches the aggregate counters in a round trip of its own; it is
// never derived from a loaded list and may briefly disagree with one.
func (s *Service) Overview(ctx context.Context) (*model.OrderStats, error) {
	return s.api.Stats(ctx)
}
