package test

import (
	"context"
	"sort"
	"strings"

	domainErrors "github.com/dribbleops/orderadmin/internal/domain/errors"
	"github.com/dribbleops/orderadmin/internal/domain/model"
	"github.com/dribbleops/orderadmin/internal/domain/repository"
)

// UserRepositoryStub stores operators in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Users: make(map[string]*model.User)}
}

// Create registers a user keyed by ID.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	s.Users[user.ID] = user
	return user, nil
}

// GetByIdentifier matches either email or mobile.
func (s *UserRepositoryStub) GetByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.Users {
		if u.Email == identifier || (u.Mobile != "" && u.Mobile == identifier) {
			return u, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches a user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if u, ok := s.Users[id]; ok {
		return u, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub keeps orders in-memory and lets tests override any
// operation.
type OrderRepositoryStub struct {
	Orders map[string]*model.Order

	ListFn             func(context.Context, repository.ListFilter) ([]model.Order, error)
	StatsFn            func(context.Context) (*model.OrderStats, error)
	UpdateStatusFn     func(context.Context, string, model.OrderStatus) error
	CancelFn           func(context.Context, string, repository.CancelRecord) error
	SelectUnnotifiedFn func(context.Context, int) ([]model.Order, error)

	UpdateCalls []model.OrderStatus
	CancelCalls []repository.CancelRecord
}

// NewOrderRepositoryStub constructs the stub with initialized storage.
func NewOrderRepositoryStub(orders ...*model.Order) *OrderRepositoryStub {
	stub := &OrderRepositoryStub{Orders: make(map[string]*model.Order)}
	for _, o := range orders {
		stub.Orders[o.ID] = o
	}
	return stub
}

// Create stores the order.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	s.Orders[order.ID] = order
	return order, nil
}

// GetByID returns a copy of the stored order.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if o, ok := s.Orders[id]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List filters stored orders the way the real repository would.
func (s *OrderRepositoryStub) List(ctx context.Context, filter repository.ListFilter) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}

	var result []model.Order
	for _, o := range s.Orders {
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, o.Status) {
			continue
		}
		if filter.Search != "" && !matchesSearch(o, filter.Search) {
			continue
		}
		result = append(result, *o)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if filter.Offset >= len(result) {
		return nil, nil
	}
	result = result[filter.Offset:]
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

// Stats returns configured stats or zeroes.
func (s *OrderRepositoryStub) Stats(ctx context.Context) (*model.OrderStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.OrderStats{TotalOrders: len(s.Orders)}, nil
}

// UpdateStatus tracks invocations and mutates the stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	s.UpdateCalls = append(s.UpdateCalls, status)
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	o, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	o.Status = status
	return nil
}

// Cancel tracks invocations and mutates the stored order.
func (s *OrderRepositoryStub) Cancel(ctx context.Context, id string, record repository.CancelRecord) error {
	s.CancelCalls = append(s.CancelCalls, record)
	if s.CancelFn != nil {
		return s.CancelFn(ctx, id, record)
	}
	o, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	o.Status = model.OrderStatusCancelled
	o.CancellationReason = record.Reason
	o.CancelledBy = record.CancelledBy
	if o.Shipment != nil {
		o.Shipment.Status = "cancelled"
	}
	return nil
}

// SelectUnnotified returns configured batches.
func (s *OrderRepositoryStub) SelectUnnotified(ctx context.Context, limit int) ([]model.Order, error) {
	if s.SelectUnnotifiedFn != nil {
		return s.SelectUnnotifiedFn(ctx, limit)
	}
	return nil, nil
}

// CountAll reports the number of stored orders.
func (s *OrderRepositoryStub) CountAll(ctx context.Context) (int, error) {
	return len(s.Orders), nil
}

// PushTokenRepositoryStub stores device tokens in-memory.
type PushTokenRepositoryStub struct {
	Tokens map[string]*model.PushToken
	Err    error
}

// NewPushTokenRepositoryStub constructs the stub.
func NewPushTokenRepositoryStub() *PushTokenRepositoryStub {
	return &PushTokenRepositoryStub{Tokens: make(map[string]*model.PushToken)}
}

// Upsert stores the token keyed by its value.
func (s *PushTokenRepositoryStub) Upsert(ctx context.Context, token *model.PushToken) error {
	if s.Err != nil {
		return s.Err
	}
	if existing, ok := s.Tokens[token.Token]; ok {
		existing.UserID = token.UserID
		existing.DeviceInfo = token.DeviceInfo
		existing.UpdatedAt = token.UpdatedAt
		return nil
	}
	s.Tokens[token.Token] = token
	return nil
}

// DeleteByToken removes the token, no error when absent.
func (s *PushTokenRepositoryStub) DeleteByToken(ctx context.Context, token string) error {
	if s.Err != nil {
		return s.Err
	}
	delete(s.Tokens, token)
	return nil
}

// ListAll returns all stored tokens.
func (s *PushTokenRepositoryStub) ListAll(ctx context.Context) ([]model.PushToken, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.PushToken
	for _, t := range s.Tokens {
		result = append(result, *t)
	}
	return result, nil
}

func containsStatus(statuses []model.OrderStatus, status model.OrderStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

func matchesSearch(o *model.Order, search string) bool {
	needle := strings.ToLower(search)
	for _, field := range []string{o.OrderNumber, o.CustomerName, o.CustomerPhone, o.CustomerEmail} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
