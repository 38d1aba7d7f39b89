package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dribbleops/orderadmin/internal/domain/model"
)

// AdminFacade exposes the subset of application functionality required by the worker.
type AdminFacade interface {
	OrdersForNotification(ctx context.Context, limit int) ([]model.Order, error)
	DeviceTokens(ctx context.Context) ([]model.PushToken, error)
	Notify(ctx context.Context, order *model.Order, tokens []model.PushToken) error
}

// Notifier polls for freshly placed orders and fans out push alerts to the
// registered operator devices.
type Notifier struct {
	facade       AdminFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotifier constructs the notification worker pool.
func NewNotifier(facade AdminFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *Notifier {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Notifier{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (n *Notifier) Start(ctx context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	n.cancel = cancel

	for i := 0; i < n.workers; i++ {
		n.wg.Add(1)
		go n.worker(runCtx)
	}

	n.wg.Add(1)
	go n.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (n *Notifier) Stop() {
	n.mu.Lock()
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	n.mu.Unlock()

	n.wg.Wait()
}

func (n *Notifier) dispatch(ctx context.Context) {
	defer n.wg.Done()
	defer close(n.jobs)
	ticker := time.NewTicker(n.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n.fetchAndDispatch(ctx)
		}
	}
}

func (n *Notifier) fetchAndDispatch(ctx context.Context) {
	orders, err := n.facade.OrdersForNotification(ctx, n.batchSize)
	if err != nil {
		n.logger.Error("fetch orders for notification failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case n.jobs <- order:
		}
	}
}

func (n *Notifier) worker(ctx context.Context) {
	defer n.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-n.jobs:
			if !ok {
				return
			}
			n.handleOrder(ctx, order)
		}
	}
}

func (n *Notifier) handleOrder(ctx context.Context, order model.Order) {
	tokens, err := n.facade.DeviceTokens(ctx)
	if err != nil {
		n.logger.Error("load device tokens failed",
			slog.String("order", order.OrderNumber),
			slog.String("error", err.Error()),
		)
		return
	}
	if len(tokens) == 0 {
		n.logger.Debug("no devices registered, skipping alert", slog.String("order", order.OrderNumber))
		return
	}

	if err := n.facade.Notify(ctx, &order, tokens); err != nil {
		n.logger.Error("push alert failed",
			slog.String("order", order.OrderNumber),
			slog.String("error", err.Error()),
		)
		return
	}

	n.logger.Info("order alert delivered",
		slog.String("order", order.OrderNumber),
		slog.Int("devices", len(tokens)),
		slog.String("amount", fmt.Sprintf("%.2f", order.TotalAmount)),
	)
}
