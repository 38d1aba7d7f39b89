package postgres

import (
	"context"
	"errors"
	"log/slog"

	"go.uber.org/fx"

	"github.com/dribbleops/orderadmin/internal/config"
	"github.com/dribbleops/orderadmin/internal/domain/repository"
)

// ErrEmptyDSN reports a missing database address.
var ErrEmptyDSN = errors.New("database uri is required")

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.PushTokenRepository { return s.PushTokens() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	if p.Config.DatabaseURI == "" {
		return nil, ErrEmptyDSN
	}
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
