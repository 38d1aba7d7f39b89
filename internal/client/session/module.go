package session

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/dribbleops/orderadmin/internal/adapter/adminapi"
	"github.com/dribbleops/orderadmin/internal/config"
)

// Module wires the file-backed session store and exposes it as the
// transport's token source.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Provide(func(s *Store) adminapi.TokenSource { return s }),
)

type storeParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) *Store {
	return NewStore(p.Config.SessionFile, p.Logger)
}
