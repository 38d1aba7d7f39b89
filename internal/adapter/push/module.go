package push

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/dribbleops/orderadmin/internal/config"
)

// Module exposes push provider implementation to fx graph.
var Module = fx.Provide(newProvider)

type providerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newProvider(p providerParams) (Provider, error) {
	if p.Config.PushGatewayAddress == "" {
		return NewNopProvider(p.Logger), nil
	}
	return NewHTTPProvider(p.Config.PushGatewayAddress, p.Logger)
}
