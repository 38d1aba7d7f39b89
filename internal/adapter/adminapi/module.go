package adminapi

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/dribbleops/orderadmin/internal/config"
)

// Module exposes the admin API client to fx graphs.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Tokens TokenSource
	Logger *slog.Logger
}

func newClient(p clientParams) (*Client, error) {
	return New(p.Config.APIBaseURL, p.Tokens, p.Logger)
}
