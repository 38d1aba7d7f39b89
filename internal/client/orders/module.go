package orders

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/dribbleops/orderadmin/internal/adapter/adminapi"
)

// Module exposes the order service to fx graphs.
var Module = fx.Options(
	fx.Provide(func(client *adminapi.Client) API { return client }),
	fx.Provide(newService),
)

type serviceParams struct {
	fx.In

	API    API
	Logger *slog.Logger
}

func newService(p serviceParams) *Service {
	return NewService(p.API, p.Logger)
}
