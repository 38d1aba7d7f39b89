package di

import (
	"go.uber.org/fx"

	"github.com/dribbleops/orderadmin/internal/adapter/push"
	"github.com/dribbleops/orderadmin/internal/app"
	"github.com/dribbleops/orderadmin/internal/config"
	"github.com/dribbleops/orderadmin/internal/logger"
	"github.com/dribbleops/orderadmin/internal/pkg/auth"
	"github.com/dribbleops/orderadmin/internal/server/http/handlers"
	"github.com/dribbleops/orderadmin/internal/server/http/router"
	"github.com/dribbleops/orderadmin/internal/storage/postgres"
	"github.com/dribbleops/orderadmin/internal/usecase"
)

// Module assembles the backend dependency graph. Extra options let tests
// replace infrastructure pieces with stubs.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		push.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.AdminFacade) handlers.AdminFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
