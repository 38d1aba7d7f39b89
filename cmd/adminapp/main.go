package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/dribbleops/orderadmin/internal/adapter/adminapi"
	"github.com/dribbleops/orderadmin/internal/client/orders"
	"github.com/dribbleops/orderadmin/internal/client/session"
	"github.com/dribbleops/orderadmin/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		cfg     *config.Config
		console *Console
	)
	app := fx.New(
		fx.NopLogger,
		config.Module,
		fx.Provide(newConsoleLogger),
		session.Module,
		adminapi.Module,
		orders.Module,
		fx.Provide(newConsole),
		fx.Populate(&cfg, &console),
	)
	if err := app.Err(); err != nil {
		slog.Error("failed to assemble console", slog.String("error", err.Error()))
		os.Exit(1)
	}

	run(ctx, console, cfg.Args)
}

// newConsoleLogger writes sparse text diagnostics to stderr so that command
// output on stdout stays machine-readable.
func newConsoleLogger() *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	return slog.New(handler)
}

type consoleParams struct {
	fx.In

	Store  *session.Store
	Client *adminapi.Client
	Orders *orders.Service
}

func newConsole(p consoleParams) *Console {
	return &Console{
		store:  p.Store,
		client: p.Client,
		orders: p.Orders,
		out:    os.Stdout,
		in:     os.Stdin,
	}
}
