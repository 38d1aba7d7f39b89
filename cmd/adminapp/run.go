package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dribbleops/orderadmin/internal/adapter/adminapi"
	"github.com/dribbleops/orderadmin/internal/client/orders"
)

func run(ctx context.Context, console *Console, args []string) {
	err := console.Run(ctx, args)
	if err == nil {
		return
	}
	if errors.Is(err, errUsage) {
		os.Exit(2)
	}

	fmt.Fprintln(os.Stderr, renderError(err))
	os.Exit(1)
}

// renderError maps transport and domain errors to operator-facing messages.
func renderError(err error) string {
	switch {
	case errors.Is(err, adminapi.ErrUnauthorized):
		return "Session expired or missing. Run `adminapp login <email-or-mobile>` first."
	case errors.Is(err, orders.ErrNoNextStatus):
		return "This order has no further status to advance to."
	}

	var apiErr *adminapi.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return err.Error()
}
