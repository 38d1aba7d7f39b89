package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dribbleops/orderadmin/internal/adapter/adminapi"
	"github.com/dribbleops/orderadmin/internal/client/orders"
	"github.com/dribbleops/orderadmin/internal/client/session"
	"github.com/dribbleops/orderadmin/internal/domain/model"
	"github.com/dribbleops/orderadmin/internal/domain/status"
)

const usage = `orderadmin console

Usage:
  adminapp [flags] <command> [arguments]

Commands:
  login <email-or-mobile>       authenticate and store the session
  logout                        discard the stored session
  me                            show the authenticated operator
  orders                        list orders (-status, -page, -limit, -search)
  order <id>                    show one order
  advance <id>                  move an order to its next status
  cancel <id>                   cancel an order (-reason)
  stats                         show the order counters
  register-push <token>         register a push token (-platform, -device)
  unregister-push <token>       remove a push token
`

var errUsage = errors.New("usage")

// Console drives the operator commands against the admin backend.
type Console struct {
	store  *session.Store
	client *adminapi.Client
	orders *orders.Service
	out    io.Writer
	in     io.Reader
}

// Run dispatches a single subcommand.
func (c *Console) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(c.out, usage)
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return c.login(ctx, rest)
	case "logout":
		c.store.Clear()
		fmt.Fprintln(c.out, "Logged out.")
		return nil
	case "me":
		return c.me(ctx)
	case "orders":
		return c.list(ctx, rest)
	case "order":
		return c.show(ctx, rest)
	case "advance":
		return c.advance(ctx, rest)
	case "cancel":
		return c.cancel(ctx, rest)
	case "stats":
		return c.stats(ctx)
	case "register-push":
		return c.registerPush(ctx, rest)
	case "unregister-push":
		return c.unregisterPush(ctx, rest)
	case "help":
		fmt.Fprint(c.out, usage)
		return nil
	default:
		fmt.Fprint(c.out, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (c *Console) login(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("login: expected one identifier argument")
	}
	identifier := args[0]

	fmt.Fprint(c.out, "Password: ")
	password, err := readLine(c.in)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	result, err := c.client.Login(ctx, identifier, password)
	if err != nil {
		return err
	}
	if err := c.store.Save(&session.Session{
		AccessToken: result.AccessToken,
		User:        &result.User,
	}); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	fmt.Fprintf(c.out, "Logged in as %s (%s)\n", displayName(&result.User), result.User.Role)
	return nil
}

func (c *Console) me(ctx context.Context) error {
	user, err := c.client.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Name:   %s\n", user.Name)
	fmt.Fprintf(c.out, "Email:  %s\n", user.Email)
	if user.Mobile != "" {
		fmt.Fprintf(c.out, "Mobile: %s\n", user.Mobile)
	}
	fmt.Fprintf(c.out, "Role:   %s\n", user.Role)
	return nil
}

func (c *Console) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	statusFilter := fs.String("status", "", "filter by status code")
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 50, "page size")
	search := fs.String("search", "", "match order number, name, email or phone")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("orders: %w", err)
	}

	list, err := c.orders.Browse(ctx, model.OrderStatus(*statusFilter), *page, *limit, *search)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(c.out, "No orders found.")
		return nil
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tCUSTOMER\tSTATUS\tTOTAL\tCREATED")
	for i := range list {
		o := &list[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\n",
			o.OrderNumber,
			o.CustomerName,
			status.Resolve(o.Status).Label,
			o.TotalAmount,
			o.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return tw.Flush()
}

func (c *Console) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("order: expected one order id argument")
	}
	order, err := c.orders.Reload(ctx, args[0])
	if err != nil {
		return err
	}
	c.renderOrder(order)
	return nil
}

func (c *Console) advance(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("advance: expected one order id argument")
	}
	order, err := c.orders.Advance(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Order %s is now %s.\n", order.OrderNumber, status.Resolve(order.Status).Label)
	return nil
}

func (c *Console) cancel(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cancel", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	reason := fs.String("reason", "", "cancellation reason")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("cancel: %w", err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("cancel: expected one order id argument")
	}

	order, err := c.orders.Cancel(ctx, fs.Arg(0), *reason)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Order %s cancelled.\n", order.OrderNumber)
	return nil
}

func (c *Console) stats(ctx context.Context) error {
	stats, err := c.orders.Overview(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Total\t%d\n", stats.TotalOrders)
	fmt.Fprintf(tw, "Pending\t%d\n", stats.PendingOrders)
	fmt.Fprintf(tw, "Paid\t%d\n", stats.PaidOrders)
	fmt.Fprintf(tw, "Shipped\t%d\n", stats.ShippedOrders)
	fmt.Fprintf(tw, "Delivered\t%d\n", stats.DeliveredOrders)
	fmt.Fprintf(tw, "Cancelled\t%d\n", stats.CancelledOrders)
	fmt.Fprintf(tw, "Today\t%d\n", stats.TodayOrders)
	return tw.Flush()
}

func (c *Console) registerPush(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register-push", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	platform := fs.String("platform", "", "device platform")
	device := fs.String("device", "", "device model")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("register-push: %w", err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("register-push: expected one token argument")
	}

	deviceInfo := map[string]string{}
	if *platform != "" {
		deviceInfo["platform"] = *platform
	}
	if *device != "" {
		deviceInfo["device"] = *device
	}
	if err := c.client.RegisterPushToken(ctx, fs.Arg(0), deviceInfo); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Push token registered.")
	return nil
}

func (c *Console) unregisterPush(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("unregister-push: expected one token argument")
	}
	if err := c.client.UnregisterPushToken(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Push token removed.")
	return nil
}

func (c *Console) renderOrder(o *model.Order) {
	p := status.Resolve(o.Status)
	fmt.Fprintf(c.out, "Order %s  [%s]\n", o.OrderNumber, p.Label)
	fmt.Fprintf(c.out, "Customer: %s <%s> %s\n", o.CustomerName, o.CustomerEmail, o.CustomerPhone)
	fmt.Fprintf(c.out, "Ship to:  %s, %s, %s %s\n",
		o.ShippingAddress.Address, o.ShippingAddress.City, o.ShippingAddress.State, o.ShippingAddress.Pincode)

	if len(o.Items) > 0 {
		fmt.Fprintln(c.out, "Items:")
		for _, item := range o.Items {
			fmt.Fprintf(c.out, "  %dx %s (%s/%s) %.2f\n", item.Quantity, item.Name, item.Color, item.Size, item.Price)
		}
	}
	fmt.Fprintf(c.out, "Total:    %.2f (subtotal %.2f, tax %.2f, shipping %.2f)\n",
		o.TotalAmount, o.Subtotal, o.Tax, o.ShippingCost)

	if o.PaymentGateway != "" || o.PaymentMethod != "" {
		fmt.Fprintf(c.out, "Payment:  %s %s\n", o.PaymentGateway, o.PaymentMethod)
	}
	if o.Shipment != nil && o.Shipment.AWBNumber != "" {
		fmt.Fprintf(c.out, "Shipment: %s via %s (%s)\n", o.Shipment.AWBNumber, o.Shipment.CarrierName, o.Shipment.Status)
	}
	if o.Status == model.OrderStatusCancelled {
		fmt.Fprintf(c.out, "Cancelled: %s by %s\n", o.CancellationReason, o.CancelledBy)
	}

	var actions []string
	if next, ok := status.Next(o.Status); ok {
		actions = append(actions, "advance to "+status.Resolve(next).Label)
	}
	if status.CanCancel(o.Status) {
		actions = append(actions, "cancel")
	}
	if len(actions) > 0 {
		fmt.Fprintf(c.out, "Actions:  %s\n", strings.Join(actions, ", "))
	}
}

func readLine(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func displayName(u *model.User) string {
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return u.ID
}
