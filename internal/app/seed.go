package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/dribbleops/orderadmin/internal/config"
	"github.com/dribbleops/orderadmin/internal/domain/model"
	"github.com/dribbleops/orderadmin/internal/domain/repository"
	"github.com/dribbleops/orderadmin/internal/usecase"
)

const (
	defaultAdminEmail    = "admin@dribble.com"
	defaultAdminName     = "Dribble Admin"
	defaultAdminPassword = "Admin123!"
	defaultAdminRole     = "admin"
)

type seedParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Auth   *usecase.AuthUseCase
	Orders repository.OrderRepository
}

// seedData bootstraps the default operator account and, when enabled, a set
// of demonstration orders on an empty database.
func seedData(p seedParams) error {
	if _, err := p.Auth.EnsureAccount(p.Ctx, defaultAdminEmail, defaultAdminName, defaultAdminPassword, defaultAdminRole); err != nil {
		return err
	}

	if !p.Config.SeedSampleData {
		return nil
	}

	count, err := p.Orders.CountAll(p.Ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	orders := sampleOrders()
	for i := range orders {
		if _, err := p.Orders.Create(p.Ctx, &orders[i]); err != nil {
			return err
		}
	}
	p.Logger.Info("seeded sample orders", slog.Int("count", len(orders)))
	return nil
}

func sampleOrders() []model.Order {
	return []model.Order{
		{
			ID:            uuid.NewString(),
			OrderNumber:   "D-1-15012026-1",
			CustomerEmail: "customer1@example.com",
			CustomerName:  "Rahul Sharma",
			CustomerPhone: "+91 98765 43210",
			ShippingAddress: model.ShippingAddress{
				PersonName:   "Rahul Sharma",
				BusinessName: "Sharma Sports",
				GSTNumber:    "29ABCDE1234F1Z5",
				Address:      "123 MG Road, Koramangala",
				State:        "Karnataka",
				City:         "Bangalore",
				Pincode:      "560034",
				Mobile1:      "+91 98765 43210",
				Country:      "India",
			},
			Items: []model.OrderItem{
				{InventoryID: "inv1", SKU: "DRB-TS-001", Name: "Sports T-Shirt", Color: "Blue", Size: "L", Price: 450, Quantity: 20, GSTRate: 5, ShippingWeight: 0.3},
				{InventoryID: "inv2", SKU: "DRB-TP-002", Name: "Track Pants", Color: "Black", Size: "M", Price: 650, Quantity: 15, GSTRate: 5, ShippingWeight: 0.4},
			},
			Subtotal:    18750,
			Tax:         937.5,
			TotalAmount: 19687.5,
			Status:      model.OrderStatusPending,
		},
		{
			ID:            uuid.NewString(),
			OrderNumber:   "D-1-15012026-2",
			CustomerEmail: "customer2@example.com",
			CustomerName:  "Priya Patel",
			CustomerPhone: "+91 87654 32109",
			ShippingAddress: model.ShippingAddress{
				PersonName:   "Priya Patel",
				BusinessName: "Patel Athletics",
				Address:      "456 Gandhi Nagar",
				State:        "Gujarat",
				City:         "Ahmedabad",
				Pincode:      "380001",
				Mobile1:      "+91 87654 32109",
				Country:      "India",
			},
			Items: []model.OrderItem{
				{InventoryID: "inv3", SKU: "DRB-HD-003", Name: "Hoodie", Color: "Grey", Size: "XL", Price: 850, Quantity: 30, GSTRate: 5, ShippingWeight: 0.6},
			},
			Subtotal:       25500,
			Tax:            1275,
			ShippingCost:   150,
			TotalAmount:    26925,
			Status:         model.OrderStatusPaid,
			PaymentID:      "pay_mock123456",
			PaymentGateway: "Razorpay",
			PaymentMethod:  "UPI",
		},
		{
			ID:            uuid.NewString(),
			OrderNumber:   "D-1-14012026-1",
			CustomerEmail: "customer3@example.com",
			CustomerName:  "Amit Kumar",
			CustomerPhone: "+91 76543 21098",
			ShippingAddress: model.ShippingAddress{
				PersonName:   "Amit Kumar",
				BusinessName: "Kumar Sports Store",
				Address:      "789 Nehru Place",
				State:        "Delhi",
				City:         "New Delhi",
				Pincode:      "110019",
				Mobile1:      "+91 76543 21098",
				Country:      "India",
			},
			Items: []model.OrderItem{
				{InventoryID: "inv4", SKU: "DRB-TS-004", Name: "Jersey", Color: "Red", Size: "M", Price: 550, Quantity: 50, GSTRate: 5, ShippingWeight: 0.35},
				{InventoryID: "inv5", SKU: "DRB-SH-005", Name: "Shorts", Color: "White", Size: "L", Price: 350, Quantity: 50, GSTRate: 5, ShippingWeight: 0.25},
			},
			Subtotal:       45000,
			Tax:            2250,
			ShippingCost:   200,
			TotalAmount:    47450,
			Status:         model.OrderStatusConfirmed,
			PaymentID:      "pay_mock789012",
			PaymentGateway: "Razorpay",
			PaymentMethod:  "NETBANKING",
			SelectedCourier: &model.SelectedCourier{
				ID:            "1",
				Name:          "Delhivery",
				FullName:      "Delhivery Surface",
				Mode:          "surface",
				Rate:          95,
				EstimatedDays: "3-5",
			},
		},
	}
}
