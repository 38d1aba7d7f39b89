package repository

import (
	"context"

	"github.com/dribbleops/orderadmin/internal/domain/model"
)

// UserRepository describes persistence operations for operator accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	// GetByIdentifier matches either the email address or the mobile number.
	GetByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}
