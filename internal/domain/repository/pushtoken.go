package repository

import (
	"context"

	"github.com/dribbleops/orderadmin/internal/domain/model"
)

// PushTokenRepository describes persistence of device push tokens.
type PushTokenRepository interface {
	// Upsert registers or refreshes a token keyed by its value.
	Upsert(ctx context.Context, token *model.PushToken) error
	DeleteByToken(ctx context.Context, token string) error
	ListAll(ctx context.Context) ([]model.PushToken, error)
}
