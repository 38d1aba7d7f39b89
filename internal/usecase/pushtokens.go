package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/dribbleops/orderadmin/internal/domain/errors"
	"github.com/dribbleops/orderadmin/internal/domain/model"
	"github.com/dribbleops/orderadmin/internal/domain/repository"
)

// PushTokenUseCase manages device push token registration.
type PushTokenUseCase struct {
	tokens repository.PushTokenRepository
}

// NewPushTokenUseCase constructs PushTokenUseCase.
func NewPushTokenUseCase(tokens repository.PushTokenRepository) *PushTokenUseCase {
	return &PushTokenUseCase{tokens: tokens}
}

// Register upserts a device token for the operator. Re-registering the same
// token just refreshes its owner and metadata.
func (u *PushTokenUseCase) Register(ctx context.Context, userID, token string, deviceInfo map[string]string) error {
	if token == "" {
		return domainErrors.ErrMissingPushToken
	}

	now := time.Now().UTC()
	return u.tokens.Upsert(ctx, &model.PushToken{
		ID:         uuid.NewString(),
		UserID:     userID,
		Token:      token,
		DeviceInfo: deviceInfo,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

// Unregister drops a device token. Removing an unknown token is a no-op.
func (u *PushTokenUseCase) Unregister(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return u.tokens.DeleteByToken(ctx, token)
}

// Devices lists every registered device token.
func (u *PushTokenUseCase) Devices(ctx context.Context) ([]model.PushToken, error) {
	return u.tokens.ListAll(ctx)
}
