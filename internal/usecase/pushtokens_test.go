package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/dribbleops/orderadmin/internal/domain/errors"
	"github.com/dribbleops/orderadmin/internal/test"
)

func TestRegisterStoresToken(t *testing.T) {
	tokens := test.NewPushTokenRepositoryStub()
	uc := NewPushTokenUseCase(tokens)

	err := uc.Register(context.Background(), "user-1", "device-abc", map[string]string{"platform": "android"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, ok := tokens.Tokens["device-abc"]
	if !ok {
		t.Fatalf("token not stored")
	}
	if stored.UserID != "user-1" || stored.ID == "" {
		t.Fatalf("unexpected record %+v", stored)
	}
	if stored.DeviceInfo["platform"] != "android" {
		t.Fatalf("device info lost: %+v", stored.DeviceInfo)
	}
}

func TestRegisterSameTokenRebindsOwner(t *testing.T) {
	tokens := test.NewPushTokenRepositoryStub()
	uc := NewPushTokenUseCase(tokens)

	if err := uc.Register(context.Background(), "user-1", "device-abc", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Register(context.Background(), "user-2", "device-abc", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tokens.Tokens) != 1 {
		t.Fatalf("expected one record, got %d", len(tokens.Tokens))
	}
	if tokens.Tokens["device-abc"].UserID != "user-2" {
		t.Fatalf("owner not rebound: %+v", tokens.Tokens["device-abc"])
	}
}

func TestRegisterRejectsEmptyToken(t *testing.T) {
	uc := NewPushTokenUseCase(test.NewPushTokenRepositoryStub())

	if err := uc.Register(context.Background(), "user-1", "", nil); !errors.Is(err, domainErrors.ErrMissingPushToken) {
		t.Fatalf("expected missing token error, got %v", err)
	}
}

func TestUnregisterRemovesToken(t *testing.T) {
	tokens := test.NewPushTokenRepositoryStub()
	uc := NewPushTokenUseCase(tokens)

	if err := uc.Register(context.Background(), "user-1", "device-abc", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Unregister(context.Background(), "device-abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens.Tokens) != 0 {
		t.Fatalf("token not removed")
	}
}

func TestUnregisterEmptyTokenIsNoop(t *testing.T) {
	tokens := test.NewPushTokenRepositoryStub()
	tokens.Err = errors.New("must not be called")
	uc := NewPushTokenUseCase(tokens)

	if err := uc.Unregister(context.Background(), ""); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestDevicesListsRegistrations(t *testing.T) {
	tokens := test.NewPushTokenRepositoryStub()
	uc := NewPushTokenUseCase(tokens)

	for _, tok := range []string{"a", "b", "c"} {
		if err := uc.Register(context.Background(), "user-1", tok, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	devices, err := uc.Devices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(devices) != 3 {
		t.Fatalf("expected 3 devices, got %d", len(devices))
	}
}
