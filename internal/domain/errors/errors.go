package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is deactivated")
	ErrAlreadyCancelled   = errors.New("order is already cancelled")
	ErrDelivered          = errors.New("cannot cancel a delivered order")
	ErrShipmentPickedUp   = errors.New("cannot cancel - shipment has already been picked up by the courier")
	ErrMissingPushToken   = errors.New("push token is required")
)
