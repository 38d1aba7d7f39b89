package model

import "time"

// PushToken binds a device push token to the operator account that owns it.
// Tokens are upserted by value, so re-registering from the same device just
// refreshes ownership and metadata.
type PushToken struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	Token      string            `json:"push_token"`
	DeviceInfo map[string]string `json:"device_info,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
