package dto

import "github.com/dribbleops/orderadmin/internal/domain/model"

// LoginRequest describes the credential payload. The email field carries
// either the email address or the mobile number.
type LoginRequest struct {
	Identifier string `json:"email"`
	Password   string `json:"password"`
}

// LoginResponse carries the issued bearer token and the operator profile.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        *model.User `json:"user"`
}

// StatusUpdateRequest carries the target order status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// CancelRequest carries the optional cancellation reason.
type CancelRequest struct {
	Reason string `json:"reason"`
}

// CancelResponse confirms a cancellation and returns the canonical order.
type CancelResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	OrderID     string       `json:"order_id"`
	OrderNumber string       `json:"order_number"`
	Order       *model.Order `json:"order"`
}

// PushTokenRequest registers or removes a device push token.
type PushTokenRequest struct {
	Token      string            `json:"push_token"`
	DeviceInfo map[string]string `json:"device_info,omitempty"`
}

// Error is the common error body. Clients read the detail field only.
type Error struct {
	Detail string `json:"detail"`
}

// NewError builds an error body with the given detail message.
func NewError(detail string) Error {
	return Error{Detail: detail}
}
