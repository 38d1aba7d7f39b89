package model

import "time"

// User represents an operator account of the admin backend. Login works with
// either the email address or the mobile number.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email,omitempty"`
	Mobile       string    `json:"mobile,omitempty"`
	Name         string    `json:"name,omitempty"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
