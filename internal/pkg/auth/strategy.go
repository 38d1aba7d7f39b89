package auth

import "time"

// Strategy issues and verifies bearer tokens for operator accounts.
type Strategy interface {
	IssueToken(userID string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
