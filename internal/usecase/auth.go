package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/dribbleops/orderadmin/internal/domain/errors"
	"github.com/dribbleops/orderadmin/internal/domain/model"
	"github.com/dribbleops/orderadmin/internal/domain/repository"
	pkgAuth "github.com/dribbleops/orderadmin/internal/pkg/auth"
)

// AuthUseCase handles operator sign-in and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Authenticate validates credentials and returns the operator plus a bearer
// token. The identifier matches either email or mobile number.
func (u *AuthUseCase) Authenticate(ctx context.Context, identifier, password string) (*model.User, string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !usr.IsActive {
		return nil, "", domainErrors.ErrAccountDisabled
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken validates a bearer token and returns the operator identifier.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	return u.tokens.ParseToken(token)
}

// CurrentUser loads the operator behind a parsed token.
func (u *AuthUseCase) CurrentUser(ctx context.Context, id string) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// EnsureAccount creates an operator account if the identifier is still free.
// Used for the initial admin bootstrap; existing accounts are left alone.
func (u *AuthUseCase) EnsureAccount(ctx context.Context, email, name, password, role string) (*model.User, error) {
	existing, err := u.users.GetByIdentifier(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	})
}
