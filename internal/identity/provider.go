package identity

import (
	"context"
	"errors"
)

var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrWeakPassword       = errors.New("password is too weak")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Account is the identity provider's view of a user. UserID is the stable
// subject identifier the profile store is keyed by.
type Account struct {
	UserID string
	Email  string
	Token  string
}

// Provider creates and authenticates user accounts. Implementations map
// their native failure modes onto the sentinel errors above so callers can
// surface specific messages for the known kinds.
type Provider interface {
	CreateAccount(ctx context.Context, email, password string) (*Account, error)
	SignIn(ctx context.Context, email, password string) (*Account, error)
}
