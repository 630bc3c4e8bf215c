package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal() *LocalProvider {
	return NewLocalProvider("test-secret", time.Hour)
}

func TestLocalCreateAccount(t *testing.T) {
	p := newLocal()

	acct, err := p.CreateAccount(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, acct.UserID)
	assert.Equal(t, "a@b.com", acct.Email)
	assert.NotEmpty(t, acct.Token)
}

func TestLocalCreateAccountDuplicateEmail(t *testing.T) {
	p := newLocal()
	ctx := context.Background()

	_, err := p.CreateAccount(ctx, "a@b.com", "secret1")
	require.NoError(t, err)

	_, err = p.CreateAccount(ctx, "a@b.com", "secret2")
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestLocalCreateAccountWeakPassword(t *testing.T) {
	p := newLocal()

	_, err := p.CreateAccount(context.Background(), "a@b.com", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestLocalCreateAccountInvalidEmail(t *testing.T) {
	p := newLocal()

	_, err := p.CreateAccount(context.Background(), "not-an-email", "secret1")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestLocalSignIn(t *testing.T) {
	p := newLocal()
	ctx := context.Background()

	created, err := p.CreateAccount(ctx, "a@b.com", "secret1")
	require.NoError(t, err)

	acct, err := p.SignIn(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, acct.UserID)

	_, err = p.SignIn(ctx, "a@b.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = p.SignIn(ctx, "nobody@b.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
