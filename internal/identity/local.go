package identity

import (
	"context"
	"net/mail"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Firebase rejects passwords shorter than six characters; the local
// provider enforces the same floor so dev behavior matches production.
const minPasswordLength = 6

type localAccount struct {
	UserID       string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// LocalProvider is an in-memory identity provider for development and
// tests. It issues HS256 tokens compatible with the JWTAuth middleware.
type LocalProvider struct {
	mu       sync.RWMutex
	byEmail  map[string]*localAccount
	secret   []byte
	tokenTTL time.Duration
}

func NewLocalProvider(jwtSecret string, tokenTTL time.Duration) *LocalProvider {
	return &LocalProvider{
		byEmail:  make(map[string]*localAccount),
		secret:   []byte(jwtSecret),
		tokenTTL: tokenTTL,
	}
}

func (p *LocalProvider) CreateAccount(ctx context.Context, email, password string) (*Account, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.byEmail[email]; exists {
		return nil, ErrEmailInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	acct := &localAccount{
		UserID:       uuid.New().String(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
	}
	p.byEmail[email] = acct

	token, err := p.generateToken(acct)
	if err != nil {
		return nil, err
	}
	return &Account{UserID: acct.UserID, Email: acct.Email, Token: token}, nil
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*Account, error) {
	p.mu.RLock()
	acct, exists := p.byEmail[email]
	p.mu.RUnlock()

	if !exists {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := p.generateToken(acct)
	if err != nil {
		return nil, err
	}
	return &Account{UserID: acct.UserID, Email: acct.Email, Token: token}, nil
}

func (p *LocalProvider) generateToken(acct *localAccount) (string, error) {
	claims := jwt.MapClaims{
		"user_id": acct.UserID,
		"email":   acct.Email,
		"exp":     time.Now().Add(p.tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}
