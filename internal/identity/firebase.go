package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// FirebaseProvider signs users up and in through the Firebase Auth REST
// API using the project's web API key. This is the client-side half of the
// auth flow (the Admin SDK cannot create password sessions on a user's
// behalf); the server verifies the resulting ID tokens separately.
type FirebaseProvider struct {
	APIKey     string
	HTTPClient *http.Client
	Endpoint   string
}

func NewFirebaseProvider(apiKey string) *FirebaseProvider {
	return &FirebaseProvider{
		APIKey:   strings.TrimSpace(apiKey),
		Endpoint: "https://identitytoolkit.googleapis.com/v1",
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type firebaseAuthRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type firebaseAuthResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

type firebaseErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (p *FirebaseProvider) CreateAccount(ctx context.Context, email, password string) (*Account, error) {
	return p.call(ctx, "accounts:signUp", email, password)
}

func (p *FirebaseProvider) SignIn(ctx context.Context, email, password string) (*Account, error) {
	return p.call(ctx, "accounts:signInWithPassword", email, password)
}

func (p *FirebaseProvider) call(ctx context.Context, method, email, password string) (*Account, error) {
	body, err := json.Marshal(firebaseAuthRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s?key=%s", p.Endpoint, method, p.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var fbErr firebaseErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&fbErr); err != nil {
			return nil, fmt.Errorf("firebase auth: unexpected status %d", resp.StatusCode)
		}
		return nil, mapFirebaseError(fbErr.Error.Message)
	}

	var out firebaseAuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &Account{
		UserID: out.LocalID,
		Email:  out.Email,
		Token:  out.IDToken,
	}, nil
}

// mapFirebaseError translates identity-toolkit error codes onto the
// provider sentinels. Codes sometimes carry a detail suffix
// ("WEAK_PASSWORD : Password should be at least 6 characters").
func mapFirebaseError(code string) error {
	switch {
	case strings.HasPrefix(code, "EMAIL_EXISTS"):
		return ErrEmailInUse
	case strings.HasPrefix(code, "WEAK_PASSWORD"):
		return ErrWeakPassword
	case strings.HasPrefix(code, "INVALID_EMAIL"), strings.HasPrefix(code, "MISSING_EMAIL"):
		return ErrInvalidEmail
	case strings.HasPrefix(code, "EMAIL_NOT_FOUND"),
		strings.HasPrefix(code, "INVALID_PASSWORD"),
		strings.HasPrefix(code, "INVALID_LOGIN_CREDENTIALS"):
		return ErrInvalidCredentials
	default:
		return fmt.Errorf("firebase auth: %s", code)
	}
}
