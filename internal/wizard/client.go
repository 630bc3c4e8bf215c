package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coachconnect/backend/internal/models"
)

// OnboardingAPI submits the completed questionnaire to the backend.
type OnboardingAPI interface {
	SubmitOnboarding(ctx context.Context, req *models.OnboardingRequest) (*models.OnboardingResult, error)
}

// Client is the HTTP OnboardingAPI against the profile REST surface.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type onboardingResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Error   string                  `json:"error"`
	Data    models.OnboardingResult `json:"data"`
}

func (c *Client) SubmitOnboarding(ctx context.Context, req *models.OnboardingRequest) (*models.OnboardingResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/profile/onboarding", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out onboardingResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("onboarding submit: unexpected status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusCreated || !out.Success {
		if out.Error != "" {
			return nil, fmt.Errorf("onboarding submit: %s", out.Error)
		}
		return nil, fmt.Errorf("onboarding submit: unexpected status %d", resp.StatusCode)
	}
	return &out.Data, nil
}
