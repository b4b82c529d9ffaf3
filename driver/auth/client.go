package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ElliottBolan/stock-news-sentiment/config"
)

// AuthClient defines the interface for identity provider operations
type AuthClient interface {
	ValidateSession(ctx context.Context, sessionToken string) (*SessionValidationResponse, error)
	HealthCheck(ctx context.Context) error
}

// Client represents an identity provider client wrapper
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Ensure Client implements AuthClient interface
var _ AuthClient = (*Client)(nil)

// SessionValidationRequest represents the request to validate a session
type SessionValidationRequest struct {
	SessionToken string `json:"session_token"`
}

// SessionValidationResponse represents the response from session validation
type SessionValidationResponse struct {
	Valid     bool      `json:"valid"`
	UserID    string    `json:"user_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	LoginAt   time.Time `json:"login_at,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// NewClient creates a new identity provider client
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	timeout := cfg.Auth.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: cfg.Auth.ServiceURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// ValidateSession validates a session token with the identity provider
func (c *Client) ValidateSession(ctx context.Context, sessionToken string) (*SessionValidationResponse, error) {
	req := SessionValidationRequest{
		SessionToken: sessionToken,
	}

	response, err := c.makeRequest(ctx, "POST", "/api/v1/session/validate", req)
	if err != nil {
		c.logger.Error("session validation failed",
			"error", err,
			"session_token_prefix", sessionToken[:min(len(sessionToken), 8)])
		return nil, fmt.Errorf("failed to validate session: %w", err)
	}

	var result SessionValidationResponse
	if err := json.Unmarshal(response, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session validation response: %w", err)
	}

	return &result, nil
}

// HealthCheck checks if the identity provider is healthy
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	response, err := c.makeRequest(ctx, "GET", "/health", nil)
	if err != nil {
		return fmt.Errorf("auth service health check failed: %w", err)
	}

	var healthResponse map[string]interface{}
	if err := json.Unmarshal(response, &healthResponse); err != nil {
		return fmt.Errorf("failed to parse health response: %w", err)
	}

	status, ok := healthResponse["status"].(string)
	if !ok || status != "ok" {
		return fmt.Errorf("auth service is unhealthy: status=%v", healthResponse["status"])
	}

	return nil
}

// makeRequest is a helper method to make HTTP requests to the identity provider
func (c *Client) makeRequest(ctx context.Context, method, endpoint string, payload interface{}) ([]byte, error) {
	var body io.Reader

	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request payload: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	url := c.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("making auth service request",
		"method", method,
		"url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("auth service returned status %d: %s", resp.StatusCode, string(responseBody))
	}

	return responseBody, nil
}
