// Package portalclient is a typed client for the read endpoints the matcher
// needs from the portal's HTTP JSON API. It authenticates every call with
// the caller's bearer token.
package portalclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hackportal-backend/internal/domain"
	"hackportal-backend/internal/logger"
)

const serviceName = "portal-api"

var (
	ErrUnauthenticated = errors.New("portal: authentication required")
	ErrNotFound        = errors.New("portal: application not found")
	ErrInvalidAction   = errors.New("portal: invalid action")
)

// APIError is a non-2xx answer that does not map to a sentinel error.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("portal api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("portal api error: status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New builds a client. A nil httpClient gets a 30 second timeout.
func New(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:      strings.TrimSpace(token),
		httpClient: httpClient,
	}
}

type applicationEnvelope struct {
	Success     bool                `json:"success"`
	Application *domain.Application `json:"application"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// GetApplication returns the caller's application, or nil if none exists.
func (c *Client) GetApplication(ctx context.Context) (*domain.Application, error) {
	var env applicationEnvelope
	if err := c.get(ctx, "/api/db/get", &env); err != nil {
		return nil, err
	}
	return env.Application, nil
}

// ListProfiles returns the matcher directory for the caller.
func (c *Client) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	profiles := []domain.Profile{}
	if err := c.get(ctx, "/api/matcher/get_profiles", &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (c *Client) get(ctx context.Context, path string, out any) (err error) {
	logger.ExternalServiceCall(serviceName, "GET "+path)
	defer func() { logger.ExternalServiceResult(serviceName, "GET "+path, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return mapError(resp.StatusCode, payload)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func mapError(status int, payload []byte) error {
	var parsed errorEnvelope
	if err := json.Unmarshal(payload, &parsed); err != nil {
		parsed.Error = strings.TrimSpace(string(payload))
	}

	switch {
	case status == http.StatusUnauthorized:
		return ErrUnauthenticated
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusBadRequest && parsed.Error == "Invalid action":
		return ErrInvalidAction
	default:
		return &APIError{StatusCode: status, Message: parsed.Error}
	}
}
