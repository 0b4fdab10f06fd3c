// Package backend implements the HTTP client for the remote REST backend the
// console authenticates against. The backend is an opaque collaborator:
// request in, JSON envelope {data, message} out.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/shopease/console-gateway/internal/api/metrics"
	"github.com/shopease/console-gateway/internal/core/domain"
	"github.com/shopease/console-gateway/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// envelope is the backend's canonical response shape.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Client talks to the backend's /v1/Auth endpoints.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Login exchanges credentials for a token pair via POST /v1/Auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (ports.TokenPair, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return ports.TokenPair{}, fmt.Errorf("encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/Auth/login", bytes.NewReader(body))
	if err != nil {
		return ports.TokenPair{}, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var pair ports.TokenPair
	if err := c.do(req, "login", &pair, domain.ErrInvalidCredentials); err != nil {
		return ports.TokenPair{}, err
	}
	if pair.Token == "" {
		return ports.TokenPair{}, fmt.Errorf("%w: login response missing token", domain.ErrBackendUnavailable)
	}
	return pair, nil
}

// FetchProfile resolves the bearer token to a user profile via GET /v1/Auth/me.
func (c *Client) FetchProfile(ctx context.Context, token string) (*domain.UserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/Auth/me", nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var profile domain.UserProfile
	if err := c.do(req, "me", &profile, domain.ErrProfileFetchFailed); err != nil {
		return nil, err
	}
	return &profile, nil
}

// do executes req and decodes the envelope's data field into out. A 401/403
// maps to authErr; any other non-2xx maps to ErrBackendUnavailable with the
// backend's message attached when it sent one.
func (c *Client) do(req *http.Request, endpoint string, out any, authErr error) error {
	timer := prometheus.NewTimer(metrics.BackendRequestDuration.WithLabelValues(endpoint))
	defer timer.ObserveDuration()

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", domain.ErrBackendUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return authErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env envelope
		_ = json.Unmarshal(raw, &env)
		if env.Message != "" {
			return fmt.Errorf("%w: %s (status %d)", domain.ErrBackendUnavailable, env.Message, resp.StatusCode)
		}
		return fmt.Errorf("%w: status %d", domain.ErrBackendUnavailable, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: decode envelope: %v", domain.ErrBackendUnavailable, err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decode data: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}
