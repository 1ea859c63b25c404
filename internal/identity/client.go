package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const validateTokenPath = "/api/v1/auth/validate-token"

var (
	// ErrUpstreamUnavailable means the auth service could not be reached or
	// did not answer in time. Callers must treat it as verification failure.
	ErrUpstreamUnavailable = errors.New("token validation service unavailable")
	// ErrInvalidToken means the auth service rejected the token.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Client verifies tokens remotely against the auth service's
// validate-token endpoint. Used by services that do not hold the
// signing key.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for the auth service at baseURL. The timeout
// bounds each validation round-trip.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Verify posts the token to the auth service and maps its answer to an
// Identity. Network or decoding failures return ErrUpstreamUnavailable.
func (c *Client) Verify(ctx context.Context, raw string) (Identity, error) {
	body, err := json.Marshal(map[string]string{"token": raw})
	if err != nil {
		return Identity{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+validateTokenPath, bytes.NewReader(body))
	if err != nil {
		return Identity{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	var out struct {
		Valid    bool   `json:"valid"`
		UserID   int64  `json:"userId"`
		Username string `json:"username"`
		Error    string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Identity{}, fmt.Errorf("%w: decode response: %v", ErrUpstreamUnavailable, err)
	}
	if !out.Valid {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: out.UserID, Username: out.Username}, nil
}
