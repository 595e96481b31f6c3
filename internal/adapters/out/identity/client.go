// Package identity provides an HTTP client for the external user-directory
// service. The core workflows never call it; the inbound HTTP adapter uses it
// to resolve user display names and to translate a name search into user IDs.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"amo/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Client calls the user-directory service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a user-directory client for the given base URL.
func NewClient(baseURL string) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid user directory url %q: %w", baseURL, err)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// userResponse mirrors the directory service's user payload.
type userResponse struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	FullName string `json:"fullName"`
	Location string `json:"location"`
}

// ListUsers retrieves every user visible to the given bearer credential.
func (c *Client) ListUsers(ctx context.Context, credential string) ([]ports.DirectoryUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/User", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user directory returned status %d", resp.StatusCode)
	}

	var payload []userResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("user directory response decode failed: %w", err)
	}

	users := make([]ports.DirectoryUser, 0, len(payload))
	for _, u := range payload {
		users = append(users, ports.DirectoryUser{
			ID:       u.ID,
			UserName: u.UserName,
			FullName: u.FullName,
			Location: u.Location,
		})
	}

	return users, nil
}
