package ipinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// API Docs: https://ipinfo.io/developers
// Sample request: https://ipinfo.io/json
const (
	baseURL = "https://ipinfo.io/json"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClientWithBaseURL creates a client against a custom endpoint; a zero timeout keeps the transport default
func NewClientWithBaseURL(u string, timeout time.Duration, logger *slog.Logger) *Client {
	if u == "" {
		u = baseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    u,
		logger:     logger.With("component", "ipinfo-client"),
	}
}

// Lookup geolocates the caller's public IP address
func (c *Client) Lookup(ctx context.Context) (*LookupAPIResponse, error) {
	c.logger.Debug("looking up IP location", "url", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	// Make the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch IP location", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("IP location API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse the JSON response
	var apiResp LookupAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
