package openweathermap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// API Docs: https://openweathermap.org/current
// Sample request: https://api.openweathermap.org/data/2.5/weather?q=Madrid&appid=KEY&units=metric&lang=es
const (
	baseURL = "https://api.openweathermap.org/data/2.5/weather"

	defaultUnits = "metric"
	defaultLang  = "es"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	units      string
	lang       string
	logger     *slog.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithBaseURL points the client at another endpoint, e.g. an httptest server
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithUnits overrides the unit system (metric by default)
func WithUnits(units string) Option {
	return func(c *Client) {
		if units != "" {
			c.units = units
		}
	}
}

// WithLang overrides the description language (es by default)
func WithLang(lang string) Option {
	return func(c *Client) {
		if lang != "" {
			c.lang = lang
		}
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

func NewClient(apiKey string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		apiKey:     apiKey,
		units:      defaultUnits,
		lang:       defaultLang,
		logger:     logger.With("component", "openweathermap-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetByCity fetches current weather for a city name
func (c *Client) GetByCity(ctx context.Context, city string) (*CurrentWeatherAPIResponse, error) {
	return c.get(ctx, url.Values{"q": {city}})
}

// GetByCoords fetches current weather for a coordinate pair
func (c *Client) GetByCoords(ctx context.Context, latitude, longitude float64) (*CurrentWeatherAPIResponse, error) {
	return c.get(ctx, url.Values{
		"lat": {strconv.FormatFloat(latitude, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(longitude, 'f', -1, 64)},
	})
}

func (c *Client) get(ctx context.Context, params url.Values) (*CurrentWeatherAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	for key, values := range params {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	q.Set("units", c.units)
	q.Set("lang", c.lang)

	redacted := *u
	redacted.RawQuery = q.Encode()
	c.logger.Debug("fetching current weather", "url", redacted.String())

	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	// Make the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch current weather", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if jsonErr := json.Unmarshal(body, apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr.Message = string(body)
		}
		c.logger.Error("current weather API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, apiErr
	}

	// Parse the JSON response
	var apiResp CurrentWeatherAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode current weather response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

// StatusCode extracts the HTTP status from an APIError, or 0
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
