package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"rust-wipe-tracker/internal/adapters/metrics"
)

const (
	DefaultBaseURL = "https://api.battlemetrics.com"
	DefaultTimeout = 10 * time.Second
)

// ErrNotFound is returned when BattleMetrics answers 404.
var ErrNotFound = errors.New("server not found")

// StatusError reports any other non-200 answer.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: NewMetricsRoundTripper(http.DefaultTransport),
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

func (c *Client) HasToken() bool {
	return c.token != ""
}

func (c *Client) GetServer(ctx context.Context, serverID string) (*ServerResponse, error) {
	u := fmt.Sprintf("%s/servers/%s", c.baseURL, url.PathEscape(serverID))

	var data ServerResponse
	if err := c.getAndDecode(ctx, u, &data); err != nil {
		return nil, fmt.Errorf("fetch server %s: %w", serverID, err)
	}

	return &data, nil
}

func (c *Client) getAndDecode(ctx context.Context, url string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return &StatusError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// -- Middleware --

type MetricsRoundTripper struct {
	Proxied http.RoundTripper
}

func NewMetricsRoundTripper(proxied http.RoundTripper) *MetricsRoundTripper {
	if proxied == nil {
		proxied = http.DefaultTransport
	}
	return &MetricsRoundTripper{Proxied: proxied}
}

func (mrt *MetricsRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := mrt.Proxied.RoundTrip(req)
	duration := time.Since(start).Seconds()

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}

	metrics.BattleMetricsRequestDuration.WithLabelValues(endpointLabel(req.URL.Path), status).Observe(duration)
	metrics.BattleMetricsRequests.WithLabelValues(endpointLabel(req.URL.Path), status).Inc()

	return resp, err
}

func endpointLabel(path string) string {
	if strings.Contains(path, "/servers/") {
		return "server"
	}
	return "unknown"
}
