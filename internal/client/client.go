// Package client talks to the Warefy supply-chain backend over HTTP+JSON.
//
// A Client owns one base URL and one session store. Every outgoing request is
// stamped with the stored bearer token, and every backend route is exposed as
// a method on a resource group (Client.Inventory, Client.Routes, ...). Calls
// return the decoded response body as-is. There are no retries, no caching
// and no request deduplication: failures go straight back to the caller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/warefy/supply-chain-client/internal/core/domain"
	"github.com/warefy/supply-chain-client/internal/core/ports"
	"github.com/warefy/supply-chain-client/internal/metrics"
)

const (
	// DefaultBaseURL is used when no base URL is configured.
	DefaultBaseURL = "http://localhost:8000"

	defaultFanOutLimit = 8
	userAgent          = "warefy-client/1"
	maxDetailBytes     = 512
)

// Config carries the knobs a Client is built with.
type Config struct {
	BaseURL string
	// Timeout bounds a whole request. Zero leaves the HTTP client's default.
	Timeout time.Duration
	// DemoMode enables the local demo-credential login path.
	DemoMode bool
	// FanOutLimit bounds parallelism of batch operations.
	FanOutLimit int
}

// Option customises a Client at construction.
type Option func(*Client)

// WithHTTPClient sends requests through hc. Its transport is wrapped, not
// replaced; hc itself is not modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.base = hc
		}
	}
}

// WithClock replaces time.Now, which stamps demo token expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

type service struct {
	client *Client
}

// Client is the single point of outbound communication with the backend.
type Client struct {
	baseURL     string
	base        *http.Client
	http        *http.Client
	store       ports.SessionStore
	log         zerolog.Logger
	demoMode    bool
	fanOutLimit int
	now         func() time.Time

	Auth          *AuthService
	Users         *UsersService
	Inventory     *InventoryService
	Warehouses    *WarehousesService
	Demand        *DemandService
	Routes        *RoutesService
	AI            *AIService
	Anomalies     *AnomaliesService
	Vehicles      *VehiclesService
	Orders        *OrdersService
	Reports       *ReportsService
	Integrations  *IntegrationsService
	Notifications *NotificationsService
	Driver        *DriverService
}

// New builds a Client that reads its bearer token from store on every request.
func New(cfg Config, store ports.SessionStore, log zerolog.Logger, opts ...Option) (*Client, error) {
	if store == nil {
		return nil, errors.New("client: session store is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("client: parse base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("client: base url %q must be an absolute http(s) url", baseURL)
	}

	c := &Client{
		baseURL:     strings.TrimRight(u.String(), "/"),
		base:        &http.Client{Timeout: cfg.Timeout},
		store:       store,
		log:         log.With().Str("component", "api_client").Logger(),
		demoMode:    cfg.DemoMode,
		fanOutLimit: cfg.FanOutLimit,
		now:         time.Now,
	}
	if c.fanOutLimit <= 0 {
		c.fanOutLimit = defaultFanOutLimit
	}
	for _, opt := range opts {
		opt(c)
	}

	hc := *c.base
	if cfg.Timeout > 0 {
		hc.Timeout = cfg.Timeout
	}
	hc.Transport = &bearerTransport{base: c.base.Transport, store: store}
	c.http = &hc

	c.Auth = &AuthService{client: c}
	c.Users = &UsersService{client: c}
	c.Inventory = &InventoryService{client: c}
	c.Warehouses = &WarehousesService{client: c}
	c.Demand = &DemandService{client: c}
	c.Routes = &RoutesService{client: c}
	c.AI = &AIService{client: c}
	c.Anomalies = &AnomaliesService{client: c}
	c.Vehicles = &VehiclesService{client: c}
	c.Orders = &OrdersService{client: c}
	c.Reports = &ReportsService{client: c}
	c.Integrations = &IntegrationsService{client: c}
	c.Notifications = &NotificationsService{client: c}
	c.Driver = &DriverService{client: c}

	return c, nil
}

// BaseURL reports the backend the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// DemoMode reports whether demo-credential logins are enabled.
func (c *Client) DemoMode() bool { return c.demoMode }

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*domain.Health, error) {
	var out domain.Health
	if err := c.do(ctx, "health", http.MethodGet, "/health", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends a JSON request and decodes a JSON response into out.
func (c *Client) do(ctx context.Context, group, method, path string, query url.Values, body, out any) error {
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		r = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, path, query, r, "application/json")
	if err != nil {
		return err
	}
	return c.send(req, group, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: build request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

func (c *Client) send(req *http.Request, group string, out any) error {
	method, path := req.Method, req.URL.Path
	requestID := req.Header.Get("X-Request-ID")

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	metrics.RequestDuration.WithLabelValues(group).Observe(elapsed.Seconds())

	if err != nil {
		metrics.RequestsTotal.WithLabelValues(group, method, "error").Inc()
		c.log.Debug().Err(err).
			Str("group", group).
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Msg("backend request failed")
		if errors.Is(err, domain.ErrSessionStore) {
			return fmt.Errorf("%s %s: %w", method, path, err)
		}
		return fmt.Errorf("%s %s: %w: %w", method, path, domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	metrics.RequestsTotal.WithLabelValues(group, method, fmt.Sprint(resp.StatusCode)).Inc()
	c.log.Debug().
		Str("group", group).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Int64("duration_ms", elapsed.Milliseconds()).
		Str("request_id", requestID).
		Msg("backend request")

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w: %w", method, path, domain.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(method, path, resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, domain.ErrMalformedResponse, err)
	}
	return nil
}

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	// Detail is the backend's "detail" field, or the start of the raw body.
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Detail)
}

// Is lets callers match status classes with the domain sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case domain.ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case domain.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

func newAPIError(method, path string, status int, body []byte) *APIError {
	e := &APIError{StatusCode: status, Method: method, Path: path}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
		Error  string          `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		var s string
		switch {
		case len(envelope.Detail) > 0 && json.Unmarshal(envelope.Detail, &s) == nil:
			e.Detail = s
		case len(envelope.Detail) > 0:
			e.Detail = string(envelope.Detail)
		case envelope.Error != "":
			e.Detail = envelope.Error
		}
		if e.Detail != "" {
			return e
		}
	}

	detail := strings.TrimSpace(string(body))
	if len(detail) > maxDetailBytes {
		cut := maxDetailBytes
		for cut > 0 && !utf8.RuneStart(detail[cut]) {
			cut--
		}
		detail = detail[:cut]
	}
	e.Detail = detail
	return e
}
