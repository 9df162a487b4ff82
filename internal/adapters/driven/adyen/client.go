// Package adyen implements driven.AllowedOriginsClient against the Adyen
// Management API (v3).
package adyen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/allowlist-cli/internal/core/domain"
	"github.com/custodia-labs/allowlist-cli/internal/core/ports/driven"
	"github.com/custodia-labs/allowlist-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.AllowedOriginsClient = (*Client)(nil)

const (
	// HeaderAPIKey carries the API credential's key.
	HeaderAPIKey = "X-API-Key"

	// HeaderIdempotencyKey makes a POST safe to replay on the server side.
	HeaderIdempotencyKey = "Idempotency-Key"

	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 4 << 20
)

// Config configures a Client.
type Config struct {
	// BaseURL is the Management API root, with or without trailing slash.
	BaseURL string

	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration

	// RequestsPerSecond paces outgoing requests.
	RequestsPerSecond float64

	// UserAgent is sent with every request.
	UserAgent string

	// HTTPClient overrides the default client (tests).
	HTTPClient *http.Client
}

// Client sends allowed origins requests.
type Client struct {
	baseURL     string
	userAgent   string
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates a new Management API client.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, fmt.Errorf("%w: adyen base url is required", domain.ErrInvalidInput)
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("%w: adyen base url: %v", domain.ErrInvalidInput, err)
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "allowlist"
	}

	return &Client{
		baseURL:     base,
		userAgent:   userAgent,
		httpClient:  httpClient,
		rateLimiter: NewRateLimiter(cfg.RequestsPerSecond),
	}, nil
}

// Endpoint returns the URL for a request. The path always sits under
// v3/merchants; the API type only decides which account id fills it.
func (c *Client) Endpoint(creds domain.Credentials, originID string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteString("v3/merchants/")
	b.WriteString(url.PathEscape(creds.AccountID))
	b.WriteString("/apiCredentials/")
	b.WriteString(url.PathEscape(creds.CredentialID))
	b.WriteString("/allowedOrigins")
	if originID != "" {
		b.WriteString("/")
		b.WriteString(url.PathEscape(originID))
	}
	return b.String()
}

// Do sends one request. Non-2xx statuses are returned, not treated as errors.
func (c *Client) Do(ctx context.Context, req driven.OriginRequest) (*driven.OriginResponse, error) {
	endpoint := c.Endpoint(req.Credentials, req.OriginID)
	op := req.Method

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &domain.TransportError{Op: op, URL: endpoint, Err: err}
		}
		body = bytes.NewReader(payload)
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, &domain.TransportError{Op: op, URL: endpoint, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		return nil, &domain.TransportError{Op: op, URL: endpoint, Err: err}
	}
	httpReq.Header.Set(HeaderAPIKey, req.Credentials.APIKey)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Content-Type", "application/json")
	if req.Method == http.MethodPost {
		httpReq.Header.Set(HeaderIdempotencyKey, uuid.NewString())
	}

	logger.Debug("adyen: %s %s (key %s)", req.Method, endpoint, domain.MaskAPIKey(req.Credentials.APIKey))
	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Debug("adyen: %s %s failed: %v", req.Method, endpoint, err)
		return nil, &domain.TransportError{Op: op, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	c.rateLimiter.UpdateFromResponse(resp)

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &domain.TransportError{Op: op, URL: endpoint, Err: fmt.Errorf("reading response: %w", err)}
	}

	logger.Debug("adyen: %s %s -> %d in %s", req.Method, endpoint, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	return &driven.OriginResponse{
		StatusCode: resp.StatusCode,
		Body:       data,
	}, nil
}
