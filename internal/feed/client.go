package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/appgrid/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "appgrid/1.0"
)

// Client implements domain.FeedSource over HTTP
type Client struct {
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

// NewClient creates a new feed client. A zero timeout uses the default.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		logger:    logger,
	}
}

// Timeout returns the effective request timeout
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}

// ValidateURL checks that rawURL is an absolute http(s) URL with a host
func ValidateURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", domain.ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", domain.ErrInvalidURL)
	}
	return u, nil
}

// Fetch performs a single GET of the feed document and returns the body.
// Invalid URLs fail with domain.ErrInvalidURL before any network access;
// every other failure wraps domain.ErrNetwork.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("feed request", "url", u.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("feed request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("feed request error", "status", resp.StatusCode, "bodyLen", len(body))
		return nil, fmt.Errorf("%w: unexpected status code: %d", domain.ErrNetwork, resp.StatusCode)
	}

	return body, nil
}

// Load fetches and decodes the feed in one step
func Load(ctx context.Context, src domain.FeedSource, rawURL string) (domain.FeedEnvelope, error) {
	body, err := src.Fetch(ctx, rawURL)
	if err != nil {
		return domain.FeedEnvelope{}, err
	}
	return Decode(body)
}
