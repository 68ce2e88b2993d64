package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Searcher defines the interface for title searches.
// This interface is implemented by *Client and can be used for testing.
type Searcher interface {
	Search(ctx context.Context, title string) ([]Book, error)
}

// Ensure Client implements Searcher at compile time.
var _ Searcher = (*Client)(nil)

// Client talks to the Open Library search API.
type Client struct {
	searchURL *url.URL
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// Options configure a Client.
type Options struct {
	SearchURL         string
	UserAgent         string
	RequestsPerSecond float64       // zero or negative disables pacing
	Timeout           time.Duration // zero means no timeout
	HTTPClient        *http.Client  // optional override
}

const (
	defaultSearchURL = "https://openlibrary.org/search.json"
	defaultUserAgent = "shelf/0.1"
)

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	base, err := parseSearchURL(opts.SearchURL)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}

	return &Client{
		searchURL: base,
		http:      httpClient,
		limiter:   limiter,
		userAgent: userAgent,
	}, nil
}

// Search returns the documents matching title. The provider's default page
// size is accepted as-is.
func (c *Client) Search(ctx context.Context, title string) ([]Book, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("title", title)

	reqURL := *c.searchURL
	reqURL.RawQuery = values.Encode()

	var payload SearchResponse
	if err := c.doURL(ctx, &reqURL, &payload); err != nil {
		return nil, err
	}
	return payload.Docs, nil
}

func (c *Client) doURL(ctx context.Context, reqURL *url.URL, dest any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("wait for rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("api %s returned status %d", reqURL.Path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseSearchURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultSearchURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse search_url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse search_url %q: missing host", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
