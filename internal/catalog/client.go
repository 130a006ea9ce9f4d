package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"
)

const defaultBaseURL = "https://catalog.marquee.internal"

// Sentinel errors for catalog responses.
var (
	ErrNotFound = errors.New("title not found")
)

const (
	retryAttempts = 3
	retryDelay    = 200 * time.Millisecond
)

// Client is a catalog service client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "catalog")
	}
}

// NewClient creates a new catalog client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NowPlaying returns one page of now-playing movie ids for a region.
func (c *Client) NowPlaying(ctx context.Context, region string, page int) ([]int64, error) {
	return c.listing(ctx, "/v1/movies/now-playing", region, page)
}

// Upcoming returns one page of upcoming movie ids for a region.
func (c *Client) Upcoming(ctx context.Context, region string, page int) ([]int64, error) {
	return c.listing(ctx, "/v1/movies/upcoming", region, page)
}

func (c *Client) listing(ctx context.Context, path, region string, page int) ([]int64, error) {
	q := url.Values{}
	q.Set("region", region)
	q.Set("page", strconv.Itoa(page))

	var resp listingResponse
	if err := c.get(ctx, path+"?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("listing %s page %d: %w", path, page, err)
	}

	ids := make([]int64, 0, len(resp.Results))
	for _, r := range resp.Results {
		ids = append(ids, r.ID)
	}
	return ids, nil
}

// ReleaseDates fetches the per-region release-date history for a movie.
func (c *Client) ReleaseDates(ctx context.Context, id int64) ([]RegionReleases, error) {
	var resp releaseDatesResponse
	path := fmt.Sprintf("/v1/movies/%d/release-dates", id)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("release dates for %d: %w", id, err)
	}
	return resp.Results, nil
}

// Seasons fetches the season listing for a TV title.
func (c *Client) Seasons(ctx context.Context, id int64) (*SeasonList, error) {
	var resp SeasonList
	path := fmt.Sprintf("/v1/tv/%d/seasons", id)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("seasons for %d: %w", id, err)
	}
	return &resp, nil
}

// TitleMeta fetches watch providers and the age certification for a title.
func (c *Client) TitleMeta(ctx context.Context, kind Kind, id int64, region string) (*TitleMeta, error) {
	q := url.Values{}
	q.Set("region", region)

	var resp TitleMeta
	path := fmt.Sprintf("/v1/%s/%d/meta?%s", kind, id, q.Encode())
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("meta for %s %d: %w", kind, id, err)
	}
	return &resp, nil
}

// get performs a GET with transient-failure retries and decodes the JSON body.
// Network errors, 429 and 5xx are retried; everything else fails immediately.
func (c *Client) get(ctx context.Context, path string, result any) error {
	return retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("create request: %w", err))
			}
			req.Header.Set("Authorization", "Bearer "+c.apiKey)

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return fmt.Errorf("execute request: %w", err)
			}
			defer func() { _ = resp.Body.Close() }()

			switch {
			case resp.StatusCode == http.StatusNotFound:
				return retry.Unrecoverable(ErrNotFound)
			case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
				return fmt.Errorf("catalog error: %s", resp.Status)
			case resp.StatusCode != http.StatusOK:
				return retry.Unrecoverable(fmt.Errorf("catalog error: %s", resp.Status))
			}

			if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
				return retry.Unrecoverable(fmt.Errorf("decode response: %w", err))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(retryAttempts),
		retry.Delay(retryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			if c.log != nil {
				c.log.Debug("retrying catalog request", "path", path, "attempt", n+1, "error", err)
			}
		}),
	)
}
