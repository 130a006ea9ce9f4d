package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client wraps HTTP calls to the marquee server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new marquee API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

// ScreeningResult mirrors the daemon's screening response.
type ScreeningResult struct {
	Region     string  `json:"region"`
	NowPlaying []int64 `json:"now_playing"`
	Upcoming   []int64 `json:"upcoming"`
	FetchedAt  string  `json:"fetched_at"`
}

// Screening fetches the region's screening snapshot.
func (c *Client) Screening() (*ScreeningResult, error) {
	var result ScreeningResult
	if err := c.get("/api/v1/screening", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// StatusResult mirrors the daemon's title status response.
type StatusResult struct {
	Kind   string `json:"kind"`
	ID     int64  `json:"id"`
	Status string `json:"status"`
	Year   string `json:"year"`
}

// TitleStatus resolves status and year for one title.
func (c *Client) TitleStatus(kind string, id int64, date string) (*StatusResult, error) {
	path := fmt.Sprintf("/api/v1/titles/%s/%d/status", kind, id)
	if date != "" {
		path += "?date=" + url.QueryEscape(date)
	}

	var result StatusResult
	if err := c.get(path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MetaResult mirrors the daemon's title meta response.
type MetaResult struct {
	Providers []struct {
		Name     string `json:"name"`
		LogoPath string `json:"logo_path"`
	} `json:"providers"`
	AgeRating string `json:"age_rating"`
}

// TitleMeta fetches provider badges and the age rating for one title.
func (c *Client) TitleMeta(kind string, id int64) (*MetaResult, error) {
	var result MetaResult
	if err := c.get(fmt.Sprintf("/api/v1/titles/%s/%d/meta", kind, id), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
