// Package sleeper pulls league rosters and weekly matchups from the Sleeper
// API and merges them into a game-log file.
//
// Requests are rate limited with a token bucket and honor context
// cancellation.
package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// UserAgent is sent with every request.
const UserAgent = "Sleeper-H2H-Updater/1.0"

// Client is a minimal Sleeper v1 API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a Sleeper client limited to requestsPerMinute.
func NewClient(baseURL string, requestsPerMinute int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if requestsPerMinute <= 0 {
		requestsPerMinute = 600
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// WithHTTPClient swaps the underlying HTTP client, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Users returns the league members.
func (c *Client) Users(ctx context.Context, leagueID string) ([]User, error) {
	var out []User
	if err := c.get(ctx, "/league/"+url.PathEscape(leagueID)+"/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Rosters returns the league rosters.
func (c *Client) Rosters(ctx context.Context, leagueID string) ([]Roster, error) {
	var out []Roster
	if err := c.get(ctx, "/league/"+url.PathEscape(leagueID)+"/rosters", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Matchups returns every roster's matchup entry for one week.
func (c *Client) Matchups(ctx context.Context, leagueID string, week int) ([]Matchup, error) {
	var out []Matchup
	path := "/league/" + url.PathEscape(leagueID) + "/matchups/" + strconv.Itoa(week)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// get performs a rate-limited GET and decodes the JSON body into dst.
func (c *Client) get(ctx context.Context, path string, dst any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	c.logger.Debug("Sleeper request", "path", path, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sleeper %s returned %d: %s", path, resp.StatusCode, truncate(body, 200))
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
