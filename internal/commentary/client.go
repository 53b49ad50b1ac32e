// Package commentary fetches a color-commentary line for a finished round
// from an external service. The service is strictly optional: any failure,
// timeout or missing configuration degrades to a canned fallback line, and
// the caller fires requests from its own goroutine so the simulation never
// waits on the network.
package commentary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mkazakov/tui-shootout/internal/config"
	"github.com/mkazakov/tui-shootout/internal/registry"
)

// Client talks to the commentary service.
type Client struct {
	url      string
	apiKey   string
	fallback string
	timeout  time.Duration
	httpc    *http.Client
	logger   *log.Logger
}

// request is the wire payload describing one round outcome.
type request struct {
	Round    int    `json:"round"`
	Outcome  string `json:"outcome"` // "save" or "goal"
	ShotType string `json:"shot_type"`
	SaveType string `json:"save_type,omitempty"`
}

// response is the wire payload returned by the service.
type response struct {
	Line string `json:"line"`
}

// NewClient creates a commentary client from the given configuration.
// The API key is read from the configured environment variable; an empty
// URL yields a client that always answers with the fallback line.
func NewClient(cfg config.CommentaryConfig) *Client {
	timeout := time.Duration(cfg.TimeoutMillis) * time.Millisecond
	if timeout <= 0 {
		timeout = 1500 * time.Millisecond
	}

	return &Client{
		url:      cfg.URL,
		apiKey:   os.Getenv(cfg.APIKeyEnv),
		fallback: cfg.Fallback,
		timeout:  timeout,
		httpc:    &http.Client{Timeout: timeout},
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "commentary",
		}),
	}
}

// Line fetches a commentary line for the given round outcome. It never
// returns an error: problems are logged and the fallback line is returned
// instead, so the HUD always has something to show.
func (c *Client) Line(ctx context.Context, r registry.RoundReport) string {
	if c.url == "" {
		return c.fallback
	}

	line, err := c.fetch(ctx, r)
	if err != nil {
		c.logger.Warn("falling back to canned line", "round", r.Round, "error", err)
		return c.fallback
	}
	return line
}

// fetch performs the actual POST round-trip.
func (c *Client) fetch(ctx context.Context, r registry.RoundReport) (string, error) {
	outcome := "goal"
	if r.Success {
		outcome = "save"
	}

	body, err := json.Marshal(request{
		Round:    r.Round,
		Outcome:  outcome,
		ShotType: r.ShotType,
		SaveType: r.SaveType,
	})
	if err != nil {
		return "", fmt.Errorf("commentary: cannot encode request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("commentary: cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("commentary: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("commentary: service returned %s", resp.Status)
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("commentary: cannot decode response: %w", err)
	}
	if parsed.Line == "" {
		return "", fmt.Errorf("commentary: service returned an empty line")
	}

	return parsed.Line, nil
}
