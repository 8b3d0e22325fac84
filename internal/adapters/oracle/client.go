// Package oracle asks the tweet oracle to ingest a tweet and returns the
// on-chain object the tweet will be written to.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultURL is the testnet ingestion endpoint.
const DefaultURL = "http://test-faucet.rooch.network/fetch-tweet"

const defaultTimeout = 10 * time.Second

// Config holds the ingestion client settings.
type Config struct {
	URL     string
	Timeout time.Duration
}

// Client calls the ingestion endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates an ingestion client.
func NewClient(cfg Config) *Client {
	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{url: url, httpClient: &http.Client{Timeout: timeout}}
}

type ingestRequest struct {
	TweetID string `json:"tweet_id"`
}

type ingestResponse struct {
	OK json.RawMessage `json:"ok"`
}

// RequestIngestion posts tweetID to the oracle. The returned object id is
// empty when the oracle answered without one.
func (c *Client) RequestIngestion(ctx context.Context, tweetID string) (string, error) {
	body, err := json.Marshal(ingestRequest{TweetID: tweetID})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var out ingestResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return objectID(out.OK), nil
}

// objectID accepts only a non-empty JSON string.
func objectID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
