// Package rpc wraps the go-ethereum JSON-RPC client for the chain node and
// wallet bridge adapters. Only the HTTP transport is used.
package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

const (
	defaultTimeout = 15 * time.Second
	userAgent      = "tweet-tipping/1.0"
)

// Error is a JSON-RPC error object returned by the server.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Client calls methods on a single JSON-RPC endpoint.
type Client struct {
	endpoint string
	c        *gethrpc.Client
}

// NewClient creates a client for endpoint, which must be an http(s) URL.
// Nothing is sent until the first call. A zero timeout uses the default.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c, err := gethrpc.DialOptions(context.Background(), endpoint,
		gethrpc.WithHTTPClient(&http.Client{Timeout: timeout}),
		gethrpc.WithHeader("User-Agent", userAgent),
	)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}
	return &Client{endpoint: endpoint, c: c}, nil
}

// Endpoint returns the URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Call invokes method with positional params and decodes the result into
// result, which may be nil to discard it. A missing result is not an error.
func (c *Client) Call(ctx context.Context, method string, params []any, result any) error {
	if params == nil {
		params = []any{}
	}
	err := c.c.CallContext(ctx, result, method, params...)
	if err == nil || errors.Is(err, gethrpc.ErrNoResult) {
		return nil
	}
	return fmt.Errorf("%s: %w", method, convert(err))
}

// Close releases the underlying client.
func (c *Client) Close() {
	c.c.Close()
}

// convert maps go-ethereum's error values onto the ones callers match on.
func convert(err error) error {
	var httpErr gethrpc.HTTPError
	if errors.As(err, &httpErr) {
		return &StatusError{StatusCode: httpErr.StatusCode, Body: string(httpErr.Body)}
	}
	var rpcErr gethrpc.Error
	if errors.As(err, &rpcErr) {
		out := &Error{Code: rpcErr.ErrorCode(), Message: rpcErr.Error()}
		var dataErr gethrpc.DataError
		if errors.As(err, &dataErr) && dataErr.ErrorData() != nil {
			out.Data, _ = json.Marshal(dataErr.ErrorData())
		}
		return out
	}
	return err
}
