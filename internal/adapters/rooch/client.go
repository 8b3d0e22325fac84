// Package rooch talks to a Rooch node over JSON-RPC: it reads decoded
// object state and submits function calls through a wallet signer.
package rooch

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"tweet-tipping/internal/adapters/rpc"
	"tweet-tipping/internal/domain"
	"tweet-tipping/internal/wallet"
)

const (
	methodGetStates  = "rooch_getStates"
	methodGetChainID = "rooch_getChainID"

	// DefaultMaxGasAmount matches the SDK default for entry function calls.
	DefaultMaxGasAmount uint64 = 100_000_000
)

// Config holds the node client settings.
type Config struct {
	URL          string
	Timeout      time.Duration
	MaxGasAmount uint64
}

// StateOptions is the second parameter of rooch_getStates.
type StateOptions struct {
	Decode bool `json:"decode"`
}

// ObjectState is one entry of a rooch_getStates result.
type ObjectState struct {
	Value        string        `json:"value"`
	ValueType    string        `json:"value_type,omitempty"`
	DecodedValue *DecodedValue `json:"decoded_value,omitempty"`
}

// DecodedValue is the decoded Move struct of an object.
type DecodedValue struct {
	Type  string                     `json:"type"`
	Value map[string]json.RawMessage `json:"value"`
}

// Field returns a decoded field rendered as a string. Strings are unquoted,
// numbers keep their literal form, and null or missing fields report false.
func (d *DecodedValue) Field(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	raw, ok := d.Value[name]
	if !ok {
		return "", false
	}
	v := strings.TrimSpace(string(raw))
	if v == "" || v == "null" {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, s != ""
	}
	return v, true
}

// Client is a Rooch node client.
type Client struct {
	rpc    *rpc.Client
	maxGas uint64

	mu      sync.Mutex
	chainID *uint64
}

// NewClient creates a node client.
func NewClient(cfg Config) (*Client, error) {
	maxGas := cfg.MaxGasAmount
	if maxGas == 0 {
		maxGas = DefaultMaxGasAmount
	}
	c, err := rpc.NewClient(cfg.URL, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("rooch node: %w", err)
	}
	return &Client{rpc: c, maxGas: maxGas}, nil
}

// Close releases the node connection.
func (c *Client) Close() {
	c.rpc.Close()
}

// GetStates reads the states at accessPath, decoded.
func (c *Client) GetStates(ctx context.Context, accessPath string) ([]*ObjectState, error) {
	var states []*ObjectState
	if err := c.rpc.Call(ctx, methodGetStates, []any{accessPath, StateOptions{Decode: true}}, &states); err != nil {
		return nil, err
	}
	return states, nil
}

// AuthorID reads author_id from the tweet object objectID. It returns ""
// while the oracle has not filled the field in yet.
func (c *Client) AuthorID(ctx context.Context, objectID string) (string, error) {
	states, err := c.GetStates(ctx, "/object/"+objectID)
	if err != nil {
		return "", fmt.Errorf("read object %s: %w", objectID, err)
	}
	if len(states) == 0 || states[0] == nil {
		return "", nil
	}
	id, _ := states[0].DecodedValue.Field("author_id")
	return id, nil
}

// ChainID returns the node's chain id. It is fetched once.
func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.chainID != nil {
		return *c.chainID, nil
	}

	var raw json.RawMessage
	if err := c.rpc.Call(ctx, methodGetChainID, nil, &raw); err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(strings.Trim(string(raw), `" `), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("parse chain id %s: %w", raw, err)
	}
	c.chainID = &id
	return id, nil
}

// Submit wraps call in a transaction for the signer's account and has the
// signer sign and execute it.
func (c *Client) Submit(ctx context.Context, signer wallet.Signer, call domain.FunctionCall) (domain.ExecutionResult, error) {
	chainID, err := c.ChainID(ctx)
	if err != nil {
		return domain.ExecutionResult{}, fmt.Errorf("chain id: %w", err)
	}

	tx := domain.Transaction{
		ChainID:      chainID,
		Sender:       signer.Address(),
		MaxGasAmount: c.maxGas,
		Call:         call,
	}
	if tx.Call.Args == nil {
		tx.Call.Args = []domain.Arg{}
	}

	res, err := signer.SignAndExecute(ctx, tx)
	if err != nil {
		return domain.ExecutionResult{}, fmt.Errorf("execute %s: %w", call.FunctionID(), err)
	}
	return res, nil
}
