// Package bridge connects to wallets that expose a JSON-RPC bridge. The
// bridge holds the keys; this package only asks it for accounts and hands
// it unsigned transactions.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tweet-tipping/internal/adapters/rpc"
	"tweet-tipping/internal/domain"
	"tweet-tipping/internal/wallet"
)

const (
	methodRequestAccounts = "wallet_requestAccounts"
	methodSignAndExecute  = "wallet_signAndExecuteTransaction"
)

// ErrNoAccounts is returned when the bridge has no account to offer.
var ErrNoAccounts = errors.New("wallet returned no accounts")

// Config describes one bridge.
type Config struct {
	Name    string
	URL     string
	Timeout time.Duration
}

// Wallet is a wallet reachable through a JSON-RPC bridge.
type Wallet struct {
	name string
	rpc  *rpc.Client
}

var _ wallet.Wallet = (*Wallet)(nil)

// New creates a bridge wallet.
func New(cfg Config) (*Wallet, error) {
	c, err := rpc.NewClient(cfg.URL, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("wallet %s: %w", cfg.Name, err)
	}
	return &Wallet{name: cfg.Name, rpc: c}, nil
}

func (w *Wallet) Name() string { return w.name }

// Connect asks the bridge for its accounts and binds a signer to the first.
func (w *Wallet) Connect(ctx context.Context) (wallet.Signer, error) {
	var accounts []string
	if err := w.rpc.Call(ctx, methodRequestAccounts, nil, &accounts); err != nil {
		return nil, err
	}
	if len(accounts) == 0 || accounts[0] == "" {
		return nil, ErrNoAccounts
	}
	return &Signer{rpc: w.rpc, address: accounts[0]}, nil
}

// Signer signs through the bridge for one account.
type Signer struct {
	rpc     *rpc.Client
	address string
}

func (s *Signer) Address() string { return s.address }

// SignAndExecute sends tx to the bridge, which signs and submits it and
// returns the execution result.
func (s *Signer) SignAndExecute(ctx context.Context, tx domain.Transaction) (domain.ExecutionResult, error) {
	var res domain.ExecutionResult
	if err := s.rpc.Call(ctx, methodSignAndExecute, []any{tx}, &res); err != nil {
		return domain.ExecutionResult{}, fmt.Errorf("sign and execute: %w", err)
	}
	return res, nil
}
