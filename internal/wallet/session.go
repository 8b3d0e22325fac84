// Package wallet holds the connection state between the service and the
// user's wallet. A Session is created once and passed to whatever needs to
// know the current account or sign a transaction.
package wallet

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"tweet-tipping/internal/domain"
)

// Status is the connection state of a Session.
type Status string

const (
	StatusDisconnected Status = "disconnected"
	StatusConnecting   Status = "connecting"
	StatusConnected    Status = "connected"
)

// Signer signs and submits transactions for one account.
type Signer interface {
	Address() string
	SignAndExecute(ctx context.Context, tx domain.Transaction) (domain.ExecutionResult, error)
}

// Wallet is a connectable wallet. Connect asks the wallet for an account
// and returns a signer bound to it.
type Wallet interface {
	Name() string
	Connect(ctx context.Context) (Signer, error)
}

// State is a point-in-time view of a Session.
type State struct {
	Status  Status   `json:"status"`
	Wallet  string   `json:"wallet,omitempty"`
	Address string   `json:"address,omitempty"`
	Wallets []string `json:"wallets"`
}

// Connected reports whether the state has a usable account.
func (s State) Connected() bool {
	return s.Status == StatusConnected
}

// ShortAddress renders the address as 0x19be61...82f636 for display.
func (s State) ShortAddress() string {
	return ShortAddress(s.Address)
}

// Session tracks which wallet is connected and exposes its signer.
type Session struct {
	mu      sync.RWMutex
	wallets map[string]Wallet
	status  Status
	current string
	signer  Signer
	// epoch is bumped by every Connect and Disconnect so a slow Connect
	// cannot overwrite a later Disconnect.
	epoch uint64
}

// NewSession creates a disconnected session over the given wallets.
func NewSession(wallets ...Wallet) *Session {
	m := make(map[string]Wallet, len(wallets))
	for _, w := range wallets {
		m[w.Name()] = w
	}
	return &Session{wallets: m, status: StatusDisconnected}
}

// Wallets returns the names of the available wallets, sorted.
func (s *Session) Wallets() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.wallets))
	for name := range s.wallets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Connect connects to the named wallet. An empty name picks the only
// configured wallet, or the first one by name.
func (s *Session) Connect(ctx context.Context, name string) (State, error) {
	s.mu.Lock()
	w, err := s.lookup(name)
	if err != nil {
		s.mu.Unlock()
		return s.State(), err
	}
	s.epoch++
	epoch := s.epoch
	s.status = StatusConnecting
	s.current = w.Name()
	s.signer = nil
	s.mu.Unlock()

	signer, err := w.Connect(ctx)

	s.mu.Lock()
	if s.epoch == epoch {
		if err != nil {
			s.status = StatusDisconnected
			s.current = ""
		} else {
			s.status = StatusConnected
			s.signer = signer
		}
	}
	s.mu.Unlock()

	if err != nil {
		return s.State(), fmt.Errorf("connect %s: %w", w.Name(), err)
	}
	return s.State(), nil
}

// Disconnect drops the current account.
func (s *Session) Disconnect() State {
	s.mu.Lock()
	s.epoch++
	s.status = StatusDisconnected
	s.current = ""
	s.signer = nil
	s.mu.Unlock()

	return s.State()
}

// Status returns the connection status.
func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Address returns the connected account address, or "".
func (s *Session) Address() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.signer == nil {
		return ""
	}
	return s.signer.Address()
}

// Signer returns the connected signer or domain.ErrWalletNotConnected.
func (s *Session) Signer() (Signer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.status != StatusConnected || s.signer == nil {
		return nil, domain.ErrWalletNotConnected
	}
	return s.signer, nil
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	wallets := s.Wallets()

	s.mu.RLock()
	defer s.mu.RUnlock()

	st := State{Status: s.status, Wallet: s.current, Wallets: wallets}
	if s.signer != nil {
		st.Address = s.signer.Address()
	}
	return st
}

func (s *Session) lookup(name string) (Wallet, error) {
	if name == "" {
		if len(s.wallets) == 0 {
			return nil, domain.ErrUnknownWallet
		}
		var first string
		for n := range s.wallets {
			if first == "" || n < first {
				first = n
			}
		}
		return s.wallets[first], nil
	}
	w, ok := s.wallets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownWallet, name)
	}
	return w, nil
}

// ShortAddress abbreviates long addresses to their first eight and last six
// characters.
func ShortAddress(addr string) string {
	if len(addr) <= 14 {
		return addr
	}
	return addr[:8] + "..." + addr[len(addr)-6:]
}
