package wallet

import (
	"context"
	"errors"
	"testing"

	"tweet-tipping/internal/domain"
)

type fakeSigner struct{ addr string }

func (s fakeSigner) Address() string { return s.addr }

func (s fakeSigner) SignAndExecute(context.Context, domain.Transaction) (domain.ExecutionResult, error) {
	return domain.ExecutionResult{}, nil
}

type fakeWallet struct {
	name string
	addr string
	err  error
	// hook runs inside Connect, while the session is connecting.
	hook func()
}

func (w *fakeWallet) Name() string { return w.name }

func (w *fakeWallet) Connect(context.Context) (Signer, error) {
	if w.hook != nil {
		w.hook()
	}
	if w.err != nil {
		return nil, w.err
	}
	return fakeSigner{addr: w.addr}, nil
}

func TestSession_Lifecycle(t *testing.T) {
	// Arrange
	var during Status
	w := &fakeWallet{name: "bridge", addr: "0xabc"}
	s := NewSession(w)
	w.hook = func() { during = s.Status() }

	if s.Status() != StatusDisconnected {
		t.Fatalf("initial status = %q, want disconnected", s.Status())
	}
	if _, err := s.Signer(); !errors.Is(err, domain.ErrWalletNotConnected) {
		t.Fatalf("Signer() before connect error = %v", err)
	}

	// Act
	st, err := s.Connect(context.Background(), "bridge")

	// Assert
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if during != StatusConnecting {
		t.Errorf("status during connect = %q, want connecting", during)
	}
	if !st.Connected() || st.Address != "0xabc" || st.Wallet != "bridge" {
		t.Errorf("state after connect = %+v", st)
	}
	signer, err := s.Signer()
	if err != nil || signer.Address() != "0xabc" {
		t.Errorf("Signer() = %v, %v", signer, err)
	}

	st = s.Disconnect()
	if st.Status != StatusDisconnected || st.Address != "" || s.Address() != "" {
		t.Errorf("state after disconnect = %+v", st)
	}
	if _, err := s.Signer(); !errors.Is(err, domain.ErrWalletNotConnected) {
		t.Errorf("Signer() after disconnect error = %v", err)
	}
}

func TestSession_ConnectFailure_ReturnsToDisconnected(t *testing.T) {
	boom := errors.New("user rejected")
	s := NewSession(&fakeWallet{name: "bridge", err: boom})

	st, err := s.Connect(context.Background(), "bridge")

	if !errors.Is(err, boom) {
		t.Fatalf("Connect() error = %v, want %v", err, boom)
	}
	if st.Status != StatusDisconnected || st.Wallet != "" {
		t.Errorf("state = %+v, want disconnected", st)
	}
}

func TestSession_UnknownWallet(t *testing.T) {
	s := NewSession(&fakeWallet{name: "bridge", addr: "0x1"})

	_, err := s.Connect(context.Background(), "nope")

	if !errors.Is(err, domain.ErrUnknownWallet) {
		t.Errorf("Connect() error = %v, want ErrUnknownWallet", err)
	}
	if s.Status() != StatusDisconnected {
		t.Errorf("status = %q", s.Status())
	}

	if _, err := NewSession().Connect(context.Background(), ""); !errors.Is(err, domain.ErrUnknownWallet) {
		t.Errorf("Connect() with no wallets error = %v", err)
	}
}

func TestSession_EmptyNamePicksFirstWallet(t *testing.T) {
	s := NewSession(&fakeWallet{name: "zeta", addr: "0xz"}, &fakeWallet{name: "alpha", addr: "0xa"})

	st, err := s.Connect(context.Background(), "")

	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if st.Wallet != "alpha" {
		t.Errorf("wallet = %q, want alpha", st.Wallet)
	}
	if got := s.Wallets(); len(got) != 2 || got[0] != "alpha" || got[1] != "zeta" {
		t.Errorf("Wallets() = %v", got)
	}
}

func TestSession_DisconnectDuringConnect_Wins(t *testing.T) {
	w := &fakeWallet{name: "bridge", addr: "0xabc"}
	s := NewSession(w)
	w.hook = func() { s.Disconnect() }

	_, err := s.Connect(context.Background(), "bridge")

	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if s.Status() != StatusDisconnected {
		t.Errorf("status = %q, want disconnected", s.Status())
	}
}

func TestShortAddress(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0x1234", "0x1234"},
		{"0x19be61b2c02fe2670a30013f7cb874b743ef31bde435a9209f339be40982f636", "0x19be61...82f636"},
	}
	for _, tt := range tests {
		if got := ShortAddress(tt.in); got != tt.want {
			t.Errorf("ShortAddress(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
