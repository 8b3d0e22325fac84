package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tweet-tipping/internal/domain"
)

func bridgeServer(t *testing.T, accounts string, onSign func(tx domain.Transaction) string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string            `json:"method"`
			Params []json.RawMessage `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
			return
		}
		var result string
		switch req.Method {
		case methodRequestAccounts:
			result = accounts
		case methodSignAndExecute:
			var tx domain.Transaction
			if err := json.Unmarshal(req.Params[0], &tx); err != nil {
				t.Errorf("decode tx: %v", err)
			}
			result = onSign(tx)
		default:
			t.Errorf("unexpected method %s", req.Method)
			result = "null"
		}
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":` + result + `}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newWallet(t *testing.T, url string) *Wallet {
	t.Helper()
	w, err := New(Config{Name: "dev", URL: url})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return w
}

func TestWallet_ConnectAndSign(t *testing.T) {
	// Arrange
	var got domain.Transaction
	srv := bridgeServer(t, `["0xaccount","0xother"]`, func(tx domain.Transaction) string {
		got = tx
		return `{"execution_info":{"tx_hash":"0xh","status":{"type":"moveabort","abort_code":"3"}}}`
	})
	w := newWallet(t, srv.URL)

	// Act
	signer, err := w.Connect(context.Background())
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	res, err := signer.SignAndExecute(context.Background(), domain.Transaction{
		ChainID: 2,
		Sender:  signer.Address(),
		Call:    domain.FunctionCall{Address: "0xc", Module: "tweet_tip", Function: "claim_tip", Args: []domain.Arg{}},
	})

	// Assert
	if err != nil {
		t.Fatalf("SignAndExecute() error = %v", err)
	}
	if w.Name() != "dev" || signer.Address() != "0xaccount" {
		t.Errorf("name=%q address=%q", w.Name(), signer.Address())
	}
	if got.Sender != "0xaccount" || got.Call.Function != "claim_tip" || got.ChainID != 2 {
		t.Errorf("bridge received %+v", got)
	}
	if res.ExecutionInfo.Status.Executed() {
		t.Error("status should not be executed")
	}
	if code, ok := res.ExecutionInfo.Status.AbortCode(); !ok || code != 3 {
		t.Errorf("AbortCode() = %d, %v", code, ok)
	}
}

func TestWallet_NoAccounts(t *testing.T) {
	srv := bridgeServer(t, `[]`, nil)

	_, err := newWallet(t, srv.URL).Connect(context.Background())

	if !errors.Is(err, ErrNoAccounts) {
		t.Errorf("Connect() error = %v, want ErrNoAccounts", err)
	}
}
