package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tweetURL = "https://x.com/RoochNetwork/status/1800000000000000"

// rpcServer answers JSON-RPC calls from a method table.
func rpcServer(t *testing.T, results map[string]string, seen *[]string) *httptest.Server {
	t.Helper()
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     uint64 `json:"id"`
			Method string `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode rpc request: %v", err)
			return
		}
		mu.Lock()
		if seen != nil {
			*seen = append(*seen, req.Method)
		}
		mu.Unlock()

		result, ok := results[req.Method]
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"method not found"}}`))
			return
		}
		body, _ := json.Marshal(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": json.RawMessage(result)})
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

type env struct {
	configPath string
	bridgeSeen []string
}

func newEnv(t *testing.T, claimStatus string) *env {
	t.Helper()
	e := &env{}

	oracle := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":"0xobj"}`))
	}))
	t.Cleanup(oracle.Close)

	node := rpcServer(t, map[string]string{
		"rooch_getStates":  `[{"value":"0x00","decoded_value":{"type":"tweet","value":{"author_id":"44196397"}}}]`,
		"rooch_getChainID": `"0x2"`,
	}, nil)

	status := `{"type":"executed"}`
	if claimStatus != "" {
		status = claimStatus
	}
	bridge := rpcServer(t, map[string]string{
		"wallet_requestAccounts":           `["0x1234567890abcdef1234567890abcdef"]`,
		"wallet_signAndExecuteTransaction": `{"execution_info":{"tx_hash":"0xhash","status":` + status + `}}`,
	}, &e.bridgeSeen)

	dir := t.TempDir()
	cfg := `
chain:
  url: ` + node.URL + `
oracle:
  url: ` + oracle.URL + `
resolver:
  max_retries: 1
  delay: 1ms
wallets:
  - name: bridge
    url: ` + bridge.URL + `
ledger:
  driver: sqlite3
  dsn: ` + filepath.Join(dir, "ledger.db") + `
`
	e.configPath = filepath.Join(dir, "tipping.yaml")
	require.NoError(t, os.WriteFile(e.configPath, []byte(cfg), 0o600))
	return e
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestResolve(t *testing.T) {
	e := newEnv(t, "")

	out, err := run(t, "resolve", tweetURL, "--config", e.configPath)

	require.NoError(t, err)
	assert.Equal(t, "tweet 1800000000000000: author 44196397 (1 attempts)\n", out)
}

func TestTip_JSONAndHistory(t *testing.T) {
	e := newEnv(t, "")

	out, err := run(t, "tip", tweetURL, "0.5", "--config", e.configPath, "--format", "json")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "succeeded", res["outcome"])
	assert.Equal(t, "50000000", res["amount"])
	assert.Equal(t, "0xhash", res["tx_hash"])
	assert.Equal(t, []string{"wallet_requestAccounts", "wallet_signAndExecuteTransaction"}, e.bridgeSeen)

	out, err = run(t, "history", "--config", e.configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "tip.sent")
	assert.Contains(t, out, "1800000000000000")
}

func TestClaim_NothingToClaimFails(t *testing.T) {
	e := newEnv(t, `{"type":"moveabort","abort_code":"3"}`)

	out, err := run(t, "claim", "--config", e.configPath)

	assert.ErrorIs(t, err, ErrWorkflowFailed)
	assert.Equal(t, "No tips to claim\ntx: 0xhash\n", out)
}

func TestTip_InvalidAmount(t *testing.T) {
	e := newEnv(t, "")

	_, err := run(t, "tip", tweetURL, "abc", "--config", e.configPath)

	assert.Error(t, err)
	assert.NotContains(t, e.bridgeSeen, "wallet_signAndExecuteTransaction")
}

func TestWallets(t *testing.T) {
	e := newEnv(t, "")

	out, err := run(t, "wallets", "--config", e.configPath)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "bridge"))
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, "wallets", "--format", "xml")

	assert.ErrorContains(t, err, "invalid format")
}
