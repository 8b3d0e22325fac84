package usecases_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"tweet-tipping/internal/domain"
)

// stubSigner is a connected account.
type stubSigner struct{ addr string }

func (s *stubSigner) Address() string { return s.addr }

func (s *stubSigner) SignAndExecute(context.Context, domain.Transaction) (domain.ExecutionResult, error) {
	panic("submission goes through the Submitter")
}

// fakeClock counts sleeps instead of waiting.
type fakeClock struct {
	sleeps []time.Duration
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.sleeps = append(c.sleeps, d)
	return nil
}

// execResult decodes a submission result the way the chain returns it, so
// the raw status JSON is kept.
func execResult(t *testing.T, txHash, statusJSON string) domain.ExecutionResult {
	t.Helper()
	var res domain.ExecutionResult
	body := `{"execution_info":{"tx_hash":"` + txHash + `","status":` + statusJSON + `}}`
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	return res
}
