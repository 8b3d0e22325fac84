package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweet-tipping/internal/domain"
)

func TestNewMessage_EventNames(t *testing.T) {
	tests := []struct {
		workflow domain.Workflow
		outcome  domain.Outcome
		want     string
	}{
		{domain.WorkflowTip, domain.OutcomeSucceeded, "tip.sent"},
		{domain.WorkflowTip, domain.OutcomeFailed, "tip.failed"},
		{domain.WorkflowTip, domain.OutcomeError, "tip.failed"},
		{domain.WorkflowTip, domain.OutcomeDataNotReady, "tip.not_ready"},
		{domain.WorkflowTip, domain.OutcomeSkipped, "tip.skipped"},
		{domain.WorkflowClaim, domain.OutcomeSucceeded, "claim.claimed"},
		{domain.WorkflowClaim, domain.OutcomeNothingToClaim, "claim.empty"},
		{domain.WorkflowClaim, domain.OutcomeFailed, "claim.failed"},
	}
	for _, tt := range tests {
		msg := NewMessage(domain.LedgerEntry{Workflow: tt.workflow, Outcome: tt.outcome}, time.Now())
		assert.Equal(t, tt.want, msg.Event, "%s/%s", tt.workflow, tt.outcome)
	}
}

func TestNewMessage_JSONShape(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))
	msg := NewMessage(domain.LedgerEntry{
		ID:       "id-1",
		Workflow: domain.WorkflowTip,
		TweetID:  "42",
		Amount:   "150000000",
		Outcome:  domain.OutcomeSucceeded,
	}, now)

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "tip.sent", decoded["event"])
	assert.Equal(t, "2026-03-01T09:00:00Z", decoded["timestamp"])
	entry := decoded["entry"].(map[string]any)
	assert.Equal(t, "42", entry["tweet_id"])
	assert.Equal(t, "150000000", entry["amount"])
	assert.NotContains(t, entry, "tx_hash")
}
