package domain

import "time"

// Workflow names the user action a ledger entry records.
type Workflow string

const (
	WorkflowTip   Workflow = "tip"
	WorkflowClaim Workflow = "claim"
)

// LedgerEntry records how one tip or claim ended.
type LedgerEntry struct {
	ID          string    `db:"id" json:"id"`
	Workflow    Workflow  `db:"workflow" json:"workflow"`
	TweetID     string    `db:"tweet_id" json:"tweet_id,omitempty"`
	AuthorID    string    `db:"author_id" json:"author_id,omitempty"`
	Amount      string    `db:"amount" json:"amount,omitempty"` // scaled integer units
	Sender      string    `db:"sender" json:"sender,omitempty"`
	TxHash      string    `db:"tx_hash" json:"tx_hash,omitempty"`
	Outcome     Outcome   `db:"outcome" json:"outcome"`
	Detail      string    `db:"detail" json:"detail,omitempty"`
	Fingerprint string    `db:"fingerprint" json:"fingerprint"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// EventName is the routing name of the entry, e.g. tip.sent or claim.failed.
func (e LedgerEntry) EventName() string {
	var suffix string
	switch e.Outcome {
	case OutcomeSucceeded:
		suffix = "sent"
		if e.Workflow == WorkflowClaim {
			suffix = "claimed"
		}
	case OutcomeNothingToClaim:
		suffix = "empty"
	case OutcomeDataNotReady:
		suffix = "not_ready"
	case OutcomeSkipped:
		suffix = "skipped"
	default:
		suffix = "failed"
	}
	return string(e.Workflow) + "." + suffix
}
