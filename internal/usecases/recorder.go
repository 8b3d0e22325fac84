package usecases

import (
	"context"

	"tweet-tipping/internal/domain"
	"tweet-tipping/pkg/log"
)

// Recorder writes finished workflows to the ledger and publishes them as
// events. Both sinks are optional, and their failures are logged rather
// than returned: the on-chain outcome has already happened.
type Recorder struct {
	ledger    LedgerWriter
	publisher EventPublisher
}

// NewRecorder creates a recorder. Either sink may be nil.
func NewRecorder(ledger LedgerWriter, publisher EventPublisher) *Recorder {
	return &Recorder{ledger: ledger, publisher: publisher}
}

// Record stores and publishes entry.
func (r *Recorder) Record(ctx context.Context, entry *domain.LedgerEntry) {
	if r == nil {
		return
	}
	// Outcomes are recorded even when the request was cancelled.
	ctx = context.WithoutCancel(ctx)

	if r.ledger != nil {
		if err := r.ledger.Record(ctx, entry); err != nil {
			log.GlobalErrorCtx(ctx, "ledger record failed", "workflow", entry.Workflow, "outcome", entry.Outcome, "error", err)
		}
	}
	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, *entry); err != nil {
			log.GlobalErrorCtx(ctx, "publish outcome failed", "event", entry.EventName(), "error", err)
		}
	}
}
