package usecases

import "tweet-tipping/internal/domain"

// Result is how a tip or claim ended. Notice is nil when nothing should be
// shown to the user.
type Result struct {
	Workflow domain.Workflow `json:"workflow"`
	Outcome  domain.Outcome  `json:"outcome"`
	Notice   *domain.Notice  `json:"notice,omitempty"`
	TweetID  string          `json:"tweet_id,omitempty"`
	AuthorID string          `json:"author_id,omitempty"`
	Amount   string          `json:"amount,omitempty"`
	Sender   string          `json:"sender,omitempty"`
	TxHash   string          `json:"tx_hash,omitempty"`
	// Status is the raw execution status of a submitted transaction.
	Status string `json:"status,omitempty"`
	// Err is the cause of an OutcomeError result.
	Err error `json:"-"`
}

func notice(level domain.NoticeLevel, msg string) *domain.Notice {
	return &domain.Notice{Level: level, Message: msg}
}

// failWith turns an unexpected error into the generic error result. The
// notice carries the error text as is.
func (r Result) failWith(err error) Result {
	r.Outcome = domain.OutcomeError
	r.Notice = notice(domain.NoticeError, err.Error())
	r.Err = err
	return r
}

func (r Result) entry() *domain.LedgerEntry {
	e := &domain.LedgerEntry{
		Workflow: r.Workflow,
		TweetID:  r.TweetID,
		AuthorID: r.AuthorID,
		Amount:   r.Amount,
		Sender:   r.Sender,
		TxHash:   r.TxHash,
		Outcome:  r.Outcome,
		Detail:   r.Status,
	}
	if r.Err != nil {
		e.Detail = r.Err.Error()
	}
	return e
}
