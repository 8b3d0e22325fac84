package domain

// Outcome classifies how a tip or claim ended.
type Outcome string

const (
	OutcomeSucceeded      Outcome = "succeeded"
	OutcomeFailed         Outcome = "failed"
	OutcomeNothingToClaim Outcome = "nothing_to_claim"
	OutcomeDataNotReady   Outcome = "data_not_ready"
	OutcomeSkipped        Outcome = "skipped" // ingestion gave no object reference
	OutcomeError          Outcome = "error"
)

// NoticeLevel is the severity of a user-facing notice.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeInfo    NoticeLevel = "info"
)

// Notice is a message shown to the user after a workflow finishes.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

// User-facing messages.
const (
	MsgTipSent        = "Tip sent successfully"
	MsgOracleLoading  = "Please try again later. The Oracle is loading tweets."
	MsgClaimSucceeded = "Claim tips successfully"
	MsgNothingToClaim = "No tips to claim"
)

// AbortNothingToClaim is the claim_tip abort code for an empty balance.
const AbortNothingToClaim = 3
