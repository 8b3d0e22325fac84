package domain

import "errors"

var (
	// ErrInvalidURL is returned when a tweet URL is empty, not absolute,
	// on a host that is not allowed, or has no status/<digits> segment.
	ErrInvalidURL = errors.New("invalid tweet URL")

	// ErrInvalidAmount is returned when a tip amount is not a positive
	// decimal with at most AmountDecimals fractional digits.
	ErrInvalidAmount = errors.New("invalid tip amount")

	// ErrWalletNotConnected is returned when a workflow needs a signer
	// and the wallet session is not connected.
	ErrWalletNotConnected = errors.New("wallet not connected")

	// ErrUnknownWallet is returned when connecting to a wallet that is not configured.
	ErrUnknownWallet = errors.New("unknown wallet")

	// ErrNoIngestionReference is returned when the oracle answered the
	// ingestion request without an object id. Workflows treat it as a
	// silent no-op.
	ErrNoIngestionReference = errors.New("ingestion returned no object reference")

	// ErrDataNotReady is returned when the author id did not appear
	// within the polling budget.
	ErrDataNotReady = errors.New("oracle data not ready")

	// ErrTipInProgress is returned when a tip for the same tweet is already running.
	ErrTipInProgress = errors.New("tip already in progress for this tweet")

	// ErrSessionOwned is returned when a client acts on a wallet session
	// another client connected.
	ErrSessionOwned = errors.New("wallet session belongs to another client")

	// ErrRateLimited is returned when a client submits tips faster than allowed.
	ErrRateLimited = errors.New("too many requests")

	// ErrPreviewUnavailable is returned when tweet previews are disabled or
	// the page could not be read.
	ErrPreviewUnavailable = errors.New("tweet preview unavailable")
)
