package usecases

import (
	"context"
	"errors"
	"time"

	"tweet-tipping/internal/domain"
	"tweet-tipping/pkg/log"
)

// TipRequest is the tip form as submitted.
type TipRequest struct {
	URL    string `json:"url" form:"url"`
	Amount string `json:"amount" form:"amount"`
}

// DefaultSubmitTimeout bounds a transaction once it is handed to the wallet.
const DefaultSubmitTimeout = 3 * time.Minute

// TipConfig holds the tip workflow settings.
type TipConfig struct {
	Contract     string
	AllowedHosts []string
	// SubmitTimeout bounds signing and execution. Cancelling the caller's
	// context does not abort a submitted transaction.
	SubmitTimeout time.Duration
}

// TipUseCase sends a tip to the author of a tweet.
type TipUseCase struct {
	resolver  *ResolveAuthorUseCase
	signers   SignerSource
	submitter Submitter
	guard     InflightGuard
	recorder  *Recorder
	cfg       TipConfig
	loading   loadingFlag
}

// NewTipUseCase creates the tip workflow. guard and recorder may be nil.
func NewTipUseCase(resolver *ResolveAuthorUseCase, signers SignerSource, submitter Submitter, guard InflightGuard, recorder *Recorder, cfg TipConfig) *TipUseCase {
	if cfg.Contract == "" {
		cfg.Contract = domain.DefaultContractAddress
	}
	if len(cfg.AllowedHosts) == 0 {
		cfg.AllowedHosts = domain.DefaultAllowedHosts
	}
	return &TipUseCase{
		resolver:  resolver,
		signers:   signers,
		submitter: submitter,
		guard:     guard,
		recorder:  recorder,
		cfg:       cfg,
	}
}

// Validate checks the form fields without touching the wallet.
func (uc *TipUseCase) Validate(req TipRequest) (domain.TweetReference, domain.Amount, error) {
	ref, err := domain.ParseTweetReference(req.URL, uc.cfg.AllowedHosts)
	if err != nil {
		return domain.TweetReference{}, domain.Amount{}, err
	}
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return domain.TweetReference{}, domain.Amount{}, err
	}
	return ref, amount, nil
}

// CanSubmit reports whether the tip control should be enabled.
func (uc *TipUseCase) CanSubmit(req TipRequest, walletConnected bool) bool {
	if !walletConnected {
		return false
	}
	_, _, err := uc.Validate(req)
	return err == nil
}

// Loading reports whether a tip is in progress.
func (uc *TipUseCase) Loading() bool {
	return uc.loading.on()
}

// Execute runs the tip workflow. Validation, wallet and in-flight errors
// are returned as errors before anything is sent. Everything after that
// ends in a Result.
func (uc *TipUseCase) Execute(ctx context.Context, req TipRequest) (Result, error) {
	ref, amount, err := uc.Validate(req)
	if err != nil {
		return Result{}, err
	}
	signer, err := uc.signers.Signer()
	if err != nil {
		return Result{}, err
	}

	defer uc.loading.start()()

	if uc.guard != nil {
		release, err := uc.guard.Acquire(ctx, ref.TweetID)
		if err != nil {
			return Result{}, err
		}
		defer release()
	}

	ctx = log.WithFields(ctx, "workflow", "tip", "tweet_id", ref.TweetID)

	res := Result{
		Workflow: domain.WorkflowTip,
		TweetID:  ref.TweetID,
		Amount:   amount.Units().String(),
		Sender:   signer.Address(),
	}
	res = uc.run(ctx, ref, amount, res)

	if res.Outcome == domain.OutcomeError {
		log.GlobalErrorCtx(ctx, "tip failed", "error", res.Err)
	} else {
		log.GlobalInfoCtx(ctx, "tip finished", "outcome", res.Outcome, "tx_hash", res.TxHash)
	}
	uc.recorder.Record(ctx, res.entry())
	return res, nil
}

func (uc *TipUseCase) run(ctx context.Context, ref domain.TweetReference, amount domain.Amount, res Result) Result {
	resolution, err := uc.resolver.Execute(ctx, ref)
	switch {
	case errors.Is(err, domain.ErrNoIngestionReference):
		res.Outcome = domain.OutcomeSkipped
		return res
	case errors.Is(err, domain.ErrDataNotReady):
		res.Outcome = domain.OutcomeDataNotReady
		res.Notice = notice(domain.NoticeError, domain.MsgOracleLoading)
		return res
	case err != nil:
		return res.failWith(err)
	}
	res.AuthorID = resolution.AuthorID

	// The wallet may have changed while polling; sign with the current one.
	signer, err := uc.signers.Signer()
	if err != nil {
		return res.failWith(err)
	}
	res.Sender = signer.Address()

	submitCtx, cancel := submitContext(ctx, uc.cfg.SubmitTimeout)
	defer cancel()
	exec, err := uc.submitter.Submit(submitCtx, signer, domain.TipCall(uc.cfg.Contract, resolution.AuthorID, amount))
	if err != nil {
		return res.failWith(err)
	}

	status := exec.ExecutionInfo.Status
	res.TxHash = exec.ExecutionInfo.TxHash
	res.Status = status.String()
	if status.Executed() {
		res.Outcome = domain.OutcomeSucceeded
		res.Notice = notice(domain.NoticeSuccess, domain.MsgTipSent)
		return res
	}
	res.Outcome = domain.OutcomeFailed
	res.Notice = notice(domain.NoticeError, "Tip failed: "+res.Status)
	return res
}

// submitContext keeps ctx's values but not its cancellation. Once a call is
// with the wallet it runs until it completes or timeout expires.
func submitContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultSubmitTimeout
	}
	return context.WithTimeout(context.WithoutCancel(ctx), timeout)
}
