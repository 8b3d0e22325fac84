package usecases

import (
	"context"
	"time"

	"tweet-tipping/internal/domain"
	"tweet-tipping/pkg/log"
)

// ClaimConfig holds the claim workflow settings.
type ClaimConfig struct {
	Contract      string
	SubmitTimeout time.Duration
}

// ClaimUseCase claims the tips received by the connected account.
type ClaimUseCase struct {
	signers   SignerSource
	submitter Submitter
	recorder  *Recorder
	cfg       ClaimConfig
	loading   loadingFlag
}

// NewClaimUseCase creates the claim workflow. recorder may be nil.
func NewClaimUseCase(signers SignerSource, submitter Submitter, recorder *Recorder, cfg ClaimConfig) *ClaimUseCase {
	if cfg.Contract == "" {
		cfg.Contract = domain.DefaultContractAddress
	}
	return &ClaimUseCase{signers: signers, submitter: submitter, recorder: recorder, cfg: cfg}
}

// Loading reports whether a claim is in progress.
func (uc *ClaimUseCase) Loading() bool {
	return uc.loading.on()
}

// Execute submits claim_tip for the connected account. It returns an error
// only when no wallet is connected.
func (uc *ClaimUseCase) Execute(ctx context.Context) (Result, error) {
	signer, err := uc.signers.Signer()
	if err != nil {
		return Result{}, err
	}

	defer uc.loading.start()()

	ctx = log.WithFields(ctx, "workflow", "claim")
	res := Result{Workflow: domain.WorkflowClaim, Sender: signer.Address()}

	submitCtx, cancel := submitContext(ctx, uc.cfg.SubmitTimeout)
	defer cancel()
	exec, err := uc.submitter.Submit(submitCtx, signer, domain.ClaimCall(uc.cfg.Contract))
	if err != nil {
		res = res.failWith(err)
		log.GlobalErrorCtx(ctx, "claim failed", "error", err)
		uc.recorder.Record(ctx, res.entry())
		return res, nil
	}

	status := exec.ExecutionInfo.Status
	res.TxHash = exec.ExecutionInfo.TxHash
	res.Status = status.String()

	code, hasCode := status.AbortCode()
	switch {
	case status.Executed():
		res.Outcome = domain.OutcomeSucceeded
		res.Notice = notice(domain.NoticeSuccess, domain.MsgClaimSucceeded)
	case hasCode && code == domain.AbortNothingToClaim:
		res.Outcome = domain.OutcomeNothingToClaim
		res.Notice = notice(domain.NoticeError, domain.MsgNothingToClaim)
	default:
		res.Outcome = domain.OutcomeFailed
		res.Notice = notice(domain.NoticeError, "Claim failed: "+res.Status)
	}

	log.GlobalInfoCtx(ctx, "claim finished", "outcome", res.Outcome, "tx_hash", res.TxHash)
	uc.recorder.Record(ctx, res.entry())
	return res, nil
}
