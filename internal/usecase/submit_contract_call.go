package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/domain/config"
)

// SubmitParams describes one counter contract call
type SubmitParams struct {
	Msg    domain.ExecuteMsg
	Policy domain.FeePolicy
}

// Submission is the request-scoped outcome of one contract call
type Submission struct {
	Action string
	State  domain.TxState
	Fee    *FeeEstimate
	Result *domain.TxResult
	TxURL  string
	Err    error

	// Refetched query results after a successful call; nil when the refetch failed
	Counter  *GetCounterResult
	Balances *GetBalancesResult
}

// submissionMessages holds the user-facing texts for one action
type submissionMessages struct {
	successTitle    string
	successDuration time.Duration
	failureTitle    string
	failureDuration time.Duration
}

var actionMessages = map[string]submissionMessages{
	"increment": {
		successTitle:    "Counter incremented!",
		successDuration: 10 * time.Second,
		failureTitle:    "Error occured during increment",
		failureDuration: 5 * time.Second,
	},
	"reset": {
		successTitle:    "Counter value reset",
		successDuration: 10 * time.Second,
		failureTitle:    "Reset failed!",
		failureDuration: 10 * time.Second,
	},
}

func messagesFor(action string) submissionMessages {
	if m, ok := actionMessages[action]; ok {
		return m
	}
	return submissionMessages{
		successTitle:    "Transaction succeeded",
		successDuration: 10 * time.Second,
		failureTitle:    "Transaction failed",
		failureDuration: 5 * time.Second,
	}
}

// SubmitContractCall signs and broadcasts a counter contract call while
// holding the awaiting-transaction dialog
type SubmitContractCall struct {
	config      *config.RuntimeConfig
	resolver    *ResolveAppConfig
	sessions    SessionProvider
	fees        *FeeEstimator
	dialog      *AwaitingDialog
	cache       QueryCache
	notifier    Notifier
	getCounter  *GetCounter
	getBalances *GetBalances
	log         *slog.Logger
}

// NewSubmitContractCall creates a new SubmitContractCall use case
func NewSubmitContractCall(
	cfg *config.RuntimeConfig,
	resolver *ResolveAppConfig,
	sessions SessionProvider,
	fees *FeeEstimator,
	dialog *AwaitingDialog,
	cache QueryCache,
	notifier Notifier,
	getCounter *GetCounter,
	getBalances *GetBalances,
	log *slog.Logger,
) *SubmitContractCall {
	return &SubmitContractCall{
		config:      cfg,
		resolver:    resolver,
		sessions:    sessions,
		fees:        fees,
		dialog:      dialog,
		cache:       cache,
		notifier:    notifier,
		getCounter:  getCounter,
		getBalances: getBalances,
		log:         log,
	}
}

// Increment adds one to the counter, priced with the live gas price
func (uc *SubmitContractCall) Increment(ctx context.Context) (*Submission, error) {
	return uc.Run(ctx, SubmitParams{Msg: domain.IncrementMsg(), Policy: domain.FeePolicyOracle})
}

// Reset sets the counter to count, priced with the static gas price
func (uc *SubmitContractCall) Reset(ctx context.Context, count uint64) (*Submission, error) {
	return uc.Run(ctx, SubmitParams{Msg: domain.ResetMsg(count), Policy: domain.FeePolicyAuto})
}

// Run executes the call. The returned Submission is never nil; on failure
// it carries State Failed and the same error that is returned.
func (uc *SubmitContractCall) Run(ctx context.Context, params SubmitParams) (sub *Submission, err error) {
	sub = &Submission{
		Action: params.Msg.Action(),
		State:  domain.TxStateIdle,
	}
	texts := messagesFor(sub.Action)

	defer func() {
		if err == nil {
			return
		}
		sub.State = domain.TxStateFailed
		sub.Err = err
		uc.log.Error("transaction failed", "action", sub.Action, "error", err)
		toast := Toast{
			Variant:     ToastDestructive,
			Title:       texts.failureTitle,
			Description: err.Error(),
			Duration:    texts.failureDuration,
		}
		if sub.Result != nil {
			toast.TxHash = sub.Result.TxHash
			toast.TxURL = sub.TxURL
		}
		uc.notifier.Notify(ctx, toast)
	}()

	appCfg, err := uc.resolver.Run(ctx, uc.config.Chain)
	if err != nil {
		return sub, err
	}

	session, err := uc.sessions.Connect(ctx, appCfg.Network)
	if err != nil {
		return sub, err
	}
	if err := requireSession(session); err != nil {
		return sub, err
	}

	if err := uc.dialog.Begin(sub.Action); err != nil {
		return sub, err
	}
	defer uc.dialog.End()

	msg, err := composeExecute(session, appCfg.ContractAddress, params.Msg)
	if err != nil {
		return sub, err
	}
	msgs := []domain.Msg{msg}

	estimate, err := uc.fees.Estimate(ctx, session, msgs, params.Policy)
	if err != nil {
		return sub, err
	}
	sub.Fee = estimate

	sub.State = domain.TxStateSigning
	txBytes, err := session.Client.Sign(ctx, session.Signer, msgs, estimate.Fee, "")
	if err != nil {
		return sub, fmt.Errorf("failed to sign transaction: %w", err)
	}

	sub.State = domain.TxStateBroadcasting
	uc.log.Debug("broadcasting", "action", sub.Action, "gas", estimate.Fee.Gas)
	res, err := session.Client.Broadcast(ctx, txBytes)
	if err != nil {
		return sub, fmt.Errorf("failed to broadcast transaction: %w", err)
	}
	sub.Result = res
	sub.TxURL = appCfg.Network.TxURL(res.TxHash)
	if err := res.Err(); err != nil {
		return sub, err
	}

	sub.State = domain.TxStateSucceeded
	uc.refetch(ctx, session, sub)

	uc.notifier.Notify(ctx, Toast{
		Variant:  ToastSuccess,
		Title:    texts.successTitle,
		TxHash:   res.TxHash,
		TxURL:    sub.TxURL,
		Duration: texts.successDuration,
	})

	return sub, nil
}

// refetch marks the counter and the sender's balances stale and reloads
// them. Refetch failures do not fail the submission.
func (uc *SubmitContractCall) refetch(ctx context.Context, s *Session, sub *Submission) {
	uc.cache.Invalidate(QueryKey{CounterQueryName})
	uc.cache.Invalidate(QueryKey{BalancesQueryName, s.Address})

	counter, err := uc.getCounter.Run(ctx, GetCounterParams{})
	if err != nil {
		uc.log.Warn("failed to refetch counter", "error", err)
	} else {
		sub.Counter = counter
	}

	balances, err := uc.getBalances.Run(ctx, GetBalancesParams{Address: s.Address})
	if err != nil {
		uc.log.Warn("failed to refetch balances", "error", err)
	} else {
		sub.Balances = balances
	}
}
