package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/domain/config"
)

// FeeEstimate is a computed fee together with the inputs that produced it
type FeeEstimate struct {
	Policy        domain.FeePolicy `json:"policy"`
	GasUsed       uint64           `json:"gasUsed"`
	GasAdjustment float64          `json:"gasAdjustment"`
	GasPrice      domain.DecCoin   `json:"gasPrice"`
	Fee           domain.Fee       `json:"fee"`
}

// FeeEstimator simulates messages and prices the resulting gas
type FeeEstimator struct {
	oracle GasPriceOracle
	log    *slog.Logger
}

// NewFeeEstimator creates a new FeeEstimator
func NewFeeEstimator(oracle GasPriceOracle, log *slog.Logger) *FeeEstimator {
	return &FeeEstimator{
		oracle: oracle,
		log:    log,
	}
}

// Estimate computes the fee for msgs under policy.
//
// The oracle policy pads simulated gas by 1.2 and prices it with the live
// feemarket price; oracle failures are returned wrapped in
// domain.ErrGasPriceUnavailable. The auto policy pads by 1.3 and uses the
// network's static gas price.
func (e *FeeEstimator) Estimate(ctx context.Context, s *Session, msgs []domain.Msg, policy domain.FeePolicy) (*FeeEstimate, error) {
	if err := requireSession(s); err != nil {
		return nil, err
	}

	var adjustment float64
	switch policy {
	case domain.FeePolicyOracle:
		adjustment = domain.OracleGasAdjustment
	case domain.FeePolicyAuto:
		adjustment = domain.AutoGasAdjustment
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFeePolicy, policy)
	}

	gasUsed, err := s.Client.Simulate(ctx, s.Signer, msgs)
	if err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}
	gas := domain.AdjustGas(gasUsed, adjustment)
	e.log.Debug("simulated", "gasUsed", gasUsed, "gas", gas, "policy", policy)

	price := s.Network.GasPrice
	if policy == domain.FeePolicyOracle {
		price, err = e.oracle.GasPrice(ctx)
		if err != nil {
			e.log.Error("gas price oracle failed", "error", err)
			return nil, fmt.Errorf("%w: %w", domain.ErrGasPriceUnavailable, err)
		}
		e.log.Debug("fetched gas price", "price", price.String())
	}

	fee, err := domain.CalculateFee(gas, price)
	if err != nil {
		return nil, err
	}

	return &FeeEstimate{
		Policy:        policy,
		GasUsed:       gasUsed,
		GasAdjustment: adjustment,
		GasPrice:      price,
		Fee:           fee,
	}, nil
}

// EstimateFeeParams contains parameters for a dry-run fee estimate
type EstimateFeeParams struct {
	Msg    domain.ExecuteMsg
	Policy domain.FeePolicy
}

// EstimateFeeResult contains the estimate and the call it was made for
type EstimateFeeResult struct {
	Action          string       `json:"action"`
	ContractAddress string       `json:"contractAddress"`
	Sender          string       `json:"sender"`
	Estimate        *FeeEstimate `json:"estimate,omitempty"`
}

// EstimateFee estimates the fee of a counter call without broadcasting it
type EstimateFee struct {
	config   *config.RuntimeConfig
	resolver *ResolveAppConfig
	sessions SessionProvider
	fees     *FeeEstimator
}

// NewEstimateFee creates a new EstimateFee use case
func NewEstimateFee(cfg *config.RuntimeConfig, resolver *ResolveAppConfig, sessions SessionProvider, fees *FeeEstimator) *EstimateFee {
	return &EstimateFee{
		config:   cfg,
		resolver: resolver,
		sessions: sessions,
		fees:     fees,
	}
}

// Run executes the use case
func (uc *EstimateFee) Run(ctx context.Context, params EstimateFeeParams) (*EstimateFeeResult, error) {
	appCfg, err := uc.resolver.Run(ctx, uc.config.Chain)
	if err != nil {
		return nil, err
	}

	session, err := uc.sessions.Connect(ctx, appCfg.Network)
	if err != nil {
		return nil, err
	}

	msg, err := composeExecute(session, appCfg.ContractAddress, params.Msg)
	if err != nil {
		return nil, err
	}

	estimate, err := uc.fees.Estimate(ctx, session, []domain.Msg{msg}, params.Policy)
	if err != nil {
		return nil, err
	}

	return &EstimateFeeResult{
		Action:          params.Msg.Action(),
		ContractAddress: appCfg.ContractAddress,
		Sender:          session.Address,
		Estimate:        estimate,
	}, nil
}

// composeExecute wraps a counter message for the session's sender
func composeExecute(s *Session, contract string, msg domain.ExecuteMsg) (*domain.MsgExecuteContract, error) {
	if msg.Action() == "" {
		return nil, fmt.Errorf("empty execute message")
	}
	body, err := msg.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to encode execute message: %w", err)
	}
	return &domain.MsgExecuteContract{
		Sender:   s.Address,
		Contract: contract,
		Msg:      body,
	}, nil
}
