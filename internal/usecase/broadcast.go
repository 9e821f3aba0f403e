package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mantrachain/dapp-template/internal/domain"
)

// executeTx estimates, signs and broadcasts msgs, returning the included
// result. A non-zero result code is returned as a *domain.TxFailedError.
func executeTx(ctx context.Context, fees *FeeEstimator, s *Session, msgs []domain.Msg, policy domain.FeePolicy) (*domain.TxResult, error) {
	estimate, err := fees.Estimate(ctx, s, msgs, policy)
	if err != nil {
		return nil, err
	}

	txBytes, err := s.Client.Sign(ctx, s.Signer, msgs, estimate.Fee, "")
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	res, err := s.Client.Broadcast(ctx, txBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to broadcast transaction: %w", err)
	}
	if err := res.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// codeIDFromResult reads the code id emitted by a store code transaction
func codeIDFromResult(res *domain.TxResult) (uint64, error) {
	raw, ok := res.Attribute("store_code", "code_id")
	if !ok {
		return 0, fmt.Errorf("code_id not found in transaction %s events", res.TxHash)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid code_id %q: %w", raw, err)
	}
	return id, nil
}
