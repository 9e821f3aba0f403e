package render

import (
	"fmt"
	"io"

	"github.com/mantrachain/dapp-template/internal/usecase"
)

// FeeRenderer renders a dry-run fee estimate
type FeeRenderer struct {
	out io.Writer
}

// NewFeeRenderer creates a new fee renderer
func NewFeeRenderer(out io.Writer) *FeeRenderer {
	return &FeeRenderer{out: out}
}

// Render shows the inputs and the computed fee
func (r *FeeRenderer) Render(result *usecase.EstimateFeeResult) error {
	est := result.Estimate
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Action:"), valueStyle.Sprint(result.Action))
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Sender:"), addressStyle.Sprint(result.Sender))
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Contract:"), addressStyle.Sprint(result.ContractAddress))
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Policy:"), est.Policy)
	fmt.Fprintf(r.out, "%s %d\n", labelStyle.Sprint("Simulated gas:"), est.GasUsed)
	fmt.Fprintf(r.out, "%s %d (x%g)\n", labelStyle.Sprint("Gas limit:"), est.Fee.Gas, est.GasAdjustment)
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Gas price:"), est.GasPrice.String())
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Fee:"), valueStyle.Sprint(coinsString(est.Fee.Amount)))
	return nil
}
