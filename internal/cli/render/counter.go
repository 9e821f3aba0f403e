package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/mantrachain/dapp-template/pkg/format"
	"github.com/samber/lo"
)

// CounterRenderer renders the counter value and contract call outcomes
type CounterRenderer struct {
	out io.Writer
}

// NewCounterRenderer creates a new counter renderer
func NewCounterRenderer(out io.Writer) *CounterRenderer {
	return &CounterRenderer{out: out}
}

// RenderCount renders the current counter value
func (r *CounterRenderer) RenderCount(result *usecase.GetCounterResult) error {
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Count:"), valueStyle.Sprint(result.Count))
	fmt.Fprintf(r.out, "%s %s (%s)\n",
		labelStyle.Sprint("Contract:"),
		addressStyle.Sprint(format.ShortenAddress(result.ContractAddress)),
		result.Chain)
	return nil
}

// RenderSubmission renders a finished contract call. Toasts carry the
// user-facing outcome; this adds the details.
func (r *CounterRenderer) RenderSubmission(sub *usecase.Submission) error {
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("State:"), stateStyle(sub.State).Sprint(Title(string(sub.State))))
	if sub.Fee != nil {
		fmt.Fprintf(r.out, "%s %s (gas %d)\n", labelStyle.Sprint("Fee:"), coinsString(sub.Fee.Fee.Amount), sub.Fee.Fee.Gas)
	}
	if sub.Result != nil {
		fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Tx:"), hashStyle.Sprint(sub.Result.TxHash))
		if sub.Result.Height > 0 {
			fmt.Fprintf(r.out, "%s %d\n", labelStyle.Sprint("Height:"), sub.Result.Height)
		}
	}
	if sub.TxURL != "" {
		fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Explorer:"), sub.TxURL)
	}
	if sub.Counter != nil {
		fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Count:"), valueStyle.Sprint(sub.Counter.Count))
	}
	if sub.Balances != nil && sub.Balances.Enabled {
		fmt.Fprintf(r.out, "%s %s %s\n", labelStyle.Sprint("Balance:"), sub.Balances.Tracked.DisplayAmount, sub.Balances.Tracked.Denom)
	}
	return nil
}

func stateStyle(state domain.TxState) *color.Color {
	switch state {
	case domain.TxStateSucceeded:
		return successStyle
	case domain.TxStateFailed:
		return failureStyle
	default:
		return warningStyle
	}
}

func coinsString(coins []domain.Coin) string {
	if len(coins) == 0 {
		return "0"
	}
	return strings.Join(lo.Map(coins, func(c domain.Coin, _ int) string {
		return c.String()
	}), ",")
}
