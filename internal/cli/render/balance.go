package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/mantrachain/dapp-template/pkg/format"
)

// BalanceRenderer renders account balances
type BalanceRenderer struct {
	out io.Writer
}

// NewBalanceRenderer creates a new balance renderer
func NewBalanceRenderer(out io.Writer) *BalanceRenderer {
	return &BalanceRenderer{out: out}
}

// Render shows the tracked fee denom balance followed by every coin held
func (r *BalanceRenderer) Render(result *usecase.GetBalancesResult) error {
	if !result.Enabled {
		fmt.Fprintln(r.out, FormatWarning("No wallet connected. Set MNEMONIC or run `dapp wallet import`."))
		return nil
	}

	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Address:"), addressStyle.Sprint(result.Address))
	fmt.Fprintf(r.out, "%s %s %s\n",
		labelStyle.Sprint("Balance:"),
		valueStyle.Sprint(result.Tracked.DisplayAmount),
		result.Tracked.Denom)

	if len(result.Balances) == 0 {
		return nil
	}

	fmt.Fprintln(r.out)
	t := newTable()
	t.AppendHeader(table.Row{"Denom", "Amount", "Display"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	for _, coin := range result.Balances {
		t.AppendRow(table.Row{
			coin.Denom,
			coin.Amount,
			format.FormatTokenBalance(coin.Amount, format.DefaultDecimals),
		})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}
