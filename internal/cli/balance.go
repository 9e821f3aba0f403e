package cli

import (
	"github.com/mantrachain/dapp-template/internal/cli/render"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/spf13/cobra"
)

// NewBalanceCmd creates the balance command
func NewBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [address]",
		Short: "Show account balances",
		Long: `Show all balances of an account on the selected chain.

Defaults to the wallet address. Without a wallet and without an address
nothing is queried.`,
		Example: `  dapp balance
  dapp balance mantra1...`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var address string
			if len(args) == 1 {
				address = args[0]
			} else {
				address, err = app.ManageWallet.Address(cmd.Context())
				if err != nil {
					return err
				}
			}

			result, err := app.GetBalances.Run(cmd.Context(), usecase.GetBalancesParams{Address: address})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			return render.NewBalanceRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	return cmd
}
