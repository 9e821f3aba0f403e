package cli

import (
	"fmt"

	"github.com/mantrachain/dapp-template/internal/cli/render"
	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/spf13/cobra"
)

// NewFeeCmd creates the fee command group
func NewFeeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fee",
		Short: "Estimate transaction fees",
	}

	cmd.AddCommand(newFeeEstimateCmd())

	return cmd
}

func newFeeEstimateCmd() *cobra.Command {
	var (
		to     uint64
		policy string
	)

	cmd := &cobra.Command{
		Use:   "estimate <increment|reset>",
		Short: "Estimate the fee of a counter call without sending it",
		Long: `Simulate a counter call and price it without broadcasting.

Each action uses the fee policy it is sent with unless --policy is given:
increment uses the gas price oracle, reset uses the static gas price.`,
		Example: `  dapp fee estimate increment
  dapp fee estimate reset --to 5
  dapp fee estimate increment --policy auto`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"increment", "reset"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params, err := feeEstimateParams(args[0], to, policy)
			if err != nil {
				return err
			}

			result, err := app.EstimateFee.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			return render.NewFeeRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().Uint64Var(&to, "to", 0, "Value for the reset action")
	cmd.Flags().StringVar(&policy, "policy", "", "Fee policy to use (oracle, auto)")

	return cmd
}

// feeEstimateParams maps an action name to its message and default fee policy
func feeEstimateParams(action string, to uint64, policy string) (usecase.EstimateFeeParams, error) {
	var params usecase.EstimateFeeParams
	switch action {
	case "increment":
		params = usecase.EstimateFeeParams{Msg: domain.IncrementMsg(), Policy: domain.FeePolicyOracle}
	case "reset":
		params = usecase.EstimateFeeParams{Msg: domain.ResetMsg(to), Policy: domain.FeePolicyAuto}
	default:
		return params, fmt.Errorf("unknown action %q (valid: increment, reset)", action)
	}

	switch domain.FeePolicy(policy) {
	case "":
	case domain.FeePolicyOracle, domain.FeePolicyAuto:
		params.Policy = domain.FeePolicy(policy)
	default:
		return params, fmt.Errorf("%w: %q", domain.ErrUnknownFeePolicy, policy)
	}
	return params, nil
}
