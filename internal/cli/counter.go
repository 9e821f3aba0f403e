package cli

import (
	"github.com/mantrachain/dapp-template/internal/cli/render"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/spf13/cobra"
)

// NewCounterCmd creates the counter command group
func NewCounterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "counter",
		Short: "Read and update the counter contract",
		Long: `Read and update the counter contract of the selected chain.

When run without subcommands, shows the current count.`,
		RunE: runCounterGet,
	}

	cmd.AddCommand(newCounterGetCmd())
	cmd.AddCommand(newCounterIncrementCmd())
	cmd.AddCommand(newCounterResetCmd())

	return cmd
}

func newCounterGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the current count",
		Args:  cobra.NoArgs,
		RunE:  runCounterGet,
	}
}

func runCounterGet(cmd *cobra.Command, args []string) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.GetCounter.Run(cmd.Context(), usecase.GetCounterParams{Refresh: true})
	if err != nil {
		return err
	}

	if app.Config.JSON {
		return render.RenderJSON(cmd.OutOrStdout(), result)
	}
	return render.NewCounterRenderer(cmd.OutOrStdout()).RenderCount(result)
}

func newCounterIncrementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "increment",
		Short: "Increment the counter by one",
		Long: `Increment the counter by one.

The fee is simulated, padded by 1.2 and priced with the live gas price
from the feemarket oracle.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			sub, err := app.SubmitContractCall.Increment(cmd.Context())
			return renderSubmission(cmd, app.Config.JSON, sub, err)
		},
	}
}

func newCounterResetCmd() *cobra.Command {
	var to uint64

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the counter to a value",
		Long: `Reset the counter to a value (0 unless --to is given).

The fee is simulated, padded by 1.3 and priced with the network's static
gas price.`,
		Example: `  dapp counter reset
  dapp counter reset --to 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			sub, err := app.SubmitContractCall.Reset(cmd.Context(), to)
			return renderSubmission(cmd, app.Config.JSON, sub, err)
		},
	}

	cmd.Flags().Uint64Var(&to, "to", 0, "Value to reset the counter to")

	return cmd
}

// renderSubmission prints whatever the submission got to before returning its error
func renderSubmission(cmd *cobra.Command, asJSON bool, sub *usecase.Submission, err error) error {
	if sub != nil {
		var rerr error
		if asJSON {
			rerr = render.RenderJSON(cmd.OutOrStdout(), submissionOutput(sub))
		} else if sub.Result != nil || err == nil {
			rerr = render.NewCounterRenderer(cmd.OutOrStdout()).RenderSubmission(sub)
		}
		if err == nil {
			err = rerr
		}
	}
	return err
}

type submissionJSON struct {
	Action   string                     `json:"action"`
	State    string                     `json:"state"`
	Fee      any                        `json:"fee,omitempty"`
	Result   any                        `json:"result,omitempty"`
	TxURL    string                     `json:"txUrl,omitempty"`
	Error    string                     `json:"error,omitempty"`
	Counter  *usecase.GetCounterResult  `json:"counter,omitempty"`
	Balances *usecase.GetBalancesResult `json:"balances,omitempty"`
}

func submissionOutput(sub *usecase.Submission) submissionJSON {
	out := submissionJSON{
		Action:   sub.Action,
		State:    string(sub.State),
		TxURL:    sub.TxURL,
		Counter:  sub.Counter,
		Balances: sub.Balances,
	}
	if sub.Fee != nil {
		out.Fee = sub.Fee.Fee
	}
	if sub.Result != nil {
		out.Result = sub.Result
	}
	if sub.Err != nil {
		out.Error = sub.Err.Error()
	}
	return out
}
