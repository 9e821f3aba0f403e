package cli

import (
	"github.com/mantrachain/dapp-template/internal/cli/render"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/spf13/cobra"
)

// NewChainCmd creates the chain command
func NewChainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Show or change the selected chain",
		Long: `Manage the chain selection stored in .dapp/config.local.json

The selection picks the network and counter contract used by every command.
It starts as testnet. --chain and DAPP_CHAIN override it for a single run.

When run without subcommands, displays the current selection.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowChain.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			return render.NewChainRenderer(cmd.OutOrStdout()).RenderShow(result)
		},
	}

	cmd.AddCommand(newChainSetCmd())
	cmd.AddCommand(newChainSelectCmd())

	return cmd
}

func newChainSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "set <mainnet|testnet>",
		Short:     "Set the chain selection",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"mainnet", "testnet"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetChain(cmd, usecase.SetChainParams{Chain: args[0]})
		},
	}
}

func newChainSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select",
		Short: "Pick the chain interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetChain(cmd, usecase.SetChainParams{Interactive: true})
		},
	}
}

func runSetChain(cmd *cobra.Command, params usecase.SetChainParams) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.SetChain.Run(cmd.Context(), params)
	if err != nil {
		return err
	}

	if app.Config.JSON {
		return render.RenderJSON(cmd.OutOrStdout(), result)
	}
	return render.NewChainRenderer(cmd.OutOrStdout()).RenderSet(result)
}
