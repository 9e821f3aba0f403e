package cli

import (
	"fmt"

	"github.com/mantrachain/dapp-template/internal/cli/render"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeploymentsCmd creates the deployments command
func NewDeploymentsCmd() *cobra.Command {
	var (
		network string
		name    string
	)

	cmd := &cobra.Command{
		Use:     "deployments",
		Aliases: []string{"ls"},
		Short:   "List saved deployment records",
		Long: `List the deployment and migration records saved under deployment/.

The list can be filtered by network and record name.`,
		Example: `  dapp deployments
  dapp deployments --network dukong --name counter`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListDeployments.Run(cmd.Context(), usecase.ListDeploymentsParams{
				Network: network,
				Name:    name,
			})
			finishProgress(app)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			return render.NewDeploymentsRenderer(cmd.OutOrStdout()).RenderDeploymentList(result)
		},
	}

	cmd.Flags().StringVarP(&network, "network", "n", "", "Only records for this network (dukong, mainnet)")
	cmd.Flags().StringVar(&name, "name", "", "Only records with this name")

	cmd.AddCommand(newDeploymentsShowCmd())

	return cmd
}

func newDeploymentsShowCmd() *cobra.Command {
	var network string

	cmd := &cobra.Command{
		Use:   "show [record]",
		Short: "Show one deployment record",
		Long: `Show one deployment or migration record.

The record can be given as:
- Record name: "counter" (the newest record wins)
- Contract address: "mantra1..."
- Record file name: "counter_2025_01_31_10_00_00.json"

Without an argument, pick the record interactively.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ShowDeploymentParams{Network: network}
			if len(args) == 1 {
				params.Ref = args[0]
			}

			record, err := app.ShowDeployment.Run(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to resolve deployment: %w", err)
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), record)
			}
			return render.NewDeploymentsRenderer(cmd.OutOrStdout()).RenderDeployment(record)
		},
	}

	cmd.Flags().StringVarP(&network, "network", "n", "", "Only look at records for this network")

	return cmd
}
