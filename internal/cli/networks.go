package cli

import (
	"github.com/mantrachain/dapp-template/internal/cli/render"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List configured networks",
		Long: `List the built-in networks and any [networks] overrides from dapp.toml.

Each node is asked for the chain id it serves unless --offline is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{Offline: offline})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), lo.Map(result.Networks, networkOutput))
			}
			return render.NewNetworksRenderer(cmd.OutOrStdout()).RenderNetworksList(result)
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Do not contact the nodes")

	return cmd
}

type networkJSON struct {
	Name         string `json:"name"`
	ChainID      string `json:"chainId"`
	LiveChainID  string `json:"liveChainId,omitempty"`
	RESTEndpoint string `json:"restEndpoint"`
	RPCEndpoint  string `json:"rpcEndpoint"`
	Error        string `json:"error,omitempty"`
}

func networkOutput(n usecase.NetworkStatus, _ int) networkJSON {
	out := networkJSON{
		Name:         n.Name,
		ChainID:      n.ChainID,
		LiveChainID:  n.LiveChainID,
		RESTEndpoint: n.RESTEndpoint,
		RPCEndpoint:  n.RPCEndpoint,
	}
	if n.Error != nil {
		out.Error = n.Error.Error()
	}
	return out
}
