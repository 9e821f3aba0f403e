package render

import (
	"fmt"
	"io"

	"github.com/mantrachain/dapp-template/internal/usecase"
)

// ChainRenderer renders the chain selection
type ChainRenderer struct {
	out io.Writer
}

// NewChainRenderer creates a new chain renderer
func NewChainRenderer(out io.Writer) *ChainRenderer {
	return &ChainRenderer{out: out}
}

// RenderShow renders the persisted selection and what it resolves to
func (r *ChainRenderer) RenderShow(result *usecase.ShowChainResult) error {
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Chain:"), valueStyle.Sprint(string(result.Chain)))
	if result.Effective != "" && result.Effective != result.Chain {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("overridden for this run by --chain or DAPP_CHAIN: %s", result.Effective)))
	}
	r.renderAppConfig(result.AppConfig)
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Config:"), result.ConfigPath)
	return nil
}

// RenderSet renders a changed selection
func (r *ChainRenderer) RenderSet(result *usecase.SetChainResult) error {
	if result.Previous == result.Chain {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Chain already set to %s", result.Chain)))
	} else {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Switched chain from %s to %s", result.Previous, result.Chain)))
	}
	r.renderAppConfig(result.AppConfig)
	return nil
}

func (r *ChainRenderer) renderAppConfig(cfg *usecase.AppConfig) {
	if cfg == nil {
		return
	}
	if cfg.Network != nil {
		network := cfg.Network.Name
		if cfg.Network.ChainID != "" {
			network = fmt.Sprintf("%s (%s)", Title(cfg.Network.Name), cfg.Network.ChainID)
		}
		fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Network:"), network)
		fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("REST:"), cfg.Network.RESTEndpoint)
		fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("RPC:"), cfg.Network.RPCEndpoint)
	}
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Contract:"), addressStyle.Sprint(cfg.ContractAddress))
}
