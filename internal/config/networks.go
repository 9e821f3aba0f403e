package config

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/domain/config"
)

// TemplateContractAddress is the counter contract shipped with the template.
const TemplateContractAddress = "mantra1c4darky93xxfseg95vpvn55cul9uf5raza5qsrfzwk2pmue6xctsfpws3f"

// DefaultGasPriceURL is the feemarket gas price endpoint for the fee denom.
const DefaultGasPriceURL = "https://rest.cosmos.directory/mantrachain/feemarket/v1/gas_price/uom"

// builtinNetworks returns fresh copies of the known networks.
func builtinNetworks() map[string]domain.Network {
	gasPrice := domain.DecCoin{Denom: "uom", Amount: "0.01"}
	return map[string]domain.Network{
		domain.NetworkMainnet: {
			Name:          domain.NetworkMainnet,
			ChainID:       "mantra-1",
			RPCEndpoint:   "https://rpc.mantrachain.io",
			RESTEndpoint:  "https://api.mantrachain.io",
			ExplorerTxURL: "https://www.mintscan.io/mantra/tx/",
			Bech32Prefix:  "mantra",
			FeeDenom:      "uom",
			GasPrice:      gasPrice,
		},
		domain.NetworkDukong: {
			Name:          domain.NetworkDukong,
			ChainID:       "mantra-dukong-1",
			RPCEndpoint:   "https://rpc.dukong.mantrachain.io",
			RESTEndpoint:  "https://api.dukong.mantrachain.io",
			ExplorerTxURL: "https://www.mintscan.io/mantra-testnet/tx/",
			Bech32Prefix:  "mantra",
			FeeDenom:      "uom",
			GasPrice:      gasPrice,
		},
	}
}

// NetworkRegistry resolves network names and chain selections using the
// built-in networks overlaid with dapp.toml.
type NetworkRegistry struct {
	networks    map[string]domain.Network
	contracts   map[domain.ChainName]string
	gasPriceURL string
}

// NewNetworkRegistry applies the app file overrides on top of the built-in values
func NewNetworkRegistry(appFile *config.AppFileConfig) (*NetworkRegistry, error) {
	r := &NetworkRegistry{
		networks: builtinNetworks(),
		contracts: map[domain.ChainName]string{
			domain.ChainMainnet: TemplateContractAddress,
			domain.ChainTestnet: TemplateContractAddress,
		},
		gasPriceURL: DefaultGasPriceURL,
	}
	if appFile == nil {
		return r, nil
	}

	for name, o := range appFile.Networks {
		n, ok := r.networks[name]
		if !ok {
			n = domain.Network{Name: name, Bech32Prefix: "mantra", FeeDenom: "uom", GasPrice: domain.DecCoin{Denom: "uom", Amount: "0.01"}}
		}
		if o.ChainID != "" {
			n.ChainID = o.ChainID
		}
		if o.RPC != "" {
			n.RPCEndpoint = o.RPC
		}
		if o.REST != "" {
			n.RESTEndpoint = strings.TrimRight(o.REST, "/")
		}
		if o.ExplorerTxURL != "" {
			n.ExplorerTxURL = o.ExplorerTxURL
		}
		if o.GasPrice != "" {
			price, err := domain.ParseDecCoin(o.GasPrice)
			if err != nil {
				return nil, fmt.Errorf("networks.%s.gas_price: %w", name, err)
			}
			n.GasPrice = price
			n.FeeDenom = price.Denom
		}
		if n.RESTEndpoint == "" {
			return nil, fmt.Errorf("networks.%s: rest endpoint is required", name)
		}
		r.networks[name] = n
	}

	for chain, addr := range appFile.Contracts {
		c, err := domain.ParseChainName(chain)
		if err != nil {
			return nil, fmt.Errorf("contracts.%s: %w", chain, err)
		}
		r.contracts[c] = addr
	}

	if appFile.Oracle.GasPriceURL != "" {
		r.gasPriceURL = appFile.Oracle.GasPriceURL
	}

	return r, nil
}

// GetNetworks returns all configured network names, sorted
func (r *NetworkRegistry) GetNetworks(ctx context.Context) []string {
	names := make([]string, 0, len(r.networks))
	for name := range r.networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveNetwork returns a copy of the named network
func (r *NetworkRegistry) ResolveNetwork(ctx context.Context, name string) (*domain.Network, error) {
	n, ok := r.networks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownNetwork, name)
	}
	return &n, nil
}

// ResolveChain returns the network serving a chain selection
func (r *NetworkRegistry) ResolveChain(ctx context.Context, chain domain.ChainName) (*domain.Network, error) {
	name, err := chain.NetworkName()
	if err != nil {
		return nil, err
	}
	return r.ResolveNetwork(ctx, name)
}

// ContractAddress returns the counter contract configured for a chain
func (r *NetworkRegistry) ContractAddress(ctx context.Context, chain domain.ChainName) (string, error) {
	addr, ok := r.contracts[chain]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedChain, string(chain))
	}
	return addr, nil
}

// GasPriceURL returns the feemarket gas price endpoint
func (r *NetworkRegistry) GasPriceURL() string {
	return r.gasPriceURL
}
