package usecase

import (
	"context"
	"fmt"

	"github.com/mantrachain/dapp-template/internal/domain"
)

// AppConfig is the per-chain application configuration
type AppConfig struct {
	Chain           domain.ChainName `json:"chain"`
	ContractAddress string           `json:"contractAddress"`
	Network         *domain.Network  `json:"network,omitempty"`
}

// ResolveAppConfig maps a chain selection to its contract address and network
type ResolveAppConfig struct {
	registry ContractRegistry
}

// NewResolveAppConfig creates a new ResolveAppConfig use case
func NewResolveAppConfig(registry ContractRegistry) *ResolveAppConfig {
	return &ResolveAppConfig{
		registry: registry,
	}
}

// Run resolves the configuration for chain. It has no side effects.
func (uc *ResolveAppConfig) Run(ctx context.Context, chain domain.ChainName) (*AppConfig, error) {
	if _, err := domain.ParseChainName(string(chain)); err != nil {
		return nil, err
	}

	addr, err := uc.registry.ContractAddress(ctx, chain)
	if err != nil {
		return nil, err
	}
	if addr == "" {
		return nil, fmt.Errorf("no contract address configured for chain %s", chain)
	}

	network, err := uc.registry.ResolveChain(ctx, chain)
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		Chain:           chain,
		ContractAddress: addr,
		Network:         network,
	}, nil
}
