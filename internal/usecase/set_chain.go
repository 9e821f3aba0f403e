package usecase

import (
	"context"
	"fmt"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/domain/config"
)

// SetChainParams contains parameters for changing the chain selection
type SetChainParams struct {
	Chain string
	// Interactive picks the chain with the ChainSelector when Chain is empty
	Interactive bool
}

// SetChainResult contains the result of changing the chain selection
type SetChainResult struct {
	Previous   domain.ChainName `json:"previous"`
	Chain      domain.ChainName `json:"chain"`
	AppConfig  *AppConfig       `json:"appConfig,omitempty"`
	ConfigPath string           `json:"configPath"`
}

// SetChain is a use case for persisting the chain selection
type SetChain struct {
	config   *config.RuntimeConfig
	store    LocalConfigRepository
	resolver *ResolveAppConfig
	selector ChainSelector
}

// NewSetChain creates a new SetChain use case
func NewSetChain(cfg *config.RuntimeConfig, store LocalConfigRepository, resolver *ResolveAppConfig, selector ChainSelector) *SetChain {
	return &SetChain{
		config:   cfg,
		store:    store,
		resolver: resolver,
		selector: selector,
	}
}

// Run validates and saves the new selection
func (uc *SetChain) Run(ctx context.Context, params SetChainParams) (*SetChainResult, error) {
	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	previous := local.Chain

	var chain domain.ChainName
	switch {
	case params.Chain != "":
		chain, err = domain.ParseChainName(params.Chain)
		if err != nil {
			return nil, err
		}
	case params.Interactive && !uc.config.NonInteractive:
		chain, err = uc.selector.SelectChain(ctx, domain.SupportedChains(), previous)
		if err != nil {
			return nil, fmt.Errorf("chain selection cancelled: %w", err)
		}
	default:
		return nil, fmt.Errorf("chain is required (one of %s, %s)", domain.ChainMainnet, domain.ChainTestnet)
	}

	// Resolve before saving so an unusable selection is never persisted
	appCfg, err := uc.resolver.Run(ctx, chain)
	if err != nil {
		return nil, err
	}

	local.Chain = chain
	if err := uc.store.Save(ctx, local); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &SetChainResult{
		Previous:   previous,
		Chain:      chain,
		AppConfig:  appCfg,
		ConfigPath: uc.store.GetPath(),
	}, nil
}
