package usecase

import (
	"context"
	"fmt"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/domain/config"
)

// ShowChainResult contains the persisted chain selection and what it resolves to
type ShowChainResult struct {
	Chain      domain.ChainName `json:"chain"`
	AppConfig  *AppConfig       `json:"appConfig,omitempty"`
	ConfigPath string           `json:"configPath"`
	// Effective is the chain in use for this run; flags and DAPP_CHAIN can
	// override the persisted selection
	Effective domain.ChainName `json:"effective"`
}

// ShowChain is a use case for showing the selected chain
type ShowChain struct {
	config   *config.RuntimeConfig
	store    LocalConfigRepository
	resolver *ResolveAppConfig
}

// NewShowChain creates a new ShowChain use case
func NewShowChain(cfg *config.RuntimeConfig, store LocalConfigRepository, resolver *ResolveAppConfig) *ShowChain {
	return &ShowChain{
		config:   cfg,
		store:    store,
		resolver: resolver,
	}
}

// Run loads the selection, persisting the default on first use
func (uc *ShowChain) Run(ctx context.Context) (*ShowChainResult, error) {
	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !uc.store.Exists() {
		if err := uc.store.Save(ctx, local); err != nil {
			return nil, fmt.Errorf("failed to save config: %w", err)
		}
	}

	appCfg, err := uc.resolver.Run(ctx, local.Chain)
	if err != nil {
		return nil, err
	}

	return &ShowChainResult{
		Chain:      local.Chain,
		AppConfig:  appCfg,
		ConfigPath: uc.store.GetPath(),
		Effective:  uc.config.Chain,
	}, nil
}
