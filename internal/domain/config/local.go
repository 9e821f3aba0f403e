package config

import "github.com/mantrachain/dapp-template/internal/domain"

// LocalConfig represents the local dapp configuration persisted per project
type LocalConfig struct {
	Chain domain.ChainName `json:"chain"`
}

// DefaultLocalConfig returns the default local configuration
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{
		Chain: domain.DefaultChain,
	}
}
