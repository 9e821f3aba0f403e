package config

import (
	"time"

	"github.com/mantrachain/dapp-template/internal/domain"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	Chain   domain.ChainName
	Network *domain.Network // network serving Chain

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Resolved configurations
	AppFile *AppFileConfig // nil when dapp.toml is absent
}
