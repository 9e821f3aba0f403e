package config

// Build information, set with -ldflags "-X github.com/mantrachain/dapp-template/internal/config.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
