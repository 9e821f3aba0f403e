package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/mantrachain/dapp-template/internal/domain/config"
)

// AppFileName is the project marker and optional override file
const AppFileName = "dapp.toml"

// loadEnvFiles loads .env and .env.local from the project root.
// Variables already set in the process environment win.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadAppFile loads and parses dapp.toml if it exists.
// Returns (nil, nil) when dapp.toml does not exist.
func loadAppFile(projectRoot string) (*config.AppFileConfig, error) {
	path := filepath.Join(projectRoot, AppFileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var cfg config.AppFileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", AppFileName, err)
	}

	// Expand environment variables in all string fields
	for name, n := range cfg.Networks {
		n.ChainID = os.ExpandEnv(n.ChainID)
		n.RPC = os.ExpandEnv(n.RPC)
		n.REST = os.ExpandEnv(n.REST)
		n.ExplorerTxURL = os.ExpandEnv(n.ExplorerTxURL)
		n.GasPrice = os.ExpandEnv(n.GasPrice)
		cfg.Networks[name] = n
	}
	for chain, addr := range cfg.Contracts {
		cfg.Contracts[chain] = os.ExpandEnv(addr)
	}
	cfg.Oracle.GasPriceURL = os.ExpandEnv(cfg.Oracle.GasPriceURL)

	return &cfg, nil
}
