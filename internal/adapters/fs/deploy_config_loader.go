package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/domain/config"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"gopkg.in/yaml.v3"
)

// DeployConfigLoaderAdapter reads deployment configs in JSON, TOML or YAML,
// chosen by file extension
type DeployConfigLoaderAdapter struct{}

// NewDeployConfigLoaderAdapter creates a new DeployConfigLoaderAdapter
func NewDeployConfigLoaderAdapter() *DeployConfigLoaderAdapter {
	return &DeployConfigLoaderAdapter{}
}

// LoadDeploymentConfig reads a deployment config
func (l *DeployConfigLoaderAdapter) LoadDeploymentConfig(ctx context.Context, path string) (*config.DeploymentConfig, error) {
	var cfg config.DeploymentConfig
	if err := decodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadMigrationConfig reads a migration config
func (l *DeployConfigLoaderAdapter) LoadMigrationConfig(ctx context.Context, path string) (*config.MigrationConfig, error) {
	var cfg config.MigrationConfig
	if err := decodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, out)
	case ".toml":
		err = toml.Unmarshal(data, out)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, out)
	default:
		return fmt.Errorf("%w: unsupported config format %q (use .json, .toml or .yaml)", domain.ErrInvalidDeploymentConfig, ext)
	}
	if err != nil {
		return fmt.Errorf("%w: failed to parse %s: %w", domain.ErrInvalidDeploymentConfig, path, err)
	}
	return nil
}

var _ usecase.DeployConfigLoader = (*DeployConfigLoaderAdapter)(nil)
