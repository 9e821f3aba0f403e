package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mantrachain/dapp-template/internal/domain"
)

// DefaultContractLabel is used when a deployment config has no label.
const DefaultContractLabel = "My Dapp Contract"

// DeploymentConfig describes a store-and-instantiate run.
type DeploymentConfig struct {
	Name             string         `json:"name" toml:"name" yaml:"name"`
	Network          string         `json:"network" toml:"network" yaml:"network"`
	ContractWasmPath string         `json:"contractWasmPath" toml:"contractWasmPath" yaml:"contractWasmPath"`
	ChecksumsPath    string         `json:"checksumsPath,omitempty" toml:"checksumsPath,omitempty" yaml:"checksumsPath,omitempty"`
	Label            string         `json:"label,omitempty" toml:"label,omitempty" yaml:"label,omitempty"`
	Admin            string         `json:"admin,omitempty" toml:"admin,omitempty" yaml:"admin,omitempty"`
	InitMsg          map[string]any `json:"initMsg" toml:"initMsg" yaml:"initMsg"`
	SaveDeployment   bool           `json:"saveDeployment" toml:"saveDeployment" yaml:"saveDeployment"`
}

// Validate checks required fields and the target network.
func (c *DeploymentConfig) Validate() error {
	if err := validateCommon(c.Name, c.Network, c.ContractWasmPath); err != nil {
		return err
	}
	return nil
}

// ContractLabel returns the configured label or the default.
func (c *DeploymentConfig) ContractLabel() string {
	if strings.TrimSpace(c.Label) == "" {
		return DefaultContractLabel
	}
	return c.Label
}

// InitMsgBytes encodes the instantiate message; a missing message becomes {}.
func (c *DeploymentConfig) InitMsgBytes() ([]byte, error) {
	return encodeMsg(c.InitMsg)
}

// MigrationConfig describes a store-and-migrate run against an existing contract.
type MigrationConfig struct {
	Name             string         `json:"name" toml:"name" yaml:"name"`
	Network          string         `json:"network" toml:"network" yaml:"network"`
	ContractAddress  string         `json:"contractAddress" toml:"contractAddress" yaml:"contractAddress"`
	ContractWasmPath string         `json:"contractWasmPath" toml:"contractWasmPath" yaml:"contractWasmPath"`
	ChecksumsPath    string         `json:"checksumsPath,omitempty" toml:"checksumsPath,omitempty" yaml:"checksumsPath,omitempty"`
	MigrateMsg       map[string]any `json:"migrateMsg" toml:"migrateMsg" yaml:"migrateMsg"`
	SaveMigration    bool           `json:"saveMigration" toml:"saveMigration" yaml:"saveMigration"`
}

// Validate checks required fields and the target network.
func (c *MigrationConfig) Validate() error {
	if err := validateCommon(c.Name, c.Network, c.ContractWasmPath); err != nil {
		return err
	}
	if strings.TrimSpace(c.ContractAddress) == "" {
		return fmt.Errorf("%w: contractAddress is required", domain.ErrInvalidDeploymentConfig)
	}
	return nil
}

// MigrateMsgBytes encodes the migrate message; a missing message becomes {}.
func (c *MigrationConfig) MigrateMsgBytes() ([]byte, error) {
	return encodeMsg(c.MigrateMsg)
}

func validateCommon(name, network, wasmPath string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidDeploymentConfig)
	}
	switch network {
	case domain.NetworkDukong, domain.NetworkMainnet:
	default:
		return fmt.Errorf("%w: network must be %q or %q, got %q",
			domain.ErrInvalidDeploymentConfig, domain.NetworkDukong, domain.NetworkMainnet, network)
	}
	if strings.TrimSpace(wasmPath) == "" {
		return fmt.Errorf("%w: contractWasmPath is required", domain.ErrInvalidDeploymentConfig)
	}
	return nil
}

func encodeMsg(m map[string]any) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message: %w", err)
	}
	return b, nil
}
