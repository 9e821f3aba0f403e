package config

import (
	"testing"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeploymentConfig_Validate(t *testing.T) {
	valid := DeploymentConfig{Name: "counter", Network: "dukong", ContractWasmPath: "artifacts/counter.wasm"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *DeploymentConfig)
	}{
		{"missing name", func(c *DeploymentConfig) { c.Name = "" }},
		{"unknown network", func(c *DeploymentConfig) { c.Network = "testnet" }},
		{"missing wasm", func(c *DeploymentConfig) { c.ContractWasmPath = " " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), domain.ErrInvalidDeploymentConfig)
		})
	}
}

func TestDeploymentConfig_Defaults(t *testing.T) {
	c := DeploymentConfig{}
	assert.Equal(t, DefaultContractLabel, c.ContractLabel())

	b, err := c.InitMsgBytes()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))

	c.Label = "Counter v2"
	c.InitMsg = map[string]any{"count": 5}
	assert.Equal(t, "Counter v2", c.ContractLabel())
	b, err = c.InitMsgBytes()
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":5}`, string(b))
}

func TestMigrationConfig_Validate(t *testing.T) {
	c := MigrationConfig{Name: "counter", Network: "mainnet", ContractWasmPath: "a.wasm"}
	assert.ErrorIs(t, c.Validate(), domain.ErrInvalidDeploymentConfig)

	c.ContractAddress = "mantra1xyz"
	assert.NoError(t, c.Validate())

	b, err := c.MigrateMsgBytes()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}
