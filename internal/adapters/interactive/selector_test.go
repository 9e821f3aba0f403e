package interactive

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/domain/config"
	"github.com/mantrachain/dapp-template/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func testRecords() []*models.StoredRecord {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []*models.StoredRecord{
		{
			Kind: models.RecordKindDeployment, Name: "counter", Network: "dukong", CreatedAt: at,
			Deployment: &models.DeploymentRecord{ContractAddress: "mantra1counter"},
		},
		{
			Kind: models.RecordKindMigration, Name: "counter", Network: "mainnet", CreatedAt: at,
			Migration: &models.MigrationRecord{ContractAddress: "mantra1migrated"},
		},
	}
}

func TestCreateFuzzySearchFunc(t *testing.T) {
	search := createFuzzySearchFunc(searchKeys(testRecords()))

	tests := []struct {
		input string
		index int
		want  bool
	}{
		{"", 0, true},
		{"DUKONG", 0, true},
		{"dukong", 1, false},
		{"mgrtn", 1, true},
		{"migrated", 1, true},
		{"zzz", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, search(tt.input, tt.index))
		})
	}
}

func TestFormatOptions(t *testing.T) {
	chains := formatChainOptions(domain.SupportedChains(), domain.ChainTestnet)
	assert.Equal(t, []string{"mainnet (mainnet)", "testnet (dukong) [current]"}, chains)

	records := formatDeploymentOptions(testRecords())
	assert.Equal(t, "dukong/counter (2025-03-01 12:00:00) mantra1counter", records[0])
	assert.Equal(t, "mainnet/counter (2025-03-01 12:00:00) [migration] mantra1migrated", records[1])
}

func TestSelectChain(t *testing.T) {
	s := NewSelectorAdapter(&config.RuntimeConfig{})
	var got promptui.Select
	s.run = func(p promptui.Select) (int, error) {
		got = p
		return 0, nil
	}

	chain, err := s.SelectChain(context.Background(), domain.SupportedChains(), domain.ChainTestnet)
	require.NoError(t, err)
	assert.Equal(t, domain.ChainMainnet, chain)
	assert.Equal(t, 1, got.CursorPos)

	s.run = func(promptui.Select) (int, error) { return 0, promptui.ErrInterrupt }
	_, err = s.SelectChain(context.Background(), domain.SupportedChains(), domain.ChainTestnet)
	assert.True(t, errors.Is(err, promptui.ErrInterrupt))
}

func TestSelectDeployment(t *testing.T) {
	records := testRecords()

	t.Run("single record skips the prompt", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		s.run = func(promptui.Select) (int, error) {
			t.Fatal("prompt should not run")
			return 0, nil
		}
		r, err := s.SelectDeployment(context.Background(), records[:1], "pick")
		require.NoError(t, err)
		assert.Same(t, records[0], r)
	})

	t.Run("returns chosen record", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		s.run = func(p promptui.Select) (int, error) {
			assert.Equal(t, "pick", p.Label)
			assert.True(t, p.StartInSearchMode)
			return 1, nil
		}
		r, err := s.SelectDeployment(context.Background(), records, "pick")
		require.NoError(t, err)
		assert.Same(t, records[1], r)
	})

	t.Run("non-interactive", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})
		_, err := s.SelectDeployment(context.Background(), records, "pick")
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		_, err := s.SelectDeployment(context.Background(), nil, "pick")
		assert.Error(t, err)
	})
}
