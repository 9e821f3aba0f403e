package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/domain/config"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockChainSelector is a mock implementation of ChainSelector
type MockChainSelector struct {
	mock.Mock
}

func (m *MockChainSelector) SelectChain(ctx context.Context, chains []domain.ChainName, current domain.ChainName) (domain.ChainName, error) {
	args := m.Called(ctx, chains, current)
	return args.Get(0).(domain.ChainName), args.Error(1)
}

func TestResolveAppConfig(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewResolveAppConfig(newStaticRegistry())

	for _, chain := range domain.SupportedChains() {
		t.Run(string(chain), func(t *testing.T) {
			cfg, err := uc.Run(ctx, chain)
			require.NoError(t, err)
			assert.NotEmpty(t, cfg.ContractAddress)
			assert.NotNil(t, cfg.Network)
			assert.Equal(t, chain, cfg.Chain)
		})
	}

	t.Run("unsupported chain", func(t *testing.T) {
		_, err := uc.Run(ctx, domain.ChainName("devnet"))
		assert.ErrorIs(t, err, domain.ErrUnsupportedChain)
	})

	t.Run("empty address is a configuration failure", func(t *testing.T) {
		registry := newStaticRegistry()
		registry.contracts[domain.ChainMainnet] = ""

		_, err := usecase.NewResolveAppConfig(registry).Run(ctx, domain.ChainMainnet)
		assert.ErrorContains(t, err, "no contract address")
	})
}

func TestShowChain(t *testing.T) {
	ctx := context.Background()

	t.Run("persists default on first run", func(t *testing.T) {
		store := &MockLocalConfigStore{}
		store.On("Load", mock.Anything).Return(config.DefaultLocalConfig(), nil)
		store.On("Exists").Return(false)
		store.On("Save", mock.Anything, &config.LocalConfig{Chain: domain.ChainTestnet}).Return(nil)

		uc := usecase.NewShowChain(testRuntimeConfig(), store, usecase.NewResolveAppConfig(newStaticRegistry()))
		res, err := uc.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.ChainTestnet, res.Chain)
		assert.Equal(t, testContract, res.AppConfig.ContractAddress)
		store.AssertExpectations(t)
	})

	t.Run("existing selection", func(t *testing.T) {
		store := &MockLocalConfigStore{}
		store.On("Load", mock.Anything).Return(&config.LocalConfig{Chain: domain.ChainMainnet}, nil)
		store.On("Exists").Return(true)

		uc := usecase.NewShowChain(testRuntimeConfig(), store, usecase.NewResolveAppConfig(newStaticRegistry()))
		res, err := uc.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.ChainMainnet, res.Chain)
		assert.Equal(t, domain.ChainTestnet, res.Effective)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSetChain(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit chain", func(t *testing.T) {
		store := &MockLocalConfigStore{}
		store.On("Load", mock.Anything).Return(&config.LocalConfig{Chain: domain.ChainTestnet}, nil)
		store.On("Save", mock.Anything, &config.LocalConfig{Chain: domain.ChainMainnet}).Return(nil)

		uc := usecase.NewSetChain(testRuntimeConfig(), store, usecase.NewResolveAppConfig(newStaticRegistry()), &MockChainSelector{})
		res, err := uc.Run(ctx, usecase.SetChainParams{Chain: "mainnet"})
		require.NoError(t, err)
		assert.Equal(t, domain.ChainTestnet, res.Previous)
		assert.Equal(t, domain.ChainMainnet, res.Chain)
		store.AssertExpectations(t)
	})

	t.Run("invalid chain is not saved", func(t *testing.T) {
		store := &MockLocalConfigStore{}
		store.On("Load", mock.Anything).Return(config.DefaultLocalConfig(), nil)

		uc := usecase.NewSetChain(testRuntimeConfig(), store, usecase.NewResolveAppConfig(newStaticRegistry()), &MockChainSelector{})
		for _, chain := range []string{"cosmoshub", "MAINNET", " testnet "} {
			_, err := uc.Run(ctx, usecase.SetChainParams{Chain: chain})
			assert.ErrorIs(t, err, domain.ErrUnsupportedChain, chain)
		}
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("interactive", func(t *testing.T) {
		store := &MockLocalConfigStore{}
		store.On("Load", mock.Anything).Return(config.DefaultLocalConfig(), nil)
		store.On("Save", mock.Anything, &config.LocalConfig{Chain: domain.ChainMainnet}).Return(nil)
		selector := &MockChainSelector{}
		selector.On("SelectChain", mock.Anything, domain.SupportedChains(), domain.ChainTestnet).Return(domain.ChainMainnet, nil)

		uc := usecase.NewSetChain(testRuntimeConfig(), store, usecase.NewResolveAppConfig(newStaticRegistry()), selector)
		res, err := uc.Run(ctx, usecase.SetChainParams{Interactive: true})
		require.NoError(t, err)
		assert.Equal(t, domain.ChainMainnet, res.Chain)
	})

	t.Run("interactive cancelled", func(t *testing.T) {
		store := &MockLocalConfigStore{}
		store.On("Load", mock.Anything).Return(config.DefaultLocalConfig(), nil)
		selector := &MockChainSelector{}
		selector.On("SelectChain", mock.Anything, mock.Anything, mock.Anything).Return(domain.ChainName(""), errors.New("^C"))

		uc := usecase.NewSetChain(testRuntimeConfig(), store, usecase.NewResolveAppConfig(newStaticRegistry()), selector)
		_, err := uc.Run(ctx, usecase.SetChainParams{Interactive: true})
		assert.Error(t, err)
	})

	t.Run("non-interactive requires a chain", func(t *testing.T) {
		store := &MockLocalConfigStore{}
		store.On("Load", mock.Anything).Return(config.DefaultLocalConfig(), nil)
		cfg := testRuntimeConfig()
		cfg.NonInteractive = true

		uc := usecase.NewSetChain(cfg, store, usecase.NewResolveAppConfig(newStaticRegistry()), &MockChainSelector{})
		_, err := uc.Run(ctx, usecase.SetChainParams{Interactive: true})
		assert.ErrorContains(t, err, "chain is required")
	})
}

func TestListNetworks(t *testing.T) {
	ctx := context.Background()

	t.Run("online", func(t *testing.T) {
		client := &MockChainClient{}
		client.On("ChainID", mock.Anything).Return("mantra-dukong-1", nil)

		res, err := usecase.NewListNetworks(newStaticRegistry(), staticClients{client}).Run(ctx, usecase.ListNetworksParams{})
		require.NoError(t, err)
		require.Len(t, res.Networks, 1)
		assert.Equal(t, "dukong", res.Networks[0].Name)
		assert.Equal(t, "mantra-dukong-1", res.Networks[0].LiveChainID)
		assert.False(t, res.Networks[0].Mismatch())
		assert.NoError(t, res.Networks[0].Error)
	})

	t.Run("node error is reported per network", func(t *testing.T) {
		client := &MockChainClient{}
		client.On("ChainID", mock.Anything).Return("", errors.New("timeout"))

		res, err := usecase.NewListNetworks(newStaticRegistry(), staticClients{client}).Run(ctx, usecase.ListNetworksParams{})
		require.NoError(t, err)
		assert.ErrorContains(t, res.Networks[0].Error, "timeout")
	})

	t.Run("offline", func(t *testing.T) {
		client := &MockChainClient{}
		res, err := usecase.NewListNetworks(newStaticRegistry(), staticClients{client}).Run(ctx, usecase.ListNetworksParams{Offline: true})
		require.NoError(t, err)
		assert.Equal(t, "mantra-dukong-1", res.Networks[0].ChainID)
		client.AssertNotCalled(t, "ChainID", mock.Anything)
	})
}
