package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetBalances(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled without address", func(t *testing.T) {
		client := &MockChainClient{}
		uc := usecase.NewGetBalances(testRuntimeConfig(), staticClients{client}, newMapCache(), discardLogger())

		res, err := uc.Run(ctx, usecase.GetBalancesParams{})
		require.NoError(t, err)
		assert.False(t, res.Enabled)
		client.AssertNotCalled(t, "AllBalances", mock.Anything, mock.Anything)
	})

	t.Run("tracked denom absent yields zero", func(t *testing.T) {
		client := &MockChainClient{}
		client.On("AllBalances", mock.Anything, testSender).Return([]domain.Coin{{Denom: "ibc/ABC", Amount: "99"}}, nil)
		uc := usecase.NewGetBalances(testRuntimeConfig(), staticClients{client}, newMapCache(), discardLogger())

		res, err := uc.Run(ctx, usecase.GetBalancesParams{Address: testSender})
		require.NoError(t, err)
		assert.True(t, res.Enabled)
		assert.Equal(t, usecase.TrackedBalance{Denom: "uom", Amount: "0", DisplayAmount: "0", HumanAmount: "0"}, res.Tracked)
		assert.Len(t, res.Balances, 1)
	})

	t.Run("formats tracked denom and caches", func(t *testing.T) {
		client := &MockChainClient{}
		client.On("AllBalances", mock.Anything, testSender).
			Return([]domain.Coin{{Denom: "uom", Amount: "1234567890123"}}, nil).Once()
		cache := newMapCache()
		uc := usecase.NewGetBalances(testRuntimeConfig(), staticClients{client}, cache, discardLogger())

		res, err := uc.Run(ctx, usecase.GetBalancesParams{Address: testSender})
		require.NoError(t, err)
		assert.Equal(t, "1234567890123", res.Tracked.Amount)
		assert.Equal(t, "1,234,567.890123", res.Tracked.DisplayAmount)
		assert.Equal(t, "1234567.890123", res.Tracked.HumanAmount)
		assert.False(t, res.Cached)

		again, err := uc.Run(ctx, usecase.GetBalancesParams{Address: testSender})
		require.NoError(t, err)
		assert.True(t, again.Cached)
		assert.Equal(t, res.Tracked, again.Tracked)

		_, ok := cache.Get(usecase.BalancesKey(testSender, client.ID()))
		assert.True(t, ok)
		client.AssertNumberOfCalls(t, "AllBalances", 1)
	})

	t.Run("query failure", func(t *testing.T) {
		client := &MockChainClient{}
		client.On("AllBalances", mock.Anything, testSender).Return(nil, errors.New("connection refused"))
		uc := usecase.NewGetBalances(testRuntimeConfig(), staticClients{client}, newMapCache(), discardLogger())

		_, err := uc.Run(ctx, usecase.GetBalancesParams{Address: testSender})
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestGetCounter(t *testing.T) {
	ctx := context.Background()
	resolver := usecase.NewResolveAppConfig(newStaticRegistry())

	t.Run("queries and caches", func(t *testing.T) {
		client := &MockChainClient{}
		client.On("QuerySmart", mock.Anything, testContract, []byte(`{"get_count":{}}`)).Return([]byte(`{"count":42}`), nil).Once()
		uc := usecase.NewGetCounter(testRuntimeConfig(), resolver, staticClients{client}, newMapCache(), discardLogger())

		res, err := uc.Run(ctx, usecase.GetCounterParams{})
		require.NoError(t, err)
		assert.Equal(t, uint64(42), res.Count)
		assert.Equal(t, testContract, res.ContractAddress)
		assert.Equal(t, domain.ChainTestnet, res.Chain)

		cached, err := uc.Run(ctx, usecase.GetCounterParams{})
		require.NoError(t, err)
		assert.True(t, cached.Cached)
		assert.Equal(t, uint64(42), cached.Count)
	})

	t.Run("refresh bypasses cache", func(t *testing.T) {
		client := &MockChainClient{}
		client.On("QuerySmart", mock.Anything, testContract, mock.Anything).Return([]byte(`{"count":1}`), nil)
		cache := newMapCache()
		cache.Set(usecase.CounterKey(client.ID()), uint64(99))
		uc := usecase.NewGetCounter(testRuntimeConfig(), resolver, staticClients{client}, cache, discardLogger())

		res, err := uc.Run(ctx, usecase.GetCounterParams{Refresh: true})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), res.Count)
		assert.False(t, res.Cached)
	})

	t.Run("bad response", func(t *testing.T) {
		client := &MockChainClient{}
		client.On("QuerySmart", mock.Anything, testContract, mock.Anything).Return([]byte(`"oops"`), nil)
		uc := usecase.NewGetCounter(testRuntimeConfig(), resolver, staticClients{client}, newMapCache(), discardLogger())

		_, err := uc.Run(ctx, usecase.GetCounterParams{})
		assert.Error(t, err)
	})
}
