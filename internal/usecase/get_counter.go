package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/domain/config"
)

// CounterQueryName is the cache key root for the counter value
const CounterQueryName = "useCounter"

// CounterKey is the cache key of the counter value on one client
func CounterKey(clientID string) QueryKey {
	return QueryKey{CounterQueryName, clientID}
}

// GetCounterParams contains parameters for the counter query
type GetCounterParams struct {
	Refresh bool
}

// GetCounterResult contains the current counter value
type GetCounterResult struct {
	Count           uint64           `json:"count"`
	ContractAddress string           `json:"contractAddress"`
	Chain           domain.ChainName `json:"chain"`
	Cached          bool             `json:"cached"`
}

// GetCounter reads the counter value from the contract
type GetCounter struct {
	config   *config.RuntimeConfig
	resolver *ResolveAppConfig
	clients  ClientFactory
	cache    QueryCache
	log      *slog.Logger
}

// NewGetCounter creates a new GetCounter use case
func NewGetCounter(cfg *config.RuntimeConfig, resolver *ResolveAppConfig, clients ClientFactory, cache QueryCache, log *slog.Logger) *GetCounter {
	return &GetCounter{
		config:   cfg,
		resolver: resolver,
		clients:  clients,
		cache:    cache,
		log:      log,
	}
}

// Run executes the counter query
func (uc *GetCounter) Run(ctx context.Context, params GetCounterParams) (*GetCounterResult, error) {
	appCfg, err := uc.resolver.Run(ctx, uc.config.Chain)
	if err != nil {
		return nil, err
	}

	client := uc.clients.NewClient(appCfg.Network)
	key := CounterKey(client.ID())
	result := &GetCounterResult{
		ContractAddress: appCfg.ContractAddress,
		Chain:           appCfg.Chain,
	}

	if v, ok := uc.cache.Get(key); ok && !params.Refresh {
		if count, ok := v.(uint64); ok {
			result.Count = count
			result.Cached = true
			return result, nil
		}
	}

	query, err := json.Marshal(domain.GetCountQuery())
	if err != nil {
		return nil, err
	}

	uc.log.Debug("querying counter", "contract", appCfg.ContractAddress, "client", client.ID())
	data, err := client.QuerySmart(ctx, appCfg.ContractAddress, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query counter: %w", err)
	}

	var resp domain.CountResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode counter response: %w", err)
	}

	uc.cache.Set(key, resp.Count)
	result.Count = resp.Count
	return result, nil
}
