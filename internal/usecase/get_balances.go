package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/domain/config"
	"github.com/mantrachain/dapp-template/pkg/format"
	"github.com/samber/lo"
)

// BalancesQueryName is the cache key root for balance snapshots
const BalancesQueryName = "getAllBalances"

// BalancesKey is the cache key of one account's balances on one client
func BalancesKey(address, clientID string) QueryKey {
	return QueryKey{BalancesQueryName, address, clientID}
}

// GetBalancesParams contains parameters for the balance query
type GetBalancesParams struct {
	Address string
	// Refresh bypasses the cache
	Refresh bool
}

// TrackedBalance is the fee denom balance in base units and display form
type TrackedBalance struct {
	Denom         string `json:"denom"`
	Amount        string `json:"amount"`
	DisplayAmount string `json:"displayAmount"`
	HumanAmount   string `json:"humanAmount"`
}

// GetBalancesResult contains the balance snapshot of one account
type GetBalancesResult struct {
	// Enabled is false when no address was given and nothing was queried
	Enabled  bool           `json:"enabled"`
	Address  string         `json:"address"`
	Balances []domain.Coin  `json:"balances,omitempty"`
	Tracked  TrackedBalance `json:"tracked"`
	Cached   bool           `json:"cached"`
}

// GetBalances queries all balances of an account
type GetBalances struct {
	config  *config.RuntimeConfig
	clients ClientFactory
	cache   QueryCache
	log     *slog.Logger
}

// NewGetBalances creates a new GetBalances use case
func NewGetBalances(cfg *config.RuntimeConfig, clients ClientFactory, cache QueryCache, log *slog.Logger) *GetBalances {
	return &GetBalances{
		config:  cfg,
		clients: clients,
		cache:   cache,
		log:     log,
	}
}

// Run executes the balance query
func (uc *GetBalances) Run(ctx context.Context, params GetBalancesParams) (*GetBalancesResult, error) {
	if params.Address == "" {
		return &GetBalancesResult{Enabled: false}, nil
	}

	client := uc.clients.NewClient(uc.config.Network)
	key := BalancesKey(params.Address, client.ID())

	var (
		balances []domain.Coin
		cached   bool
	)
	if v, ok := uc.cache.Get(key); ok && !params.Refresh {
		balances, cached = v.([]domain.Coin)
	}
	if !cached {
		uc.log.Debug("querying balances", "address", params.Address, "client", client.ID())
		fetched, err := client.AllBalances(ctx, params.Address)
		if err != nil {
			return nil, fmt.Errorf("failed to query balances: %w", err)
		}
		balances = fetched
		uc.cache.Set(key, balances)
	}

	return &GetBalancesResult{
		Enabled:  true,
		Address:  params.Address,
		Balances: balances,
		Tracked:  trackBalance(balances, uc.config.Network.FeeDenom),
		Cached:   cached,
	}, nil
}

// trackBalance derives the display amounts for denom; an absent denom is "0"
func trackBalance(balances []domain.Coin, denom string) TrackedBalance {
	coin, ok := lo.Find(balances, func(c domain.Coin) bool {
		return c.Denom == denom
	})
	if !ok || coin.Amount == "" {
		return TrackedBalance{Denom: denom, Amount: "0", DisplayAmount: "0", HumanAmount: "0"}
	}

	display := format.FormatTokenBalance(coin.Amount, format.DefaultDecimals)
	return TrackedBalance{
		Denom:         denom,
		Amount:        coin.Amount,
		DisplayAmount: display,
		HumanAmount:   format.HumanAmount(display),
	}
}
