package gasprice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mantrachain/dapp-template/internal/config"
	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/usecase"
)

// Oracle reads the feemarket gas price over HTTP. Requests are bounded only
// by the caller's context and are not retried.
type Oracle struct {
	client *http.Client
	url    string
}

// NewOracle creates a new Oracle for url
func NewOracle(url string) *Oracle {
	return &Oracle{
		client: &http.Client{},
		url:    url,
	}
}

// ProvideOracle builds the oracle from the configured gas price endpoint
func ProvideOracle(registry *config.NetworkRegistry) *Oracle {
	return NewOracle(registry.GasPriceURL())
}

type gasPriceResponse struct {
	Price domain.DecCoin `json:"price"`
}

// GasPrice fetches the current price per gas unit
func (o *Oracle) GasPrice(ctx context.Context) (domain.DecCoin, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.url, nil)
	if err != nil {
		return domain.DecCoin{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return domain.DecCoin{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.DecCoin{}, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	var out gasPriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.DecCoin{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if out.Price.Denom == "" || out.Price.Amount == "" {
		return domain.DecCoin{}, fmt.Errorf("gas price response is missing price")
	}
	return out.Price, nil
}

var _ usecase.GasPriceOracle = (*Oracle)(nil)
