package cosmos

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/samber/lo"
)

// DefaultPollInterval is how often Broadcast checks for tx inclusion
const DefaultPollInterval = time.Second

// Client talks to a chain through its REST (LCD) endpoint
type Client struct {
	endpoint     string
	httpClient   *http.Client
	pollInterval time.Duration

	mu      sync.Mutex
	chainID string
}

// NewClient creates a new REST client for endpoint
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		endpoint:     strings.TrimRight(endpoint, "/"),
		httpClient:   httpClient,
		pollInterval: DefaultPollInterval,
	}
}

// ID returns the REST endpoint
func (c *Client) ID() string {
	return c.endpoint
}

// apiError is the error body returned by the gateway
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusError is returned for non-2xx responses
type statusError struct {
	Status  int
	Code    int
	Message string
}

func (e *statusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func isNotFound(err error) bool {
	var se *statusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		se := &statusError{Status: resp.StatusCode}
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil {
			se.Code = apiErr.Code
			se.Message = apiErr.Message
		}
		return se
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ChainID returns the chain id reported by the node. The first answer is cached.
func (c *Client) ChainID(ctx context.Context) (string, error) {
	c.mu.Lock()
	cached := c.chainID
	c.mu.Unlock()
	if cached != "" {
		return cached, nil
	}

	var resp struct {
		DefaultNodeInfo struct {
			Network string `json:"network"`
		} `json:"default_node_info"`
	}
	if err := c.do(ctx, http.MethodGet, "/cosmos/base/tendermint/v1beta1/node_info", nil, &resp); err != nil {
		return "", fmt.Errorf("failed to get node info: %w", err)
	}
	if resp.DefaultNodeInfo.Network == "" {
		return "", errors.New("node info has no chain id")
	}

	c.mu.Lock()
	c.chainID = resp.DefaultNodeInfo.Network
	c.mu.Unlock()
	return resp.DefaultNodeInfo.Network, nil
}

// AllBalances returns every coin held by address
func (c *Client) AllBalances(ctx context.Context, address string) ([]domain.Coin, error) {
	var balances []domain.Coin
	nextKey := ""
	for {
		path := "/cosmos/bank/v1beta1/balances/" + url.PathEscape(address)
		if nextKey != "" {
			path += "?pagination.key=" + url.QueryEscape(nextKey)
		}
		var resp struct {
			Balances   []domain.Coin `json:"balances"`
			Pagination struct {
				NextKey string `json:"next_key"`
			} `json:"pagination"`
		}
		if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
			return nil, fmt.Errorf("failed to query balances: %w", err)
		}
		balances = append(balances, resp.Balances...)
		if resp.Pagination.NextKey == "" {
			break
		}
		nextKey = resp.Pagination.NextKey
	}
	if balances == nil {
		balances = []domain.Coin{}
	}
	return balances, nil
}

// QuerySmart runs a contract smart query and returns the raw JSON result
func (c *Client) QuerySmart(ctx context.Context, contract string, query []byte) ([]byte, error) {
	encoded := base64.StdEncoding.EncodeToString(query)
	path := fmt.Sprintf("/cosmwasm/wasm/v1/contract/%s/smart/%s", url.PathEscape(contract), url.PathEscape(encoded))

	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("smart query failed: %w", err)
	}
	return resp.Data, nil
}

func (c *Client) account(ctx context.Context, address string) (*account, error) {
	var resp struct {
		Info struct {
			AccountNumber string `json:"account_number"`
			Sequence      string `json:"sequence"`
		} `json:"info"`
	}
	if err := c.do(ctx, http.MethodGet, "/cosmos/auth/v1beta1/account_info/"+url.PathEscape(address), nil, &resp); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("account %s not found on chain, fund it first", address)
		}
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	acc := &account{}
	var err error
	if acc.Number, err = parseUint(resp.Info.AccountNumber); err != nil {
		return nil, fmt.Errorf("invalid account number: %w", err)
	}
	if acc.Sequence, err = parseUint(resp.Info.Sequence); err != nil {
		return nil, fmt.Errorf("invalid sequence: %w", err)
	}
	return acc, nil
}

func parseUint(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 10, 64)
}

// Simulate runs msgs against the current state and returns the gas used
func (c *Client) Simulate(ctx context.Context, signer usecase.Signer, msgs []domain.Msg) (uint64, error) {
	acc, err := c.account(ctx, signer.Address())
	if err != nil {
		return 0, err
	}
	body, err := encodeTxBody(msgs, "")
	if err != nil {
		return 0, err
	}
	authInfo := encodeAuthInfo(signer.PubKey(), acc.Sequence, domain.Fee{})
	txBytes := encodeTxRaw(body, authInfo, []byte{})

	req := map[string]string{"tx_bytes": base64.StdEncoding.EncodeToString(txBytes)}
	var resp struct {
		GasInfo struct {
			GasUsed string `json:"gas_used"`
		} `json:"gas_info"`
	}
	if err := c.do(ctx, http.MethodPost, "/cosmos/tx/v1beta1/simulate", req, &resp); err != nil {
		return 0, err
	}
	gas, err := parseUint(resp.GasInfo.GasUsed)
	if err != nil {
		return 0, fmt.Errorf("invalid gas_used %q: %w", resp.GasInfo.GasUsed, err)
	}
	return gas, nil
}

// Sign builds and signs a SIGN_MODE_DIRECT transaction
func (c *Client) Sign(ctx context.Context, signer usecase.Signer, msgs []domain.Msg, fee domain.Fee, memo string) ([]byte, error) {
	chainID, err := c.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	acc, err := c.account(ctx, signer.Address())
	if err != nil {
		return nil, err
	}

	body, err := encodeTxBody(msgs, memo)
	if err != nil {
		return nil, err
	}
	authInfo := encodeAuthInfo(signer.PubKey(), acc.Sequence, fee)

	sig, err := signer.Sign(encodeSignDoc(body, authInfo, chainID, acc.Number))
	if err != nil {
		return nil, err
	}
	return encodeTxRaw(body, authInfo, sig), nil
}

type txAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type txEvent struct {
	Type       string        `json:"type"`
	Attributes []txAttribute `json:"attributes"`
}

type txResponse struct {
	TxHash    string    `json:"txhash"`
	Height    string    `json:"height"`
	Code      uint32    `json:"code"`
	Codespace string    `json:"codespace"`
	RawLog    string    `json:"raw_log"`
	GasWanted string    `json:"gas_wanted"`
	GasUsed   string    `json:"gas_used"`
	Events    []txEvent `json:"events"`
}

func (r *txResponse) toResult() *domain.TxResult {
	height, _ := strconv.ParseInt(r.Height, 10, 64)
	wanted, _ := strconv.ParseInt(r.GasWanted, 10, 64)
	used, _ := strconv.ParseInt(r.GasUsed, 10, 64)
	return &domain.TxResult{
		TxHash:    r.TxHash,
		Code:      r.Code,
		Codespace: r.Codespace,
		Height:    height,
		GasWanted: wanted,
		GasUsed:   used,
		RawLog:    r.RawLog,
		Events: lo.Map(r.Events, func(e txEvent, _ int) domain.Event {
			return domain.Event{
				Type: e.Type,
				Attributes: lo.Map(e.Attributes, func(a txAttribute, _ int) domain.EventAttribute {
					return domain.EventAttribute{Key: a.Key, Value: a.Value}
				}),
			}
		}),
	}
}

// Broadcast submits txBytes in sync mode and polls until the transaction is
// included or ctx is done. A CheckTx failure is returned as a result with a
// non-zero code.
func (c *Client) Broadcast(ctx context.Context, txBytes []byte) (*domain.TxResult, error) {
	req := map[string]string{
		"tx_bytes": base64.StdEncoding.EncodeToString(txBytes),
		"mode":     "BROADCAST_MODE_SYNC",
	}
	var resp struct {
		TxResponse txResponse `json:"tx_response"`
	}
	if err := c.do(ctx, http.MethodPost, "/cosmos/tx/v1beta1/txs", req, &resp); err != nil {
		return nil, err
	}
	if resp.TxResponse.Code != 0 {
		return resp.TxResponse.toResult(), nil
	}
	return c.waitForTx(ctx, resp.TxResponse.TxHash)
}

func (c *Client) waitForTx(ctx context.Context, hash string) (*domain.TxResult, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		var resp struct {
			TxResponse txResponse `json:"tx_response"`
		}
		err := c.do(ctx, http.MethodGet, "/cosmos/tx/v1beta1/txs/"+url.PathEscape(hash), nil, &resp)
		switch {
		case err == nil:
			return resp.TxResponse.toResult(), nil
		case !isNotFound(err):
			return nil, fmt.Errorf("failed to query transaction %s: %w", hash, err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("transaction %s was not included: %w", hash, ctx.Err())
		case <-ticker.C:
		}
	}
}

// Factory builds REST clients, reusing one per endpoint
type Factory struct {
	httpClient *http.Client

	mu      sync.Mutex
	clients map[string]*Client
}

// NewFactory creates a new client factory
func NewFactory() *Factory {
	return &Factory{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		clients:    make(map[string]*Client),
	}
}

// NewClient returns the client for network's REST endpoint
func (f *Factory) NewClient(network *domain.Network) usecase.ChainClient {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.clients[network.RESTEndpoint]; ok {
		return c
	}
	c := NewClient(network.RESTEndpoint, f.httpClient)
	f.clients[network.RESTEndpoint] = c
	return c
}

var (
	_ usecase.ChainClient   = (*Client)(nil)
	_ usecase.ClientFactory = (*Factory)(nil)
)
