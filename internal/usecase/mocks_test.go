package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/domain/config"
	"github.com/mantrachain/dapp-template/internal/domain/models"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testNetwork = &domain.Network{
	Name:          "dukong",
	ChainID:       "mantra-dukong-1",
	RPCEndpoint:   "https://rpc.dukong.mantrachain.io",
	RESTEndpoint:  "https://api.dukong.mantrachain.io",
	ExplorerTxURL: "https://www.mintscan.io/mantra-testnet/tx/",
	Bech32Prefix:  "mantra",
	FeeDenom:      "uom",
	GasPrice:      domain.DecCoin{Denom: "uom", Amount: "0.01"},
}

const (
	testContract = "mantra1c4darky93xxfseg95vpvn55cul9uf5raza5qsrfzwk2pmue6xctsfpws3f"
	testSender   = "mantra1sender0000000000000000000000000000"
)

func testRuntimeConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		ProjectRoot: "/tmp/project",
		DataDir:     "/tmp/project/.dapp",
		Chain:       domain.ChainTestnet,
		Network:     testNetwork,
		Timeout:     time.Minute,
	}
}

// MockSigner is a mock implementation of Signer
type MockSigner struct {
	mock.Mock
	address string
}

func (m *MockSigner) Address() string { return m.address }
func (m *MockSigner) PubKey() []byte  { return []byte{0x02} }
func (m *MockSigner) Sign(b []byte) ([]byte, error) {
	args := m.Called(b)
	return args.Get(0).([]byte), args.Error(1)
}

// MockChainClient is a mock implementation of ChainClient
type MockChainClient struct {
	mock.Mock
}

func (m *MockChainClient) ID() string { return "https://api.dukong.mantrachain.io" }

func (m *MockChainClient) ChainID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockChainClient) AllBalances(ctx context.Context, address string) ([]domain.Coin, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Coin), args.Error(1)
}

func (m *MockChainClient) QuerySmart(ctx context.Context, contract string, query []byte) ([]byte, error) {
	args := m.Called(ctx, contract, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockChainClient) Simulate(ctx context.Context, signer usecase.Signer, msgs []domain.Msg) (uint64, error) {
	args := m.Called(ctx, signer, msgs)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockChainClient) Sign(ctx context.Context, signer usecase.Signer, msgs []domain.Msg, fee domain.Fee, memo string) ([]byte, error) {
	args := m.Called(ctx, signer, msgs, fee, memo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockChainClient) Broadcast(ctx context.Context, txBytes []byte) (*domain.TxResult, error) {
	args := m.Called(ctx, txBytes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TxResult), args.Error(1)
}

// staticClients always hands out the same client
type staticClients struct {
	client usecase.ChainClient
}

func (f staticClients) NewClient(*domain.Network) usecase.ChainClient { return f.client }

// MockSessionProvider is a mock implementation of SessionProvider
type MockSessionProvider struct {
	mock.Mock
}

func (m *MockSessionProvider) Connect(ctx context.Context, network *domain.Network) (*usecase.Session, error) {
	args := m.Called(ctx, network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.Session), args.Error(1)
}

// MockOracle is a mock implementation of GasPriceOracle
type MockOracle struct {
	mock.Mock
}

func (m *MockOracle) GasPrice(ctx context.Context) (domain.DecCoin, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DecCoin), args.Error(1)
}

// recordingNotifier keeps every toast
type recordingNotifier struct {
	toasts []usecase.Toast
}

func (n *recordingNotifier) Notify(_ context.Context, t usecase.Toast) {
	n.toasts = append(n.toasts, t)
}

// mapCache is a minimal QueryCache
type mapCache struct {
	mu      sync.Mutex
	entries map[string]any
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string]any{}}
}

func (c *mapCache) Get(key usecase.QueryKey) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key.String()]
	return v, ok
}

func (c *mapCache) Set(key usecase.QueryKey, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key.String()] = value
}

func (c *mapCache) Invalidate(prefix usecase.QueryKey) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	p := prefix.String()
	for k := range c.entries {
		if k == p || strings.HasPrefix(k, p+"/") {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// staticRegistry resolves every supported chain to testNetwork
type staticRegistry struct {
	contracts map[domain.ChainName]string
}

func newStaticRegistry() *staticRegistry {
	return &staticRegistry{contracts: map[domain.ChainName]string{
		domain.ChainMainnet: testContract,
		domain.ChainTestnet: testContract,
	}}
}

func (r *staticRegistry) ResolveChain(_ context.Context, chain domain.ChainName) (*domain.Network, error) {
	if _, err := chain.NetworkName(); err != nil {
		return nil, err
	}
	n := *testNetwork
	return &n, nil
}

func (r *staticRegistry) ContractAddress(_ context.Context, chain domain.ChainName) (string, error) {
	addr, ok := r.contracts[chain]
	if !ok {
		return "", domain.ErrUnsupportedChain
	}
	return addr, nil
}

func (r *staticRegistry) GetNetworks(context.Context) []string {
	return []string{"dukong"}
}

func (r *staticRegistry) ResolveNetwork(_ context.Context, name string) (*domain.Network, error) {
	if name != "dukong" && name != "mainnet" {
		return nil, domain.ErrUnknownNetwork
	}
	n := *testNetwork
	n.Name = name
	return &n, nil
}

// MockLocalConfigStore is a mock implementation of LocalConfigRepository
type MockLocalConfigStore struct {
	mock.Mock
}

func (m *MockLocalConfigStore) Exists() bool {
	return m.Called().Bool(0)
}

func (m *MockLocalConfigStore) Load(ctx context.Context) (*config.LocalConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.LocalConfig), args.Error(1)
}

func (m *MockLocalConfigStore) Save(ctx context.Context, cfg *config.LocalConfig) error {
	return m.Called(ctx, cfg).Error(0)
}

func (m *MockLocalConfigStore) GetPath() string {
	return "/tmp/project/.dapp/config.local.json"
}

// MockRecordStore is a mock implementation of DeploymentRecordStore
type MockRecordStore struct {
	mock.Mock
}

func (m *MockRecordStore) SaveDeployment(ctx context.Context, name string, record *models.DeploymentRecord, at time.Time) (string, error) {
	args := m.Called(ctx, name, record, at)
	return args.String(0), args.Error(1)
}

func (m *MockRecordStore) SaveMigration(ctx context.Context, name string, record *models.MigrationRecord, at time.Time) (string, error) {
	args := m.Called(ctx, name, record, at)
	return args.String(0), args.Error(1)
}

func (m *MockRecordStore) List(ctx context.Context, network string) ([]*models.StoredRecord, error) {
	args := m.Called(ctx, network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StoredRecord), args.Error(1)
}

// MockProgressSink is a mock implementation of ProgressSink
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}
func (m *MockProgressSink) Info(message string)  { m.infos = append(m.infos, message) }
func (m *MockProgressSink) Error(message string) {}

func (m *MockProgressSink) stages() []string {
	stages := make([]string, 0, len(m.events))
	for _, e := range m.events {
		stages = append(stages, e.Stage)
	}
	return stages
}

// recordingObserver keeps every dialog change
type recordingObserver struct {
	mu      sync.Mutex
	changes []bool
}

func (o *recordingObserver) OnDialogChange(open bool, _ string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.changes = append(o.changes, open)
}
