package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/domain/config"
	"github.com/mantrachain/dapp-template/internal/domain/models"
)

// Chain access ports

// Signer holds a wallet key and produces signatures over sign bytes
type Signer interface {
	Address() string
	PubKey() []byte
	Sign(signBytes []byte) ([]byte, error)
}

// ChainClient talks to one chain endpoint
type ChainClient interface {
	// ID identifies the endpoint; it is part of query cache keys
	ID() string
	ChainID(ctx context.Context) (string, error)
	AllBalances(ctx context.Context, address string) ([]domain.Coin, error)
	QuerySmart(ctx context.Context, contract string, query []byte) ([]byte, error)
	Simulate(ctx context.Context, signer Signer, msgs []domain.Msg) (gasUsed uint64, err error)
	Sign(ctx context.Context, signer Signer, msgs []domain.Msg, fee domain.Fee, memo string) ([]byte, error)
	// Broadcast submits signed tx bytes and waits until the tx is included
	Broadcast(ctx context.Context, txBytes []byte) (*domain.TxResult, error)
}

// ClientFactory builds chain clients for a network
type ClientFactory interface {
	NewClient(network *domain.Network) ChainClient
}

// KeyDeriver turns a mnemonic into a signer for a bech32 prefix
type KeyDeriver interface {
	ValidateMnemonic(mnemonic string) error
	Derive(mnemonic, prefix string) (Signer, error)
}

// MnemonicStore persists a wallet mnemonic outside the project tree
type MnemonicStore interface {
	Get() (string, error) // domain.ErrNotFound when absent
	Set(mnemonic string) error
	Remove() error
}

// MnemonicSource resolves the mnemonic to use for this run, reporting where
// it came from. Fails with domain.ErrMissingMnemonic when there is none.
type MnemonicSource interface {
	Mnemonic(ctx context.Context) (mnemonic string, origin string, err error)
}

// SessionProvider connects a wallet to a network
type SessionProvider interface {
	// Connect returns a populated session, or an error wrapping
	// domain.ErrNotConnected when no wallet is available.
	Connect(ctx context.Context, network *domain.Network) (*Session, error)
}

// GasPriceOracle reads the live price per gas unit
type GasPriceOracle interface {
	GasPrice(ctx context.Context) (domain.DecCoin, error)
}

// Query cache

// QueryKey identifies a cached query result. The first element names the query.
type QueryKey []string

func (k QueryKey) String() string {
	return strings.Join(k, "/")
}

// QueryCache stores query results until they are invalidated
type QueryCache interface {
	Get(key QueryKey) (any, bool)
	Set(key QueryKey, value any)
	// Invalidate drops every entry whose key starts with prefix and
	// returns how many were dropped
	Invalidate(prefix QueryKey) int
}

// Notifications

// ToastVariant selects the toast style
type ToastVariant string

const (
	ToastSuccess     ToastVariant = "success"
	ToastDestructive ToastVariant = "destructive"
)

// Toast is a transient user notification
type Toast struct {
	Variant     ToastVariant
	Title       string
	Description string
	TxHash      string
	TxURL       string
	Duration    time.Duration
}

// Notifier shows toasts to the user
type Notifier interface {
	Notify(ctx context.Context, toast Toast)
}

// DialogObserver is told when the awaiting-transaction dialog opens or closes
type DialogObserver interface {
	OnDialogChange(open bool, action string)
}

// Configuration ports

// LocalConfigRepository manages local configuration persistence
type LocalConfigRepository interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, config *config.LocalConfig) error
	GetPath() string
}

// NetworkResolver handles network configuration resolution
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, networkName string) (*domain.Network, error)
}

// ContractRegistry maps chain selections to networks and contract addresses
type ContractRegistry interface {
	ResolveChain(ctx context.Context, chain domain.ChainName) (*domain.Network, error)
	ContractAddress(ctx context.Context, chain domain.ChainName) (string, error)
}

// Deployment ports

// DeployConfigLoader reads deployment and migration configs (.json, .toml, .yaml)
type DeployConfigLoader interface {
	LoadDeploymentConfig(ctx context.Context, path string) (*config.DeploymentConfig, error)
	LoadMigrationConfig(ctx context.Context, path string) (*config.MigrationConfig, error)
}

// ArtifactStore reads compiled contract code
type ArtifactStore interface {
	ReadWasm(ctx context.Context, path string) ([]byte, error)
	// VerifyChecksum checks wasm against the sha256 listed for wasmPath in
	// checksumsPath, failing with domain.ErrChecksumMismatch
	VerifyChecksum(ctx context.Context, checksumsPath, wasmPath string, wasm []byte) error
}

// DeploymentRecordStore persists deployment and migration records
type DeploymentRecordStore interface {
	SaveDeployment(ctx context.Context, name string, record *models.DeploymentRecord, at time.Time) (string, error)
	SaveMigration(ctx context.Context, name string, record *models.MigrationRecord, at time.Time) (string, error)
	// List returns records for one network, or all networks when network is empty
	List(ctx context.Context, network string) ([]*models.StoredRecord, error)
}

// Interactive ports

// ChainSelector picks a chain interactively
type ChainSelector interface {
	SelectChain(ctx context.Context, chains []domain.ChainName, current domain.ChainName) (domain.ChainName, error)
}

// DeploymentSelector handles interactive selection of deployment records
type DeploymentSelector interface {
	SelectDeployment(ctx context.Context, records []*models.StoredRecord, prompt string) (*models.StoredRecord, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// NopNotifier drops all toasts
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Toast) {}
