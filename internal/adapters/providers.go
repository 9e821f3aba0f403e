package adapters

import (
	"github.com/google/wire"
	"github.com/mantrachain/dapp-template/internal/adapters/cache"
	"github.com/mantrachain/dapp-template/internal/adapters/cosmos"
	"github.com/mantrachain/dapp-template/internal/adapters/dialog"
	"github.com/mantrachain/dapp-template/internal/adapters/fs"
	"github.com/mantrachain/dapp-template/internal/adapters/gasprice"
	"github.com/mantrachain/dapp-template/internal/adapters/interactive"
	"github.com/mantrachain/dapp-template/internal/adapters/keystore"
	"github.com/mantrachain/dapp-template/internal/adapters/notify"
	"github.com/mantrachain/dapp-template/internal/adapters/session"
	"github.com/mantrachain/dapp-template/internal/config"
	"github.com/mantrachain/dapp-template/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigRepository), new(*fs.LocalConfigStoreAdapter)),

	fs.NewRecordStoreAdapter,
	wire.Bind(new(usecase.DeploymentRecordStore), new(*fs.RecordStoreAdapter)),

	fs.NewDeployConfigLoaderAdapter,
	wire.Bind(new(usecase.DeployConfigLoader), new(*fs.DeployConfigLoaderAdapter)),

	fs.NewArtifactStoreAdapter,
	wire.Bind(new(usecase.ArtifactStore), new(*fs.ArtifactStoreAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	config.ProvideNetworkRegistry,
	wire.Bind(new(usecase.NetworkResolver), new(*config.NetworkRegistry)),
	wire.Bind(new(usecase.ContractRegistry), new(*config.NetworkRegistry)),
)

// ChainSet provides chain access, keys and the wallet session
var ChainSet = wire.NewSet(
	cosmos.NewFactory,
	wire.Bind(new(usecase.ClientFactory), new(*cosmos.Factory)),

	cosmos.NewKeyDeriver,
	wire.Bind(new(usecase.KeyDeriver), new(*cosmos.KeyDeriver)),

	keystore.DefaultKeystore,
	wire.Bind(new(usecase.MnemonicStore), new(*keystore.Keystore)),

	session.NewSource,
	wire.Bind(new(usecase.MnemonicSource), new(*session.Source)),

	session.NewProvider,
	wire.Bind(new(usecase.SessionProvider), new(*session.Provider)),

	gasprice.ProvideOracle,
	wire.Bind(new(usecase.GasPriceOracle), new(*gasprice.Oracle)),
)

// QuerySet provides the shared query cache
var QuerySet = wire.NewSet(
	cache.NewQueryCache,
	wire.Bind(new(usecase.QueryCache), new(*cache.QueryCache)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ChainSelector), new(*interactive.SelectorAdapter)),
	wire.Bind(new(usecase.DeploymentSelector), new(*interactive.SelectorAdapter)),

	notify.ProvideNotifier,
	dialog.ProvideObserver,
	dialog.ProvideAwaitingDialog,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ConfigSet,
	ChainSet,
	QuerySet,
	InteractiveSet,
)
