//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/mantrachain/dapp-template/internal/adapters"
	"github.com/mantrachain/dapp-template/internal/config"
	"github.com/mantrachain/dapp-template/internal/logging"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewResolveAppConfig,
		usecase.NewShowChain,
		usecase.NewSetChain,
		usecase.NewListNetworks,
		usecase.NewGetBalances,
		usecase.NewGetCounter,
		usecase.NewFeeEstimator,
		usecase.NewEstimateFee,
		usecase.NewSubmitContractCall,
		usecase.NewDeployContract,
		usecase.NewMigrateContract,
		usecase.NewListDeployments,
		usecase.NewShowDeployment,
		usecase.NewManageWallet,

		// App
		NewApp,
	)
	return nil, nil
}
