package app

import (
	"github.com/mantrachain/dapp-template/internal/domain/config"
	"github.com/mantrachain/dapp-template/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Selector usecase.DeploymentSelector
	Progress usecase.ProgressSink

	// Use cases
	ResolveAppConfig   *usecase.ResolveAppConfig
	ShowChain          *usecase.ShowChain
	SetChain           *usecase.SetChain
	ListNetworks       *usecase.ListNetworks
	GetBalances        *usecase.GetBalances
	GetCounter         *usecase.GetCounter
	EstimateFee        *usecase.EstimateFee
	SubmitContractCall *usecase.SubmitContractCall
	DeployContract     *usecase.DeployContract
	MigrateContract    *usecase.MigrateContract
	ListDeployments    *usecase.ListDeployments
	ShowDeployment     *usecase.ShowDeployment
	ManageWallet       *usecase.ManageWallet
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	selector usecase.DeploymentSelector,
	progress usecase.ProgressSink,
	resolveAppConfig *usecase.ResolveAppConfig,
	showChain *usecase.ShowChain,
	setChain *usecase.SetChain,
	listNetworks *usecase.ListNetworks,
	getBalances *usecase.GetBalances,
	getCounter *usecase.GetCounter,
	estimateFee *usecase.EstimateFee,
	submitContractCall *usecase.SubmitContractCall,
	deployContract *usecase.DeployContract,
	migrateContract *usecase.MigrateContract,
	listDeployments *usecase.ListDeployments,
	showDeployment *usecase.ShowDeployment,
	manageWallet *usecase.ManageWallet,
) (*App, error) {
	return &App{
		Config:             cfg,
		Selector:           selector,
		Progress:           progress,
		ResolveAppConfig:   resolveAppConfig,
		ShowChain:          showChain,
		SetChain:           setChain,
		ListNetworks:       listNetworks,
		GetBalances:        getBalances,
		GetCounter:         getCounter,
		EstimateFee:        estimateFee,
		SubmitContractCall: submitContractCall,
		DeployContract:     deployContract,
		MigrateContract:    migrateContract,
		ListDeployments:    listDeployments,
		ShowDeployment:     showDeployment,
		ManageWallet:       manageWallet,
	}, nil
}
