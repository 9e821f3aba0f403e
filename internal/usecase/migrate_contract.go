package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/domain/config"
	"github.com/mantrachain/dapp-template/internal/domain/models"
)

// MigrateParams contains parameters for a migration run
type MigrateParams struct {
	ConfigPath string
}

// MigrateResult contains the outcome of a migration run
type MigrateResult struct {
	Config          *config.MigrationConfig `json:"config,omitempty"`
	Network         *domain.Network         `json:"network,omitempty"`
	Migrator        string                  `json:"migrator"`
	CodeID          uint64                  `json:"codeId"`
	ContractAddress string                  `json:"contractAddress"`
	UploadTx        *domain.TxResult        `json:"uploadTx,omitempty"`
	MigrateTx       *domain.TxResult        `json:"migrateTx,omitempty"`
	TransactionURL  string                  `json:"transactionUrl"`
	RecordPath      string                  `json:"recordPath"`
}

// MigrateContract uploads new code and migrates an existing contract to it
type MigrateContract struct {
	loader    DeployConfigLoader
	artifacts ArtifactStore
	networks  NetworkResolver
	sessions  SessionProvider
	fees      *FeeEstimator
	records   DeploymentRecordStore
	sink      ProgressSink
	log       *slog.Logger
}

// NewMigrateContract creates a new MigrateContract use case
func NewMigrateContract(
	loader DeployConfigLoader,
	artifacts ArtifactStore,
	networks NetworkResolver,
	sessions SessionProvider,
	fees *FeeEstimator,
	records DeploymentRecordStore,
	sink ProgressSink,
	log *slog.Logger,
) *MigrateContract {
	return &MigrateContract{
		loader:    loader,
		artifacts: artifacts,
		networks:  networks,
		sessions:  sessions,
		fees:      fees,
		records:   records,
		sink:      sink,
		log:       log,
	}
}

// Run executes the migration
func (uc *MigrateContract) Run(ctx context.Context, params MigrateParams) (*MigrateResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageLoadConfig, Message: "Reading migration config", Spinner: true})

	cfg, err := uc.loader.LoadMigrationConfig(ctx, params.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	migrateMsg, err := cfg.MigrateMsgBytes()
	if err != nil {
		return nil, err
	}

	network, err := uc.networks.ResolveNetwork(ctx, cfg.Network)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageConnect, Message: fmt.Sprintf("Connecting to %s", network.Name), Spinner: true})
	session, err := uc.sessions.Connect(ctx, network)
	if err != nil {
		return nil, err
	}

	result := &MigrateResult{
		Config:          cfg,
		Network:         network,
		Migrator:        session.Address,
		ContractAddress: cfg.ContractAddress,
	}

	codeID, uploadTx, err := uploadCode(ctx, uc.artifacts, uc.fees, uc.sink, session, cfg.ContractWasmPath, cfg.ChecksumsPath)
	if err != nil {
		return nil, err
	}
	result.CodeID = codeID
	result.UploadTx = uploadTx
	uc.sink.Info(fmt.Sprintf("Contract uploaded with Code ID: %d", codeID))

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageMigrate, Message: fmt.Sprintf("Migrating %s", cfg.ContractAddress), Spinner: true})
	migrate := &domain.MsgMigrateContract{
		Sender:   session.Address,
		Contract: cfg.ContractAddress,
		CodeID:   codeID,
		Msg:      migrateMsg,
	}
	migTx, err := executeTx(ctx, uc.fees, session, []domain.Msg{migrate}, domain.FeePolicyAuto)
	if err != nil {
		return nil, fmt.Errorf("migrate failed: %w", err)
	}
	result.MigrateTx = migTx
	result.TransactionURL = network.TxURL(migTx.TxHash)
	uc.log.Debug("migrated", "contract", cfg.ContractAddress, "codeId", codeID, "tx", migTx.TxHash)

	if cfg.SaveMigration {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageSave, Message: "Saving migration record"})
		record := &models.MigrationRecord{
			Migrator:        session.Address,
			Network:         cfg.Network,
			RPCEndpoint:     network.RPCEndpoint,
			CodeID:          codeID,
			ContractAddress: cfg.ContractAddress,
			MigrateMsg:      json.RawMessage(migrateMsg),
			TransactionHash: migTx.TxHash,
			TransactionURL:  result.TransactionURL,
		}
		path, err := uc.records.SaveMigration(ctx, cfg.Name, record, time.Now())
		if err != nil {
			return nil, fmt.Errorf("failed to save migration record: %w", err)
		}
		result.RecordPath = path
	}

	return result, nil
}
