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

// Deployment stages reported through the ProgressSink
const (
	StageLoadConfig  = "config"
	StageConnect     = "connect"
	StageUpload      = "upload"
	StageInstantiate = "instantiate"
	StageMigrate     = "migrate"
	StageSave        = "save"
)

// DeployParams contains parameters for a deployment run
type DeployParams struct {
	ConfigPath string
}

// DeployResult contains the outcome of a deployment run
type DeployResult struct {
	Config          *config.DeploymentConfig `json:"config,omitempty"`
	Network         *domain.Network          `json:"network,omitempty"`
	ChainID         string                   `json:"chainId"`
	Deployer        string                   `json:"deployer"`
	CodeID          uint64                   `json:"codeId"`
	ContractAddress string                   `json:"contractAddress"`
	UploadTx        *domain.TxResult         `json:"uploadTx,omitempty"`
	InstantiateTx   *domain.TxResult         `json:"instantiateTx,omitempty"`
	TransactionURL  string                   `json:"transactionUrl"`
	RecordPath      string                   `json:"recordPath"` // empty unless the config asked to save the deployment
}

// DeployContract uploads contract code and instantiates it. It is a single
// linear run; any failing step aborts it.
type DeployContract struct {
	loader    DeployConfigLoader
	artifacts ArtifactStore
	networks  NetworkResolver
	sessions  SessionProvider
	fees      *FeeEstimator
	records   DeploymentRecordStore
	sink      ProgressSink
	log       *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	loader DeployConfigLoader,
	artifacts ArtifactStore,
	networks NetworkResolver,
	sessions SessionProvider,
	fees *FeeEstimator,
	records DeploymentRecordStore,
	sink ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
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

// Run executes the deployment
func (uc *DeployContract) Run(ctx context.Context, params DeployParams) (*DeployResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageLoadConfig, Message: "Reading deployment config", Spinner: true})

	cfg, err := uc.loader.LoadDeploymentConfig(ctx, params.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	initMsg, err := cfg.InitMsgBytes()
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
	chainID, err := session.Client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", network.RPCEndpoint, err)
	}
	uc.log.Debug("connected", "network", network.Name, "chainId", chainID, "deployer", session.Address)

	result := &DeployResult{
		Config:   cfg,
		Network:  network,
		ChainID:  chainID,
		Deployer: session.Address,
	}

	codeID, uploadTx, err := uploadCode(ctx, uc.artifacts, uc.fees, uc.sink, session, cfg.ContractWasmPath, cfg.ChecksumsPath)
	if err != nil {
		return nil, err
	}
	result.CodeID = codeID
	result.UploadTx = uploadTx
	uc.sink.Info(fmt.Sprintf("Contract uploaded with Code ID: %d", codeID))

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageInstantiate, Message: "Instantiating contract", Spinner: true})
	instantiate := &domain.MsgInstantiateContract{
		Sender: session.Address,
		Admin:  cfg.Admin,
		CodeID: codeID,
		Label:  cfg.ContractLabel(),
		Msg:    initMsg,
	}
	instTx, err := executeTx(ctx, uc.fees, session, []domain.Msg{instantiate}, domain.FeePolicyAuto)
	if err != nil {
		return nil, fmt.Errorf("instantiate failed: %w", err)
	}
	addr, ok := instTx.Attribute("instantiate", "_contract_address")
	if !ok {
		return nil, fmt.Errorf("contract address not found in transaction %s events", instTx.TxHash)
	}
	result.ContractAddress = addr
	result.InstantiateTx = instTx
	result.TransactionURL = network.TxURL(instTx.TxHash)
	uc.sink.Info(fmt.Sprintf("Contract instantiated at address: %s", addr))

	if cfg.SaveDeployment {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageSave, Message: "Saving deployment record"})
		record := &models.DeploymentRecord{
			Deployer:        session.Address,
			Network:         cfg.Network,
			RPCEndpoint:     network.RPCEndpoint,
			CodeID:          codeID,
			ContractAddress: addr,
			InitMsg:         json.RawMessage(initMsg),
			TransactionHash: instTx.TxHash,
			TransactionURL:  result.TransactionURL,
		}
		path, err := uc.records.SaveDeployment(ctx, cfg.Name, record, time.Now())
		if err != nil {
			return nil, fmt.Errorf("failed to save deployment record: %w", err)
		}
		result.RecordPath = path
	}

	return result, nil
}

// uploadCode reads and verifies the wasm file and stores it on chain
func uploadCode(
	ctx context.Context,
	artifacts ArtifactStore,
	fees *FeeEstimator,
	sink ProgressSink,
	s *Session,
	wasmPath, checksumsPath string,
) (uint64, *domain.TxResult, error) {
	wasm, err := artifacts.ReadWasm(ctx, wasmPath)
	if err != nil {
		return 0, nil, err
	}
	if checksumsPath != "" {
		if err := artifacts.VerifyChecksum(ctx, checksumsPath, wasmPath, wasm); err != nil {
			return 0, nil, err
		}
	}

	sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageUpload,
		Message: fmt.Sprintf("Uploading %s (%d bytes)", wasmPath, len(wasm)),
		Spinner: true,
	})
	store := &domain.MsgStoreCode{Sender: s.Address, WASMByteCode: wasm}
	res, err := executeTx(ctx, fees, s, []domain.Msg{store}, domain.FeePolicyAuto)
	if err != nil {
		return 0, nil, fmt.Errorf("upload failed: %w", err)
	}
	codeID, err := codeIDFromResult(res)
	if err != nil {
		return 0, nil, err
	}
	return codeID, res, nil
}
