package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/domain/config"
	"github.com/mantrachain/dapp-template/internal/domain/models"
)

// ShowDeploymentParams contains parameters for showing one record
type ShowDeploymentParams struct {
	// Ref is a record file name, contract address or deployment name (latest wins).
	// An empty Ref selects interactively.
	Ref     string
	Network string
}

// ShowDeployment resolves a single deployment record
type ShowDeployment struct {
	config   *config.RuntimeConfig
	store    DeploymentRecordStore
	selector DeploymentSelector
}

// NewShowDeployment creates a new ShowDeployment use case
func NewShowDeployment(cfg *config.RuntimeConfig, store DeploymentRecordStore, selector DeploymentSelector) *ShowDeployment {
	return &ShowDeployment{
		config:   cfg,
		store:    store,
		selector: selector,
	}
}

// Run executes the use case
func (uc *ShowDeployment) Run(ctx context.Context, params ShowDeploymentParams) (*models.StoredRecord, error) {
	records, err := uc.store.List(ctx, params.Network)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no deployment records", domain.ErrNotFound)
	}
	sortRecords(records)

	if params.Ref == "" {
		if uc.config.NonInteractive {
			return nil, fmt.Errorf("a deployment reference is required in non-interactive mode")
		}
		return uc.selector.SelectDeployment(ctx, records, "Select deployment")
	}

	ref := strings.TrimSpace(params.Ref)
	var latest *models.StoredRecord
	for _, r := range records {
		if filepath.Base(r.Path) == ref || strings.EqualFold(r.ContractAddress(), ref) {
			return r, nil
		}
		if r.Name == ref && (latest == nil || r.CreatedAt.After(latest.CreatedAt)) {
			latest = r
		}
	}
	if latest != nil {
		return latest, nil
	}
	return nil, fmt.Errorf("%w: deployment %q", domain.ErrNotFound, ref)
}
