package usecase

import (
	"context"
	"sort"

	"github.com/mantrachain/dapp-template/internal/domain/models"
)

// ListDeploymentsParams contains parameters for listing deployments
type ListDeploymentsParams struct {
	Network string  // empty lists all networks
	Name    string
}

// DeploymentListResult contains the result of listing deployments
type DeploymentListResult struct {
	Records []*models.StoredRecord `json:"records,omitempty"`
	Summary DeploymentSummary      `json:"summary"`
}

// DeploymentSummary provides summary statistics
type DeploymentSummary struct {
	Total     int                       `json:"total"`
	ByNetwork map[string]int            `json:"byNetwork"`
	ByKind    map[models.RecordKind]int `json:"byKind"`
}

// ListDeployments is the use case for listing deployment records
type ListDeployments struct {
	store DeploymentRecordStore
	sink  ProgressSink
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(store DeploymentRecordStore, sink ProgressSink) *ListDeployments {
	return &ListDeployments{
		store: store,
		sink:  sink,
	}
}

// Run executes the list deployments use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*DeploymentListResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading deployment records",
		Spinner: true,
	})

	records, err := uc.store.List(ctx, params.Network)
	if err != nil {
		return nil, err
	}

	if params.Name != "" {
		filtered := records[:0]
		for _, r := range records {
			if r.Name == params.Name {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	sortRecords(records)

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: len(records),
		Total:   len(records),
		Message: "Deployment records loaded",
	})

	return &DeploymentListResult{
		Records: records,
		Summary: calculateSummary(records),
	}, nil
}

// sortRecords sorts by network, then newest first, then name
func sortRecords(records []*models.StoredRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Network != records[j].Network {
			return records[i].Network < records[j].Network
		}
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].Name < records[j].Name
	})
}

// calculateSummary calculates summary statistics for records
func calculateSummary(records []*models.StoredRecord) DeploymentSummary {
	summary := DeploymentSummary{
		Total:     len(records),
		ByNetwork: make(map[string]int),
		ByKind:    make(map[models.RecordKind]int),
	}

	for _, r := range records {
		summary.ByNetwork[r.Network]++
		summary.ByKind[r.Kind]++
	}

	return summary
}
