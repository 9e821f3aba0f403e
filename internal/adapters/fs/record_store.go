package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/mantrachain/dapp-template/internal/domain/config"
	"github.com/mantrachain/dapp-template/internal/domain/models"
	"github.com/mantrachain/dapp-template/internal/usecase"
)

// DeploymentDir holds one sub-directory of records per network
const DeploymentDir = "deployment"

// RecordStoreAdapter writes deployment and migration records as JSON files
// under <project>/deployment/<network>/
type RecordStoreAdapter struct {
	projectRoot string
	root        string
}

// NewRecordStoreAdapter creates a new RecordStoreAdapter
func NewRecordStoreAdapter(cfg *config.RuntimeConfig) *RecordStoreAdapter {
	return &RecordStoreAdapter{
		projectRoot: cfg.ProjectRoot,
		root:        filepath.Join(cfg.ProjectRoot, DeploymentDir),
	}
}

// SaveDeployment writes record and returns its path relative to the project root
func (s *RecordStoreAdapter) SaveDeployment(ctx context.Context, name string, record *models.DeploymentRecord, at time.Time) (string, error) {
	return s.write(record.Network, models.RecordFileName(models.RecordKindDeployment, name, at), record)
}

// SaveMigration writes record and returns its path relative to the project root
func (s *RecordStoreAdapter) SaveMigration(ctx context.Context, name string, record *models.MigrationRecord, at time.Time) (string, error) {
	return s.write(record.Network, models.RecordFileName(models.RecordKindMigration, name, at), record)
}

func (s *RecordStoreAdapter) write(network, fileName string, record any) (string, error) {
	if network == "" {
		return "", errors.New("record has no network")
	}
	dir := filepath.Join(s.root, network)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create deployment directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal record: %w", err)
	}

	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write record: %w", err)
	}
	return s.relative(path), nil
}

func (s *RecordStoreAdapter) relative(path string) string {
	rel, err := filepath.Rel(s.projectRoot, path)
	if err != nil {
		return path
	}
	return rel
}

// List reads records for network, or for every network when it is empty.
// Files that do not look like records are skipped.
func (s *RecordStoreAdapter) List(ctx context.Context, network string) ([]*models.StoredRecord, error) {
	networks := []string{network}
	if network == "" {
		entries, err := os.ReadDir(s.root)
		if os.IsNotExist(err) {
			return []*models.StoredRecord{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read deployment directory: %w", err)
		}
		networks = networks[:0]
		for _, e := range entries {
			if e.IsDir() {
				networks = append(networks, e.Name())
			}
		}
		sort.Strings(networks)
	}

	records := []*models.StoredRecord{}
	for _, n := range networks {
		recs, err := s.listNetwork(n)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

func (s *RecordStoreAdapter) listNetwork(network string) ([]*models.StoredRecord, error) {
	dir := filepath.Join(s.root, network)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var records []*models.StoredRecord
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		kind, name, at, err := models.ParseRecordFileName(e.Name())
		if err != nil {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read record %s: %w", path, err)
		}

		rec := &models.StoredRecord{
			Kind:      kind,
			Name:      name,
			Network:   network,
			Path:      s.relative(path),
			CreatedAt: at,
		}
		switch kind {
		case models.RecordKindMigration:
			rec.Migration = &models.MigrationRecord{}
			err = json.Unmarshal(data, rec.Migration)
		default:
			rec.Deployment = &models.DeploymentRecord{}
			err = json.Unmarshal(data, rec.Deployment)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse record %s: %w", path, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

var _ usecase.DeploymentRecordStore = (*RecordStoreAdapter)(nil)
