package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// RecordTimestampLayout formats record filenames as YYYY_MM_DD_HH_mm_ss in UTC
const RecordTimestampLayout = "2006_01_02_15_04_05"

// RecordKind distinguishes deployment and migration records
type RecordKind string

const (
	RecordKindDeployment RecordKind = "deployment"
	RecordKindMigration  RecordKind = "migration"
)

// DeploymentRecord is the JSON document written after a successful deployment
type DeploymentRecord struct {
	Deployer        string          `json:"deployer"`
	Network         string          `json:"network"`
	RPCEndpoint     string          `json:"rpcEndpoint"`
	CodeID          uint64          `json:"codeId"`
	ContractAddress string          `json:"contractAddress"`
	InitMsg         json.RawMessage `json:"initMsg"`
	TransactionHash string          `json:"transactionHash"`
	TransactionURL  string          `json:"transactionUrl"`
}

// MigrationRecord is the JSON document written after a successful migration
type MigrationRecord struct {
	Migrator        string          `json:"migrator"`
	Network         string          `json:"network"`
	RPCEndpoint     string          `json:"rpcEndpoint"`
	CodeID          uint64          `json:"codeId"`
	ContractAddress string          `json:"contractAddress"`
	MigrateMsg      json.RawMessage `json:"migrateMsg"`
	TransactionHash string          `json:"transactionHash"`
	TransactionURL  string          `json:"transactionUrl"`
}

// RecordFileName returns "<name>_<ts>.json" for deployments and
// "<name>_migration_<ts>.json" for migrations.
func RecordFileName(kind RecordKind, name string, at time.Time) string {
	ts := at.UTC().Format(RecordTimestampLayout)
	if kind == RecordKindMigration {
		return fmt.Sprintf("%s_migration_%s.json", name, ts)
	}
	return fmt.Sprintf("%s_%s.json", name, ts)
}

// StoredRecord is a record read back from the deployment directory
type StoredRecord struct {
	Kind      RecordKind `json:"kind"`
	Name      string     `json:"name"`
	Network   string     `json:"network"`
	Path      string     `json:"path"`
	CreatedAt time.Time  `json:"createdAt"`

	Deployment *DeploymentRecord `json:"deployment,omitempty"`
	Migration  *MigrationRecord  `json:"migration,omitempty"`
}

// ContractAddress returns the contract address of either record kind
func (r *StoredRecord) ContractAddress() string {
	switch {
	case r.Deployment != nil:
		return r.Deployment.ContractAddress
	case r.Migration != nil:
		return r.Migration.ContractAddress
	}
	return ""
}

// CodeID returns the code id of either record kind
func (r *StoredRecord) CodeID() uint64 {
	switch {
	case r.Deployment != nil:
		return r.Deployment.CodeID
	case r.Migration != nil:
		return r.Migration.CodeID
	}
	return 0
}

// TransactionHash returns the transaction hash of either record kind
func (r *StoredRecord) TransactionHash() string {
	switch {
	case r.Deployment != nil:
		return r.Deployment.TransactionHash
	case r.Migration != nil:
		return r.Migration.TransactionHash
	}
	return ""
}

// GetDisplayName returns a human-friendly name for the record
func (r *StoredRecord) GetDisplayName() string {
	return fmt.Sprintf("%s/%s (%s)", r.Network, r.Name, r.CreatedAt.UTC().Format(time.DateTime))
}

// ParseRecordFileName splits a record filename back into kind, name and time.
func ParseRecordFileName(filename string) (RecordKind, string, time.Time, error) {
	base := strings.TrimSuffix(filename, ".json")
	if base == filename || len(base) <= len(RecordTimestampLayout)+1 {
		return "", "", time.Time{}, fmt.Errorf("not a record file: %s", filename)
	}
	tsStart := len(base) - len(RecordTimestampLayout)
	if base[tsStart-1] != '_' {
		return "", "", time.Time{}, fmt.Errorf("not a record file: %s", filename)
	}
	at, err := time.ParseInLocation(RecordTimestampLayout, base[tsStart:], time.UTC)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("not a record file: %s: %w", filename, err)
	}
	name := base[:tsStart-1]
	if n, ok := strings.CutSuffix(name, "_migration"); ok && n != "" {
		return RecordKindMigration, n, at, nil
	}
	return RecordKindDeployment, name, at, nil
}
