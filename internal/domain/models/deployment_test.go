package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFileName(t *testing.T) {
	at := time.Date(2024, 3, 9, 7, 5, 1, 0, time.FixedZone("CET", 3600))

	assert.Equal(t, "counter_2024_03_09_06_05_01.json", RecordFileName(RecordKindDeployment, "counter", at))
	assert.Equal(t, "counter_migration_2024_03_09_06_05_01.json", RecordFileName(RecordKindMigration, "counter", at))
}

func TestParseRecordFileName(t *testing.T) {
	at := time.Date(2024, 3, 9, 6, 5, 1, 0, time.UTC)

	kind, name, ts, err := ParseRecordFileName(RecordFileName(RecordKindDeployment, "my_counter", at))
	require.NoError(t, err)
	assert.Equal(t, RecordKindDeployment, kind)
	assert.Equal(t, "my_counter", name)
	assert.True(t, at.Equal(ts))

	kind, name, _, err = ParseRecordFileName(RecordFileName(RecordKindMigration, "my_counter", at))
	require.NoError(t, err)
	assert.Equal(t, RecordKindMigration, kind)
	assert.Equal(t, "my_counter", name)

	for _, bad := range []string{"notes.txt", "counter.json", "counter_2024.json", "counter-2024_03_09_06_05_01.json"} {
		_, _, _, err := ParseRecordFileName(bad)
		assert.Error(t, err, bad)
	}
}

func TestStoredRecord_Accessors(t *testing.T) {
	r := &StoredRecord{Deployment: &DeploymentRecord{ContractAddress: "mantra1abc", CodeID: 3, TransactionHash: "H"}}
	assert.Equal(t, "mantra1abc", r.ContractAddress())
	assert.Equal(t, uint64(3), r.CodeID())
	assert.Equal(t, "H", r.TransactionHash())

	m := &StoredRecord{Migration: &MigrationRecord{ContractAddress: "mantra1def", CodeID: 4}}
	assert.Equal(t, "mantra1def", m.ContractAddress())
	assert.Equal(t, uint64(4), m.CodeID())
}
