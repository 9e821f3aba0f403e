package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteMsg_Bytes(t *testing.T) {
	b, err := IncrementMsg().Bytes()
	require.NoError(t, err)
	assert.JSONEq(t, `{"increment":{}}`, string(b))
	assert.Equal(t, "increment", IncrementMsg().Action())

	b, err = ResetMsg(7).Bytes()
	require.NoError(t, err)
	assert.JSONEq(t, `{"reset":{"count":7}}`, string(b))
	assert.Equal(t, "reset", ResetMsg(0).Action())

	assert.Equal(t, "", ExecuteMsg{}.Action())
}

func TestGetCountQuery(t *testing.T) {
	b, err := json.Marshal(GetCountQuery())
	require.NoError(t, err)
	assert.JSONEq(t, `{"get_count":{}}`, string(b))
}

func TestTxResult(t *testing.T) {
	res := &TxResult{
		TxHash: "AB",
		Events: []Event{
			{Type: "message", Attributes: []EventAttribute{{Key: "code_id", Value: "wrong"}}},
			{Type: "store_code", Attributes: []EventAttribute{{Key: "code_checksum", Value: "x"}, {Key: "code_id", Value: "42"}}},
		},
	}
	v, ok := res.Attribute("store_code", "code_id")
	assert.True(t, ok)
	assert.Equal(t, "42", v)

	_, ok = res.Attribute("instantiate", "_contract_address")
	assert.False(t, ok)

	assert.True(t, res.Succeeded())
	assert.NoError(t, res.Err())

	res.Code = 5
	res.Codespace = "wasm"
	var txErr *TxFailedError
	require.ErrorAs(t, res.Err(), &txErr)
	assert.Equal(t, uint32(5), txErr.Code)
	assert.Contains(t, txErr.Error(), "(wasm)")
}

func TestTxState(t *testing.T) {
	assert.True(t, TxStateSigning.InFlight())
	assert.True(t, TxStateBroadcasting.InFlight())
	assert.False(t, TxStateIdle.InFlight())
	assert.False(t, TxStateSucceeded.InFlight())
	assert.True(t, TxStateFailed.Terminal())
	assert.False(t, TxStateSigning.Terminal())
}
