package cosmos

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path"
	"sync/atomic"
	"testing"
	"time"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

type protoFields struct {
	bytes   map[protowire.Number][][]byte
	varints map[protowire.Number]uint64
}

func decodeFields(t *testing.T, b []byte) protoFields {
	t.Helper()
	f := protoFields{
		bytes:   map[protowire.Number][][]byte{},
		varints: map[protowire.Number]uint64{},
	}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		require.GreaterOrEqual(t, n, 0)
		b = b[n:]
		switch typ {
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			require.GreaterOrEqual(t, n, 0)
			f.bytes[num] = append(f.bytes[num], v)
			b = b[n:]
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			require.GreaterOrEqual(t, n, 0)
			f.varints[num] = v
			b = b[n:]
		default:
			t.Fatalf("unexpected wire type %d", typ)
		}
	}
	return f
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeTxBytes(t *testing.T, r *http.Request) []byte {
	t.Helper()
	var req struct {
		TxBytes string `json:"tx_bytes"`
		Mode    string `json:"mode"`
	}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
	raw, err := base64.StdEncoding.DecodeString(req.TxBytes)
	require.NoError(t, err)
	return raw
}

func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL+"/", srv.Client())
	c.pollInterval = time.Millisecond
	return c
}

func accountHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"info": map[string]any{"account_number": "12", "sequence": "3"},
	})
}

func nodeInfoHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"default_node_info": map[string]any{"network": "mantra-dukong-1"},
	})
}

func testSigner(t *testing.T) *Wallet {
	t.Helper()
	s, err := NewKeyDeriver().Derive(testMnemonic, "mantra")
	require.NoError(t, err)
	return s.(*Wallet)
}

func TestClient_ChainIDIsCached(t *testing.T) {
	var hits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/cosmos/base/tendermint/v1beta1/node_info", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		nodeInfoHandler(w, r)
	})
	c := newTestClient(t, mux)

	for range 2 {
		id, err := c.ChainID(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "mantra-dukong-1", id)
	}
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_AllBalancesFollowsPagination(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cosmos/bank/v1beta1/balances/mantra1abc", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pagination.key") == "" {
			writeJSON(w, http.StatusOK, map[string]any{
				"balances":   []domain.Coin{{Denom: "uom", Amount: "1500000"}},
				"pagination": map[string]any{"next_key": "page2"},
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"balances":   []domain.Coin{{Denom: "uusdc", Amount: "7"}},
			"pagination": map[string]any{"next_key": nil},
		})
	})
	c := newTestClient(t, mux)

	coins, err := c.AllBalances(context.Background(), "mantra1abc")
	require.NoError(t, err)
	assert.Equal(t, []domain.Coin{{Denom: "uom", Amount: "1500000"}, {Denom: "uusdc", Amount: "7"}}, coins)
}

func TestClient_AllBalancesEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cosmos/bank/v1beta1/balances/mantra1abc", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"balances": []any{}})
	})
	c := newTestClient(t, mux)

	coins, err := c.AllBalances(context.Background(), "mantra1abc")
	require.NoError(t, err)
	assert.NotNil(t, coins)
	assert.Empty(t, coins)
}

func TestClient_QuerySmart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cosmwasm/wasm/v1/contract/mantra1contract/smart/", func(w http.ResponseWriter, r *http.Request) {
		query, err := base64.StdEncoding.DecodeString(path.Base(r.URL.Path))
		require.NoError(t, err)
		assert.JSONEq(t, `{"get_count":{}}`, string(query))
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"count": 7}})
	})
	c := newTestClient(t, mux)

	data, err := c.QuerySmart(context.Background(), "mantra1contract", []byte(`{"get_count":{}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":7}`, string(data))
}

func TestClient_ErrorBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cosmwasm/wasm/v1/contract/mantra1contract/smart/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"code": 2, "message": "unknown request"})
	})
	c := newTestClient(t, mux)

	_, err := c.QuerySmart(context.Background(), "mantra1contract", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown request")
	assert.Contains(t, err.Error(), "500")
}

func TestClient_Simulate(t *testing.T) {
	signer := testSigner(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/cosmos/auth/v1beta1/account_info/"+signer.Address(), accountHandler)
	mux.HandleFunc("/cosmos/tx/v1beta1/simulate", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		tx := decodeFields(t, decodeTxBytes(t, r))
		require.Len(t, tx.bytes[3], 1)
		assert.Empty(t, tx.bytes[3][0], "simulation carries an empty signature")

		body := decodeFields(t, tx.bytes[1][0])
		msg := decodeFields(t, body.bytes[1][0])
		assert.Equal(t, "/cosmwasm.wasm.v1.MsgExecuteContract", string(msg.bytes[1][0]))

		signerInfo := decodeFields(t, decodeFields(t, tx.bytes[2][0]).bytes[1][0])
		assert.Equal(t, uint64(3), signerInfo.varints[3])

		writeJSON(w, http.StatusOK, map[string]any{
			"gas_info": map[string]any{"gas_wanted": "0", "gas_used": "123456"},
		})
	})
	c := newTestClient(t, mux)

	msgs := []domain.Msg{&domain.MsgExecuteContract{Sender: signer.Address(), Contract: "mantra1c", Msg: []byte(`{"increment":{}}`)}}
	gas, err := c.Simulate(context.Background(), signer, msgs)
	require.NoError(t, err)
	assert.Equal(t, uint64(123456), gas)
}

func TestClient_SimulateUnknownAccount(t *testing.T) {
	signer := testSigner(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/cosmos/auth/v1beta1/account_info/"+signer.Address(), func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"code": 5, "message": "account not found"})
	})
	c := newTestClient(t, mux)

	_, err := c.Simulate(context.Background(), signer, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found on chain")
}

func TestClient_SignProducesVerifiableTx(t *testing.T) {
	signer := testSigner(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/cosmos/base/tendermint/v1beta1/node_info", nodeInfoHandler)
	mux.HandleFunc("/cosmos/auth/v1beta1/account_info/"+signer.Address(), accountHandler)
	c := newTestClient(t, mux)

	fee := domain.Fee{Gas: 240000, Amount: []domain.Coin{{Denom: "uom", Amount: "2400"}}}
	msgs := []domain.Msg{&domain.MsgExecuteContract{Sender: signer.Address(), Contract: "mantra1c", Msg: []byte(`{"reset":{"count":0}}`)}}

	txBytes, err := c.Sign(context.Background(), signer, msgs, fee, "")
	require.NoError(t, err)

	tx := decodeFields(t, txBytes)
	body, authInfo, sig := tx.bytes[1][0], tx.bytes[2][0], tx.bytes[3][0]
	require.Len(t, sig, 64)

	signDoc := encodeSignDoc(body, authInfo, "mantra-dukong-1", 12)
	hash := sha256.Sum256(signDoc)
	assert.True(t, ethcrypto.VerifySignature(signer.PubKey(), hash[:], sig))

	feeFields := decodeFields(t, decodeFields(t, authInfo).bytes[2][0])
	assert.Equal(t, uint64(240000), feeFields.varints[2])
	coin := decodeFields(t, feeFields.bytes[1][0])
	assert.Equal(t, "uom", string(coin.bytes[1][0]))
	assert.Equal(t, "2400", string(coin.bytes[2][0]))
}

func TestClient_BroadcastWaitsForInclusion(t *testing.T) {
	var polls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/cosmos/tx/v1beta1/txs", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []byte("signed"), decodeTxBytes(t, r))
		writeJSON(w, http.StatusOK, map[string]any{"tx_response": map[string]any{"txhash": "ABC", "code": 0}})
	})
	mux.HandleFunc("/cosmos/tx/v1beta1/txs/ABC", func(w http.ResponseWriter, r *http.Request) {
		if polls.Add(1) < 3 {
			writeJSON(w, http.StatusNotFound, map[string]any{"code": 5, "message": "tx not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"tx_response": map[string]any{
			"txhash":     "ABC",
			"height":     "1042",
			"code":       0,
			"gas_wanted": "200000",
			"gas_used":   "150000",
			"events": []any{
				map[string]any{"type": "wasm", "attributes": []any{
					map[string]any{"key": "action", "value": "increment"},
				}},
			},
		}})
	})
	c := newTestClient(t, mux)

	res, err := c.Broadcast(context.Background(), []byte("signed"))
	require.NoError(t, err)
	assert.Equal(t, int32(3), polls.Load())
	assert.Equal(t, "ABC", res.TxHash)
	assert.Equal(t, int64(1042), res.Height)
	assert.Equal(t, int64(150000), res.GasUsed)
	action, ok := res.Attribute("wasm", "action")
	assert.True(t, ok)
	assert.Equal(t, "increment", action)
}

func TestClient_BroadcastCheckTxFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cosmos/tx/v1beta1/txs", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"tx_response": map[string]any{
			"txhash": "BAD", "code": 13, "codespace": "sdk", "raw_log": "insufficient fee",
		}})
	})
	c := newTestClient(t, mux)

	res, err := c.Broadcast(context.Background(), []byte("signed"))
	require.NoError(t, err)
	assert.False(t, res.Succeeded())
	assert.Equal(t, uint32(13), res.Code)
	assert.Equal(t, "insufficient fee", res.RawLog)
}

func TestClient_BroadcastStopsWithContext(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cosmos/tx/v1beta1/txs", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"tx_response": map[string]any{"txhash": "SLOW"}})
	})
	mux.HandleFunc("/cosmos/tx/v1beta1/txs/SLOW", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"code": 5, "message": "tx not found"})
	})
	c := newTestClient(t, mux)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err := c.Broadcast(ctx, []byte("signed"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFactory_ReusesClients(t *testing.T) {
	f := NewFactory()
	n := &domain.Network{Name: "dukong", RESTEndpoint: "https://api.dukong.mantrachain.io"}

	a := f.NewClient(n)
	b := f.NewClient(n)
	assert.Same(t, a, b)
	assert.Equal(t, "https://api.dukong.mantrachain.io", a.ID())
}
