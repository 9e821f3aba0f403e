package cosmos

import (
	"fmt"

	"github.com/mantrachain/dapp-template/internal/domain"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	secp256k1PubKeyTypeURL = "/cosmos.crypto.secp256k1.PubKey"
	signModeDirect         = 1
)

// account is the signer state needed to build a transaction
type account struct {
	Number   uint64
	Sequence uint64
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// appendMessage always writes the field, even when the nested message is empty
func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func encodeAny(typeURL string, value []byte) []byte {
	var b []byte
	b = appendString(b, 1, typeURL)
	b = appendBytes(b, 2, value)
	return b
}

func encodeCoin(c domain.Coin) []byte {
	var b []byte
	b = appendString(b, 1, c.Denom)
	b = appendString(b, 2, c.Amount)
	return b
}

func appendCoins(b []byte, num protowire.Number, coins []domain.Coin) []byte {
	for _, c := range coins {
		b = appendMessage(b, num, encodeCoin(c))
	}
	return b
}

// encodeMsg serializes a wasm message into its protobuf form
func encodeMsg(msg domain.Msg) ([]byte, error) {
	var b []byte
	switch m := msg.(type) {
	case *domain.MsgExecuteContract:
		b = appendString(b, 1, m.Sender)
		b = appendString(b, 2, m.Contract)
		b = appendBytes(b, 3, m.Msg)
		b = appendCoins(b, 5, m.Funds)
	case *domain.MsgStoreCode:
		b = appendString(b, 1, m.Sender)
		b = appendBytes(b, 2, m.WASMByteCode)
	case *domain.MsgInstantiateContract:
		b = appendString(b, 1, m.Sender)
		b = appendString(b, 2, m.Admin)
		b = appendUint(b, 3, m.CodeID)
		b = appendString(b, 4, m.Label)
		b = appendBytes(b, 5, m.Msg)
		b = appendCoins(b, 6, m.Funds)
	case *domain.MsgMigrateContract:
		b = appendString(b, 1, m.Sender)
		b = appendString(b, 2, m.Contract)
		b = appendUint(b, 3, m.CodeID)
		b = appendBytes(b, 4, m.Msg)
	default:
		return nil, fmt.Errorf("unsupported message type %T", msg)
	}
	return b, nil
}

func encodeTxBody(msgs []domain.Msg, memo string) ([]byte, error) {
	var b []byte
	for _, msg := range msgs {
		value, err := encodeMsg(msg)
		if err != nil {
			return nil, err
		}
		b = appendMessage(b, 1, encodeAny(msg.TypeURL(), value))
	}
	b = appendString(b, 2, memo)
	return b, nil
}

func encodeAuthInfo(pubKey []byte, sequence uint64, fee domain.Fee) []byte {
	var pk []byte
	pk = appendBytes(pk, 1, pubKey)

	var single []byte
	single = appendUint(single, 1, signModeDirect)
	var modeInfo []byte
	modeInfo = appendMessage(modeInfo, 1, single)

	var signerInfo []byte
	signerInfo = appendMessage(signerInfo, 1, encodeAny(secp256k1PubKeyTypeURL, pk))
	signerInfo = appendMessage(signerInfo, 2, modeInfo)
	signerInfo = appendUint(signerInfo, 3, sequence)

	var feeBytes []byte
	feeBytes = appendCoins(feeBytes, 1, fee.Amount)
	feeBytes = appendUint(feeBytes, 2, fee.Gas)

	var b []byte
	b = appendMessage(b, 1, signerInfo)
	b = appendMessage(b, 2, feeBytes)
	return b
}

func encodeSignDoc(body, authInfo []byte, chainID string, accountNumber uint64) []byte {
	var b []byte
	b = appendBytes(b, 1, body)
	b = appendBytes(b, 2, authInfo)
	b = appendString(b, 3, chainID)
	b = appendUint(b, 4, accountNumber)
	return b
}

// encodeTxRaw writes every signature, including empty ones used for simulation
func encodeTxRaw(body, authInfo []byte, signatures ...[]byte) []byte {
	var b []byte
	b = appendBytes(b, 1, body)
	b = appendBytes(b, 2, authInfo)
	for _, sig := range signatures {
		b = appendMessage(b, 3, sig)
	}
	return b
}
