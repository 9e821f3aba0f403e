package domain

// Msg is a chain message that can be placed in a transaction body.
type Msg interface {
	TypeURL() string
}

// MsgExecuteContract calls an execute entry point of a CosmWasm contract.
type MsgExecuteContract struct {
	Sender   string
	Contract string
	Msg      []byte
	Funds    []Coin
}

func (MsgExecuteContract) TypeURL() string { return "/cosmwasm.wasm.v1.MsgExecuteContract" }

// MsgStoreCode uploads contract code.
type MsgStoreCode struct {
	Sender       string
	WASMByteCode []byte
}

func (MsgStoreCode) TypeURL() string { return "/cosmwasm.wasm.v1.MsgStoreCode" }

// MsgInstantiateContract creates a contract instance from uploaded code.
type MsgInstantiateContract struct {
	Sender string
	Admin  string
	CodeID uint64
	Label  string
	Msg    []byte
	Funds  []Coin
}

func (MsgInstantiateContract) TypeURL() string { return "/cosmwasm.wasm.v1.MsgInstantiateContract" }

// MsgMigrateContract points a contract at new code and runs its migrate entry point.
type MsgMigrateContract struct {
	Sender   string
	Contract string
	CodeID   uint64
	Msg      []byte
}

func (MsgMigrateContract) TypeURL() string { return "/cosmwasm.wasm.v1.MsgMigrateContract" }

// EventAttribute is a key/value pair emitted by a transaction event.
type EventAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Event is an ABCI event emitted during transaction execution.
type Event struct {
	Type       string           `json:"type"`
	Attributes []EventAttribute `json:"attributes"`
}

// TxResult is the outcome of a broadcast transaction.
type TxResult struct {
	TxHash    string  `json:"txhash"`
	Code      uint32  `json:"code"`
	Codespace string  `json:"codespace,omitempty"`
	Height    int64   `json:"height"`
	GasWanted int64   `json:"gasWanted"`
	GasUsed   int64   `json:"gasUsed"`
	RawLog    string  `json:"rawLog,omitempty"`
	Events    []Event `json:"events,omitempty"`
}

// Succeeded reports whether the transaction executed without error.
func (r *TxResult) Succeeded() bool {
	return r != nil && r.Code == 0
}

// Err returns a TxFailedError for a non-zero result code.
func (r *TxResult) Err() error {
	if r.Succeeded() {
		return nil
	}
	return &TxFailedError{TxHash: r.TxHash, Code: r.Code, Codespace: r.Codespace, RawLog: r.RawLog}
}

// Attribute returns the first value of key within events of the given type.
func (r *TxResult) Attribute(eventType, key string) (string, bool) {
	if r == nil {
		return "", false
	}
	for _, ev := range r.Events {
		if ev.Type != eventType {
			continue
		}
		for _, attr := range ev.Attributes {
			if attr.Key == key {
				return attr.Value, true
			}
		}
	}
	return "", false
}

// TxState tracks a single submission from start to finish.
type TxState string

const (
	TxStateIdle         TxState = "idle"
	TxStateSigning      TxState = "signing"
	TxStateBroadcasting TxState = "broadcasting"
	TxStateSucceeded    TxState = "succeeded"
	TxStateFailed       TxState = "failed"
)

// InFlight reports whether the submission is waiting on the wallet or the chain.
func (s TxState) InFlight() bool {
	return s == TxStateSigning || s == TxStateBroadcasting
}

// Terminal reports whether the submission has finished.
func (s TxState) Terminal() bool {
	return s == TxStateSucceeded || s == TxStateFailed
}
