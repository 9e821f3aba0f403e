package domain

import "encoding/json"

// ExecuteMsg is a JSON execute message for the counter contract.
type ExecuteMsg struct {
	Increment *IncrementMsgBody `json:"increment,omitempty"`
	Reset     *ResetMsgBody     `json:"reset,omitempty"`
}

type IncrementMsgBody struct{}

type ResetMsgBody struct {
	Count uint64 `json:"count"`
}

// IncrementMsg builds {"increment":{}}.
func IncrementMsg() ExecuteMsg {
	return ExecuteMsg{Increment: &IncrementMsgBody{}}
}

// ResetMsg builds {"reset":{"count":n}}.
func ResetMsg(count uint64) ExecuteMsg {
	return ExecuteMsg{Reset: &ResetMsgBody{Count: count}}
}

// Action names the execute variant, used for notifications and logs.
func (m ExecuteMsg) Action() string {
	switch {
	case m.Increment != nil:
		return "increment"
	case m.Reset != nil:
		return "reset"
	default:
		return ""
	}
}

// Bytes returns the JSON encoding sent as the contract message.
func (m ExecuteMsg) Bytes() ([]byte, error) {
	return json.Marshal(m)
}

// QueryMsg is a JSON smart query for the counter contract.
type QueryMsg struct {
	GetCount *struct{} `json:"get_count,omitempty"`
}

// GetCountQuery builds {"get_count":{}}.
func GetCountQuery() QueryMsg {
	return QueryMsg{GetCount: &struct{}{}}
}

// CountResponse is the get_count query result.
type CountResponse struct {
	Count uint64 `json:"count"`
}

// InstantiateMsg is the counter's instantiate message. Count defaults to 0
// on the contract side when omitted.
type InstantiateMsg struct {
	Count *uint64 `json:"count,omitempty"`
}
