package domain

import "fmt"

// ChainName is the user-facing chain selection persisted in the local config.
type ChainName string

const (
	ChainMainnet ChainName = "mainnet"
	ChainTestnet ChainName = "testnet"

	// DefaultChain is used on first run, before any selection is persisted.
	DefaultChain = ChainTestnet
)

// SupportedChains lists the selectable chains in display order.
func SupportedChains() []ChainName {
	return []ChainName{ChainMainnet, ChainTestnet}
}

// ParseChainName validates a chain selection. Only the exact names are
// accepted.
func ParseChainName(s string) (ChainName, error) {
	switch ChainName(s) {
	case ChainMainnet:
		return ChainMainnet, nil
	case ChainTestnet:
		return ChainTestnet, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedChain, s)
	}
}

// Deployment network names used by the deploy and migrate configs.
const (
	NetworkMainnet = "mainnet"
	NetworkDukong  = "dukong"
)

// NetworkName maps a chain selection to the name of the network serving it.
func (c ChainName) NetworkName() (string, error) {
	switch c {
	case ChainMainnet:
		return NetworkMainnet, nil
	case ChainTestnet:
		return NetworkDukong, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedChain, string(c))
	}
}

// Network holds the endpoints and fee parameters of one chain.
type Network struct {
	Name          string  `json:"name"`
	ChainID       string  `json:"chainId,omitempty"`
	RPCEndpoint   string  `json:"rpcEndpoint"`
	RESTEndpoint  string  `json:"restEndpoint"`
	ExplorerTxURL string  `json:"explorerTxUrl,omitempty"`
	Bech32Prefix  string  `json:"bech32Prefix"`
	FeeDenom      string  `json:"feeDenom"`
	GasPrice      DecCoin `json:"gasPrice"`
}

// TxURL returns the explorer link for a transaction hash, or "" when the
// network has no explorer configured.
func (n *Network) TxURL(txHash string) string {
	if n == nil || n.ExplorerTxURL == "" || txHash == "" {
		return ""
	}
	return n.ExplorerTxURL + txHash
}
