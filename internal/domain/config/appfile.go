package config

// AppFileConfig represents the dapp.toml configuration file
type AppFileConfig struct {
	Networks  map[string]NetworkOverride `toml:"networks"`
	Contracts map[string]string          `toml:"contracts"` // chain name -> contract address
	Oracle    OracleConfig               `toml:"oracle"`
}

// NetworkOverride represents a [networks.<name>] section in dapp.toml.
// Empty fields keep the built-in value.
type NetworkOverride struct {
	ChainID       string `toml:"chain_id,omitempty"`
	RPC           string `toml:"rpc,omitempty"`
	REST          string `toml:"rest,omitempty"`
	ExplorerTxURL string `toml:"explorer_tx_url,omitempty"`
	GasPrice      string `toml:"gas_price,omitempty"`
}

// OracleConfig represents the [oracle] section in dapp.toml
type OracleConfig struct {
	GasPriceURL string `toml:"gas_price_url,omitempty"`
}
