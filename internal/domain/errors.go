package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedChain is returned when a chain selection has no known configuration
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrUnknownNetwork is returned when a deployment network is not configured
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrNotConnected is returned when an operation needs a connected wallet session
	ErrNotConnected = errors.New("wallet not connected")

	// ErrMissingMnemonic is returned when no mnemonic is available to build a wallet
	ErrMissingMnemonic = errors.New("env.MNEMONIC is required")

	// ErrSubmissionInFlight is returned when a transaction is submitted while another is pending
	ErrSubmissionInFlight = errors.New("another transaction is awaiting confirmation")

	// ErrGasPriceUnavailable is returned when the gas price oracle cannot be read
	ErrGasPriceUnavailable = errors.New("gas price unavailable")

	// ErrChecksumMismatch is returned when a wasm artifact does not match its recorded checksum
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrInvalidDeploymentConfig is returned when a deployment config fails validation
	ErrInvalidDeploymentConfig = errors.New("invalid deployment config")

	// ErrUnknownFeePolicy is returned for fee policies other than oracle and auto
	ErrUnknownFeePolicy = errors.New("unknown fee policy")
)

// TxFailedError reports a transaction that was accepted by the node but
// finished with a non-zero result code.
type TxFailedError struct {
	TxHash    string
	Code      uint32
	Codespace string
	RawLog    string
}

func (e *TxFailedError) Error() string {
	if e.Codespace != "" {
		return fmt.Sprintf("transaction %s failed with code %d (%s): %s", e.TxHash, e.Code, e.Codespace, e.RawLog)
	}
	return fmt.Sprintf("transaction %s failed with code %d: %s", e.TxHash, e.Code, e.RawLog)
}
