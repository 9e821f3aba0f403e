package usecase

import (
	"fmt"

	"github.com/mantrachain/dapp-template/internal/domain"
)

// Session is a connected wallet: an address, the key behind it and a client
// for the network it is connected to. A *Session is either fully populated
// or nil.
type Session struct {
	Address string
	Signer  Signer
	Client  ChainClient
	Network *domain.Network
}

// NewSession validates the parts of a session
func NewSession(signer Signer, client ChainClient, network *domain.Network) (*Session, error) {
	if signer == nil || client == nil || network == nil {
		return nil, domain.ErrNotConnected
	}
	addr := signer.Address()
	if addr == "" {
		return nil, fmt.Errorf("%w: signer has no address", domain.ErrNotConnected)
	}
	return &Session{
		Address: addr,
		Signer:  signer,
		Client:  client,
		Network: network,
	}, nil
}

// requireSession is the single precondition check for operations that need a wallet
func requireSession(s *Session) error {
	if s == nil || s.Address == "" || s.Signer == nil || s.Client == nil || s.Network == nil {
		return domain.ErrNotConnected
	}
	return nil
}
