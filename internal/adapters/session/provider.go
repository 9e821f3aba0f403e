package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/usecase"
)

// Provider connects the configured wallet to a network
type Provider struct {
	source  usecase.MnemonicSource
	deriver usecase.KeyDeriver
	clients usecase.ClientFactory
	log     *slog.Logger
}

// NewProvider creates a new session Provider
func NewProvider(source usecase.MnemonicSource, deriver usecase.KeyDeriver, clients usecase.ClientFactory, log *slog.Logger) *Provider {
	return &Provider{
		source:  source,
		deriver: deriver,
		clients: clients,
		log:     log,
	}
}

// Connect derives the wallet for network and pairs it with a client.
// Every failure wraps domain.ErrNotConnected.
func (p *Provider) Connect(ctx context.Context, network *domain.Network) (*usecase.Session, error) {
	if network == nil {
		return nil, domain.ErrNotConnected
	}

	mnemonic, origin, err := p.source.Mnemonic(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNotConnected, err)
	}

	signer, err := p.deriver.Derive(mnemonic, network.Bech32Prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNotConnected, err)
	}

	s, err := usecase.NewSession(signer, p.clients.NewClient(network), network)
	if err != nil {
		return nil, err
	}
	p.log.Debug("wallet connected", "address", s.Address, "network", network.Name, "origin", origin)
	return s, nil
}

var _ usecase.SessionProvider = (*Provider)(nil)
