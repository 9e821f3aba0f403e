package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/domain/config"
)

// WalletInfo describes the wallet used for signing
type WalletInfo struct {
	Address string `json:"address"`
	Origin  string `json:"origin"` // where the mnemonic came from
	Network string `json:"network"`
}

// ManageWallet imports, shows and removes the stored wallet mnemonic
type ManageWallet struct {
	config  *config.RuntimeConfig
	store   MnemonicStore
	source  MnemonicSource
	deriver KeyDeriver
}

// NewManageWallet creates a new ManageWallet use case
func NewManageWallet(cfg *config.RuntimeConfig, store MnemonicStore, source MnemonicSource, deriver KeyDeriver) *ManageWallet {
	return &ManageWallet{
		config:  cfg,
		store:   store,
		source:  source,
		deriver: deriver,
	}
}

// Import validates and stores a mnemonic
func (uc *ManageWallet) Import(ctx context.Context, mnemonic string) (*WalletInfo, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if err := uc.deriver.ValidateMnemonic(mnemonic); err != nil {
		return nil, err
	}

	signer, err := uc.deriver.Derive(mnemonic, uc.config.Network.Bech32Prefix)
	if err != nil {
		return nil, err
	}

	if err := uc.store.Set(mnemonic); err != nil {
		return nil, fmt.Errorf("failed to store mnemonic: %w", err)
	}

	return &WalletInfo{
		Address: signer.Address(),
		Origin:  "keyring",
		Network: uc.config.Network.Name,
	}, nil
}

// Show derives the address of the active wallet
func (uc *ManageWallet) Show(ctx context.Context) (*WalletInfo, error) {
	mnemonic, origin, err := uc.source.Mnemonic(ctx)
	if err != nil {
		return nil, err
	}

	signer, err := uc.deriver.Derive(mnemonic, uc.config.Network.Bech32Prefix)
	if err != nil {
		return nil, err
	}

	return &WalletInfo{
		Address: signer.Address(),
		Origin:  origin,
		Network: uc.config.Network.Name,
	}, nil
}

// Address returns the active wallet address, or "" when no wallet is configured
func (uc *ManageWallet) Address(ctx context.Context) (string, error) {
	info, err := uc.Show(ctx)
	if errors.Is(err, domain.ErrMissingMnemonic) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return info.Address, nil
}

// Remove deletes the stored mnemonic
func (uc *ManageWallet) Remove(ctx context.Context) error {
	if err := uc.store.Remove(); err != nil {
		return fmt.Errorf("failed to remove mnemonic: %w", err)
	}
	return nil
}
