package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/usecase"
)

// MnemonicEnv is read before the keychain
const MnemonicEnv = "MNEMONIC"

// Mnemonic origins reported by Source
const (
	OriginEnv     = "env"
	OriginKeyring = "keyring"
)

// Source resolves the mnemonic from the MNEMONIC environment variable
// (including values loaded from .env files) and then from the keychain
type Source struct {
	store  usecase.MnemonicStore
	getenv func(string) string
}

// NewSource creates a new Source
func NewSource(store usecase.MnemonicStore) *Source {
	return &Source{
		store:  store,
		getenv: os.Getenv,
	}
}

// Mnemonic returns the mnemonic and where it came from
func (s *Source) Mnemonic(ctx context.Context) (string, string, error) {
	if m := strings.TrimSpace(s.getenv(MnemonicEnv)); m != "" {
		return strings.Join(strings.Fields(m), " "), OriginEnv, nil
	}

	m, err := s.store.Get()
	if errors.Is(err, domain.ErrNotFound) {
		return "", "", domain.ErrMissingMnemonic
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to read mnemonic from keychain: %w", err)
	}
	return m, OriginKeyring, nil
}

var _ usecase.MnemonicSource = (*Source)(nil)
