package keystore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/99designs/keyring"
	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/usecase"
)

const (
	// ServiceName is the keychain service the mnemonic is stored under
	ServiceName = "dapp-template"
	mnemonicKey = ServiceName + ".mnemonic"

	// PasswordEnv unlocks the file backend without a prompt
	PasswordEnv = "DAPP_KEYRING_PASSWORD"
)

// Keystore keeps the wallet mnemonic in the OS keychain
type Keystore struct {
	ring keyring.Keyring
}

// New wraps an opened keyring
func New(ring keyring.Keyring) *Keystore {
	return &Keystore{ring: ring}
}

// DefaultKeystore opens the OS keychain, falling back to an encrypted file
// under the user config dir.
func DefaultKeystore() (*Keystore, error) {
	cfg := keyring.Config{
		ServiceName:              ServiceName,
		KeychainTrustApplication: true,
		FileDir:                  fileDir(),
		FilePasswordFunc:         filePassword,
	}

	// On Linux without a GUI, fall back to file-based storage.
	if runtime.GOOS == "linux" {
		cfg.AllowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.FileBackend,
		}
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		ring, err = keyring.Open(keyring.Config{
			ServiceName:      ServiceName,
			AllowedBackends:  []keyring.BackendType{keyring.FileBackend},
			FileDir:          fileDir(),
			FilePasswordFunc: filePassword,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open keyring: %w", err)
		}
	}
	return New(ring), nil
}

func fileDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("~", ".dapp-template", "keyring")
	}
	return filepath.Join(dir, ServiceName, "keyring")
}

func filePassword(prompt string) (string, error) {
	if pw := os.Getenv(PasswordEnv); pw != "" {
		return pw, nil
	}
	return keyring.TerminalPrompt(prompt)
}

// Get returns the stored mnemonic or domain.ErrNotFound
func (k *Keystore) Get() (string, error) {
	item, err := k.ring.Get(mnemonicKey)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("keychain retrieve: %w", err)
	}
	return string(item.Data), nil
}

// Set stores mnemonic, replacing any previous one
func (k *Keystore) Set(mnemonic string) error {
	err := k.ring.Set(keyring.Item{
		Key:         mnemonicKey,
		Data:        []byte(mnemonic),
		Label:       "dapp-template wallet mnemonic",
		Description: "BIP-39 mnemonic used to sign transactions",
	})
	if err != nil {
		return fmt.Errorf("keychain store: %w", err)
	}
	return nil
}

// Remove deletes the stored mnemonic
func (k *Keystore) Remove() error {
	err := k.ring.Remove(mnemonicKey)
	if errors.Is(err, keyring.ErrKeyNotFound) || errors.Is(err, os.ErrNotExist) {
		return domain.ErrNotFound
	}
	return err
}

var _ usecase.MnemonicStore = (*Keystore)(nil)
