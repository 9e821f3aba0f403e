package cosmos

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // cosmos addresses are RIPEMD160(SHA256(pubkey))
)

// CoinType is the BIP-44 coin type used by cosmos chains
const CoinType = 118

// KeyDeriver derives secp256k1 keys from BIP-39 mnemonics on m/44'/118'/0'/0/0
type KeyDeriver struct{}

// NewKeyDeriver creates a new KeyDeriver
func NewKeyDeriver() *KeyDeriver {
	return &KeyDeriver{}
}

// ValidateMnemonic checks the word list and checksum
func (d *KeyDeriver) ValidateMnemonic(mnemonic string) error {
	if !bip39.IsMnemonicValid(mnemonic) {
		return errors.New("invalid mnemonic")
	}
	return nil
}

// Derive returns a signer for the first account of mnemonic
func (d *KeyDeriver) Derive(mnemonic, prefix string) (usecase.Signer, error) {
	if err := d.ValidateMnemonic(mnemonic); err != nil {
		return nil, err
	}
	seed := bip39.NewSeed(mnemonic, "")

	raw, err := deriveKey(seed, CoinType, 0)
	if err != nil {
		return nil, err
	}
	key, err := ethcrypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	pubKey := ethcrypto.CompressPubkey(&key.PublicKey)
	addr, err := AddressFromPubKey(prefix, pubKey)
	if err != nil {
		return nil, err
	}

	return &Wallet{
		key:     key,
		pubKey:  pubKey,
		address: addr,
	}, nil
}

// deriveKey walks m/44'/coinType'/0'/0/index
func deriveKey(seed []byte, coinType uint32, index uint32) ([]byte, error) {
	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("master key: %w", err)
	}

	path := []uint32{
		bip32.FirstHardenedChild + 44,
		bip32.FirstHardenedChild + coinType,
		bip32.FirstHardenedChild + 0,
		0,
		index,
	}

	key := masterKey
	for _, child := range path {
		key, err = key.NewChildKey(child)
		if err != nil {
			return nil, fmt.Errorf("derive child %d: %w", child, err)
		}
	}
	return key.Key, nil
}

// AddressFromPubKey encodes bech32(prefix, RIPEMD160(SHA256(compressed pubkey)))
func AddressFromPubKey(prefix string, pubKey []byte) (string, error) {
	sha := sha256.Sum256(pubKey)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	return EncodeAddress(prefix, ripe.Sum(nil))
}

// EncodeAddress bech32-encodes raw address bytes
func EncodeAddress(prefix string, addr []byte) (string, error) {
	conv, err := bech32.ConvertBits(addr, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("failed to convert address bits: %w", err)
	}
	encoded, err := bech32.Encode(prefix, conv)
	if err != nil {
		return "", fmt.Errorf("failed to encode address: %w", err)
	}
	return encoded, nil
}

// DecodeAddress returns the prefix and raw bytes of a bech32 address
func DecodeAddress(address string) (string, []byte, error) {
	prefix, data, err := bech32.Decode(address)
	if err != nil {
		return "", nil, fmt.Errorf("invalid address %q: %w", address, err)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, fmt.Errorf("invalid address %q: %w", address, err)
	}
	return prefix, raw, nil
}

// Wallet is a secp256k1 key with its bech32 address
type Wallet struct {
	key     *ecdsa.PrivateKey
	pubKey  []byte
	address string
}

func (w *Wallet) Address() string { return w.address }

// PubKey returns the 33-byte compressed public key
func (w *Wallet) PubKey() []byte { return w.pubKey }

// Sign signs SHA256(signBytes) and returns the 64-byte r||s signature
func (w *Wallet) Sign(signBytes []byte) ([]byte, error) {
	hash := sha256.Sum256(signBytes)
	sig, err := ethcrypto.Sign(hash[:], w.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}
	return sig[:64], nil
}

var (
	_ usecase.KeyDeriver = (*KeyDeriver)(nil)
	_ usecase.Signer     = (*Wallet)(nil)
)
