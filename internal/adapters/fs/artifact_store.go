package fs

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/domain/config"
	"github.com/mantrachain/dapp-template/internal/usecase"
)

var (
	wasmMagic = []byte{0x00, 'a', 's', 'm'}
	gzipMagic = []byte{0x1f, 0x8b}
)

// ArtifactStoreAdapter reads compiled contracts. Relative paths resolve
// against the project root.
type ArtifactStoreAdapter struct {
	projectRoot string
}

// NewArtifactStoreAdapter creates a new ArtifactStoreAdapter
func NewArtifactStoreAdapter(cfg *config.RuntimeConfig) *ArtifactStoreAdapter {
	return &ArtifactStoreAdapter{projectRoot: cfg.ProjectRoot}
}

func (s *ArtifactStoreAdapter) resolve(path string) string {
	if filepath.IsAbs(path) || s.projectRoot == "" {
		return path
	}
	return filepath.Join(s.projectRoot, path)
}

// ReadWasm reads a wasm module. Gzip-compressed modules are returned as-is,
// the chain decompresses them on upload.
func (s *ArtifactStoreAdapter) ReadWasm(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(s.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read wasm file: %w", err)
	}
	if !bytes.HasPrefix(data, wasmMagic) && !bytes.HasPrefix(data, gzipMagic) {
		return nil, fmt.Errorf("%s is neither a wasm module nor gzip-compressed", path)
	}
	return data, nil
}

// VerifyChecksum compares the sha256 of wasm with the entry for wasmPath's
// file name in a sha256sum-style checksums file
func (s *ArtifactStoreAdapter) VerifyChecksum(ctx context.Context, checksumsPath, wasmPath string, wasm []byte) error {
	f, err := os.Open(s.resolve(checksumsPath))
	if err != nil {
		return fmt.Errorf("failed to open checksums file: %w", err)
	}
	defer f.Close()

	want := ""
	name := filepath.Base(wasmPath)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		if filepath.Base(strings.TrimPrefix(fields[1], "*")) == name {
			want = strings.ToLower(fields[0])
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read checksums file: %w", err)
	}
	if want == "" {
		return fmt.Errorf("%w: no checksum listed for %s in %s", domain.ErrChecksumMismatch, name, checksumsPath)
	}

	sum := sha256.Sum256(wasm)
	got := hex.EncodeToString(sum[:])
	if got != want {
		return fmt.Errorf("%w: %s has sha256 %s, expected %s", domain.ErrChecksumMismatch, name, got, want)
	}
	return nil
}

var _ usecase.ArtifactStore = (*ArtifactStoreAdapter)(nil)
