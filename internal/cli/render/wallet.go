package render

import (
	"fmt"
	"io"

	"github.com/mantrachain/dapp-template/internal/usecase"
)

// WalletRenderer renders wallet information
type WalletRenderer struct {
	out io.Writer
}

// NewWalletRenderer creates a new wallet renderer
func NewWalletRenderer(out io.Writer) *WalletRenderer {
	return &WalletRenderer{out: out}
}

// Render shows the wallet address and where its mnemonic comes from
func (r *WalletRenderer) Render(info *usecase.WalletInfo) error {
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Address:"), addressStyle.Sprint(info.Address))
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Network:"), info.Network)
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Source:"), info.Origin)
	return nil
}
