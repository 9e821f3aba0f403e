package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mantrachain/dapp-template/internal/cli/render"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewWalletCmd creates the wallet command group
func NewWalletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage the signing wallet",
		Long: `Manage the wallet used to sign transactions.

The MNEMONIC environment variable (also read from .env) always wins. Without
it, the mnemonic stored in the OS keychain by 'dapp wallet import' is used.

When run without subcommands, shows the wallet address.`,
		Args: cobra.NoArgs,
		RunE: runWalletShow,
	}

	cmd.AddCommand(newWalletImportCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the wallet address",
		Args:  cobra.NoArgs,
		RunE:  runWalletShow,
	})
	cmd.AddCommand(newWalletRemoveCmd())

	return cmd
}

func runWalletShow(cmd *cobra.Command, args []string) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	info, err := app.ManageWallet.Show(cmd.Context())
	if err != nil {
		return err
	}

	if app.Config.JSON {
		return render.RenderJSON(cmd.OutOrStdout(), info)
	}
	return render.NewWalletRenderer(cmd.OutOrStdout()).Render(info)
}

func newWalletImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Store a mnemonic in the OS keychain",
		Long: `Store a BIP-39 mnemonic in the OS keychain.

The mnemonic is read from stdin. On a terminal it is prompted for with
masked input.`,
		Example: `  dapp wallet import
  cat mnemonic.txt | dapp wallet import`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			mnemonic, err := readMnemonic(cmd.InOrStdin(), !app.Config.NonInteractive && stdinIsTerminal(cmd))
			if err != nil {
				return err
			}

			info, err := app.ManageWallet.Import(cmd.Context(), mnemonic)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), info)
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess("Mnemonic stored in keychain"))
			return render.NewWalletRenderer(cmd.OutOrStdout()).Render(info)
		},
	}
}

func newWalletRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Remove the stored mnemonic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if err := app.ManageWallet.Remove(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess("Mnemonic removed from keychain"))
			return nil
		},
	}
}

func stdinIsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// readMnemonic prompts with masked input on a terminal and reads all of in otherwise
func readMnemonic(in io.Reader, prompt bool) (string, error) {
	if prompt {
		p := promptui.Prompt{
			Label: "Mnemonic",
			Mask:  '*',
			Validate: func(s string) error {
				if len(strings.Fields(s)) == 0 {
					return fmt.Errorf("mnemonic is required")
				}
				return nil
			},
		}
		mnemonic, err := p.Run()
		if err != nil {
			return "", fmt.Errorf("import cancelled: %w", err)
		}
		return mnemonic, nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read mnemonic: %w", err)
	}
	mnemonic := strings.TrimSpace(string(data))
	if mnemonic == "" {
		return "", fmt.Errorf("mnemonic is required on stdin")
	}
	return mnemonic, nil
}
