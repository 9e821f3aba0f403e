package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mantrachain/dapp-template/internal/adapters/progress"
	"github.com/mantrachain/dapp-template/internal/app"
	"github.com/mantrachain/dapp-template/internal/config"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dapp",
		Short: "Counter dApp toolkit for MANTRA Chain",
		Long: `dapp reads and updates a CosmWasm counter contract on MANTRA Chain,
shows wallet balances and deploys or migrates the contract from a config file.

The wallet is built from the MNEMONIC environment variable (also read from .env)
or from a mnemonic stored with 'dapp wallet import'.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsAppInit(cmd.Name()) {
				return nil
			}

			// Find project root
			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			// Set up viper with the command's flags
			v := config.SetupViper(projectRoot, cmd)

			sink := progress.NewSink(v.GetBool("json") || v.GetBool("non_interactive"))

			// Initialize app with DI
			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("chain", "c", "", "Chain to use for this run (mainnet, testnet); defaults to the saved selection")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Duration("timeout", 5*time.Minute, "Timeout for the whole command")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "deployment",
		Title: "Deployment Commands",
	})

	// Main commands
	counterCmd := NewCounterCmd()
	counterCmd.GroupID = "main"
	rootCmd.AddCommand(counterCmd)

	balanceCmd := NewBalanceCmd()
	balanceCmd.GroupID = "main"
	rootCmd.AddCommand(balanceCmd)

	feeCmd := NewFeeCmd()
	feeCmd.GroupID = "main"
	rootCmd.AddCommand(feeCmd)

	// Management commands
	chainCmd := NewChainCmd()
	chainCmd.GroupID = "management"
	rootCmd.AddCommand(chainCmd)

	walletCmd := NewWalletCmd()
	walletCmd.GroupID = "management"
	rootCmd.AddCommand(walletCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	// Deployment commands
	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "deployment"
	rootCmd.AddCommand(deployCmd)

	migrateCmd := NewMigrateCmd()
	migrateCmd.GroupID = "deployment"
	rootCmd.AddCommand(migrateCmd)

	deploymentsCmd := NewDeploymentsCmd()
	deploymentsCmd.GroupID = "deployment"
	rootCmd.AddCommand(deploymentsCmd)

	// Version command
	versionCmd := NewVersionCmd()
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// skipsAppInit reports commands that run without a project or wallet
func skipsAppInit(name string) bool {
	switch name {
	case "version", "help", "completion", "__complete":
		return true
	}
	return false
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// finishProgress stops a running spinner once a command is done reporting
func finishProgress(a *app.App) {
	if done, ok := a.Progress.(interface{ Done() }); ok {
		done.Done()
	}
}
