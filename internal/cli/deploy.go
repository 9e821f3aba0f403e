package cli

import (
	"github.com/mantrachain/dapp-template/internal/cli/render"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy <config>",
		Short: "Upload and instantiate the contract",
		Long: `Upload a compiled contract and instantiate it as described by a
deployment config (.json, .toml, .yaml or .yml).

Config fields:
  name              record name
  network           dukong or mainnet
  contractWasmPath  path to the compiled .wasm file (plain or gzip-compressed)
  checksumsPath     optional sha256 checksums file to verify the wasm against
  label             contract label (default "My Dapp Contract")
  admin             optional contract admin
  initMsg           instantiate message (default {})
  saveDeployment    write deployment/<network>/<name>_<timestamp>.json

The wallet comes from MNEMONIC or the keychain.`,
		Example: `  dapp deploy deploy.json
  dapp deploy configs/dukong.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DeployContract.Run(cmd.Context(), usecase.DeployParams{ConfigPath: args[0]})
			finishProgress(app)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			return render.NewDeployRenderer(cmd.OutOrStdout()).RenderDeploy(result)
		},
	}

	return cmd
}

// NewMigrateCmd creates the migrate command
func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate <config>",
		Short: "Upload new code and migrate an existing contract",
		Long: `Upload a compiled contract and migrate an existing contract to it as
described by a migration config (.json, .toml, .yaml or .yml).

Config fields:
  name              record name
  network           dukong or mainnet
  contractAddress   contract to migrate
  contractWasmPath  path to the compiled .wasm file (plain or gzip-compressed)
  checksumsPath     optional sha256 checksums file to verify the wasm against
  migrateMsg        migrate message (default {})
  saveMigration     write deployment/<network>/<name>_migration_<timestamp>.json`,
		Example: `  dapp migrate migrate.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.MigrateContract.Run(cmd.Context(), usecase.MigrateParams{ConfigPath: args[0]})
			finishProgress(app)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			return render.NewDeployRenderer(cmd.OutOrStdout()).RenderMigrate(result)
		},
	}

	return cmd
}
