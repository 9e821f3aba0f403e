package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mantrachain/dapp-template/internal/usecase"
)

// DeployRenderer renders deployment and migration results
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// RenderDeploy renders a finished deployment
func (r *DeployRenderer) RenderDeploy(result *usecase.DeployResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Deployed %s to %s", result.Config.Name, result.Network.Name)))
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	r.field("Chain ID", result.ChainID)
	r.field("Deployer", addressStyle.Sprint(result.Deployer))
	r.field("Code ID", fmt.Sprint(result.CodeID))
	if result.UploadTx != nil {
		r.field("Upload tx", hashStyle.Sprint(result.UploadTx.TxHash))
	}
	r.field("Contract", addressStyle.Sprint(result.ContractAddress))
	if result.InstantiateTx != nil {
		r.field("Instantiate tx", hashStyle.Sprint(result.InstantiateTx.TxHash))
	}
	if result.TransactionURL != "" {
		r.field("Explorer", result.TransactionURL)
	}
	if result.RecordPath != "" {
		r.field("Record", result.RecordPath)
	}
	return nil
}

// RenderMigrate renders a finished migration
func (r *DeployRenderer) RenderMigrate(result *usecase.MigrateResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Migrated %s on %s", result.Config.Name, result.Network.Name)))
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	r.field("Migrator", addressStyle.Sprint(result.Migrator))
	r.field("Code ID", fmt.Sprint(result.CodeID))
	if result.UploadTx != nil {
		r.field("Upload tx", hashStyle.Sprint(result.UploadTx.TxHash))
	}
	r.field("Contract", addressStyle.Sprint(result.ContractAddress))
	if result.MigrateTx != nil {
		r.field("Migrate tx", hashStyle.Sprint(result.MigrateTx.TxHash))
	}
	if result.TransactionURL != "" {
		r.field("Explorer", result.TransactionURL)
	}
	if result.RecordPath != "" {
		r.field("Record", result.RecordPath)
	}
	return nil
}

func (r *DeployRenderer) field(label, value string) {
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprintf("%-15s", label+":"), value)
}
