package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mantrachain/dapp-template/internal/domain/models"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/mantrachain/dapp-template/pkg/format"
)

var (
	networkHeader     = color.New(color.BgCyan, color.FgBlack)
	networkHeaderBold = color.New(color.BgCyan, color.FgBlack, color.Bold)
	migrationStyle    = color.New(color.FgMagenta)
	timestampStyle    = color.New(color.Faint)
)

// DeploymentsRenderer renders deployment records
type DeploymentsRenderer struct {
	out io.Writer
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer) *DeploymentsRenderer {
	return &DeploymentsRenderer{out: out}
}

// RenderDeploymentList renders records grouped by network
func (r *DeploymentsRenderer) RenderDeploymentList(result *usecase.DeploymentListResult) error {
	if len(result.Records) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	byNetwork := make(map[string][]*models.StoredRecord)
	for _, rec := range result.Records {
		byNetwork[rec.Network] = append(byNetwork[rec.Network], rec)
	}
	networks := make([]string, 0, len(byNetwork))
	for n := range byNetwork {
		networks = append(networks, n)
	}
	sort.Strings(networks)

	for _, network := range networks {
		label := fmt.Sprintf("%-10s", "network:")
		value := fmt.Sprintf("%-30s", strings.ToUpper(network))
		fmt.Fprintln(r.out, networkHeader.Sprintf(" ⛓ %s %s", label, networkHeaderBold.Sprint(value)))
		fmt.Fprintln(r.out)

		t := newTable()
		t.AppendHeader(table.Row{"Name", "Kind", "Code ID", "Contract", "Created"})
		for _, rec := range byNetwork[network] {
			kind := string(rec.Kind)
			if rec.Kind == models.RecordKindMigration {
				kind = migrationStyle.Sprint(kind)
			}
			t.AppendRow(table.Row{
				valueStyle.Sprint(rec.Name),
				kind,
				rec.CodeID(),
				addressStyle.Sprint(format.ShortenAddress(rec.ContractAddress())),
				timestampStyle.Sprint(rec.CreatedAt.UTC().Format(timestampFmt)),
			})
		}
		fmt.Fprintln(r.out, t.Render())
		fmt.Fprintln(r.out)
	}

	fmt.Fprintf(r.out, "Total records: %d (%d deployments, %d migrations)\n",
		result.Summary.Total,
		result.Summary.ByKind[models.RecordKindDeployment],
		result.Summary.ByKind[models.RecordKindMigration])
	return nil
}

// RenderDeployment renders one record in full
func (r *DeploymentsRenderer) RenderDeployment(rec *models.StoredRecord) error {
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "%s: %s\n", Title(string(rec.Kind)), rec.Name)
	fmt.Fprintln(r.out, strings.Repeat("=", 80))

	fmt.Fprintln(r.out, headerStyle.Sprint("\nBasic Information:"))
	fmt.Fprintf(r.out, "  Network: %s\n", rec.Network)
	fmt.Fprintf(r.out, "  Contract: %s\n", addressStyle.Sprint(rec.ContractAddress()))
	fmt.Fprintf(r.out, "  Code ID: %d\n", rec.CodeID())
	fmt.Fprintf(r.out, "  Created: %s\n", rec.CreatedAt.UTC().Format(timestampFmt))
	fmt.Fprintf(r.out, "  File: %s\n", rec.Path)

	fmt.Fprintln(r.out, headerStyle.Sprint("\nTransaction:"))
	switch {
	case rec.Deployment != nil:
		d := rec.Deployment
		fmt.Fprintf(r.out, "  Deployer: %s\n", d.Deployer)
		fmt.Fprintf(r.out, "  RPC: %s\n", d.RPCEndpoint)
		fmt.Fprintf(r.out, "  Hash: %s\n", hashStyle.Sprint(d.TransactionHash))
		if d.TransactionURL != "" {
			fmt.Fprintf(r.out, "  Explorer: %s\n", d.TransactionURL)
		}
		fmt.Fprintf(r.out, "  Init message: %s\n", string(d.InitMsg))
	case rec.Migration != nil:
		m := rec.Migration
		fmt.Fprintf(r.out, "  Migrator: %s\n", m.Migrator)
		fmt.Fprintf(r.out, "  RPC: %s\n", m.RPCEndpoint)
		fmt.Fprintf(r.out, "  Hash: %s\n", hashStyle.Sprint(m.TransactionHash))
		if m.TransactionURL != "" {
			fmt.Fprintf(r.out, "  Explorer: %s\n", m.TransactionURL)
		}
		fmt.Fprintf(r.out, "  Migrate message: %s\n", string(m.MigrateMsg))
	}
	return nil
}
