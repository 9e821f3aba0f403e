package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mantrachain/dapp-template/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// RenderNetworksList renders every configured network and its live status
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := newTable()
	t.AppendHeader(table.Row{"", "Network", "Chain ID", "REST", "Status"})
	for _, n := range result.Networks {
		t.AppendRow(table.Row{statusIcon(n), valueStyle.Sprint(n.Name), n.ChainID, n.RESTEndpoint, statusText(n)})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}

func statusIcon(n usecase.NetworkStatus) string {
	switch {
	case n.Error != nil:
		return "❌"
	case n.Mismatch():
		return "⚠️"
	default:
		return "✅"
	}
}

func statusText(n usecase.NetworkStatus) string {
	switch {
	case n.Error != nil:
		return failureStyle.Sprintf("error: %v", n.Error)
	case n.Mismatch():
		return warningStyle.Sprintf("node reports %s", n.LiveChainID)
	case n.LiveChainID != "":
		return successStyle.Sprint("online")
	default:
		return labelStyle.Sprint("not checked")
	}
}
