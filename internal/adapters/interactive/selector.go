package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/mantrachain/dapp-template/internal/domain"
	"github.com/mantrachain/dapp-template/internal/domain/config"
	"github.com/mantrachain/dapp-template/internal/domain/models"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/sahilm/fuzzy"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
	run    func(promptui.Select) (int, error)
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg, run: runSelect}
}

func runSelect(p promptui.Select) (int, error) {
	index, _, err := p.Run()
	return index, err
}

// SelectChain picks mainnet or testnet, starting on the current selection
func (s *SelectorAdapter) SelectChain(ctx context.Context, chains []domain.ChainName, current domain.ChainName) (domain.ChainName, error) {
	if s.config.NonInteractive {
		return "", fmt.Errorf("interactive selection not available in non-interactive mode")
	}
	if len(chains) == 0 {
		return "", fmt.Errorf("no chains provided for selection")
	}

	options := formatChainOptions(chains, current)
	start := 0
	for i, c := range chains {
		if c == current {
			start = i
		}
	}

	index, err := s.run(promptui.Select{
		Label:     "Select chain",
		Items:     options,
		Templates: selectTemplates(),
		Size:      len(options),
		CursorPos: start,
	})
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}
	return chains[index], nil
}

// SelectDeployment picks one record, searching by network, name and address
func (s *SelectorAdapter) SelectDeployment(ctx context.Context, records []*models.StoredRecord, prompt string) (*models.StoredRecord, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no deployments provided for selection")
	}

	// If only one match, return it directly
	if len(records) == 1 {
		return records[0], nil
	}

	options := formatDeploymentOptions(records)
	index, err := s.run(promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         selectTemplates(),
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(searchKeys(records)),
	})
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}
	return records[index], nil
}

func selectTemplates() *promptui.SelectTemplates {
	return &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}
}

// formatChainOptions shows each chain with its network and marks the current one
func formatChainOptions(chains []domain.ChainName, current domain.ChainName) []string {
	options := make([]string, len(chains))
	for i, chain := range chains {
		name := color.New(color.FgWhite, color.Bold).Sprint(string(chain))
		label := name
		if network, err := chain.NetworkName(); err == nil {
			label = fmt.Sprintf("%s (%s)", name, color.New(color.FgBlue).Sprint(network))
		}
		if chain == current {
			label += color.New(color.FgGreen).Sprint(" [current]")
		}
		options[i] = label
	}
	return options
}

// formatDeploymentOptions creates display strings for record selection
func formatDeploymentOptions(records []*models.StoredRecord) []string {
	options := make([]string, len(records))
	for i, r := range records {
		name := color.New(color.FgWhite, color.Bold).Sprint(r.GetDisplayName())
		addr := color.New(color.FgBlue).Sprint(r.ContractAddress())
		if r.Kind == models.RecordKindMigration {
			kind := color.New(color.FgYellow).Sprint("[migration]")
			options[i] = fmt.Sprintf("%s %s %s", name, kind, addr)
		} else {
			options[i] = fmt.Sprintf("%s %s", name, addr)
		}
	}
	return options
}

// searchKeys are the uncolored strings matched against the search input
func searchKeys(records []*models.StoredRecord) []string {
	keys := make([]string, len(records))
	for i, r := range records {
		keys[i] = strings.Join([]string{r.Network, r.Name, string(r.Kind), r.ContractAddress()}, " ")
	}
	return keys
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		// Convert to lowercase for case-insensitive search
		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		// First try simple substring match
		if strings.Contains(item, input) {
			return true
		}

		// Then try fuzzy match
		pattern := fuzzy.Find(input, []string{item})
		return len(pattern) > 0
	}
}

var (
	_ usecase.ChainSelector      = (*SelectorAdapter)(nil)
	_ usecase.DeploymentSelector = (*SelectorAdapter)(nil)
)
