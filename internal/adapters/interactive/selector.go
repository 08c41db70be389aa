package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
)

// Selector handles interactive contract selection
type Selector struct {
	config *config.RuntimeConfig
}

// NewSelector creates a new selector
func NewSelector(cfg *config.RuntimeConfig) *Selector {
	return &Selector{config: cfg}
}

// PickContract asks the operator to choose one contract.
func (s *Selector) PickContract(ctx context.Context, contracts []*domain.ContractDescriptor, prompt string) (*domain.ContractDescriptor, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}
	if len(contracts) == 0 {
		return nil, fmt.Errorf("no contracts provided for selection")
	}
	if len(contracts) == 1 {
		return contracts[0], nil
	}

	options := formatContractOptions(contracts)
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}
	sel := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          fuzzySearcher(options),
	}

	index, _, err := sel.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}
	return contracts[index], nil
}

// SelectContracts shows a multi-select list and returns the checked
// contracts in list order.
func (s *Selector) SelectContracts(ctx context.Context, contracts []*domain.ContractDescriptor, prompt string) ([]*domain.ContractDescriptor, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}
	indices, err := runMultiSelect(formatContractOptions(contracts), prompt)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.ContractDescriptor, len(indices))
	for i, idx := range indices {
		out[i] = contracts[idx]
	}
	return out, nil
}

// formatContractOptions renders "Name [deploy-type] (path)" per contract.
func formatContractOptions(contracts []*domain.ContractDescriptor) []string {
	options := make([]string, len(contracts))
	for i, c := range contracts {
		name := color.New(color.FgWhite, color.Bold).Sprint(c.Name)
		path := color.New(color.FgBlue).Sprint(strings.TrimPrefix(c.Path, "src/"))
		if c.Tags.DeployType != "" {
			kind := color.New(color.FgYellow).Sprintf("[%s]", c.Tags.DeployType)
			options[i] = fmt.Sprintf("%s %s (%s)", name, kind, path)
		} else {
			options[i] = fmt.Sprintf("%s (%s)", name, path)
		}
	}
	return options
}

func fuzzySearcher(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}
		input = strings.ToLower(input)
		item := strings.ToLower(items[index])
		if strings.Contains(item, input) {
			return true
		}
		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var _ usecase.ContractSelector = (*Selector)(nil)
