package artifacts

import (
	"context"
	"fmt"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// ContractPicker asks the operator to choose one of several contracts.
type ContractPicker interface {
	PickContract(ctx context.Context, contracts []*domain.ContractDescriptor, prompt string) (*domain.ContractDescriptor, error)
}

// Resolver resolves contract references against the artifact index
type Resolver struct {
	config  *config.RuntimeConfig
	indexer *Indexer
	picker  ContractPicker
}

// NewResolver creates a new artifact resolver. picker may be nil.
func NewResolver(cfg *config.RuntimeConfig, indexer *Indexer, picker ContractPicker) *Resolver {
	return &Resolver{config: cfg, indexer: indexer, picker: picker}
}

// Resolve finds a contract by short name or "path:Name". Several contracts
// sharing a short name are offered in a picker when interactive, and
// reported as AmbiguousContractError otherwise.
func (r *Resolver) Resolve(ctx context.Context, ref string) (*domain.ContractDescriptor, error) {
	matches, err := r.indexer.lookup(ref)
	if err != nil {
		return nil, err
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		_, name := domain.SplitQualifiedName(ref)
		return nil, domain.ContractNotFoundError{Query: ref, Suggestions: r.suggest(name)}
	}

	if r.picker != nil && !r.config.NonInteractive {
		picked, err := r.picker.PickContract(ctx, matches, fmt.Sprintf("Multiple contracts found for '%s'. Select one:", ref))
		if err != nil {
			return nil, fmt.Errorf("contract selection failed: %w", err)
		}
		return picked, nil
	}

	fqns := make([]string, len(matches))
	for i, m := range matches {
		fqns[i] = m.FullyQualifiedName()
	}
	return nil, domain.AmbiguousContractError{Query: ref, Matches: fqns}
}

// All returns every indexed contract.
func (r *Resolver) All(ctx context.Context) ([]*domain.ContractDescriptor, error) {
	return r.indexer.All(ctx)
}

func (r *Resolver) suggest(name string) []string {
	if name == "" {
		return nil
	}
	found := fuzzy.Find(name, r.indexer.names())
	var out []string
	for i, m := range found {
		if i == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}

var _ usecase.ArtifactIndex = (*Resolver)(nil)
