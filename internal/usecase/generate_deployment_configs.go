package usecase

import (
	"context"
	"fmt"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/alicenet/factory-cli/internal/domain/deployment"
	"github.com/samber/lo"
)

// GenerateDeploymentConfigs writes a deployment config template from the
// project's artifacts.
type GenerateDeploymentConfigs struct {
	config    *config.RuntimeConfig
	artifacts ArtifactIndex
	selector  ContractSelector
	configs   DeploymentConfigStore
	progress  ProgressSink
}

// NewGenerateDeploymentConfigs creates a new generate deployment configs use case
func NewGenerateDeploymentConfigs(
	cfg *config.RuntimeConfig,
	artifacts ArtifactIndex,
	selector ContractSelector,
	configs DeploymentConfigStore,
	progress ProgressSink,
) *GenerateDeploymentConfigs {
	return &GenerateDeploymentConfigs{
		config:    cfg,
		artifacts: artifacts,
		selector:  selector,
		configs:   configs,
		progress:  progress,
	}
}

// GenerateConfigsParams contains the parameters for generate-deployment-configs
type GenerateConfigsParams struct {
	// Names restricts the template to these contracts.
	Names []string
	// List prints the template without writing it.
	List bool
	// Select picks contracts interactively.
	Select     bool
	OutputFile string
}

// GenerateConfigsResult contains the generated template
type GenerateConfigsResult struct {
	File      *deployment.DeploymentConfigFile
	Path      string
	Written   bool
	Undefined []string
}

// Run builds the sorted deploy list and the template, and saves it unless
// params.List is set.
func (uc *GenerateDeploymentConfigs) Run(ctx context.Context, params GenerateConfigsParams) (*GenerateConfigsResult, error) {
	contracts, err := uc.candidates(ctx, params)
	if err != nil {
		return nil, err
	}

	configs := make([]*deployment.DeploymentConfig, 0, len(contracts))
	for _, c := range contracts {
		entry, err := deployment.ExtractContractInfo(c)
		if err != nil {
			return nil, fmt.Errorf("failed to extract %s: %w", c.FullyQualifiedName(), err)
		}
		configs = append(configs, entry)
	}

	list, err := deployment.SortedDeployList(configs)
	if err != nil {
		return nil, err
	}
	factory, err := uc.factoryEntry(ctx)
	if err != nil {
		return nil, err
	}
	file := deployment.GenerateTemplate(factory, list)

	path := params.OutputFile
	if path == "" {
		path = uc.config.DeploymentConfigPath
	}
	if path == "" {
		path = config.DefaultDeploymentConfigPath
	}

	result := &GenerateConfigsResult{
		File:      file,
		Path:      path,
		Undefined: deployment.UndefinedEntries(file),
	}
	if params.List {
		return result, nil
	}
	if err := uc.configs.Save(ctx, path, file); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	result.Written = true
	if len(result.Undefined) > 0 {
		uc.progress.Info(fmt.Sprintf("YOU MUST REPLACE THE UNDEFINED VALUES IN %s", path))
	}
	return result, nil
}

func (uc *GenerateDeploymentConfigs) candidates(ctx context.Context, params GenerateConfigsParams) ([]*domain.ContractDescriptor, error) {
	if len(params.Names) > 0 {
		out := make([]*domain.ContractDescriptor, 0, len(params.Names))
		for _, name := range params.Names {
			c, err := uc.artifacts.Resolve(ctx, name)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
		return out, nil
	}

	all, err := uc.artifacts.All(ctx)
	if err != nil {
		return nil, err
	}
	deployable := lo.Filter(all, func(c *domain.ContractDescriptor, _ int) bool {
		return c.Tags.DeployType != ""
	})
	if !params.Select {
		return deployable, nil
	}
	if uc.selector == nil || uc.config.NonInteractive {
		return nil, fmt.Errorf("--select requires an interactive terminal")
	}
	return uc.selector.SelectContracts(ctx, deployable, "Select the contracts to include")
}

// factoryEntry returns the factory's template entry. Projects that do not
// compile the factory still get the legacyToken_ placeholder.
func (uc *GenerateDeploymentConfigs) factoryEntry(ctx context.Context) (*deployment.DeploymentConfig, error) {
	desc, err := uc.artifacts.Resolve(ctx, domain.FactoryContractName)
	if err == nil {
		entry, err := deployment.ExtractContractInfo(desc)
		if err != nil {
			return nil, err
		}
		entry.InitializerArgs = deployment.ArgSet{}
		return entry, nil
	}
	return &deployment.DeploymentConfig{
		Name:               domain.FactoryContractName,
		FullyQualifiedName: FactoryQualifiedName,
		ConstructorArgs:    deployment.ArgSet{{Name: domain.FactoryLegacyTokenArg, Value: domain.UndefinedValue}},
		InitializerArgs:    deployment.ArgSet{},
	}, nil
}
