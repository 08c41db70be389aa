package usecase

import (
	"context"
	"fmt"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/alicenet/factory-cli/internal/domain/deployment"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/ethereum/go-ethereum/common"
)

// FactoryQualifiedName is where the factory entry lives in generated configs.
const FactoryQualifiedName = "contracts/AliceNetFactory.sol:AliceNetFactory"

// DeployContracts runs a whole deployment config file.
type DeployContracts struct {
	config            *config.RuntimeConfig
	task              *FactoryTask
	configs           DeploymentConfigStore
	deployFactory     *DeployFactory
	deployProxy       *DeployUpgradeableProxy
	deployOnlyProxy   *DeployOnlyProxy
	createAndRegister *DeployCreateAndRegister
}

// NewDeployContracts creates a new deploy contracts use case
func NewDeployContracts(
	cfg *config.RuntimeConfig,
	task *FactoryTask,
	configs DeploymentConfigStore,
	deployFactory *DeployFactory,
	deployProxy *DeployUpgradeableProxy,
	deployOnlyProxy *DeployOnlyProxy,
	createAndRegister *DeployCreateAndRegister,
) *DeployContracts {
	return &DeployContracts{
		config:            cfg,
		task:              task,
		configs:           configs,
		deployFactory:     deployFactory,
		deployProxy:       deployProxy,
		deployOnlyProxy:   deployOnlyProxy,
		createAndRegister: createAndRegister,
	}
}

// DeployContractsParams contains the parameters for deploy-contracts
type DeployContractsParams struct {
	ConfigPath string
	Factory    *common.Address
}

// ContractOutcome is one deployed entry.
type ContractOutcome struct {
	Name       string
	DeployType domain.DeployType
	Address    common.Address // proxy, or the contract itself for create-and-register
	Logic      common.Address
	GasUsed    uint64
}

// SkippedContract is an entry whose salt was already registered.
type SkippedContract struct {
	Name     string
	Existing common.Address
}

// DeployContractsResult contains the result of a deploy-contracts run
type DeployContractsResult struct {
	RunID           string
	Factory         common.Address
	FactoryDeployed bool
	Deployed        []ContractOutcome
	Skipped         []SkippedContract
	TotalGas        uint64
}

// Run deploys the factory when none is configured, then every entry in file
// order, skipping salts that are already registered.
func (uc *DeployContracts) Run(ctx context.Context, params DeployContractsParams) (*DeployContractsResult, error) {
	path := params.ConfigPath
	if path == "" {
		path = uc.config.DeploymentConfigPath
	}
	file, err := uc.configs.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment config %s: %w", path, err)
	}

	// Every argument and salt must check out before the first transaction.
	for _, fqn := range file.Keys() {
		entry, _ := file.Get(fqn)
		if !entry.DeployType.Valid() {
			continue
		}
		if err := entry.CheckDefined(); err != nil {
			return nil, fmt.Errorf("%w (in %s)", err, path)
		}
		if err := uc.checkSalt(ctx, fqn, entry); err != nil {
			return nil, fmt.Errorf("%w (in %s)", err, path)
		}
	}

	result := &DeployContractsResult{RunID: uc.task.NewRunID()}

	factory, err := uc.task.Factory(params.Factory)
	if err != nil {
		legacy, lerr := legacyTokenArg(file, path)
		if lerr != nil {
			return nil, lerr
		}
		fd, err := uc.deployFactory.Run(ctx, DeployFactoryParams{LegacyToken: legacy, RunID: result.RunID})
		if err != nil {
			return nil, err
		}
		factory = fd.Factory
		result.FactoryDeployed = true
		result.TotalGas += fd.GasUsed
	}
	result.Factory = factory

	for _, fqn := range file.Keys() {
		entry, _ := file.Get(fqn)
		if entry.Salt != "" {
			s, err := entry.ParsedSalt()
			if err != nil {
				return nil, err
			}
			existing, err := uc.task.client.Lookup(ctx, factory, s)
			if err != nil {
				return nil, fmt.Errorf("failed to look up %s: %w", fqn, err)
			}
			if existing != (common.Address{}) {
				uc.task.Info("Skipping deployment for contract %s since it already exists at address %s", fqn, existing.Hex())
				result.Skipped = append(result.Skipped, SkippedContract{Name: fqn, Existing: existing})
				continue
			}
		}

		outcome, err := uc.deployEntry(ctx, factory, fqn, entry, result.RunID)
		if err != nil {
			return result, err
		}
		if outcome == nil {
			continue
		}
		result.Deployed = append(result.Deployed, *outcome)
		result.TotalGas += outcome.GasUsed
	}

	uc.task.Info("total gas used: %d", result.TotalGas)
	return result, nil
}

func (uc *DeployContracts) deployEntry(ctx context.Context, factory common.Address, fqn string, entry *deployment.DeploymentConfig, runID string) (*ContractOutcome, error) {
	switch entry.DeployType {
	case domain.DeployTypeUpgradeable:
		pd, err := uc.deployProxy.Run(ctx, DeployProxyParams{
			Contract: fqn,
			Factory:  &factory,
			Args:     ContractArgs{Entry: entry},
			RunID:    runID,
		})
		if err != nil {
			return nil, err
		}
		return &ContractOutcome{Name: fqn, DeployType: entry.DeployType, Address: pd.Proxy, Logic: pd.Logic, GasUsed: pd.GasUsed}, nil

	case domain.DeployTypeOnlyProxy:
		pd, err := uc.deployOnlyProxy.Run(ctx, OnlyProxyParams{
			Salt:     entry.Salt,
			Contract: entry.Name,
			Factory:  &factory,
			RunID:    runID,
		})
		if err != nil {
			return nil, err
		}
		return &ContractOutcome{Name: fqn, DeployType: entry.DeployType, Address: pd.Proxy, GasUsed: pd.GasUsed}, nil

	case domain.DeployTypeCreateAndRegister:
		rd, err := uc.createAndRegister.Run(ctx, RawDeployParams{
			Contract: fqn,
			Factory:  &factory,
			Entry:    entry,
			RunID:    runID,
		})
		if err != nil {
			return nil, err
		}
		return &ContractOutcome{Name: fqn, DeployType: entry.DeployType, Address: rd.Address, Logic: rd.Address, GasUsed: rd.GasUsed}, nil
	}
	return nil, nil
}

// checkSalt rejects a config salt the entry's artifact does not derive. Bare
// proxies have no artifact to check against.
func (uc *DeployContracts) checkSalt(ctx context.Context, fqn string, entry *deployment.DeploymentConfig) error {
	if entry.Salt == "" || entry.DeployType == domain.DeployTypeOnlyProxy {
		return nil
	}
	desc, err := uc.task.artifacts.Resolve(ctx, fqn)
	if err != nil {
		return err
	}
	s, err := entry.ParsedSalt()
	if err != nil {
		return err
	}
	_, err = salt.VerifyScheme(desc, s)
	return err
}

func legacyTokenArg(file *deployment.DeploymentConfigFile, path string) (string, error) {
	entry, ok := file.Get(FactoryQualifiedName)
	if !ok {
		entry, ok = file.FindByName(domain.FactoryContractName)
	}
	if ok {
		if v, found := entry.ConstructorArgs.Get(domain.FactoryLegacyTokenArg); found {
			if s, isStr := v.(string); isStr && s != "" && s != domain.UndefinedValue {
				return s, nil
			}
		}
	}
	return "", fmt.Errorf("Couldn't find %s in the constructor area for %s inside %s",
		domain.FactoryLegacyTokenArg, FactoryQualifiedName, path)
}
