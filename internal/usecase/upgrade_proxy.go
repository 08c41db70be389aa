package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/alicenet/factory-cli/internal/domain/deployment"
	"github.com/alicenet/factory-cli/internal/domain/salt"
)

// UpgradeProxy deploys new logic and points an existing proxy at it.
type UpgradeProxy struct {
	config    *config.RuntimeConfig
	task      *FactoryTask
	sequencer *Sequencer
	configs   DeploymentConfigStore
}

// NewUpgradeProxy creates a new upgrade proxy use case
func NewUpgradeProxy(cfg *config.RuntimeConfig, task *FactoryTask, sequencer *Sequencer, configs DeploymentConfigStore) *UpgradeProxy {
	return &UpgradeProxy{config: cfg, task: task, sequencer: sequencer, configs: configs}
}

// Run upgrades the proxy of params.Contract. The salt is re-derived from the
// artifact and must match what the deployment config and earlier address
// records hold for the contract.
func (uc *UpgradeProxy) Run(ctx context.Context, params DeployProxyParams) (*ProxyDeployment, error) {
	factory, err := uc.task.Factory(params.Factory)
	if err != nil {
		return nil, err
	}

	args := params.Args
	if args.Entry == nil && len(args.ConstructorArgs) == 0 && len(args.InitializerArgs) == 0 {
		entry, err := uc.configEntry(ctx, params.Contract)
		if err != nil {
			return nil, err
		}
		args.Entry = entry
	}

	prepared, err := uc.task.Prepare(ctx, params.Contract, args)
	if err != nil {
		return nil, err
	}

	derived, err := salt.Derive(prepared.Descriptor)
	if err != nil {
		return nil, err
	}
	if prepared.Entry.Salt != "" {
		recorded, err := prepared.Entry.ParsedSalt()
		if err != nil {
			return nil, err
		}
		if _, err := salt.VerifyScheme(prepared.Descriptor, recorded); err != nil {
			return nil, err
		}
	}
	if err := uc.checkRecords(ctx, prepared.Descriptor, derived); err != nil {
		return nil, err
	}

	seq, err := uc.sequencer.Run(ctx, SequenceRequest{
		Factory:      factory,
		Contract:     prepared.Descriptor.Name,
		Salt:         derived.Salt,
		DeployCode:   prepared.DeployCode,
		InitCallData: prepared.InitCallData,
		RequireProxy: true,
	})
	if err != nil {
		return nil, err
	}

	uc.task.Verify(ctx, seq.Logic, prepared)

	result := &ProxyDeployment{
		Contract:     prepared.Descriptor.Name,
		Factory:      factory,
		Logic:        seq.Logic,
		Proxy:        seq.Proxy,
		Salt:         derived.Salt,
		Scheme:       derived.Scheme,
		InitCallData: prepared.InitCallData,
		GasUsed:      seq.GasUsed,
		TxHashes:     seq.TxHashes(),
		UsedFallback: seq.UsedFallback,
	}
	uc.task.Record(ctx, params.RunID, result.record(domain.DeployTypeUpgradeable))
	uc.task.Info("Updating logic for the %s proxy at %s to point to implementation at %s, gasCost: %d",
		result.Contract, result.Proxy.Hex(), result.Logic.Hex(), result.GasUsed)
	return result, nil
}

// configEntry returns the contract's entry from the deployment config file,
// or nil when there is no file or no entry.
func (uc *UpgradeProxy) configEntry(ctx context.Context, contract string) (*deployment.DeploymentConfig, error) {
	if uc.configs == nil || uc.config.DeploymentConfigPath == "" {
		return nil, nil
	}
	file, err := uc.configs.Load(ctx, uc.config.DeploymentConfigPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if entry, ok := file.Get(contract); ok {
		return entry, nil
	}
	_, name := domain.SplitQualifiedName(contract)
	if entry, ok := file.FindByName(name); ok {
		return entry, nil
	}
	return nil, nil
}

func (uc *UpgradeProxy) checkRecords(ctx context.Context, desc *domain.ContractDescriptor, derived salt.Derived) error {
	if uc.task.records == nil {
		return nil
	}
	records, err := uc.task.records.Load(ctx, networkName(uc.config))
	if err != nil {
		return fmt.Errorf("failed to read address records: %w", err)
	}

	if rec, ok := records.LatestByContract(desc.Name); ok && rec.Salt != "" {
		recorded, err := salt.Parse(rec.Salt)
		if err != nil {
			return err
		}
		if _, err := salt.VerifyScheme(desc, recorded); err != nil {
			return err
		}
	}
	if rec, ok := records.Latest(derived.Salt.Hex()); ok && rec.SaltScheme != "" && rec.SaltScheme != string(derived.Scheme) {
		return fmt.Errorf("%w: %s was deployed with the %s scheme but now derives %s",
			domain.ErrSaltSchemeMismatch, desc.Name, rec.SaltScheme, derived.Scheme)
	}
	return nil
}
