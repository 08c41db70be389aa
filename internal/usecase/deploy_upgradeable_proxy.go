package usecase

import (
	"context"
	"fmt"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/deployment"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/ethereum/go-ethereum/common"
)

// DeployUpgradeableProxy deploys a logic contract and a proxy pointing at it.
type DeployUpgradeableProxy struct {
	task      *FactoryTask
	sequencer *Sequencer
}

// NewDeployUpgradeableProxy creates a new deploy upgradeable proxy use case
func NewDeployUpgradeableProxy(task *FactoryTask, sequencer *Sequencer) *DeployUpgradeableProxy {
	return &DeployUpgradeableProxy{task: task, sequencer: sequencer}
}

// DeployProxyParams contains the parameters for a proxy deployment
type DeployProxyParams struct {
	Contract string
	Factory  *common.Address
	Args     ContractArgs
	RunID    string
}

// ProxyDeployment is the outcome of a proxy deployment or upgrade.
type ProxyDeployment struct {
	Contract     string
	Factory      common.Address
	Logic        common.Address
	Proxy        common.Address
	Salt         salt.Salt
	Scheme       salt.Scheme
	InitCallData []byte
	GasUsed      uint64
	TxHashes     []common.Hash
	UsedFallback bool
	ProxyCreated bool
}

// Run validates arguments, asks for confirmation and runs the sequencer.
func (uc *DeployUpgradeableProxy) Run(ctx context.Context, params DeployProxyParams) (*ProxyDeployment, error) {
	factory, err := uc.task.Factory(params.Factory)
	if err != nil {
		return nil, err
	}

	prepared, err := uc.task.Prepare(ctx, params.Contract, params.Args)
	if err != nil {
		return nil, err
	}
	derived, err := uc.task.Salt(prepared)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Do you want to deploy %s with constructor arguments: %s initializer Args: %s? (y/n)\n",
		prepared.Descriptor.Name, argsJSON(prepared.Entry.ConstructorArgs), argsJSON(prepared.Entry.InitializerArgs))
	if err := uc.task.gate.Confirm(ctx, prompt); err != nil {
		return nil, err
	}

	seq, err := uc.sequencer.Run(ctx, SequenceRequest{
		Factory:      factory,
		Contract:     prepared.Descriptor.Name,
		Salt:         derived.Salt,
		DeployCode:   prepared.DeployCode,
		InitCallData: prepared.InitCallData,
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
		ProxyCreated: seq.ProxyCreated,
	}
	uc.task.Record(ctx, params.RunID, result.record(domain.DeployTypeUpgradeable))
	uc.task.Info("Deployed %s with proxy at %s, gasCost: %d", result.Contract, result.Proxy.Hex(), result.GasUsed)
	return result, nil
}

func (p *ProxyDeployment) record(deployType domain.DeployType) deployment.DeploymentRecord {
	return deployment.DeploymentRecord{
		Contract:     p.Contract,
		DeployType:   deployType,
		Factory:      p.Factory,
		Logic:        addrPtr(p.Logic),
		Proxy:        addrPtr(p.Proxy),
		Salt:         p.Salt.Hex(),
		SaltScheme:   string(p.Scheme),
		GasUsed:      p.GasUsed,
		TxHashes:     p.TxHashes,
		InitCallData: encodeHex(p.InitCallData),
	}
}
