package usecase

import (
	"context"
	"fmt"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/deployment"
	"github.com/alicenet/factory-cli/internal/domain/multicall"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/ethereum/go-ethereum/common"
)

// DeployOnlyProxy deploys a proxy with no logic behind it.
type DeployOnlyProxy struct {
	task *FactoryTask
}

// NewDeployOnlyProxy creates a new deploy only proxy use case
func NewDeployOnlyProxy(task *FactoryTask) *DeployOnlyProxy {
	return &DeployOnlyProxy{task: task}
}

// OnlyProxyParams contains the parameters for deployProxy
type OnlyProxyParams struct {
	// Salt is a salt name or 0x-prefixed bytes32.
	Salt     string
	Contract string
	Factory  *common.Address
	RunID    string
}

// Run sends deployProxy(salt). An occupied salt fails with ErrProxyExists
// before anything is sent.
func (uc *DeployOnlyProxy) Run(ctx context.Context, params OnlyProxyParams) (*ProxyDeployment, error) {
	factory, err := uc.task.Factory(params.Factory)
	if err != nil {
		return nil, err
	}
	s, err := ParseSaltArg(params.Salt)
	if err != nil {
		return nil, err
	}

	existing, err := uc.task.client.Lookup(ctx, factory, s)
	if err != nil {
		return nil, fmt.Errorf("failed to look up salt %s: %w", s.Hex(), err)
	}
	if existing != (common.Address{}) {
		return nil, fmt.Errorf("%w: salt %s is registered at %s", domain.ErrProxyExists, s.Hex(), existing.Hex())
	}
	predicted := salt.PredictProxyAddress(factory, s)

	receipt, err := uc.task.client.ExecuteOp(ctx, factory, multicall.CreateProxy{Salt: s})
	if err != nil {
		return nil, fmt.Errorf("deployProxy for %s failed: %w", s.Hex(), err)
	}
	if err := checkProxy(receipt, predicted, true); err != nil {
		return nil, err
	}

	name := params.Contract
	if name == "" {
		name = salt.ParseBytes32String(s)
	}
	result := &ProxyDeployment{
		Contract:     name,
		Factory:      factory,
		Proxy:        predicted,
		Salt:         s,
		GasUsed:      receipt.GasUsed,
		TxHashes:     []common.Hash{receipt.TxHash},
		ProxyCreated: true,
	}
	uc.task.Record(ctx, params.RunID, deployment.DeploymentRecord{
		Contract:   name,
		DeployType: domain.DeployTypeOnlyProxy,
		Factory:    factory,
		Proxy:      addrPtr(predicted),
		Salt:       s.Hex(),
		GasUsed:    receipt.GasUsed,
		TxHashes:   result.TxHashes,
	})
	uc.task.Info("Deployed %s proxy at %s, gasCost: %d", s.Hex(), predicted.Hex(), receipt.GasUsed)
	return result, nil
}
