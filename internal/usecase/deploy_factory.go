package usecase

import (
	"context"
	"fmt"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/deployment"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/ethereum/go-ethereum/common"
)

// ALCAName is the salt name the factory registers the ALCA token under.
const ALCAName = "ALCA"

// DeployFactory deploys the AliceNet factory with a plain CREATE.
type DeployFactory struct {
	task *FactoryTask
}

// NewDeployFactory creates a new deploy factory use case
func NewDeployFactory(task *FactoryTask) *DeployFactory {
	return &DeployFactory{task: task}
}

// DeployFactoryParams contains the parameters for deploying the factory
type DeployFactoryParams struct {
	LegacyToken string
	RunID       string
}

// FactoryDeployment is the outcome of a factory deployment.
type FactoryDeployment struct {
	Factory common.Address
	Owner   common.Address
	ALCA    common.Address
	GasUsed uint64
	TxHash  common.Hash
}

// Run deploys AliceNetFactory(legacyToken_) and checks the address against
// the sender's CREATE prediction.
func (uc *DeployFactory) Run(ctx context.Context, params DeployFactoryParams) (*FactoryDeployment, error) {
	if !common.IsHexAddress(params.LegacyToken) {
		return nil, fmt.Errorf("%w: legacyTokenAddress is not an address", domain.ErrInvalidAddress)
	}
	legacy := common.HexToAddress(params.LegacyToken)

	desc, err := uc.task.artifacts.Resolve(ctx, domain.FactoryContractName)
	if err != nil {
		return nil, err
	}
	entry := &deployment.DeploymentConfig{
		Name:               desc.Name,
		FullyQualifiedName: desc.FullyQualifiedName(),
		ConstructorArgs:    deployment.ArgSet{{Name: domain.FactoryLegacyTokenArg, Value: legacy.Hex()}},
		InitializerArgs:    deployment.ArgSet{},
	}
	prepared := &PreparedContract{Descriptor: desc, Entry: entry}

	prepared.DeployCode, err = uc.task.encoder.EncodeDeployCode(desc, entry.ConstructorArgs)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Do you want to deploy the factory and ALCA with constructor argument: { legacyTokenAddress: %s } ? (y/n)\n", legacy.Hex())
	if err := uc.task.gate.Confirm(ctx, prompt); err != nil {
		return nil, err
	}

	sender := uc.task.client.Sender()
	nonce, err := uc.task.client.NonceAt(ctx, sender)
	if err != nil {
		return nil, fmt.Errorf("failed to read sender nonce: %w", err)
	}
	predicted := salt.PredictCreateAddress(sender, nonce)

	receipt, err := uc.task.client.DeployContract(ctx, prepared.DeployCode)
	if err != nil {
		return nil, fmt.Errorf("failed to deploy %s: %w", domain.FactoryContractName, err)
	}
	if err := salt.CheckAddress("factory", predicted, receipt.ContractAddress); err != nil {
		return nil, err
	}
	factory := receipt.ContractAddress

	alcaSalt, err := salt.FromName(ALCAName)
	if err != nil {
		return nil, err
	}
	alca, err := uc.task.client.Lookup(ctx, factory, alcaSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to look up ALCA: %w", err)
	}

	uc.task.Verify(ctx, factory, prepared)
	if alcaDesc, err := uc.task.artifacts.Resolve(ctx, ALCAName); err == nil {
		uc.task.Verify(ctx, alca, &PreparedContract{
			Descriptor: alcaDesc,
			Entry:      &deployment.DeploymentConfig{ConstructorArgs: positional(alcaDesc, legacy.Hex())},
		})
	}

	result := &FactoryDeployment{
		Factory: factory,
		Owner:   sender,
		ALCA:    alca,
		GasUsed: receipt.GasUsed,
		TxHash:  receipt.TxHash,
	}
	uc.task.Record(ctx, params.RunID, deployment.DeploymentRecord{
		Contract: domain.FactoryContractName,
		Factory:  factory,
		Logic:    addrPtr(factory),
		GasUsed:  receipt.GasUsed,
		TxHashes: []common.Hash{receipt.TxHash},
	})
	uc.task.Info("Deployed %s at address: %s, gasCost: %d", domain.FactoryContractName, factory.Hex(), result.GasUsed)
	uc.task.Info("Deployed ALCA at address: %s, gasCost: %d", alca.Hex(), result.GasUsed)
	return result, nil
}

// positional names values after the contract's constructor inputs.
func positional(desc *domain.ContractDescriptor, values ...any) deployment.ArgSet {
	inputs := desc.ConstructorInputs()
	args := make(deployment.ArgSet, 0, len(values))
	for i, v := range values {
		name := fmt.Sprintf("arg%d", i)
		if i < len(inputs) && inputs[i].Name != "" {
			name = inputs[i].Name
		}
		args = append(args, deployment.Arg{Name: name, Value: v})
	}
	return args
}
