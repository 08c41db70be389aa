package usecase

import (
	"context"
	"fmt"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/salt"
)

// DeployCreateAndRegister deploys a contract with deployCreateAndRegister,
// registering its CREATE address under a salt for lookup.
type DeployCreateAndRegister struct {
	task *FactoryTask
}

// NewDeployCreateAndRegister creates a new deploy create and register use case
func NewDeployCreateAndRegister(task *FactoryTask) *DeployCreateAndRegister {
	return &DeployCreateAndRegister{task: task}
}

// Run asks for confirmation, deploys and checks the DeployedRaw address
// against the factory nonce prediction.
func (uc *DeployCreateAndRegister) Run(ctx context.Context, params RawDeployParams) (*RawDeployment, error) {
	factory, err := uc.task.Factory(params.Factory)
	if err != nil {
		return nil, err
	}
	prepared, err := uc.task.Prepare(ctx, params.Contract, ContractArgs{
		Entry:           params.Entry,
		ConstructorArgs: params.ConstructorArgs,
		SkipInitializer: true,
	})
	if err != nil {
		return nil, err
	}

	var s salt.Salt
	if params.Salt != "" {
		s, err = ParseSaltArg(params.Salt)
	} else {
		var derived salt.Derived
		derived, err = uc.task.Salt(prepared)
		s = derived.Salt
	}
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Do you want to deploy %s with constructorArgs: %s, salt: %s? (y/n)\n",
		prepared.Descriptor.Name, argsJSON(prepared.Entry.ConstructorArgs), s.Hex())
	if err := uc.task.gate.Confirm(ctx, prompt); err != nil {
		return nil, err
	}

	nonce, err := uc.task.client.NonceAt(ctx, factory)
	if err != nil {
		return nil, fmt.Errorf("failed to read factory nonce: %w", err)
	}
	predicted := salt.PredictCreateAddress(factory, nonce)

	receipt, err := uc.task.client.DeployCreateAndRegister(ctx, factory, prepared.DeployCode, s)
	if err != nil {
		return nil, fmt.Errorf("deployCreateAndRegister for %s failed: %w", prepared.Descriptor.Name, err)
	}
	if err := checkLogic(receipt, predicted); err != nil {
		return nil, err
	}

	result := &RawDeployment{
		Contract: prepared.Descriptor.Name,
		Factory:  factory,
		Address:  predicted,
		Salt:     &s,
		GasUsed:  receipt.GasUsed,
		TxHash:   receipt.TxHash,
	}
	uc.task.finishRaw(ctx, params, prepared, result, domain.DeployTypeCreateAndRegister)
	return result, nil
}
