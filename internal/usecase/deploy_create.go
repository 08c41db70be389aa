package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/deployment"
	"github.com/alicenet/factory-cli/internal/domain/multicall"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/ethereum/go-ethereum/common"
)

// RawDeployParams contains the parameters for deployCreate and deployCreate2
type RawDeployParams struct {
	Contract        string
	Factory         *common.Address
	ConstructorArgs []string
	Entry           *deployment.DeploymentConfig
	// Salt is a salt name or 0x-prefixed bytes32, used by deployCreate2.
	Salt  string
	Value *big.Int
	// StandAlone marks a contract that is not the logic of a proxy.
	StandAlone bool
	RunID      string
}

// RawDeployment is a contract deployed through the factory without a proxy.
type RawDeployment struct {
	Contract string
	Factory  common.Address
	Address  common.Address
	Salt     *salt.Salt
	GasUsed  uint64
	TxHash   common.Hash
}

// DeployCreate deploys a contract through the factory's deployCreate.
type DeployCreate struct {
	task *FactoryTask
}

// NewDeployCreate creates a new deploy create use case
func NewDeployCreate(task *FactoryTask) *DeployCreate {
	return &DeployCreate{task: task}
}

// Run sends deployCreate(creation code) and checks the DeployedRaw address
// against the factory nonce prediction.
func (uc *DeployCreate) Run(ctx context.Context, params RawDeployParams) (*RawDeployment, error) {
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

	nonce, err := uc.task.client.NonceAt(ctx, factory)
	if err != nil {
		return nil, fmt.Errorf("failed to read factory nonce: %w", err)
	}
	predicted := salt.PredictCreateAddress(factory, nonce)

	receipt, err := uc.task.client.ExecuteOp(ctx, factory, multicall.Create{Contract: prepared.Descriptor.Name, InitCode: prepared.DeployCode})
	if err != nil {
		return nil, fmt.Errorf("deployCreate for %s failed: %w", prepared.Descriptor.Name, err)
	}
	if err := checkLogic(receipt, predicted); err != nil {
		return nil, err
	}

	result := &RawDeployment{
		Contract: prepared.Descriptor.Name,
		Factory:  factory,
		Address:  predicted,
		GasUsed:  receipt.GasUsed,
		TxHash:   receipt.TxHash,
	}
	uc.task.finishRaw(ctx, params, prepared, result, "")
	return result, nil
}

// DeployCreate2 deploys a contract through the factory's deployCreate2.
type DeployCreate2 struct {
	task *FactoryTask
}

// NewDeployCreate2 creates a new deploy create2 use case
func NewDeployCreate2(task *FactoryTask) *DeployCreate2 {
	return &DeployCreate2{task: task}
}

// Run sends deployCreate2(value, salt, creation code) and checks the
// DeployedRaw address against the CREATE2 prediction.
func (uc *DeployCreate2) Run(ctx context.Context, params RawDeployParams) (*RawDeployment, error) {
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
	predicted := salt.PredictCreate2Address(factory, s, prepared.DeployCode)

	receipt, err := uc.task.client.DeployCreate2(ctx, factory, params.Value, s, prepared.DeployCode)
	if err != nil {
		return nil, fmt.Errorf("deployCreate2 for %s failed: %w", prepared.Descriptor.Name, err)
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
	uc.task.finishRaw(ctx, params, prepared, result, "")
	return result, nil
}

// finishRaw verifies, records and reports a raw deployment.
func (t *FactoryTask) finishRaw(ctx context.Context, params RawDeployParams, prepared *PreparedContract, result *RawDeployment, deployType domain.DeployType) {
	t.Verify(ctx, result.Address, prepared)

	rec := deployment.DeploymentRecord{
		Contract:   result.Contract,
		DeployType: deployType,
		Factory:    result.Factory,
		Logic:      addrPtr(result.Address),
		GasUsed:    result.GasUsed,
		TxHashes:   []common.Hash{result.TxHash},
	}
	if result.Salt != nil {
		rec.Salt = result.Salt.Hex()
	}
	t.Record(ctx, params.RunID, rec)

	if params.StandAlone || deployType != "" {
		t.Info("Deployed %s at %s, gasCost: %d", result.Contract, result.Address.Hex(), result.GasUsed)
		return
	}
	t.Info("[DEBUG ONLY, DONT USE THIS ADDRESS IN THE SIDE CHAIN, USE THE PROXY INSTEAD!] Deployed logic for %s contract at: %s, gas: %d",
		result.Contract, result.Address.Hex(), result.GasUsed)
}

// ParseSaltArg accepts a 0x-prefixed bytes32 or a name to null-pad.
func ParseSaltArg(arg string) (salt.Salt, error) {
	if len(arg) == 66 && (arg[:2] == "0x" || arg[:2] == "0X") {
		return salt.Parse(arg)
	}
	return salt.FromName(arg)
}
