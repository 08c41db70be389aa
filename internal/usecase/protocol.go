package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/alicenet/factory-cli/internal/domain/bindings"
	"github.com/alicenet/factory-cli/internal/domain/multicall"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/ethereum/go-ethereum/common"
)

// DynamicsName is the salt name of the contract holding protocol parameters.
const DynamicsName = "Dynamics"

// MinRelativeUpdateEpoch is the earliest epoch offset Dynamics accepts for a
// node version change.
const MinRelativeUpdateEpoch = 2

// callNamed sends callAny(target, 0, data) to the contract registered under name.
func (t *FactoryTask) callNamed(ctx context.Context, factoryOverride *common.Address, name, method string, data []byte) (*CallResult, error) {
	factory, err := t.Factory(factoryOverride)
	if err != nil {
		return nil, err
	}
	target, err := t.lookupNamed(ctx, factory, name)
	if err != nil {
		return nil, err
	}
	receipt, err := t.client.ExecuteOp(ctx, factory, multicall.Call{Label: name + "." + method, Target: target, Data: data})
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", method, err)
	}
	result := &CallResult{}
	result.add(receipt)
	return result, nil
}

// ScheduleMaintenance asks the ValidatorPool to enter maintenance after the
// next snapshot.
type ScheduleMaintenance struct {
	task *FactoryTask
}

// NewScheduleMaintenance creates a new schedule maintenance use case
func NewScheduleMaintenance(task *FactoryTask) *ScheduleMaintenance {
	return &ScheduleMaintenance{task: task}
}

// Run sends callAny(ValidatorPool, 0, scheduleMaintenance()).
func (uc *ScheduleMaintenance) Run(ctx context.Context, factoryOverride *common.Address) (*CallResult, error) {
	uc.task.Info("scheduling maintenance after the next snapshot")
	result, err := uc.task.callNamed(ctx, factoryOverride, ValidatorPoolName, "scheduleMaintenance",
		bindings.NewValidatorPool().PackScheduleMaintenance())
	if err != nil {
		return nil, err
	}
	uc.task.Info("Done, block number: %d", result.Block)
	return result, nil
}

// PauseConsensus halts consensus once the side chain reaches a given height.
type PauseConsensus struct {
	task *FactoryTask
}

// NewPauseConsensus creates a new pause consensus use case
func NewPauseConsensus(task *FactoryTask) *PauseConsensus {
	return &PauseConsensus{task: task}
}

// PauseConsensusParams contains the parameters for PauseConsensus
type PauseConsensusParams struct {
	// AliceNetHeight is a decimal block height on the side chain.
	AliceNetHeight string
	Factory        *common.Address
}

// Run sends callAny(ValidatorPool, 0, pauseConsensusOnArbitraryHeight(height)).
func (uc *PauseConsensus) Run(ctx context.Context, params PauseConsensusParams) (*CallResult, error) {
	height, ok := new(big.Int).SetString(params.AliceNetHeight, 10)
	if !ok || height.Sign() < 0 {
		return nil, fmt.Errorf("invalid alicenet height %q", params.AliceNetHeight)
	}
	data, err := bindings.NewValidatorPool().TryPackPauseConsensusOnArbitraryHeight(height)
	if err != nil {
		return nil, err
	}
	result, err := uc.task.callNamed(ctx, params.Factory, ValidatorPoolName, "pauseConsensusOnArbitraryHeight", data)
	if err != nil {
		return nil, err
	}
	uc.task.Info("Consensus will pause at AliceNet height %s, gasCost: %d", height, result.GasUsed)
	return result, nil
}

// UpdateNodeVersion sets the canonical AliceNet node version in Dynamics.
type UpdateNodeVersion struct {
	task *FactoryTask
}

// NewUpdateNodeVersion creates a new update node version use case
func NewUpdateNodeVersion(task *FactoryTask) *UpdateNodeVersion {
	return &UpdateNodeVersion{task: task}
}

// NodeVersionParams contains the parameters for UpdateNodeVersion. Negative
// numbers mean the value was not given.
type NodeVersionParams struct {
	RelativeEpoch int64
	Major         int64
	Minor         int64
	Patch         int64
	// BinaryHash is a 0x-prefixed bytes32 or a short string packed into one.
	BinaryHash string
	Factory    *common.Address
}

// Validate checks the epoch offset, the version triple and the binary hash.
func (p NodeVersionParams) Validate() error {
	if p.RelativeEpoch < MinRelativeUpdateEpoch {
		return fmt.Errorf("relativeEpoch not passed or the value was smaller than %d", MinRelativeUpdateEpoch)
	}
	for _, v := range []struct {
		name  string
		value int64
	}{{"major", p.Major}, {"minor", p.Minor}, {"patch", p.Patch}} {
		if v.value < 0 {
			return fmt.Errorf("%s not passed or the value was smaller than 0", v.name)
		}
	}
	if p.BinaryHash == "" {
		return fmt.Errorf("binaryHash not passed")
	}
	return nil
}

func uint32Arg(name string, v int64) (uint32, error) {
	if v < 0 || v > int64(^uint32(0)) {
		return 0, fmt.Errorf("%s %d does not fit in uint32", name, v)
	}
	return uint32(v), nil
}

// Run validates the version and sends
// callAny(Dynamics, 0, updateAliceNetNodeVersion(epoch, major, minor, patch, hash)).
func (uc *UpdateNodeVersion) Run(ctx context.Context, params NodeVersionParams) (*CallResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	epoch, err := uint32Arg("relativeEpoch", params.RelativeEpoch)
	if err != nil {
		return nil, err
	}
	major, err := uint32Arg("major", params.Major)
	if err != nil {
		return nil, err
	}
	minor, err := uint32Arg("minor", params.Minor)
	if err != nil {
		return nil, err
	}
	patch, err := uint32Arg("patch", params.Patch)
	if err != nil {
		return nil, err
	}
	hash, err := parseBytes32Arg(params.BinaryHash)
	if err != nil {
		return nil, fmt.Errorf("binaryHash: %w", err)
	}

	data, err := bindings.NewDynamics().TryPackUpdateAliceNetNodeVersion(epoch, major, minor, patch, hash)
	if err != nil {
		return nil, err
	}
	uc.task.Info("Updating the AliceNet node version to %d.%d.%d", major, minor, patch)
	result, err := uc.task.callNamed(ctx, params.Factory, DynamicsName, "updateAliceNetNodeVersion", data)
	if err != nil {
		return nil, err
	}
	uc.task.Info("Done")
	return result, nil
}

func parseBytes32Arg(arg string) ([32]byte, error) {
	if len(arg) == 66 && (arg[:2] == "0x" || arg[:2] == "0X") {
		s, err := salt.Parse(arg)
		return [32]byte(s), err
	}
	s, err := salt.FormatBytes32String(arg)
	return [32]byte(s), err
}
