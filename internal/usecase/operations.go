package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/bindings"
	"github.com/alicenet/factory-cli/internal/domain/multicall"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/ethereum/go-ethereum/common"
)

// Salt names of the contracts the operational tasks call.
const (
	PublicStakingName = "PublicStaking"
	ValidatorPoolName = "ValidatorPool"
	ALCAMinterName    = "ALCAMinter"
)

// lookupNamed resolves a contract registered under a plain salt name.
func (t *FactoryTask) lookupNamed(ctx context.Context, factory common.Address, name string) (common.Address, error) {
	s, err := salt.FromName(name)
	if err != nil {
		return common.Address{}, err
	}
	addr, err := t.client.Lookup(ctx, factory, s)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to look up %s: %w", name, err)
	}
	if addr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: %s is not registered in factory %s", domain.ErrNotFound, name, factory.Hex())
	}
	return addr, nil
}

// ParseAddresses validates a list of hex addresses.
func ParseAddresses(values []string) ([]common.Address, error) {
	out := make([]common.Address, 0, len(values))
	for _, v := range values {
		if !common.IsHexAddress(v) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, v)
		}
		out = append(out, common.HexToAddress(v))
	}
	return out, nil
}

// CallResult is the outcome of an operational factory transaction.
type CallResult struct {
	GasUsed  uint64
	TxHashes []common.Hash
	Block    uint64
}

func (r *CallResult) add(receipt *domain.TxReceipt) {
	r.GasUsed += receipt.GasUsed
	r.TxHashes = append(r.TxHashes, receipt.TxHash)
	r.Block = receipt.BlockNumber
}

// RegisterValidators stakes ALCA for each validator and registers them with
// the ValidatorPool.
type RegisterValidators struct {
	task *FactoryTask
}

// NewRegisterValidators creates a new register validators use case
func NewRegisterValidators(task *FactoryTask) *RegisterValidators {
	return &RegisterValidators{task: task}
}

// ValidatorsParams contains the parameters for the validator tasks
type ValidatorsParams struct {
	Validators []string
	Factory    *common.Address
}

// RegisterValidatorsResult contains the staked positions
type RegisterValidatorsResult struct {
	CallResult
	Validators  []common.Address
	TokenIDs    []*big.Int
	StakeAmount *big.Int
}

// Run mints one PublicStaking position per validator in a first multicall,
// then approves the positions to the pool and registers in a second.
func (uc *RegisterValidators) Run(ctx context.Context, params ValidatorsParams) (*RegisterValidatorsResult, error) {
	validators, err := ParseAddresses(params.Validators)
	if err != nil {
		return nil, err
	}
	if len(validators) == 0 {
		return nil, fmt.Errorf("at least one validator address is required")
	}
	factory, err := uc.task.Factory(params.Factory)
	if err != nil {
		return nil, err
	}

	alcaAddr, err := uc.task.lookupNamed(ctx, factory, ALCAName)
	if err != nil {
		return nil, err
	}
	stakingAddr, err := uc.task.lookupNamed(ctx, factory, PublicStakingName)
	if err != nil {
		return nil, err
	}
	poolAddr, err := uc.task.lookupNamed(ctx, factory, ValidatorPoolName)
	if err != nil {
		return nil, err
	}

	alca := bindings.NewALCA()
	staking := bindings.NewPublicStaking()
	pool := bindings.NewValidatorPool()

	raw, err := uc.task.client.Call(ctx, poolAddr, pool.PackGetStakeAmount())
	if err != nil {
		return nil, fmt.Errorf("failed to read stake amount: %w", err)
	}
	stake, err := pool.UnpackGetStakeAmount(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode stake amount: %w", err)
	}
	total := new(big.Int).Mul(stake, big.NewInt(int64(len(validators))))

	mint := multicall.Batch{multicall.Call{Label: "ALCA.approve", Target: alcaAddr, Data: alca.PackApprove(stakingAddr, total)}}
	for range validators {
		mint = append(mint, multicall.Call{Label: "PublicStaking.mint", Target: stakingAddr, Data: staking.PackMint(stake)})
	}

	result := &RegisterValidatorsResult{Validators: validators, StakeAmount: stake}
	receipt, err := uc.task.client.ExecuteBatch(ctx, factory, mint)
	if err != nil {
		return nil, fmt.Errorf("staking multicall failed: %w", err)
	}
	result.add(receipt)

	result.TokenIDs = mintedTokens(staking, stakingAddr, factory, receipt)
	if len(result.TokenIDs) != len(validators) {
		return nil, fmt.Errorf("%w: expected %d PublicStaking mints in tx %s, found %d",
			domain.ErrEventNotFound, len(validators), receipt.TxHash.Hex(), len(result.TokenIDs))
	}

	register := make(multicall.Batch, 0, len(validators)+1)
	for _, id := range result.TokenIDs {
		register = append(register, multicall.Call{Label: "PublicStaking.approve", Target: stakingAddr, Data: staking.PackApprove(poolAddr, id)})
	}
	data, err := pool.TryPackRegisterValidators(validators, result.TokenIDs)
	if err != nil {
		return nil, err
	}
	register = append(register, multicall.Call{Label: "ValidatorPool.registerValidators", Target: poolAddr, Data: data})

	receipt, err = uc.task.client.ExecuteBatch(ctx, factory, register)
	if err != nil {
		return nil, fmt.Errorf("registration multicall failed: %w", err)
	}
	result.add(receipt)
	uc.task.Info("Registered %d validators, gasCost: %d", len(validators), result.GasUsed)
	return result, nil
}

// mintedTokens collects the token IDs PublicStaking minted to the factory.
func mintedTokens(staking *bindings.PublicStaking, stakingAddr, factory common.Address, receipt *domain.TxReceipt) []*big.Int {
	var ids []*big.Int
	for _, log := range receipt.Logs {
		if log == nil || log.Address != stakingAddr {
			continue
		}
		ev, err := staking.UnpackTransferEvent(log)
		if err != nil {
			continue
		}
		if ev.From == (common.Address{}) && ev.To == factory {
			ids = append(ids, ev.TokenId)
		}
	}
	return ids
}

// UnregisterValidators removes validators from the ValidatorPool.
type UnregisterValidators struct {
	task *FactoryTask
}

// NewUnregisterValidators creates a new unregister validators use case
func NewUnregisterValidators(task *FactoryTask) *UnregisterValidators {
	return &UnregisterValidators{task: task}
}

// Run sends callAny(ValidatorPool, 0, unregisterValidators(validators)).
func (uc *UnregisterValidators) Run(ctx context.Context, params ValidatorsParams) (*CallResult, error) {
	validators, err := ParseAddresses(params.Validators)
	if err != nil {
		return nil, err
	}
	if len(validators) == 0 {
		return nil, fmt.Errorf("at least one validator address is required")
	}
	factory, err := uc.task.Factory(params.Factory)
	if err != nil {
		return nil, err
	}
	poolAddr, err := uc.task.lookupNamed(ctx, factory, ValidatorPoolName)
	if err != nil {
		return nil, err
	}
	data, err := bindings.NewValidatorPool().TryPackUnregisterValidators(validators)
	if err != nil {
		return nil, err
	}
	receipt, err := uc.task.client.ExecuteOp(ctx, factory, multicall.Call{Label: "ValidatorPool.unregisterValidators", Target: poolAddr, Data: data})
	if err != nil {
		return nil, fmt.Errorf("unregisterValidators failed: %w", err)
	}
	result := &CallResult{}
	result.add(receipt)
	uc.task.Info("Unregistered %d validators, gasCost: %d", len(validators), result.GasUsed)
	return result, nil
}

// InitializeETHDKG starts a key generation round on the ValidatorPool.
type InitializeETHDKG struct {
	task *FactoryTask
}

// NewInitializeETHDKG creates a new initialize ETHDKG use case
func NewInitializeETHDKG(task *FactoryTask) *InitializeETHDKG {
	return &InitializeETHDKG{task: task}
}

// Run sends callAny(ValidatorPool, 0, initializeETHDKG()).
func (uc *InitializeETHDKG) Run(ctx context.Context, factoryOverride *common.Address) (*CallResult, error) {
	factory, err := uc.task.Factory(factoryOverride)
	if err != nil {
		return nil, err
	}
	poolAddr, err := uc.task.lookupNamed(ctx, factory, ValidatorPoolName)
	if err != nil {
		return nil, err
	}
	uc.task.Info("Initializing ETHDKG")
	receipt, err := uc.task.client.ExecuteOp(ctx, factory, multicall.Call{
		Label:  "ValidatorPool.initializeETHDKG",
		Target: poolAddr,
		Data:   bindings.NewValidatorPool().PackInitializeETHDKG(),
	})
	if err != nil {
		return nil, fmt.Errorf("initializeETHDKG failed: %w", err)
	}
	result := &CallResult{}
	result.add(receipt)
	uc.task.Info("Done, block number: %d", result.Block)
	return result, nil
}
