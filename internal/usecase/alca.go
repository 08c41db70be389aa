package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/bindings"
	"github.com/alicenet/factory-cli/internal/domain/multicall"
	"github.com/ethereum/go-ethereum/common"
)

// ALCATransferParams contains the parameters for minting or transferring ALCA
type ALCATransferParams struct {
	To      string
	Amount  string
	Factory *common.Address
}

// ALCATransferResult reports the recipient's balance around the transaction.
type ALCATransferResult struct {
	CallResult
	To      common.Address
	Amount  *big.Int
	Before  *big.Int
	After   *big.Int
	Minted  *big.Int
	Address common.Address // ALCA
}

func parseTransfer(params ALCATransferParams) (common.Address, *big.Int, error) {
	if !common.IsHexAddress(params.To) {
		return common.Address{}, nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, params.To)
	}
	amount, ok := new(big.Int).SetString(params.Amount, 0)
	if !ok || amount.Sign() <= 0 {
		return common.Address{}, nil, fmt.Errorf("invalid amount %q: must be a positive integer", params.Amount)
	}
	return common.HexToAddress(params.To), amount, nil
}

func (t *FactoryTask) alcaBalance(ctx context.Context, alcaAddr, account common.Address) (*big.Int, error) {
	alca := bindings.NewALCA()
	raw, err := t.client.Call(ctx, alcaAddr, alca.PackBalanceOf(account))
	if err != nil {
		return nil, fmt.Errorf("failed to read ALCA balance of %s: %w", account.Hex(), err)
	}
	return alca.UnpackBalanceOf(raw)
}

// MintALCATo mints ALCA through the ALCAMinter.
type MintALCATo struct {
	task *FactoryTask
}

// NewMintALCATo creates a new mint ALCA use case
func NewMintALCATo(task *FactoryTask) *MintALCATo {
	return &MintALCATo{task: task}
}

// Run sends callAny(ALCAMinter, 0, mint(to, amount)) and reports the
// balance delta.
func (uc *MintALCATo) Run(ctx context.Context, params ALCATransferParams) (*ALCATransferResult, error) {
	to, amount, err := parseTransfer(params)
	if err != nil {
		return nil, err
	}
	factory, err := uc.task.Factory(params.Factory)
	if err != nil {
		return nil, err
	}
	alcaAddr, err := uc.task.lookupNamed(ctx, factory, ALCAName)
	if err != nil {
		return nil, err
	}
	minter, err := uc.task.lookupNamed(ctx, factory, ALCAMinterName)
	if err != nil {
		return nil, err
	}

	result := &ALCATransferResult{To: to, Amount: amount, Address: alcaAddr}
	if result.Before, err = uc.task.alcaBalance(ctx, alcaAddr, to); err != nil {
		return nil, err
	}
	receipt, err := uc.task.client.ExecuteOp(ctx, factory, multicall.Call{
		Label:  "ALCAMinter.mint",
		Target: minter,
		Data:   bindings.NewALCAMinter().PackMint(to, amount),
	})
	if err != nil {
		return nil, fmt.Errorf("mint failed: %w", err)
	}
	result.add(receipt)
	if result.After, err = uc.task.alcaBalance(ctx, alcaAddr, to); err != nil {
		return nil, err
	}
	result.Minted = new(big.Int).Sub(result.After, result.Before)
	uc.task.Info("Minted %s to account %s", result.Minted.String(), to.Hex())
	return result, nil
}

// TransferALCAFromFactory moves ALCA held by the factory.
type TransferALCAFromFactory struct {
	task *FactoryTask
}

// NewTransferALCAFromFactory creates a new transfer ALCA use case
func NewTransferALCAFromFactory(task *FactoryTask) *TransferALCAFromFactory {
	return &TransferALCAFromFactory{task: task}
}

// Run asks for confirmation and sends callAny(ALCA, 0, transfer(to, amount)).
func (uc *TransferALCAFromFactory) Run(ctx context.Context, params ALCATransferParams) (*ALCATransferResult, error) {
	to, amount, err := parseTransfer(params)
	if err != nil {
		return nil, err
	}
	factory, err := uc.task.Factory(params.Factory)
	if err != nil {
		return nil, err
	}
	alcaAddr, err := uc.task.lookupNamed(ctx, factory, ALCAName)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Do you want to transfer %s ALCA from factory %s to %s? (y/n)\n", amount.String(), factory.Hex(), to.Hex())
	if err := uc.task.gate.Confirm(ctx, prompt); err != nil {
		return nil, err
	}

	result := &ALCATransferResult{To: to, Amount: amount, Address: alcaAddr}
	if result.Before, err = uc.task.alcaBalance(ctx, alcaAddr, to); err != nil {
		return nil, err
	}
	receipt, err := uc.task.client.ExecuteOp(ctx, factory, multicall.Call{
		Label:  "ALCA.transfer",
		Target: alcaAddr,
		Data:   bindings.NewALCA().PackTransfer(to, amount),
	})
	if err != nil {
		return nil, fmt.Errorf("transfer failed: %w", err)
	}
	result.add(receipt)
	if result.After, err = uc.task.alcaBalance(ctx, alcaAddr, to); err != nil {
		return nil, err
	}
	uc.task.Info("Transferred %s ALCA to %s, new balance: %s", amount.String(), to.Hex(), result.After.String())
	return result, nil
}

// GetALCABalance reads an account's ALCA balance.
type GetALCABalance struct {
	task *FactoryTask
}

// NewGetALCABalance creates a new get ALCA balance use case
func NewGetALCABalance(task *FactoryTask) *GetALCABalance {
	return &GetALCABalance{task: task}
}

// Run returns ALCA.balanceOf(account).
func (uc *GetALCABalance) Run(ctx context.Context, account string, factoryOverride *common.Address) (*big.Int, error) {
	if !common.IsHexAddress(account) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, account)
	}
	factory, err := uc.task.Factory(factoryOverride)
	if err != nil {
		return nil, err
	}
	alcaAddr, err := uc.task.lookupNamed(ctx, factory, ALCAName)
	if err != nil {
		return nil, err
	}
	return uc.task.alcaBalance(ctx, alcaAddr, common.HexToAddress(account))
}
