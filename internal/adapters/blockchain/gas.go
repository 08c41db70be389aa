package blockchain

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/ethereum/go-ethereum/params"
)

// ErrNoBaseFee is returned when the latest header carries no base fee.
var ErrNoBaseFee = errors.New("base fee undefined")

// PriorityFee bumps suggested by 25% and floors it at minGwei. On the local
// dev chain the suggestion is replaced by 2 gwei.
func PriorityFee(suggested *big.Int, chainID uint64, minGwei uint64) *big.Int {
	base := new(big.Int)
	if suggested != nil {
		base.Set(suggested)
	}
	if chainID == config.HardhatChainID {
		base = big.NewInt(2 * params.GWei)
	}
	tip := new(big.Int).Mul(base, big.NewInt(125))
	tip.Div(tip, big.NewInt(100))

	floor := new(big.Int).Mul(new(big.Int).SetUint64(minGwei), big.NewInt(params.GWei))
	if tip.Cmp(floor) < 0 {
		return floor
	}
	return tip
}

// MaxFee returns 2 * baseFee + tip.
func MaxFee(baseFee, tip *big.Int) (*big.Int, error) {
	if baseFee == nil {
		return nil, ErrNoBaseFee
	}
	fee := new(big.Int).Mul(baseFee, big.NewInt(2))
	return fee.Add(fee, tip), nil
}

// GasLimit applies a 20% margin to estimate. Calldata above the threshold
// gets at least the elevated limit, and falls back to it when estimation
// failed.
func GasLimit(estimate uint64, estimateErr error, calldataLen int, gas config.GasConfig) (uint64, error) {
	gas = gas.WithDefaults()
	large := calldataLen > gas.LargeCalldataThreshold
	if estimateErr != nil {
		if large {
			return gas.ElevatedLimit, nil
		}
		return 0, fmt.Errorf("failed to estimate gas: %w", estimateErr)
	}
	if large {
		return max(estimate, gas.ElevatedLimit), nil
	}
	return estimate * 120 / 100, nil
}
