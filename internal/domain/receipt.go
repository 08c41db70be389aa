package domain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// TxReceipt is a mined, successful transaction with the factory events it
// emitted already decoded.
type TxReceipt struct {
	TxHash          common.Hash
	BlockNumber     uint64
	GasUsed         uint64
	ContractAddress common.Address // set for plain CREATE transactions
	Logs            []*types.Log

	DeployedRaw   []common.Address
	DeployedProxy []common.Address
	Deployed      []common.Address
}

// FirstRaw returns the first DeployedRaw address.
func (r *TxReceipt) FirstRaw() (common.Address, error) {
	if len(r.DeployedRaw) == 0 {
		return common.Address{}, ErrEventNotFound
	}
	return r.DeployedRaw[0], nil
}

// FirstProxy returns the first DeployedProxy address.
func (r *TxReceipt) FirstProxy() (common.Address, error) {
	if len(r.DeployedProxy) == 0 {
		return common.Address{}, ErrEventNotFound
	}
	return r.DeployedProxy[0], nil
}
