package abi

import (
	"fmt"
	"math/big"

	"github.com/alicenet/factory-cli/internal/domain/bindings"
	"github.com/alicenet/factory-cli/internal/domain/multicall"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// FactoryEncoder lowers multicall batches into AliceNetFactory calldata and
// decodes the factory's deployment events.
type FactoryEncoder struct {
	factory *bindings.AliceNetFactory
}

// NewFactoryEncoder creates a new factory encoder
func NewFactoryEncoder() *FactoryEncoder {
	return &FactoryEncoder{factory: bindings.NewAliceNetFactory()}
}

// Lower converts each op into a MultiCallArgs entry. Deploy and upgrade ops
// target the factory itself; calls and transfers target their contract.
func (e *FactoryEncoder) Lower(factory common.Address, batch multicall.Batch) ([]bindings.AliceNetFactoryMultiCallArgs, error) {
	out := make([]bindings.AliceNetFactoryMultiCallArgs, 0, len(batch))
	for i, op := range batch {
		var entry bindings.AliceNetFactoryMultiCallArgs
		switch o := op.(type) {
		case multicall.Create:
			data, err := e.factory.TryPackDeployCreate(o.InitCode)
			if err != nil {
				return nil, fmt.Errorf("op %d: %w", i, err)
			}
			entry = bindings.AliceNetFactoryMultiCallArgs{Target: factory, Value: new(big.Int), Data: data}
		case multicall.CreateProxy:
			entry = bindings.AliceNetFactoryMultiCallArgs{Target: factory, Value: new(big.Int), Data: e.factory.PackDeployProxy(o.Salt)}
		case multicall.SetLogic:
			data, err := e.factory.TryPackUpgradeProxy(o.Salt, o.Logic, nonNil(o.InitCallData))
			if err != nil {
				return nil, fmt.Errorf("op %d: %w", i, err)
			}
			entry = bindings.AliceNetFactoryMultiCallArgs{Target: factory, Value: new(big.Int), Data: data}
		case multicall.Transfer:
			entry = bindings.AliceNetFactoryMultiCallArgs{Target: o.Target, Value: valueOrZero(o.Value), Data: []byte{}}
		case multicall.Call:
			entry = bindings.AliceNetFactoryMultiCallArgs{Target: o.Target, Value: valueOrZero(o.Value), Data: nonNil(o.Data)}
		default:
			return nil, fmt.Errorf("op %d: unsupported multicall op %T", i, op)
		}
		out = append(out, entry)
	}
	return out, nil
}

// EncodeBatch returns multiCall(lowered batch) calldata.
func (e *FactoryEncoder) EncodeBatch(factory common.Address, batch multicall.Batch) ([]byte, error) {
	lowered, err := e.Lower(factory, batch)
	if err != nil {
		return nil, err
	}
	return e.factory.TryPackMultiCall(lowered)
}

// EncodeOp returns the calldata and value for sending op to the factory as
// a standalone transaction.
func (e *FactoryEncoder) EncodeOp(op multicall.Op) ([]byte, *big.Int, error) {
	switch o := op.(type) {
	case multicall.Create:
		data, err := e.factory.TryPackDeployCreate(o.InitCode)
		return data, new(big.Int), err
	case multicall.CreateProxy:
		return e.factory.PackDeployProxy(o.Salt), new(big.Int), nil
	case multicall.SetLogic:
		data, err := e.factory.TryPackUpgradeProxy(o.Salt, o.Logic, nonNil(o.InitCallData))
		return data, new(big.Int), err
	case multicall.Transfer:
		data, err := e.factory.TryPackCallAny(o.Target, valueOrZero(o.Value), []byte{})
		return data, new(big.Int), err
	case multicall.Call:
		data, err := e.factory.TryPackCallAny(o.Target, valueOrZero(o.Value), nonNil(o.Data))
		return data, new(big.Int), err
	}
	return nil, nil, fmt.Errorf("unsupported multicall op %T", op)
}

// EncodeCreate2 returns deployCreate2 calldata.
func (e *FactoryEncoder) EncodeCreate2(value *big.Int, s salt.Salt, initCode []byte) ([]byte, error) {
	return e.factory.TryPackDeployCreate2(valueOrZero(value), s, initCode)
}

// EncodeCreateAndRegister returns deployCreateAndRegister calldata.
func (e *FactoryEncoder) EncodeCreateAndRegister(initCode []byte, s salt.Salt) ([]byte, error) {
	return e.factory.TryPackDeployCreateAndRegister(initCode, s)
}

// EncodeLookup returns lookup(salt) calldata.
func (e *FactoryEncoder) EncodeLookup(s salt.Salt) []byte {
	return e.factory.PackLookup(s)
}

// DecodeLookup decodes the lookup return value.
func (e *FactoryEncoder) DecodeLookup(data []byte) (common.Address, error) {
	return e.factory.UnpackLookup(data)
}

// EncodeOwner returns owner() calldata.
func (e *FactoryEncoder) EncodeOwner() []byte {
	return e.factory.PackOwner()
}

// DecodeOwner decodes the owner() return value.
func (e *FactoryEncoder) DecodeOwner(data []byte) (common.Address, error) {
	return e.factory.UnpackOwner(data)
}

// EncodeGetALCAAddress returns getALCAAddress() calldata.
func (e *FactoryEncoder) EncodeGetALCAAddress() []byte {
	return e.factory.PackGetALCAAddress()
}

// DecodeGetALCAAddress decodes the getALCAAddress() return value.
func (e *FactoryEncoder) DecodeGetALCAAddress(data []byte) (common.Address, error) {
	return e.factory.UnpackGetALCAAddress(data)
}

// FactoryEvents are the deployment events emitted by a factory in one receipt
type FactoryEvents struct {
	Raw      []common.Address
	Proxies  []common.Address
	Deployed []common.Address
}

// ParseEvents extracts DeployedRaw, DeployedProxy and Deployed events
// emitted by factory. Logs from other contracts are skipped.
func (e *FactoryEncoder) ParseEvents(factory common.Address, logs []*types.Log) FactoryEvents {
	var out FactoryEvents
	for _, log := range logs {
		if log == nil || log.Address != factory || len(log.Topics) == 0 {
			continue
		}
		if ev, err := e.factory.UnpackDeployedRawEvent(log); err == nil {
			out.Raw = append(out.Raw, ev.ContractAddr)
			continue
		}
		if ev, err := e.factory.UnpackDeployedProxyEvent(log); err == nil {
			out.Proxies = append(out.Proxies, ev.ContractAddr)
			continue
		}
		if ev, err := e.factory.UnpackDeployedEvent(log); err == nil {
			out.Deployed = append(out.Deployed, ev.ContractAddr)
		}
	}
	return out
}

// MethodName names the factory method a calldata blob calls, for error output.
func (e *FactoryEncoder) MethodName(data []byte) string {
	name, err := e.factory.MethodByID(data)
	if err != nil {
		return "unknown"
	}
	return name
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}

func valueOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
