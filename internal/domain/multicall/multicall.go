// Package multicall models the operations batched into a single factory
// multiCall transaction.
package multicall

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/ethereum/go-ethereum/common"
)

// Kind tags an Op variant.
type Kind string

const (
	KindCreate      Kind = "create"
	KindCreateProxy Kind = "create-proxy"
	KindSetLogic    Kind = "set-logic"
	KindTransfer    Kind = "transfer"
	KindCall        Kind = "call"
)

// Op is one entry of a multicall batch.
type Op interface {
	Kind() Kind
	Describe() string
}

// Create deploys raw creation bytecode through deployCreate.
type Create struct {
	Contract string
	InitCode []byte
}

// CreateProxy deploys the metamorphic proxy at Salt through deployProxy.
type CreateProxy struct {
	Salt salt.Salt
}

// SetLogic points the proxy at Salt to Logic through upgradeProxy.
type SetLogic struct {
	Salt         salt.Salt
	Logic        common.Address
	InitCallData []byte
}

// Transfer sends native value from the factory to Target.
type Transfer struct {
	Target common.Address
	Value  *big.Int
}

// Call invokes Target with Data and Value from the factory.
type Call struct {
	Label  string
	Target common.Address
	Value  *big.Int
	Data   []byte
}

func (Create) Kind() Kind      { return KindCreate }
func (CreateProxy) Kind() Kind { return KindCreateProxy }
func (SetLogic) Kind() Kind    { return KindSetLogic }
func (Transfer) Kind() Kind    { return KindTransfer }
func (Call) Kind() Kind        { return KindCall }

func (o Create) Describe() string {
	return fmt.Sprintf("deployCreate(%s, %d bytes)", o.Contract, len(o.InitCode))
}

func (o CreateProxy) Describe() string {
	return fmt.Sprintf("deployProxy(%s)", o.Salt.Hex())
}

func (o SetLogic) Describe() string {
	return fmt.Sprintf("upgradeProxy(%s, %s)", o.Salt.Hex(), o.Logic.Hex())
}

func (o Transfer) Describe() string {
	return fmt.Sprintf("transfer(%s, %s)", o.Target.Hex(), valueOrZero(o.Value))
}

func (o Call) Describe() string {
	label := o.Label
	if label == "" {
		label = "call"
	}
	return fmt.Sprintf("%s(%s)", label, o.Target.Hex())
}

// Batch is an ordered list of operations executed atomically by the factory.
type Batch []Op

// Kinds lists the operation kinds in order.
func (b Batch) Kinds() []Kind {
	kinds := make([]Kind, len(b))
	for i, op := range b {
		kinds[i] = op.Kind()
	}
	return kinds
}

func (b Batch) String() string {
	parts := make([]string, len(b))
	for i, op := range b {
		parts[i] = op.Describe()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func valueOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
