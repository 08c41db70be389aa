package abi

import (
	"fmt"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/deployment"
	"github.com/alicenet/factory-cli/internal/usecase"
)

// Encoder packs constructor and initializer arguments from config values
type Encoder struct{}

// NewEncoder creates a new argument encoder
func NewEncoder() *Encoder {
	return &Encoder{}
}

// EncodeConstructorArgs returns the ABI-encoded constructor arguments alone.
func (e *Encoder) EncodeConstructorArgs(c *domain.ContractDescriptor, args deployment.ArgSet) ([]byte, error) {
	inputs := c.ConstructorInputs()
	if len(inputs) == 0 {
		if len(args) > 0 {
			return nil, domain.ArgCountError{Kind: domain.ConstructorArgs, Expected: 0, Got: len(args)}
		}
		return []byte{}, nil
	}
	values, err := CoerceArgs(domain.ConstructorArgs, c.Name, inputs, args)
	if err != nil {
		return nil, err
	}
	packed, err := inputs.Pack(values...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack constructor args for %s: %w", c.Name, err)
	}
	return packed, nil
}

// EncodeDeployCode returns creation bytecode followed by the packed
// constructor arguments.
func (e *Encoder) EncodeDeployCode(c *domain.ContractDescriptor, args deployment.ArgSet) ([]byte, error) {
	if len(c.Bytecode) == 0 {
		return nil, fmt.Errorf("contract %s has no creation bytecode (abstract contract or interface?)", c.Name)
	}
	packed, err := e.EncodeConstructorArgs(c, args)
	if err != nil {
		return nil, err
	}
	code := make([]byte, 0, len(c.Bytecode)+len(packed))
	code = append(code, c.Bytecode...)
	return append(code, packed...), nil
}

// EncodeInitCallData packs initialize(args). It returns empty calldata when
// the contract has no initializer.
func (e *Encoder) EncodeInitCallData(c *domain.ContractDescriptor, args deployment.ArgSet) ([]byte, error) {
	method, ok := c.ABI.Methods[domain.InitializerMethod]
	if !ok {
		return []byte{}, nil
	}
	if len(args) != len(method.Inputs) {
		return nil, domain.InitializerArgsError{
			Contract: c.Name,
			Reason:   fmt.Sprintf("expected %d arguments but got %d", len(method.Inputs), len(args)),
		}
	}
	values, err := CoerceArgs(domain.InitializerArgs, c.Name, method.Inputs, args)
	if err != nil {
		return nil, err
	}
	data, err := c.ABI.Pack(domain.InitializerMethod, values...)
	if err != nil {
		return nil, domain.InitializerArgsError{Contract: c.Name, Reason: err.Error()}
	}
	return data, nil
}

var _ usecase.ArgEncoder = (*Encoder)(nil)
