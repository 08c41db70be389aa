package usecase

import (
	"context"
	"fmt"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/ethereum/go-ethereum/common"
)

// GetSalt derives the bytes32 salt of a contract from its natspec tags.
type GetSalt struct {
	artifacts ArtifactIndex
}

// NewGetSalt creates a new get salt use case
func NewGetSalt(artifacts ArtifactIndex) *GetSalt {
	return &GetSalt{artifacts: artifacts}
}

// Run resolves contract and derives its salt.
func (uc *GetSalt) Run(ctx context.Context, contract string) (salt.Derived, error) {
	desc, err := uc.artifacts.Resolve(ctx, contract)
	if err != nil {
		return salt.Derived{}, err
	}
	return salt.Derive(desc)
}

// PredictAddress computes proxy addresses without touching the chain.
type PredictAddress struct {
	config *config.RuntimeConfig
}

// NewPredictAddress creates a new predict address use case
func NewPredictAddress(cfg *config.RuntimeConfig) *PredictAddress {
	return &PredictAddress{config: cfg}
}

// PredictAddressParams contains the parameters for predict-address
type PredictAddressParams struct {
	Name     string
	SaltType string
	Factory  *common.Address
}

// PredictedAddress is a salt and the proxy address it maps to.
type PredictedAddress struct {
	Salt    salt.Derived
	Factory common.Address
	Proxy   common.Address
}

// Run derives the salt and predicts the proxy address.
func (uc *PredictAddress) Run(_ context.Context, params PredictAddressParams) (*PredictedAddress, error) {
	factory := params.Factory
	if factory == nil {
		factory = uc.config.FactoryAddress
	}
	if factory == nil {
		return nil, domain.ErrNoFactory
	}
	derived, err := salt.Calculate(params.Name, params.SaltType)
	if err != nil {
		return nil, err
	}
	return &PredictedAddress{
		Salt:    derived,
		Factory: *factory,
		Proxy:   salt.PredictProxyAddress(*factory, derived.Salt),
	}, nil
}

// LookupContractAddress reads the address registered under a salt name.
type LookupContractAddress struct {
	task *FactoryTask
}

// NewLookupContractAddress creates a new lookup use case
func NewLookupContractAddress(task *FactoryTask) *LookupContractAddress {
	return &LookupContractAddress{task: task}
}

// LookupParams contains the parameters for lookup-contract-address
type LookupParams struct {
	// Salt is a name, null padded to bytes32, or a 0x-prefixed bytes32.
	Salt    string
	Factory *common.Address
}

// LookupResult is the registry entry for a salt.
type LookupResult struct {
	Salt    salt.Salt
	Factory common.Address
	Address common.Address
}

// Run calls factory.lookup(salt). A zero address returns ErrNotFound.
func (uc *LookupContractAddress) Run(ctx context.Context, params LookupParams) (*LookupResult, error) {
	factory, err := uc.task.Factory(params.Factory)
	if err != nil {
		return nil, err
	}
	s, err := ParseSaltArg(params.Salt)
	if err != nil {
		return nil, err
	}
	addr, err := uc.task.client.Lookup(ctx, factory, s)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s: %w", params.Salt, err)
	}
	result := &LookupResult{Salt: s, Factory: factory, Address: addr}
	if addr == (common.Address{}) {
		return result, fmt.Errorf("%w: nothing registered at salt %s", domain.ErrNotFound, s.Hex())
	}
	return result, nil
}

// GetNetwork reports the network the CLI is connected to.
type GetNetwork struct {
	config *config.RuntimeConfig
	client FactoryClient
}

// NewGetNetwork creates a new get network use case
func NewGetNetwork(cfg *config.RuntimeConfig, client FactoryClient) *GetNetwork {
	return &GetNetwork{config: cfg, client: client}
}

// NetworkInfo is the resolved network.
type NetworkInfo struct {
	Name        string
	ChainID     uint64
	RPCURL      string
	BlockNumber uint64
}

// Run asks the node for its chain ID and head block.
func (uc *GetNetwork) Run(ctx context.Context) (*NetworkInfo, error) {
	if uc.config.Network == nil {
		return nil, fmt.Errorf("no network configured, use --network")
	}
	info := &NetworkInfo{
		Name:    uc.config.Network.Name,
		ChainID: uc.config.Network.ChainID,
		RPCURL:  uc.config.Network.RPCURL,
	}
	chainID, err := uc.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain ID: %w", err)
	}
	if info.ChainID != 0 && info.ChainID != chainID {
		return nil, fmt.Errorf("network %s is configured with chain ID %d but the node reports %d", info.Name, info.ChainID, chainID)
	}
	info.ChainID = chainID
	if info.BlockNumber, err = uc.client.BlockNumber(ctx); err != nil {
		return nil, fmt.Errorf("failed to read block number: %w", err)
	}
	return info, nil
}
