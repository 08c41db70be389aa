package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSelector struct {
	pick    []string
	offered []string
	err     error
}

func (s *stubSelector) SelectContracts(_ context.Context, contracts []*domain.ContractDescriptor, _ string) ([]*domain.ContractDescriptor, error) {
	var out []*domain.ContractDescriptor
	for _, c := range contracts {
		s.offered = append(s.offered, c.Name)
		for _, p := range s.pick {
			if c.Name == p {
				out = append(out, c)
			}
		}
	}
	return out, s.err
}

func TestGenerateDeploymentConfigs(t *testing.T) {
	ctx := context.Background()
	contracts := func(t *testing.T) []*domain.ContractDescriptor {
		up := domain.DeployTypeUpgradeable
		return []*domain.ContractDescriptor{
			descriptor(t, "Snapshots", domain.NatspecTags{Salt: "Snapshots", DeployType: up}, []string{"epoch_"}, nil),
			descriptor(t, "StakingB", domain.NatspecTags{Salt: "StakingB", DeployType: up, DeployGroup: "staking", DeployGroupIndex: "2"}, nil, nil),
			descriptor(t, "StakingA", domain.NatspecTags{Salt: "StakingA", DeployType: up, DeployGroup: "staking", DeployGroupIndex: "1"}, nil, nil),
			descriptor(t, "Library", domain.NatspecTags{}, nil, nil),
		}
	}
	wantKeys := []string{
		usecase.FactoryQualifiedName,
		"src/Snapshots.sol:Snapshots",
		"src/StakingA.sol:StakingA",
		"src/StakingB.sol:StakingB",
	}

	newUC := func(h *harness, sel usecase.ContractSelector) *usecase.GenerateDeploymentConfigs {
		return usecase.NewGenerateDeploymentConfigs(h.cfg, h.artifacts, sel, h.configs, h.progress)
	}

	t.Run("writes the sorted template", func(t *testing.T) {
		h := newHarness(t, contracts(t)...)
		result, err := newUC(h, nil).Run(ctx, usecase.GenerateConfigsParams{})
		require.NoError(t, err)

		assert.Equal(t, wantKeys, result.File.Keys())
		assert.True(t, result.Written)
		saved, err := h.configs.Load(ctx, "deploymentConfig.json")
		require.NoError(t, err)
		assert.Equal(t, wantKeys, saved.Keys())

		factory, ok := saved.Get(usecase.FactoryQualifiedName)
		require.True(t, ok)
		v, ok := factory.ConstructorArgs.Get(domain.FactoryLegacyTokenArg)
		require.True(t, ok)
		assert.Equal(t, domain.UndefinedValue, v)
		assert.Contains(t, result.Undefined, "src/Snapshots.sol:Snapshots")
		assert.True(t, h.progress.contains("YOU MUST REPLACE THE UNDEFINED VALUES IN deploymentConfig.json"))
	})

	t.Run("list does not write", func(t *testing.T) {
		h := newHarness(t, contracts(t)...)
		result, err := newUC(h, nil).Run(ctx, usecase.GenerateConfigsParams{List: true, OutputFile: "out.json"})
		require.NoError(t, err)
		assert.False(t, result.Written)
		assert.Equal(t, "out.json", result.Path)
		_, err = h.configs.Load(ctx, "out.json")
		assert.Error(t, err)
		assert.Empty(t, h.progress.lines)
	})

	t.Run("named contracts", func(t *testing.T) {
		h := newHarness(t, contracts(t)...)
		result, err := newUC(h, nil).Run(ctx, usecase.GenerateConfigsParams{Names: []string{"StakingB"}, List: true})
		require.NoError(t, err)
		assert.Equal(t, []string{usecase.FactoryQualifiedName, "src/StakingB.sol:StakingB"}, result.File.Keys())
	})

	t.Run("interactive selection", func(t *testing.T) {
		h := newHarness(t, contracts(t)...)
		sel := &stubSelector{pick: []string{"StakingA", "Snapshots"}}
		result, err := newUC(h, sel).Run(ctx, usecase.GenerateConfigsParams{Select: true, List: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"Snapshots", "StakingB", "StakingA"}, sel.offered)
		assert.Equal(t, []string{usecase.FactoryQualifiedName, "src/Snapshots.sol:Snapshots", "src/StakingA.sol:StakingA"}, result.File.Keys())
	})

	t.Run("selection cancelled", func(t *testing.T) {
		h := newHarness(t, contracts(t)...)
		_, err := newUC(h, &stubSelector{err: errors.New("cancelled")}).Run(ctx, usecase.GenerateConfigsParams{Select: true})
		assert.ErrorContains(t, err, "cancelled")
	})

	t.Run("group without index", func(t *testing.T) {
		bad := descriptor(t, "Orphan", domain.NatspecTags{DeployType: domain.DeployTypeUpgradeable, DeployGroup: "staking"}, nil, nil)
		h := newHarness(t, bad)
		_, err := newUC(h, nil).Run(ctx, usecase.GenerateConfigsParams{})
		assert.ErrorContains(t, err, "without a deploy-group-index")
	})
}

func TestSaltQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("get salt", func(t *testing.T) {
		h := newHarness(t, counterDescriptor(t))
		derived, err := usecase.NewGetSalt(h.artifacts).Run(ctx, "Counter")
		require.NoError(t, err)
		assert.Equal(t, counterSalt(t), derived.Salt)
	})

	t.Run("get salt without a salt tag", func(t *testing.T) {
		h := newHarness(t, descriptor(t, "Plain", domain.NatspecTags{}, nil, nil))
		_, err := usecase.NewGetSalt(h.artifacts).Run(ctx, "Plain")
		assert.ErrorIs(t, err, domain.ErrMissingSalt)
	})

	t.Run("predict address does not touch the chain", func(t *testing.T) {
		h := newHarness(t)
		predicted, err := usecase.NewPredictAddress(h.cfg).Run(ctx, usecase.PredictAddressParams{Name: "Counter"})
		require.NoError(t, err)
		assert.Equal(t, counterSalt(t), predicted.Salt.Salt)
		assert.Equal(t, testFactory, predicted.Factory)
		assert.Zero(t, h.chain.txCount)
	})

	t.Run("lookup", func(t *testing.T) {
		h := newHarness(t, counterDescriptor(t))
		deployed, err := h.deployProxy().Run(ctx, usecase.DeployProxyParams{
			Contract: "Counter",
			Args:     usecase.ContractArgs{ConstructorArgs: []string{"1"}, InitializerArgs: []string{"2"}},
		})
		require.NoError(t, err)

		found, err := usecase.NewLookupContractAddress(h.task).Run(ctx, usecase.LookupParams{Salt: "Counter"})
		require.NoError(t, err)
		assert.Equal(t, deployed.Proxy, found.Address)

		_, err = usecase.NewLookupContractAddress(h.task).Run(ctx, usecase.LookupParams{Salt: "Nothing"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("get network", func(t *testing.T) {
		h := newHarness(t)
		info, err := usecase.NewGetNetwork(h.cfg, h.chain).Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, "hardhat", info.Name)
		assert.Equal(t, uint64(1337), info.ChainID)
	})

	t.Run("get network with a wrong chain id", func(t *testing.T) {
		h := newHarness(t)
		h.cfg.Network.ChainID = 1
		_, err := usecase.NewGetNetwork(h.cfg, h.chain).Run(ctx)
		assert.ErrorContains(t, err, "node reports 1337")
	})
}
