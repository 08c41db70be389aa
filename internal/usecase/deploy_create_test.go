package usecase_test

import (
	"context"
	"testing"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/deployment"
	"github.com/alicenet/factory-cli/internal/domain/multicall"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeployCreate(t *testing.T) {
	ctx := context.Background()
	tokenDesc := func(t *testing.T) *domain.ContractDescriptor {
		return descriptor(t, "Token", domain.NatspecTags{Salt: "Token"}, []string{"supply_"}, []string{"owner_"})
	}

	tests := []struct {
		name       string
		standAlone bool
		wantLine   string
	}{
		{name: "logic deploy", wantLine: "[DEBUG ONLY, DONT USE THIS ADDRESS IN THE SIDE CHAIN, USE THE PROXY INSTEAD!] Deployed logic for Token contract at: "},
		{name: "stand alone", standAlone: true, wantLine: "Deployed Token at "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tokenDesc(t))
			result, err := usecase.NewDeployCreate(h.task).Run(ctx, usecase.RawDeployParams{
				Contract:        "Token",
				ConstructorArgs: []string{"100"},
				StandAlone:      tt.standAlone,
			})
			require.NoError(t, err)

			assert.Equal(t, crypto.CreateAddress(testFactory, 1), result.Address)
			require.Len(t, h.chain.ops, 1)
			assert.Equal(t, multicall.KindCreate, h.chain.ops[0].Kind())
			assert.Equal(t, []byte("code:Token100"), h.chain.ops[0].(multicall.Create).InitCode)
			assert.True(t, h.progress.contains(tt.wantLine+result.Address.Hex()))
		})
	}

	t.Run("missing constructor args", func(t *testing.T) {
		h := newHarness(t, tokenDesc(t))
		_, err := usecase.NewDeployCreate(h.task).Run(ctx, usecase.RawDeployParams{Contract: "Token"})
		var missing domain.MissingArgsError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, domain.ConstructorArgs, missing.Kind)
	})

	t.Run("create2 with a named salt", func(t *testing.T) {
		h := newHarness(t, tokenDesc(t))
		result, err := usecase.NewDeployCreate2(h.task).Run(ctx, usecase.RawDeployParams{
			Contract:        "Token",
			ConstructorArgs: []string{"100"},
			Salt:            "TokenV2",
		})
		require.NoError(t, err)

		s, err := salt.FromName("TokenV2")
		require.NoError(t, err)
		assert.Equal(t, salt.PredictCreate2Address(testFactory, s, []byte("code:Token100")), result.Address)
		assert.Equal(t, s, *result.Salt)
	})

	t.Run("create2 defaults to the derived salt", func(t *testing.T) {
		h := newHarness(t, tokenDesc(t))
		result, err := usecase.NewDeployCreate2(h.task).Run(ctx, usecase.RawDeployParams{
			Contract:        "Token",
			ConstructorArgs: []string{"100"},
		})
		require.NoError(t, err)
		s, err := salt.FromName("Token")
		require.NoError(t, err)
		assert.Equal(t, s, *result.Salt)
	})
}

func TestDeployCreateAndRegister(t *testing.T) {
	ctx := context.Background()
	desc := func(t *testing.T) *domain.ContractDescriptor {
		return descriptor(t, "Registry", domain.NatspecTags{Salt: "Registry", DeployType: domain.DeployTypeCreateAndRegister}, []string{"admin_"}, nil)
	}

	t.Run("registers the contract under its salt", func(t *testing.T) {
		h := newHarness(t, desc(t))
		h.cfg.SkipChecks = false
		h.rebuild()
		s, err := salt.FromName("Registry")
		require.NoError(t, err)
		h.asker.On("Ask", mock.Anything, `Do you want to deploy Registry with constructorArgs: {"admin_":"5"}, salt: `+s.Hex()+"? (y/n)\n").Return("yes", nil).Once()

		result, err := usecase.NewDeployCreateAndRegister(h.task).Run(ctx, usecase.RawDeployParams{
			Contract:        "Registry",
			ConstructorArgs: []string{"5"},
		})
		require.NoError(t, err)

		assert.Equal(t, crypto.CreateAddress(testFactory, 1), result.Address)
		assert.Equal(t, result.Address, h.chain.registry[testFactory][s])
		assert.True(t, h.progress.contains("Deployed Registry at "+result.Address.Hex()))
		h.asker.AssertExpectations(t)

		records, err := h.records.Load(ctx, "hardhat")
		require.NoError(t, err)
		require.Len(t, records.Records, 1)
		assert.Equal(t, domain.DeployTypeCreateAndRegister, records.Records[0].DeployType)
	})

	t.Run("config salt must match the derived one", func(t *testing.T) {
		d := desc(t)
		h := newHarness(t, d)
		entry, err := deployment.ExtractContractInfo(d)
		require.NoError(t, err)
		other, err := salt.FromName("Registry2")
		require.NoError(t, err)
		entry.Salt = other.Hex()
		entry.ConstructorArgs.Set("admin_", "5")

		_, err = usecase.NewDeployCreateAndRegister(h.task).Run(ctx, usecase.RawDeployParams{Contract: "Registry", Entry: entry})
		assert.ErrorIs(t, err, domain.ErrSaltSchemeMismatch)
		assert.Zero(t, h.chain.txCount)
	})

	t.Run("explicit salt overrides the derived one", func(t *testing.T) {
		h := newHarness(t, desc(t))
		result, err := usecase.NewDeployCreateAndRegister(h.task).Run(ctx, usecase.RawDeployParams{
			Contract:        "Registry",
			ConstructorArgs: []string{"5"},
			Salt:            "Registry2",
		})
		require.NoError(t, err)
		s, err := salt.FromName("Registry2")
		require.NoError(t, err)
		assert.Equal(t, result.Address, h.chain.registry[testFactory][s])
	})

	t.Run("declined", func(t *testing.T) {
		h := newHarness(t, desc(t))
		h.cfg.SkipChecks = false
		h.rebuild()
		h.asker.On("Ask", mock.Anything, mock.Anything).Return("n", nil).Once()

		_, err := usecase.NewDeployCreateAndRegister(h.task).Run(ctx, usecase.RawDeployParams{
			Contract:        "Registry",
			ConstructorArgs: []string{"5"},
		})
		assert.ErrorIs(t, err, domain.ErrAborted)
		assert.Zero(t, h.chain.txCount)
	})
}

func TestDeployOnlyProxy(t *testing.T) {
	ctx := context.Background()

	t.Run("deploys once then refuses", func(t *testing.T) {
		h := newHarness(t)
		uc := usecase.NewDeployOnlyProxy(h.task)

		result, err := uc.Run(ctx, usecase.OnlyProxyParams{Salt: "StakingPool"})
		require.NoError(t, err)
		s, err := salt.FromName("StakingPool")
		require.NoError(t, err)
		assert.Equal(t, salt.PredictProxyAddress(testFactory, s), result.Proxy)
		assert.Equal(t, "StakingPool", result.Contract)
		assert.True(t, h.progress.contains("Deployed "+s.Hex()+" proxy at "+result.Proxy.Hex()))

		_, err = uc.Run(ctx, usecase.OnlyProxyParams{Salt: s.Hex()})
		assert.ErrorIs(t, err, domain.ErrProxyExists)
		assert.Equal(t, 1, h.chain.txCount)
	})

	t.Run("salt name too long", func(t *testing.T) {
		h := newHarness(t)
		_, err := usecase.NewDeployOnlyProxy(h.task).Run(ctx, usecase.OnlyProxyParams{Salt: "ThisSaltNameIsFarTooLongForBytes32"})
		assert.ErrorIs(t, err, domain.ErrSaltTooLong)
	})
}
