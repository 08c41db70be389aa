package usecase_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/bindings"
	"github.com/alicenet/factory-cli/internal/domain/multicall"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dynamicsAddr = common.HexToAddress("0x0000000000000000000000000000000000000d1c")

func protocolHarness(t *testing.T) *harness {
	t.Helper()
	h, _ := alicenetHarness(t)
	s, err := salt.FromName(usecase.DynamicsName)
	require.NoError(t, err)
	h.chain.register(testFactory, s, dynamicsAddr)
	return h
}

func TestScheduleMaintenance(t *testing.T) {
	ctx := context.Background()

	t.Run("calls the ValidatorPool through callAny", func(t *testing.T) {
		h := protocolHarness(t)
		result, err := usecase.NewScheduleMaintenance(h.task).Run(ctx, nil)
		require.NoError(t, err)

		require.Len(t, h.chain.ops, 1)
		call := h.chain.ops[0].(multicall.Call)
		assert.Equal(t, poolAddr, call.Target)
		assert.Equal(t, "ValidatorPool.scheduleMaintenance", call.Label)
		assert.Equal(t, common.FromHex("0x2380db1a"), call.Data)
		assert.Equal(t, uint64(1), result.Block)
		assert.True(t, h.progress.contains("scheduling maintenance after the next snapshot"))
	})

	t.Run("pool not registered", func(t *testing.T) {
		h := newHarness(t)
		_, err := usecase.NewScheduleMaintenance(h.task).Run(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Zero(t, h.chain.txCount)
	})
}

func TestPauseConsensus(t *testing.T) {
	ctx := context.Background()

	t.Run("encodes the height", func(t *testing.T) {
		h := protocolHarness(t)
		_, err := usecase.NewPauseConsensus(h.task).Run(ctx, usecase.PauseConsensusParams{AliceNetHeight: "1024"})
		require.NoError(t, err)

		require.Len(t, h.chain.ops, 1)
		call := h.chain.ops[0].(multicall.Call)
		assert.Equal(t, poolAddr, call.Target)
		assert.Equal(t, bindings.NewValidatorPool().PackPauseConsensusOnArbitraryHeight(big.NewInt(1024)), call.Data)
		assert.Equal(t, common.FromHex("0xbc33bb01"), call.Data[:4])
	})

	for _, height := range []string{"", "-1", "ten"} {
		t.Run("rejects height "+height, func(t *testing.T) {
			h := protocolHarness(t)
			_, err := usecase.NewPauseConsensus(h.task).Run(ctx, usecase.PauseConsensusParams{AliceNetHeight: height})
			assert.ErrorContains(t, err, "invalid alicenet height")
			assert.Zero(t, h.chain.txCount)
		})
	}
}

func TestUpdateNodeVersion(t *testing.T) {
	ctx := context.Background()
	valid := func() usecase.NodeVersionParams {
		return usecase.NodeVersionParams{RelativeEpoch: 2, Major: 1, Minor: 0, Patch: 3, BinaryHash: "v1.0.3"}
	}

	t.Run("calls Dynamics through callAny", func(t *testing.T) {
		h := protocolHarness(t)
		_, err := usecase.NewUpdateNodeVersion(h.task).Run(ctx, valid())
		require.NoError(t, err)

		hash, err := salt.FormatBytes32String("v1.0.3")
		require.NoError(t, err)
		require.Len(t, h.chain.ops, 1)
		call := h.chain.ops[0].(multicall.Call)
		assert.Equal(t, dynamicsAddr, call.Target)
		assert.Equal(t, "Dynamics.updateAliceNetNodeVersion", call.Label)
		assert.Equal(t, bindings.NewDynamics().PackUpdateAliceNetNodeVersion(2, 1, 0, 3, hash), call.Data)
		assert.Equal(t, common.FromHex("0xab8a8411"), call.Data[:4])
		assert.True(t, h.progress.contains("Updating the AliceNet node version to 1.0.3"))
	})

	t.Run("hex binary hash is used as is", func(t *testing.T) {
		h := protocolHarness(t)
		params := valid()
		raw := common.HexToHash("0x1234000000000000000000000000000000000000000000000000000000005678")
		params.BinaryHash = raw.Hex()
		_, err := usecase.NewUpdateNodeVersion(h.task).Run(ctx, params)
		require.NoError(t, err)

		call := h.chain.ops[0].(multicall.Call)
		assert.Equal(t, bindings.NewDynamics().PackUpdateAliceNetNodeVersion(2, 1, 0, 3, raw), call.Data)
	})

	invalid := []struct {
		name   string
		mutate func(*usecase.NodeVersionParams)
		want   string
	}{
		{name: "relative epoch below two", mutate: func(p *usecase.NodeVersionParams) { p.RelativeEpoch = 1 }, want: "relativeEpoch"},
		{name: "major not given", mutate: func(p *usecase.NodeVersionParams) { p.Major = -1 }, want: "major"},
		{name: "minor not given", mutate: func(p *usecase.NodeVersionParams) { p.Minor = -1 }, want: "minor"},
		{name: "patch not given", mutate: func(p *usecase.NodeVersionParams) { p.Patch = -1 }, want: "patch"},
		{name: "empty binary hash", mutate: func(p *usecase.NodeVersionParams) { p.BinaryHash = "" }, want: "binaryHash not passed"},
		{name: "patch beyond uint32", mutate: func(p *usecase.NodeVersionParams) { p.Patch = 1 << 32 }, want: "does not fit in uint32"},
		{name: "binary hash too long", mutate: func(p *usecase.NodeVersionParams) { p.BinaryHash = "a-binary-hash-longer-than-bytes32" }, want: "binaryHash"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			h := protocolHarness(t)
			params := valid()
			tt.mutate(&params)
			_, err := usecase.NewUpdateNodeVersion(h.task).Run(ctx, params)
			assert.ErrorContains(t, err, tt.want)
			assert.Zero(t, h.chain.txCount)
		})
	}

	t.Run("dynamics not registered", func(t *testing.T) {
		h, _ := alicenetHarness(t)
		_, err := usecase.NewUpdateNodeVersion(h.task).Run(ctx, valid())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
