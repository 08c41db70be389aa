package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/multicall"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterSalt(t *testing.T) salt.Salt {
	t.Helper()
	s, err := salt.FromName("Counter")
	require.NoError(t, err)
	return s
}

func TestSequencer(t *testing.T) {
	ctx := context.Background()
	s := counterSalt(t)
	proxy := salt.PredictProxyAddress(testFactory, s)

	request := func() usecase.SequenceRequest {
		return usecase.SequenceRequest{
			Factory:      testFactory,
			Contract:     "Counter",
			Salt:         s,
			DeployCode:   []byte("code"),
			InitCallData: []byte("init"),
		}
	}

	t.Run("new salt deploys logic and proxy in one multicall", func(t *testing.T) {
		h := newHarness(t)
		result, err := h.sequencer.Run(ctx, request())
		require.NoError(t, err)

		assert.Equal(t, usecase.StateProxyPointed, result.State)
		assert.Equal(t, crypto.CreateAddress(testFactory, 1), result.Logic)
		assert.Equal(t, proxy, result.Proxy)
		assert.True(t, result.ProxyCreated)
		assert.False(t, result.UsedFallback)
		require.Len(t, h.chain.batches, 1)
		assert.Equal(t, []multicall.Kind{multicall.KindCreate, multicall.KindCreateProxy, multicall.KindSetLogic}, h.chain.batches[0].Kinds())
		assert.Empty(t, h.chain.ops)
		assert.Equal(t, result.Logic, h.chain.impls[proxy])
		assert.Len(t, result.TxHashes(), 1)
	})

	t.Run("existing proxy is only repointed", func(t *testing.T) {
		h := newHarness(t)
		h.chain.register(testFactory, s, proxy)

		result, err := h.sequencer.Run(ctx, request())
		require.NoError(t, err)

		assert.False(t, result.ProxyCreated)
		assert.Equal(t, proxy, result.Proxy)
		require.Len(t, h.chain.batches, 1)
		assert.Equal(t, []multicall.Kind{multicall.KindCreate, multicall.KindSetLogic}, h.chain.batches[0].Kinds())
	})

	fallbacks := []struct {
		name        string
		estimate    uint64
		estimateErr error
	}{
		{name: "estimate at the multicall limit", estimate: 10_000_000},
		{name: "estimate above the multicall limit", estimate: 12_000_000},
		{name: "estimation error", estimateErr: errors.New("execution reverted")},
	}
	for _, tt := range fallbacks {
		t.Run("falls back on "+tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.chain.estimate = tt.estimate
			h.chain.estimateErr = tt.estimateErr

			result, err := h.sequencer.Run(ctx, request())
			require.NoError(t, err)

			assert.True(t, result.UsedFallback)
			assert.Equal(t, usecase.StateProxyPointed, result.State)
			require.Len(t, h.chain.ops, 1)
			assert.Equal(t, multicall.KindCreate, h.chain.ops[0].Kind())
			require.Len(t, h.chain.batches, 1)
			assert.Equal(t, []multicall.Kind{multicall.KindCreateProxy, multicall.KindSetLogic}, h.chain.batches[0].Kinds())
			assert.Equal(t, crypto.CreateAddress(testFactory, 1), h.chain.impls[proxy])
			assert.Len(t, result.Receipts, 2)
			assert.Equal(t, uint64(100_000+200_000), result.GasUsed)
		})
	}

	t.Run("upgrade without a proxy sends nothing", func(t *testing.T) {
		h := newHarness(t)
		req := request()
		req.RequireProxy = true

		_, err := h.sequencer.Run(ctx, req)
		assert.ErrorIs(t, err, domain.ErrProxyNotFound)
		assert.Zero(t, h.chain.txCount)
	})

	t.Run("reverted multicall leaves the registry untouched", func(t *testing.T) {
		h := newHarness(t)
		h.chain.revertKind = multicall.KindSetLogic

		_, err := h.sequencer.Run(ctx, request())
		assert.ErrorIs(t, err, domain.ErrTransactionReverted)
		assert.Equal(t, common.Address{}, h.chain.registry[testFactory][s])
		assert.Empty(t, h.chain.impls)
	})

	t.Run("revert after the fallback logic deploy", func(t *testing.T) {
		h := newHarness(t)
		h.chain.estimate = 20_000_000
		h.chain.revertKind = multicall.KindCreateProxy

		_, err := h.sequencer.Run(ctx, request())
		assert.ErrorIs(t, err, domain.ErrTransactionReverted)
		assert.Contains(t, err.Error(), "after logic was deployed at "+crypto.CreateAddress(testFactory, 1).Hex())
		assert.Len(t, h.chain.ops, 1)
	})

	t.Run("unexpected logic address", func(t *testing.T) {
		h := newHarness(t)
		wrong := common.HexToAddress("0x000000000000000000000000000000000000dead")
		h.chain.rawOverride = &wrong

		_, err := h.sequencer.Run(ctx, request())
		assert.ErrorIs(t, err, domain.ErrAddressMismatch)
	})

	proxyMismatches := []struct {
		name     string
		estimate uint64
	}{
		{name: "in the multicall", estimate: 1_000_000},
		{name: "after the fallback", estimate: 20_000_000},
	}
	for _, tt := range proxyMismatches {
		t.Run("unexpected proxy address "+tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.chain.estimate = tt.estimate
			wrong := common.HexToAddress("0x000000000000000000000000000000000000beef")
			h.chain.proxyOverride = &wrong

			_, err := h.sequencer.Run(ctx, request())
			assert.ErrorIs(t, err, domain.ErrAddressMismatch)
			assert.Contains(t, err.Error(), proxy.Hex())
		})
	}
}
