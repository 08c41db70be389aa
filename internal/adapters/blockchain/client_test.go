package blockchain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"testing"

	abiadapter "github.com/alicenet/factory-cli/internal/adapters/abi"
	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/bindings"
	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/alicenet/factory-cli/internal/domain/multicall"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testFactory = common.HexToAddress("0x00000000000000000000000000000000000000fa")
	testLogic   = common.HexToAddress("0x00000000000000000000000000000000000000b1")
)

type fakeBackend struct {
	chainID     int64
	baseFee     *big.Int
	nonce       uint64
	estimate    uint64
	estimateErr error
	status      uint64
	logs        []*types.Log
	callResult  []byte
	head        uint64

	sent  []*types.Transaction
	calls []ethereum.CallMsg
}

func (f *fakeBackend) ChainID(context.Context) (*big.Int, error) { return big.NewInt(f.chainID), nil }
func (f *fakeBackend) BlockNumber(context.Context) (uint64, error) {
	f.head++
	return f.head, nil
}
func (f *fakeBackend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(int64(f.head)), BaseFee: f.baseFee}, nil
}
func (f *fakeBackend) NonceAt(context.Context, common.Address, *big.Int) (uint64, error) {
	return f.nonce, nil
}
func (f *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return f.nonce, nil
}
func (f *fakeBackend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return big.NewInt(params.GWei), nil
}
func (f *fakeBackend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return f.estimate, f.estimateErr
}
func (f *fakeBackend) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.calls = append(f.calls, msg)
	return f.callResult, nil
}
func (f *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.sent = append(f.sent, tx)
	return nil
}
func (f *fakeBackend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x01}, nil
}
func (f *fakeBackend) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	if len(f.sent) == 0 {
		return nil, ethereum.NotFound
	}
	tx := f.sent[len(f.sent)-1]
	r := &types.Receipt{
		Status:      f.status,
		TxHash:      hash,
		BlockNumber: big.NewInt(10),
		GasUsed:     tx.Gas() / 2,
		Logs:        f.logs,
	}
	if tx.To() == nil {
		r.ContractAddress = testFactory
	}
	return r, nil
}

func newTestClient(t *testing.T, backend *fakeBackend) *Client {
	t.Helper()
	cfg := &config.RuntimeConfig{
		Network: &config.Network{Name: "hardhat", ChainID: 1337, RPCURL: "http://127.0.0.1:8545"},
		Sender:  &config.AccountConfig{Type: config.AccountTypePrivateKey, PrivateKey: hardhatKey},
	}
	signer, err := NewSigner(cfg)
	require.NoError(t, err)
	c := NewClient(cfg, abiadapter.NewFactoryEncoder(), signer, usecase.NopProgress{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.backend = backend
	return c
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		chainID:  1337,
		baseFee:  big.NewInt(params.GWei),
		nonce:    7,
		estimate: 100_000,
		status:   types.ReceiptStatusSuccessful,
	}
}

func rawEvent(t *testing.T, from, addr common.Address) *types.Log {
	t.Helper()
	id, err := bindings.NewAliceNetFactory().GetEventID("DeployedRaw")
	require.NoError(t, err)
	return &types.Log{Address: from, Topics: []common.Hash{id}, Data: common.LeftPadBytes(addr.Bytes(), 32)}
}

func TestClientExecuteOp(t *testing.T) {
	backend := newFakeBackend()
	backend.logs = []*types.Log{
		rawEvent(t, testFactory, testLogic),
		rawEvent(t, common.HexToAddress("0x01"), common.HexToAddress("0x02")),
	}
	c := newTestClient(t, backend)

	receipt, err := c.ExecuteOp(context.Background(), testFactory, multicall.Create{Contract: "Counter", InitCode: []byte{0x60, 0x00}})
	require.NoError(t, err)

	require.Len(t, backend.sent, 1)
	tx := backend.sent[0]
	assert.Equal(t, uint8(types.DynamicFeeTxType), tx.Type())
	assert.Equal(t, testFactory, *tx.To())
	assert.Equal(t, uint64(7), tx.Nonce())
	assert.Equal(t, uint64(120_000), tx.Gas())
	// Chain 1337 ignores the suggestion: 2 gwei + 25%.
	assert.Equal(t, big.NewInt(2_500_000_000), tx.GasTipCap())
	assert.Equal(t, big.NewInt(4_500_000_000), tx.GasFeeCap())

	from, err := types.Sender(types.LatestSignerForChainID(big.NewInt(1337)), tx)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(hardhatAddress), from)

	assert.Equal(t, []common.Address{testLogic}, receipt.DeployedRaw)
	assert.Equal(t, uint64(10), receipt.BlockNumber)
	assert.Equal(t, tx.Hash(), receipt.TxHash)
}

func TestClientSendErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*fakeBackend)
		wantErr error
		wantMsg string
	}{
		{
			name:    "reverted",
			mutate:  func(b *fakeBackend) { b.status = types.ReceiptStatusFailed },
			wantErr: domain.ErrTransactionReverted,
		},
		{
			name:    "no base fee",
			mutate:  func(b *fakeBackend) { b.baseFee = nil },
			wantErr: ErrNoBaseFee,
		},
		{
			name:    "estimation failure on small calldata",
			mutate:  func(b *fakeBackend) { b.estimateErr = errors.New("execution reverted") },
			wantMsg: "failed to estimate gas",
		},
		{
			name:    "chain id mismatch",
			mutate:  func(b *fakeBackend) { b.chainID = 1 },
			wantMsg: "chain ID mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newFakeBackend()
			tt.mutate(backend)
			c := newTestClient(t, backend)

			_, err := c.ExecuteBatch(context.Background(), testFactory, multicall.Batch{multicall.CreateProxy{Salt: salt.Salt{1}}})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}
		})
	}
}

func TestClientElevatedLimit(t *testing.T) {
	backend := newFakeBackend()
	backend.estimateErr = errors.New("gas required exceeds allowance")
	c := newTestClient(t, backend)

	_, err := c.DeployContract(context.Background(), make([]byte, 5000))
	require.NoError(t, err)
	require.Len(t, backend.sent, 1)
	assert.Nil(t, backend.sent[0].To())
	assert.Equal(t, config.DefaultElevatedGasLimit, backend.sent[0].Gas())
}

func TestClientNoSender(t *testing.T) {
	backend := newFakeBackend()
	c := newTestClient(t, backend)
	c.signer = &Signer{}

	_, err := c.DeployContract(context.Background(), []byte{0x00})
	assert.ErrorIs(t, err, ErrNoSender)
	assert.Empty(t, backend.sent)
}

func TestClientLookup(t *testing.T) {
	backend := newFakeBackend()
	backend.callResult = common.LeftPadBytes(testLogic.Bytes(), 32)
	c := newTestClient(t, backend)

	s, err := salt.FromName("Counter")
	require.NoError(t, err)
	addr, err := c.Lookup(context.Background(), testFactory, s)
	require.NoError(t, err)
	assert.Equal(t, testLogic, addr)

	require.Len(t, backend.calls, 1)
	assert.Equal(t, testFactory, *backend.calls[0].To)
	assert.Equal(t, abiadapter.NewFactoryEncoder().EncodeLookup(s), backend.calls[0].Data)
}

func TestClientWaitConfirmations(t *testing.T) {
	backend := newFakeBackend()
	c := newTestClient(t, backend)
	c.cfg.WaitConfirmations = 3
	c.pollInterval = 0

	require.NoError(t, c.waitConfirmations(context.Background(), backend, 10))
	assert.GreaterOrEqual(t, backend.head, uint64(13))
}

func TestClientNoNetwork(t *testing.T) {
	c := NewClient(&config.RuntimeConfig{}, abiadapter.NewFactoryEncoder(), &Signer{}, usecase.NopProgress{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := c.ChainID(context.Background())
	assert.ErrorContains(t, err, "no network configured")
}
