// Package blockchain sends factory transactions over JSON-RPC.
package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	abiadapter "github.com/alicenet/factory-cli/internal/adapters/abi"
	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/alicenet/factory-cli/internal/domain/multicall"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Backend is the part of ethclient.Client the factory client uses.
type Backend interface {
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	NonceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (uint64, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// Client implements usecase.FactoryClient. The RPC connection is opened on
// first use so that offline commands never dial.
type Client struct {
	cfg      *config.RuntimeConfig
	encoder  *abiadapter.FactoryEncoder
	signer   *Signer
	progress usecase.ProgressSink
	log      *slog.Logger

	pollInterval time.Duration

	mu      sync.Mutex
	backend Backend
	chainID *big.Int
}

// NewClient creates a new factory client
func NewClient(cfg *config.RuntimeConfig, encoder *abiadapter.FactoryEncoder, signer *Signer, progress usecase.ProgressSink, log *slog.Logger) *Client {
	return &Client{
		cfg:          cfg,
		encoder:      encoder,
		signer:       signer,
		progress:     progress,
		log:          log.With("component", "FactoryClient"),
		pollInterval: 2 * time.Second,
	}
}

func (c *Client) connect(ctx context.Context) (Backend, *big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.backend != nil && c.chainID != nil {
		return c.backend, c.chainID, nil
	}

	if c.backend == nil {
		if c.cfg.Network == nil || c.cfg.Network.RPCURL == "" {
			return nil, nil, fmt.Errorf("no network configured, use --network")
		}
		client, err := ethclient.DialContext(ctx, c.cfg.Network.RPCURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to RPC: %w", err)
		}
		c.backend = client
	}

	networkChainID, err := c.backend.ChainID(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if expected := c.cfg.Network.ChainID; expected != 0 && networkChainID.Uint64() != expected {
		return nil, nil, fmt.Errorf("chain ID mismatch: expected %d, got %d", expected, networkChainID.Uint64())
	}
	c.chainID = networkChainID
	return c.backend, c.chainID, nil
}

// Sender returns the signing account.
func (c *Client) Sender() common.Address {
	return c.signer.Address()
}

func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	_, chainID, err := c.connect(ctx)
	if err != nil {
		return 0, err
	}
	return chainID.Uint64(), nil
}

func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	b, _, err := c.connect(ctx)
	if err != nil {
		return 0, err
	}
	return b.BlockNumber(ctx)
}

func (c *Client) NonceAt(ctx context.Context, addr common.Address) (uint64, error) {
	b, _, err := c.connect(ctx)
	if err != nil {
		return 0, err
	}
	return b.NonceAt(ctx, addr, nil)
}

// Lookup calls factory.lookup(salt).
func (c *Client) Lookup(ctx context.Context, factory common.Address, s salt.Salt) (common.Address, error) {
	out, err := c.Call(ctx, factory, c.encoder.EncodeLookup(s))
	if err != nil {
		return common.Address{}, err
	}
	return c.encoder.DecodeLookup(out)
}

func (c *Client) Call(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	b, _, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	return b.CallContract(ctx, ethereum.CallMsg{From: c.signer.Address(), To: &to, Data: data}, nil)
}

func (c *Client) EstimateBatch(ctx context.Context, factory common.Address, batch multicall.Batch) (uint64, error) {
	b, _, err := c.connect(ctx)
	if err != nil {
		return 0, err
	}
	data, err := c.encoder.EncodeBatch(factory, batch)
	if err != nil {
		return 0, err
	}
	return b.EstimateGas(ctx, ethereum.CallMsg{From: c.signer.Address(), To: &factory, Data: data})
}

func (c *Client) ExecuteBatch(ctx context.Context, factory common.Address, batch multicall.Batch) (*domain.TxReceipt, error) {
	data, err := c.encoder.EncodeBatch(factory, batch)
	if err != nil {
		return nil, err
	}
	c.log.Debug("multicall", "factory", factory.Hex(), "batch", batch.String())
	return c.send(ctx, &factory, data, nil, "multiCall")
}

func (c *Client) ExecuteOp(ctx context.Context, factory common.Address, op multicall.Op) (*domain.TxReceipt, error) {
	data, value, err := c.encoder.EncodeOp(op)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, &factory, data, value, op.Describe())
}

func (c *Client) DeployCreate2(ctx context.Context, factory common.Address, value *big.Int, s salt.Salt, initCode []byte) (*domain.TxReceipt, error) {
	data, err := c.encoder.EncodeCreate2(value, s, initCode)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, &factory, data, value, "deployCreate2")
}

func (c *Client) DeployCreateAndRegister(ctx context.Context, factory common.Address, initCode []byte, s salt.Salt) (*domain.TxReceipt, error) {
	data, err := c.encoder.EncodeCreateAndRegister(initCode, s)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, &factory, data, nil, "deployCreateAndRegister")
}

// DeployContract sends a contract creation transaction.
func (c *Client) DeployContract(ctx context.Context, initCode []byte) (*domain.TxReceipt, error) {
	return c.send(ctx, nil, initCode, nil, "create")
}

// send signs an EIP-1559 transaction, waits for it to be mined and for the
// configured confirmations, and decodes factory events from the receipt.
func (c *Client) send(ctx context.Context, to *common.Address, data []byte, value *big.Int, label string) (*domain.TxReceipt, error) {
	b, chainID, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	from := c.signer.Address()
	if from == (common.Address{}) {
		return nil, ErrNoSender
	}
	if value == nil {
		value = new(big.Int)
	}
	gas := c.cfg.Gas.WithDefaults()

	nonce, err := b.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("get nonce: %w", err)
	}
	head, err := b.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("get latest block: %w", err)
	}
	suggested, err := b.SuggestGasTipCap(ctx)
	if err != nil {
		c.log.Debug("priority fee suggestion failed, using the minimum", "error", err)
		suggested = nil
	}
	tip := PriorityFee(suggested, chainID.Uint64(), gas.MinPriorityFeeGwei)
	feeCap, err := MaxFee(head.BaseFee, tip)
	if err != nil {
		return nil, err
	}

	estimate, estErr := b.EstimateGas(ctx, ethereum.CallMsg{
		From:      from,
		To:        to,
		GasFeeCap: feeCap,
		GasTipCap: tip,
		Value:     value,
		Data:      data,
	})
	if estErr != nil {
		c.log.Warn("gas estimation failed", "method", label, "error", estErr)
	}
	limit, err := GasLimit(estimate, estErr, len(data), gas)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       limit,
		To:        to,
		Value:     value,
		Data:      data,
	})
	signed, err := c.signer.Sign(tx, chainID)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	if err := b.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("send transaction: %w", err)
	}
	hash := signed.Hash()
	c.log.Info("transaction submitted", "method", label, "tx", hash.Hex(), "gasLimit", limit, "nonce", nonce)

	c.progress.OnProgress(ctx, usecase.ProgressEvent{
		Stage:   string(usecase.StageSending),
		Message: fmt.Sprintf("Waiting for %s (%s)", label, hash.Hex()),
		Spinner: true,
	})
	receipt, err := bind.WaitMined(ctx, b, signed)
	if err == nil {
		err = c.waitConfirmations(ctx, b, receipt.BlockNumber.Uint64())
	}
	c.progress.OnProgress(ctx, usecase.ProgressEvent{Stage: string(usecase.StageCompleted)})
	if err != nil {
		return nil, fmt.Errorf("wait for receipt of %s: %w", hash.Hex(), err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s in tx %s (block %d, gas used %d)",
			domain.ErrTransactionReverted, label, hash.Hex(), receipt.BlockNumber.Uint64(), receipt.GasUsed)
	}
	c.log.Info("transaction confirmed", "tx", hash.Hex(), "block", receipt.BlockNumber.Uint64(), "gasUsed", receipt.GasUsed)

	source := receipt.ContractAddress
	if to != nil {
		source = *to
	}
	return convertReceipt(c.encoder, source, receipt), nil
}

func (c *Client) waitConfirmations(ctx context.Context, b Backend, mined uint64) error {
	want := c.cfg.WaitConfirmations
	if want == 0 {
		return nil
	}
	for {
		head, err := b.BlockNumber(ctx)
		if err != nil {
			return err
		}
		if head >= mined+want {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
}

// convertReceipt copies the receipt fields the use cases need and decodes
// the events factory emitted.
func convertReceipt(encoder *abiadapter.FactoryEncoder, factory common.Address, r *types.Receipt) *domain.TxReceipt {
	events := encoder.ParseEvents(factory, r.Logs)
	out := &domain.TxReceipt{
		TxHash:          r.TxHash,
		GasUsed:         r.GasUsed,
		ContractAddress: r.ContractAddress,
		Logs:            r.Logs,
		DeployedRaw:     events.Raw,
		DeployedProxy:   events.Proxies,
		Deployed:        events.Deployed,
	}
	if r.BlockNumber != nil {
		out.BlockNumber = r.BlockNumber.Uint64()
	}
	return out
}

var _ usecase.FactoryClient = (*Client)(nil)
