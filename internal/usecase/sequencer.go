package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/alicenet/factory-cli/internal/domain/multicall"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/ethereum/go-ethereum/common"
)

// ProxyState is how far a salt has progressed towards a pointed proxy.
type ProxyState string

const (
	StateNotDeployed   ProxyState = "NotDeployed"
	StateLogicDeployed ProxyState = "LogicDeployed"
	StateProxyPointed  ProxyState = "ProxyPointed"
)

// SequenceRequest is one deploy-logic-and-point-proxy run.
type SequenceRequest struct {
	Factory      common.Address
	Contract     string
	Salt         salt.Salt
	DeployCode   []byte
	InitCallData []byte
	// RequireProxy fails with ErrProxyNotFound unless a proxy is already
	// registered at Salt. Set for upgrades.
	RequireProxy bool
}

// SequenceResult describes the outcome of a sequence.
type SequenceResult struct {
	State        ProxyState
	Logic        common.Address
	Proxy        common.Address
	ProxyCreated bool
	UsedFallback bool
	GasUsed      uint64
	Receipts     []*domain.TxReceipt
	Batches      []multicall.Batch
}

// TxHashes lists the hashes of every transaction sent.
func (r *SequenceResult) TxHashes() []common.Hash {
	hashes := make([]common.Hash, 0, len(r.Receipts))
	for _, rc := range r.Receipts {
		hashes = append(hashes, rc.TxHash)
	}
	return hashes
}

// Sequencer deploys logic through the factory and points a proxy at it.
type Sequencer struct {
	client FactoryClient
	gas    config.GasConfig
	log    *slog.Logger
}

// NewSequencer creates a new deploy-and-upgrade sequencer
func NewSequencer(client FactoryClient, cfg *config.RuntimeConfig, log *slog.Logger) *Sequencer {
	return &Sequencer{
		client: client,
		gas:    cfg.Gas.WithDefaults(),
		log:    log.With("component", "Sequencer"),
	}
}

// Run moves req.Salt to ProxyPointed(logic). The logic address is predicted
// from the factory nonce and checked against the DeployedRaw event. A new
// proxy is checked against its CREATE2 prediction.
func (s *Sequencer) Run(ctx context.Context, req SequenceRequest) (*SequenceResult, error) {
	existing, err := s.client.Lookup(ctx, req.Factory, req.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to look up salt %s: %w", req.Salt.Hex(), err)
	}
	createProxy := existing == (common.Address{})
	if req.RequireProxy && createProxy {
		return nil, fmt.Errorf("%w: no proxy registered for %s at salt %s", domain.ErrProxyNotFound, req.Contract, req.Salt.Hex())
	}

	proxy := existing
	if createProxy {
		proxy = salt.PredictProxyAddress(req.Factory, req.Salt)
	}

	nonce, err := s.client.NonceAt(ctx, req.Factory)
	if err != nil {
		return nil, fmt.Errorf("failed to read factory nonce: %w", err)
	}
	logic := salt.PredictCreateAddress(req.Factory, nonce)

	result := &SequenceResult{
		State:        StateNotDeployed,
		Logic:        logic,
		Proxy:        proxy,
		ProxyCreated: createProxy,
	}

	create := multicall.Create{Contract: req.Contract, InitCode: req.DeployCode}
	point := pointBatch(req, logic, createProxy)
	atomic := append(multicall.Batch{create}, point...)

	estimate, err := s.client.EstimateBatch(ctx, req.Factory, atomic)
	switch {
	case err != nil:
		s.log.Warn("multicall estimation failed, deploying logic separately", "contract", req.Contract, "error", err)
	case estimate >= s.gas.MulticallLimit:
		s.log.Info("multicall over gas limit, deploying logic separately",
			"contract", req.Contract, "estimate", estimate, "limit", s.gas.MulticallLimit)
	default:
		s.log.Debug("sending atomic multicall", "contract", req.Contract, "estimate", estimate, "batch", atomic.String())
		receipt, err := s.client.ExecuteBatch(ctx, req.Factory, atomic)
		if err != nil {
			return nil, fmt.Errorf("multicall for %s failed: %w", req.Contract, err)
		}
		s.addReceipt(result, atomic, receipt)
		if err := checkLogic(receipt, logic); err != nil {
			return nil, err
		}
		if err := checkProxy(receipt, proxy, createProxy); err != nil {
			return nil, err
		}
		result.State = StateProxyPointed
		return result, nil
	}

	result.UsedFallback = true
	receipt, err := s.client.ExecuteOp(ctx, req.Factory, create)
	if err != nil {
		return nil, fmt.Errorf("deployCreate for %s failed: %w", req.Contract, err)
	}
	s.addReceipt(result, multicall.Batch{create}, receipt)
	if err := checkLogic(receipt, logic); err != nil {
		return nil, err
	}
	result.State = StateLogicDeployed

	receipt, err = s.client.ExecuteBatch(ctx, req.Factory, point)
	if err != nil {
		return nil, fmt.Errorf("proxy multicall for %s failed after logic was deployed at %s: %w", req.Contract, logic.Hex(), err)
	}
	s.addReceipt(result, point, receipt)
	if err := checkProxy(receipt, proxy, createProxy); err != nil {
		return nil, err
	}
	result.State = StateProxyPointed
	return result, nil
}

func (s *Sequencer) addReceipt(result *SequenceResult, batch multicall.Batch, receipt *domain.TxReceipt) {
	result.Receipts = append(result.Receipts, receipt)
	result.Batches = append(result.Batches, batch)
	result.GasUsed += receipt.GasUsed
	s.log.Debug("transaction mined", "tx", receipt.TxHash.Hex(), "gasUsed", receipt.GasUsed, "block", receipt.BlockNumber)
}

func pointBatch(req SequenceRequest, logic common.Address, createProxy bool) multicall.Batch {
	var batch multicall.Batch
	if createProxy {
		batch = append(batch, multicall.CreateProxy{Salt: req.Salt})
	}
	return append(batch, multicall.SetLogic{Salt: req.Salt, Logic: logic, InitCallData: req.InitCallData})
}

func checkLogic(receipt *domain.TxReceipt, predicted common.Address) error {
	observed, err := receipt.FirstRaw()
	if err != nil {
		return fmt.Errorf("tx %s: DeployedRaw: %w", receipt.TxHash.Hex(), err)
	}
	return salt.CheckAddress("logic", predicted, observed)
}

func checkProxy(receipt *domain.TxReceipt, predicted common.Address, created bool) error {
	if !created {
		return nil
	}
	observed, err := receipt.FirstProxy()
	if err != nil {
		return fmt.Errorf("tx %s: DeployedProxy: %w", receipt.TxHash.Hex(), err)
	}
	return salt.CheckAddress("proxy", predicted, observed)
}
