package blockchain

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrNoSender is returned when a transaction is sent without a signing account.
var ErrNoSender = errors.New("no sender configured, set --sender or PRIVATE_KEY")

// Signer signs transactions with a private key account.
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewSigner loads the configured sender. A missing sender yields a signer
// that can read but not send.
func NewSigner(cfg *config.RuntimeConfig) (*Signer, error) {
	if cfg.Sender == nil || cfg.Sender.PrivateKey == "" {
		return &Signer{}, nil
	}
	if cfg.Sender.Type != "" && cfg.Sender.Type != config.AccountTypePrivateKey {
		return nil, fmt.Errorf("sender %s: unsupported account type %q", cfg.SenderName, cfg.Sender.Type)
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.Sender.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("sender %s: invalid private key: %w", cfg.SenderName, err)
	}
	address := crypto.PubkeyToAddress(key.PublicKey)
	if cfg.Sender.Address != "" && !strings.EqualFold(cfg.Sender.Address, address.Hex()) {
		return nil, fmt.Errorf("sender %s: private key belongs to %s, not %s", cfg.SenderName, address.Hex(), cfg.Sender.Address)
	}
	return &Signer{key: key, address: address}, nil
}

// Address is the signing account, or the zero address.
func (s *Signer) Address() common.Address {
	return s.address
}

// Sign signs tx for chainID.
func (s *Signer) Sign(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	if s.key == nil {
		return nil, ErrNoSender
	}
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
}
