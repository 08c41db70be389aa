package blockchain

import (
	"math/big"
	"testing"

	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well known hardhat account #0.
const (
	hardhatKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	hardhatAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestNewSigner(t *testing.T) {
	t.Run("private key", func(t *testing.T) {
		s, err := NewSigner(&config.RuntimeConfig{Sender: &config.AccountConfig{Type: config.AccountTypePrivateKey, PrivateKey: hardhatKey}})
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress(hardhatAddress), s.Address())

		tx := types.NewTx(&types.DynamicFeeTx{ChainID: big.NewInt(1337), Nonce: 1, Gas: 21000, GasTipCap: big.NewInt(1), GasFeeCap: big.NewInt(2)})
		signed, err := s.Sign(tx, big.NewInt(1337))
		require.NoError(t, err)
		from, err := types.Sender(types.LatestSignerForChainID(big.NewInt(1337)), signed)
		require.NoError(t, err)
		assert.Equal(t, s.Address(), from)
	})

	t.Run("address mismatch", func(t *testing.T) {
		_, err := NewSigner(&config.RuntimeConfig{
			SenderName: "deployer",
			Sender:     &config.AccountConfig{PrivateKey: hardhatKey, Address: "0x0000000000000000000000000000000000000001"},
		})
		assert.ErrorContains(t, err, "private key belongs to")
	})

	t.Run("invalid key", func(t *testing.T) {
		_, err := NewSigner(&config.RuntimeConfig{Sender: &config.AccountConfig{PrivateKey: "0x1234"}})
		assert.ErrorContains(t, err, "invalid private key")
	})

	t.Run("no sender cannot sign", func(t *testing.T) {
		s, err := NewSigner(&config.RuntimeConfig{})
		require.NoError(t, err)
		assert.Equal(t, common.Address{}, s.Address())
		_, err = s.Sign(types.NewTx(&types.DynamicFeeTx{}), big.NewInt(1))
		assert.ErrorIs(t, err, ErrNoSender)
	})
}
