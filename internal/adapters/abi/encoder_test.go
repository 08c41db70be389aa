package abi

import (
	"strings"
	"testing"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/deployment"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const poolABI = `[
	{"type":"constructor","inputs":[{"name":"owner_","type":"address"},{"name":"stake_","type":"uint256"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"initialize","inputs":[{"name":"maxValidators_","type":"uint8"}],"outputs":[],"stateMutability":"nonpayable"}
]`

func testDescriptor(t *testing.T, abiJSON string) *domain.ContractDescriptor {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	require.NoError(t, err)
	return &domain.ContractDescriptor{
		Name:     "ValidatorPool",
		Path:     "src/ValidatorPool.sol",
		ABI:      parsed,
		Bytecode: []byte{0x60, 0x80, 0x60, 0x40},
	}
}

func TestEncodeDeployCode(t *testing.T) {
	enc := NewEncoder()
	c := testDescriptor(t, poolABI)

	t.Run("appends packed constructor args", func(t *testing.T) {
		code, err := enc.EncodeDeployCode(c, deployment.ArgSet{
			{Name: "owner_", Value: "0x00000000000000000000000000000000000000aa"},
			{Name: "stake_", Value: "20000"},
		})
		require.NoError(t, err)
		require.Len(t, code, len(c.Bytecode)+64)
		assert.Equal(t, c.Bytecode, code[:len(c.Bytecode)])
		assert.Equal(t, byte(0xaa), code[len(c.Bytecode)+31])
	})

	t.Run("does not alias bytecode", func(t *testing.T) {
		_, err := enc.EncodeDeployCode(c, deployment.ArgSet{
			{Name: "owner_", Value: "0x00000000000000000000000000000000000000aa"},
			{Name: "stake_", Value: "1"},
		})
		require.NoError(t, err)
		assert.Equal(t, []byte{0x60, 0x80, 0x60, 0x40}, c.Bytecode)
	})

	t.Run("no constructor inputs", func(t *testing.T) {
		plain := testDescriptor(t, `[]`)
		code, err := enc.EncodeDeployCode(plain, nil)
		require.NoError(t, err)
		assert.Equal(t, plain.Bytecode, code)

		_, err = enc.EncodeDeployCode(plain, deployment.ArgSet{{Name: "x", Value: "1"}})
		assert.Error(t, err)
	})

	t.Run("missing bytecode", func(t *testing.T) {
		empty := testDescriptor(t, `[]`)
		empty.Bytecode = nil
		_, err := enc.EncodeDeployCode(empty, nil)
		assert.ErrorContains(t, err, "no creation bytecode")
	})
}

func TestEncodeInitCallData(t *testing.T) {
	enc := NewEncoder()

	t.Run("packs initialize", func(t *testing.T) {
		data, err := enc.EncodeInitCallData(testDescriptor(t, poolABI), deployment.ArgSet{{Name: "maxValidators_", Value: "10"}})
		require.NoError(t, err)
		require.Len(t, data, 36)
		assert.Equal(t, crypto.Keccak256([]byte("initialize(uint8)"))[:4], data[:4])
		assert.Equal(t, byte(10), data[35])
	})

	t.Run("no initializer yields empty calldata", func(t *testing.T) {
		data, err := enc.EncodeInitCallData(testDescriptor(t, `[]`), nil)
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := enc.EncodeInitCallData(testDescriptor(t, poolABI), nil)
		var initErr domain.InitializerArgsError
		require.ErrorAs(t, err, &initErr)
		assert.Equal(t, "ValidatorPool", initErr.Contract)
	})

	t.Run("undefined value", func(t *testing.T) {
		_, err := enc.EncodeInitCallData(testDescriptor(t, poolABI), deployment.NewArgSet([]string{"maxValidators_"}, domain.UndefinedValue))
		assert.ErrorAs(t, err, &domain.UndefinedArgError{})
	})
}
