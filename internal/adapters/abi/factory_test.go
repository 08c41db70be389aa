package abi

import (
	"math/big"
	"strings"
	"testing"

	"github.com/alicenet/factory-cli/internal/domain/bindings"
	"github.com/alicenet/factory-cli/internal/domain/multicall"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testFactory = common.HexToAddress("0x4b6df6b299fb6414f45719e0d9e1889269a7843e")
	testTarget  = common.HexToAddress("0x00000000000000000000000000000000000000cc")
)

func TestLower(t *testing.T) {
	enc := NewFactoryEncoder()
	s, err := salt.FromName("ValidatorPool")
	require.NoError(t, err)

	batch := multicall.Batch{
		multicall.Create{Contract: "ValidatorPool", InitCode: []byte{0x60, 0x80}},
		multicall.CreateProxy{Salt: s},
		multicall.SetLogic{Salt: s, Logic: testTarget},
		multicall.Call{Target: testTarget, Data: []byte{0x01}},
		multicall.Transfer{Target: testTarget, Value: big.NewInt(5)},
	}

	lowered, err := enc.Lower(testFactory, batch)
	require.NoError(t, err)
	require.Len(t, lowered, 5)

	assert.Equal(t, testFactory, lowered[0].Target)
	assert.Equal(t, "0x27fe1822", hexutil.Encode(lowered[0].Data[:4]))
	assert.Equal(t, testFactory, lowered[1].Target)
	assert.Equal(t, "0x39cab472", hexutil.Encode(lowered[1].Data[:4]))
	assert.Equal(t, testFactory, lowered[2].Target)
	assert.Equal(t, testTarget, lowered[3].Target)
	assert.Equal(t, []byte{0x01}, lowered[3].Data)
	assert.Equal(t, big.NewInt(5), lowered[4].Value)
	for _, l := range lowered {
		assert.NotNil(t, l.Value)
		assert.NotNil(t, l.Data)
	}
}

func TestEncodeBatch(t *testing.T) {
	enc := NewFactoryEncoder()
	s, err := salt.FromName("ALCA")
	require.NoError(t, err)

	data, err := enc.EncodeBatch(testFactory, multicall.Batch{
		multicall.Create{Contract: "ALCA", InitCode: []byte{0x60, 0x80}},
		multicall.CreateProxy{Salt: s},
	})
	require.NoError(t, err)
	assert.Equal(t, "0x248b1701", hexutil.Encode(data[:4]))
	assert.Equal(t, "multiCall", enc.MethodName(data))

	parsed, err := abi.JSON(strings.NewReader(bindings.AliceNetFactoryMetaData.ABI))
	require.NoError(t, err)
	unpacked, err := parsed.Methods["multiCall"].Inputs.Unpack(data[4:])
	require.NoError(t, err)
	require.Len(t, unpacked, 1)
}

func TestEncodeOp(t *testing.T) {
	enc := NewFactoryEncoder()

	data, value, err := enc.EncodeOp(multicall.Call{Target: testTarget, Value: big.NewInt(3), Data: []byte{0xaa}})
	require.NoError(t, err)
	assert.Equal(t, "callAny", enc.MethodName(data))
	assert.Equal(t, int64(0), value.Int64())

	data, _, err = enc.EncodeOp(multicall.Create{InitCode: []byte{0x01}})
	require.NoError(t, err)
	assert.Equal(t, "deployCreate", enc.MethodName(data))
}

func TestParseEvents(t *testing.T) {
	enc := NewFactoryEncoder()
	raw, err := enc.factory.GetEventID("DeployedRaw")
	require.NoError(t, err)
	proxy, err := enc.factory.GetEventID("DeployedProxy")
	require.NoError(t, err)

	logic := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	proxyAddr := common.HexToAddress("0x00000000000000000000000000000000000000b2")

	logs := []*types.Log{
		{Address: testFactory, Topics: []common.Hash{raw}, Data: common.LeftPadBytes(logic.Bytes(), 32)},
		{Address: testFactory, Topics: []common.Hash{proxy}, Data: common.LeftPadBytes(proxyAddr.Bytes(), 32)},
		{Address: testTarget, Topics: []common.Hash{raw}, Data: common.LeftPadBytes(testTarget.Bytes(), 32)},
		{Address: testFactory, Topics: []common.Hash{common.HexToHash("0x01")}},
		nil,
	}

	events := enc.ParseEvents(testFactory, logs)
	assert.Equal(t, []common.Address{logic}, events.Raw)
	assert.Equal(t, []common.Address{proxyAddr}, events.Proxies)
	assert.Empty(t, events.Deployed)
}
