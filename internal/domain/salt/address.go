package salt

import (
	"fmt"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// MetamorphicInitCode is the universal proxy init code the factory deploys at every salt.
var MetamorphicInitCode = hexutil.MustDecode("0x6020363636335afa1536363636515af43d36363e3d36f3")

// MetamorphicInitCodeHash is keccak256(MetamorphicInitCode).
var MetamorphicInitCodeHash = crypto.Keccak256(MetamorphicInitCode)

// PredictProxyAddress returns the address deployProxy(salt) creates on factory.
func PredictProxyAddress(factory common.Address, s Salt) common.Address {
	return crypto.CreateAddress2(factory, s, MetamorphicInitCodeHash)
}

// PredictCreate2Address returns the address deployCreate2 creates for initCode.
func PredictCreate2Address(factory common.Address, s Salt, initCode []byte) common.Address {
	return crypto.CreateAddress2(factory, s, crypto.Keccak256(initCode))
}

// PredictCreateAddress returns the CREATE address for deployer at nonce.
func PredictCreateAddress(deployer common.Address, nonce uint64) common.Address {
	return crypto.CreateAddress(deployer, nonce)
}

// PredictProxyAddressRaw validates raw byte inputs before predicting.
func PredictProxyAddressRaw(factory, s []byte) (common.Address, error) {
	if len(factory) != common.AddressLength {
		return common.Address{}, fmt.Errorf("%w: factory must be %d bytes, got %d", domain.ErrInvalidAddress, common.AddressLength, len(factory))
	}
	if len(s) != 32 {
		return common.Address{}, fmt.Errorf("salt must be 32 bytes, got %d", len(s))
	}
	var fixed Salt
	copy(fixed[:], s)
	return PredictProxyAddress(common.BytesToAddress(factory), fixed), nil
}

// CheckAddress returns ErrAddressMismatch when observed differs from predicted.
func CheckAddress(what string, predicted, observed common.Address) error {
	if predicted != observed {
		return fmt.Errorf("%w: %s predicted %s but observed %s", domain.ErrAddressMismatch, what, predicted.Hex(), observed.Hex())
	}
	return nil
}
