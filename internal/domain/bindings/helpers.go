package bindings

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// GetEventID returns the event signature hash for a given event name
func (aliceNetFactory *AliceNetFactory) GetEventID(eventName string) (common.Hash, error) {
	event, exists := aliceNetFactory.abi.Events[eventName]
	if !exists {
		return common.Hash{}, fmt.Errorf("event %s not found", eventName)
	}
	return event.ID, nil
}

// GetEventID returns the event signature hash for a given event name
func (publicStaking *PublicStaking) GetEventID(eventName string) (common.Hash, error) {
	event, exists := publicStaking.abi.Events[eventName]
	if !exists {
		return common.Hash{}, fmt.Errorf("event %s not found", eventName)
	}
	return event.ID, nil
}

// MethodByID resolves a 4-byte selector against the factory ABI, mostly for
// decoding reverted multicall entries in error messages.
func (aliceNetFactory *AliceNetFactory) MethodByID(data []byte) (string, error) {
	if len(data) < 4 {
		return "", fmt.Errorf("calldata too short: %d bytes", len(data))
	}
	m, err := aliceNetFactory.abi.MethodById(data[:4])
	if err != nil {
		return "", err
	}
	return m.Name, nil
}

func (e *AliceNetFactoryDeployedRaw) String() string {
	return fmt.Sprintf("%s: contract=%s", e.ContractEventName(), e.ContractAddr.Hex())
}

func (e *AliceNetFactoryDeployedProxy) String() string {
	return fmt.Sprintf("%s: contract=%s", e.ContractEventName(), e.ContractAddr.Hex())
}

func (e *AliceNetFactoryDeployed) String() string {
	return fmt.Sprintf("%s: salt=%x contract=%s", e.ContractEventName(), e.Salt, e.ContractAddr.Hex())
}
