package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// UndefinedValue is the placeholder written into generated deployment config templates.
const UndefinedValue = "UNDEFINED"

// InitializerMethod is the name of the initializer invoked through upgradeProxy.
const InitializerMethod = "initialize"

// FactoryContractName is the artifact name of the AliceNet factory.
const FactoryContractName = "AliceNetFactory"

// FactoryLegacyTokenArg is the factory constructor argument holding the legacy token address.
const FactoryLegacyTokenArg = "legacyToken_"

// DeployType is declared by @custom:deploy-type.
type DeployType string

const (
	DeployTypeUpgradeable       DeployType = "upgradeable"
	DeployTypeOnlyProxy         DeployType = "only-proxy"
	DeployTypeCreateAndRegister DeployType = "create-and-register"
)

// Valid reports whether t is one of the deploy types the sequencer knows.
func (t DeployType) Valid() bool {
	switch t {
	case DeployTypeUpgradeable, DeployTypeOnlyProxy, DeployTypeCreateAndRegister:
		return true
	}
	return false
}

// DefaultDeployGroup holds every contract that declares no @custom:deploy-group.
const DefaultDeployGroup = "general"

// NatspecTags are the custom devdoc tags a contract declares.
// Empty strings mean the tag is absent.
type NatspecTags struct {
	Salt             string
	SaltType         string
	DeployType       DeployType
	DeployGroup      string
	DeployGroupIndex string
}

// ContractDescriptor is the typed view of a compiled contract artifact.
type ContractDescriptor struct {
	Name         string
	Path         string // source path, e.g. src/ALCA.sol
	ArtifactPath string
	ABI          abi.ABI
	Bytecode     []byte
	Tags         NatspecTags
}

// FullyQualifiedName returns "path:Name".
func (c *ContractDescriptor) FullyQualifiedName() string {
	return c.Path + ":" + c.Name
}

// ConstructorInputs returns the constructor ABI inputs, if any.
func (c *ContractDescriptor) ConstructorInputs() abi.Arguments {
	return c.ABI.Constructor.Inputs
}

// HasInitializer reports whether the contract exposes initialize.
func (c *ContractDescriptor) HasInitializer() bool {
	_, ok := c.ABI.Methods[InitializerMethod]
	return ok
}

// InitializerInputs returns the initialize inputs, or nil.
func (c *ContractDescriptor) InitializerInputs() abi.Arguments {
	if m, ok := c.ABI.Methods[InitializerMethod]; ok {
		return m.Inputs
	}
	return nil
}

// SplitQualifiedName splits "path:Name" into its parts. A bare name yields an empty path.
func SplitQualifiedName(fqn string) (path, name string) {
	idx := strings.LastIndex(fqn, ":")
	if idx < 0 {
		return "", fqn
	}
	return fqn[:idx], fqn[idx+1:]
}
