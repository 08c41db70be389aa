package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string // deployments/ output directory

	// Context settings
	Namespace string
	Network   *Network // nil if not specified

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool
	Timeout        time.Duration

	// SkipChecks bypasses the confirmation gate. Set by --skip-checks or
	// silencer=true in the environment.
	SkipChecks bool
	// Silent suppresses informational output (silencer=true).
	Silent bool

	// Command-specific settings (only populated for relevant commands)
	WaitConfirmations    uint64
	Verify               bool
	Build                bool
	FactoryAddress       *common.Address
	DeploymentConfigPath string

	// Sender
	SenderName string
	Sender     *AccountConfig

	Gas GasConfig

	// Config source tracking
	FoundryProfile string
	ConfigSource   string // "alicenet.toml" or "flags"

	// Resolved configurations
	FoundryConfig  *FoundryConfig
	AliceNetConfig *AliceNetFileConfig
}

// Network represents network configuration
type Network struct {
	ChainID     uint64 `json:"chainId"`
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
}

// HardhatChainID is the local dev chain whose fee oracle is ignored.
const HardhatChainID uint64 = 1337
