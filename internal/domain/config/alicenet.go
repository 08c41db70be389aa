package config

// AccountType identifies how an account signs.
type AccountType string

var (
	AccountTypePrivateKey AccountType = "private_key"
)

// AccountConfig represents a named signing entity in [accounts.*] sections.
type AccountConfig struct {
	Type       AccountType `toml:"type"`
	Address    string      `toml:"address,omitempty"`
	PrivateKey string      `toml:"private_key,omitempty"` //nolint:gosec // holds env var reference, not a literal secret
}

// NamespaceConfig represents a [namespace.<name>] section in alicenet.toml.
// Unset fields are inherited from parent namespaces.
type NamespaceConfig struct {
	Profile           string  `toml:"profile,omitempty"`
	Sender            string  `toml:"sender,omitempty"`
	Factory           string  `toml:"factory,omitempty"`
	DeploymentConfig  string  `toml:"deployment_config,omitempty"`
	WaitConfirmations *uint64 `toml:"wait_confirmations,omitempty"`
}

// GasConfig holds the [gas] section.
type GasConfig struct {
	MulticallLimit         uint64 `toml:"multicall_limit,omitempty"`
	ElevatedLimit          uint64 `toml:"elevated_limit,omitempty"`
	LargeCalldataThreshold int    `toml:"large_calldata_threshold,omitempty"`
	MinPriorityFeeGwei     uint64 `toml:"min_priority_fee_gwei,omitempty"`
}

const (
	DefaultMulticallGasLimit      uint64 = 10_000_000
	DefaultElevatedGasLimit       uint64 = 30_000_000
	DefaultLargeCalldataThreshold        = 4096
	DefaultMinPriorityFeeGwei     uint64 = 2
	DefaultDeploymentConfigPath          = "deploymentConfig.json"
)

// WithDefaults fills zero fields with the defaults.
func (g GasConfig) WithDefaults() GasConfig {
	if g.MulticallLimit == 0 {
		g.MulticallLimit = DefaultMulticallGasLimit
	}
	if g.ElevatedLimit == 0 {
		g.ElevatedLimit = DefaultElevatedGasLimit
	}
	if g.LargeCalldataThreshold == 0 {
		g.LargeCalldataThreshold = DefaultLargeCalldataThreshold
	}
	if g.MinPriorityFeeGwei == 0 {
		g.MinPriorityFeeGwei = DefaultMinPriorityFeeGwei
	}
	return g
}

// AliceNetFileConfig represents alicenet.toml.
type AliceNetFileConfig struct {
	Accounts  map[string]AccountConfig   `toml:"accounts"`
	Namespace map[string]NamespaceConfig `toml:"namespace"`
	Gas       GasConfig                  `toml:"gas"`
}

// ResolvedNamespace holds the namespace settings after walking the
// dot-separated hierarchy.
type ResolvedNamespace struct {
	Name              string
	Profile           string
	SenderName        string
	Sender            *AccountConfig
	Factory           string
	DeploymentConfig  string
	WaitConfirmations uint64
}
