package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	silent := v.GetBool("silencer")
	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, "deployments"),
		Namespace:      v.GetString("namespace"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
		SkipChecks:     v.GetBool("skip_checks") || silent,
		Silent:         silent,
		Verify:         v.GetBool("verify"),
		Build:          v.GetBool("build"),
		ConfigSource:   "flags",
	}

	foundryConfig, err := loadFoundryConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundry config: %w", err)
	}
	cfg.FoundryConfig = foundryConfig

	aliceNetConfig, err := loadAliceNetConfig(projectRoot)
	if err != nil {
		return nil, err
	}
	cfg.AliceNetConfig = aliceNetConfig

	ns := ResolveNamespace(aliceNetConfig, cfg.Namespace, os.Stderr)
	if aliceNetConfig != nil {
		cfg.ConfigSource = AliceNetConfigFile
		cfg.Gas = aliceNetConfig.Gas
	}
	cfg.Gas = cfg.Gas.WithDefaults()

	cfg.FoundryProfile = ns.Profile
	if cfg.FoundryProfile == "" {
		cfg.FoundryProfile = "default"
	}

	if err := resolveSender(v, cfg, ns); err != nil {
		return nil, err
	}

	factory := ns.Factory
	if f := v.GetString("factory_address"); f != "" {
		factory = f
	}
	if factory != "" {
		if !common.IsHexAddress(factory) {
			return nil, fmt.Errorf("%w: factory address %q", domain.ErrInvalidAddress, factory)
		}
		addr := common.HexToAddress(factory)
		cfg.FactoryAddress = &addr
	}

	cfg.WaitConfirmations = ns.WaitConfirmations
	if v.IsSet("wait_confirmation") {
		cfg.WaitConfirmations = v.GetUint64("wait_confirmation")
	}

	cfg.DeploymentConfigPath = ns.DeploymentConfig
	if p := v.GetString("config_file"); p != "" {
		cfg.DeploymentConfigPath = p
	}
	if cfg.DeploymentConfigPath == "" {
		cfg.DeploymentConfigPath = config.DefaultDeploymentConfigPath
	}
	if !filepath.IsAbs(cfg.DeploymentConfigPath) {
		cfg.DeploymentConfigPath = filepath.Join(projectRoot, cfg.DeploymentConfigPath)
	}

	// Resolve network if specified
	if networkName := v.GetString("network"); networkName != "" {
		networkResolver := NewNetworkResolver(projectRoot, foundryConfig)
		network, err := networkResolver.Resolve(networkName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve network %s: %w", networkName, err)
		}
		cfg.Network = network
	}

	return cfg, nil
}

// resolveSender picks the signing account: --sender, then the namespace
// sender, then the only configured account, then ALICENET_PRIVATE_KEY.
func resolveSender(v *viper.Viper, cfg *config.RuntimeConfig, ns *config.ResolvedNamespace) error {
	var accounts map[string]config.AccountConfig
	if cfg.AliceNetConfig != nil {
		accounts = cfg.AliceNetConfig.Accounts
	}

	if name := v.GetString("sender"); name != "" {
		acct, ok := accounts[name]
		if !ok {
			return fmt.Errorf("sender %q not found in %s [accounts]", name, AliceNetConfigFile)
		}
		cfg.SenderName = name
		cfg.Sender = &acct
		return nil
	}

	if ns.Sender != nil {
		cfg.SenderName = ns.SenderName
		cfg.Sender = ns.Sender
		return nil
	}

	if len(accounts) == 1 {
		for name, acct := range accounts {
			cfg.SenderName = name
			cfg.Sender = &acct
		}
		return nil
	}

	if pk := v.GetString("private_key"); pk != "" {
		cfg.SenderName = "env"
		cfg.Sender = &config.AccountConfig{Type: config.AccountTypePrivateKey, PrivateKey: pk}
	}
	return nil
}

// FindProjectRoot walks up from current directory to find foundry.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		foundryToml := filepath.Join(dir, "foundry.toml")
		if _, err := os.Stat(foundryToml); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding foundry.toml
			return "", fmt.Errorf("not in a Foundry project (foundry.toml not found)")
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance. Every flag of cmd is
// bound under its snake_case name.
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("ALICENET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	if err := v.BindEnv("silencer", "silencer"); err != nil {
		panic(err)
	}

	// Set defaults
	v.SetDefault("namespace", "default")
	v.SetDefault("timeout", "10m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(flagKey(f.Name), f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

func flagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
