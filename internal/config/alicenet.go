package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alicenet/factory-cli/internal/domain/config"
)

// AliceNetConfigFile is the deployer settings file at the project root.
const AliceNetConfigFile = "alicenet.toml"

// loadAliceNetConfig loads alicenet.toml. Returns (nil, nil) if it doesn't exist.
func loadAliceNetConfig(projectRoot string) (*config.AliceNetFileConfig, error) {
	path := filepath.Join(projectRoot, AliceNetConfigFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var cfg config.AliceNetFileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", AliceNetConfigFile, err)
	}

	if cfg.Accounts == nil {
		cfg.Accounts = make(map[string]config.AccountConfig)
	}
	if cfg.Namespace == nil {
		cfg.Namespace = make(map[string]config.NamespaceConfig)
	}

	// Expand environment variables in account fields
	for name, acct := range cfg.Accounts {
		acct.PrivateKey = os.ExpandEnv(acct.PrivateKey)
		acct.Address = os.ExpandEnv(acct.Address)
		if acct.Type == "" {
			acct.Type = config.AccountTypePrivateKey
		}
		cfg.Accounts[name] = acct
	}
	for name, ns := range cfg.Namespace {
		ns.Factory = os.ExpandEnv(ns.Factory)
		cfg.Namespace[name] = ns
	}

	return &cfg, nil
}

// ResolveNamespace resolves a namespace by walking up the dot-separated
// hierarchy. Resolving "testnet.eu" walks: default → testnet → testnet.eu.
// A sender that references an unknown account is skipped with a warning to
// warnWriter. Pass nil for warnWriter to use os.Stderr.
func ResolveNamespace(cfg *config.AliceNetFileConfig, namespaceName string, warnWriter io.Writer) *config.ResolvedNamespace {
	if warnWriter == nil {
		warnWriter = os.Stderr
	}
	resolved := &config.ResolvedNamespace{Name: namespaceName}
	if cfg == nil {
		return resolved
	}

	for _, ancestor := range buildNamespaceChain(namespaceName) {
		ns, exists := cfg.Namespace[ancestor]
		if !exists {
			continue
		}
		if ns.Profile != "" {
			resolved.Profile = ns.Profile
		}
		if ns.Sender != "" {
			resolved.SenderName = ns.Sender
		}
		if ns.Factory != "" {
			resolved.Factory = ns.Factory
		}
		if ns.DeploymentConfig != "" {
			resolved.DeploymentConfig = ns.DeploymentConfig
		}
		if ns.WaitConfirmations != nil {
			resolved.WaitConfirmations = *ns.WaitConfirmations
		}
	}

	if resolved.SenderName != "" {
		acct, ok := cfg.Accounts[resolved.SenderName]
		if !ok {
			fmt.Fprintf(warnWriter, "Warning: namespace %q references unknown account %q, skipping\n", namespaceName, resolved.SenderName)
			resolved.SenderName = ""
		} else {
			resolved.Sender = &acct
		}
	}

	return resolved
}

// buildNamespaceChain returns the ordered list of namespace names to resolve,
// starting from "default" and adding each dot-separated prefix.
// For "testnet.eu.v2" it returns: ["default", "testnet", "testnet.eu", "testnet.eu.v2"]
func buildNamespaceChain(namespaceName string) []string {
	if namespaceName == "" || namespaceName == "default" {
		return []string{"default"}
	}

	chain := []string{"default"}
	parts := strings.Split(namespaceName, ".")
	for i := range parts {
		chain = append(chain, strings.Join(parts[:i+1], "."))
	}
	return chain
}
