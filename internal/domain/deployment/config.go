// Package deployment models the deployment configuration file that drives
// deploy-contracts, and the address records written after each run.
package deployment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"gopkg.in/yaml.v3"
)

// DeploymentConfig is one contract entry in the deployment config file.
type DeploymentConfig struct {
	Name               string            `json:"name" yaml:"name"`
	FullyQualifiedName string            `json:"fullyQualifiedName" yaml:"fullyQualifiedName"`
	Salt               string            `json:"salt" yaml:"salt"`
	DeployGroup        string            `json:"deployGroup,omitempty" yaml:"deployGroup,omitempty"`
	DeployGroupIndex   string            `json:"deployGroupIndex,omitempty" yaml:"deployGroupIndex,omitempty"`
	DeployType         domain.DeployType `json:"deployType,omitempty" yaml:"deployType,omitempty"`
	ConstructorArgs    ArgSet            `json:"constructorArgs" yaml:"constructorArgs"`
	InitializerArgs    ArgSet            `json:"initializerArgs" yaml:"initializerArgs"`
}

// ExtractContractInfo builds a config entry from an artifact descriptor. Every
// argument starts out as UNDEFINED.
func ExtractContractInfo(c *domain.ContractDescriptor) (*DeploymentConfig, error) {
	cfg := &DeploymentConfig{
		Name:               c.Name,
		FullyQualifiedName: c.FullyQualifiedName(),
		DeployGroup:        c.Tags.DeployGroup,
		DeployGroupIndex:   c.Tags.DeployGroupIndex,
		DeployType:         c.Tags.DeployType,
		ConstructorArgs:    NewArgSet(inputNames(c.ConstructorInputs()), domain.UndefinedValue),
		InitializerArgs:    NewArgSet(inputNames(c.InitializerInputs()), domain.UndefinedValue),
	}
	if c.Tags.Salt != "" {
		d, err := salt.Derive(c)
		if err != nil {
			return nil, err
		}
		cfg.Salt = d.Salt.Hex()
	}
	return cfg, nil
}

// ParsedSalt decodes the salt field. An empty salt returns ErrMissingSalt.
func (c *DeploymentConfig) ParsedSalt() (salt.Salt, error) {
	if c.Salt == "" {
		return salt.Salt{}, fmt.Errorf("%w: %s has no salt in the deployment config", domain.ErrMissingSalt, c.FullyQualifiedName)
	}
	return salt.Parse(c.Salt)
}

// GroupIndex parses deployGroupIndex as an integer.
func (c *DeploymentConfig) GroupIndex() (int, error) {
	idx, err := strconv.Atoi(c.DeployGroupIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to convert deploy-group-index for contract %s! deploy-group-index should be an integer", c.FullyQualifiedName)
	}
	return idx, nil
}

// CheckDefined returns an UndefinedArgError for the first placeholder left in
// the entry.
func (c *DeploymentConfig) CheckDefined() error {
	for _, set := range []struct {
		kind domain.ArgKind
		args ArgSet
	}{
		{domain.ConstructorArgs, c.ConstructorArgs},
		{domain.InitializerArgs, c.InitializerArgs},
	} {
		for _, arg := range set.args {
			if isUndefined(arg.Value) {
				return domain.UndefinedArgError{Kind: set.kind, Contract: c.Name, Name: arg.Name}
			}
		}
	}
	return nil
}

func isUndefined(v any) bool {
	switch t := v.(type) {
	case string:
		return t == domain.UndefinedValue
	case []any:
		for _, item := range t {
			if isUndefined(item) {
				return true
			}
		}
	}
	return false
}

// PopulateInitializerArgs assigns positional values to the initializer inputs.
func PopulateInitializerArgs(values []string, c *DeploymentConfig) error {
	return populate(domain.InitializerArgs, values, c.InitializerArgs)
}

// PopulateConstructorArgs assigns positional values to the constructor inputs.
func PopulateConstructorArgs(values []string, c *DeploymentConfig) error {
	return populate(domain.ConstructorArgs, values, c.ConstructorArgs)
}

func populate(kind domain.ArgKind, values []string, args ArgSet) error {
	if len(values) != len(args) {
		return domain.ArgCountError{Kind: kind, Expected: len(args), Got: len(values)}
	}
	for i, v := range values {
		args[i].Value = v
	}
	return nil
}

// DeploymentConfigFile maps fully qualified names to config entries, keeping
// the file order.
type DeploymentConfigFile struct {
	keys    []string
	entries map[string]*DeploymentConfig
}

// NewDeploymentConfigFile returns an empty file.
func NewDeploymentConfigFile() *DeploymentConfigFile {
	return &DeploymentConfigFile{entries: make(map[string]*DeploymentConfig)}
}

// Set adds or replaces the entry for fqn. New keys go last.
func (f *DeploymentConfigFile) Set(fqn string, c *DeploymentConfig) {
	if f.entries == nil {
		f.entries = make(map[string]*DeploymentConfig)
	}
	if _, ok := f.entries[fqn]; !ok {
		f.keys = append(f.keys, fqn)
	}
	f.entries[fqn] = c
}

// Get returns the entry for fqn.
func (f *DeploymentConfigFile) Get(fqn string) (*DeploymentConfig, bool) {
	c, ok := f.entries[fqn]
	return c, ok
}

// FindByName returns the entry whose short name matches.
func (f *DeploymentConfigFile) FindByName(name string) (*DeploymentConfig, bool) {
	if c, ok := f.entries[name]; ok {
		return c, true
	}
	for _, k := range f.keys {
		if f.entries[k].Name == name {
			return f.entries[k], true
		}
	}
	return nil, false
}

// Keys returns the fully qualified names in file order.
func (f *DeploymentConfigFile) Keys() []string {
	return append([]string(nil), f.keys...)
}

// Entries returns the entries in file order.
func (f *DeploymentConfigFile) Entries() []*DeploymentConfig {
	out := make([]*DeploymentConfig, len(f.keys))
	for i, k := range f.keys {
		out[i] = f.entries[k]
	}
	return out
}

// Len returns the number of entries.
func (f *DeploymentConfigFile) Len() int {
	return len(f.keys)
}

// MarshalJSON writes entries in file order.
func (f *DeploymentConfigFile) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range f.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.entries[k])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes through yaml.v3 so key order survives.
func (f *DeploymentConfigFile) UnmarshalJSON(data []byte) error {
	return yaml.Unmarshal(data, f)
}

// UnmarshalYAML decodes the top-level mapping in document order.
func (f *DeploymentConfigFile) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: deployment config must be a mapping of fully qualified names", node.Line)
	}
	out := NewDeploymentConfigFile()
	for i := 0; i+1 < len(node.Content); i += 2 {
		fqn := node.Content[i].Value
		var c DeploymentConfig
		if err := node.Content[i+1].Decode(&c); err != nil {
			return fmt.Errorf("failed to decode %s: %w", fqn, err)
		}
		if c.FullyQualifiedName == "" {
			c.FullyQualifiedName = fqn
		}
		if c.Name == "" {
			_, c.Name = domain.SplitQualifiedName(fqn)
		}
		out.Set(fqn, &c)
	}
	*f = *out
	return nil
}

func inputNames(inputs abi.Arguments) []string {
	names := make([]string, len(inputs))
	for i, in := range inputs {
		names[i] = in.Name
		if names[i] == "" {
			names[i] = fmt.Sprintf("arg%d", i)
		}
	}
	return names
}
