package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/alicenet/factory-cli/internal/domain/deployment"
	"github.com/alicenet/factory-cli/internal/usecase"
	"gopkg.in/yaml.v3"
)

// DeploymentConfigStore reads and writes deployment config files. JSON is
// the default format; .yaml and .yml paths are handled as YAML.
type DeploymentConfigStore struct {
	projectRoot string
}

// NewDeploymentConfigStore creates a new deployment config store
func NewDeploymentConfigStore(cfg *config.RuntimeConfig) *DeploymentConfigStore {
	return &DeploymentConfigStore{projectRoot: cfg.ProjectRoot}
}

func (s *DeploymentConfigStore) resolve(path string) string {
	if filepath.IsAbs(path) || s.projectRoot == "" {
		return path
	}
	return filepath.Join(s.projectRoot, path)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load reads the whole file. A missing file wraps fs.ErrNotExist.
func (s *DeploymentConfigStore) Load(ctx context.Context, path string) (*deployment.DeploymentConfigFile, error) {
	data, err := os.ReadFile(s.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment config: %w", err)
	}

	file := deployment.NewDeploymentConfigFile()
	if isYAML(path) {
		err = yaml.Unmarshal(data, file)
	} else {
		err = json.Unmarshal(data, file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse deployment config %s: %w", path, err)
	}
	return file, nil
}

// Save writes the whole file, keeping entry order.
func (s *DeploymentConfigStore) Save(ctx context.Context, path string, file *deployment.DeploymentConfigFile) error {
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal deployment config: %w", err)
	}
	if isYAML(path) {
		// JSON is valid YAML; round trip through a node to keep key order.
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return fmt.Errorf("failed to convert deployment config to yaml: %w", err)
		}
		clearStyle(&node)
		if data, err = yaml.Marshal(&node); err != nil {
			return fmt.Errorf("failed to marshal deployment config: %w", err)
		}
	} else {
		data = append(data, '\n')
	}

	full := s.resolve(path)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return fmt.Errorf("failed to write deployment config: %w", err)
	}
	return nil
}

// clearStyle drops the flow style inherited from the JSON source.
func clearStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle | yaml.DoubleQuotedStyle
	for _, c := range n.Content {
		clearStyle(c)
	}
}

var _ usecase.DeploymentConfigStore = (*DeploymentConfigStore)(nil)
