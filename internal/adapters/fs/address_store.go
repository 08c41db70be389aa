package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/alicenet/factory-cli/internal/domain/deployment"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/google/uuid"
)

const addressesFile = "addresses.json"

// AddressStore keeps deployments/<network>/addresses.json.
type AddressStore struct {
	dataDir string
	mu      sync.Mutex
}

// NewAddressStore creates a new address record store
func NewAddressStore(cfg *config.RuntimeConfig) *AddressStore {
	dir := cfg.DataDir
	if dir == "" {
		dir = filepath.Join(cfg.ProjectRoot, "deployments")
	}
	return &AddressStore{dataDir: dir}
}

func (s *AddressStore) path(network string) string {
	return filepath.Join(s.dataDir, network, addressesFile)
}

// Load returns the records for network. A missing file is an empty list.
func (s *AddressStore) Load(ctx context.Context, network string) (*deployment.AddressFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(network)
}

func (s *AddressStore) load(network string) (*deployment.AddressFile, error) {
	data, err := os.ReadFile(s.path(network))
	if errors.Is(err, iofs.ErrNotExist) {
		return &deployment.AddressFile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read address records: %w", err)
	}
	var file deployment.AddressFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path(network), err)
	}
	return &file, nil
}

// Append adds record to the network's file.
func (s *AddressStore) Append(ctx context.Context, network string, record deployment.DeploymentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load(network)
	if err != nil {
		return err
	}
	file.Records = append(file.Records, record)

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal address records: %w", err)
	}
	path := s.path(network)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create records directory: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// NewRunID returns a random run identifier.
func (s *AddressStore) NewRunID() string {
	return uuid.NewString()
}

var _ usecase.AddressRecordStore = (*AddressStore)(nil)
