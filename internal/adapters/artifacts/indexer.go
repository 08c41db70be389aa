// Package artifacts indexes the Foundry build output of the project.
package artifacts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Natspec tags read from devdoc.
const (
	tagSalt             = "custom:salt"
	tagSaltType         = "custom:salt-type"
	tagDeployType       = "custom:deploy-type"
	tagDeployGroup      = "custom:deploy-group"
	tagDeployGroupIndex = "custom:deploy-group-index"
)

// Indexer discovers compiled contracts under the Foundry out directory. The
// directory is walked once, on first use.
type Indexer struct {
	outDir string
	log    *slog.Logger

	once     sync.Once
	indexErr error
	byFQN    map[string]*domain.ContractDescriptor
	byName   map[string][]*domain.ContractDescriptor
}

// NewIndexer creates an indexer for the project's artifacts
func NewIndexer(cfg *config.RuntimeConfig, log *slog.Logger) *Indexer {
	out := cfg.FoundryConfig.OutDir(cfg.FoundryProfile)
	if !filepath.IsAbs(out) {
		out = filepath.Join(cfg.ProjectRoot, out)
	}
	return &Indexer{
		outDir: out,
		log:    log.With("component", "ArtifactIndexer"),
	}
}

// foundryArtifact is the subset of a Foundry artifact file the deployer reads.
type foundryArtifact struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode struct {
		Object string `json:"object"`
	} `json:"bytecode"`
	Metadata struct {
		Settings struct {
			CompilationTarget map[string]string `json:"compilationTarget"`
		} `json:"settings"`
		Output struct {
			Devdoc map[string]any `json:"devdoc"`
		} `json:"output"`
	} `json:"metadata"`
	Devdoc map[string]any `json:"devdoc"`
}

func (i *Indexer) index() error {
	i.once.Do(func() {
		i.byFQN = make(map[string]*domain.ContractDescriptor)
		i.byName = make(map[string][]*domain.ContractDescriptor)

		if _, err := os.Stat(i.outDir); err != nil {
			i.indexErr = fmt.Errorf("artifacts directory %s not found, run forge build or pass --build: %w", i.outDir, err)
			return
		}
		i.indexErr = filepath.WalkDir(i.outDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if d.Name() == "build-info" {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != ".json" {
				return nil
			}
			return i.processArtifact(path)
		})
		i.log.Debug("indexed artifacts", "dir", i.outDir, "contracts", len(i.byFQN))
	})
	return i.indexErr
}

func (i *Indexer) processArtifact(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	desc, ok := parseArtifact(data)
	if !ok {
		return nil
	}
	desc.ArtifactPath = path

	fqn := desc.FullyQualifiedName()
	if _, dup := i.byFQN[fqn]; dup {
		return nil
	}
	i.byFQN[fqn] = desc
	i.byName[desc.Name] = append(i.byName[desc.Name], desc)
	return nil
}

// parseArtifact decodes one artifact. Files that are not contract artifacts,
// or that carry no creation code, are skipped.
func parseArtifact(data []byte) (*domain.ContractDescriptor, bool) {
	var art foundryArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, false
	}
	if art.Bytecode.Object == "" || art.Bytecode.Object == "0x" {
		return nil, false
	}

	var source, name string
	for s, c := range art.Metadata.Settings.CompilationTarget {
		source, name = s, c
	}
	if name == "" {
		return nil, false
	}

	parsed, err := abi.JSON(bytes.NewReader(art.ABI))
	if err != nil {
		return nil, false
	}
	code, err := hexutil.Decode(art.Bytecode.Object)
	if err != nil {
		// Unlinked libraries leave placeholders in the object.
		return nil, false
	}

	devdoc := art.Metadata.Output.Devdoc
	if len(devdoc) == 0 {
		devdoc = art.Devdoc
	}
	return &domain.ContractDescriptor{
		Name:     name,
		Path:     source,
		ABI:      parsed,
		Bytecode: code,
		Tags:     parseTags(devdoc),
	}, true
}

func parseTags(devdoc map[string]any) domain.NatspecTags {
	get := func(key string) string {
		v, _ := devdoc[key].(string)
		return strings.TrimSpace(v)
	}
	return domain.NatspecTags{
		Salt:             get(tagSalt),
		SaltType:         get(tagSaltType),
		DeployType:       domain.DeployType(get(tagDeployType)),
		DeployGroup:      get(tagDeployGroup),
		DeployGroupIndex: get(tagDeployGroupIndex),
	}
}

// All returns every indexed contract ordered by fully qualified name.
func (i *Indexer) All(ctx context.Context) ([]*domain.ContractDescriptor, error) {
	if err := i.index(); err != nil {
		return nil, err
	}
	out := make([]*domain.ContractDescriptor, 0, len(i.byFQN))
	for _, d := range i.byFQN {
		out = append(out, d)
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a].FullyQualifiedName() < out[b].FullyQualifiedName()
	})
	return out, nil
}

// lookup returns the contracts matching ref exactly, by fully qualified
// name or by short name.
func (i *Indexer) lookup(ref string) ([]*domain.ContractDescriptor, error) {
	if err := i.index(); err != nil {
		return nil, err
	}
	if d, ok := i.byFQN[ref]; ok {
		return []*domain.ContractDescriptor{d}, nil
	}
	path, name := domain.SplitQualifiedName(ref)
	if path != "" {
		return nil, nil
	}
	return i.byName[name], nil
}

// names lists the short names of every indexed contract.
func (i *Indexer) names() []string {
	out := make([]string, 0, len(i.byName))
	for n := range i.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
