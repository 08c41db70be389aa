package artifacts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const counterABI = `[{"type":"constructor","inputs":[{"name":"count_","type":"uint256"}]},{"type":"function","name":"initialize","inputs":[{"name":"start_","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"}]`

func writeArtifact(t *testing.T, root, rel, source, name, bytecode string, devdoc map[string]string) {
	t.Helper()
	art := map[string]any{
		"abi":      json.RawMessage(counterABI),
		"bytecode": map[string]string{"object": bytecode},
		"metadata": map[string]any{
			"settings": map[string]any{"compilationTarget": map[string]string{source: name}},
			"output":   map[string]any{"devdoc": devdoc},
		},
	}
	data, err := json.Marshal(art)
	require.NoError(t, err)
	path := filepath.Join(root, "out", rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

type stubPicker struct {
	offered []*domain.ContractDescriptor
	pick    int
	err     error
}

func (p *stubPicker) PickContract(_ context.Context, contracts []*domain.ContractDescriptor, _ string) (*domain.ContractDescriptor, error) {
	p.offered = contracts
	if p.err != nil {
		return nil, p.err
	}
	return contracts[p.pick], nil
}

func newFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeArtifact(t, root, "Counter.sol/Counter.json", "src/Counter.sol", "Counter", "0x6001", map[string]string{
		"custom:salt":        "Counter",
		"custom:deploy-type": "upgradeable",
	})
	writeArtifact(t, root, "ALCA.sol/ALCA.json", "src/ALCA.sol", "ALCA", "0x6002", map[string]string{
		"custom:salt":               "ALCA",
		"custom:salt-type":          "Token",
		"custom:deploy-group":       "tokens",
		"custom:deploy-group-index": "1",
		"custom:deploy-type":        "only-proxy",
	})
	writeArtifact(t, root, "Pool.sol/Pool.json", "src/a/Pool.sol", "Pool", "0x6003", nil)
	writeArtifact(t, root, "Pool.sol/Pool.1.json", "src/b/Pool.sol", "Pool", "0x6004", nil)
	writeArtifact(t, root, "IThing.sol/IThing.json", "src/IThing.sol", "IThing", "0x", nil)
	writeArtifact(t, root, "build-info/abc.json", "src/Hidden.sol", "Hidden", "0x6005", nil)
	return root
}

func newTestResolver(root string, nonInteractive bool, picker ContractPicker) *Resolver {
	cfg := &config.RuntimeConfig{ProjectRoot: root, NonInteractive: nonInteractive}
	idx := NewIndexer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewResolver(cfg, idx, picker)
}

func TestResolve(t *testing.T) {
	root := newFixture(t)
	ctx := context.Background()

	t.Run("short name", func(t *testing.T) {
		d, err := newTestResolver(root, true, nil).Resolve(ctx, "ALCA")
		require.NoError(t, err)
		assert.Equal(t, "src/ALCA.sol:ALCA", d.FullyQualifiedName())
		assert.Equal(t, []byte{0x60, 0x02}, d.Bytecode)
		assert.Equal(t, domain.NatspecTags{
			Salt:             "ALCA",
			SaltType:         "Token",
			DeployType:       domain.DeployTypeOnlyProxy,
			DeployGroup:      "tokens",
			DeployGroupIndex: "1",
		}, d.Tags)
		assert.True(t, d.HasInitializer())
		assert.Len(t, d.ConstructorInputs(), 1)
	})

	t.Run("fully qualified", func(t *testing.T) {
		d, err := newTestResolver(root, true, nil).Resolve(ctx, "src/b/Pool.sol:Pool")
		require.NoError(t, err)
		assert.Equal(t, []byte{0x60, 0x04}, d.Bytecode)
	})

	t.Run("ambiguous non-interactive", func(t *testing.T) {
		_, err := newTestResolver(root, true, nil).Resolve(ctx, "Pool")
		var amb domain.AmbiguousContractError
		require.ErrorAs(t, err, &amb)
		assert.ElementsMatch(t, []string{"src/a/Pool.sol:Pool", "src/b/Pool.sol:Pool"}, amb.Matches)
	})

	t.Run("ambiguous interactive", func(t *testing.T) {
		picker := &stubPicker{pick: 1}
		d, err := newTestResolver(root, false, picker).Resolve(ctx, "Pool")
		require.NoError(t, err)
		assert.Len(t, picker.offered, 2)
		assert.Equal(t, picker.offered[1], d)
	})

	t.Run("picker cancelled", func(t *testing.T) {
		picker := &stubPicker{err: errors.New("^C")}
		_, err := newTestResolver(root, false, picker).Resolve(ctx, "Pool")
		assert.ErrorContains(t, err, "contract selection failed")
	})

	t.Run("not found suggests", func(t *testing.T) {
		_, err := newTestResolver(root, true, nil).Resolve(ctx, "Countr")
		require.ErrorIs(t, err, domain.ErrContractNotFound)
		var nf domain.ContractNotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Contains(t, nf.Suggestions, "Counter")
	})

	t.Run("skips build-info and empty bytecode", func(t *testing.T) {
		r := newTestResolver(root, true, nil)
		_, err := r.Resolve(ctx, "Hidden")
		assert.ErrorIs(t, err, domain.ErrContractNotFound)
		_, err = r.Resolve(ctx, "IThing")
		assert.ErrorIs(t, err, domain.ErrContractNotFound)
	})
}

func TestAll(t *testing.T) {
	all, err := newTestResolver(newFixture(t), true, nil).All(context.Background())
	require.NoError(t, err)

	var names []string
	for _, d := range all {
		names = append(names, d.FullyQualifiedName())
	}
	assert.Equal(t, []string{
		"src/ALCA.sol:ALCA",
		"src/Counter.sol:Counter",
		"src/a/Pool.sol:Pool",
		"src/b/Pool.sol:Pool",
	}, names)
}

func TestMissingOutDir(t *testing.T) {
	_, err := newTestResolver(t.TempDir(), true, nil).All(context.Background())
	assert.ErrorContains(t, err, "run forge build")
}

func TestEmptySaltTypeTag(t *testing.T) {
	root := t.TempDir()
	writeArtifact(t, root, "Lone.sol/Lone.json", "src/Lone.sol", "Lone", "0x6001", map[string]string{
		"custom:salt":      "Lone",
		"custom:salt-type": " ",
	})

	d, err := newTestResolver(root, true, nil).Resolve(context.Background(), "Lone")
	require.NoError(t, err)
	assert.Empty(t, d.Tags.SaltType)

	derived, err := salt.Derive(d)
	require.NoError(t, err)
	assert.Equal(t, salt.SchemeDirect, derived.Scheme)
}
