package cli

import (
	"bytes"
	"context"
	"math/big"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCmd(t *testing.T, root *cobra.Command, name string) *cobra.Command {
	t.Helper()
	cmd, _, err := root.Find([]string{name})
	require.NoError(t, err)
	require.Equal(t, name, cmd.Name())
	return cmd
}

func TestCommandTree(t *testing.T) {
	root := NewRootCmd()

	groups := map[string][]string{
		"factory": {
			"deploy-factory", "deploy-contracts", "generate-deployment-configs",
			"deploy-upgradeable-proxy", "upgrade-proxy", "deploy-create",
			"deploy-create2", "deploy-create-and-register", "deploy-only-proxy",
		},
		"query": {
			"get-bytes32-salt", "predict-address", "lookup-contract-address",
			"get-network", "get-alca-balance",
		},
		"operations": {
			"register-validators", "unregister-validators", "initialize-ethdkg",
			"mint-alca-to", "transfer-alca-from-factory",
			"schedule-maintenance", "pause-consensus", "update-alicenet-node-version",
		},
	}
	for group, names := range groups {
		for _, name := range names {
			t.Run(name, func(t *testing.T) {
				cmd := findCmd(t, root, name)
				assert.Equal(t, group, cmd.GroupID)
			})
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"debug", "non-interactive", "json", "namespace", "network"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "n", root.PersistentFlags().Lookup("network").Shorthand)
	assert.Equal(t, "s", root.PersistentFlags().Lookup("namespace").Shorthand)
}

func TestTxFlags(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"deploy-upgradeable-proxy", "register-validators", "mint-alca-to", "update-alicenet-node-version"} {
		t.Run(name, func(t *testing.T) {
			cmd := findCmd(t, root, name)
			for _, flag := range []string{"wait-confirmation", "verify", "skip-checks", "sender", "factory-address"} {
				assert.NotNil(t, cmd.Flags().Lookup(flag), flag)
			}
			assert.Equal(t, "0", cmd.Flags().Lookup("wait-confirmation").DefValue)
		})
	}
}

func TestNodeVersionFlagDefaults(t *testing.T) {
	cmd := findCmd(t, NewRootCmd(), "update-alicenet-node-version")
	for _, name := range []string{"relative-epoch", "major", "minor", "patch"} {
		assert.Equal(t, "-1", cmd.Flags().Lookup(name).DefValue, name)
	}
	assert.Equal(t, "", cmd.Flags().Lookup("binary-hash").DefValue)
	assert.NotNil(t, findCmd(t, NewRootCmd(), "pause-consensus").Flags().Lookup("alicenet-height"))
}

func TestArtifactAnnotations(t *testing.T) {
	root := NewRootCmd()
	assert.True(t, needsArtifacts(findCmd(t, root, "deploy-upgradeable-proxy")))
	assert.True(t, needsArtifacts(findCmd(t, root, "get-bytes32-salt")))
	assert.False(t, needsArtifacts(findCmd(t, root, "predict-address")))
	assert.False(t, needsArtifacts(findCmd(t, root, "register-validators")))
}

func TestVersionRunsWithoutProject(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "alicenet-factory version dev")
}

func TestGetAppWithoutInit(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	_, err := getApp(cmd)
	assert.EqualError(t, err, "app not initialized")
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    *big.Int
		wantErr bool
	}{
		{in: "1000", want: big.NewInt(1000)},
		{in: "0x10", want: big.NewInt(16)},
		{in: "-1", wantErr: true},
		{in: "ten", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAmount("amount", tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, tt.want.Cmp(got))
		})
	}
}
