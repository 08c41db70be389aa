package deployment

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stakingABI = `[
	{"type":"constructor","inputs":[{"name":"zeta_","type":"address"},{"name":"alpha_","type":"uint256"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"initialize","inputs":[{"name":"name_","type":"string"},{"name":"","type":"uint8"}],"outputs":[],"stateMutability":"nonpayable"}
]`

func descriptor(t *testing.T, name string, tags domain.NatspecTags, abiJSON string) *domain.ContractDescriptor {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	require.NoError(t, err)
	return &domain.ContractDescriptor{
		Name: name,
		Path: "src/" + name + ".sol",
		ABI:  parsed,
		Tags: tags,
	}
}

func TestExtractContractInfo(t *testing.T) {
	t.Run("args in abi order with placeholders", func(t *testing.T) {
		c := descriptor(t, "PublicStaking", domain.NatspecTags{
			Salt:       "PublicStaking",
			DeployType: domain.DeployTypeUpgradeable,
		}, stakingABI)

		cfg, err := ExtractContractInfo(c)
		require.NoError(t, err)

		assert.Equal(t, "PublicStaking", cfg.Name)
		assert.Equal(t, "src/PublicStaking.sol:PublicStaking", cfg.FullyQualifiedName)
		assert.Equal(t, domain.DeployTypeUpgradeable, cfg.DeployType)
		assert.Equal(t, []string{"zeta_", "alpha_"}, cfg.ConstructorArgs.Names())
		assert.Equal(t, []string{"name_", "arg1"}, cfg.InitializerArgs.Names())
		for _, v := range cfg.ConstructorArgs.Values() {
			assert.Equal(t, domain.UndefinedValue, v)
		}
		assert.True(t, strings.HasPrefix(cfg.Salt, "0x5075626c69635374616b696e67"))
	})

	t.Run("no salt tag leaves salt empty", func(t *testing.T) {
		c := descriptor(t, "Lib", domain.NatspecTags{}, `[]`)
		cfg, err := ExtractContractInfo(c)
		require.NoError(t, err)
		assert.Empty(t, cfg.Salt)
		assert.Empty(t, cfg.ConstructorArgs)

		_, err = cfg.ParsedSalt()
		assert.ErrorIs(t, err, domain.ErrMissingSalt)
	})
}

func TestDeploymentConfigFileOrder(t *testing.T) {
	file := NewDeploymentConfigFile()
	file.Set("src/Zeta.sol:Zeta", &DeploymentConfig{
		Name:               "Zeta",
		FullyQualifiedName: "src/Zeta.sol:Zeta",
		ConstructorArgs:    ArgSet{{Name: "z", Value: "1"}, {Name: "a", Value: "2"}},
	})
	file.Set("src/Alpha.sol:Alpha", &DeploymentConfig{
		Name:               "Alpha",
		FullyQualifiedName: "src/Alpha.sol:Alpha",
	})

	data, err := json.MarshalIndent(file, "", "  ")
	require.NoError(t, err)
	assert.Less(t, strings.Index(string(data), "Zeta"), strings.Index(string(data), "Alpha"))
	assert.Contains(t, string(data), `"initializerArgs": {}`)

	var back DeploymentConfigFile
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []string{"src/Zeta.sol:Zeta", "src/Alpha.sol:Alpha"}, back.Keys())

	zeta, ok := back.Get("src/Zeta.sol:Zeta")
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a"}, zeta.ConstructorArgs.Names())
	assert.Equal(t, []any{"1", "2"}, zeta.ConstructorArgs.Values())

	alpha, ok := back.FindByName("Alpha")
	require.True(t, ok)
	assert.Equal(t, "src/Alpha.sol:Alpha", alpha.FullyQualifiedName)
}

func TestDeploymentConfigFileLiteralValues(t *testing.T) {
	input := `{
  "src/ALCA.sol:ALCA": {
    "salt": "0x414c434100000000000000000000000000000000000000000000000000000000",
    "deployType": "upgradeable",
    "deployGroupIndex": 3,
    "constructorArgs": {"supply": 1000000000000000000000000, "holders": ["0x01", "0x02"], "on": true},
    "initializerArgs": {}
  }
}`
	var file DeploymentConfigFile
	require.NoError(t, json.Unmarshal([]byte(input), &file))

	cfg, ok := file.Get("src/ALCA.sol:ALCA")
	require.True(t, ok)
	assert.Equal(t, "ALCA", cfg.Name)
	assert.Equal(t, "src/ALCA.sol:ALCA", cfg.FullyQualifiedName)
	assert.Equal(t, "3", cfg.DeployGroupIndex)

	supply, _ := cfg.ConstructorArgs.Get("supply")
	assert.Equal(t, "1000000000000000000000000", supply)
	holders, _ := cfg.ConstructorArgs.Get("holders")
	assert.Equal(t, []any{"0x01", "0x02"}, holders)
	on, _ := cfg.ConstructorArgs.Get("on")
	assert.Equal(t, "true", on)
}

func TestSortedDeployList(t *testing.T) {
	general := &DeploymentConfig{FullyQualifiedName: "a:A", DeployType: domain.DeployTypeUpgradeable}
	second := &DeploymentConfig{FullyQualifiedName: "b:B", DeployType: domain.DeployTypeUpgradeable, DeployGroup: "ethdkg", DeployGroupIndex: "2"}
	first := &DeploymentConfig{FullyQualifiedName: "c:C", DeployType: domain.DeployTypeOnlyProxy, DeployGroup: "ethdkg", DeployGroupIndex: "1"}
	untyped := &DeploymentConfig{FullyQualifiedName: "d:D"}

	tests := []struct {
		name    string
		input   []*DeploymentConfig
		groups  []string
		order   []string
		wantErr string
	}{
		{
			name:   "groups ordered by index",
			input:  []*DeploymentConfig{general, second, first, untyped},
			groups: []string{"general", "ethdkg"},
			order:  []string{"a:A", "c:C", "b:B"},
		},
		{
			name:    "group without index",
			input:   []*DeploymentConfig{{FullyQualifiedName: "e:E", DeployType: domain.DeployTypeUpgradeable, DeployGroup: "x"}},
			wantErr: "without a deploy-group-index",
		},
		{
			name:    "non integer index",
			input:   []*DeploymentConfig{{FullyQualifiedName: "e:E", DeployType: domain.DeployTypeUpgradeable, DeployGroup: "x", DeployGroupIndex: "first"}},
			wantErr: "should be an integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := SortedDeployList(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			var groups []string
			for _, g := range list.Groups {
				groups = append(groups, g.Name)
			}
			assert.Equal(t, tt.groups, groups)

			var order []string
			for _, c := range list.Configs() {
				order = append(order, c.FullyQualifiedName)
			}
			assert.Equal(t, tt.order, order)
			assert.Equal(t, len(tt.order), list.Len())
		})
	}
}

func TestGenerateTemplate(t *testing.T) {
	factory := &DeploymentConfig{
		Name:               domain.FactoryContractName,
		FullyQualifiedName: "src/AliceNetFactory.sol:AliceNetFactory",
		ConstructorArgs:    NewArgSet([]string{domain.FactoryLegacyTokenArg}, domain.UndefinedValue),
	}
	list, err := SortedDeployList([]*DeploymentConfig{
		{FullyQualifiedName: "src/ALCA.sol:ALCA", Name: "ALCA", DeployType: domain.DeployTypeUpgradeable},
	})
	require.NoError(t, err)

	file := GenerateTemplate(factory, list)
	assert.Equal(t, []string{"src/AliceNetFactory.sol:AliceNetFactory", "src/ALCA.sol:ALCA"}, file.Keys())
	assert.Equal(t, []string{"src/AliceNetFactory.sol:AliceNetFactory"}, UndefinedEntries(file))
}

func TestPopulateArgs(t *testing.T) {
	cfg := &DeploymentConfig{
		Name:            "ValidatorPool",
		ConstructorArgs: NewArgSet([]string{"a"}, domain.UndefinedValue),
		InitializerArgs: NewArgSet([]string{"x", "y"}, domain.UndefinedValue),
	}

	err := PopulateInitializerArgs([]string{"1"}, cfg)
	require.Error(t, err)
	assert.Equal(t, "Incorrect number of initializer arguments provided. Expected 2 but got 1", err.Error())

	err = PopulateConstructorArgs([]string{"1", "2"}, cfg)
	assert.Equal(t, "Incorrect number of constructor arguments provided. Expected 1 but got 2", err.Error())

	require.NoError(t, PopulateInitializerArgs([]string{"1", "2"}, cfg))
	require.Error(t, cfg.CheckDefined())

	require.NoError(t, PopulateConstructorArgs([]string{"0x01"}, cfg))
	assert.NoError(t, cfg.CheckDefined())
	assert.Equal(t, []any{"1", "2"}, cfg.InitializerArgs.Values())
}

func TestCheckDefined(t *testing.T) {
	cfg := &DeploymentConfig{
		Name:            "Snapshots",
		InitializerArgs: ArgSet{{Name: "chainId_", Value: "1"}, {Name: "epochLength_", Value: domain.UndefinedValue}},
	}
	err := cfg.CheckDefined()
	var undef domain.UndefinedArgError
	require.ErrorAs(t, err, &undef)
	assert.Equal(t, domain.InitializerArgs, undef.Kind)
	assert.Equal(t, "epochLength_", undef.Name)

	nested := &DeploymentConfig{ConstructorArgs: ArgSet{{Name: "list", Value: []any{"1", domain.UndefinedValue}}}}
	assert.Error(t, nested.CheckDefined())
}

func TestAddressFileLatest(t *testing.T) {
	f := &AddressFile{Records: []DeploymentRecord{
		{RunID: "1", Contract: "ALCA", Salt: "0xaa"},
		{RunID: "2", Contract: "ALCA", Salt: "0xaa"},
		{RunID: "3", Contract: "PublicStaking", Salt: "0xbb"},
	}}

	r, ok := f.Latest("0xaa")
	require.True(t, ok)
	assert.Equal(t, "2", r.RunID)

	r, ok = f.LatestByContract("PublicStaking")
	require.True(t, ok)
	assert.Equal(t, "3", r.RunID)

	_, ok = f.Latest("0xcc")
	assert.False(t, ok)
}
