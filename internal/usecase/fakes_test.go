package usecase_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math/big"
	"strings"
	"testing"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/alicenet/factory-cli/internal/domain/deployment"
	"github.com/alicenet/factory-cli/internal/domain/multicall"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testSender  = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	testFactory = common.HexToAddress("0x00000000000000000000000000000000000000fa")
)

// fakeChain simulates an AliceNet factory: CREATE nonces, the salt
// registry and proxy implementations.
type fakeChain struct {
	nonces   map[common.Address]uint64
	registry map[common.Address]map[salt.Salt]common.Address
	impls    map[common.Address]common.Address

	estimate    uint64
	estimateErr error
	// revertKind makes the first tx containing an op of this kind revert.
	revertKind multicall.Kind
	// rawOverride replaces the DeployedRaw address of every deployCreate.
	rawOverride *common.Address
	// proxyOverride replaces the DeployedProxy address of every deployProxy.
	proxyOverride *common.Address
	// calls answers eth_call by target.
	calls map[common.Address]func(data []byte) ([]byte, error)
	// onCall returns extra logs for a multicall.Call.
	onCall func(factory common.Address, op multicall.Call) []*types.Log

	txCount  int
	batches  []multicall.Batch
	ops      []multicall.Op
	deployed [][]byte
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		nonces:   map[common.Address]uint64{testFactory: 1},
		registry: map[common.Address]map[salt.Salt]common.Address{},
		impls:    map[common.Address]common.Address{},
		estimate: 1_000_000,
		calls:    map[common.Address]func([]byte) ([]byte, error){},
	}
}

func (c *fakeChain) register(factory common.Address, s salt.Salt, addr common.Address) {
	if c.registry[factory] == nil {
		c.registry[factory] = map[salt.Salt]common.Address{}
	}
	c.registry[factory][s] = addr
}

func (c *fakeChain) Sender() common.Address { return testSender }

func (c *fakeChain) ChainID(context.Context) (uint64, error) { return 1337, nil }

func (c *fakeChain) BlockNumber(context.Context) (uint64, error) { return uint64(c.txCount), nil }

func (c *fakeChain) NonceAt(_ context.Context, addr common.Address) (uint64, error) {
	return c.nonces[addr], nil
}

func (c *fakeChain) Lookup(_ context.Context, factory common.Address, s salt.Salt) (common.Address, error) {
	return c.registry[factory][s], nil
}

func (c *fakeChain) Call(_ context.Context, to common.Address, data []byte) ([]byte, error) {
	fn, ok := c.calls[to]
	if !ok {
		return nil, fmt.Errorf("no contract at %s", to.Hex())
	}
	return fn(data)
}

func (c *fakeChain) EstimateBatch(context.Context, common.Address, multicall.Batch) (uint64, error) {
	return c.estimate, c.estimateErr
}

func (c *fakeChain) ExecuteBatch(_ context.Context, factory common.Address, batch multicall.Batch) (*domain.TxReceipt, error) {
	c.batches = append(c.batches, batch)
	return c.apply(factory, batch)
}

func (c *fakeChain) ExecuteOp(_ context.Context, factory common.Address, op multicall.Op) (*domain.TxReceipt, error) {
	c.ops = append(c.ops, op)
	return c.apply(factory, multicall.Batch{op})
}

func (c *fakeChain) DeployCreate2(_ context.Context, factory common.Address, _ *big.Int, s salt.Salt, initCode []byte) (*domain.TxReceipt, error) {
	receipt := c.receipt()
	addr := salt.PredictCreate2Address(factory, s, initCode)
	c.nonces[factory]++
	receipt.DeployedRaw = append(receipt.DeployedRaw, addr)
	return receipt, nil
}

func (c *fakeChain) DeployCreateAndRegister(_ context.Context, factory common.Address, initCode []byte, s salt.Salt) (*domain.TxReceipt, error) {
	receipt := c.receipt()
	addr := crypto.CreateAddress(factory, c.nonces[factory])
	c.nonces[factory]++
	c.deployed = append(c.deployed, initCode)
	c.register(factory, s, addr)
	receipt.DeployedRaw = append(receipt.DeployedRaw, addr)
	receipt.Deployed = append(receipt.Deployed, addr)
	return receipt, nil
}

// DeployContract deploys a factory, which registers ALCA in its constructor.
func (c *fakeChain) DeployContract(_ context.Context, initCode []byte) (*domain.TxReceipt, error) {
	receipt := c.receipt()
	addr := crypto.CreateAddress(testSender, c.nonces[testSender]-1)
	c.nonces[addr] = 2
	c.deployed = append(c.deployed, initCode)
	alcaSalt, _ := salt.FromName("ALCA")
	c.register(addr, alcaSalt, crypto.CreateAddress(addr, 1))
	receipt.ContractAddress = addr
	return receipt, nil
}

// receipt starts a transaction from the sender.
func (c *fakeChain) receipt() *domain.TxReceipt {
	c.txCount++
	c.nonces[testSender]++
	return &domain.TxReceipt{
		TxHash:      common.BigToHash(big.NewInt(int64(c.txCount))),
		BlockNumber: uint64(c.txCount),
		GasUsed:     100_000,
	}
}

func (c *fakeChain) apply(factory common.Address, batch multicall.Batch) (*domain.TxReceipt, error) {
	for _, op := range batch {
		if c.revertKind != "" && op.Kind() == c.revertKind {
			c.revertKind = ""
			c.txCount++
			c.nonces[testSender]++
			return nil, fmt.Errorf("tx %d: %w", c.txCount, domain.ErrTransactionReverted)
		}
	}

	// Work on copies so a failed batch leaves no trace.
	nonce := c.nonces[factory]
	registered := map[salt.Salt]common.Address{}
	impls := map[common.Address]common.Address{}
	receipt := &domain.TxReceipt{GasUsed: 100_000 * uint64(len(batch))}

	for _, op := range batch {
		switch o := op.(type) {
		case multicall.Create:
			addr := crypto.CreateAddress(factory, nonce)
			nonce++
			if c.rawOverride != nil {
				addr = *c.rawOverride
			}
			c.deployed = append(c.deployed, o.InitCode)
			receipt.DeployedRaw = append(receipt.DeployedRaw, addr)
		case multicall.CreateProxy:
			if c.registry[factory][o.Salt] != (common.Address{}) || registered[o.Salt] != (common.Address{}) {
				return nil, fmt.Errorf("salt in use: %w", domain.ErrTransactionReverted)
			}
			addr := salt.PredictProxyAddress(factory, o.Salt)
			nonce++
			if c.proxyOverride != nil {
				addr = *c.proxyOverride
			}
			registered[o.Salt] = addr
			receipt.DeployedProxy = append(receipt.DeployedProxy, addr)
		case multicall.SetLogic:
			proxy := registered[o.Salt]
			if proxy == (common.Address{}) {
				proxy = c.registry[factory][o.Salt]
			}
			if proxy == (common.Address{}) {
				return nil, fmt.Errorf("no proxy: %w", domain.ErrTransactionReverted)
			}
			impls[proxy] = o.Logic
		case multicall.Call:
			if c.onCall != nil {
				receipt.Logs = append(receipt.Logs, c.onCall(factory, o)...)
			}
		}
	}

	base := c.receipt()
	receipt.TxHash, receipt.BlockNumber = base.TxHash, base.BlockNumber
	c.nonces[factory] = nonce
	for s, addr := range registered {
		c.register(factory, s, addr)
	}
	for proxy, logic := range impls {
		c.impls[proxy] = logic
	}
	return receipt, nil
}

// fakeArtifacts resolves descriptors by short or fully qualified name.
type fakeArtifacts struct {
	contracts []*domain.ContractDescriptor
}

func (a *fakeArtifacts) Resolve(_ context.Context, ref string) (*domain.ContractDescriptor, error) {
	for _, c := range a.contracts {
		if c.Name == ref || c.FullyQualifiedName() == ref {
			return c, nil
		}
	}
	return nil, domain.ContractNotFoundError{Query: ref}
}

func (a *fakeArtifacts) All(context.Context) ([]*domain.ContractDescriptor, error) {
	return a.contracts, nil
}

// fakeEncoder appends the argument values to the bytecode so that
// different arguments give different creation code.
type fakeEncoder struct{}

func (fakeEncoder) EncodeConstructorArgs(_ *domain.ContractDescriptor, args deployment.ArgSet) ([]byte, error) {
	return []byte(fmt.Sprint(args.Values()...)), nil
}

func (e fakeEncoder) EncodeDeployCode(c *domain.ContractDescriptor, args deployment.ArgSet) ([]byte, error) {
	encoded, _ := e.EncodeConstructorArgs(c, args)
	return append(append([]byte{}, c.Bytecode...), encoded...), nil
}

func (fakeEncoder) EncodeInitCallData(c *domain.ContractDescriptor, args deployment.ArgSet) ([]byte, error) {
	if !c.HasInitializer() {
		return []byte{}, nil
	}
	return []byte("initialize:" + fmt.Sprint(args.Values()...)), nil
}

// MockAsker is a mock implementation of Asker
type MockAsker struct {
	mock.Mock
}

func (m *MockAsker) Ask(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// memoryRecords keeps address records in memory.
type memoryRecords struct {
	files map[string]*deployment.AddressFile
	runs  int
}

func newMemoryRecords() *memoryRecords {
	return &memoryRecords{files: map[string]*deployment.AddressFile{}}
}

func (m *memoryRecords) Load(_ context.Context, network string) (*deployment.AddressFile, error) {
	if f, ok := m.files[network]; ok {
		return f, nil
	}
	return &deployment.AddressFile{}, nil
}

func (m *memoryRecords) Append(_ context.Context, network string, rec deployment.DeploymentRecord) error {
	f, _ := m.Load(context.Background(), network)
	f.Records = append(f.Records, rec)
	m.files[network] = f
	return nil
}

func (m *memoryRecords) NewRunID() string {
	m.runs++
	return fmt.Sprintf("run-%d", m.runs)
}

// memoryConfigs stores deployment config files by path.
type memoryConfigs struct {
	files map[string]*deployment.DeploymentConfigFile
}

func (m *memoryConfigs) Load(_ context.Context, path string) (*deployment.DeploymentConfigFile, error) {
	f, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return f, nil
}

func (m *memoryConfigs) Save(_ context.Context, path string, file *deployment.DeploymentConfigFile) error {
	if m.files == nil {
		m.files = map[string]*deployment.DeploymentConfigFile{}
	}
	m.files[path] = file
	return nil
}

// recordingProgress captures informational lines.
type recordingProgress struct {
	usecase.NopProgress
	lines []string
}

func (p *recordingProgress) Info(message string) {
	p.lines = append(p.lines, message)
}

func (p *recordingProgress) contains(substr string) bool {
	for _, l := range p.lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.RuntimeConfig {
	factory := testFactory
	return &config.RuntimeConfig{
		Network:              &config.Network{Name: "hardhat", ChainID: 1337},
		FactoryAddress:       &factory,
		SkipChecks:           true,
		DeploymentConfigPath: "deploymentConfig.json",
	}
}

// descriptor builds a contract from a minimal ABI. ctor and init list the
// uint256 inputs of the constructor and initializer; a nil init means the
// contract has no initializer.
func descriptor(t *testing.T, name string, tags domain.NatspecTags, ctor []string, init []string) *domain.ContractDescriptor {
	t.Helper()
	type input struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	inputs := func(names []string) []input {
		out := []input{}
		for _, n := range names {
			out = append(out, input{Name: n, Type: "uint256"})
		}
		return out
	}
	entries := []map[string]any{}
	if ctor != nil {
		entries = append(entries, map[string]any{"type": "constructor", "inputs": inputs(ctor), "stateMutability": "nonpayable"})
	}
	if init != nil {
		entries = append(entries, map[string]any{"type": "function", "name": "initialize", "inputs": inputs(init), "outputs": []input{}, "stateMutability": "nonpayable"})
	}
	data, err := json.Marshal(entries)
	require.NoError(t, err)
	parsed, err := abi.JSON(strings.NewReader(string(data)))
	require.NoError(t, err)
	return &domain.ContractDescriptor{
		Name:     name,
		Path:     "src/" + name + ".sol",
		ABI:      parsed,
		Bytecode: []byte("code:" + name),
		Tags:     tags,
	}
}

// harness wires the use cases against the fakes.
type harness struct {
	cfg       *config.RuntimeConfig
	chain     *fakeChain
	artifacts *fakeArtifacts
	records   *memoryRecords
	configs   *memoryConfigs
	progress  *recordingProgress
	asker     *MockAsker
	task      *usecase.FactoryTask
	sequencer *usecase.Sequencer
}

func newHarness(t *testing.T, contracts ...*domain.ContractDescriptor) *harness {
	t.Helper()
	h := &harness{
		cfg:       testConfig(),
		chain:     newFakeChain(),
		artifacts: &fakeArtifacts{contracts: contracts},
		records:   newMemoryRecords(),
		configs:   &memoryConfigs{},
		progress:  &recordingProgress{},
		asker:     &MockAsker{},
	}
	h.rebuild()
	return h
}

// rebuild recreates the use case graph after cfg changes.
func (h *harness) rebuild() {
	log := testLogger()
	gate := usecase.NewConfirmGate(h.asker, h.cfg, log)
	h.task = usecase.NewFactoryTask(h.cfg, h.artifacts, fakeEncoder{}, h.chain, gate, nil, h.records, h.progress, log)
	h.sequencer = usecase.NewSequencer(h.chain, h.cfg, log)
}

func (h *harness) deployProxy() *usecase.DeployUpgradeableProxy {
	return usecase.NewDeployUpgradeableProxy(h.task, h.sequencer)
}

func (h *harness) upgradeProxy() *usecase.UpgradeProxy {
	return usecase.NewUpgradeProxy(h.cfg, h.task, h.sequencer, h.configs)
}
