package usecase

import (
	"context"
	"math/big"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/deployment"
	"github.com/alicenet/factory-cli/internal/domain/multicall"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/ethereum/go-ethereum/common"
)

// FactoryClient sends transactions to, and reads from, an AliceNet factory.
// Every method that submits a transaction blocks until the receipt is mined
// and the configured confirmations have passed, and returns
// ErrTransactionReverted for a failed receipt.
type FactoryClient interface {
	// Sender is the account signing transactions.
	Sender() common.Address
	ChainID(ctx context.Context) (uint64, error)
	BlockNumber(ctx context.Context) (uint64, error)
	// NonceAt returns the account nonce of addr. For a contract this is
	// the nonce its next CREATE will use.
	NonceAt(ctx context.Context, addr common.Address) (uint64, error)

	// Lookup returns the address registered at salt, or the zero address.
	Lookup(ctx context.Context, factory common.Address, s salt.Salt) (common.Address, error)
	// Call performs an eth_call against any contract.
	Call(ctx context.Context, to common.Address, data []byte) ([]byte, error)

	// EstimateBatch estimates gas for multiCall(batch).
	EstimateBatch(ctx context.Context, factory common.Address, batch multicall.Batch) (uint64, error)
	// ExecuteBatch sends multiCall(batch) as one transaction.
	ExecuteBatch(ctx context.Context, factory common.Address, batch multicall.Batch) (*domain.TxReceipt, error)
	// ExecuteOp sends a single operation to its factory entry point.
	ExecuteOp(ctx context.Context, factory common.Address, op multicall.Op) (*domain.TxReceipt, error)
	DeployCreate2(ctx context.Context, factory common.Address, value *big.Int, s salt.Salt, initCode []byte) (*domain.TxReceipt, error)
	DeployCreateAndRegister(ctx context.Context, factory common.Address, initCode []byte, s salt.Salt) (*domain.TxReceipt, error)

	// DeployContract sends a plain CREATE transaction from the sender.
	DeployContract(ctx context.Context, initCode []byte) (*domain.TxReceipt, error)
}

// ArgEncoder turns config argument values into ABI encoded bytes.
type ArgEncoder interface {
	EncodeConstructorArgs(c *domain.ContractDescriptor, args deployment.ArgSet) ([]byte, error)
	EncodeDeployCode(c *domain.ContractDescriptor, args deployment.ArgSet) ([]byte, error)
	EncodeInitCallData(c *domain.ContractDescriptor, args deployment.ArgSet) ([]byte, error)
}

// ArtifactIndex provides the compiled contracts of the project
type ArtifactIndex interface {
	// Resolve finds a contract by short name or "path:Name".
	Resolve(ctx context.Context, ref string) (*domain.ContractDescriptor, error)
	All(ctx context.Context) ([]*domain.ContractDescriptor, error)
}

// ArtifactBuilder compiles the project.
type ArtifactBuilder interface {
	Build(ctx context.Context) error
}

// DeploymentConfigStore reads and writes deployment config files whole.
type DeploymentConfigStore interface {
	Load(ctx context.Context, path string) (*deployment.DeploymentConfigFile, error)
	Save(ctx context.Context, path string, file *deployment.DeploymentConfigFile) error
}

// AddressRecordStore persists the records of past deployment runs per network.
type AddressRecordStore interface {
	Load(ctx context.Context, network string) (*deployment.AddressFile, error)
	Append(ctx context.Context, network string, record deployment.DeploymentRecord) error
	// NewRunID returns an identifier shared by all records of one invocation.
	NewRunID() string
}

// VerifyRequest describes one contract to verify on a block explorer.
type VerifyRequest struct {
	Address         common.Address
	Contract        *domain.ContractDescriptor
	ChainID         uint64
	ConstructorArgs []byte
}

// ContractVerifier handles contract verification
type ContractVerifier interface {
	Verify(ctx context.Context, req VerifyRequest) error
}

// Asker reads one answer from the operator.
type Asker interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// ContractSelector handles interactive selection of contracts
type ContractSelector interface {
	SelectContracts(ctx context.Context, contracts []*domain.ContractDescriptor, prompt string) ([]*domain.ContractDescriptor, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// ExecutionStage represents a stage in a deployment
type ExecutionStage string

const (
	StageResolving  ExecutionStage = "Resolving"
	StageEncoding   ExecutionStage = "Encoding"
	StageConfirming ExecutionStage = "Confirming"
	StageSending    ExecutionStage = "Sending"
	StageVerifying  ExecutionStage = "Verifying"
	StageRecording  ExecutionStage = "Recording"
	StageCompleted  ExecutionStage = "Completed"
)
