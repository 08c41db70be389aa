package adapters

import (
	abiadapter "github.com/alicenet/factory-cli/internal/adapters/abi"
	"github.com/alicenet/factory-cli/internal/adapters/artifacts"
	"github.com/alicenet/factory-cli/internal/adapters/blockchain"
	"github.com/alicenet/factory-cli/internal/adapters/forge"
	"github.com/alicenet/factory-cli/internal/adapters/fs"
	"github.com/alicenet/factory-cli/internal/adapters/interactive"
	"github.com/alicenet/factory-cli/internal/adapters/progress"
	"github.com/alicenet/factory-cli/internal/adapters/verification"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/google/wire"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewDeploymentConfigStore,
	wire.Bind(new(usecase.DeploymentConfigStore), new(*fs.DeploymentConfigStore)),

	fs.NewAddressStore,
	wire.Bind(new(usecase.AddressRecordStore), new(*fs.AddressStore)),
)

// ArtifactSet provides the compiled contract index
var ArtifactSet = wire.NewSet(
	artifacts.NewIndexer,
	artifacts.NewResolver,
	wire.Bind(new(usecase.ArtifactIndex), new(*artifacts.Resolver)),
	wire.Bind(new(artifacts.ContractPicker), new(*interactive.Selector)),
)

// ABISet provides ABI encoders
var ABISet = wire.NewSet(
	abiadapter.NewEncoder,
	wire.Bind(new(usecase.ArgEncoder), new(*abiadapter.Encoder)),

	abiadapter.NewFactoryEncoder,
)

// ForgeSet provides forge-based implementations
var ForgeSet = wire.NewSet(
	forge.NewForgeAdapter,
	wire.Bind(new(usecase.ArtifactBuilder), new(*forge.ForgeAdapter)),
	wire.Bind(new(verification.ForgeRunner), new(*forge.ForgeAdapter)),

	verification.NewVerifier,
	wire.Bind(new(usecase.ContractVerifier), new(*verification.Verifier)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewAsker,
	wire.Bind(new(usecase.Asker), new(*interactive.Asker)),

	interactive.NewSelector,
	wire.Bind(new(usecase.ContractSelector), new(*interactive.Selector)),

	progress.NewSink,
	wire.Bind(new(usecase.ProgressSink), new(*progress.Sink)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewSigner,
	blockchain.NewClient,
	wire.Bind(new(usecase.FactoryClient), new(*blockchain.Client)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ArtifactSet,
	ABISet,
	ForgeSet,
	InteractiveSet,
	BlockchainSet,
)
