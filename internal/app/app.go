package app

import (
	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/alicenet/factory-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Factory tasks
	BuildProject              *usecase.BuildProject
	DeployFactory             *usecase.DeployFactory
	DeployUpgradeableProxy    *usecase.DeployUpgradeableProxy
	UpgradeProxy              *usecase.UpgradeProxy
	DeployCreate              *usecase.DeployCreate
	DeployCreate2             *usecase.DeployCreate2
	DeployCreateAndRegister   *usecase.DeployCreateAndRegister
	DeployOnlyProxy           *usecase.DeployOnlyProxy
	DeployContracts           *usecase.DeployContracts
	GenerateDeploymentConfigs *usecase.GenerateDeploymentConfigs

	// Queries
	GetSalt               *usecase.GetSalt
	PredictAddress        *usecase.PredictAddress
	LookupContractAddress *usecase.LookupContractAddress
	GetNetwork            *usecase.GetNetwork

	// Operational tasks
	RegisterValidators      *usecase.RegisterValidators
	UnregisterValidators    *usecase.UnregisterValidators
	InitializeETHDKG        *usecase.InitializeETHDKG
	MintALCATo              *usecase.MintALCATo
	TransferALCAFromFactory *usecase.TransferALCAFromFactory
	GetALCABalance          *usecase.GetALCABalance
	ScheduleMaintenance     *usecase.ScheduleMaintenance
	PauseConsensus          *usecase.PauseConsensus
	UpdateNodeVersion       *usecase.UpdateNodeVersion
}

// Deployments groups the deploy use cases for NewApp.
type Deployments struct {
	DeployFactory             *usecase.DeployFactory
	DeployUpgradeableProxy    *usecase.DeployUpgradeableProxy
	UpgradeProxy              *usecase.UpgradeProxy
	DeployCreate              *usecase.DeployCreate
	DeployCreate2             *usecase.DeployCreate2
	DeployCreateAndRegister   *usecase.DeployCreateAndRegister
	DeployOnlyProxy           *usecase.DeployOnlyProxy
	DeployContracts           *usecase.DeployContracts
	GenerateDeploymentConfigs *usecase.GenerateDeploymentConfigs
}

// Queries groups the read-only use cases for NewApp.
type Queries struct {
	GetSalt               *usecase.GetSalt
	PredictAddress        *usecase.PredictAddress
	LookupContractAddress *usecase.LookupContractAddress
	GetNetwork            *usecase.GetNetwork
	GetALCABalance        *usecase.GetALCABalance
}

// Operations groups the validator and ALCA use cases for NewApp.
type Operations struct {
	RegisterValidators      *usecase.RegisterValidators
	UnregisterValidators    *usecase.UnregisterValidators
	InitializeETHDKG        *usecase.InitializeETHDKG
	MintALCATo              *usecase.MintALCATo
	TransferALCAFromFactory *usecase.TransferALCAFromFactory
	ScheduleMaintenance     *usecase.ScheduleMaintenance
	PauseConsensus          *usecase.PauseConsensus
	UpdateNodeVersion       *usecase.UpdateNodeVersion
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	build *usecase.BuildProject,
	deployments Deployments,
	queries Queries,
	ops Operations,
) *App {
	return &App{
		Config:                    cfg,
		BuildProject:              build,
		DeployFactory:             deployments.DeployFactory,
		DeployUpgradeableProxy:    deployments.DeployUpgradeableProxy,
		UpgradeProxy:              deployments.UpgradeProxy,
		DeployCreate:              deployments.DeployCreate,
		DeployCreate2:             deployments.DeployCreate2,
		DeployCreateAndRegister:   deployments.DeployCreateAndRegister,
		DeployOnlyProxy:           deployments.DeployOnlyProxy,
		DeployContracts:           deployments.DeployContracts,
		GenerateDeploymentConfigs: deployments.GenerateDeploymentConfigs,
		GetSalt:                   queries.GetSalt,
		PredictAddress:            queries.PredictAddress,
		LookupContractAddress:     queries.LookupContractAddress,
		GetNetwork:                queries.GetNetwork,
		GetALCABalance:            queries.GetALCABalance,
		RegisterValidators:        ops.RegisterValidators,
		UnregisterValidators:      ops.UnregisterValidators,
		InitializeETHDKG:          ops.InitializeETHDKG,
		MintALCATo:                ops.MintALCATo,
		TransferALCAFromFactory:   ops.TransferALCAFromFactory,
		ScheduleMaintenance:       ops.ScheduleMaintenance,
		PauseConsensus:            ops.PauseConsensus,
		UpdateNodeVersion:         ops.UpdateNodeVersion,
	}
}
