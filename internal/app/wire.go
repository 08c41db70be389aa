//go:build wireinject
// +build wireinject

package app

import (
	"github.com/alicenet/factory-cli/internal/adapters"
	"github.com/alicenet/factory-cli/internal/config"
	"github.com/alicenet/factory-cli/internal/logging"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/google/wire"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Shared task helpers
		usecase.NewConfirmGate,
		usecase.NewFactoryTask,
		usecase.NewSequencer,

		// Use cases
		usecase.NewBuildProject,
		usecase.NewDeployFactory,
		usecase.NewDeployUpgradeableProxy,
		usecase.NewUpgradeProxy,
		usecase.NewDeployCreate,
		usecase.NewDeployCreate2,
		usecase.NewDeployCreateAndRegister,
		usecase.NewDeployOnlyProxy,
		usecase.NewDeployContracts,
		usecase.NewGenerateDeploymentConfigs,
		usecase.NewGetSalt,
		usecase.NewPredictAddress,
		usecase.NewLookupContractAddress,
		usecase.NewGetNetwork,
		usecase.NewGetALCABalance,
		usecase.NewRegisterValidators,
		usecase.NewUnregisterValidators,
		usecase.NewInitializeETHDKG,
		usecase.NewMintALCATo,
		usecase.NewTransferALCAFromFactory,
		usecase.NewScheduleMaintenance,
		usecase.NewPauseConsensus,
		usecase.NewUpdateNodeVersion,
		wire.Struct(new(Deployments), "*"),
		wire.Struct(new(Queries), "*"),
		wire.Struct(new(Operations), "*"),

		// App
		NewApp,
	)
	return nil, nil
}
