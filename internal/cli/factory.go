package cli

import (
	"math/big"

	"github.com/alicenet/factory-cli/internal/cli/render"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeployFactoryCmd creates the deploy-factory command
func NewDeployFactoryCmd() *cobra.Command {
	var legacyToken string

	cmd := &cobra.Command{
		Use:         "deploy-factory",
		Short:       "Deploy AliceNetFactory and the ALCA token",
		Args:        cobra.NoArgs,
		Annotations: readsArtifacts(),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			result, err := app.DeployFactory.Run(cmd.Context(), usecase.DeployFactoryParams{LegacyToken: legacyToken})
			if err != nil {
				return err
			}
			return render.NewFactoryRenderer(printer(cmd, app)).Render(result)
		},
	}

	cmd.Flags().StringVar(&legacyToken, "legacy-token", "", "Address of the legacy MadToken contract")
	_ = cmd.MarkFlagRequired("legacy-token")
	addTxFlags(cmd)

	return cmd
}

// NewDeployContractsCmd creates the deploy-contracts command
func NewDeployContractsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy-contracts",
		Short: "Deploy every contract in the deployment config file",
		Long: `Deploy every contract listed in the deployment config file, in file order.

The factory is deployed first when no factory address is configured, using the
legacyToken_ constructor argument of the AliceNetFactory entry. Contracts whose
salt is already registered with the factory are skipped.`,
		Args:        cobra.NoArgs,
		Annotations: readsArtifacts(),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			result, err := app.DeployContracts.Run(cmd.Context(), usecase.DeployContractsParams{
				ConfigPath: app.Config.DeploymentConfigPath,
			})
			if err != nil {
				return err
			}
			return render.NewDeployContractsRenderer(printer(cmd, app)).Render(result)
		},
	}

	cmd.Flags().String("config-file", "", "Deployment config file (JSON or YAML)")
	addTxFlags(cmd)

	return cmd
}

// NewGenerateDeploymentConfigsCmd creates the generate-deployment-configs command
func NewGenerateDeploymentConfigsCmd() *cobra.Command {
	var params usecase.GenerateConfigsParams

	cmd := &cobra.Command{
		Use:   "generate-deployment-configs [contract...]",
		Short: "Generate a deployment config template from the artifacts",
		Long: `Generate a deployment config template for every contract that declares a
@custom:deploy-type, ordered by deploy group. Argument values start out as
UNDEFINED and must be filled in before deploying.

Examples:
  alicenet-factory generate-deployment-configs
  alicenet-factory generate-deployment-configs ALCA PublicStaking
  alicenet-factory generate-deployment-configs --select
  alicenet-factory generate-deployment-configs --list`,
		Annotations: readsArtifacts(),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			params.Names = args
			result, err := app.GenerateDeploymentConfigs.Run(cmd.Context(), params)
			if err != nil {
				return err
			}
			return render.NewGenerateConfigsRenderer(printer(cmd, app)).Render(result)
		},
	}

	cmd.Flags().BoolVar(&params.List, "list", false, "Print the template instead of writing it")
	cmd.Flags().BoolVar(&params.Select, "select", false, "Pick contracts interactively")
	cmd.Flags().StringVar(&params.OutputFile, "output-file", "", "File to write (defaults to the configured deployment config)")
	cmd.Flags().Bool("build", false, "Run forge build first")

	return cmd
}

// NewDeployUpgradeableProxyCmd creates the deploy-upgradeable-proxy command
func NewDeployUpgradeableProxyCmd() *cobra.Command {
	var initializerArgs []string

	cmd := &cobra.Command{
		Use:   "deploy-upgradeable-proxy <contract> [constructor-arg...]",
		Short: "Deploy a logic contract and a proxy pointing at it",
		Long: `Deploy a logic contract through the factory and point a proxy at it.

The logic deploy, proxy creation and upgrade are sent as one multicall, unless
the estimate exceeds the multicall gas limit, in which case the logic is
deployed in its own transaction first.

Examples:
  alicenet-factory deploy-upgradeable-proxy ValidatorPool --initializer-args 10,20
  alicenet-factory deploy-upgradeable-proxy src/Foo.sol:Foo 0xabc... 42`,
		Args:        cobra.MinimumNArgs(1),
		Annotations: readsArtifacts(),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			result, err := app.DeployUpgradeableProxy.Run(cmd.Context(), usecase.DeployProxyParams{
				Contract: args[0],
				Args: usecase.ContractArgs{
					ConstructorArgs: args[1:],
					InitializerArgs: initializerArgs,
				},
			})
			if err != nil {
				return err
			}
			return render.NewProxyRenderer(printer(cmd, app)).Render(result)
		},
	}

	cmd.Flags().StringSliceVar(&initializerArgs, "initializer-args", nil, "Comma separated initialize() arguments")
	addTxFlags(cmd)

	return cmd
}

// NewUpgradeProxyCmd creates the upgrade-proxy command
func NewUpgradeProxyCmd() *cobra.Command {
	var (
		initializerArgs []string
		skipInitializer bool
	)

	cmd := &cobra.Command{
		Use:   "upgrade-proxy <contract> [constructor-arg...]",
		Short: "Deploy new logic and point an existing proxy at it",
		Long: `Deploy new logic for a contract and upgrade its existing proxy.

Without positional arguments the contract's entry in the deployment config
file supplies them. The salt is re-derived from the artifact and must match
the recorded salt scheme.`,
		Args:        cobra.MinimumNArgs(1),
		Annotations: readsArtifacts(),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			result, err := app.UpgradeProxy.Run(cmd.Context(), usecase.DeployProxyParams{
				Contract: args[0],
				Args: usecase.ContractArgs{
					ConstructorArgs: args[1:],
					InitializerArgs: initializerArgs,
					SkipInitializer: skipInitializer,
				},
			})
			if err != nil {
				return err
			}
			return render.NewProxyRenderer(printer(cmd, app)).Render(result)
		},
	}

	cmd.Flags().StringSliceVar(&initializerArgs, "initializer-args", nil, "Comma separated initialize() arguments")
	cmd.Flags().BoolVar(&skipInitializer, "skip-initializer", false, "Upgrade without calling initialize()")
	cmd.Flags().String("config-file", "", "Deployment config file (JSON or YAML)")
	addTxFlags(cmd)

	return cmd
}

// NewDeployCreateCmd creates the deploy-create command
func NewDeployCreateCmd() *cobra.Command {
	var standAlone bool

	cmd := &cobra.Command{
		Use:         "deploy-create <contract> [constructor-arg...]",
		Short:       "Deploy a contract with the factory's deployCreate",
		Args:        cobra.MinimumNArgs(1),
		Annotations: readsArtifacts(),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			result, err := app.DeployCreate.Run(cmd.Context(), usecase.RawDeployParams{
				Contract:        args[0],
				ConstructorArgs: args[1:],
				StandAlone:      standAlone,
			})
			if err != nil {
				return err
			}
			return render.NewRawRenderer(printer(cmd, app)).Render(result)
		},
	}

	cmd.Flags().BoolVar(&standAlone, "stand-alone", false, "The contract is not the logic of a proxy")
	addTxFlags(cmd)

	return cmd
}

// NewDeployCreate2Cmd creates the deploy-create2 command
func NewDeployCreate2Cmd() *cobra.Command {
	var (
		saltArg    string
		value      string
		standAlone bool
	)

	cmd := &cobra.Command{
		Use:         "deploy-create2 <contract> [constructor-arg...]",
		Short:       "Deploy a contract with the factory's deployCreate2",
		Args:        cobra.MinimumNArgs(1),
		Annotations: readsArtifacts(),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			wei := new(big.Int)
			if value != "" {
				if wei, err = parseAmount("value", value); err != nil {
					return err
				}
			}
			result, err := app.DeployCreate2.Run(cmd.Context(), usecase.RawDeployParams{
				Contract:        args[0],
				ConstructorArgs: args[1:],
				Salt:            saltArg,
				Value:           wei,
				StandAlone:      standAlone,
			})
			if err != nil {
				return err
			}
			return render.NewRawRenderer(printer(cmd, app)).Render(result)
		},
	}

	cmd.Flags().StringVar(&saltArg, "salt", "", "Salt name or 0x-prefixed bytes32 (defaults to the contract's salt)")
	cmd.Flags().StringVar(&value, "value", "", "Wei to send with the deployment")
	cmd.Flags().BoolVar(&standAlone, "stand-alone", false, "The contract is not the logic of a proxy")
	addTxFlags(cmd)

	return cmd
}

// NewDeployCreateAndRegisterCmd creates the deploy-create-and-register command
func NewDeployCreateAndRegisterCmd() *cobra.Command {
	var saltArg string

	cmd := &cobra.Command{
		Use:         "deploy-create-and-register <contract> [constructor-arg...]",
		Short:       "Deploy a contract and register it under its salt",
		Args:        cobra.MinimumNArgs(1),
		Annotations: readsArtifacts(),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			result, err := app.DeployCreateAndRegister.Run(cmd.Context(), usecase.RawDeployParams{
				Contract:        args[0],
				ConstructorArgs: args[1:],
				Salt:            saltArg,
			})
			if err != nil {
				return err
			}
			return render.NewRawRenderer(printer(cmd, app)).Render(result)
		},
	}

	cmd.Flags().StringVar(&saltArg, "salt", "", "Salt name or 0x-prefixed bytes32 (defaults to the contract's salt)")
	addTxFlags(cmd)

	return cmd
}

// NewDeployOnlyProxyCmd creates the deploy-only-proxy command
func NewDeployOnlyProxyCmd() *cobra.Command {
	var saltArg string

	cmd := &cobra.Command{
		Use:   "deploy-only-proxy [contract]",
		Short: "Deploy a proxy at a salt without logic",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			params := usecase.OnlyProxyParams{Salt: saltArg}
			if len(args) == 1 {
				params.Contract = args[0]
			}
			result, err := app.DeployOnlyProxy.Run(cmd.Context(), params)
			if err != nil {
				return err
			}
			return render.NewProxyRenderer(printer(cmd, app)).Render(result)
		},
	}

	cmd.Flags().StringVar(&saltArg, "salt", "", "Salt name or 0x-prefixed bytes32")
	_ = cmd.MarkFlagRequired("salt")
	addTxFlags(cmd)

	return cmd
}
