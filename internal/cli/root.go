package cli

import (
	"context"
	"fmt"
	"math/big"

	"github.com/alicenet/factory-cli/internal/app"
	"github.com/alicenet/factory-cli/internal/cli/render"
	"github.com/alicenet/factory-cli/internal/config"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// skipsApp lists commands that run without a project.
var skipsApp = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "alicenet-factory",
		Short: "Deploy and operate AliceNet contracts through the AliceNet factory",
		Long: `alicenet-factory deploys AliceNet contracts from Foundry artifacts through the
AliceNetFactory contract. Salts come from the @custom:salt natspec tags, so
proxy addresses are known before anything is sent.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsApp[cmd.Name()] {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}
			cmd.SetContext(ctx)

			if needsArtifacts(cmd) {
				return appInstance.BuildProject.Run(ctx, false)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")
	rootCmd.PersistentFlags().StringP("namespace", "s", "", "Namespace in alicenet.toml (defaults to 'default')")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use: a foundry.toml rpc endpoint name or an RPC URL")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "factory",
		Title: "Factory Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "query",
		Title: "Query Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "operations",
		Title: "Operational Commands",
	})

	for _, cmd := range []*cobra.Command{
		NewDeployFactoryCmd(),
		NewDeployContractsCmd(),
		NewGenerateDeploymentConfigsCmd(),
		NewDeployUpgradeableProxyCmd(),
		NewUpgradeProxyCmd(),
		NewDeployCreateCmd(),
		NewDeployCreate2Cmd(),
		NewDeployCreateAndRegisterCmd(),
		NewDeployOnlyProxyCmd(),
	} {
		cmd.GroupID = "factory"
		rootCmd.AddCommand(cmd)
	}

	for _, cmd := range []*cobra.Command{
		NewGetSaltCmd(),
		NewPredictAddressCmd(),
		NewLookupContractAddressCmd(),
		NewGetNetworkCmd(),
		NewGetALCABalanceCmd(),
	} {
		cmd.GroupID = "query"
		rootCmd.AddCommand(cmd)
	}

	for _, cmd := range []*cobra.Command{
		NewRegisterValidatorsCmd(),
		NewUnregisterValidatorsCmd(),
		NewInitializeETHDKGCmd(),
		NewMintALCAToCmd(),
		NewTransferALCAFromFactoryCmd(),
		NewScheduleMaintenanceCmd(),
		NewPauseConsensusCmd(),
		NewUpdateNodeVersionCmd(),
	} {
		cmd.GroupID = "operations"
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// artifactsAnnotation marks commands that read Foundry artifacts.
const artifactsAnnotation = "artifacts"

func needsArtifacts(cmd *cobra.Command) bool {
	_, ok := cmd.Annotations[artifactsAnnotation]
	return ok
}

func readsArtifacts() map[string]string {
	return map[string]string{artifactsAnnotation: "true"}
}

// addTxFlags adds the flags shared by state-changing commands.
func addTxFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64("wait-confirmation", 0, "Extra blocks to wait for after a transaction is mined")
	cmd.Flags().Bool("verify", false, "Verify deployed contracts with forge verify-contract")
	cmd.Flags().Bool("skip-checks", false, "Do not ask for confirmation")
	cmd.Flags().String("sender", "", "Account from alicenet.toml [accounts] to sign with")
	cmd.Flags().String("factory-address", "", "AliceNetFactory address (overrides the namespace factory)")
	cmd.Flags().Bool("build", false, "Run forge build first")
}

// addReadFlags adds the flags shared by read-only factory queries.
func addReadFlags(cmd *cobra.Command) {
	cmd.Flags().String("factory-address", "", "AliceNetFactory address (overrides the namespace factory)")
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}

func printer(cmd *cobra.Command, a *app.App) *render.Printer {
	return render.NewPrinter(cmd.OutOrStdout(), a.Config.JSON)
}

// parseAmount parses a base 10 or 0x-prefixed integer.
func parseAmount(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}
