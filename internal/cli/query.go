package cli

import (
	"github.com/alicenet/factory-cli/internal/cli/render"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

// NewGetSaltCmd creates the get-bytes32-salt command
func NewGetSaltCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "get-bytes32-salt <contract>",
		Short:       "Print the salt a contract derives from its natspec",
		Args:        cobra.ExactArgs(1),
		Annotations: readsArtifacts(),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			derived, err := app.GetSalt.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return render.NewSaltRenderer(printer(cmd, app)).Render(derived)
		},
	}
}

// NewPredictAddressCmd creates the predict-address command
func NewPredictAddressCmd() *cobra.Command {
	var params usecase.PredictAddressParams

	cmd := &cobra.Command{
		Use:   "predict-address",
		Short: "Predict the proxy address of a salt without touching the chain",
		Long: `Predict the proxy address the factory will create for a salt.

Examples:
  alicenet-factory predict-address --salt ALCA
  alicenet-factory predict-address --salt ValidatorPool --salt-type Staking`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			result, err := app.PredictAddress.Run(cmd.Context(), params)
			if err != nil {
				return err
			}
			return render.NewPredictionRenderer(printer(cmd, app)).Render(result)
		},
	}

	cmd.Flags().StringVar(&params.Name, "salt", "", "Salt name")
	cmd.Flags().StringVar(&params.SaltType, "salt-type", "", "Salt type for typed salts")
	_ = cmd.MarkFlagRequired("salt")
	addReadFlags(cmd)

	return cmd
}

// NewLookupContractAddressCmd creates the lookup-contract-address command
func NewLookupContractAddressCmd() *cobra.Command {
	var saltArg string

	cmd := &cobra.Command{
		Use:   "lookup-contract-address",
		Short: "Look up the address the factory registered for a salt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			result, err := app.LookupContractAddress.Run(cmd.Context(), usecase.LookupParams{Salt: saltArg})
			if err != nil {
				return err
			}
			return render.NewLookupRenderer(printer(cmd, app)).Render(result)
		},
	}

	cmd.Flags().StringVar(&saltArg, "salt", "", "Salt name or 0x-prefixed bytes32")
	_ = cmd.MarkFlagRequired("salt")
	addReadFlags(cmd)

	return cmd
}

// NewGetNetworkCmd creates the get-network command
func NewGetNetworkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-network",
		Short: "Print the resolved network and its chain ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			info, err := app.GetNetwork.Run(cmd.Context())
			if err != nil {
				return err
			}
			return render.NewNetworkRenderer(printer(cmd, app)).Render(info)
		},
	}
}

// NewGetALCABalanceCmd creates the get-alca-balance command
func NewGetALCABalanceCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "get-alca-balance",
		Short: "Print an account's ALCA balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			balance, err := app.GetALCABalance.Run(cmd.Context(), account, nil)
			if err != nil {
				return err
			}
			return render.NewBalanceRenderer(printer(cmd, app)).Render(render.Balance{
				Account: common.HexToAddress(account),
				Amount:  balance,
			})
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Account address")
	_ = cmd.MarkFlagRequired("account")
	addReadFlags(cmd)

	return cmd
}
