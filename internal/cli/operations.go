package cli

import (
	"github.com/alicenet/factory-cli/internal/cli/render"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewRegisterValidatorsCmd creates the register-validators command
func NewRegisterValidatorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register-validators <address...>",
		Short: "Stake ALCA for each validator and register them with the ValidatorPool",
		Long: `Stake ALCA for each validator and register them with the ValidatorPool.

Two multicalls are sent through the factory. The first approves ALCA to
PublicStaking and mints one staked position per validator. The second approves
each position to the ValidatorPool and registers the validators.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			result, err := app.RegisterValidators.Run(cmd.Context(), usecase.ValidatorsParams{Validators: args})
			if err != nil {
				return err
			}
			return render.NewValidatorsRenderer(printer(cmd, app)).Render(result)
		},
	}
	addTxFlags(cmd)
	return cmd
}

// NewUnregisterValidatorsCmd creates the unregister-validators command
func NewUnregisterValidatorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unregister-validators <address...>",
		Short: "Unregister validators from the ValidatorPool",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			result, err := app.UnregisterValidators.Run(cmd.Context(), usecase.ValidatorsParams{Validators: args})
			if err != nil {
				return err
			}
			return render.NewCallRenderer(printer(cmd, app)).Render(result)
		},
	}
	addTxFlags(cmd)
	return cmd
}

// NewInitializeETHDKGCmd creates the initialize-ethdkg command
func NewInitializeETHDKGCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initialize-ethdkg",
		Short: "Start an ETHDKG round through the ValidatorPool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			result, err := app.InitializeETHDKG.Run(cmd.Context(), nil)
			if err != nil {
				return err
			}
			return render.NewCallRenderer(printer(cmd, app)).Render(result)
		},
	}
	addTxFlags(cmd)
	return cmd
}

func newALCATransferCmd(use, short string, run func(*cobra.Command, usecase.ALCATransferParams) (*usecase.ALCATransferResult, error)) *cobra.Command {
	var params usecase.ALCATransferParams

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := run(cmd, params)
			if err != nil {
				return err
			}
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			return render.NewALCARenderer(printer(cmd, app)).Render(result)
		},
	}

	cmd.Flags().StringVar(&params.To, "to", "", "Recipient address")
	cmd.Flags().StringVar(&params.Amount, "amount", "", "Amount in the token's smallest unit")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")
	addTxFlags(cmd)

	return cmd
}

// NewMintALCAToCmd creates the mint-alca-to command
func NewMintALCAToCmd() *cobra.Command {
	return newALCATransferCmd("mint-alca-to", "Mint ALCA to an account through the ALCAMinter",
		func(cmd *cobra.Command, params usecase.ALCATransferParams) (*usecase.ALCATransferResult, error) {
			app, err := getApp(cmd)
			if err != nil {
				return nil, err
			}
			return app.MintALCATo.Run(cmd.Context(), params)
		})
}

// NewTransferALCAFromFactoryCmd creates the transfer-alca-from-factory command
func NewTransferALCAFromFactoryCmd() *cobra.Command {
	return newALCATransferCmd("transfer-alca-from-factory", "Transfer ALCA held by the factory to an account",
		func(cmd *cobra.Command, params usecase.ALCATransferParams) (*usecase.ALCATransferResult, error) {
			app, err := getApp(cmd)
			if err != nil {
				return nil, err
			}
			return app.TransferALCAFromFactory.Run(cmd.Context(), params)
		})
}

// NewScheduleMaintenanceCmd creates the schedule-maintenance command
func NewScheduleMaintenanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule-maintenance",
		Short: "Schedule ValidatorPool maintenance after the next snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			result, err := app.ScheduleMaintenance.Run(cmd.Context(), nil)
			if err != nil {
				return err
			}
			return render.NewCallRenderer(printer(cmd, app)).Render(result)
		},
	}
	addTxFlags(cmd)
	return cmd
}

// NewPauseConsensusCmd creates the pause-consensus command
func NewPauseConsensusCmd() *cobra.Command {
	var params usecase.PauseConsensusParams

	cmd := &cobra.Command{
		Use:   "pause-consensus",
		Short: "Stop consensus at an AliceNet block height",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			result, err := app.PauseConsensus.Run(cmd.Context(), params)
			if err != nil {
				return err
			}
			return render.NewCallRenderer(printer(cmd, app)).Render(result)
		},
	}

	cmd.Flags().StringVar(&params.AliceNetHeight, "alicenet-height", "", "The block number after the latest block mined")
	_ = cmd.MarkFlagRequired("alicenet-height")
	addTxFlags(cmd)

	return cmd
}

// NewUpdateNodeVersionCmd creates the update-alicenet-node-version command
func NewUpdateNodeVersionCmd() *cobra.Command {
	var params usecase.NodeVersionParams

	cmd := &cobra.Command{
		Use:   "update-alicenet-node-version",
		Short: "Set the canonical AliceNet node version in Dynamics",
		Long: `Set the canonical AliceNet node version in Dynamics.

The new version takes effect --relative-epoch epochs from now, which must be
at least 2. The binary hash is a 0x-prefixed bytes32 or a string of at most
31 bytes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			result, err := app.UpdateNodeVersion.Run(cmd.Context(), params)
			if err != nil {
				return err
			}
			return render.NewCallRenderer(printer(cmd, app)).Render(result)
		},
	}

	cmd.Flags().Int64Var(&params.RelativeEpoch, "relative-epoch", -1, "Epochs from now when the version becomes canonical")
	cmd.Flags().Int64Var(&params.Major, "major", -1, "Major version")
	cmd.Flags().Int64Var(&params.Minor, "minor", -1, "Minor version")
	cmd.Flags().Int64Var(&params.Patch, "patch", -1, "Patch version")
	cmd.Flags().StringVar(&params.BinaryHash, "binary-hash", "", "Hash of the node binary")
	addTxFlags(cmd)

	return cmd
}
