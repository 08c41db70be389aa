// Package verification submits deployed contracts to block explorers.
package verification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ForgeRunner runs a forge subcommand.
type ForgeRunner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// Verifier verifies contracts with forge verify-contract
type Verifier struct {
	config *config.RuntimeConfig
	forge  ForgeRunner
	log    *slog.Logger
}

// NewVerifier creates a new contract verifier
func NewVerifier(cfg *config.RuntimeConfig, forge ForgeRunner, log *slog.Logger) *Verifier {
	return &Verifier{
		config: cfg,
		forge:  forge,
		log:    log.With("component", "Verifier"),
	}
}

// Verify runs forge verify-contract for req.
func (v *Verifier) Verify(ctx context.Context, req usecase.VerifyRequest) error {
	args := v.verifyArgs(req)
	v.log.Info("verifying contract", "address", req.Address.Hex(), "contract", req.Contract.FullyQualifiedName())

	output, err := v.forge.Run(ctx, args...)
	if err != nil {
		v.log.Debug("forge verify-contract output", "output", string(output))
		return fmt.Errorf("verification of %s failed: %w", req.Address.Hex(), err)
	}
	return nil
}

func (v *Verifier) verifyArgs(req usecase.VerifyRequest) []string {
	args := []string{
		"verify-contract",
		req.Address.Hex(),
		req.Contract.FullyQualifiedName(),
		"--chain-id", fmt.Sprintf("%d", req.ChainID),
		"--watch",
	}

	if n := v.config.Network; n != nil {
		if n.ExplorerURL != "" {
			args = append(args, "--verifier-url", n.ExplorerURL)
		}
		if key := v.apiKey(n.Name); key != "" {
			args = append(args, "--etherscan-api-key", key)
		}
	}
	if len(req.ConstructorArgs) > 0 {
		args = append(args, "--constructor-args", hexutil.Encode(req.ConstructorArgs))
	}
	return args
}

// apiKey returns the [etherscan.<network>] key from foundry.toml.
func (v *Verifier) apiKey(network string) string {
	if v.config.FoundryConfig == nil {
		return ""
	}
	if e, ok := v.config.FoundryConfig.Etherscan[network]; ok {
		return strings.TrimSpace(e.Key)
	}
	return ""
}

var _ usecase.ContractVerifier = (*Verifier)(nil)
