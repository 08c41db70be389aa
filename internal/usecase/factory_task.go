package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/alicenet/factory-cli/internal/domain/deployment"
	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// FactoryTask bundles the collaborators every state-changing factory use
// case needs: factory resolution, argument preparation, verification and
// address records.
type FactoryTask struct {
	config    *config.RuntimeConfig
	artifacts ArtifactIndex
	encoder   ArgEncoder
	client    FactoryClient
	gate      *ConfirmGate
	verifier  ContractVerifier
	records   AddressRecordStore
	progress  ProgressSink
	log       *slog.Logger
}

// NewFactoryTask creates the shared factory task helpers
func NewFactoryTask(
	cfg *config.RuntimeConfig,
	artifacts ArtifactIndex,
	encoder ArgEncoder,
	client FactoryClient,
	gate *ConfirmGate,
	verifier ContractVerifier,
	records AddressRecordStore,
	progress ProgressSink,
	log *slog.Logger,
) *FactoryTask {
	return &FactoryTask{
		config:    cfg,
		artifacts: artifacts,
		encoder:   encoder,
		client:    client,
		gate:      gate,
		verifier:  verifier,
		records:   records,
		progress:  progress,
		log:       log,
	}
}

// ContractArgs are the ways a caller can supply a contract's arguments:
// a deployment config entry, or positional values from the command line.
type ContractArgs struct {
	Entry           *deployment.DeploymentConfig
	ConstructorArgs []string
	InitializerArgs []string
	// SkipInitializer sends empty init call data even when the contract
	// has an initializer.
	SkipInitializer bool
}

// PreparedContract is a contract ready to be deployed.
type PreparedContract struct {
	Descriptor   *domain.ContractDescriptor
	Entry        *deployment.DeploymentConfig
	DeployCode   []byte
	InitCallData []byte
}

// Factory returns override, or the configured factory address.
func (t *FactoryTask) Factory(override *common.Address) (common.Address, error) {
	if override != nil {
		return *override, nil
	}
	if t.config.FactoryAddress != nil {
		return *t.config.FactoryAddress, nil
	}
	return common.Address{}, domain.ErrNoFactory
}

// Prepare resolves ref and encodes its creation code and init call data.
// Missing or undefined arguments fail here, before anything is sent.
func (t *FactoryTask) Prepare(ctx context.Context, ref string, args ContractArgs) (*PreparedContract, error) {
	desc, err := t.artifacts.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	entry := args.Entry
	if entry == nil {
		entry, err = deployment.ExtractContractInfo(desc)
		if err != nil {
			return nil, err
		}
		if err := fillPositional(desc, entry, args); err != nil {
			return nil, err
		}
	}

	if !args.SkipInitializer {
		if err := entry.CheckDefined(); err != nil {
			return nil, err
		}
	} else {
		for _, a := range entry.ConstructorArgs {
			if v, ok := a.Value.(string); ok && v == domain.UndefinedValue {
				return nil, domain.UndefinedArgError{Kind: domain.ConstructorArgs, Contract: desc.Name, Name: a.Name}
			}
		}
	}

	code, err := t.encoder.EncodeDeployCode(desc, entry.ConstructorArgs)
	if err != nil {
		return nil, err
	}

	initData := []byte{}
	if !args.SkipInitializer {
		initData, err = t.encoder.EncodeInitCallData(desc, entry.InitializerArgs)
		if err != nil {
			return nil, err
		}
	}

	return &PreparedContract{
		Descriptor:   desc,
		Entry:        entry,
		DeployCode:   code,
		InitCallData: initData,
	}, nil
}

// fillPositional applies command line values to a freshly extracted entry.
// Missing initializer args are reported before missing constructor args.
func fillPositional(desc *domain.ContractDescriptor, entry *deployment.DeploymentConfig, args ContractArgs) error {
	wantInit := !args.SkipInitializer && len(desc.InitializerInputs()) > 0
	if wantInit && len(args.InitializerArgs) == 0 {
		return domain.MissingArgsError{Kind: domain.InitializerArgs, Contract: desc.Name}
	}
	if len(desc.ConstructorInputs()) > 0 && len(args.ConstructorArgs) == 0 {
		return domain.MissingArgsError{Kind: domain.ConstructorArgs, Contract: desc.Name}
	}

	if wantInit {
		if err := deployment.PopulateInitializerArgs(args.InitializerArgs, entry); err != nil {
			return err
		}
	} else if !args.SkipInitializer && len(args.InitializerArgs) > 0 {
		return domain.InitializerArgsError{
			Contract: desc.Name,
			Reason:   fmt.Sprintf("contract has no %s function", domain.InitializerMethod),
		}
	}
	if err := deployment.PopulateConstructorArgs(args.ConstructorArgs, entry); err != nil {
		return err
	}
	return nil
}

// Salt returns the salt the descriptor derives. A salt carried by the entry
// must match it, so the proxy stays reachable by later upgrades.
func (t *FactoryTask) Salt(p *PreparedContract) (salt.Derived, error) {
	if p.Entry.Salt == "" {
		return salt.Derive(p.Descriptor)
	}
	s, err := p.Entry.ParsedSalt()
	if err != nil {
		return salt.Derived{}, err
	}
	return salt.VerifyScheme(p.Descriptor, s)
}

// Verify submits a contract for verification when --verify is set. Failures
// are reported and swallowed.
func (t *FactoryTask) Verify(ctx context.Context, addr common.Address, p *PreparedContract) {
	if !t.config.Verify || t.verifier == nil {
		return
	}
	ctorArgs, err := t.encoder.EncodeConstructorArgs(p.Descriptor, p.Entry.ConstructorArgs)
	if err == nil {
		var chainID uint64
		if t.config.Network != nil {
			chainID = t.config.Network.ChainID
		}
		err = t.verifier.Verify(ctx, VerifyRequest{
			Address:         addr,
			Contract:        p.Descriptor,
			ChainID:         chainID,
			ConstructorArgs: ctorArgs,
		})
	}
	if err != nil {
		t.log.Warn("verification failed", "address", addr.Hex(), "error", err)
		t.progress.Info(fmt.Sprintf("Failed to automatically verify %s please do it manually!", addr.Hex()))
	}
}

// Record appends a deployment record. Errors are logged, since the chain
// state is already final.
func (t *FactoryTask) Record(ctx context.Context, runID string, rec deployment.DeploymentRecord) {
	if t.records == nil {
		return
	}
	network := networkName(t.config)
	rec.RunID = runID
	if rec.RunID == "" {
		rec.RunID = t.records.NewRunID()
	}
	rec.Network = network
	if t.config.Network != nil {
		rec.ChainID = t.config.Network.ChainID
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	if err := t.records.Append(ctx, network, rec); err != nil {
		t.log.Warn("failed to write address record", "contract", rec.Contract, "error", err)
	}
}

// Info prints an informational line unless output is silenced.
func (t *FactoryTask) Info(format string, args ...any) {
	t.progress.Info(fmt.Sprintf(format, args...))
}

func networkName(cfg *config.RuntimeConfig) string {
	if cfg.Network == nil || cfg.Network.Name == "" {
		return "unknown"
	}
	return cfg.Network.Name
}

func argsJSON(args deployment.ArgSet) string {
	if args == nil {
		args = deployment.ArgSet{}
	}
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Sprint(args.Values())
	}
	return string(data)
}

func encodeHex(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return hexutil.Encode(b)
}

func addrPtr(a common.Address) *common.Address {
	return &a
}

// NewRunID returns an identifier for records written by one invocation.
func (t *FactoryTask) NewRunID() string {
	if t.records == nil {
		return ""
	}
	return t.records.NewRunID()
}
