package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrContractNotFound is returned when a contract artifact can't be found
	ErrContractNotFound = errors.New("contract not found")

	// ErrMissingSalt is returned when a contract declares no @custom:salt tag
	ErrMissingSalt = errors.New("missing salt")

	// ErrMissingDeployType is returned when a contract declares no @custom:deploy-type tag
	ErrMissingDeployType = errors.New("missing deploy-type")

	// ErrSaltTooLong is returned when a salt name does not fit in 31 bytes
	ErrSaltTooLong = errors.New("salt name too long for bytes32")

	// ErrAddressMismatch is returned when an observed address differs from the predicted one
	ErrAddressMismatch = errors.New("address mismatch")

	// ErrTransactionReverted is returned when a receipt reports failure
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrAborted is returned when the operator declines a confirmation prompt
	ErrAborted = errors.New("aborted by user")

	// ErrProxyExists is returned when a proxy is already registered at a salt
	ErrProxyExists = errors.New("proxy already exists")

	// ErrProxyNotFound is returned when no proxy is registered at a salt
	ErrProxyNotFound = errors.New("proxy not found")

	// ErrSaltSchemeMismatch is returned when a salt is re-derived with a different scheme
	ErrSaltSchemeMismatch = errors.New("salt scheme mismatch")

	// ErrEventNotFound is returned when an expected event is missing from a receipt
	ErrEventNotFound = errors.New("event not found")

	// ErrNoFactory is returned when a task requires a factory address and none is configured
	ErrNoFactory = errors.New("factory address not configured")
)

// ArgKind distinguishes constructor and initializer arguments in errors.
type ArgKind string

const (
	ConstructorArgs ArgKind = "constructorArgs"
	InitializerArgs ArgKind = "initializerArgs"
)

// MissingArgsError is returned when a contract takes arguments but none were supplied.
type MissingArgsError struct {
	Kind     ArgKind
	Contract string
}

func (e MissingArgsError) Error() string {
	return fmt.Sprintf("%s must be specified for contract: %s", e.Kind, e.Contract)
}

// ArgCountError is returned when positional args do not match the ABI inputs.
type ArgCountError struct {
	Kind     ArgKind
	Expected int
	Got      int
}

func (e ArgCountError) Error() string {
	kind := "constructor"
	if e.Kind == InitializerArgs {
		kind = "initializer"
	}
	return fmt.Sprintf("Incorrect number of %s arguments provided. Expected %d but got %d", kind, e.Expected, e.Got)
}

// InitializerArgsError is returned when initializer args cannot be packed.
type InitializerArgsError struct {
	Contract string
	Reason   string
}

func (e InitializerArgsError) Error() string {
	return fmt.Sprintf("Initializer args provided do not match the initializer function of %s: %s", e.Contract, e.Reason)
}

// UndefinedArgError is returned when a config template placeholder was never replaced.
type UndefinedArgError struct {
	Kind     ArgKind
	Contract string
	Name     string
}

func (e UndefinedArgError) Error() string {
	return fmt.Sprintf("%s.%s of %s is still %s", e.Kind, e.Name, e.Contract, UndefinedValue)
}

// InvalidArgError is returned when a value cannot be converted to its ABI type.
type InvalidArgError struct {
	Name  string
	Type  string
	Value any
	Err   error
}

func (e InvalidArgError) Error() string {
	return fmt.Sprintf("invalid value %v for argument %s (%s): %v", e.Value, e.Name, e.Type, e.Err)
}

func (e InvalidArgError) Unwrap() error {
	return e.Err
}

// AmbiguousContractError is returned when a short name matches several artifacts.
type AmbiguousContractError struct {
	Query   string
	Matches []string
}

func (e AmbiguousContractError) Error() string {
	matches := make([]string, len(e.Matches))
	copy(matches, e.Matches)
	sort.Strings(matches)

	var suggestions []string
	for _, m := range matches {
		suggestions = append(suggestions, "  - "+m)
	}
	return fmt.Sprintf("multiple contracts found matching %q - use full path:contract format to disambiguate:\n%s",
		e.Query, strings.Join(suggestions, "\n"))
}

// ContractNotFoundError carries fuzzy suggestions for an unknown contract name.
type ContractNotFoundError struct {
	Query       string
	Suggestions []string
}

func (e ContractNotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("contract %q not found in artifacts", e.Query)
	}
	return fmt.Sprintf("contract %q not found in artifacts, did you mean: %s", e.Query, strings.Join(e.Suggestions, ", "))
}

func (e ContractNotFoundError) Unwrap() error {
	return ErrContractNotFound
}
