// Package salt derives the 32-byte salts used by the AliceNet factory and
// predicts the addresses those salts resolve to.
package salt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Salt is a bytes32 factory salt.
type Salt [32]byte

// Scheme identifies how a salt was derived.
type Scheme string

const (
	// SchemeDirect is the null-padded name.
	SchemeDirect Scheme = "direct"
	// SchemeTyped is keccak256(keccak256(name) || keccak256(type)).
	SchemeTyped Scheme = "typed"
)

// Derived pairs a salt with the scheme that produced it.
type Derived struct {
	Salt   Salt
	Scheme Scheme
}

// Hex returns the 0x-prefixed hex encoding.
func (s Salt) Hex() string {
	return hexutil.Encode(s[:])
}

func (s Salt) String() string {
	return s.Hex()
}

// Bytes32 returns the salt as a fixed array for ABI packing.
func (s Salt) Bytes32() [32]byte {
	return s
}

// IsZero reports whether every byte is zero.
func (s Salt) IsZero() bool {
	return s == Salt{}
}

// MarshalJSON encodes the salt as a hex string.
func (s Salt) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Hex())
}

// UnmarshalJSON decodes a hex string salt.
func (s *Salt) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Parse decodes a 0x-prefixed 32-byte hex string.
func Parse(str string) (Salt, error) {
	b, err := hexutil.Decode(str)
	if err != nil {
		return Salt{}, fmt.Errorf("invalid salt %q: %w", str, err)
	}
	if len(b) != 32 {
		return Salt{}, fmt.Errorf("invalid salt %q: expected 32 bytes, got %d", str, len(b))
	}
	var s Salt
	copy(s[:], b)
	return s, nil
}

// FormatBytes32String null-pads a UTF-8 string into 32 bytes. The last byte
// is reserved for the terminator, so at most 31 bytes fit.
func FormatBytes32String(text string) (Salt, error) {
	b := []byte(text)
	if len(b) > 31 {
		return Salt{}, fmt.Errorf("%w: %q is %d bytes", domain.ErrSaltTooLong, text, len(b))
	}
	var s Salt
	copy(s[:], b)
	return s, nil
}

// ParseBytes32String reverses FormatBytes32String.
func ParseBytes32String(s Salt) string {
	return strings.TrimRight(string(s[:]), "\x00")
}

// FromName returns the direct salt for name.
func FromName(name string) (Salt, error) {
	return FormatBytes32String(name)
}

// FromNameAndType returns keccak256(keccak256(pad32(name)) || keccak256(pad32(saltType))).
func FromNameAndType(name, saltType string) (Salt, error) {
	n, err := FormatBytes32String(name)
	if err != nil {
		return Salt{}, err
	}
	t, err := FormatBytes32String(saltType)
	if err != nil {
		return Salt{}, err
	}
	return Salt(crypto.Keccak256Hash(crypto.Keccak256(n[:]), crypto.Keccak256(t[:]))), nil
}

// Calculate picks the scheme from whether saltType is set.
func Calculate(name, saltType string) (Derived, error) {
	if saltType == "" {
		s, err := FromName(name)
		return Derived{Salt: s, Scheme: SchemeDirect}, err
	}
	s, err := FromNameAndType(name, saltType)
	return Derived{Salt: s, Scheme: SchemeTyped}, err
}

// Derive computes the salt a contract declares through its natspec tags.
func Derive(c *domain.ContractDescriptor) (Derived, error) {
	if c.Tags.Salt == "" {
		return Derived{}, fmt.Errorf("%w: contract %s declares no @custom:salt", domain.ErrMissingSalt, c.Name)
	}
	d, err := Calculate(c.Tags.Salt, c.Tags.SaltType)
	if err != nil {
		return Derived{}, fmt.Errorf("contract %s: %w", c.Name, err)
	}
	return d, nil
}

// VerifyScheme checks that a previously recorded salt still matches what the
// descriptor derives today.
func VerifyScheme(c *domain.ContractDescriptor, recorded Salt) (Derived, error) {
	d, err := Derive(c)
	if err != nil {
		return Derived{}, err
	}
	if d.Salt != recorded {
		return Derived{}, fmt.Errorf("%w: %s derives %s (%s) but %s is recorded",
			domain.ErrSaltSchemeMismatch, c.Name, d.Salt.Hex(), d.Scheme, recorded.Hex())
	}
	return d, nil
}

// ToCommonHash converts to go-ethereum's hash type.
func (s Salt) ToCommonHash() common.Hash {
	return common.Hash(s)
}
