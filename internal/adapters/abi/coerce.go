package abi

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/deployment"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// CoerceArgs converts config values into the Go values go-ethereum packs for
// inputs. Values are looked up by input name, falling back to position for
// unnamed inputs.
func CoerceArgs(kind domain.ArgKind, contract string, inputs abi.Arguments, args deployment.ArgSet) ([]any, error) {
	if len(args) != len(inputs) {
		return nil, domain.ArgCountError{Kind: kind, Expected: len(inputs), Got: len(args)}
	}

	values := make([]any, len(inputs))
	for i, input := range inputs {
		name := input.Name
		raw, ok := args.Get(name)
		if !ok || name == "" {
			name = args[i].Name
			raw = args[i].Value
		}
		if s, isStr := raw.(string); isStr && s == domain.UndefinedValue {
			return nil, domain.UndefinedArgError{Kind: kind, Contract: contract, Name: name}
		}
		v, err := CoerceValue(input.Type, raw)
		if err != nil {
			return nil, domain.InvalidArgError{Name: name, Type: input.Type.String(), Value: raw, Err: err}
		}
		values[i] = v
	}
	return values, nil
}

// CoerceValue converts a single value to the Go type go-ethereum expects for t.
func CoerceValue(t abi.Type, v any) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("value is null")
	}

	switch t.T {
	case abi.AddressTy:
		s, err := asString(v)
		if err != nil {
			return nil, err
		}
		if !common.IsHexAddress(s) {
			return nil, domain.ErrInvalidAddress
		}
		return common.HexToAddress(s), nil

	case abi.BoolTy:
		if b, ok := v.(bool); ok {
			return b, nil
		}
		s, err := asString(v)
		if err != nil {
			return nil, err
		}
		return strconv.ParseBool(strings.TrimSpace(s))

	case abi.StringTy:
		if s, ok := v.(string); ok {
			return s, nil
		}
		return fmt.Sprint(v), nil

	case abi.BytesTy:
		return asBytes(v)

	case abi.FixedBytesTy:
		b, err := asBytes(v)
		if err != nil {
			return nil, err
		}
		if len(b) != t.Size {
			return nil, fmt.Errorf("expected %d bytes, got %d", t.Size, len(b))
		}
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface(), nil

	case abi.IntTy, abi.UintTy:
		return coerceInteger(t, v)

	case abi.SliceTy, abi.ArrayTy:
		items, err := asList(v)
		if err != nil {
			return nil, err
		}
		var out reflect.Value
		if t.T == abi.ArrayTy {
			if len(items) != t.Size {
				return nil, fmt.Errorf("expected %d elements, got %d", t.Size, len(items))
			}
			out = reflect.New(t.GetType()).Elem()
		} else {
			out = reflect.MakeSlice(t.GetType(), len(items), len(items))
		}
		for i, item := range items {
			elem, err := CoerceValue(*t.Elem, item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out.Index(i).Set(reflect.ValueOf(elem))
		}
		return out.Interface(), nil
	}

	return nil, fmt.Errorf("unsupported argument type %s", t.String())
}

func coerceInteger(t abi.Type, v any) (any, error) {
	n, err := asBigInt(v)
	if err != nil {
		return nil, err
	}

	if t.T == abi.UintTy {
		if n.Sign() < 0 {
			return nil, fmt.Errorf("negative value for %s", t.String())
		}
		if n.BitLen() > t.Size {
			return nil, fmt.Errorf("value overflows %s", t.String())
		}
	} else {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
		minimum := new(big.Int).Neg(limit)
		if n.Cmp(minimum) < 0 || n.Cmp(limit) >= 0 {
			return nil, fmt.Errorf("value overflows %s", t.String())
		}
	}

	switch t.Size {
	case 8, 16, 32, 64:
		target := t.GetType()
		if t.T == abi.UintTy {
			return reflect.ValueOf(n.Uint64()).Convert(target).Interface(), nil
		}
		return reflect.ValueOf(n.Int64()).Convert(target).Interface(), nil
	}
	return n, nil
}

func asString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s), nil
	case fmt.Stringer:
		return s.String(), nil
	}
	return "", fmt.Errorf("expected a string, got %T", v)
}

func asBytes(v any) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case string:
		s := strings.TrimSpace(b)
		if s == "" || s == "0x" {
			return []byte{}, nil
		}
		return hexutil.Decode(s)
	}
	return nil, fmt.Errorf("expected 0x-prefixed hex, got %T", v)
}

func asBigInt(v any) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		return new(big.Int).Set(n), nil
	case int:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	case float64:
		if n != math.Trunc(n) {
			return nil, fmt.Errorf("%v is not an integer", n)
		}
		b, _ := big.NewFloat(n).Int(nil)
		return b, nil
	case json.Number:
		return asBigInt(n.String())
	case string:
		s := strings.TrimSpace(n)
		parsed, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return nil, fmt.Errorf("%q is not an integer", s)
		}
		return parsed, nil
	}
	return nil, fmt.Errorf("expected an integer, got %T", v)
}

// asList accepts a decoded sequence, a JSON array string, or a comma
// separated string as passed on the command line.
func asList(v any) ([]any, error) {
	switch l := v.(type) {
	case []any:
		return l, nil
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, nil
	case string:
		s := strings.TrimSpace(l)
		if s == "" {
			return []any{}, nil
		}
		if strings.HasPrefix(s, "[") {
			dec := json.NewDecoder(strings.NewReader(s))
			dec.UseNumber()
			var decoded []any
			if err := dec.Decode(&decoded); err != nil {
				return nil, fmt.Errorf("invalid array %q: %w", s, err)
			}
			return decoded, nil
		}
		parts := strings.Split(s, ",")
		out := make([]any, len(parts))
		for i, p := range parts {
			out[i] = strings.TrimSpace(p)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected an array, got %T", v)
}
