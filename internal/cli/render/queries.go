package render

import (
	"fmt"
	"math/big"

	"github.com/alicenet/factory-cli/internal/domain/salt"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
)

// SaltRenderer prints get-bytes32-salt results.
type SaltRenderer struct{ *Printer }

// NewSaltRenderer creates a new salt renderer
func NewSaltRenderer(p *Printer) *SaltRenderer {
	return &SaltRenderer{p}
}

func (r *SaltRenderer) Render(d salt.Derived) error {
	if r.json {
		return r.writeJSON(map[string]any{"salt": d.Salt, "scheme": d.Scheme})
	}
	r.println(d.Salt.Hex())
	return nil
}

// PredictionRenderer prints predict-address results.
type PredictionRenderer struct{ *Printer }

// NewPredictionRenderer creates a new address prediction renderer
func NewPredictionRenderer(p *Printer) *PredictionRenderer {
	return &PredictionRenderer{p}
}

func (r *PredictionRenderer) Render(res *usecase.PredictedAddress) error {
	if r.json {
		return r.writeJSON(map[string]any{
			"salt":    res.Salt.Salt,
			"scheme":  res.Salt.Scheme,
			"factory": res.Factory,
			"proxy":   res.Proxy,
		})
	}
	r.kv([][2]string{
		{"Salt", res.Salt.Salt.Hex()},
		{"Factory", res.Factory.Hex()},
		{"Proxy", res.Proxy.Hex()},
	})
	return nil
}

// LookupRenderer prints lookup-contract-address results.
type LookupRenderer struct{ *Printer }

// NewLookupRenderer creates a new lookup renderer
func NewLookupRenderer(p *Printer) *LookupRenderer {
	return &LookupRenderer{p}
}

func (r *LookupRenderer) Render(res *usecase.LookupResult) error {
	if r.json {
		return r.writeJSON(map[string]any{"salt": res.Salt, "factory": res.Factory, "address": res.Address})
	}
	r.println(res.Address.Hex())
	return nil
}

// NetworkRenderer prints get-network results.
type NetworkRenderer struct{ *Printer }

// NewNetworkRenderer creates a new network renderer
func NewNetworkRenderer(p *Printer) *NetworkRenderer {
	return &NetworkRenderer{p}
}

func (r *NetworkRenderer) Render(info *usecase.NetworkInfo) error {
	if r.json {
		return r.writeJSON(map[string]any{
			"name":        info.Name,
			"chainId":     info.ChainID,
			"rpcUrl":      info.RPCURL,
			"blockNumber": info.BlockNumber,
		})
	}
	r.kv([][2]string{
		{"Network", info.Name},
		{"Chain ID", fmt.Sprint(info.ChainID)},
		{"RPC", info.RPCURL},
		{"Block", fmt.Sprint(info.BlockNumber)},
	})
	return nil
}

// Balance is an account's ALCA balance.
type Balance struct {
	Account common.Address
	Amount  *big.Int
}

// BalanceRenderer prints get-alca-balance results.
type BalanceRenderer struct{ *Printer }

// NewBalanceRenderer creates a new balance renderer
func NewBalanceRenderer(p *Printer) *BalanceRenderer {
	return &BalanceRenderer{p}
}

func (r *BalanceRenderer) Render(b Balance) error {
	if r.json {
		return r.writeJSON(map[string]any{"account": b.Account, "balance": b.Amount.String()})
	}
	r.printf("ALCA balance of %s: %s\n", b.Account.Hex(), b.Amount.String())
	return nil
}
