package render

import (
	"fmt"
	"math/big"

	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
)

// CallRenderer prints the outcome of factory callAny operations.
type CallRenderer struct{ *Printer }

// NewCallRenderer creates a new call renderer
func NewCallRenderer(p *Printer) *CallRenderer {
	return &CallRenderer{p}
}

func (r *CallRenderer) Render(res *usecase.CallResult) error {
	if r.json {
		return r.writeJSON(callJSON(res))
	}
	r.kv([][2]string{
		{"Block", fmt.Sprint(res.Block)},
		{"Gas used", fmt.Sprint(res.GasUsed)},
		{"Transactions", hashList(res.TxHashes)},
	})
	return nil
}

// ValidatorsRenderer prints register-validators results.
type ValidatorsRenderer struct{ *Printer }

// NewValidatorsRenderer creates a new validators renderer
func NewValidatorsRenderer(p *Printer) *ValidatorsRenderer {
	return &ValidatorsRenderer{p}
}

func (r *ValidatorsRenderer) Render(res *usecase.RegisterValidatorsResult) error {
	if r.json {
		out := callJSON(&res.CallResult)
		out["validators"] = res.Validators
		out["tokenIds"] = lo.Map(res.TokenIDs, func(id *big.Int, _ int) string { return id.String() })
		out["stakeAmount"] = res.StakeAmount.String()
		return r.writeJSON(out)
	}
	rows := make([][2]string, 0, len(res.Validators)+3)
	for i, v := range res.Validators {
		id := "-"
		if i < len(res.TokenIDs) {
			id = res.TokenIDs[i].String()
		}
		rows = append(rows, [2]string{v.Hex(), "stake NFT " + id})
	}
	rows = append(rows,
		[2]string{"Stake", res.StakeAmount.String()},
		[2]string{"Gas used", fmt.Sprint(res.GasUsed)},
		[2]string{"Block", fmt.Sprint(res.Block)},
	)
	r.kv(rows)
	return nil
}

// ALCARenderer prints mint-alca-to and transfer-alca-from-factory results.
type ALCARenderer struct{ *Printer }

// NewALCARenderer creates a new ALCA transfer renderer
func NewALCARenderer(p *Printer) *ALCARenderer {
	return &ALCARenderer{p}
}

func (r *ALCARenderer) Render(res *usecase.ALCATransferResult) error {
	if r.json {
		out := callJSON(&res.CallResult)
		out["alca"] = res.Address
		out["to"] = res.To
		out["amount"] = bigString(res.Amount)
		out["before"] = bigString(res.Before)
		out["after"] = bigString(res.After)
		out["minted"] = bigString(res.Minted)
		return r.writeJSON(out)
	}
	r.kv([][2]string{
		{"To", res.To.Hex()},
		{"Amount", bigString(res.Amount)},
		{"Balance before", bigString(res.Before)},
		{"Balance after", bigString(res.After)},
		{"Gas used", fmt.Sprint(res.GasUsed)},
	})
	return nil
}

func callJSON(res *usecase.CallResult) map[string]any {
	return map[string]any{
		"block":    res.Block,
		"gasUsed":  res.GasUsed,
		"txHashes": lo.Map(res.TxHashes, func(h common.Hash, _ int) string { return h.Hex() }),
	}
}

func bigString(v *big.Int) string {
	if v == nil {
		return "-"
	}
	return v.String()
}
