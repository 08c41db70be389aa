package render

import (
	"fmt"
	"strings"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
)

var (
	_ Renderer[*usecase.FactoryDeployment]     = (*FactoryRenderer)(nil)
	_ Renderer[*usecase.ProxyDeployment]       = (*ProxyRenderer)(nil)
	_ Renderer[*usecase.RawDeployment]         = (*RawRenderer)(nil)
	_ Renderer[*usecase.DeployContractsResult] = (*DeployContractsRenderer)(nil)
)

// FactoryRenderer prints deploy-factory results.
type FactoryRenderer struct{ *Printer }

// NewFactoryRenderer creates a new factory deployment renderer
func NewFactoryRenderer(p *Printer) *FactoryRenderer {
	return &FactoryRenderer{p}
}

func (r *FactoryRenderer) Render(res *usecase.FactoryDeployment) error {
	if r.json {
		return r.writeJSON(map[string]any{
			"factory": res.Factory,
			"owner":   res.Owner,
			"alca":    res.ALCA,
			"gasUsed": res.GasUsed,
			"txHash":  res.TxHash,
		})
	}
	r.kv([][2]string{
		{"Factory", res.Factory.Hex()},
		{"Owner", res.Owner.Hex()},
		{"ALCA", res.ALCA.Hex()},
		{"Gas used", fmt.Sprint(res.GasUsed)},
		{"Tx", res.TxHash.Hex()},
	})
	return nil
}

// ProxyRenderer prints proxy deployments and upgrades.
type ProxyRenderer struct{ *Printer }

// NewProxyRenderer creates a new proxy deployment renderer
func NewProxyRenderer(p *Printer) *ProxyRenderer {
	return &ProxyRenderer{p}
}

func (r *ProxyRenderer) Render(res *usecase.ProxyDeployment) error {
	if r.json {
		return r.writeJSON(map[string]any{
			"contract":     res.Contract,
			"factory":      res.Factory,
			"logic":        res.Logic,
			"proxy":        res.Proxy,
			"salt":         res.Salt,
			"saltScheme":   res.Scheme,
			"gasUsed":      res.GasUsed,
			"txHashes":     res.TxHashes,
			"usedFallback": res.UsedFallback,
			"proxyCreated": res.ProxyCreated,
		})
	}
	rows := [][2]string{
		{"Contract", res.Contract},
		{"Proxy", res.Proxy.Hex()},
		{"Logic", res.Logic.Hex()},
		{"Salt", res.Salt.Hex()},
		{"Gas used", fmt.Sprint(res.GasUsed)},
	}
	if res.Scheme != "" {
		rows = append(rows, [2]string{"Salt scheme", string(res.Scheme)})
	}
	rows = append(rows, [2]string{"Transactions", hashList(res.TxHashes)})
	r.kv(rows)
	if res.UsedFallback {
		r.println(FormatWarning("multicall exceeded the gas limit, logic was deployed in a separate transaction"))
	}
	return nil
}

// RawRenderer prints deploy-create, deploy-create2 and create-and-register results.
type RawRenderer struct{ *Printer }

// NewRawRenderer creates a new raw deployment renderer
func NewRawRenderer(p *Printer) *RawRenderer {
	return &RawRenderer{p}
}

func (r *RawRenderer) Render(res *usecase.RawDeployment) error {
	if r.json {
		out := map[string]any{
			"contract": res.Contract,
			"factory":  res.Factory,
			"address":  res.Address,
			"gasUsed":  res.GasUsed,
			"txHash":   res.TxHash,
		}
		if res.Salt != nil {
			out["salt"] = *res.Salt
		}
		return r.writeJSON(out)
	}
	rows := [][2]string{
		{"Contract", res.Contract},
		{"Address", res.Address.Hex()},
	}
	if res.Salt != nil {
		rows = append(rows, [2]string{"Salt", res.Salt.Hex()})
	}
	rows = append(rows,
		[2]string{"Gas used", fmt.Sprint(res.GasUsed)},
		[2]string{"Tx", res.TxHash.Hex()},
	)
	r.kv(rows)
	return nil
}

// DeployContractsRenderer prints the summary table of a deploy-contracts run.
type DeployContractsRenderer struct{ *Printer }

// NewDeployContractsRenderer creates a new deploy-contracts renderer
func NewDeployContractsRenderer(p *Printer) *DeployContractsRenderer {
	return &DeployContractsRenderer{p}
}

func (r *DeployContractsRenderer) Render(res *usecase.DeployContractsResult) error {
	if r.json {
		return r.writeJSON(map[string]any{
			"runId":           res.RunID,
			"factory":         res.Factory,
			"factoryDeployed": res.FactoryDeployed,
			"deployed": lo.Map(res.Deployed, func(o usecase.ContractOutcome, _ int) map[string]any {
				return map[string]any{
					"name":       o.Name,
					"deployType": o.DeployType,
					"address":    o.Address,
					"logic":      o.Logic,
					"gasUsed":    o.GasUsed,
				}
			}),
			"skipped": lo.Map(res.Skipped, func(s usecase.SkippedContract, _ int) map[string]any {
				return map[string]any{"name": s.Name, "existing": s.Existing}
			}),
			"totalGas": res.TotalGas,
		})
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Contract", "Type", "Address", "Logic", "Gas"})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 5, Align: text.AlignRight}})
	if res.FactoryDeployed {
		t.AppendRow(table.Row{domain.FactoryContractName, "Factory", res.Factory.Hex(), "-", "-"})
	}
	for _, o := range res.Deployed {
		logic := "-"
		if o.Logic != (common.Address{}) {
			logic = o.Logic.Hex()
		}
		t.AppendRow(table.Row{o.Name, deployTypeLabel(o.DeployType), o.Address.Hex(), logic, o.GasUsed})
	}
	for _, s := range res.Skipped {
		t.AppendRow(table.Row{s.Name, "Skipped", s.Existing.Hex(), "-", "-"})
	}
	t.AppendFooter(table.Row{"", "", "", "Total", res.TotalGas})
	r.println(t.Render())
	r.println(FormatSuccess(fmt.Sprintf("Deployed %d contracts on factory %s, total gas: %d",
		len(res.Deployed), res.Factory.Hex(), res.TotalGas)))
	return nil
}

func hashList(hashes []common.Hash) string {
	if len(hashes) == 0 {
		return "-"
	}
	return strings.Join(lo.Map(hashes, func(h common.Hash, _ int) string { return h.Hex() }), "\n")
}
