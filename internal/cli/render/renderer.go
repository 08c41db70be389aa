// Package render prints command results.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Renderer[T any] interface {
	Render(result T) error
}

// Printer writes results as text, or as indented JSON when json is set.
type Printer struct {
	out  io.Writer
	json bool
}

// NewPrinter creates a new result printer
func NewPrinter(out io.Writer, json bool) *Printer {
	return &Printer{out: out, json: json}
}

// JSON reports whether results are printed as JSON.
func (p *Printer) JSON() bool {
	return p.json
}

func (p *Printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Printer) printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// kv prints aligned "key: value" rows.
func (p *Printer) kv(rows [][2]string) {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignLeft}})
	for _, r := range rows {
		t.AppendRow(table.Row{color.New(color.FgWhite, color.Bold).Sprint(r[0] + ":"), r[1]})
	}
	p.println(t.Render())
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	if len(message) > 0 {
		message = strings.ToUpper(message[:1]) + message[1:]
	}
	return color.New(color.FgRed).Sprintf("❌ %s", message)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// deployTypeLabel renders "only-proxy" as "Only Proxy".
func deployTypeLabel(t domain.DeployType) string {
	if t == "" {
		return "-"
	}
	return cases.Title(language.English).String(strings.ReplaceAll(string(t), "-", " "))
}
