package render

import (
	"github.com/alicenet/factory-cli/internal/usecase"
)

// GenerateConfigsRenderer prints generate-deployment-configs results. In
// list mode the template itself is printed.
type GenerateConfigsRenderer struct{ *Printer }

// NewGenerateConfigsRenderer creates a new deployment config renderer
func NewGenerateConfigsRenderer(p *Printer) *GenerateConfigsRenderer {
	return &GenerateConfigsRenderer{p}
}

func (r *GenerateConfigsRenderer) Render(res *usecase.GenerateConfigsResult) error {
	if !res.Written {
		return r.writeJSON(res.File)
	}
	if r.json {
		return r.writeJSON(map[string]any{
			"path":      res.Path,
			"contracts": res.File.Keys(),
			"undefined": res.Undefined,
		})
	}
	r.println(FormatSuccess("Wrote " + res.Path))
	for _, name := range res.Undefined {
		r.println(FormatWarning(name + " has undefined values"))
	}
	return nil
}
