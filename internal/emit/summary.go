// Where: internal/emit/summary.go
// What: Human-readable summary rendering.
// Why: Show resolved outputs and resource counts after a synth run.
package emit

import (
	"bytes"
	"embed"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	summaryOnce sync.Once
	summaryErr  error
	summaryTmpl *template.Template
)

// SummaryData feeds the summary template.
type SummaryData struct {
	Scope         string
	ResourceCount int
	Kinds         []string
	Outputs       []Output
}

// RenderSummary renders the post-synth summary text.
func RenderSummary(data SummaryData) (string, error) {
	summaryOnce.Do(func() {
		summaryTmpl, summaryErr = template.New("summary.tmpl").
			Funcs(sprig.FuncMap()).
			ParseFS(templateFS, "templates/summary.tmpl")
	})
	if summaryErr != nil {
		return "", summaryErr
	}

	var buf bytes.Buffer
	if err := summaryTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
