// Where: internal/emit/summary_test.go
// What: Tests for the post-synth summary text.
// Why: Operators read this output; the values must appear as rendered.
package emit

import (
	"strings"
	"testing"
)

func TestRenderSummary(t *testing.T) {
	text, err := RenderSummary(SummaryData{
		Scope:         "www.example.com",
		ResourceCount: 7,
		Kinds:         []string{"bucket", "distribution"},
		Outputs: []Output{
			{Name: "siteUrl", Value: "https://www.example.com"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"Scope: www.example.com",
		"Resources: 7 (bucket, distribution)",
		"siteUrl:",
		"https://www.example.com",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q:\n%s", want, text)
		}
	}
}

func TestRenderSummaryWithoutOutputs(t *testing.T) {
	text, err := RenderSummary(SummaryData{Scope: "example.com", ResourceCount: 1, Kinds: []string{"bucket"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(text, "Outputs:") {
		t.Errorf("outputs section rendered with no outputs:\n%s", text)
	}
}
