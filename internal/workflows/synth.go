// Where: internal/workflows/synth.go
// What: Synth workflow orchestration.
// Why: Keep CLI commands thin while hosting the pipeline in one place.
package workflows

import (
	"context"
	"fmt"
	"sort"

	"github.com/websmith/websmith/internal/emit"
	"github.com/websmith/websmith/internal/graph"
	"github.com/websmith/websmith/internal/ports"
	"github.com/websmith/websmith/internal/website"
)

// SynthRequest captures the inputs required for the Synth workflow.
type SynthRequest struct {
	SpecPath string
	Format   string
}

// SynthResult contains the emitted manifest and the projected outputs.
type SynthResult struct {
	Manifest []byte
	Outputs  website.Outputs
	Summary  string
}

// SynthWorkflow loads a website spec, expands it into a resource graph,
// projects outputs, and emits the deploy manifest.
type SynthWorkflow struct {
	Zones         ports.ZoneLookup
	UserInterface ports.UserInterface
}

// NewSynthWorkflow constructs a SynthWorkflow.
func NewSynthWorkflow(zones ports.ZoneLookup, ui ports.UserInterface) SynthWorkflow {
	return SynthWorkflow{Zones: zones, UserInterface: ui}
}

// Run executes the Synth workflow with the given request.
func (w SynthWorkflow) Run(ctx context.Context, req SynthRequest) (SynthResult, error) {
	var result SynthResult

	spec, err := website.LoadSpec(req.SpecPath)
	if err != nil {
		return result, err
	}

	resolved, err := website.Derive(spec)
	if err != nil {
		return result, err
	}

	builder := graph.New(resolved.DomainName)
	topology, err := website.BuildTopology(ctx, builder, resolved, w.Zones)
	if err != nil {
		return result, err
	}

	outputs, err := topology.ProjectOutputs()
	if err != nil {
		return result, err
	}
	result.Outputs = outputs

	resources := builder.Resources()
	document := emit.FromGraph(resolved.DomainName, resources, outputsToEmit(outputs))
	manifest, err := document.MarshalManifest(req.Format)
	if err != nil {
		return result, err
	}
	result.Manifest = manifest

	summary, err := emit.RenderSummary(emit.SummaryData{
		Scope:         resolved.DomainName,
		ResourceCount: len(resources),
		Kinds:         kindSet(resources),
		Outputs:       outputsToEmit(outputs),
	})
	if err != nil {
		return result, err
	}
	result.Summary = summary

	if w.UserInterface != nil {
		w.UserInterface.Success(fmt.Sprintf("Synthesized %d resources for %s", len(resources), resolved.DomainName))
	}
	return result, nil
}

func outputsToEmit(outputs website.Outputs) []emit.Output {
	out := []emit.Output{
		{Name: "siteUrl", Value: outputs.SiteURL},
		{Name: "bucketName", Value: outputs.BucketName},
		{Name: "distributionRef", Value: outputs.DistributionRef},
		{Name: "certificateRef", Value: outputs.CertificateRef},
	}
	if outputs.WebACLRef != "" {
		out = append(out, emit.Output{Name: "webAclRef", Value: outputs.WebACLRef})
	}
	if outputs.LogBucketName != "" {
		out = append(out, emit.Output{Name: "logBucketName", Value: outputs.LogBucketName})
	}
	return out
}

func kindSet(resources []graph.Resource) []string {
	seen := map[string]bool{}
	for _, resource := range resources {
		seen[resource.Kind] = true
	}
	kinds := make([]string, 0, len(seen))
	for kind := range seen {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
