// Where: internal/app/synth.go
// What: Synth command handler.
// Why: Thin adapter from CLI flags to the synth workflow.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/websmith/websmith/internal/ui"
	"github.com/websmith/websmith/internal/workflows"
)

func runSynth(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	workflow := workflows.NewSynthWorkflow(deps.Zones, console)

	result, err := workflow.Run(context.Background(), workflows.SynthRequest{
		SpecPath: cli.Synth.Spec,
		Format:   cli.Synth.Format,
	})
	if err != nil {
		return exitWithError(out, err)
	}

	if cli.Synth.Out != "" {
		if err := os.WriteFile(cli.Synth.Out, result.Manifest, 0o644); err != nil {
			return exitWithError(out, err)
		}
		console.Info(fmt.Sprintf("Manifest written to %s", cli.Synth.Out))
	} else {
		fmt.Fprint(out, string(result.Manifest))
	}

	fmt.Fprint(out, result.Summary)
	return 0
}
