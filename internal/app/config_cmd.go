// Where: internal/app/config_cmd.go
// What: Config resolve command handler.
// Why: Thin adapter from CLI flags to the config workflow.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/websmith/websmith/internal/ports"
	"github.com/websmith/websmith/internal/ui"
	"github.com/websmith/websmith/internal/workflows"
)

func runConfigResolve(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	var publisher ports.EntryPublisher
	if cli.Config.Resolve.Publish != "" {
		if deps.PublisherFactory == nil {
			return exitWithError(out, fmt.Errorf("publisher factory not configured"))
		}
		built, err := deps.PublisherFactory(cli.Config.Resolve.Publish, cli.Config.Resolve.Table, cli.Config.Resolve.Endpoint)
		if err != nil {
			return exitWithError(out, err)
		}
		publisher = built
	}

	workflow := workflows.NewConfigWorkflow(publisher, console)
	result, err := workflow.Run(context.Background(), workflows.ConfigRequest{
		SourcePath: cli.Config.Resolve.Source,
		AccountID:  cli.Config.Resolve.Account,
		Prefix:     cli.Config.Resolve.Prefix,
		Publish:    cli.Config.Resolve.Publish != "",
		Format:     cli.Config.Resolve.Format,
	})
	if err != nil {
		return exitWithError(out, err)
	}

	console.Header("🔧", fmt.Sprintf("Configuration for account %s", result.Resolution.AccountID()))
	for _, entry := range result.Resolution.Entries() {
		console.Item(entry.Key, entry.Serialized)
	}
	fmt.Fprint(out, string(result.Manifest))
	return 0
}
