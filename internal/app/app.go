// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/websmith/websmith/internal/meta"
	"github.com/websmith/websmith/internal/ports"
	"github.com/websmith/websmith/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. The structure enables swapping collaborator implementations
// in tests.
type Dependencies struct {
	Out              io.Writer
	Zones            ports.ZoneLookup
	Syncer           ports.ContentSyncer
	PublisherFactory PublisherFactory
}

// PublisherFactory builds an entry publisher for the requested backend
// ("ssm" or "local").
type PublisherFactory func(backend, table, endpoint string) (ports.EntryPublisher, error)

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	EnvFile string     `name:"env-file" help:"Path to .env file"`
	Synth   SynthCmd   `cmd:"" help:"Expand a website spec into a deploy manifest"`
	Sync    SyncCmd    `cmd:"" help:"Upload the spec's content tree into its bucket"`
	Config  ConfigCmd  `cmd:"" name:"config" help:"Resolve account configuration"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// SyncCmd uploads the spec's content source into a named bucket.
type SyncCmd struct {
	Spec   string `short:"s" default:"site.yaml" help:"Path to website spec (YAML or JSON)"`
	Bucket string `help:"Target bucket (default: the spec's bucketName)"`
	Prune  bool   `default:"true" negatable:"" help:"Delete objects absent from the source tree"`
}

// SynthCmd expands a website spec document.
type SynthCmd struct {
	Spec   string `short:"s" default:"site.yaml" help:"Path to website spec (YAML or JSON)"`
	Out    string `short:"o" help:"Write the manifest to a file instead of stdout"`
	Format string `default:"yaml" enum:"yaml,json" help:"Manifest format"`
}

// ConfigCmd groups account configuration subcommands.
type ConfigCmd struct {
	Resolve ConfigResolveCmd `cmd:"" help:"Resolve one account's configuration entries"`
}

// ConfigResolveCmd resolves and optionally publishes account entries.
type ConfigResolveCmd struct {
	Source   string `help:"Path to the account config source (default: ./cdk.context.json)"`
	Account  string `required:"" help:"Account id to resolve"`
	Prefix   string `help:"Publication prefix (default: /account-config/{account})"`
	Publish  string `enum:",ssm,local" default:"" help:"Publish entries to a backend"`
	Table    string `help:"Table name for the local backend"`
	Endpoint string `help:"Local table endpoint"`
	Format   string `default:"yaml" enum:"yaml,json" help:"Manifest format"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution. It parses the
// arguments and dispatches to the matching handler. Returns 0 on success,
// 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	cli := CLI{}
	parser, err := kong.New(&cli, kong.Name(meta.AppName), kong.Exit(func(int) {}))
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	}

	switch ctx.Command() {
	case "synth":
		return runSynth(cli, deps, out)
	case "sync":
		return runSync(cli, deps, out)
	case "config resolve":
		return runConfigResolve(cli, deps, out)
	case "version":
		fmt.Fprintln(out, version.GetVersion())
		return 0
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "Error: %v\n", err)
	return 1
}
