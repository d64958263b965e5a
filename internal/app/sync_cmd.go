// Where: internal/app/sync_cmd.go
// What: Sync command handler.
// Why: Thin adapter from CLI flags to the content syncer port.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/websmith/websmith/internal/ui"
	"github.com/websmith/websmith/internal/website"
)

func runSync(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	spec, err := website.LoadSpec(cli.Sync.Spec)
	if err != nil {
		return exitWithError(out, err)
	}
	resolved, err := website.Derive(spec)
	if err != nil {
		return exitWithError(out, err)
	}

	if resolved.CodeSourcePath == "" {
		return exitWithError(out, fmt.Errorf("spec %s has no codeSourcePath", cli.Sync.Spec))
	}
	bucket := cli.Sync.Bucket
	if bucket == "" {
		bucket = resolved.BucketName
	}
	if bucket == "" {
		return exitWithError(out, fmt.Errorf("no target bucket: pass --bucket or set bucketName in the spec"))
	}
	if deps.Syncer == nil {
		return exitWithError(out, fmt.Errorf("content syncer not configured"))
	}

	summary, err := deps.Syncer.Sync(context.Background(), resolved.CodeSourcePath, bucket, cli.Sync.Prune)
	if err != nil {
		return exitWithError(out, err)
	}
	console.Success(fmt.Sprintf("Synced %s to %s (%d uploaded, %d pruned)", resolved.CodeSourcePath, bucket, summary.Uploaded, summary.Pruned))
	return 0
}
