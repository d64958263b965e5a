// Where: cmd/websmith/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/websmith/websmith/internal/app"
	"github.com/websmith/websmith/internal/ports"
	"github.com/websmith/websmith/internal/provisioner"
)

// buildDependencies constructs the runtime dependencies required by the
// CLI. AWS clients are created on first use so offline commands never
// touch the credential chain.
func buildDependencies() app.Dependencies {
	factory := provisioner.NewClientFactory()
	return app.Dependencies{
		Out:              os.Stdout,
		Zones:            lazyZoneLookup{factory: factory},
		Syncer:           lazyContentSyncer{factory: factory},
		PublisherFactory: publisherFactory(factory),
	}
}

type lazyZoneLookup struct {
	factory provisioner.ClientFactory
}

func (l lazyZoneLookup) LookupZone(ctx context.Context, apexDomain string) (string, error) {
	api, err := l.factory.Route53(ctx)
	if err != nil {
		return "", err
	}
	return provisioner.NewZoneLookup(api).LookupZone(ctx, apexDomain)
}

type lazyContentSyncer struct {
	factory provisioner.ClientFactory
}

func (l lazyContentSyncer) Sync(ctx context.Context, sourcePath, bucket string, prune bool) (ports.SyncSummary, error) {
	api, err := l.factory.S3(ctx)
	if err != nil {
		return ports.SyncSummary{}, err
	}
	return provisioner.NewContentSyncer(api).Sync(ctx, sourcePath, bucket, prune)
}

func publisherFactory(factory provisioner.ClientFactory) app.PublisherFactory {
	return func(backend, table, endpoint string) (ports.EntryPublisher, error) {
		ctx := context.Background()
		switch backend {
		case "ssm":
			api, err := factory.SSM(ctx)
			if err != nil {
				return nil, err
			}
			return provisioner.NewParameterPublisher(api), nil
		case "local":
			api, err := factory.DynamoDB(ctx, endpoint)
			if err != nil {
				return nil, err
			}
			return provisioner.NewTablePublisher(api, table), nil
		default:
			return nil, fmt.Errorf("unknown publish backend %q", backend)
		}
	}
}
