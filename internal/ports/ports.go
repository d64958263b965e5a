// Where: internal/ports/ports.go
// What: Collaborator interfaces consumed by policies and workflows.
// Why: Keep the core declarative; external calls stay behind ports.
package ports

import (
	"context"
	"errors"
)

// ErrZoneNotFound indicates the apex domain has no hosted zone. Zone lookup
// failure is fatal and unrecoverable at the policy layer.
var ErrZoneNotFound = errors.New("hosted zone not found")

// ZoneLookup resolves an apex domain to its hosted zone identifier.
// One-shot, blocking, non-cancelable beyond ctx; the core never retries.
type ZoneLookup interface {
	LookupZone(ctx context.Context, apexDomain string) (string, error)
}

// SyncSummary reports what a content sync changed.
type SyncSummary struct {
	Uploaded int
	Pruned   int
}

// ContentSyncer copies a local content tree into a store, optionally
// removing objects absent from the source.
type ContentSyncer interface {
	Sync(ctx context.Context, sourcePath, bucket string, prune bool) (SyncSummary, error)
}

// Entry is one published configuration key/value pair.
type Entry struct {
	Path  string
	Key   string
	Value string
}

// EntryPublisher writes configuration entries to a parameter backend.
type EntryPublisher interface {
	Publish(ctx context.Context, entries []Entry) error
}

// UserInterface receives human-facing progress output from workflows.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
}
