// Where: internal/workflows/config.go
// What: Account configuration workflow.
// Why: Resolve one account's record and optionally publish its entries.
package workflows

import (
	"context"
	"fmt"

	"github.com/websmith/websmith/internal/accountcfg"
	"github.com/websmith/websmith/internal/emit"
	"github.com/websmith/websmith/internal/graph"
	"github.com/websmith/websmith/internal/manifest"
	"github.com/websmith/websmith/internal/ports"
)

// ConfigRequest captures the inputs required for the Config workflow.
type ConfigRequest struct {
	SourcePath string
	AccountID  string
	Prefix     string
	Publish    bool
	Format     string
}

// ConfigResult returns the resolution plus the emitted parameter manifest.
type ConfigResult struct {
	Resolution *accountcfg.Resolution
	Manifest   []byte
}

// ConfigWorkflow resolves account configuration and hands the published
// entries to an EntryPublisher when publication is requested.
type ConfigWorkflow struct {
	Publisher     ports.EntryPublisher
	UserInterface ports.UserInterface
}

// NewConfigWorkflow constructs a ConfigWorkflow.
func NewConfigWorkflow(publisher ports.EntryPublisher, ui ports.UserInterface) ConfigWorkflow {
	return ConfigWorkflow{Publisher: publisher, UserInterface: ui}
}

// Run executes the Config workflow with the given request.
func (w ConfigWorkflow) Run(ctx context.Context, req ConfigRequest) (ConfigResult, error) {
	var result ConfigResult
	if req.AccountID == "" {
		return result, fmt.Errorf("account id is required")
	}

	resolution, err := accountcfg.ResolveFile(req.SourcePath, req.AccountID, req.Prefix)
	if err != nil {
		return result, err
	}
	result.Resolution = resolution

	// Mirror the entries into a parameter graph so the same manifest shape
	// covers both subsystems.
	builder := graph.New("account-" + req.AccountID)
	for _, entry := range resolution.Entries() {
		if _, err := builder.Declare(manifest.KindParameter, "param-"+entry.Key, manifest.ParameterProps{
			Name:  entry.Path,
			Value: entry.Serialized,
			Type:  "String",
		}); err != nil {
			return result, err
		}
	}
	document := emit.FromGraph("account-"+req.AccountID, builder.Resources(), nil)
	manifestBytes, err := document.MarshalManifest(req.Format)
	if err != nil {
		return result, err
	}
	result.Manifest = manifestBytes

	if req.Publish {
		if w.Publisher == nil {
			return result, fmt.Errorf("entry publisher not configured")
		}
		entries := make([]ports.Entry, 0, len(resolution.Keys()))
		for _, entry := range resolution.Entries() {
			entries = append(entries, ports.Entry{
				Path:  entry.Path,
				Key:   entry.Key,
				Value: entry.Serialized,
			})
		}
		if err := w.Publisher.Publish(ctx, entries); err != nil {
			return result, err
		}
		if w.UserInterface != nil {
			w.UserInterface.Success(fmt.Sprintf("Published %d entries under %s", len(entries), resolution.Prefix()))
		}
	}

	return result, nil
}
