// Where: internal/workflows/config_test.go
// What: Tests for the account configuration workflow.
// Why: Resolution, manifest mirroring, and optional publication must agree
//      on paths and serialized values.
package workflows

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/websmith/websmith/internal/emit"
	"github.com/websmith/websmith/internal/ports"
)

type fakePublisher struct {
	entries []ports.Entry
	err     error
}

func (f *fakePublisher) Publish(_ context.Context, entries []ports.Entry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entries...)
	return nil
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cdk.context.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestConfigWorkflowResolvesAndEmits(t *testing.T) {
	path := writeSource(t, `{"123456789012":{"stage":"dev","zone":"dev.example.com"}}`)
	workflow := NewConfigWorkflow(nil, nil)

	result, err := workflow.Run(context.Background(), ConfigRequest{
		SourcePath: path,
		AccountID:  "123456789012",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if got, _ := result.Resolution.Value("stage"); got.CanonicalText() != "dev" {
		t.Errorf("stage = %q", got.CanonicalText())
	}

	var document emit.Document
	if err := yaml.Unmarshal(result.Manifest, &document); err != nil {
		t.Fatalf("unmarshal manifest: %v", err)
	}
	if document.Scope != "account-123456789012" {
		t.Errorf("scope = %q", document.Scope)
	}
	ids := make([]string, 0, len(document.Resources))
	for _, resource := range document.Resources {
		ids = append(ids, resource.ID)
		if resource.Kind != "parameter" {
			t.Errorf("kind = %q", resource.Kind)
		}
	}
	if !reflect.DeepEqual(ids, []string{"param-stage", "param-zone"}) {
		t.Errorf("ids = %v", ids)
	}
}

func TestConfigWorkflowPublishes(t *testing.T) {
	path := writeSource(t, `{"123456789012":{"stage":"dev","ttl":300}}`)
	publisher := &fakePublisher{}
	workflow := NewConfigWorkflow(publisher, nil)

	_, err := workflow.Run(context.Background(), ConfigRequest{
		SourcePath: path,
		AccountID:  "123456789012",
		Publish:    true,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := []ports.Entry{
		{Path: "/account-config/123456789012/stage", Key: "stage", Value: "dev"},
		{Path: "/account-config/123456789012/ttl", Key: "ttl", Value: "300"},
	}
	if !reflect.DeepEqual(publisher.entries, want) {
		t.Errorf("published = %v", publisher.entries)
	}
}

func TestConfigWorkflowPublishRequiresPublisher(t *testing.T) {
	path := writeSource(t, `{"123456789012":{"stage":"dev"}}`)
	_, err := NewConfigWorkflow(nil, nil).Run(context.Background(), ConfigRequest{
		SourcePath: path,
		AccountID:  "123456789012",
		Publish:    true,
	})
	if err == nil {
		t.Fatal("expected error without a publisher")
	}
}

func TestConfigWorkflowPropagatesPublishFailure(t *testing.T) {
	path := writeSource(t, `{"123456789012":{"stage":"dev"}}`)
	publishErr := errors.New("store down")
	_, err := NewConfigWorkflow(&fakePublisher{err: publishErr}, nil).Run(context.Background(), ConfigRequest{
		SourcePath: path,
		AccountID:  "123456789012",
		Publish:    true,
	})
	if !errors.Is(err, publishErr) {
		t.Fatalf("expected publish error, got %v", err)
	}
}

func TestConfigWorkflowRequiresAccountID(t *testing.T) {
	_, err := NewConfigWorkflow(nil, nil).Run(context.Background(), ConfigRequest{})
	if err == nil {
		t.Fatal("expected error for missing account id")
	}
}

func TestConfigWorkflowCustomPrefix(t *testing.T) {
	path := writeSource(t, `{"123456789012":{"stage":"dev"}}`)
	result, err := NewConfigWorkflow(nil, nil).Run(context.Background(), ConfigRequest{
		SourcePath: path,
		AccountID:  "123456789012",
		Prefix:     "/shared",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	entry, err := result.Resolution.Entry("stage")
	if err != nil {
		t.Fatalf("entry: %v", err)
	}
	if entry.Path != "/shared/stage" {
		t.Errorf("path = %q", entry.Path)
	}
}
