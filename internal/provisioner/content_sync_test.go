// Where: internal/provisioner/content_sync_test.go
// What: Tests for the local-tree content syncer.
// Why: Upload keys and prune behavior drive what the site actually serves.
package provisioner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

type fakeS3 struct {
	existing []string
	puts     map[string][]byte
	deleted  []string
	putErr   error
}

func newFakeS3(existing ...string) *fakeS3 {
	return &fakeS3{existing: existing, puts: map[string][]byte{}}
}

func (f *fakeS3) ListKeys(_ context.Context, _ string) ([]string, error) {
	return f.existing, nil
}

func (f *fakeS3) PutObject(_ context.Context, _ string, key string, body []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.puts[key] = append([]byte(nil), body...)
	return nil
}

func (f *fakeS3) DeleteObject(_ context.Context, _ string, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return root
}

func TestSyncUploadsTreeWithSlashKeys(t *testing.T) {
	root := writeTree(t, map[string]string{
		"index.html":    "<html/>",
		"assets/app.js": "console.log(1)",
	})
	api := newFakeS3()

	summary, err := NewContentSyncer(api).Sync(context.Background(), root, "site-bucket", false)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if summary.Uploaded != 2 || summary.Pruned != 0 {
		t.Errorf("summary = %+v", summary)
	}

	keys := make([]string, 0, len(api.puts))
	for key := range api.puts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if !reflect.DeepEqual(keys, []string{"assets/app.js", "index.html"}) {
		t.Errorf("keys = %v", keys)
	}
	if string(api.puts["index.html"]) != "<html/>" {
		t.Errorf("body = %q", api.puts["index.html"])
	}
}

func TestSyncPrunesOrphans(t *testing.T) {
	root := writeTree(t, map[string]string{"index.html": "new"})
	api := newFakeS3("index.html", "stale/old.js")

	summary, err := NewContentSyncer(api).Sync(context.Background(), root, "site-bucket", true)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if summary.Uploaded != 1 || summary.Pruned != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if !reflect.DeepEqual(api.deleted, []string{"stale/old.js"}) {
		t.Errorf("deleted = %v", api.deleted)
	}
}

func TestSyncWithoutPruneKeepsOrphans(t *testing.T) {
	root := writeTree(t, map[string]string{"index.html": "new"})
	api := newFakeS3("stale/old.js")

	if _, err := NewContentSyncer(api).Sync(context.Background(), root, "site-bucket", false); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if len(api.deleted) != 0 {
		t.Errorf("deleted = %v", api.deleted)
	}
}

func TestSyncFailures(t *testing.T) {
	root := writeTree(t, map[string]string{"index.html": "x"})

	if _, err := NewContentSyncer(newFakeS3()).Sync(context.Background(), root, "  ", false); err == nil {
		t.Fatal("expected error for empty bucket")
	}

	uploadErr := errors.New("denied")
	api := newFakeS3()
	api.putErr = uploadErr
	if _, err := NewContentSyncer(api).Sync(context.Background(), root, "bucket", false); !errors.Is(err, uploadErr) {
		t.Fatalf("expected upload error, got %v", err)
	}

	missing := filepath.Join(t.TempDir(), "absent")
	if _, err := NewContentSyncer(newFakeS3()).Sync(context.Background(), missing, "bucket", false); err == nil {
		t.Fatal("expected error for missing source tree")
	}
}
