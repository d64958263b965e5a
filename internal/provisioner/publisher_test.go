// Where: internal/provisioner/publisher_test.go
// What: Tests for the entry publishers.
// Why: Entries must land under their full path, in order, stopping at the
//      first failure.
package provisioner

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/websmith/websmith/internal/ports"
)

type fakeSSM struct {
	params  map[string]string
	order   []string
	failAt  string
	failErr error
}

func (f *fakeSSM) PutParameter(_ context.Context, name, value string) error {
	if name == f.failAt {
		return f.failErr
	}
	if f.params == nil {
		f.params = map[string]string{}
	}
	f.params[name] = value
	f.order = append(f.order, name)
	return nil
}

var sampleEntries = []ports.Entry{
	{Path: "/account-config/123456789012/stage", Key: "stage", Value: "dev"},
	{Path: "/account-config/123456789012/zone", Key: "zone", Value: "dev.example.com"},
}

func TestParameterPublisherWritesInOrder(t *testing.T) {
	api := &fakeSSM{}
	if err := NewParameterPublisher(api).Publish(context.Background(), sampleEntries); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !reflect.DeepEqual(api.order, []string{
		"/account-config/123456789012/stage",
		"/account-config/123456789012/zone",
	}) {
		t.Errorf("order = %v", api.order)
	}
	if api.params["/account-config/123456789012/stage"] != "dev" {
		t.Errorf("stage = %q", api.params["/account-config/123456789012/stage"])
	}
}

func TestParameterPublisherStopsAtFirstFailure(t *testing.T) {
	putErr := errors.New("access denied")
	api := &fakeSSM{failAt: "/account-config/123456789012/stage", failErr: putErr}
	err := NewParameterPublisher(api).Publish(context.Background(), sampleEntries)
	if !errors.Is(err, putErr) {
		t.Fatalf("expected put error, got %v", err)
	}
	if len(api.order) != 0 {
		t.Errorf("writes after failure: %v", api.order)
	}
}

type fakeDynamo struct {
	items []map[string]string
	table string
}

func (f *fakeDynamo) PutItem(_ context.Context, table string, item map[string]string) error {
	f.table = table
	f.items = append(f.items, item)
	return nil
}

func TestTablePublisherWritesRows(t *testing.T) {
	api := &fakeDynamo{}
	if err := NewTablePublisher(api, "config-local").Publish(context.Background(), sampleEntries); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if api.table != "config-local" {
		t.Errorf("table = %q", api.table)
	}
	if len(api.items) != 2 {
		t.Fatalf("items = %d", len(api.items))
	}
	want := map[string]string{
		"path":  "/account-config/123456789012/stage",
		"key":   "stage",
		"value": "dev",
	}
	if !reflect.DeepEqual(api.items[0], want) {
		t.Errorf("item = %v", api.items[0])
	}
}

func TestTablePublisherRequiresTable(t *testing.T) {
	if err := NewTablePublisher(&fakeDynamo{}, "").Publish(context.Background(), sampleEntries); err == nil {
		t.Fatal("expected error for missing table name")
	}
}
