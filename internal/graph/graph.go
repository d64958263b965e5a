// Where: internal/graph/graph.go
// What: Forward-only resource graph builder.
// Why: Keep declaration order a topological order without a cycle pass.
package graph

import (
	"errors"
	"fmt"
)

// ErrDuplicateID indicates a local id was declared twice in one graph.
var ErrDuplicateID = errors.New("duplicate resource id")

// ErrUnresolvedDependency indicates a dependency was not declared yet.
// Dependencies must be declared strictly before their dependents, which
// enforces acyclic composition by construction.
var ErrUnresolvedDependency = errors.New("dependency not declared")

// ErrNotYetResolved indicates a generated identifier was requested before
// the owning resource was declared. This is a caller logic defect, not an
// environmental condition.
var ErrNotYetResolved = errors.New("resource not yet resolved")

// Resource is one declared entry of the graph: a (kind, properties,
// dependency-ids) triple plus the identifiers generated at declaration time.
// Properties hold a resolved, kind-specific property struct; callers treat
// the snapshot as read-only.
type Resource struct {
	Kind       string
	LocalID    string
	Properties any
	DependsOn  []string
}

// Builder accumulates resource declarations for a single resolution run.
// It is not safe for concurrent use and is never shared across runs.
type Builder struct {
	scope   string
	order   []string
	index   map[string]*node
	pending map[string]*Handle
}

type node struct {
	resource Resource
	ref      string
}

// New creates an empty graph builder for the given scope name.
// The scope participates in generated reference strings so two graphs
// never mint colliding identifiers.
func New(scope string) *Builder {
	return &Builder{
		scope:   scope,
		index:   map[string]*node{},
		pending: map[string]*Handle{},
	}
}

// Declare adds a resource to the graph. Every id listed in dependsOn must
// already be declared; localID must be unused. The returned handle resolves
// generated identifiers immediately.
func (b *Builder) Declare(kind, localID string, properties any, dependsOn ...string) (*Handle, error) {
	if localID == "" {
		return nil, fmt.Errorf("empty local id for kind %q", kind)
	}
	if _, exists := b.index[localID]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateID, localID)
	}
	for _, dep := range dependsOn {
		if _, exists := b.index[dep]; !exists {
			return nil, fmt.Errorf("%w: %q requires %q", ErrUnresolvedDependency, localID, dep)
		}
	}

	deps := make([]string, len(dependsOn))
	copy(deps, dependsOn)

	entry := &node{
		resource: Resource{
			Kind:       kind,
			LocalID:    localID,
			Properties: properties,
			DependsOn:  deps,
		},
		ref: fmt.Sprintf("${%s/%s.ref}", b.scope, localID),
	}
	b.index[localID] = entry
	b.order = append(b.order, localID)

	if handle, ok := b.pending[localID]; ok {
		delete(b.pending, localID)
		handle.node = entry
		return handle, nil
	}
	return &Handle{builder: b, localID: localID, node: entry}, nil
}

// Reference returns a handle for localID that may not be declared yet.
// Accessors on the handle fail with ErrNotYetResolved until the resource
// is declared.
func (b *Builder) Reference(localID string) *Handle {
	if entry, ok := b.index[localID]; ok {
		return &Handle{builder: b, localID: localID, node: entry}
	}
	if handle, ok := b.pending[localID]; ok {
		return handle
	}
	handle := &Handle{builder: b, localID: localID}
	b.pending[localID] = handle
	return handle
}

// Contains reports whether localID has been declared.
func (b *Builder) Contains(localID string) bool {
	_, ok := b.index[localID]
	return ok
}

// Resources returns a read-only snapshot of the declared resources in
// declaration order. The invariant holds by construction: no resource
// references one that appears after it.
func (b *Builder) Resources() []Resource {
	out := make([]Resource, 0, len(b.order))
	for _, id := range b.order {
		entry := b.index[id]
		deps := make([]string, len(entry.resource.DependsOn))
		copy(deps, entry.resource.DependsOn)
		out = append(out, Resource{
			Kind:       entry.resource.Kind,
			LocalID:    id,
			Properties: entry.resource.Properties,
			DependsOn:  deps,
		})
	}
	return out
}

// Len reports how many resources have been declared.
func (b *Builder) Len() int {
	return len(b.order)
}
