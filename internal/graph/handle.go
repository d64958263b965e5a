// Where: internal/graph/handle.go
// What: Resource handle exposing generated identifiers.
// Why: Dependents read references, never the builder's internals.
package graph

import "fmt"

// Handle points at one declared (or forward-referenced) resource and
// exposes its generated identifiers. A handle obtained before the resource
// is declared stays invalid until the declaration lands.
type Handle struct {
	builder *Builder
	localID string
	node    *node
}

// ID returns the resource's local id within its graph.
func (h *Handle) ID() string {
	return h.localID
}

// Ref returns the resource's generated external reference string.
// The reference is stable for the lifetime of the graph instance.
func (h *Handle) Ref() (string, error) {
	if h.node == nil {
		return "", fmt.Errorf("%w: %q", ErrNotYetResolved, h.localID)
	}
	return h.node.ref, nil
}

// Attr returns a generated attribute reference for the resource, such as a
// provisioned domain name. The provisioning engine substitutes the concrete
// value at materialization time.
func (h *Handle) Attr(name string) (string, error) {
	if h.node == nil {
		return "", fmt.Errorf("%w: %q attribute %q", ErrNotYetResolved, h.localID, name)
	}
	return fmt.Sprintf("${%s/%s.%s}", h.builder.scope, h.localID, name), nil
}

// MustRef is Ref for declaration sites that already checked resolution.
// It panics on an unresolved handle, signalling a programming error.
func (h *Handle) MustRef() string {
	ref, err := h.Ref()
	if err != nil {
		panic(err)
	}
	return ref
}

// MustAttr is Attr with the same contract as MustRef.
func (h *Handle) MustAttr(name string) string {
	attr, err := h.Attr(name)
	if err != nil {
		panic(err)
	}
	return attr
}
