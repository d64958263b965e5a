// Where: internal/emit/manifest.go
// What: Deploy manifest projection of a resolved graph.
// Why: The provisioning engine consumes (kind, properties, dependencies)
//      triples; this is their serialized form.
package emit

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/websmith/websmith/internal/graph"
)

// ResourceDecl is one emitted resource declaration.
type ResourceDecl struct {
	ID         string   `json:"id" yaml:"id"`
	Kind       string   `json:"kind" yaml:"kind"`
	DependsOn  []string `json:"dependsOn,omitempty" yaml:"dependsOn,omitempty"`
	Properties any      `json:"properties" yaml:"properties"`
}

// Output is one named derived value.
type Output struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Document is the full emitted manifest. Resources keep declaration order,
// which is a topological order of the dependency edges.
type Document struct {
	Version   int            `json:"version" yaml:"version"`
	Scope     string         `json:"scope" yaml:"scope"`
	Resources []ResourceDecl `json:"resources" yaml:"resources"`
	Outputs   []Output       `json:"outputs,omitempty" yaml:"outputs,omitempty"`
}

// FromGraph projects a builder snapshot into a document.
func FromGraph(scope string, resources []graph.Resource, outputs []Output) Document {
	decls := make([]ResourceDecl, 0, len(resources))
	for _, resource := range resources {
		decls = append(decls, ResourceDecl{
			ID:         resource.LocalID,
			Kind:       resource.Kind,
			DependsOn:  resource.DependsOn,
			Properties: resource.Properties,
		})
	}
	return Document{
		Version:   1,
		Scope:     scope,
		Resources: decls,
		Outputs:   outputs,
	}
}

// MarshalManifest renders the document in the requested format.
func (d Document) MarshalManifest(format string) ([]byte, error) {
	switch format {
	case "", "yaml":
		return yaml.Marshal(d)
	case "json":
		return json.MarshalIndent(d, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}
}
