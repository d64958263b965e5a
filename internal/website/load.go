// Where: internal/website/load.go
// What: Website spec file loading.
// Why: Accept YAML or JSON documents through one validated path.
package website

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadSpec reads, validates, and decodes a website spec document.
// YAML and JSON are both accepted; the schema rejects unknown fields.
func LoadSpec(path string) (Spec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("read spec %s: %w", path, err)
	}
	return ParseSpec(content)
}

// ParseSpec validates and decodes an in-memory spec document.
func ParseSpec(content []byte) (Spec, error) {
	jsonData, err := validateSpecDocument(content)
	if err != nil {
		return Spec{}, err
	}

	var spec Spec
	if err := json.Unmarshal(jsonData, &spec); err != nil {
		return Spec{}, fmt.Errorf("decode spec: %w", err)
	}
	return spec, nil
}
