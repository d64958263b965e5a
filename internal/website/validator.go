// Where: internal/website/validator.go
// What: Schema validation for website spec documents.
// Why: Reject malformed specs with a precise pointer before any defaulting.
package website

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

//go:embed schema/website.schema.json
var websiteSchema string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// validateSpecDocument checks a YAML or JSON spec document against the
// embedded schema and returns its JSON form for decoding.
func validateSpecDocument(content []byte) ([]byte, error) {
	sch, err := loadSchema()
	if err != nil {
		return nil, err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return nil, fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	if err := sch.Validate(document); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	return jsonData, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString("website.schema.json", websiteSchema)
	})
	return compiledSchema, schemaErr
}
