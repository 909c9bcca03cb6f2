package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed grid.schema.json
var gridSchemaText string

var gridSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("grid.schema.json", gridSchemaText)
})

// validateGridDocument checks raw YAML against the grid JSON schema. The YAML
// tree is re-encoded as JSON first so the validator sees JSON types.
func validateGridDocument(data []byte) error {
	schema, err := gridSchema()
	if err != nil {
		return fmt.Errorf("compile grid schema: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("normalise document: %w", err)
	}
	var normalised any
	if err := json.Unmarshal(raw, &normalised); err != nil {
		return fmt.Errorf("normalise document: %w", err)
	}
	if err := schema.Validate(normalised); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
