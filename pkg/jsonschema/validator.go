// Package jsonschema validates JSON documents against JSON Schema,
// compiling each schema once for reuse across responses.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator holds a compiled schema
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles a schema from its JSON source
func NewValidator(schemaJSON string) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// NewValidatorFromFile compiles a schema read from disk
func NewValidatorFromFile(path string) (*Validator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	return NewValidator(string(data))
}

// Validate checks a JSON document against the compiled schema. It returns
// nil when the document conforms, a validation error when it does not, and
// a parse error when the document is not JSON at all.
func (v *Validator) Validate(doc []byte) error {
	var value interface{}
	if err := json.Unmarshal(doc, &value); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := v.schema.Validate(value); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
