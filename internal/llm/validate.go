package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas caches compiled JSON schemas by schema name. Schemas
// are package-level constants in practice, so the cache never invalidates.
var compiledSchemas sync.Map // map[string]*jsonschema.Schema

// validateResponse checks raw provider output against a Schema. A nil
// schema always passes; any failure is an *ErrInvalidResponse carrying
// the offending content.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := schema.compiled()
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("compile schema %q: %w", schema.Name, err)}
	}
	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

// compiled returns the cached compiled form of the schema, compiling on
// first use.
func (s *Schema) compiled() (*jsonschema.Schema, error) {
	if cached, ok := compiledSchemas.Load(s.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler consumes a parsed JSON value, so round-trip the
	// definition map through encoding/json first.
	defBytes, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, err
	}

	compiledSchemas.Store(s.Name, compiled)
	return compiled, nil
}
