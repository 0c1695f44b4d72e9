package script

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaError indicates a malformed lesson script. Compilation never
// proceeds past it — there is no partial plan.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("lesson script rejected: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(defBytes, &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://lesson-script.json", parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://lesson-script.json")
	})
	return compiledSchema, compileErr
}

// Parse validates raw lesson-script JSON against the document schema and
// unmarshals it. Schema validation runs first so a *SchemaError always
// precedes any decoding quirk.
func Parse(raw []byte) (*Document, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &SchemaError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiled()
	if err != nil {
		return nil, fmt.Errorf("compile lesson-script schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &SchemaError{Err: err}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &SchemaError{Err: err}
	}
	return &doc, nil
}
