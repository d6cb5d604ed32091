package bank

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// fileSchemaURL names the bank file schema inside the compiler.
const fileSchemaURL = "schema://article-bank.json"

// FileSchema is the JSON schema a bank file must satisfy.
var FileSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []any{"prompt", "article", "explanation"},
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"article": map[string]any{
				"type": "string",
				"enum": []any{"a", "an", "the"},
			},
			"explanation": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// LoadFile reads and validates a JSON bank file.
func LoadFile(path string) (Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	b, err := Load(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return b, nil
}

// Load decodes a JSON bank, checks it against FileSchema and then
// against Validate.
func Load(r io.Reader) (Bank, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("read: %w", err)}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := fileSchema()
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("compile schema: %w", err)}
	}
	if err := sch.Validate(doc); err != nil {
		return nil, &LoadError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var b Bank
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, &LoadError{Err: fmt.Errorf("decode: %w", err)}
	}
	if err := Validate(b); err != nil {
		return nil, &LoadError{Err: err}
	}
	return b, nil
}

// fileSchema compiles FileSchema once and caches the result.
func fileSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain decoded JSON value, not Go maps with
		// typed slices and ints.
		defBytes, err := json.Marshal(FileSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(fileSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(fileSchemaURL)
	})
	return compiledSchema, compileErr
}
